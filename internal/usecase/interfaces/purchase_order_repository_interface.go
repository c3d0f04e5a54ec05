package interfaces

import (
	"context"

	"funilaria_ops/internal/domain/entities"
)

// IPurchaseOrderRepository abstracts DynamoDB persistence for PurchaseOrder.
//
// CommitReceive shares the Commit Boundary rules of IIssuanceRepository: the
// stock increments for every line and the status flip to received happen in
// one transaction, conditioned on the order still being in the ordered state
// (ErrStaleCommit otherwise).

type IPurchaseOrderRepository interface {
	Create(ctx context.Context, po entities.PurchaseOrder) (entities.PurchaseOrder, error)
	GetByID(ctx context.Context, id string) (entities.PurchaseOrder, error)
	List(ctx context.Context) ([]entities.PurchaseOrder, error)
	UpdateStatus(ctx context.Context, id string, status entities.PurchaseOrderStatus) (entities.PurchaseOrder, error)
	CommitReceive(ctx context.Context, po entities.PurchaseOrder) error
}
