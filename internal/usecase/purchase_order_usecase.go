package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"funilaria_ops/internal/domain/entities"
	"funilaria_ops/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

var (
	ErrPurchaseOrderNotFound = errors.New("purchase order not found")
	ErrInvalidPurchaseOrder  = errors.New("invalid purchase order")
	ErrInvalidPOTransition   = errors.New("invalid purchase order status transition")
)

// CreatePurchaseOrderCommand carries a draft replenishment order.
type CreatePurchaseOrderCommand struct {
	Supplier string
	Lines    []entities.PurchaseOrderLine
}

// IPurchaseOrderUseCase exposes replenishment operations. Receiving is the
// inverse commit boundary of issuance: stock goes up, atomically with the
// status flip.

type IPurchaseOrderUseCase interface {
	Create(ctx context.Context, cmd CreatePurchaseOrderCommand) (entities.PurchaseOrder, error)
	GetByID(ctx context.Context, id string) (entities.PurchaseOrder, error)
	List(ctx context.Context) ([]entities.PurchaseOrder, error)
	MarkOrdered(ctx context.Context, id string) (entities.PurchaseOrder, error)
	Receive(ctx context.Context, id string) (entities.PurchaseOrder, error)
	Cancel(ctx context.Context, id string) (entities.PurchaseOrder, error)
}

type PurchaseOrderUseCase struct {
	repo    interfaces.IPurchaseOrderRepository
	invRepo interfaces.IInventoryRepository
	log     zerolog.Logger
}

var _ IPurchaseOrderUseCase = (*PurchaseOrderUseCase)(nil)

func NewPurchaseOrderUseCase(repo interfaces.IPurchaseOrderRepository, invRepo interfaces.IInventoryRepository, log zerolog.Logger) *PurchaseOrderUseCase {
	return &PurchaseOrderUseCase{repo: repo, invRepo: invRepo, log: log}
}

func (u *PurchaseOrderUseCase) Create(ctx context.Context, cmd CreatePurchaseOrderCommand) (entities.PurchaseOrder, error) {
	supplier := strings.TrimSpace(cmd.Supplier)
	if supplier == "" || len(cmd.Lines) == 0 {
		return entities.PurchaseOrder{}, ErrInvalidPurchaseOrder
	}
	for _, line := range cmd.Lines {
		if strings.TrimSpace(line.InventoryID) == "" || line.Qty <= 0 {
			return entities.PurchaseOrder{}, ErrInvalidPurchaseOrder
		}
		it, err := u.invRepo.GetByID(ctx, line.InventoryID)
		if err != nil {
			return entities.PurchaseOrder{}, err
		}
		if it.ID == "" {
			return entities.PurchaseOrder{}, ErrItemNotFound
		}
	}

	now := time.Now().UTC()
	po := entities.PurchaseOrder{
		ID:        uuid.NewString(),
		Number:    fmt.Sprintf("PO-%s", now.Format("20060102-150405")),
		Supplier:  supplier,
		Status:    entities.PurchaseOrderStatusDraft,
		Lines:     cmd.Lines,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return u.repo.Create(ctx, po)
}

func (u *PurchaseOrderUseCase) GetByID(ctx context.Context, id string) (entities.PurchaseOrder, error) {
	return u.load(ctx, id)
}

func (u *PurchaseOrderUseCase) List(ctx context.Context) ([]entities.PurchaseOrder, error) {
	return u.repo.List(ctx)
}

func (u *PurchaseOrderUseCase) MarkOrdered(ctx context.Context, id string) (entities.PurchaseOrder, error) {
	po, err := u.load(ctx, id)
	if err != nil {
		return entities.PurchaseOrder{}, err
	}
	if po.Status != entities.PurchaseOrderStatusDraft {
		return entities.PurchaseOrder{}, ErrInvalidPOTransition
	}
	return u.repo.UpdateStatus(ctx, id, entities.PurchaseOrderStatusOrdered)
}

// Receive books the order into stock: one transaction increments every line's
// on-hand quantity and flips the status, conditioned on the order still being
// in the ordered state.
func (u *PurchaseOrderUseCase) Receive(ctx context.Context, id string) (entities.PurchaseOrder, error) {
	po, err := u.load(ctx, id)
	if err != nil {
		return entities.PurchaseOrder{}, err
	}
	if po.Status != entities.PurchaseOrderStatusOrdered {
		return entities.PurchaseOrder{}, ErrInvalidPOTransition
	}

	if err := u.repo.CommitReceive(ctx, po); err != nil {
		u.log.Warn().Err(err).Str("po_id", po.ID).Msg("purchase order receive failed")
		return entities.PurchaseOrder{}, err
	}
	u.log.Info().Str("po_id", po.ID).Str("number", po.Number).Int("lines", len(po.Lines)).Msg("purchase order received")

	return u.load(ctx, id)
}

func (u *PurchaseOrderUseCase) Cancel(ctx context.Context, id string) (entities.PurchaseOrder, error) {
	po, err := u.load(ctx, id)
	if err != nil {
		return entities.PurchaseOrder{}, err
	}
	if po.Status != entities.PurchaseOrderStatusDraft && po.Status != entities.PurchaseOrderStatusOrdered {
		return entities.PurchaseOrder{}, ErrInvalidPOTransition
	}
	return u.repo.UpdateStatus(ctx, id, entities.PurchaseOrderStatusCancelled)
}

func (u *PurchaseOrderUseCase) load(ctx context.Context, id string) (entities.PurchaseOrder, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.PurchaseOrder{}, ErrInvalidPurchaseOrder
	}
	po, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.PurchaseOrder{}, err
	}
	if po.ID == "" {
		return entities.PurchaseOrder{}, ErrPurchaseOrderNotFound
	}
	return po, nil
}
