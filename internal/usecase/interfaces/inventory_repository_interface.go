package interfaces

import (
	"context"

	"funilaria_ops/internal/domain/entities"
)

// IInventoryRepository abstracts DynamoDB persistence for InventoryItem.
//
// AdjustOnHand must be applied as an atomic, conditional increment so that
// concurrent adjustments serialize instead of lost-updating, and so that the
// on-hand quantity can never go negative.

type IInventoryRepository interface {
	Create(ctx context.Context, it entities.InventoryItem) (entities.InventoryItem, error)
	GetByID(ctx context.Context, id string) (entities.InventoryItem, error)
	List(ctx context.Context) ([]entities.InventoryItem, error)
	ListByCategory(ctx context.Context, category entities.ItemCategory) ([]entities.InventoryItem, error)
	Save(ctx context.Context, it entities.InventoryItem) (entities.InventoryItem, error)
	AdjustOnHand(ctx context.Context, id string, delta float64) (entities.InventoryItem, error)
}
