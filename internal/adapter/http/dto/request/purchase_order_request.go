package request

import (
	"strings"

	"funilaria_ops/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type PurchaseOrderLineRequest struct {
	InventoryID string  `json:"inventory_id" binding:"required"`
	Name        string  `json:"name"`
	Qty         float64 `json:"qty" binding:"required"`
	UnitCost    string  `json:"unit_cost"`
}

type CreatePurchaseOrderRequest struct {
	Supplier string                     `json:"supplier" binding:"required"`
	Lines    []PurchaseOrderLineRequest `json:"lines" binding:"required"`
}

func (r CreatePurchaseOrderRequest) ToLines() ([]entities.PurchaseOrderLine, error) {
	lines := make([]entities.PurchaseOrderLine, 0, len(r.Lines))
	for _, l := range r.Lines {
		cost := decimal.Zero
		if strings.TrimSpace(l.UnitCost) != "" {
			var err error
			cost, err = decimal.NewFromString(l.UnitCost)
			if err != nil || cost.IsNegative() {
				return nil, ErrInvalidLinePrice
			}
		}
		lines = append(lines, entities.PurchaseOrderLine{
			InventoryID: strings.TrimSpace(l.InventoryID),
			Name:        strings.TrimSpace(l.Name),
			Qty:         l.Qty,
			UnitCost:    cost,
		})
	}
	return lines, nil
}
