package response

import (
	"time"

	"funilaria_ops/internal/domain/entities"
)

type PurchaseOrderLineResponse struct {
	InventoryID string  `json:"inventory_id"`
	Name        string  `json:"name,omitempty"`
	Qty         float64 `json:"qty"`
	UnitCost    string  `json:"unit_cost"`
}

type PurchaseOrderResponse struct {
	ID         string                      `json:"id"`
	Number     string                      `json:"number"`
	Supplier   string                      `json:"supplier"`
	Status     string                      `json:"status"`
	Lines      []PurchaseOrderLineResponse `json:"lines"`
	CreatedAt  time.Time                   `json:"created_at"`
	UpdatedAt  time.Time                   `json:"updated_at"`
	ReceivedAt *time.Time                  `json:"received_at,omitempty"`
}

func FromPurchaseOrder(po entities.PurchaseOrder) PurchaseOrderResponse {
	lines := make([]PurchaseOrderLineResponse, 0, len(po.Lines))
	for _, l := range po.Lines {
		lines = append(lines, PurchaseOrderLineResponse{
			InventoryID: l.InventoryID,
			Name:        l.Name,
			Qty:         l.Qty,
			UnitCost:    l.UnitCost.String(),
		})
	}
	resp := PurchaseOrderResponse{
		ID:        po.ID,
		Number:    po.Number,
		Supplier:  po.Supplier,
		Status:    string(po.Status),
		Lines:     lines,
		CreatedAt: po.CreatedAt,
		UpdatedAt: po.UpdatedAt,
	}
	if !po.ReceivedAt.IsZero() {
		received := po.ReceivedAt
		resp.ReceivedAt = &received
	}
	return resp
}

func FromPurchaseOrders(orders []entities.PurchaseOrder) []PurchaseOrderResponse {
	out := make([]PurchaseOrderResponse, 0, len(orders))
	for _, po := range orders {
		out = append(out, FromPurchaseOrder(po))
	}
	return out
}
