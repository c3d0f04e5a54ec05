package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// PurchaseOrderStatus represents the lifecycle of a purchase order.
//
// Transitions: draft -> ordered -> received, or draft/ordered -> cancelled.
// Receiving is the only transition that touches stock, and it does so in a
// single transaction together with the status flip.

type PurchaseOrderStatus string

const (
	PurchaseOrderStatusDraft     PurchaseOrderStatus = "draft"
	PurchaseOrderStatusOrdered   PurchaseOrderStatus = "ordered"
	PurchaseOrderStatusReceived  PurchaseOrderStatus = "received"
	PurchaseOrderStatusCancelled PurchaseOrderStatus = "cancelled"
)

// PurchaseOrderLine is one replenishment line on a purchase order.
type PurchaseOrderLine struct {
	InventoryID string          `json:"inventory_id"`
	Name        string          `json:"name"`
	Qty         float64         `json:"qty"`
	UnitCost    decimal.Decimal `json:"unit_cost"`
}

// PurchaseOrder is a supplier replenishment order persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
type PurchaseOrder struct {
	ID       string              `json:"id"`
	Number   string              `json:"number"`
	Supplier string              `json:"supplier"`
	Status   PurchaseOrderStatus `json:"status"`
	Lines    []PurchaseOrderLine `json:"lines"`

	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
	ReceivedAt time.Time `json:"received_at,omitempty"`
}
