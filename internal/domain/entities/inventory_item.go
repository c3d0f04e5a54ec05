package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// ItemCategory splits master stock between spare parts and bulk materials.
//
// The two categories drive separate issuance boards but share the same table.

type ItemCategory string

const (
	ItemCategorySparepart ItemCategory = "sparepart"
	ItemCategoryMaterial  ItemCategory = "material"
)

// InventoryItem is a master-stock record persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//
// OnHand is the authoritative quantity. It is only ever mutated through
// conditional/transactional writes (issuance, purchase-order receipt, manual
// adjustment); readiness boards work on in-memory copies and never write it.
// OnHand is a float64 because bulk materials (paint, thinner) are issued in
// fractional units.
type InventoryItem struct {
	ID        string          `json:"id"`
	Code      string          `json:"code"`
	Name      string          `json:"name"`
	Unit      string          `json:"unit"`
	Category  ItemCategory    `json:"category"`
	OnHand    float64         `json:"on_hand"`
	BuyPrice  decimal.Decimal `json:"buy_price"`
	SellPrice decimal.Decimal `json:"sell_price"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
