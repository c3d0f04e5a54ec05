package request

// CreateInventoryItemRequest registers a master-stock item. Prices travel as
// strings so the decimal representation survives the JSON round trip.
type CreateInventoryItemRequest struct {
	Code      string  `json:"code"`
	Name      string  `json:"name" binding:"required"`
	Unit      string  `json:"unit"`
	Category  string  `json:"category" binding:"required"`
	OnHand    float64 `json:"on_hand"`
	BuyPrice  string  `json:"buy_price"`
	SellPrice string  `json:"sell_price"`
}

// AdjustStockRequest applies a signed manual correction to on-hand stock.
type AdjustStockRequest struct {
	Delta  *float64 `json:"delta" binding:"required"`
	Reason string   `json:"reason"`
}
