package response

import (
	"time"

	"funilaria_ops/internal/domain/entities"
)

type InventoryItemResponse struct {
	ID        string    `json:"id"`
	Code      string    `json:"code,omitempty"`
	Name      string    `json:"name"`
	Unit      string    `json:"unit,omitempty"`
	Category  string    `json:"category"`
	OnHand    float64   `json:"on_hand"`
	BuyPrice  string    `json:"buy_price"`
	SellPrice string    `json:"sell_price"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromInventoryItem(it entities.InventoryItem) InventoryItemResponse {
	return InventoryItemResponse{
		ID:        it.ID,
		Code:      it.Code,
		Name:      it.Name,
		Unit:      it.Unit,
		Category:  string(it.Category),
		OnHand:    it.OnHand,
		BuyPrice:  it.BuyPrice.String(),
		SellPrice: it.SellPrice.String(),
		CreatedAt: it.CreatedAt,
		UpdatedAt: it.UpdatedAt,
	}
}

func FromInventoryItems(items []entities.InventoryItem) []InventoryItemResponse {
	out := make([]InventoryItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, FromInventoryItem(it))
	}
	return out
}
