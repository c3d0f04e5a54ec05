package request

import (
	"errors"
	"strings"

	"funilaria_ops/internal/domain/entities"

	"github.com/shopspring/decimal"
)

var ErrInvalidLinePrice = errors.New("invalid line price")

// IntakeJobRequest registers a vehicle entering the shop.
type IntakeJobRequest struct {
	PoliceNumber    string `json:"police_number" binding:"required"`
	CustomerName    string `json:"customer_name"`
	WorkOrderNumber string `json:"work_order_number"`
	OnPremises      bool   `json:"on_premises"`
}

type UpdateJobStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type AssignWorkOrderRequest struct {
	WorkOrderNumber string `json:"work_order_number" binding:"required"`
}

type SetOnPremisesRequest struct {
	OnPremises *bool `json:"on_premises" binding:"required"`
}

// PartLineRequest mirrors one estimate part line. HasArrived is accepted so a
// full estimate round-trips through PUT, but the use case rejects any attempt
// to change arrival state this way.
type PartLineRequest struct {
	InventoryID string  `json:"inventory_id"`
	Code        string  `json:"code"`
	Name        string  `json:"name" binding:"required"`
	Qty         float64 `json:"qty"`
	HasArrived  bool    `json:"has_arrived"`
	IsIndent    bool    `json:"is_indent"`
	ETA         string  `json:"eta"`
}

type ReplacePartLinesRequest struct {
	Lines []PartLineRequest `json:"lines"`
}

func (r ReplacePartLinesRequest) ToPartLines() []entities.PartLine {
	lines := make([]entities.PartLine, 0, len(r.Lines))
	for _, l := range r.Lines {
		lines = append(lines, entities.PartLine{
			InventoryID: strings.TrimSpace(l.InventoryID),
			Code:        strings.TrimSpace(l.Code),
			Name:        strings.TrimSpace(l.Name),
			Qty:         l.Qty,
			HasArrived:  l.HasArrived,
			IsIndent:    l.IsIndent,
			ETA:         strings.TrimSpace(l.ETA),
		})
	}
	return lines
}

type ServiceLineRequest struct {
	Name  string `json:"name" binding:"required"`
	Price string `json:"price"`
}

type ReplaceServiceLinesRequest struct {
	Lines []ServiceLineRequest `json:"lines"`
}

func (r ReplaceServiceLinesRequest) ToServiceLines() ([]entities.ServiceLine, error) {
	lines := make([]entities.ServiceLine, 0, len(r.Lines))
	for _, l := range r.Lines {
		price := decimal.Zero
		if strings.TrimSpace(l.Price) != "" {
			var err error
			price, err = decimal.NewFromString(l.Price)
			if err != nil || price.IsNegative() {
				return nil, ErrInvalidLinePrice
			}
		}
		lines = append(lines, entities.ServiceLine{
			Name:  strings.TrimSpace(l.Name),
			Price: price,
		})
	}
	return lines, nil
}
