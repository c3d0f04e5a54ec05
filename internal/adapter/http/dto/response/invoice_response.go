package response

import (
	"encoding/json"
	"time"

	"funilaria_ops/internal/domain/entities"
)

type InvoiceResponse struct {
	ID         string `json:"id"`
	JobID      string `json:"job_id"`
	Number     string `json:"number"`
	Status     string `json:"status"`
	PartsTotal string `json:"parts_total"`
	LaborTotal string `json:"labor_total"`
	TaxCode    string `json:"tax_code"`
	TaxAmount  string `json:"tax_amount"`
	GrandTotal string `json:"grand_total"`

	ProviderPaymentID  string          `json:"provider_payment_id,omitempty"`
	ProviderPayloadRaw json.RawMessage `json:"provider_payload_raw,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromInvoice(inv entities.Invoice) InvoiceResponse {
	return InvoiceResponse{
		ID:                 inv.ID,
		JobID:              inv.JobID,
		Number:             inv.Number,
		Status:             string(inv.Status),
		PartsTotal:         inv.PartsTotal.String(),
		LaborTotal:         inv.LaborTotal.String(),
		TaxCode:            inv.TaxCode,
		TaxAmount:          inv.TaxAmount.String(),
		GrandTotal:         inv.GrandTotal.String(),
		ProviderPaymentID:  inv.ProviderPaymentID,
		ProviderPayloadRaw: inv.ProviderPayloadRaw,
		CreatedAt:          inv.CreatedAt,
		UpdatedAt:          inv.UpdatedAt,
	}
}

func FromInvoices(invoices []entities.Invoice) []InvoiceResponse {
	out := make([]InvoiceResponse, 0, len(invoices))
	for _, inv := range invoices {
		out = append(out, FromInvoice(inv))
	}
	return out
}
