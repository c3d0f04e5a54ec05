package entities

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceStatus represents the billing lifecycle of a job invoice.

type InvoiceStatus string

const (
	InvoiceStatusDraft  InvoiceStatus = "draft"
	InvoiceStatusIssued InvoiceStatus = "issued"
	InvoiceStatusPaid   InvoiceStatus = "paid"
)

// Invoice is the billing document for a job, persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Monetary representation uses shopspring/decimal end to end; PartsTotal is
// derived from the job's usage log (committed issuances only, never virtual
// reservations), TaxAmount from the table-driven tax lookup.
//
// Payment payload:
//   - ProviderPayloadRaw keeps the original gateway response (JSON) for
//     traceability/audit.
type Invoice struct {
	ID         string          `json:"id"`
	JobID      string          `json:"job_id"`
	Number     string          `json:"number"`
	Status     InvoiceStatus   `json:"status"`
	PartsTotal decimal.Decimal `json:"parts_total"`
	LaborTotal decimal.Decimal `json:"labor_total"`
	TaxCode    string          `json:"tax_code"`
	TaxAmount  decimal.Decimal `json:"tax_amount"`
	GrandTotal decimal.Decimal `json:"grand_total"`

	ProviderPaymentID  string          `json:"provider_payment_id,omitempty"`
	ProviderPayloadRaw json.RawMessage `json:"provider_payload_raw,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
