package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// JobStatus represents the workflow stage of a job on the production floor.
//
// Domain notes:
//   - Claim stages (survey/approval) precede production stages.
//   - Eligibility for the readiness boards only requires a work-order number;
//     individual boards may additionally filter by stage.

type JobStatus string

const (
	JobStatusSurvey     JobStatus = "survey"
	JobStatusEstimating JobStatus = "estimating"
	JobStatusApproved   JobStatus = "approved"
	JobStatusBodywork   JobStatus = "bodywork"
	JobStatusPainting   JobStatus = "painting"
	JobStatusAssembly   JobStatus = "assembly"
	JobStatusFinished   JobStatus = "finished"
)

// PartLine is one required part on a job's estimate.
//
// InventoryID may be empty when the estimate was authored before the part was
// registered in master stock; Code is kept as a weak fallback reference.
// Once HasArrived is set the line already consumed real stock and is excluded
// from any further allocation.
type PartLine struct {
	InventoryID string  `json:"inventory_id,omitempty"`
	Code        string  `json:"code,omitempty"`
	Name        string  `json:"name"`
	Qty         float64 `json:"qty"`
	HasArrived  bool    `json:"has_arrived"`
	IsIndent    bool    `json:"is_indent"`
	ETA         string  `json:"eta,omitempty"`
}

// ServiceLine is a labor/service item on the estimate (no stock involvement).
type ServiceLine struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// UsageLogEntry records a committed issuance against a job.
type UsageLogEntry struct {
	InventoryID string          `json:"inventory_id"`
	Name        string          `json:"name"`
	Qty         float64         `json:"qty"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	LineIndex   int             `json:"line_index"`
	IssuedAt    time.Time       `json:"issued_at"`
}

// Job is the work-order/claim unit persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//
// IntakeTime drives FIFO ordering on the readiness boards; a zero IntakeTime
// means the record predates intake tracking and sorts as earliest.
// IsClosed/IsDeleted gate the job out of every board without destroying the
// record.
type Job struct {
	ID              string    `json:"id"`
	WorkOrderNumber string    `json:"work_order_number"`
	PoliceNumber    string    `json:"police_number"`
	CustomerName    string    `json:"customer_name"`
	Status          JobStatus `json:"status"`
	IsClosed        bool      `json:"is_closed"`
	IsDeleted       bool      `json:"is_deleted"`
	OnPremises      bool      `json:"on_premises"`
	IntakeTime      time.Time `json:"intake_time"`

	PartLines    []PartLine      `json:"part_lines"`
	ServiceLines []ServiceLine   `json:"service_lines"`
	UsageLog     []UsageLogEntry `json:"usage_log"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
