package request

// CreateInvoiceRequest bills a job. The parts total is not accepted here; it
// is always derived server-side from the job's committed usage log.
type CreateInvoiceRequest struct {
	JobID      string `json:"job_id" binding:"required"`
	LaborTotal string `json:"labor_total"`
	TaxCode    string `json:"tax_code"`
}
