package allocation

import (
	"fmt"

	"funilaria_ops/internal/domain/entities"
)

// LineState classifies one part line after an allocation pass. The four states
// are mutually exclusive.

type LineState string

const (
	// LineIssued: the part already physically left stock (HasArrived).
	LineIssued LineState = "ISSUED"
	// LineReady: virtually reserved from the snapshot within this pass.
	LineReady LineState = "READY"
	// LineIndentManual: human-flagged backorder, bypasses the stock check.
	LineIndentManual LineState = "INDENT_MANUAL"
	// LineWaiting: snapshot stock insufficient, or the line is unlinked.
	LineWaiting LineState = "WAITING"
)

// JobReadiness is the aggregate per-job status derived from its line states.

type JobReadiness string

const (
	ReadinessComplete JobReadiness = "COMPLETE"
	ReadinessPartial  JobReadiness = "PARTIAL"
	ReadinessNone     JobReadiness = "NONE"
)

// LineResult is the per-line outcome of a pass.
type LineResult struct {
	LineIndex   int       `json:"line_index"`
	State       LineState `json:"state"`
	InventoryID string    `json:"inventory_id,omitempty"`
	Qty         float64   `json:"qty"`
	ETA         string    `json:"eta,omitempty"`
}

// JobResult is the per-job outcome of a pass.
type JobResult struct {
	JobID           string       `json:"job_id"`
	WorkOrderNumber string       `json:"work_order_number"`
	Readiness       JobReadiness `json:"readiness"`
	ReadyCount      int          `json:"ready_count"`
	TotalCount      int          `json:"total_count"`
	Lines           []LineResult `json:"lines"`
}

// Result is the full outcome of one allocation pass. It has no lifecycle: it
// is recomputed from scratch whenever jobs or inventory change and discarded
// afterwards. Warnings carry data-quality anomalies absorbed during the pass.
type Result struct {
	Jobs      []JobResult `json:"jobs"`
	Remaining Snapshot    `json:"-"`
	Warnings  []string    `json:"warnings,omitempty"`
}

// Allocate runs one FIFO allocation pass: jobs in queue order, lines in
// insertion order. Earlier jobs reserve against the snapshot first, so later
// jobs see reduced availability; no unit of stock is granted twice within a
// pass. The function is pure with respect to its inputs and keeps no state
// between calls.
func Allocate(queue []entities.Job, inventory []entities.InventoryItem, policy EmptyPartsPolicy) Result {
	snapshot := NewSnapshot(inventory)
	index := NewIndex(inventory)

	res := Result{
		Jobs:      make([]JobResult, 0, len(queue)),
		Remaining: snapshot,
	}

	for _, job := range queue {
		jr := JobResult{
			JobID:           job.ID,
			WorkOrderNumber: job.WorkOrderNumber,
			TotalCount:      len(job.PartLines),
			Lines:           make([]LineResult, 0, len(job.PartLines)),
		}

		for i, line := range job.PartLines {
			qty := line.Qty
			if qty <= 0 {
				res.Warnings = append(res.Warnings, fmt.Sprintf(
					"job %s line %d: non-positive qty %v, treated as 1", job.ID, i, line.Qty))
				qty = 1
			}

			lr := LineResult{LineIndex: i, Qty: qty, ETA: line.ETA}

			switch {
			case line.HasArrived:
				// Terminal: already consumed real stock, never re-deducted.
				lr.State = LineIssued
				lr.InventoryID = line.InventoryID
				jr.ReadyCount++
			case line.IsIndent:
				lr.State = LineIndentManual
				lr.InventoryID = line.InventoryID
			default:
				item, ok := index.Resolve(line)
				if ok && snapshot.Reserve(item.ID, qty) {
					lr.State = LineReady
					lr.InventoryID = item.ID
					jr.ReadyCount++
				} else {
					lr.State = LineWaiting
					if ok {
						lr.InventoryID = item.ID
					}
				}
			}
			jr.Lines = append(jr.Lines, lr)
		}

		jr.Readiness = ClassifyJob(job, jr.ReadyCount, jr.TotalCount, policy)
		res.Jobs = append(res.Jobs, jr)
	}

	return res
}
