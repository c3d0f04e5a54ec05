package response

import (
	"time"

	"funilaria_ops/internal/usecase"
)

type BoardLineResponse struct {
	LineIndex   int     `json:"line_index"`
	State       string  `json:"state"`
	InventoryID string  `json:"inventory_id,omitempty"`
	Qty         float64 `json:"qty"`
	ETA         string  `json:"eta,omitempty"`
}

type BoardJobResponse struct {
	JobID           string              `json:"job_id"`
	WorkOrderNumber string              `json:"work_order_number"`
	PoliceNumber    string              `json:"police_number"`
	CustomerName    string              `json:"customer_name,omitempty"`
	Status          string              `json:"status"`
	IntakeTime      time.Time           `json:"intake_time"`
	Readiness       string              `json:"readiness"`
	ReadyCount      int                 `json:"ready_count"`
	TotalCount      int                 `json:"total_count"`
	Lines           []BoardLineResponse `json:"lines"`
}

type BoardViewResponse struct {
	GeneratedAt time.Time          `json:"generated_at"`
	Jobs        []BoardJobResponse `json:"jobs"`
	Warnings    []string           `json:"warnings,omitempty"`
}

func FromBoardView(v usecase.BoardView) BoardViewResponse {
	jobs := make([]BoardJobResponse, 0, len(v.Jobs))
	for _, j := range v.Jobs {
		lines := make([]BoardLineResponse, 0, len(j.Lines))
		for _, l := range j.Lines {
			lines = append(lines, BoardLineResponse{
				LineIndex:   l.LineIndex,
				State:       string(l.State),
				InventoryID: l.InventoryID,
				Qty:         l.Qty,
				ETA:         l.ETA,
			})
		}
		jobs = append(jobs, BoardJobResponse{
			JobID:           j.JobID,
			WorkOrderNumber: j.WorkOrderNumber,
			PoliceNumber:    j.PoliceNumber,
			CustomerName:    j.CustomerName,
			Status:          string(j.Status),
			IntakeTime:      j.IntakeTime,
			Readiness:       string(j.Readiness),
			ReadyCount:      j.ReadyCount,
			TotalCount:      j.TotalCount,
			Lines:           lines,
		})
	}
	return BoardViewResponse{
		GeneratedAt: v.GeneratedAt,
		Jobs:        jobs,
		Warnings:    v.Warnings,
	}
}
