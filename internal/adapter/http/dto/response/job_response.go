package response

import (
	"time"

	"funilaria_ops/internal/domain/entities"
)

type PartLineResponse struct {
	InventoryID string  `json:"inventory_id,omitempty"`
	Code        string  `json:"code,omitempty"`
	Name        string  `json:"name"`
	Qty         float64 `json:"qty"`
	HasArrived  bool    `json:"has_arrived"`
	IsIndent    bool    `json:"is_indent"`
	ETA         string  `json:"eta,omitempty"`
}

type ServiceLineResponse struct {
	Name  string `json:"name"`
	Price string `json:"price"`
}

type UsageLogEntryResponse struct {
	InventoryID string    `json:"inventory_id"`
	Name        string    `json:"name"`
	Qty         float64   `json:"qty"`
	UnitPrice   string    `json:"unit_price"`
	LineIndex   int       `json:"line_index"`
	IssuedAt    time.Time `json:"issued_at"`
}

type JobResponse struct {
	ID              string                  `json:"id"`
	WorkOrderNumber string                  `json:"work_order_number,omitempty"`
	PoliceNumber    string                  `json:"police_number"`
	CustomerName    string                  `json:"customer_name,omitempty"`
	Status          string                  `json:"status"`
	IsClosed        bool                    `json:"is_closed"`
	OnPremises      bool                    `json:"on_premises"`
	IntakeTime      time.Time               `json:"intake_time"`
	PartLines       []PartLineResponse      `json:"part_lines"`
	ServiceLines    []ServiceLineResponse   `json:"service_lines"`
	UsageLog        []UsageLogEntryResponse `json:"usage_log"`
	CreatedAt       time.Time               `json:"created_at"`
	UpdatedAt       time.Time               `json:"updated_at"`
}

func FromJob(j entities.Job) JobResponse {
	partLines := make([]PartLineResponse, 0, len(j.PartLines))
	for _, l := range j.PartLines {
		partLines = append(partLines, PartLineResponse{
			InventoryID: l.InventoryID,
			Code:        l.Code,
			Name:        l.Name,
			Qty:         l.Qty,
			HasArrived:  l.HasArrived,
			IsIndent:    l.IsIndent,
			ETA:         l.ETA,
		})
	}
	serviceLines := make([]ServiceLineResponse, 0, len(j.ServiceLines))
	for _, l := range j.ServiceLines {
		serviceLines = append(serviceLines, ServiceLineResponse{
			Name:  l.Name,
			Price: l.Price.String(),
		})
	}
	usageLog := make([]UsageLogEntryResponse, 0, len(j.UsageLog))
	for _, u := range j.UsageLog {
		usageLog = append(usageLog, UsageLogEntryResponse{
			InventoryID: u.InventoryID,
			Name:        u.Name,
			Qty:         u.Qty,
			UnitPrice:   u.UnitPrice.String(),
			LineIndex:   u.LineIndex,
			IssuedAt:    u.IssuedAt,
		})
	}

	return JobResponse{
		ID:              j.ID,
		WorkOrderNumber: j.WorkOrderNumber,
		PoliceNumber:    j.PoliceNumber,
		CustomerName:    j.CustomerName,
		Status:          string(j.Status),
		IsClosed:        j.IsClosed,
		OnPremises:      j.OnPremises,
		IntakeTime:      j.IntakeTime,
		PartLines:       partLines,
		ServiceLines:    serviceLines,
		UsageLog:        usageLog,
		CreatedAt:       j.CreatedAt,
		UpdatedAt:       j.UpdatedAt,
	}
}

func FromJobs(jobs []entities.Job) []JobResponse {
	out := make([]JobResponse, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, FromJob(j))
	}
	return out
}
