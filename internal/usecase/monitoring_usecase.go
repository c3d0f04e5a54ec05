package usecase

import (
	"context"
	"time"

	"funilaria_ops/internal/domain/allocation"
	"funilaria_ops/internal/domain/entities"
	"funilaria_ops/internal/usecase/interfaces"
	"funilaria_ops/pkg/metrics"
)

// Production stages whose jobs appear on the issuance and monitoring boards.
var issuanceStages = []entities.JobStatus{
	entities.JobStatusApproved,
	entities.JobStatusBodywork,
	entities.JobStatusPainting,
	entities.JobStatusAssembly,
}

// BoardJob joins one job's allocation outcome with the display fields the
// boards render next to it.
type BoardJob struct {
	allocation.JobResult
	PoliceNumber string             `json:"police_number"`
	CustomerName string             `json:"customer_name"`
	Status       entities.JobStatus `json:"status"`
	IntakeTime   time.Time          `json:"intake_time"`
}

// BoardView is the result of one allocation pass, shaped for the presentation
// layer. GeneratedAt marks the staleness window: the view is a projection of
// stock at that instant and is recomputed wholesale on the next call, never
// patched.
type BoardView struct {
	GeneratedAt time.Time  `json:"generated_at"`
	Jobs        []BoardJob `json:"jobs"`
	Warnings    []string   `json:"warnings,omitempty"`
}

// IMonitoringUseCase exposes the three readiness boards. Each call fetches
// jobs and inventory fresh, builds its own snapshot and runs one full pass;
// passes are never shared or cached between boards.

type IMonitoringUseCase interface {
	ClaimsBoard(ctx context.Context, search string) (BoardView, error)
	IssuanceQueue(ctx context.Context, category entities.ItemCategory, search string) (BoardView, error)
	PartMonitoring(ctx context.Context, search string) (BoardView, error)
}

type MonitoringUseCase struct {
	jobRepo interfaces.IJobRepository
	invRepo interfaces.IInventoryRepository
	boards  *metrics.BoardMetrics
}

var _ IMonitoringUseCase = (*MonitoringUseCase)(nil)

func NewMonitoringUseCase(jobRepo interfaces.IJobRepository, invRepo interfaces.IInventoryRepository, boards *metrics.BoardMetrics) *MonitoringUseCase {
	return &MonitoringUseCase{jobRepo: jobRepo, invRepo: invRepo, boards: boards}
}

// ClaimsBoard is the front-office view: every eligible job, any stage, with
// the service-line fallback so a repair-only car still shows as callable.
func (u *MonitoringUseCase) ClaimsBoard(ctx context.Context, search string) (BoardView, error) {
	return u.run(ctx, "claims", allocation.QueueFilter{Search: search},
		allocation.EmptyPartsServiceFallback, "")
}

// IssuanceQueue is the warehouse view for one stock category: on-premises
// production jobs only, no empty-parts fallback.
func (u *MonitoringUseCase) IssuanceQueue(ctx context.Context, category entities.ItemCategory, search string) (BoardView, error) {
	return u.run(ctx, "issuance", allocation.QueueFilter{
		OnPremisesOnly: true,
		Stages:         issuanceStages,
		Search:         search,
	}, allocation.EmptyPartsNone, category)
}

// PartMonitoring is the purchasing view: production jobs anywhere, with
// per-line ETA/indent detail surfaced by the line results.
func (u *MonitoringUseCase) PartMonitoring(ctx context.Context, search string) (BoardView, error) {
	return u.run(ctx, "monitoring", allocation.QueueFilter{
		Stages: issuanceStages,
		Search: search,
	}, allocation.EmptyPartsNone, "")
}

func (u *MonitoringUseCase) run(
	ctx context.Context,
	board string,
	filter allocation.QueueFilter,
	policy allocation.EmptyPartsPolicy,
	category entities.ItemCategory,
) (BoardView, error) {
	start := time.Now()

	jobs, err := u.jobRepo.List(ctx)
	if err != nil {
		return BoardView{}, err
	}

	var inventory []entities.InventoryItem
	if category != "" {
		inventory, err = u.invRepo.ListByCategory(ctx, category)
	} else {
		inventory, err = u.invRepo.List(ctx)
	}
	if err != nil {
		return BoardView{}, err
	}

	queue := allocation.BuildQueue(jobs, filter)
	res := allocation.Allocate(queue, inventory, policy)

	view := BoardView{
		GeneratedAt: start.UTC(),
		Jobs:        make([]BoardJob, 0, len(res.Jobs)),
		Warnings:    res.Warnings,
	}
	for i, jr := range res.Jobs {
		view.Jobs = append(view.Jobs, BoardJob{
			JobResult:    jr,
			PoliceNumber: queue[i].PoliceNumber,
			CustomerName: queue[i].CustomerName,
			Status:       queue[i].Status,
			IntakeTime:   queue[i].IntakeTime,
		})
	}

	u.boards.ObservePass(board, time.Since(start))
	return view, nil
}
