package usecase

import (
	"context"
	"errors"
	"strings"

	"funilaria_ops/internal/domain/allocation"
	"funilaria_ops/internal/domain/entities"
	"funilaria_ops/internal/usecase/interfaces"
	"funilaria_ops/pkg/metrics"

	"github.com/rs/zerolog"
)

var (
	ErrLineOutOfRange    = errors.New("part line index out of range")
	ErrLineAlreadyIssued = errors.New("part line already issued")
	ErrLineUnlinked      = errors.New("part line not linked to master stock")
	ErrInsufficientStock = interfaces.ErrInsufficientStock
)

// IIssuanceUseCase performs the real stock mutation behind the "issue part"
// action. Everything the boards show is a virtual projection; this is the one
// path that touches durable quantities.

type IIssuanceUseCase interface {
	IssuePart(ctx context.Context, jobID string, lineIndex int) (entities.Job, error)
}

type IssuanceUseCase struct {
	jobRepo   interfaces.IJobRepository
	invRepo   interfaces.IInventoryRepository
	issueRepo interfaces.IIssuanceRepository
	boards    *metrics.BoardMetrics
	log       zerolog.Logger
}

var _ IIssuanceUseCase = (*IssuanceUseCase)(nil)

func NewIssuanceUseCase(
	jobRepo interfaces.IJobRepository,
	invRepo interfaces.IInventoryRepository,
	issueRepo interfaces.IIssuanceRepository,
	boards *metrics.BoardMetrics,
	log zerolog.Logger,
) *IssuanceUseCase {
	return &IssuanceUseCase{jobRepo: jobRepo, invRepo: invRepo, issueRepo: issueRepo, boards: boards, log: log}
}

// IssuePart commits one part line. The display-time snapshot is never trusted
// here: the conditional decrement inside the repository transaction re-checks
// the authoritative on-hand quantity, so a reservation shown READY minutes ago
// can still fail with ErrInsufficientStock, with no partial write.
func (u *IssuanceUseCase) IssuePart(ctx context.Context, jobID string, lineIndex int) (entities.Job, error) {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return entities.Job{}, ErrInvalidJobID
	}

	job, err := u.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return entities.Job{}, err
	}
	if job.ID == "" || job.IsDeleted {
		return entities.Job{}, ErrJobNotFound
	}
	if job.IsClosed {
		return entities.Job{}, ErrJobClosed
	}
	if lineIndex < 0 || lineIndex >= len(job.PartLines) {
		return entities.Job{}, ErrLineOutOfRange
	}

	line := job.PartLines[lineIndex]
	if line.HasArrived {
		return entities.Job{}, ErrLineAlreadyIssued
	}

	inventory, err := u.invRepo.List(ctx)
	if err != nil {
		return entities.Job{}, err
	}
	item, ok := allocation.NewIndex(inventory).Resolve(line)
	if !ok {
		u.boards.IncIssueFailure("unlinked")
		return entities.Job{}, ErrLineUnlinked
	}

	qty := line.Qty
	if qty <= 0 {
		qty = 1
	}

	cmd := interfaces.IssueCommand{
		JobID:       job.ID,
		LineIndex:   lineIndex,
		InventoryID: item.ID,
		ItemName:    item.Name,
		Qty:         qty,
		UnitPrice:   item.SellPrice,
	}
	if err := u.issueRepo.CommitIssue(ctx, cmd); err != nil {
		switch {
		case errors.Is(err, interfaces.ErrInsufficientStock):
			u.boards.IncIssueFailure("insufficient_stock")
		case errors.Is(err, interfaces.ErrStaleCommit):
			u.boards.IncIssueFailure("stale_commit")
		default:
			u.boards.IncIssueFailure("error")
		}
		u.log.Warn().Err(err).
			Str("job_id", job.ID).
			Int("line_index", lineIndex).
			Str("item_id", item.ID).
			Float64("qty", qty).
			Msg("issuance commit failed")
		return entities.Job{}, err
	}

	u.boards.IncIssueSuccess()
	u.log.Info().
		Str("job_id", job.ID).
		Int("line_index", lineIndex).
		Str("item_id", item.ID).
		Float64("qty", qty).
		Msg("part issued")

	// Re-read the authoritative record rather than patching the local copy;
	// the transaction is the source of truth for what changed.
	return u.jobRepo.GetByID(ctx, job.ID)
}
