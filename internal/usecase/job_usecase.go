package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"funilaria_ops/internal/domain/entities"
	"funilaria_ops/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrJobNotFound          = errors.New("job not found")
	ErrInvalidJobID         = errors.New("invalid job id")
	ErrInvalidPoliceNumber  = errors.New("invalid police number")
	ErrInvalidJobStatus     = errors.New("invalid job status")
	ErrJobClosed            = errors.New("job is closed")
	ErrArrivedLineImmutable = errors.New("arrived part line cannot be changed")
)

var validJobStatuses = map[entities.JobStatus]struct{}{
	entities.JobStatusSurvey:     {},
	entities.JobStatusEstimating: {},
	entities.JobStatusApproved:   {},
	entities.JobStatusBodywork:   {},
	entities.JobStatusPainting:   {},
	entities.JobStatusAssembly:   {},
	entities.JobStatusFinished:   {},
}

// IntakeCommand carries the fields captured when a vehicle enters the queue.
// The work-order number is usually assigned later, once the estimate is
// approved; until then the job stays off every readiness board.
type IntakeCommand struct {
	PoliceNumber    string
	CustomerName    string
	WorkOrderNumber string
	OnPremises      bool
}

// IJobUseCase exposes job/claim lifecycle operations.

type IJobUseCase interface {
	Intake(ctx context.Context, cmd IntakeCommand) (entities.Job, error)
	GetByID(ctx context.Context, id string) (entities.Job, error)
	List(ctx context.Context) ([]entities.Job, error)
	UpdateStatus(ctx context.Context, id string, status entities.JobStatus) (entities.Job, error)
	AssignWorkOrder(ctx context.Context, id, workOrderNumber string) (entities.Job, error)
	ReplacePartLines(ctx context.Context, id string, lines []entities.PartLine) (entities.Job, error)
	ReplaceServiceLines(ctx context.Context, id string, lines []entities.ServiceLine) (entities.Job, error)
	SetOnPremises(ctx context.Context, id string, onPremises bool) (entities.Job, error)
	Close(ctx context.Context, id string) (entities.Job, error)
	SoftDelete(ctx context.Context, id string) (entities.Job, error)
}

type JobUseCase struct {
	repo interfaces.IJobRepository
}

var _ IJobUseCase = (*JobUseCase)(nil)

func NewJobUseCase(repo interfaces.IJobRepository) *JobUseCase {
	return &JobUseCase{repo: repo}
}

func (u *JobUseCase) Intake(ctx context.Context, cmd IntakeCommand) (entities.Job, error) {
	police := strings.TrimSpace(cmd.PoliceNumber)
	if police == "" {
		return entities.Job{}, ErrInvalidPoliceNumber
	}

	now := time.Now().UTC()
	j := entities.Job{
		ID:              uuid.NewString(),
		WorkOrderNumber: strings.TrimSpace(cmd.WorkOrderNumber),
		PoliceNumber:    police,
		CustomerName:    strings.TrimSpace(cmd.CustomerName),
		Status:          entities.JobStatusSurvey,
		OnPremises:      cmd.OnPremises,
		IntakeTime:      now,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	return u.repo.Create(ctx, j)
}

func (u *JobUseCase) GetByID(ctx context.Context, id string) (entities.Job, error) {
	return u.load(ctx, id)
}

func (u *JobUseCase) List(ctx context.Context) ([]entities.Job, error) {
	jobs, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	visible := jobs[:0]
	for _, j := range jobs {
		if !j.IsDeleted {
			visible = append(visible, j)
		}
	}
	return visible, nil
}

func (u *JobUseCase) UpdateStatus(ctx context.Context, id string, status entities.JobStatus) (entities.Job, error) {
	if _, ok := validJobStatuses[status]; !ok {
		return entities.Job{}, ErrInvalidJobStatus
	}
	return u.mutate(ctx, id, func(j *entities.Job) error {
		j.Status = status
		return nil
	})
}

func (u *JobUseCase) AssignWorkOrder(ctx context.Context, id, workOrderNumber string) (entities.Job, error) {
	workOrderNumber = strings.TrimSpace(workOrderNumber)
	if workOrderNumber == "" {
		return entities.Job{}, ErrInvalidJobID
	}
	return u.mutate(ctx, id, func(j *entities.Job) error {
		j.WorkOrderNumber = workOrderNumber
		return nil
	})
}

// ReplacePartLines swaps the estimate's part lines. Lines that already
// arrived consumed real stock through the commit boundary and must survive the
// replacement untouched, at the same index.
func (u *JobUseCase) ReplacePartLines(ctx context.Context, id string, lines []entities.PartLine) (entities.Job, error) {
	return u.mutate(ctx, id, func(j *entities.Job) error {
		for i, existing := range j.PartLines {
			if !existing.HasArrived {
				continue
			}
			if i >= len(lines) {
				return ErrArrivedLineImmutable
			}
			replacement := lines[i]
			if !replacement.HasArrived ||
				replacement.InventoryID != existing.InventoryID ||
				replacement.Qty != existing.Qty {
				return ErrArrivedLineImmutable
			}
		}
		for i := range lines {
			if i >= len(j.PartLines) && lines[i].HasArrived {
				// New lines cannot be born arrived; arrival only happens
				// through the issuance commit.
				return ErrArrivedLineImmutable
			}
		}
		j.PartLines = lines
		return nil
	})
}

func (u *JobUseCase) ReplaceServiceLines(ctx context.Context, id string, lines []entities.ServiceLine) (entities.Job, error) {
	return u.mutate(ctx, id, func(j *entities.Job) error {
		j.ServiceLines = lines
		return nil
	})
}

func (u *JobUseCase) SetOnPremises(ctx context.Context, id string, onPremises bool) (entities.Job, error) {
	return u.mutate(ctx, id, func(j *entities.Job) error {
		j.OnPremises = onPremises
		return nil
	})
}

func (u *JobUseCase) Close(ctx context.Context, id string) (entities.Job, error) {
	return u.mutate(ctx, id, func(j *entities.Job) error {
		j.IsClosed = true
		return nil
	})
}

func (u *JobUseCase) SoftDelete(ctx context.Context, id string) (entities.Job, error) {
	j, err := u.load(ctx, id)
	if err != nil {
		return entities.Job{}, err
	}
	j.IsDeleted = true
	j.UpdatedAt = time.Now().UTC()
	return u.repo.Save(ctx, j)
}

func (u *JobUseCase) load(ctx context.Context, id string) (entities.Job, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Job{}, ErrInvalidJobID
	}
	j, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Job{}, err
	}
	if j.ID == "" || j.IsDeleted {
		return entities.Job{}, ErrJobNotFound
	}
	return j, nil
}

func (u *JobUseCase) mutate(ctx context.Context, id string, apply func(*entities.Job) error) (entities.Job, error) {
	j, err := u.load(ctx, id)
	if err != nil {
		return entities.Job{}, err
	}
	if j.IsClosed {
		return entities.Job{}, ErrJobClosed
	}
	if err := apply(&j); err != nil {
		return entities.Job{}, err
	}
	j.UpdatedAt = time.Now().UTC()
	return u.repo.Save(ctx, j)
}
