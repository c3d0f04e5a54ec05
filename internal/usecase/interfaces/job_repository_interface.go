package interfaces

import (
	"context"

	"funilaria_ops/internal/domain/entities"
)

// IJobRepository abstracts DynamoDB persistence for Job.
//
// List returns every non-deleted job; eligibility filtering and FIFO ordering
// for the boards happen in memory, in the allocation package.

type IJobRepository interface {
	Create(ctx context.Context, j entities.Job) (entities.Job, error)
	GetByID(ctx context.Context, id string) (entities.Job, error)
	List(ctx context.Context) ([]entities.Job, error)
	Save(ctx context.Context, j entities.Job) (entities.Job, error)
}
