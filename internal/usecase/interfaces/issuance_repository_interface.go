package interfaces

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
)

var (
	// ErrInsufficientStock: the authoritative on-hand quantity re-read at
	// commit time was lower than the requested deduction. Nothing was written.
	ErrInsufficientStock = errors.New("insufficient stock at commit time")
	// ErrStaleCommit: the job record changed underneath the commit (line
	// already arrived, job closed/deleted). Nothing was written.
	ErrStaleCommit = errors.New("job record changed since read")
)

// IssueCommand carries everything one issuance commit needs.
type IssueCommand struct {
	JobID       string
	LineIndex   int
	InventoryID string
	ItemName    string
	Qty         float64
	UnitPrice   decimal.Decimal
}

// IIssuanceRepository is the Commit Boundary for part issuance.
//
// CommitIssue must perform, as one atomic unit: verify on-hand >= qty,
// decrement on-hand, mark the job's part line arrived, and append the
// usage-log entry. On any conditional failure the whole transaction is
// cancelled and mapped to one of the sentinel errors above; a partial write
// is never visible.

type IIssuanceRepository interface {
	CommitIssue(ctx context.Context, cmd IssueCommand) error
}
