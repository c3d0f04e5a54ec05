package usecase

import (
	"context"
	"errors"
	"testing"

	"funilaria_ops/internal/domain/entities"
	"funilaria_ops/internal/usecase/interfaces"
	mock_interfaces "funilaria_ops/internal/usecase/interfaces/mocks"
	"funilaria_ops/pkg/metrics"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

type issuanceMocks struct {
	jobRepo   *mock_interfaces.MockIJobRepository
	invRepo   *mock_interfaces.MockIInventoryRepository
	issueRepo *mock_interfaces.MockIIssuanceRepository
}

func newIssuanceUseCase(t *testing.T) (*IssuanceUseCase, issuanceMocks) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	m := issuanceMocks{
		jobRepo:   mock_interfaces.NewMockIJobRepository(ctrl),
		invRepo:   mock_interfaces.NewMockIInventoryRepository(ctrl),
		issueRepo: mock_interfaces.NewMockIIssuanceRepository(ctrl),
	}
	uc := NewIssuanceUseCase(m.jobRepo, m.invRepo, m.issueRepo, metrics.NewBoardMetrics(nil), zerolog.Nop())
	return uc, m
}

func TestIssuanceUseCase_IssuePart(t *testing.T) {
	job := entities.Job{
		ID:              "j1",
		WorkOrderNumber: "WO-1",
		PartLines: []entities.PartLine{
			{InventoryID: "inv-1", Name: "bumper", Qty: 2},
			{InventoryID: "inv-1", Name: "bumper", Qty: 1, HasArrived: true},
			{Code: "", Name: "unlinked", Qty: 1},
		},
	}
	inventory := []entities.InventoryItem{
		{ID: "inv-1", Code: "BMP", Name: "Bumper F30", OnHand: 5, SellPrice: decimal.NewFromInt(150)},
	}

	t.Run("commit success", func(t *testing.T) {
		uc, m := newIssuanceUseCase(t)
		m.jobRepo.EXPECT().GetByID(gomock.Any(), "j1").Return(job, nil)
		m.invRepo.EXPECT().List(gomock.Any()).Return(inventory, nil)
		m.issueRepo.EXPECT().CommitIssue(gomock.Any(), gomock.AssignableToTypeOf(interfaces.IssueCommand{})).DoAndReturn(
			func(_ context.Context, cmd interfaces.IssueCommand) error {
				if cmd.JobID != "j1" || cmd.LineIndex != 0 || cmd.InventoryID != "inv-1" || cmd.Qty != 2 {
					t.Fatalf("unexpected command: %+v", cmd)
				}
				if !cmd.UnitPrice.Equal(decimal.NewFromInt(150)) {
					t.Fatalf("expected sell price on command, got %s", cmd.UnitPrice)
				}
				return nil
			},
		)
		m.jobRepo.EXPECT().GetByID(gomock.Any(), "j1").Return(job, nil)

		if _, err := uc.IssuePart(context.Background(), "j1", 0); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("already issued", func(t *testing.T) {
		uc, m := newIssuanceUseCase(t)
		m.jobRepo.EXPECT().GetByID(gomock.Any(), "j1").Return(job, nil)

		_, err := uc.IssuePart(context.Background(), "j1", 1)
		if !errors.Is(err, ErrLineAlreadyIssued) {
			t.Fatalf("expected ErrLineAlreadyIssued, got %v", err)
		}
	})

	t.Run("unlinked line", func(t *testing.T) {
		uc, m := newIssuanceUseCase(t)
		m.jobRepo.EXPECT().GetByID(gomock.Any(), "j1").Return(job, nil)
		m.invRepo.EXPECT().List(gomock.Any()).Return(inventory, nil)

		_, err := uc.IssuePart(context.Background(), "j1", 2)
		if !errors.Is(err, ErrLineUnlinked) {
			t.Fatalf("expected ErrLineUnlinked, got %v", err)
		}
	})

	t.Run("line out of range", func(t *testing.T) {
		uc, m := newIssuanceUseCase(t)
		m.jobRepo.EXPECT().GetByID(gomock.Any(), "j1").Return(job, nil)

		_, err := uc.IssuePart(context.Background(), "j1", 9)
		if !errors.Is(err, ErrLineOutOfRange) {
			t.Fatalf("expected ErrLineOutOfRange, got %v", err)
		}
	})

	t.Run("insufficient stock surfaces unchanged", func(t *testing.T) {
		uc, m := newIssuanceUseCase(t)
		m.jobRepo.EXPECT().GetByID(gomock.Any(), "j1").Return(job, nil)
		m.invRepo.EXPECT().List(gomock.Any()).Return(inventory, nil)
		m.issueRepo.EXPECT().CommitIssue(gomock.Any(), gomock.Any()).Return(interfaces.ErrInsufficientStock)

		_, err := uc.IssuePart(context.Background(), "j1", 0)
		if !errors.Is(err, ErrInsufficientStock) {
			t.Fatalf("expected ErrInsufficientStock, got %v", err)
		}
	})

	t.Run("closed job", func(t *testing.T) {
		uc, m := newIssuanceUseCase(t)
		closed := job
		closed.IsClosed = true
		m.jobRepo.EXPECT().GetByID(gomock.Any(), "j1").Return(closed, nil)

		_, err := uc.IssuePart(context.Background(), "j1", 0)
		if !errors.Is(err, ErrJobClosed) {
			t.Fatalf("expected ErrJobClosed, got %v", err)
		}
	})
}
