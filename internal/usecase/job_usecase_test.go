package usecase

import (
	"context"
	"errors"
	"testing"

	"funilaria_ops/internal/domain/entities"
	mock_interfaces "funilaria_ops/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestJobUseCase_Intake(t *testing.T) {
	t.Run("invalid police number", func(t *testing.T) {
		uc := NewJobUseCase(nil)
		_, err := uc.Intake(context.Background(), IntakeCommand{PoliceNumber: "   "})
		if !errors.Is(err, ErrInvalidPoliceNumber) {
			t.Fatalf("expected ErrInvalidPoliceNumber, got %v", err)
		}
	})

	t.Run("create success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIJobRepository(ctrl)
		uc := NewJobUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Job{})).DoAndReturn(
			func(_ context.Context, j entities.Job) (entities.Job, error) {
				if j.ID == "" || j.PoliceNumber != "B 1234 XY" || j.Status != entities.JobStatusSurvey {
					t.Fatalf("unexpected job: %+v", j)
				}
				if j.IntakeTime.IsZero() || j.CreatedAt.IsZero() {
					t.Fatalf("expected timestamps")
				}
				return j, nil
			},
		)

		res, err := uc.Intake(context.Background(), IntakeCommand{PoliceNumber: " B 1234 XY ", CustomerName: "Siti", OnPremises: true})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.OnPremises {
			t.Fatalf("expected on-premises flag kept")
		}
	})
}

func TestJobUseCase_MutationGuards(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIJobRepository(ctrl)
		uc := NewJobUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Job{}, nil)

		_, err := uc.UpdateStatus(context.Background(), "missing", entities.JobStatusPainting)
		if !errors.Is(err, ErrJobNotFound) {
			t.Fatalf("expected ErrJobNotFound, got %v", err)
		}
	})

	t.Run("deleted job behaves as missing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIJobRepository(ctrl)
		uc := NewJobUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "j1").Return(entities.Job{ID: "j1", IsDeleted: true}, nil)

		_, err := uc.GetByID(context.Background(), "j1")
		if !errors.Is(err, ErrJobNotFound) {
			t.Fatalf("expected ErrJobNotFound, got %v", err)
		}
	})

	t.Run("closed job rejects mutation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIJobRepository(ctrl)
		uc := NewJobUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "j1").Return(entities.Job{ID: "j1", IsClosed: true}, nil)

		_, err := uc.UpdateStatus(context.Background(), "j1", entities.JobStatusPainting)
		if !errors.Is(err, ErrJobClosed) {
			t.Fatalf("expected ErrJobClosed, got %v", err)
		}
	})

	t.Run("invalid status", func(t *testing.T) {
		uc := NewJobUseCase(nil)
		_, err := uc.UpdateStatus(context.Background(), "j1", entities.JobStatus("warp"))
		if !errors.Is(err, ErrInvalidJobStatus) {
			t.Fatalf("expected ErrInvalidJobStatus, got %v", err)
		}
	})
}

func TestJobUseCase_ReplacePartLines(t *testing.T) {
	arrived := entities.PartLine{InventoryID: "inv-1", Name: "bumper", Qty: 1, HasArrived: true}

	newController := func(t *testing.T, stored entities.Job) (*JobUseCase, *mock_interfaces.MockIJobRepository) {
		ctrl := gomock.NewController(t)
		t.Cleanup(ctrl.Finish)
		repo := mock_interfaces.NewMockIJobRepository(ctrl)
		repo.EXPECT().GetByID(gomock.Any(), stored.ID).Return(stored, nil)
		return NewJobUseCase(repo), repo
	}

	t.Run("arrived line dropped", func(t *testing.T) {
		uc, _ := newController(t, entities.Job{ID: "j1", PartLines: []entities.PartLine{arrived}})
		_, err := uc.ReplacePartLines(context.Background(), "j1", nil)
		if !errors.Is(err, ErrArrivedLineImmutable) {
			t.Fatalf("expected ErrArrivedLineImmutable, got %v", err)
		}
	})

	t.Run("arrived line altered", func(t *testing.T) {
		uc, _ := newController(t, entities.Job{ID: "j1", PartLines: []entities.PartLine{arrived}})
		altered := arrived
		altered.Qty = 2
		_, err := uc.ReplacePartLines(context.Background(), "j1", []entities.PartLine{altered})
		if !errors.Is(err, ErrArrivedLineImmutable) {
			t.Fatalf("expected ErrArrivedLineImmutable, got %v", err)
		}
	})

	t.Run("new line born arrived", func(t *testing.T) {
		uc, _ := newController(t, entities.Job{ID: "j1"})
		_, err := uc.ReplacePartLines(context.Background(), "j1", []entities.PartLine{{Name: "hood", Qty: 1, HasArrived: true}})
		if !errors.Is(err, ErrArrivedLineImmutable) {
			t.Fatalf("expected ErrArrivedLineImmutable, got %v", err)
		}
	})

	t.Run("replace success keeps arrived line", func(t *testing.T) {
		uc, repo := newController(t, entities.Job{ID: "j1", PartLines: []entities.PartLine{arrived}})
		repo.EXPECT().Save(gomock.Any(), gomock.AssignableToTypeOf(entities.Job{})).DoAndReturn(
			func(_ context.Context, j entities.Job) (entities.Job, error) {
				if len(j.PartLines) != 2 || !j.PartLines[0].HasArrived || j.PartLines[1].Name != "hood" {
					t.Fatalf("unexpected part lines: %+v", j.PartLines)
				}
				return j, nil
			},
		)

		_, err := uc.ReplacePartLines(context.Background(), "j1", []entities.PartLine{
			arrived,
			{Name: "hood", Qty: 1},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestJobUseCase_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIJobRepository(ctrl)
	uc := NewJobUseCase(repo)

	repo.EXPECT().List(gomock.Any()).Return([]entities.Job{
		{ID: "keep"},
		{ID: "hidden", IsDeleted: true},
	}, nil)

	jobs, err := uc.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(jobs) != 1 || jobs[0].ID != "keep" {
		t.Fatalf("expected deleted jobs filtered, got %+v", jobs)
	}
}
