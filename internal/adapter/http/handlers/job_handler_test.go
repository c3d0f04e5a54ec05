package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"funilaria_ops/internal/adapter/http/handlers/mocks"
	"funilaria_ops/internal/domain/entities"
	"funilaria_ops/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newJobRouter(t *testing.T) (*gin.Engine, *mocks.MockIJobUseCase) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	uc := mocks.NewMockIJobUseCase(ctrl)
	h := NewJobHandler(uc)

	r := gin.New()
	r.POST("/v1/jobs", h.Intake)
	r.GET("/v1/jobs/:id", h.GetByID)
	r.PATCH("/v1/jobs/:id/status", h.UpdateStatus)
	r.PUT("/v1/jobs/:id/part-lines", h.ReplacePartLines)
	return r, uc
}

func TestJobHandler_Intake(t *testing.T) {
	t.Run("missing police number", func(t *testing.T) {
		r, _ := newJobRouter(t)

		req := httptest.NewRequest(http.MethodPost, "/v1/jobs", bytes.NewBufferString(`{"customer_name":"Siti"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		r, uc := newJobRouter(t)
		uc.EXPECT().Intake(gomock.Any(), usecase.IntakeCommand{PoliceNumber: "B 1234 XY", CustomerName: "Siti"}).
			Return(entities.Job{ID: "j1", PoliceNumber: "B 1234 XY", Status: entities.JobStatusSurvey}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/jobs", bytes.NewBufferString(`{"police_number":"B 1234 XY","customer_name":"Siti"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "j1" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestJobHandler_GetByID(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		r, uc := newJobRouter(t)
		uc.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Job{}, usecase.ErrJobNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/jobs/missing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestJobHandler_UpdateStatus(t *testing.T) {
	t.Run("closed job maps to conflict", func(t *testing.T) {
		r, uc := newJobRouter(t)
		uc.EXPECT().UpdateStatus(gomock.Any(), "j1", entities.JobStatusPainting).
			Return(entities.Job{}, usecase.ErrJobClosed)

		req := httptest.NewRequest(http.MethodPatch, "/v1/jobs/j1/status", bytes.NewBufferString(`{"status":"painting"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestJobHandler_ReplacePartLines(t *testing.T) {
	t.Run("arrived line tamper maps to conflict", func(t *testing.T) {
		r, uc := newJobRouter(t)
		uc.EXPECT().ReplacePartLines(gomock.Any(), "j1", gomock.Any()).
			Return(entities.Job{}, usecase.ErrArrivedLineImmutable)

		req := httptest.NewRequest(http.MethodPut, "/v1/jobs/j1/part-lines",
			bytes.NewBufferString(`{"lines":[{"name":"bumper","qty":1}]}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success carries lines through", func(t *testing.T) {
		r, uc := newJobRouter(t)
		uc.EXPECT().ReplacePartLines(gomock.Any(), "j1", []entities.PartLine{{Name: "hood", Qty: 2, Code: "HD"}}).
			Return(entities.Job{ID: "j1", PartLines: []entities.PartLine{{Name: "hood", Qty: 2, Code: "HD"}}}, nil)

		req := httptest.NewRequest(http.MethodPut, "/v1/jobs/j1/part-lines",
			bytes.NewBufferString(`{"lines":[{"name":"hood","qty":2,"code":"HD"}]}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
