package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"funilaria_ops/internal/adapter/http/handlers/mocks"
	"funilaria_ops/internal/domain/entities"
	"funilaria_ops/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newIssuanceRouter(t *testing.T) (*gin.Engine, *mocks.MockIIssuanceUseCase) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	uc := mocks.NewMockIIssuanceUseCase(ctrl)
	h := NewIssuanceHandler(uc)

	r := gin.New()
	r.POST("/v1/issuance/:job_id", h.IssuePart)
	return r, uc
}

func TestIssuanceHandler_IssuePart(t *testing.T) {
	t.Run("missing line index", func(t *testing.T) {
		r, _ := newIssuanceRouter(t)

		req := httptest.NewRequest(http.MethodPost, "/v1/issuance/j1", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("line index zero binds", func(t *testing.T) {
		r, uc := newIssuanceRouter(t)
		uc.EXPECT().IssuePart(gomock.Any(), "j1", 0).Return(entities.Job{ID: "j1"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/issuance/j1", bytes.NewBufferString(`{"line_index":0}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("insufficient stock maps to conflict", func(t *testing.T) {
		r, uc := newIssuanceRouter(t)
		uc.EXPECT().IssuePart(gomock.Any(), "j1", 2).Return(entities.Job{}, usecase.ErrInsufficientStock)

		req := httptest.NewRequest(http.MethodPost, "/v1/issuance/j1", bytes.NewBufferString(`{"line_index":2}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("unlinked line maps to 422", func(t *testing.T) {
		r, uc := newIssuanceRouter(t)
		uc.EXPECT().IssuePart(gomock.Any(), "j1", 1).Return(entities.Job{}, usecase.ErrLineUnlinked)

		req := httptest.NewRequest(http.MethodPost, "/v1/issuance/j1", bytes.NewBufferString(`{"line_index":1}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})
}
