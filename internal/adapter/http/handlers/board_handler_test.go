package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"funilaria_ops/internal/adapter/http/handlers/mocks"
	"funilaria_ops/internal/domain/allocation"
	"funilaria_ops/internal/domain/entities"
	"funilaria_ops/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newBoardRouter(t *testing.T) (*gin.Engine, *mocks.MockIMonitoringUseCase) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	uc := mocks.NewMockIMonitoringUseCase(ctrl)
	h := NewBoardHandler(uc)

	r := gin.New()
	r.GET("/v1/boards/claims", h.Claims)
	r.GET("/v1/boards/issuance", h.Issuance)
	r.GET("/v1/boards/monitoring", h.Monitoring)
	return r, uc
}

func TestBoardHandler_Claims(t *testing.T) {
	r, uc := newBoardRouter(t)
	uc.EXPECT().ClaimsBoard(gomock.Any(), "siti").Return(usecase.BoardView{
		Jobs: []usecase.BoardJob{{
			JobResult: allocation.JobResult{
				JobID:           "j1",
				WorkOrderNumber: "WO-1",
				Readiness:       allocation.ReadinessComplete,
				Lines: []allocation.LineResult{
					{LineIndex: 0, State: allocation.LineReady, InventoryID: "inv-1", Qty: 2},
				},
			},
			PoliceNumber: "B 1 A",
		}},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/boards/claims?search=siti", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body struct {
		Jobs []struct {
			JobID     string `json:"job_id"`
			Readiness string `json:"readiness"`
		} `json:"jobs"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if len(body.Jobs) != 1 || body.Jobs[0].JobID != "j1" || body.Jobs[0].Readiness != "COMPLETE" {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestBoardHandler_Issuance(t *testing.T) {
	t.Run("invalid category", func(t *testing.T) {
		r, _ := newBoardRouter(t)

		req := httptest.NewRequest(http.MethodGet, "/v1/boards/issuance?category=widgets", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("defaults to sparepart", func(t *testing.T) {
		r, uc := newBoardRouter(t)
		uc.EXPECT().IssuanceQueue(gomock.Any(), entities.ItemCategorySparepart, "").Return(usecase.BoardView{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/boards/issuance", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
