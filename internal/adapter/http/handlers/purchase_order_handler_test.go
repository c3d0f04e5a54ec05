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
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func newPurchaseOrderRouter(t *testing.T) (*gin.Engine, *mocks.MockIPurchaseOrderUseCase) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	uc := mocks.NewMockIPurchaseOrderUseCase(ctrl)
	h := NewPurchaseOrderHandler(uc)

	r := gin.New()
	r.POST("/v1/purchase-orders", h.Create)
	r.GET("/v1/purchase-orders/:id", h.GetByID)
	r.PATCH("/v1/purchase-orders/:id/order", h.MarkOrdered)
	r.PATCH("/v1/purchase-orders/:id/receive", h.Receive)
	r.PATCH("/v1/purchase-orders/:id/cancel", h.Cancel)
	return r, uc
}

func TestPurchaseOrderHandler_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		r, uc := newPurchaseOrderRouter(t)
		uc.EXPECT().Create(gomock.Any(), usecase.CreatePurchaseOrderCommand{
			Supplier: "PT Sparepart Jaya",
			Lines: []entities.PurchaseOrderLine{
				{InventoryID: "inv-1", Name: "Front bumper", Qty: 2, UnitCost: decimal.RequireFromString("150.5")},
			},
		}).Return(entities.PurchaseOrder{ID: "po-1", Status: entities.PurchaseOrderStatusDraft}, nil)

		body := `{"supplier":"PT Sparepart Jaya","lines":[{"inventory_id":"inv-1","name":"Front bumper","qty":2,"unit_cost":"150.5"}]}`
		req := httptest.NewRequest(http.MethodPost, "/v1/purchase-orders", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["id"] != "po-1" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("bad unit cost", func(t *testing.T) {
		r, _ := newPurchaseOrderRouter(t)

		body := `{"supplier":"PT Sparepart Jaya","lines":[{"inventory_id":"inv-1","qty":1,"unit_cost":"abc"}]}`
		req := httptest.NewRequest(http.MethodPost, "/v1/purchase-orders", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestPurchaseOrderHandler_Transitions(t *testing.T) {
	t.Run("receive flips status", func(t *testing.T) {
		r, uc := newPurchaseOrderRouter(t)
		uc.EXPECT().Receive(gomock.Any(), "po-1").
			Return(entities.PurchaseOrder{ID: "po-1", Status: entities.PurchaseOrderStatusReceived}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/purchase-orders/po-1/receive", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["status"] != string(entities.PurchaseOrderStatusReceived) {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("invalid transition maps to conflict", func(t *testing.T) {
		r, uc := newPurchaseOrderRouter(t)
		uc.EXPECT().Receive(gomock.Any(), "po-1").
			Return(entities.PurchaseOrder{}, usecase.ErrInvalidPOTransition)

		req := httptest.NewRequest(http.MethodPatch, "/v1/purchase-orders/po-1/receive", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("unknown order", func(t *testing.T) {
		r, uc := newPurchaseOrderRouter(t)
		uc.EXPECT().MarkOrdered(gomock.Any(), "missing").
			Return(entities.PurchaseOrder{}, usecase.ErrPurchaseOrderNotFound)

		req := httptest.NewRequest(http.MethodPatch, "/v1/purchase-orders/missing/order", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}
