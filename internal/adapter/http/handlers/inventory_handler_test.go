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

func newInventoryRouter(t *testing.T) (*gin.Engine, *mocks.MockIInventoryUseCase) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	uc := mocks.NewMockIInventoryUseCase(ctrl)
	h := NewInventoryHandler(uc)

	r := gin.New()
	r.POST("/v1/inventory", h.Create)
	r.GET("/v1/inventory", h.List)
	r.GET("/v1/inventory/:id", h.GetByID)
	r.PATCH("/v1/inventory/:id/adjust", h.Adjust)
	return r, uc
}

func TestInventoryHandler_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		r, uc := newInventoryRouter(t)
		uc.EXPECT().Create(gomock.Any(), usecase.CreateItemCommand{
			Code:      "BMP-01",
			Name:      "Front bumper",
			Unit:      "pcs",
			Category:  entities.ItemCategorySparepart,
			OnHand:    3,
			BuyPrice:  "150.00",
			SellPrice: "225.50",
		}).Return(entities.InventoryItem{
			ID:        "inv-1",
			Name:      "Front bumper",
			OnHand:    3,
			SellPrice: decimal.RequireFromString("225.5"),
		}, nil)

		body := `{"code":"BMP-01","name":"Front bumper","unit":"pcs","category":"sparepart","on_hand":3,"buy_price":"150.00","sell_price":"225.50"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/inventory", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["id"] != "inv-1" || resp["sell_price"] != "225.5" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("invalid category", func(t *testing.T) {
		r, uc := newInventoryRouter(t)
		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.InventoryItem{}, usecase.ErrInvalidCategory)

		body := `{"name":"Thinner","category":"furniture"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/inventory", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestInventoryHandler_Adjust(t *testing.T) {
	t.Run("missing delta", func(t *testing.T) {
		r, _ := newInventoryRouter(t)

		req := httptest.NewRequest(http.MethodPatch, "/v1/inventory/inv-1/adjust", bytes.NewBufferString(`{"reason":"stocktake"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("negative delta below zero maps to conflict", func(t *testing.T) {
		r, uc := newInventoryRouter(t)
		uc.EXPECT().Adjust(gomock.Any(), "inv-1", -5.0, "damage write-off").
			Return(entities.InventoryItem{}, usecase.ErrStockWouldGoBelow0)

		req := httptest.NewRequest(http.MethodPatch, "/v1/inventory/inv-1/adjust",
			bytes.NewBufferString(`{"delta":-5,"reason":"damage write-off"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestInventoryHandler_GetByID(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		r, uc := newInventoryRouter(t)
		uc.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.InventoryItem{}, usecase.ErrItemNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/inventory/missing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestInventoryHandler_List(t *testing.T) {
	r, uc := newInventoryRouter(t)
	uc.EXPECT().List(gomock.Any(), "material").Return([]entities.InventoryItem{
		{ID: "inv-2", Name: "Thinner", Category: entities.ItemCategoryMaterial},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/inventory?category=material", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if len(resp) != 1 || resp[0]["id"] != "inv-2" {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}
