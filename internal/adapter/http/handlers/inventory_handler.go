package handlers

import (
	"errors"
	"net/http"

	request "funilaria_ops/internal/adapter/http/dto/request"
	response "funilaria_ops/internal/adapter/http/dto/response"
	"funilaria_ops/internal/domain/entities"
	"funilaria_ops/internal/usecase"
	"funilaria_ops/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidInventoryPayload = pkg.NewDomainErrorSimple("INVALID_INVENTORY_INPUT", "Invalid inventory payload", http.StatusBadRequest)

// InventoryHandler handles HTTP requests for master stock.

type InventoryHandler struct {
	usecase usecase.IInventoryUseCase
}

func NewInventoryHandler(uc usecase.IInventoryUseCase) *InventoryHandler {
	return &InventoryHandler{usecase: uc}
}

func (h *InventoryHandler) Create(c *gin.Context) {
	var payload request.CreateInventoryItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidInventoryPayload.HTTPStatus, errInvalidInventoryPayload.ToHTTPError())
		return
	}

	item, err := h.usecase.Create(c.Request.Context(), usecase.CreateItemCommand{
		Code:      payload.Code,
		Name:      payload.Name,
		Unit:      payload.Unit,
		Category:  entities.ItemCategory(payload.Category),
		OnHand:    payload.OnHand,
		BuyPrice:  payload.BuyPrice,
		SellPrice: payload.SellPrice,
	})
	if err != nil {
		appErr := mapInventoryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromInventoryItem(item))
}

// List returns master stock, optionally scoped with ?category=sparepart|material.
func (h *InventoryHandler) List(c *gin.Context) {
	items, err := h.usecase.List(c.Request.Context(), c.Query("category"))
	if err != nil {
		appErr := mapInventoryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromInventoryItems(items))
}

func (h *InventoryHandler) GetByID(c *gin.Context) {
	item, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapInventoryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromInventoryItem(item))
}

// Adjust applies a signed manual stock correction.
func (h *InventoryHandler) Adjust(c *gin.Context) {
	var payload request.AdjustStockRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidInventoryPayload.HTTPStatus, errInvalidInventoryPayload.ToHTTPError())
		return
	}

	item, err := h.usecase.Adjust(c.Request.Context(), c.Param("id"), *payload.Delta, payload.Reason)
	if err != nil {
		appErr := mapInventoryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromInventoryItem(item))
}

func mapInventoryError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidItemID),
		errors.Is(err, usecase.ErrInvalidItemName),
		errors.Is(err, usecase.ErrInvalidCategory),
		errors.Is(err, usecase.ErrInvalidPrice),
		errors.Is(err, usecase.ErrInvalidAdjustment):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrItemNotFound):
		return pkg.NewDomainErrorSimple("ITEM_NOT_FOUND", "Inventory item not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrStockWouldGoBelow0):
		return pkg.NewDomainErrorSimple("STOCK_BELOW_ZERO", "Adjustment would make stock negative", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
