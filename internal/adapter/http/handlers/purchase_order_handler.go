package handlers

import (
	"context"
	"errors"
	"net/http"

	request "funilaria_ops/internal/adapter/http/dto/request"
	response "funilaria_ops/internal/adapter/http/dto/response"
	"funilaria_ops/internal/domain/entities"
	"funilaria_ops/internal/usecase"
	"funilaria_ops/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidPOPayload = pkg.NewDomainErrorSimple("INVALID_PO_INPUT", "Invalid purchase order payload", http.StatusBadRequest)

// PurchaseOrderHandler handles HTTP requests for supplier replenishment.

type PurchaseOrderHandler struct {
	usecase usecase.IPurchaseOrderUseCase
}

func NewPurchaseOrderHandler(uc usecase.IPurchaseOrderUseCase) *PurchaseOrderHandler {
	return &PurchaseOrderHandler{usecase: uc}
}

func (h *PurchaseOrderHandler) Create(c *gin.Context) {
	var payload request.CreatePurchaseOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPOPayload.HTTPStatus, errInvalidPOPayload.ToHTTPError())
		return
	}

	lines, err := payload.ToLines()
	if err != nil {
		c.JSON(errInvalidPOPayload.HTTPStatus, errInvalidPOPayload.ToHTTPError())
		return
	}

	po, err := h.usecase.Create(c.Request.Context(), usecase.CreatePurchaseOrderCommand{
		Supplier: payload.Supplier,
		Lines:    lines,
	})
	if err != nil {
		appErr := mapPurchaseOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromPurchaseOrder(po))
}

func (h *PurchaseOrderHandler) List(c *gin.Context) {
	orders, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapPurchaseOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPurchaseOrders(orders))
}

func (h *PurchaseOrderHandler) GetByID(c *gin.Context) {
	po, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapPurchaseOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPurchaseOrder(po))
}

func (h *PurchaseOrderHandler) MarkOrdered(c *gin.Context) {
	h.transition(c, h.usecase.MarkOrdered)
}

// Receive books the order into stock atomically with the status flip.
func (h *PurchaseOrderHandler) Receive(c *gin.Context) {
	h.transition(c, h.usecase.Receive)
}

func (h *PurchaseOrderHandler) Cancel(c *gin.Context) {
	h.transition(c, h.usecase.Cancel)
}

func (h *PurchaseOrderHandler) transition(
	c *gin.Context,
	apply func(ctx context.Context, id string) (entities.PurchaseOrder, error),
) {
	po, err := apply(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapPurchaseOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPurchaseOrder(po))
}

func mapPurchaseOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPurchaseOrder):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPurchaseOrderNotFound):
		return pkg.NewDomainErrorSimple("PO_NOT_FOUND", "Purchase order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrItemNotFound):
		return pkg.NewDomainErrorSimple("ITEM_NOT_FOUND", "Inventory item not found", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrInvalidPOTransition):
		return pkg.NewDomainErrorSimple("INVALID_PO_TRANSITION", "Purchase order cannot change to that status", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
