package handlers

import (
	"errors"
	"net/http"

	response "funilaria_ops/internal/adapter/http/dto/response"
	"funilaria_ops/internal/domain/entities"
	"funilaria_ops/internal/usecase"
	"funilaria_ops/pkg"

	"github.com/gin-gonic/gin"
)

// BoardHandler serves the three readiness boards. Every request triggers a
// fresh allocation pass; nothing here is cached.

type BoardHandler struct {
	usecase usecase.IMonitoringUseCase
}

func NewBoardHandler(uc usecase.IMonitoringUseCase) *BoardHandler {
	return &BoardHandler{usecase: uc}
}

// Claims is the front-office board: all eligible jobs, FIFO by intake.
func (h *BoardHandler) Claims(c *gin.Context) {
	view, err := h.usecase.ClaimsBoard(c.Request.Context(), c.Query("search"))
	h.render(c, view, err)
}

// Issuance is the warehouse board for one stock category
// (?category=sparepart|material, defaults to sparepart).
func (h *BoardHandler) Issuance(c *gin.Context) {
	category := entities.ItemCategory(c.DefaultQuery("category", string(entities.ItemCategorySparepart)))
	if category != entities.ItemCategorySparepart && category != entities.ItemCategoryMaterial {
		appErr := pkg.NewDomainErrorSimple("INVALID_CATEGORY", "Invalid inventory category", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	view, err := h.usecase.IssuanceQueue(c.Request.Context(), category, c.Query("search"))
	h.render(c, view, err)
}

// Monitoring is the purchasing board with per-line arrival detail.
func (h *BoardHandler) Monitoring(c *gin.Context) {
	view, err := h.usecase.PartMonitoring(c.Request.Context(), c.Query("search"))
	h.render(c, view, err)
}

func (h *BoardHandler) render(c *gin.Context, view usecase.BoardView, err error) {
	if err != nil {
		appErr := mapBoardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromBoardView(view))
}

func mapBoardError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCategory):
		return pkg.NewDomainErrorSimple("INVALID_CATEGORY", "Invalid inventory category", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
