package handlers

import (
	"errors"
	"net/http"

	request "funilaria_ops/internal/adapter/http/dto/request"
	response "funilaria_ops/internal/adapter/http/dto/response"
	"funilaria_ops/internal/usecase"
	"funilaria_ops/pkg"

	"github.com/gin-gonic/gin"
)

// IssuanceHandler exposes the one endpoint that mutates real stock from the
// floor: issuing a part line against a job.

type IssuanceHandler struct {
	usecase usecase.IIssuanceUseCase
}

func NewIssuanceHandler(uc usecase.IIssuanceUseCase) *IssuanceHandler {
	return &IssuanceHandler{usecase: uc}
}

// IssuePart commits one part line of the job in the path. A 409 with
// INSUFFICIENT_STOCK means the board's READY state went stale between display
// and click; the client should refresh the board.
func (h *IssuanceHandler) IssuePart(c *gin.Context) {
	var payload request.IssuePartRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_ISSUE_INPUT", "Invalid issuance payload", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	job, err := h.usecase.IssuePart(c.Request.Context(), c.Param("job_id"), *payload.LineIndex)
	if err != nil {
		appErr := mapIssuanceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromJob(job))
}

func mapIssuanceError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidJobID), errors.Is(err, usecase.ErrLineOutOfRange):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrJobNotFound):
		return pkg.NewDomainErrorSimple("JOB_NOT_FOUND", "Job not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrJobClosed):
		return pkg.NewDomainErrorSimple("JOB_CLOSED", "Job is closed", http.StatusConflict)
	case errors.Is(err, usecase.ErrLineAlreadyIssued):
		return pkg.NewDomainErrorSimple("LINE_ALREADY_ISSUED", "Part line already issued", http.StatusConflict)
	case errors.Is(err, usecase.ErrLineUnlinked):
		return pkg.NewDomainErrorSimple("LINE_UNLINKED", "Part line not linked to master stock", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrInsufficientStock):
		return pkg.NewDomainErrorSimple("INSUFFICIENT_STOCK", "Not enough stock to issue this line", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
