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

var errInvalidJobPayload = pkg.NewDomainErrorSimple("INVALID_JOB_INPUT", "Invalid job payload", http.StatusBadRequest)

// JobHandler handles HTTP requests for jobs/claims.

type JobHandler struct {
	usecase usecase.IJobUseCase
}

func NewJobHandler(uc usecase.IJobUseCase) *JobHandler {
	return &JobHandler{usecase: uc}
}

// Intake registers a vehicle entering the shop queue.
func (h *JobHandler) Intake(c *gin.Context) {
	var payload request.IntakeJobRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidJobPayload.HTTPStatus, errInvalidJobPayload.ToHTTPError())
		return
	}

	job, err := h.usecase.Intake(c.Request.Context(), usecase.IntakeCommand{
		PoliceNumber:    payload.PoliceNumber,
		CustomerName:    payload.CustomerName,
		WorkOrderNumber: payload.WorkOrderNumber,
		OnPremises:      payload.OnPremises,
	})
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromJob(job))
}

func (h *JobHandler) List(c *gin.Context) {
	jobs, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromJobs(jobs))
}

func (h *JobHandler) GetByID(c *gin.Context) {
	job, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromJob(job))
}

func (h *JobHandler) UpdateStatus(c *gin.Context) {
	var payload request.UpdateJobStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidJobPayload.HTTPStatus, errInvalidJobPayload.ToHTTPError())
		return
	}

	job, err := h.usecase.UpdateStatus(c.Request.Context(), c.Param("id"), entities.JobStatus(payload.Status))
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromJob(job))
}

func (h *JobHandler) AssignWorkOrder(c *gin.Context) {
	var payload request.AssignWorkOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidJobPayload.HTTPStatus, errInvalidJobPayload.ToHTTPError())
		return
	}

	job, err := h.usecase.AssignWorkOrder(c.Request.Context(), c.Param("id"), payload.WorkOrderNumber)
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromJob(job))
}

// ReplacePartLines swaps the estimate's part lines wholesale. Arrived lines
// must be carried over unchanged; the use case enforces that.
func (h *JobHandler) ReplacePartLines(c *gin.Context) {
	var payload request.ReplacePartLinesRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidJobPayload.HTTPStatus, errInvalidJobPayload.ToHTTPError())
		return
	}

	job, err := h.usecase.ReplacePartLines(c.Request.Context(), c.Param("id"), payload.ToPartLines())
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromJob(job))
}

func (h *JobHandler) ReplaceServiceLines(c *gin.Context) {
	var payload request.ReplaceServiceLinesRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidJobPayload.HTTPStatus, errInvalidJobPayload.ToHTTPError())
		return
	}

	lines, err := payload.ToServiceLines()
	if err != nil {
		c.JSON(errInvalidJobPayload.HTTPStatus, errInvalidJobPayload.ToHTTPError())
		return
	}

	job, err := h.usecase.ReplaceServiceLines(c.Request.Context(), c.Param("id"), lines)
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromJob(job))
}

func (h *JobHandler) SetOnPremises(c *gin.Context) {
	var payload request.SetOnPremisesRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidJobPayload.HTTPStatus, errInvalidJobPayload.ToHTTPError())
		return
	}

	job, err := h.usecase.SetOnPremises(c.Request.Context(), c.Param("id"), *payload.OnPremises)
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromJob(job))
}

func (h *JobHandler) Close(c *gin.Context) {
	job, err := h.usecase.Close(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromJob(job))
}

func (h *JobHandler) SoftDelete(c *gin.Context) {
	if _, err := h.usecase.SoftDelete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func mapJobError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidJobID),
		errors.Is(err, usecase.ErrInvalidPoliceNumber),
		errors.Is(err, usecase.ErrInvalidJobStatus):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrJobNotFound):
		return pkg.NewDomainErrorSimple("JOB_NOT_FOUND", "Job not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrJobClosed):
		return pkg.NewDomainErrorSimple("JOB_CLOSED", "Job is closed", http.StatusConflict)
	case errors.Is(err, usecase.ErrArrivedLineImmutable):
		return pkg.NewDomainErrorSimple("ARRIVED_LINE_IMMUTABLE", "Issued part lines cannot be changed", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
