package routes

import (
	"funilaria_ops/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathJobs      = "/jobs"
	PathInventory = "/inventory"
	PathBoards    = "/boards"
	PathIssuance  = "/issuance"
)

func addShopRoutes(
	rg *gin.RouterGroup,
	jobHandler *handlers.JobHandler,
	inventoryHandler *handlers.InventoryHandler,
	boardHandler *handlers.BoardHandler,
	issuanceHandler *handlers.IssuanceHandler,
) {
	jobs := rg.Group(PathJobs)
	{
		jobs.POST("", jobHandler.Intake)
		jobs.GET("", jobHandler.List)
		jobs.GET("/:id", jobHandler.GetByID)
		jobs.PATCH("/:id/status", jobHandler.UpdateStatus)
		jobs.PATCH("/:id/work-order", jobHandler.AssignWorkOrder)
		jobs.PUT("/:id/part-lines", jobHandler.ReplacePartLines)
		jobs.PUT("/:id/service-lines", jobHandler.ReplaceServiceLines)
		jobs.PATCH("/:id/premises", jobHandler.SetOnPremises)
		jobs.PATCH("/:id/close", jobHandler.Close)
		jobs.DELETE("/:id", jobHandler.SoftDelete)
	}

	inventory := rg.Group(PathInventory)
	{
		inventory.POST("", inventoryHandler.Create)
		inventory.GET("", inventoryHandler.List)
		inventory.GET("/:id", inventoryHandler.GetByID)
		inventory.PATCH("/:id/adjust", inventoryHandler.Adjust)
	}

	boards := rg.Group(PathBoards)
	{
		boards.GET("/claims", boardHandler.Claims)
		boards.GET("/issuance", boardHandler.Issuance)
		boards.GET("/monitoring", boardHandler.Monitoring)
	}

	issuance := rg.Group(PathIssuance)
	{
		issuance.POST("/:job_id", issuanceHandler.IssuePart)
	}
}
