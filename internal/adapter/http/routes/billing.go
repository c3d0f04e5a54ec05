package routes

import (
	"funilaria_ops/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPurchaseOrders = "/purchase-orders"
	PathInvoices       = "/invoices"
)

func addBillingRoutes(rg *gin.RouterGroup, poHandler *handlers.PurchaseOrderHandler, invoiceHandler *handlers.InvoiceHandler) {
	purchaseOrders := rg.Group(PathPurchaseOrders)
	{
		purchaseOrders.POST("", poHandler.Create)
		purchaseOrders.GET("", poHandler.List)
		purchaseOrders.GET("/:id", poHandler.GetByID)
		purchaseOrders.PATCH("/:id/order", poHandler.MarkOrdered)
		purchaseOrders.PATCH("/:id/receive", poHandler.Receive)
		purchaseOrders.PATCH("/:id/cancel", poHandler.Cancel)
	}

	invoices := rg.Group(PathInvoices)
	{
		invoices.POST("", invoiceHandler.Create)
		invoices.GET("", invoiceHandler.ListByJob)
		invoices.GET("/:id", invoiceHandler.GetByID)
		invoices.PATCH("/:id/issue", invoiceHandler.Issue)
		invoices.POST("/:id/pay", invoiceHandler.Pay)
	}
}
