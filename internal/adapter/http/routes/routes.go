package routes

import (
	"context"
	"log"

	"funilaria_ops/internal/adapter/http/handlers"
	"funilaria_ops/internal/adapter/persistence/repository"
	"funilaria_ops/internal/domain/tax"
	appconfig "funilaria_ops/internal/infrastructure/config"
	"funilaria_ops/internal/infrastructure/database"
	"funilaria_ops/internal/infrastructure/payments"
	"funilaria_ops/internal/usecase"
	"funilaria_ops/internal/usecase/interfaces"
	"funilaria_ops/pkg/logger"
	"funilaria_ops/pkg/metrics"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

// Run will start the server
func Run() {
	cfg, err := appconfig.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zlog := logger.New(logger.Options{
		ServiceName: "funilaria-ops",
		Level:       cfg.App.LogLevel,
		Console:     cfg.App.LogConsole,
	})

	setMiddlewares(zlog)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	getRoutes(cfg, zlog)

	if err := router.Run(":" + cfg.App.Port); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes(cfg appconfig.Config, zlog zerolog.Logger) {
	ddb, err := database.ConnectDynamoDB(context.Background(), cfg.AWS)
	if err != nil {
		log.Fatalf("Failed to connect to DynamoDB: %v", err)
	}

	jobRepo := repository.NewJobDynamoRepository(ddb, cfg.Tables.Jobs)
	invRepo := repository.NewInventoryDynamoRepository(ddb, cfg.Tables.Inventory)
	issueRepo := repository.NewIssuanceDynamoRepository(ddb, cfg.Tables.Jobs, cfg.Tables.Inventory)
	poRepo := repository.NewPurchaseOrderDynamoRepository(ddb, cfg.Tables.PurchaseOrders, cfg.Tables.Inventory)
	invoiceRepo := repository.NewInvoiceDynamoRepository(ddb, cfg.Tables.Invoices)

	boards := metrics.NewBoardMetrics(prometheus.DefaultRegisterer)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(cfg.Payments, zlog)
	if err != nil {
		zlog.Warn().Err(err).Msg("mercado pago gateway not configured")
	} else {
		paymentGateway = mpGateway
	}

	jobUseCase := usecase.NewJobUseCase(jobRepo)
	inventoryUseCase := usecase.NewInventoryUseCase(invRepo, zlog)
	monitoringUseCase := usecase.NewMonitoringUseCase(jobRepo, invRepo, boards)
	issuanceUseCase := usecase.NewIssuanceUseCase(jobRepo, invRepo, issueRepo, boards, zlog)
	poUseCase := usecase.NewPurchaseOrderUseCase(poRepo, invRepo, zlog)
	invoiceUseCase := usecase.NewInvoiceUseCase(invoiceRepo, jobRepo, paymentGateway, tax.DefaultTable(), cfg.Billing.DefaultTaxCode, zlog)

	jobHandler := handlers.NewJobHandler(jobUseCase)
	inventoryHandler := handlers.NewInventoryHandler(inventoryUseCase)
	boardHandler := handlers.NewBoardHandler(monitoringUseCase)
	issuanceHandler := handlers.NewIssuanceHandler(issuanceUseCase)
	poHandler := handlers.NewPurchaseOrderHandler(poUseCase)
	invoiceHandler := handlers.NewInvoiceHandler(invoiceUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addShopRoutes(v1, jobHandler, inventoryHandler, boardHandler, issuanceHandler)
	addBillingRoutes(v1, poHandler, invoiceHandler)
}

func setMiddlewares(zlog zerolog.Logger) {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		zlog.Error().Interface("panic", recovered).Msg("recovered from panic")
		c.AbortWithStatus(500)
	}))
}
