package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"salesdesk/internal/core/clock"
	"salesdesk/internal/domain/catalogs/product"
	"salesdesk/internal/domain/ledger"
	"salesdesk/internal/domain/lifecycle"
	"salesdesk/internal/domain/promotion"
	"salesdesk/internal/domain/registers/stock"
	"salesdesk/internal/infrastructure/http/v1/handlers"
	"salesdesk/internal/infrastructure/http/v1/middleware"
	"salesdesk/pkg/logger"
)

// Version is reported by the info endpoint.
const Version = "0.1.0"

// RouterConfig holds router dependencies.
type RouterConfig struct {
	// Logger for request logging
	Logger *logger.Logger

	Products   *product.Service
	Inventory  *stock.Service
	Promotions *promotion.Service
	Lifecycle  *lifecycle.Service
	Ledger     *ledger.Recorder

	// Clock decides "today" for promotion lookups without an explicit date
	Clock clock.Clock

	// TaxRate is applied when a caller omits the tax on adjustments
	TaxRate decimal.Decimal

	// Currency is display-only
	Currency string

	// Debug switches gin to debug mode
	Debug bool
}

// NewRouter creates and configures the Gin router.
func NewRouter(cfg RouterConfig) *gin.Engine {
	if cfg.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	if cfg.Logger == nil {
		cfg.Logger = logger.Default()
	}
	if cfg.Clock == nil {
		cfg.Clock = clock.System{}
	}

	router := gin.New()

	// Global middleware (order matters!)
	router.Use(middleware.Recovery())
	router.Use(middleware.Trace())
	router.Use(middleware.Logger(cfg.Logger))
	router.Use(middleware.ErrorHandler())

	healthHandler := handlers.NewHealthHandler(Version, cfg.Currency)
	health := router.Group("/health")
	{
		health.GET("/live", healthHandler.Live)
		health.GET("/info", healthHandler.Info)
	}

	api := router.Group("/api/v1")
	api.Use(middleware.UserContext())

	base := handlers.NewBaseHandler()
	registerCatalogRoutes(api, base, cfg)
	registerDocumentRoutes(api, base, cfg)
	registerLedgerRoutes(api, base, cfg)

	return router
}

func registerCatalogRoutes(api *gin.RouterGroup, base *handlers.BaseHandler, cfg RouterConfig) {
	productHandler := handlers.NewProductHandler(base, cfg.Products)
	products := api.Group("/products")
	{
		products.GET("", productHandler.List)
		products.POST("", productHandler.Create)
		products.GET("/:code", productHandler.Get)
		products.PUT("/:code/price", productHandler.ChangePrice)
	}

	inventoryHandler := handlers.NewInventoryHandler(base, cfg.Inventory, cfg.Products)
	inventory := api.Group("/inventory")
	{
		inventory.GET("", inventoryHandler.List)
		inventory.GET("/:code", inventoryHandler.Get)
		inventory.PUT("/:code", inventoryHandler.Set)
	}

	promotionHandler := handlers.NewPromotionHandler(base, cfg.Promotions, cfg.Clock)
	promotions := api.Group("/promotions")
	{
		promotions.GET("", promotionHandler.List)
		promotions.POST("", promotionHandler.Create)
		promotions.GET("/resolve", promotionHandler.Resolve)
	}
}

func registerDocumentRoutes(api *gin.RouterGroup, base *handlers.BaseHandler, cfg RouterConfig) {
	quotationHandler := handlers.NewQuotationHandler(base, cfg.Lifecycle, cfg.TaxRate)
	quotations := api.Group("/quotations")
	RegisterDocumentRoutes(quotations, quotationHandler)
	{
		quotations.GET("/preview", quotationHandler.Preview)
		quotations.POST("/:id/lines", quotationHandler.AddLine)
		quotations.DELETE("/:id/lines/:lineId", quotationHandler.RemoveLine)
		quotations.PUT("/:id/adjustments", quotationHandler.SetAdjustments)
		quotations.POST("/:id/convert", quotationHandler.Convert)
	}

	orderHandler := handlers.NewOrderHandler(base, cfg.Lifecycle)
	orders := api.Group("/orders")
	RegisterDocumentRoutes(orders, orderHandler)
	{
		orders.POST("/:id/fulfill", orderHandler.Fulfill)
		orders.POST("/:id/invoice", orderHandler.Invoice)
	}

	invoiceHandler := handlers.NewInvoiceHandler(base, cfg.Lifecycle)
	invoices := api.Group("/invoices")
	RegisterDocumentRoutes(invoices, invoiceHandler)
	{
		invoices.POST("/:id/payments", invoiceHandler.RecordPayment)
		invoices.POST("/:id/payments/:paymentId/approve", invoiceHandler.ApprovePayment)
		invoices.POST("/:id/void", invoiceHandler.Void)
	}
}

func registerLedgerRoutes(api *gin.RouterGroup, base *handlers.BaseHandler, cfg RouterConfig) {
	ledgerHandler := handlers.NewLedgerHandler(base, cfg.Ledger)
	ledgerGroup := api.Group("/ledger")
	{
		ledgerGroup.GET("", ledgerHandler.List)
		ledgerGroup.GET("/:number", ledgerHandler.ByDocument)
	}
}
