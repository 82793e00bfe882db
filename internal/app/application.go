package app

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/splashbrothers/ordering/internal/domain/services"
	"github.com/splashbrothers/ordering/internal/infrastructure/config"
	"github.com/splashbrothers/ordering/internal/infrastructure/repositories"
	"github.com/splashbrothers/ordering/internal/infrastructure/sheets"
	"github.com/splashbrothers/ordering/internal/pkg/logger"
)

// Application holds all application dependencies and services
type Application struct {
	config *config.Config
	logger *logger.Logger
	values sheets.ValuesAPI
	repos  *repositories.Provider

	catalogService  services.CatalogService
	orderService    services.OrderService
	partsService    services.PartsService
	documentService services.DocumentService
	storeService    services.StoreService
	mailer          services.Mailer

	router *gin.Engine
}

// New creates a new Application instance
func New(cfg *config.Config, log *logger.Logger, values sheets.ValuesAPI, mailer services.Mailer) (*Application, error) {
	repos := repositories.NewProvider(values)

	app := &Application{
		config:          cfg,
		logger:          log,
		values:          values,
		repos:           repos,
		catalogService:  services.NewCatalogService(repos.Catalog),
		orderService:    services.NewOrderService(repos.Catalog, repos.Order, mailer, log.WithComponent("orders")),
		partsService:    services.NewPartsService(repos.Machine, mailer, log.WithComponent("parts")),
		documentService: services.NewDocumentService(),
		storeService:    services.NewStoreService(repos.Store, log.WithComponent("stores")),
		mailer:          mailer,
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	app.router = gin.New()
	app.router.Use(gin.Recovery())
	app.router.Use(app.loggerMiddleware())
	app.router.Use(app.corsMiddleware())

	app.setupRoutes()

	return app, nil
}

// Router returns the HTTP handler
func (a *Application) Router() http.Handler {
	return a.router
}

// setupRoutes configures all application routes. The /api paths keep the wire
// shapes the storefront client already speaks.
func (a *Application) setupRoutes() {
	a.router.GET("/health", a.healthCheck)
	a.router.GET("/ready", a.readinessCheck)

	api := a.router.Group("/api")
	{
		api.GET("/info", a.apiInfo)

		// catalog and sheet access
		api.GET("/sheets", a.getSheet)
		api.POST("/quote", a.quoteOrder)

		// store login
		api.POST("/login", a.login)

		// supplies orders
		api.POST("/save-order", a.saveOrder)
		api.GET("/order-history", a.orderHistory)
		api.GET("/get-hirock-order-items", a.hirockOrderItems)
		api.POST("/update-order-status", a.updateOrderStatus)
		api.POST("/update-shipping-date", a.updateShippingDate)

		// machine spare parts
		api.GET("/machine-items", a.machineItems)
		api.POST("/save-parts-order", a.savePartsOrder)
		api.POST("/generate-purchase-order", a.generatePurchaseOrder)

		// direct mail endpoints
		api.POST("/send-email", a.sendOrderEmail)
		api.POST("/send-partner-email", a.sendPartnerEmail)
		api.POST("/send-shipping-notification", a.sendShippingNotification)
		api.POST("/send-parts-order-email", a.sendPartsOrderEmail)
	}
}

// Middleware

func (a *Application) loggerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Skip logging for health checks
		if c.Request.URL.Path == "/health" || c.Request.URL.Path == "/ready" {
			c.Next()
			return
		}

		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		c.Next()

		if raw != "" {
			path = path + "?" + raw
		}

		a.logger.Info("HTTP request",
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
		)
	}
}

func (a *Application) corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin == "" {
			origin = "*"
		}

		c.Header("Access-Control-Allow-Origin", origin)
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Authorization, Content-Type")
		c.Header("Access-Control-Allow-Credentials", "true")
		c.Header("Access-Control-Max-Age", "86400")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
