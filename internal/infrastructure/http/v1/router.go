package v1

import (
	"github.com/gin-gonic/gin"

	"storeadmin/internal/domain/auth"
	"storeadmin/internal/domain/catalogs/currency"
	"storeadmin/internal/domain/catalogs/customer"
	"storeadmin/internal/domain/catalogs/product"
	"storeadmin/internal/domain/documents/delivery"
	"storeadmin/internal/domain/documents/order"
	"storeadmin/internal/domain/documents/payout"
	"storeadmin/internal/domain/store"
	"storeadmin/internal/infrastructure/http/v1/handlers"
	"storeadmin/internal/infrastructure/http/v1/middleware"
	"storeadmin/pkg/logger"
)

// RouterConfig holds the services the API exposes.
type RouterConfig struct {
	// Mode is the gin mode: debug, release or test
	Mode string

	// Logger for request logging
	Logger *logger.Logger

	AuthService *auth.Service
	Stores      *store.Service
	Products    *product.Service
	Customers   *customer.Service
	Orders      *order.Service
	Deliveries  *delivery.Service
	Payouts     *payout.Service
	Converter   *currency.Converter

	// StorageDriver and Storage feed the readiness probe; Storage may be nil
	StorageDriver string
	Storage       handlers.Pinger

	// Lists holds paging defaults for list endpoints
	Lists handlers.ListDefaults
}

// NewRouter creates and configures the Gin router.
func NewRouter(cfg RouterConfig) *gin.Engine {
	if cfg.Mode != "" {
		gin.SetMode(cfg.Mode)
	}
	if cfg.Logger == nil {
		cfg.Logger = logger.Default()
	}

	router := gin.New()

	// Global middleware (order matters!)
	router.Use(middleware.Recovery())
	router.Use(middleware.Trace())
	router.Use(middleware.Logger(cfg.Logger))
	router.Use(middleware.ErrorHandler())

	healthHandler := handlers.NewHealthHandler(cfg.StorageDriver, cfg.Storage)
	health := router.Group("/health")
	{
		health.GET("/live", healthHandler.Live)
		health.GET("/ready", healthHandler.Ready)
	}

	base := handlers.NewBaseHandler(cfg.Lists)
	authHandler := handlers.NewAuthHandler(base, cfg.AuthService)

	v1 := router.Group("/api/v1")
	{
		public := v1.Group("/auth")
		public.POST("/register", authHandler.Register)
		public.POST("/login", authHandler.Login)

		protected := v1.Group("")
		protected.Use(middleware.Auth(cfg.AuthService.JWT()))

		protected.POST("/auth/logout", authHandler.Logout)
		protected.GET("/auth/me", authHandler.Me)
		protected.GET("/session", authHandler.CurrentSession)
		protected.PUT("/session/theme", authHandler.SetTheme)

		currencyHandler := handlers.NewCurrencyHandler(base, cfg.Converter)
		protected.GET("/currency/convert", currencyHandler.Convert)

		registerStoreRoutes(protected, base, cfg)
	}

	return router
}

func registerStoreRoutes(protected *gin.RouterGroup, base *handlers.BaseHandler, cfg RouterConfig) {
	storeHandler := handlers.NewStoreHandler(base, cfg.Stores)
	protected.POST("/stores", storeHandler.Create)
	protected.GET("/stores", storeHandler.List)

	scope := protected.Group("/stores/:" + middleware.StoreParam)
	scope.Use(middleware.StoreAccess(cfg.Stores))
	scope.GET("", storeHandler.Get)

	products := handlers.NewProductHandler(base, cfg.Products)
	productRoutes := scope.Group("/products")
	RegisterRecordRoutes(productRoutes, products)
	productRoutes.POST("/:id/stock", products.AdjustStock)

	RegisterRecordRoutes(scope.Group("/customers"), handlers.NewCustomerHandler(base, cfg.Customers))

	orders := handlers.NewOrderHandler(base, cfg.Orders)
	orderRoutes := scope.Group("/orders")
	RegisterRecordRoutes(orderRoutes, orders)
	orderRoutes.PUT("/:id/status", orders.UpdateStatus)

	deliveries := handlers.NewDeliveryHandler(base, cfg.Deliveries, cfg.Orders)
	deliveryRoutes := scope.Group("/deliveries")
	RegisterRecordRoutes(deliveryRoutes, deliveries)
	deliveryRoutes.POST("/:id/dispatch", deliveries.Dispatch)
	deliveryRoutes.POST("/:id/delivered", deliveries.MarkDelivered)

	payouts := handlers.NewPayoutHandler(base, cfg.Payouts)
	payoutRoutes := scope.Group("/payouts")
	RegisterRecordRoutes(payoutRoutes, payouts)
	payoutRoutes.PUT("/:id/status", payouts.UpdateStatus)
}
