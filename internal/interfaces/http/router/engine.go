package router

import (
	"github.com/gin-gonic/gin"
	identityapp "github.com/repairshop/backend/internal/application/identity"
	partnerapp "github.com/repairshop/backend/internal/application/partner"
	repairapp "github.com/repairshop/backend/internal/application/repair"
	"github.com/repairshop/backend/internal/domain/shared"
	"github.com/repairshop/backend/internal/infrastructure/auth"
	"github.com/repairshop/backend/internal/infrastructure/config"
	"github.com/repairshop/backend/internal/infrastructure/logger"
	"github.com/repairshop/backend/internal/infrastructure/telemetry"
	"github.com/repairshop/backend/internal/interfaces/http/handler"
	"github.com/repairshop/backend/internal/interfaces/http/middleware"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// Services are the application services exposed over HTTP
type Services struct {
	Auth       *identityapp.AuthService
	Customers  *partnerapp.CustomerService
	WorkOrders *repairapp.WorkOrderService
}

// EngineOptions carries everything NewEngine wires into the gin engine.
// Nil optional fields switch the matching feature off.
type EngineOptions struct {
	Config         *config.Config
	Logger         *zap.Logger
	Database       handler.Pinger
	JWTService     *auth.JWTService
	TokenBlacklist auth.TokenBlacklist
	Services       Services
	Version        string

	// Optional
	IdempotencyStore shared.IdempotencyStore
	RateLimiter      *middleware.RateLimiter
	MeterProvider    *telemetry.MeterProvider
}

// NewEngine builds the gin engine with the global middleware stack, the
// public endpoints and the tenant-scoped API under /api/v1.
func NewEngine(opts EngineOptions) *gin.Engine {
	cfg := opts.Config
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	middleware.SetupValidator()

	engine := gin.New()

	// Order matters: the request ID must exist before the logger and the
	// recovery handler read it, and tracing must wrap everything that follows.
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.TracingWithConfig(middleware.TracingConfig{
		ServiceName: cfg.Telemetry.ServiceName,
		Enabled:     cfg.Telemetry.Enabled,
	})...)
	engine.Use(middleware.HTTPMetrics(opts.MeterProvider))
	engine.Use(middleware.Secure())
	engine.Use(middleware.CORSWithConfig(corsConfig(cfg.HTTP)))
	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))
	if opts.RateLimiter != nil {
		engine.Use(middleware.RateLimit(opts.RateLimiter))
	}

	systemHandler := handler.NewSystemHandler(opts.Database, opts.Version)
	authHandler := handler.NewAuthHandler(opts.Services.Auth)
	customerHandler := handler.NewCustomerHandler(opts.Services.Customers)
	workOrderHandler := handler.NewWorkOrderHandler(opts.Services.WorkOrders)

	// Health check endpoint (outside API versioning)
	engine.GET("/health", systemHandler.Health)

	engine.GET("/swagger/*any",
		middleware.SwaggerProtection(cfg.Swagger),
		ginSwagger.WrapHandler(swaggerFiles.Handler))

	requireAuth := middleware.JWTAuthMiddlewareWithConfig(middleware.JWTMiddlewareConfig{
		JWTService:     opts.JWTService,
		TokenBlacklist: opts.TokenBlacklist,
		Logger:         log,
	})
	profiling := middleware.ProfilingWithConfig(middleware.ProfilingConfig{
		Enabled: cfg.Telemetry.ProfilingEnabled,
	})

	var idempotencyStore shared.IdempotencyStore
	if cfg.Idempotency.Enabled {
		idempotencyStore = opts.IdempotencyStore
	}
	idempotent := middleware.Idempotency(middleware.IdempotencyConfig{
		Store:  idempotencyStore,
		TTL:    cfg.Idempotency.TTL,
		Logger: log,
	})

	systemRoutes := NewDomainGroup("system", "/system")
	systemRoutes.GET("/info", systemHandler.GetSystemInfo)

	// Register and login are public; logout and me need a token
	authRoutes := NewDomainGroup("auth", "/auth")
	authRoutes.POST("/register", authHandler.Register)
	authRoutes.POST("/login", authHandler.Login)
	session := authRoutes.Group("session", "").Use(requireAuth, profiling)
	session.POST("/logout", authHandler.Logout)
	session.GET("/me", authHandler.Me)

	customerRoutes := NewDomainGroup("customers", "/customers").Use(requireAuth, profiling)
	customerRoutes.GET("", customerHandler.List)
	customerRoutes.POST("", customerHandler.Create)
	customerRoutes.GET("/:id", customerHandler.GetByID)
	customerRoutes.PUT("/:id", customerHandler.Update)
	customerRoutes.DELETE("/:id", customerHandler.Delete)

	workOrderRoutes := NewDomainGroup("work-orders", "/work-orders").Use(requireAuth, profiling)
	workOrderRoutes.GET("", workOrderHandler.List)
	workOrderRoutes.POST("", idempotent, workOrderHandler.Create)
	workOrderRoutes.GET("/:id", workOrderHandler.GetByID)
	workOrderRoutes.PATCH("/:id/status", workOrderHandler.UpdateStatus)
	workOrderRoutes.POST("/:id/tasks", workOrderHandler.AddTask)
	workOrderRoutes.POST("/:id/parts", workOrderHandler.AddParts)

	NewRouter(engine, WithAPIVersion("v1")).
		Register(systemRoutes).
		Register(authRoutes).
		Register(customerRoutes).
		Register(workOrderRoutes).
		Setup()

	return engine
}

func corsConfig(cfg config.HTTPConfig) middleware.CORSConfig {
	cors := middleware.DefaultCORSConfig()
	if len(cfg.CORSAllowOrigins) > 0 {
		cors.AllowOrigins = cfg.CORSAllowOrigins
	}
	if len(cfg.CORSAllowMethods) > 0 {
		cors.AllowMethods = cfg.CORSAllowMethods
	}
	if len(cfg.CORSAllowHeaders) > 0 {
		cors.AllowHeaders = cfg.CORSAllowHeaders
	}
	return cors
}
