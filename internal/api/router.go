package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/rentacar/rentacar-api/docs"
	"github.com/rentacar/rentacar-api/internal/api/handler"
	"github.com/rentacar/rentacar-api/internal/api/middleware"
	"github.com/rentacar/rentacar-api/internal/core/domain"
	"github.com/rentacar/rentacar-api/internal/core/service"
	mongodb "github.com/rentacar/rentacar-api/internal/infrastructure/db/mongo"
	redisdb "github.com/rentacar/rentacar-api/internal/infrastructure/db/redis"
	"github.com/rentacar/rentacar-api/internal/pkg/config"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("rentacar"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	roleRepo := mongodb.NewRoleRepository(db)
	messageRepo := mongodb.NewContactMessageRepository(db)
	loginGuard := redisdb.NewLoginGuard(rdb, cfg.Login.MaxAttempts, cfg.Login.Window)

	tokenService := service.NewTokenService(cfg.JWT.Secret, cfg.JWT.TTL, log)
	authService := service.NewAuthService(userRepo, roleRepo, tokenService, loginGuard, log)
	userService := service.NewUserService(userRepo, log)
	messageService := service.NewContactMessageService(messageRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	messageHandler := handler.NewContactMessageHandler(messageService)

	// Authentication gate: fail-open, skipped for /register and /login.
	e.Use(middleware.Authenticate(tokenService, userRepo, log))

	adminOnly := middleware.RequireRoles(domain.RoleAdmin)
	anyUser := middleware.RequireRoles(domain.RoleAdmin, domain.RoleCustomer)

	// --- Auth routes ---
	e.POST("/register", authHandler.Register)
	e.POST("/login", authHandler.Login)

	// --- User routes ---
	users := e.Group("/users")
	users.GET("", userHandler.GetOwn, anyUser)
	users.PATCH("/auth", userHandler.UpdatePassword, anyUser)
	users.GET("/auth/all", userHandler.GetAll, adminOnly)
	users.GET("/auth/pages", userHandler.GetPage, adminOnly)
	users.GET("/:id/auth", userHandler.GetByID, adminOnly)

	// --- Contact message routes (create is open to anonymous visitors) ---
	messages := e.Group("/contact-messages")
	messages.POST("/visitors", messageHandler.Create)
	messages.GET("", messageHandler.GetAll, adminOnly)
	messages.GET("/pages", messageHandler.GetPage, adminOnly)
	messages.GET("/:id", messageHandler.GetByID, adminOnly)
	messages.PUT("/:id", messageHandler.Update, adminOnly)
	messages.DELETE("/:id", messageHandler.Delete, adminOnly)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)

	// --- Operational surface ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
