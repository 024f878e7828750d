package api

import (
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/kiosk123/user-api/internal/api/handler"
	"github.com/kiosk123/user-api/internal/api/middleware"
	"github.com/kiosk123/user-api/internal/api/version"
	"github.com/kiosk123/user-api/internal/core/ports"
)

// Deps carries everything the router wires into handlers.
type Deps struct {
	Users     ports.UserService
	Posts     ports.PostService
	Auth      ports.AuthService
	DB        *mongo.Database
	RDB       *redis.Client
	JWTSecret string
	Logger    zerolog.Logger
}

// NewRouter builds the Echo instance with all routes registered. The same
// user handlers serve every version; the version middleware decides the
// profile, audience, and link policy per request.
func NewRouter(deps Deps) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())

	// --- Projection configuration (fail fast on bad profiles) ---
	registry := NewProfileRegistry()
	if err := registry.Validate(); err != nil {
		return nil, err
	}

	userHandler := handler.NewUserHandler(deps.Users, registry)
	postHandler := handler.NewPostHandler(deps.Posts, registry)
	authHandler := handler.NewAuthHandler(deps.Auth)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// --- Health probes and metrics ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.DB, deps.RDB)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// --- Versioned resource routes ---
	versioned := []echo.MiddlewareFunc{
		middleware.Identify(deps.JWTSecret),
		version.Middleware(version.Default()),
		middleware.Audience(),
	}

	users := e.Group("/users", versioned...)
	users.GET("", userHandler.List)
	users.POST("", userHandler.Create)
	users.GET("/:id", userHandler.Get)
	users.PUT("/:id", userHandler.Update)
	users.DELETE("/:id", userHandler.Delete)

	users.GET("/:userId/posts", postHandler.List)
	users.POST("/:userId/posts", postHandler.Create)
	users.PUT("/:userId/posts", postHandler.Update)
	users.DELETE("/:userId/posts/:postId", postHandler.Delete)

	// Read-only admin surface: same handlers, audience resolved from the
	// /admin path prefix by the version router.
	admin := e.Group("/admin/users", versioned...)
	admin.GET("", userHandler.List)
	admin.GET("/:id", userHandler.Get)
	admin.GET("/:userId/posts", postHandler.List)

	return e, nil
}
