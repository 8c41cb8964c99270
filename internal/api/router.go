package api

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/BaylaDeLemos/kusina-live-server/internal/api/handler"
	"github.com/BaylaDeLemos/kusina-live-server/internal/api/middleware"
	"github.com/BaylaDeLemos/kusina-live-server/internal/core/domain"
	"github.com/BaylaDeLemos/kusina-live-server/internal/core/ports"

	_ "github.com/BaylaDeLemos/kusina-live-server/docs"
)

const metricsSubsystem = "http"

// Deps are the collaborators the router wires into handlers and middleware.
type Deps struct {
	Accounts ports.AccountService
	Users    ports.UserService
	Admin    ports.AdminService
	Tokens   ports.TokenService

	// Health maps dependency names to readiness checks.
	Health map[string]handler.Pinger

	Logger       zerolog.Logger
	ClientOrigin string

	// Registerer and Gatherer default to the Prometheus default registry.
	Registerer prometheus.Registerer
	Gatherer   prometheus.Gatherer
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	if d.Registerer == nil {
		d.Registerer = prometheus.DefaultRegisterer
	}
	if d.Gatherer == nil {
		d.Gatherer = prometheus.DefaultGatherer
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestIDWithConfig(echomiddleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.RequestLogger(d.Logger))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     []string{d.ClientOrigin},
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderAuthorization, echo.HeaderContentType},
		AllowCredentials: true,
	}))
	e.Use(echomiddleware.BodyLimit("1M"))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  metricsSubsystem,
		Registerer: d.Registerer,
	}))

	// --- Health probes and ops (no auth required) ---
	healthHandler := handler.NewHealthHandler(d.Health, d.Logger)
	e.GET("/", healthHandler.Liveness)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: d.Gatherer}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	authGate := middleware.Auth(d.Tokens)

	// --- Auth routes ---
	authHandler := handler.NewAuthHandler(d.Accounts)
	auth := e.Group("/api/auth")
	auth.POST("/signup", authHandler.Signup)
	auth.POST("/login", authHandler.Login)

	// --- User routes (any authenticated role) ---
	userHandler := handler.NewUserHandler(d.Users)
	user := e.Group("/api/user", authGate)
	user.GET("/me", userHandler.Me)
	user.POST("/favorites/toggle", userHandler.ToggleFavorite)
	user.POST("/list/toggle", userHandler.ToggleSavedList)

	// --- Admin routes ---
	adminHandler := handler.NewAdminHandler(d.Admin)
	admin := e.Group("/api/admin", authGate, middleware.RequireRole(domain.RoleAdmin))
	admin.GET("/users", adminHandler.ListUsers)
	admin.GET("/recipes", adminHandler.ListRecipes)
	admin.POST("/recipes", adminHandler.CreateRecipe)
	admin.DELETE("/recipes/:id", adminHandler.DeleteRecipe)

	return e
}
