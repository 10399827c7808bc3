package api

import (
	"github.com/google/uuid"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/arcadia/zoo-api/internal/api/handler"
	"github.com/arcadia/zoo-api/internal/api/middleware"
	"github.com/arcadia/zoo-api/internal/core/domain"
	"github.com/arcadia/zoo-api/internal/core/ports"
)

// Deps is everything the HTTP layer needs. Registerer and Gatherer default to
// the global Prometheus registry.
type Deps struct {
	Log    zerolog.Logger
	Tokens ports.TokenVerifier

	Auth        ports.AuthService
	Animals     ports.AnimalService
	Habitats    ports.HabitatService
	ZooServices ports.ZooServiceService
	Reviews     ports.ReviewService
	VetReports  ports.VetReportService

	DB    handler.Pinger
	Redis redis.Cmdable

	Registerer prometheus.Registerer
	Gatherer   prometheus.Gatherer
}

var (
	adminOnly    = domain.NewRoleSet(domain.RoleAdministrator)
	vetOnly      = domain.NewRoleSet(domain.RoleVeterinarian)
	adminOrVet   = domain.NewRoleSet(domain.RoleAdministrator, domain.RoleVeterinarian)
	adminOrStaff = domain.NewRoleSet(domain.RoleAdministrator, domain.RoleEmployee)
)

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
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestIDWithConfig(echomiddleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(requestLogger(d.Log))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "zoo",
		Registerer: d.Registerer,
	}))

	// --- Health probes and metrics (no auth required) ---
	e.GET("/health", handler.NewHealthHandler().Liveness)
	e.GET("/health/ready", handler.NewHealthDependenciesHandler(d.DB, d.Redis).Readiness)
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{
		Gatherer: d.Gatherer,
	}))

	authenticated := middleware.Authenticate(d.Tokens)
	only := func(roles domain.RoleSet) []echo.MiddlewareFunc {
		return middleware.Protect(d.Tokens, roles)
	}

	// --- Auth ---
	auth := handler.NewAuthHandler(d.Auth)
	e.POST("/auth/login", auth.Login)
	e.POST("/auth/register", auth.Register, only(adminOnly)...)

	// --- Animals ---
	animals := handler.NewAnimalHandler(d.Animals)
	e.GET("/animals", animals.List)
	e.GET("/animals/popular", animals.Popular)
	e.GET("/animals/:id", animals.Get)
	e.POST("/animals/:id/click", animals.Click)
	e.POST("/animals", animals.Create, only(adminOnly)...)
	e.PUT("/animals/:id", animals.Update, only(adminOrVet)...)
	e.DELETE("/animals/:id", animals.Delete, only(adminOnly)...)

	// --- Habitats ---
	habitats := handler.NewHabitatHandler(d.Habitats)
	e.GET("/habitats", habitats.List)
	e.GET("/habitats/:id", habitats.Get)
	e.POST("/habitats", habitats.Create, only(adminOnly)...)
	e.PUT("/habitats/:id", habitats.Update, only(adminOnly)...)
	e.DELETE("/habitats/:id", habitats.Delete, only(adminOnly)...)

	// --- Zoo services ---
	services := handler.NewZooServiceHandler(d.ZooServices)
	e.GET("/services", services.List)
	e.GET("/services/:id", services.Get)
	e.POST("/services", services.Create, only(adminOnly)...)
	e.PUT("/services/:id", services.Update, only(adminOnly)...)
	e.DELETE("/services/:id", services.Delete, only(adminOnly)...)

	// --- Reviews ---
	reviews := handler.NewReviewHandler(d.Reviews)
	e.GET("/reviews", reviews.List)
	e.GET("/reviews/:id", reviews.Get)
	e.POST("/reviews", reviews.Submit)
	e.PUT("/reviews/:id", reviews.EditComment, authenticated)
	e.PUT("/reviews/:id/validation", reviews.SetValidated, only(adminOrStaff)...)

	// --- Veterinary reports ---
	reports := handler.NewVetReportHandler(d.VetReports)
	e.GET("/vet-reports", reports.List, only(adminOrVet)...)
	e.POST("/vet-reports", reports.Create, only(vetOnly)...)
	e.PUT("/vet-reports/:id", reports.Update, only(vetOnly)...)
	e.DELETE("/vet-reports/:id", reports.Delete, only(adminOnly)...)

	return e
}

// requestLogger emits one zerolog line per request.
func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			event := log.Info()
			if v.Error != nil {
				event = log.Warn().Err(v.Error)
			}
			event.
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}
