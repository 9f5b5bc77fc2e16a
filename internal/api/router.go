package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/atelier-interiors/studio-cms/docs"
	"github.com/atelier-interiors/studio-cms/internal/api/handler"
	"github.com/atelier-interiors/studio-cms/internal/api/middleware"
	"github.com/atelier-interiors/studio-cms/internal/core/domain"
	"github.com/atelier-interiors/studio-cms/internal/core/ports"
)

// Services are the application services the HTTP layer talks to.
type Services struct {
	Auth         ports.AuthService
	Verifier     ports.TokenVerifier
	Founder      ports.FounderService
	Portfolio    ports.PortfolioService
	Categories   ports.CategoryService
	Videos       ports.VideoService
	Testimonials ports.TestimonialService
	Statistics   ports.StatisticsService

	// Dependencies checked by the readiness probe, keyed by name.
	Dependencies map[string]handler.Pinger
}

// Options tune the router.
type Options struct {
	Log         zerolog.Logger
	CORSOrigins []string
	Version     string
	// Registry receives HTTP metrics; nil uses the default Prometheus registry.
	Registry *prometheus.Registry
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(svc Services, opts Options) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(opts.Log)
	e.Validator = handler.NewValidator()

	var (
		registerer prometheus.Registerer = prometheus.DefaultRegisterer
		gatherer   prometheus.Gatherer   = prometheus.DefaultGatherer
	)
	if opts.Registry != nil {
		registerer, gatherer = opts.Registry, opts.Registry
	}

	origins := opts.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(opts.Log))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: origins,
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))
	e.Use(echomiddleware.BodyLimit("1M"))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "http",
		Registerer: registerer,
	}))
	e.Use(middleware.Authenticate(svc.Verifier))

	requireAuth := middleware.RequireAuth()
	superAdmin := middleware.RBAC(domain.RoleSuperAdmin)

	// --- Auth routes ---
	authHandler := handler.NewAuthHandler(svc.Auth)
	e.POST("/auth/login", authHandler.Login)
	e.GET("/auth/register", authHandler.RegisterStatus)
	e.POST("/auth/register", authHandler.Register) // gated inside the service: open only while no account exists

	accountHandler := handler.NewAccountHandler(svc.Auth)
	e.GET("/auth/users", accountHandler.List, superAdmin)
	e.PATCH("/auth/users", accountHandler.Update, superAdmin)
	e.DELETE("/auth/users", accountHandler.Delete, superAdmin)

	// --- Content routes: public reads, authenticated writes ---
	founder := handler.NewFounderHandler(svc.Founder)
	e.GET("/founder", founder.Get)
	e.POST("/founder", founder.Create, requireAuth)
	e.PUT("/founder", founder.Upsert, requireAuth)

	portfolio := handler.NewPortfolioHandler(svc.Portfolio)
	e.GET("/portfolio", portfolio.List)
	e.GET("/portfolio/:id", portfolio.Get)
	e.POST("/portfolio", portfolio.Create, requireAuth)
	e.PUT("/portfolio/:id", portfolio.Update, requireAuth)
	e.DELETE("/portfolio/:id", portfolio.Delete, requireAuth)

	categories := handler.NewCategoryHandler(svc.Categories)
	e.GET("/categories", categories.List)
	e.POST("/categories", categories.Create, requireAuth)
	e.PUT("/categories/:id", categories.Update, requireAuth)
	e.DELETE("/categories/:id", categories.Delete, requireAuth)

	videos := handler.NewVideoHandler(svc.Videos)
	e.GET("/videos", videos.List)
	e.GET("/videos/:id", videos.Get)
	e.POST("/videos", videos.Create, requireAuth)
	e.PUT("/videos/:id", videos.Update, requireAuth)
	e.DELETE("/videos/:id", videos.Delete, requireAuth)

	testimonials := handler.NewTestimonialHandler(svc.Testimonials)
	e.GET("/testimonials", testimonials.List)
	e.POST("/testimonials", testimonials.Create, requireAuth)

	statistics := handler.NewStatisticsHandler(svc.Statistics)
	e.GET("/statistics", statistics.Current)
	e.GET("/statistics/:id", statistics.Get)
	e.POST("/statistics", statistics.Create, requireAuth)
	e.PUT("/statistics/:id", statistics.Update, requireAuth)
	e.DELETE("/statistics/:id", statistics.Delete, requireAuth)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler(opts.Version)
	readinessHandler := handler.NewReadinessHandler(svc.Dependencies)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?

	// --- Operations ---
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: gatherer}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}

// requestLogger feeds echo's request logger into zerolog.
func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogRemoteIP:  true,
		HandleError:  true,
		LogValuesFunc: func(_ echo.Context, v echomiddleware.RequestLoggerValues) error {
			ev := log.Info()
			if v.Status >= 500 {
				ev = log.Error()
			}
			ev.Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Str("remote_ip", v.RemoteIP).
				Msg("request")
			return nil
		},
	})
}
