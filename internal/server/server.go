package server

import (
	"log/slog"
	"net/http"

	"comodatos-admin/internal/config"
	"comodatos-admin/internal/handlers"
	"comodatos-admin/internal/middleware"
	"comodatos-admin/internal/selector"
	"comodatos-admin/internal/services"
	"comodatos-admin/internal/web"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Dependencies is everything the HTTP surface needs
type Dependencies struct {
	Config      *config.Config
	Logger      *slog.Logger
	Registry    *prometheus.Registry
	DB          handlers.DatabasePinger
	Backend     services.BackendClientInterface
	Store       *selector.Store
	Listing     services.ComodatoListingServiceInterface
	Exporter    services.ComodatoExporterInterface
	Audit       services.SelectionAuditServiceInterface
	AdminLogger services.AdminLoggerInterface
	RateLimiter *middleware.RateLimiter
}

// New builds the echo instance with every admin route registered
func New(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = deps.Config.Server.ReadTimeout
	e.Server.WriteTimeout = deps.Config.Server.WriteTimeout

	e.HTTPErrorHandler = middleware.NewHTTPErrorHandler(deps.Logger, deps.Registry)
	e.Validator = handlers.NewValidator()
	e.Renderer = web.MustRenderer()

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery(deps.Logger))
	e.Use(requestLogger(deps.Logger))
	e.Use(middleware.SecurityHeaders())
	e.Use(echomw.BodyLimit("1M"))

	healthHandler := handlers.NewHealthCheckHandler(deps.DB, deps.Backend)
	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{})))
	e.StaticFS("/static", web.StaticFS())

	docsHandler := handlers.NewDocsHandler(web.DocsFS())
	e.GET("/docs", docsHandler.ServeScalarUI)
	e.GET("/docs/swagger.json", docsHandler.ServeOAS3JSON)

	selectorHandler := handlers.NewSelectorHandler(deps.Store, deps.Audit, deps.AdminLogger)
	comodatoHandler := handlers.NewComodatoHandler(deps.Listing, deps.Exporter, deps.Store)
	auditHandler := handlers.NewAuditHandler(deps.Audit)

	app := e.Group("",
		deps.RateLimiter.Middleware(),
		middleware.Session(deps.Config.IsProduction()),
	)

	app.GET("/", func(c echo.Context) error {
		return c.Redirect(http.StatusFound, "/comodatos")
	})
	app.GET("/comodatos", comodatoHandler.Page)
	app.GET("/comodatos/tabla", comodatoHandler.Table)
	app.GET("/comodatos/export.pdf", comodatoHandler.ExportPDF)
	app.GET(handlers.NewComodatoPath, comodatoHandler.New)

	sel := app.Group("/selector")
	sel.POST("/abrir", selectorHandler.Open)
	sel.POST("/cerrar", selectorHandler.Close)
	sel.GET("/modal", selectorHandler.Modal)
	sel.GET("/buscar", selectorHandler.Search)
	sel.POST("/buscar", selectorHandler.Search)
	sel.POST("/seleccionar", selectorHandler.Select)
	sel.POST("/nuevo-cliente", selectorHandler.NewClient)

	api := app.Group("/api/v1")
	api.GET("/selector", selectorHandler.GetState)
	api.POST("/selector/open", selectorHandler.OpenAPI)
	api.POST("/selector/close", selectorHandler.CloseAPI)
	api.POST("/selector/search", selectorHandler.SearchAPI)
	api.POST("/selector/select", selectorHandler.SelectAPI)
	api.POST("/selector/new-client", selectorHandler.NewClientAPI)
	api.GET("/comodatos", comodatoHandler.List)
	api.GET("/selecciones", auditHandler.ListSelections)

	return e
}

func requestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	return echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogRemoteIP: true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			attrs := []any{
				"trace_id", middleware.GetTraceID(c),
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency_ms", v.Latency.Milliseconds(),
				"remote_ip", v.RemoteIP,
			}
			if v.Error != nil {
				logger.Warn("request failed", append(attrs, "error", v.Error.Error())...)
				return nil
			}
			logger.Info("request", attrs...)
			return nil
		},
	})
}
