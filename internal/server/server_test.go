package server

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"comodatos-admin/internal/config"
	"comodatos-admin/internal/database"
	"comodatos-admin/internal/handlers"
	"comodatos-admin/internal/middleware"
	"comodatos-admin/internal/repositories"
	"comodatos-admin/internal/selector"
	"comodatos-admin/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/suite"
)

const (
	clientesJSON = `[
		{"id": 1, "nombre": "Acme Ltda", "rut": "76.000.001-1", "codigo_comuna": "13101",
		 "direccion": "Av. Matta 100", "logo": "", "comodatos": [{"id": 10}]},
		{"id": 2, "nombre": "Beta SpA", "rut": "76.000.002-2", "codigo_comuna": "05101",
		 "direccion": "Calle Prat 5", "logo": "https://cdn.example.com/beta.png", "comodatos": []}
	]`
	comodatosJSON = `[{"id": 10, "equipo": "Refrigerador", "valor": 1250000, "cliente_id": 1}]`
)

type ServerTestSuite struct {
	suite.Suite
	backend *httptest.Server
	db      *database.DB
	store   *selector.Store
	echo    *echo.Echo
	cookie  *http.Cookie
}

func TestServerSuite(t *testing.T) {
	suite.Run(t, new(ServerTestSuite))
}

func (s *ServerTestSuite) SetupTest() {
	s.backend = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/clientes":
			_, _ = io.WriteString(w, clientesJSON)
		case "/comodatos":
			_, _ = io.WriteString(w, comodatosJSON)
		default:
			http.NotFound(w, r)
		}
	}))

	cfg := &config.Config{
		Server: config.ServerConfig{Environment: "test", ReadTimeout: time.Second, WriteTimeout: time.Second},
		Backend: config.BackendConfig{
			BaseURL: s.backend.URL,
			Timeout: 2 * time.Second,
		},
		Selector: config.SelectorConfig{
			PlaceholderLogo:   "/static/img/sin-logo.svg",
			ClientCreateRoute: "/clientes",
			ShowSelected:      true,
			SessionIdle:       time.Hour,
		},
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	registry := prometheus.NewRegistry()
	metrics := services.NewPrometheusMetrics(registry)
	adminLogger := services.NewAdminLogger(logger)
	breaker := services.NewCircuitBreaker(services.CircuitBreakerConfigFromBackend(&cfg.Backend), nil)
	backend := services.NewBackendClient(&cfg.Backend, breaker, metrics, logger)

	s.db = database.SetupTestDB(s.T())
	s.store = selector.NewStore(func(onSelect func(int64)) *selector.Selector {
		return selector.New(backend, logger, metrics, selector.Options{
			ShowSelected:    cfg.Selector.ShowSelected,
			PlaceholderLogo: cfg.Selector.PlaceholderLogo,
			NewClientRoute:  cfg.Selector.ClientCreateRoute,
			OnSelect:        onSelect,
		})
	}, cfg.Selector.SessionIdle, logger)

	s.echo = New(Dependencies{
		Config:      cfg,
		Logger:      logger,
		Registry:    registry,
		DB:          s.db,
		Backend:     backend,
		Store:       s.store,
		Listing:     services.NewComodatoListingService(backend, adminLogger, metrics),
		Exporter:    services.NewComodatoPDFExporter(metrics),
		Audit:       services.NewSelectionAuditService(repositories.NewSelectionEventRepository(s.db.DB), adminLogger, metrics),
		AdminLogger: adminLogger,
		RateLimiter: middleware.NewRateLimiter(1000, 1000),
	})
	s.cookie = nil
}

func (s *ServerTestSuite) TearDownTest() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s.NoError(s.store.Run(ctx, time.Hour))
	database.CleanupTestDB(s.T(), s.db)
	s.backend.Close()
}

// do sends a request through the full middleware stack, keeping the
// session cookie between calls.
func (s *ServerTestSuite) do(method, target string, form url.Values, fragment bool) *httptest.ResponseRecorder {
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req := httptest.NewRequest(method, target, body)
	if form != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	}
	if fragment {
		req.Header.Set(handlers.FragmentHeader, "1")
	}
	if s.cookie != nil {
		req.AddCookie(s.cookie)
	}

	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)

	for _, c := range rec.Result().Cookies() {
		if c.Name == middleware.SessionCookieName {
			s.cookie = c
		}
	}
	return rec
}

func (s *ServerTestSuite) waitForClientes() {
	s.Require().NotNil(s.cookie)
	sess, ok := s.store.Lookup(s.cookie.Value)
	s.Require().True(ok)
	sess.Selector.Wait()
}

func (s *ServerTestSuite) TestRootRedirectsAndIssuesSession() {
	rec := s.do(http.MethodGet, "/", nil, false)

	s.Equal(http.StatusFound, rec.Code)
	s.Equal("/comodatos", rec.Header().Get(echo.HeaderLocation))
	s.NotNil(s.cookie)
	s.NotEmpty(rec.Header().Get(middleware.TraceIDHeader))
}

func (s *ServerTestSuite) TestComodatosPageAndTable() {
	rec := s.do(http.MethodGet, "/comodatos", nil, false)
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "Cargando datos...")

	rec = s.do(http.MethodGet, "/comodatos/tabla", nil, true)
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "Refrigerador")
	s.Contains(rec.Body.String(), "1250000")
}

func (s *ServerTestSuite) TestComodatosPDF() {
	rec := s.do(http.MethodGet, "/comodatos/export.pdf", nil, false)

	s.Equal(http.StatusOK, rec.Code)
	s.Equal("application/pdf", rec.Header().Get(echo.HeaderContentType))
	s.True(strings.HasPrefix(rec.Body.String(), "%PDF-"))
}

func (s *ServerTestSuite) TestSelectorFlowRecordsSelection() {
	s.do(http.MethodGet, "/comodatos/nuevo", nil, false)

	rec := s.do(http.MethodPost, "/selector/abrir", nil, true)
	s.Require().Equal(http.StatusOK, rec.Code)
	s.waitForClientes()

	rec = s.do(http.MethodGet, "/selector/buscar?q=acm", nil, true)
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "Acme Ltda")
	s.Contains(rec.Body.String(), "76.000.001-1")
	s.NotContains(rec.Body.String(), "Beta SpA")

	rec = s.do(http.MethodPost, "/selector/seleccionar", url.Values{"cliente_id": {"1"}}, true)
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "76.000.001-1")
	s.Contains(rec.Body.String(), "1 comodato")
	s.Contains(rec.Body.String(), `src="/static/img/sin-logo.svg"`)

	rec = s.do(http.MethodGet, "/api/v1/selecciones", nil, false)
	s.Equal(http.StatusOK, rec.Code)

	var body struct {
		Data struct {
			Total      int64 `json:"total"`
			Selections []struct {
				SessionID string `json:"session_id"`
				ClienteID int64  `json:"cliente_id"`
				TraceID   string `json:"trace_id"`
			} `json:"selections"`
		} `json:"data"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Equal(int64(1), body.Data.Total)
	s.Require().Len(body.Data.Selections, 1)
	s.Equal(s.cookie.Value, body.Data.Selections[0].SessionID)
	s.Equal(int64(1), body.Data.Selections[0].ClienteID)
	s.NotEmpty(body.Data.Selections[0].TraceID)
}

func (s *ServerTestSuite) TestNewClientRedirects() {
	rec := s.do(http.MethodPost, "/selector/nuevo-cliente", nil, false)

	s.Equal(http.StatusSeeOther, rec.Code)
	s.Equal("/clientes", rec.Header().Get(echo.HeaderLocation))
}

func (s *ServerTestSuite) TestHealthMetricsAndStatic() {
	rec := s.do(http.MethodGet, "/health", nil, false)
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "healthy")

	s.do(http.MethodGet, "/api/v1/comodatos", nil, false)
	rec = s.do(http.MethodGet, "/metrics", nil, false)
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "comodato_listings_total")

	rec = s.do(http.MethodGet, "/static/img/sin-logo.svg", nil, false)
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "<svg")
}

func (s *ServerTestSuite) TestDocsAreServedWithoutSession() {
	rec := s.do(http.MethodGet, "/docs", nil, false)
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "/docs/swagger.json")
	s.Contains(rec.Header().Get("Content-Security-Policy"), "https://cdn.jsdelivr.net")

	rec = s.do(http.MethodGet, "/docs/swagger.json", nil, false)
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "/api/v1/selector/select")
	s.Nil(s.cookie)
}

func (s *ServerTestSuite) TestUnknownRouteUsesErrorFormat() {
	rec := s.do(http.MethodGet, "/no-such-page", nil, false)

	s.Equal(http.StatusNotFound, rec.Code)
	s.Contains(rec.Body.String(), "RESOURCE_001")
}
