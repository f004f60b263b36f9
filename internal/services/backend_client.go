package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"comodatos-admin/internal/config"
	"comodatos-admin/internal/models"
)

var ErrUnexpectedStatus = errors.New("unexpected backend response status")

// AuthTransport stamps every backend request with the API key, when one is
// configured, and asks for JSON.
type AuthTransport struct {
	apiKey string
	base   http.RoundTripper
}

func (t *AuthTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())

	if t.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+t.apiKey)
	}
	req.Header.Set("Accept", "application/json")

	return t.base.RoundTrip(req)
}

// BackendClient talks to the remote REST API that owns clientes and comodatos.
type BackendClient struct {
	config  *config.BackendConfig
	client  *http.Client
	breaker CircuitBreakerInterface
	metrics MetricsRecorderInterface
	logger  *slog.Logger
}

// NewBackendClient builds a client for cfg.BaseURL. Requests carry the API key
// when one is configured and time out after cfg.Timeout (10s if unset).
func NewBackendClient(
	cfg *config.BackendConfig,
	breaker CircuitBreakerInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) *BackendClient {
	transport := &AuthTransport{
		apiKey: cfg.APIKey,
		base:   http.DefaultTransport,
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &BackendClient{
		config: cfg,
		client: &http.Client{
			Transport: transport,
			Timeout:   timeout,
		},
		breaker: breaker,
		metrics: metrics,
		logger:  logger,
	}
}

// ListClientes fetches GET /clientes. Malformed entries decode leniently but
// any failed request is an error.
func (s *BackendClient) ListClientes(ctx context.Context) ([]models.Cliente, error) {
	var clientes []models.Cliente
	if err := s.getJSON(ctx, "clientes", "/clientes", &clientes); err != nil {
		return nil, err
	}
	return clientes, nil
}

// ListComodatos fetches GET /comodatos with the same error handling as ListClientes.
func (s *BackendClient) ListComodatos(ctx context.Context) ([]models.Comodato, error) {
	var comodatos []models.Comodato
	if err := s.getJSON(ctx, "comodatos", "/comodatos", &comodatos); err != nil {
		return nil, err
	}
	return comodatos, nil
}

func (s *BackendClient) CircuitState() models.CircuitBreakerState {
	return s.breaker.GetState()
}

func (s *BackendClient) getJSON(ctx context.Context, resource, path string, out any) error {
	if s.breaker.IsOpen() {
		s.observe(resource, "circuit_open", 0)
		return fmt.Errorf("get %s: %w", path, ErrCircuitBreakerOpen)
	}

	start := time.Now()

	req, err := s.buildRequest(ctx, http.MethodGet, path)
	if err != nil {
		return err
	}

	resp, body, err := s.do(req)
	if err != nil {
		if ctx.Err() == nil {
			s.breaker.RecordFailure()
		}
		s.observe(resource, "error", time.Since(start))
		return fmt.Errorf("get %s: %w", path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if resp.StatusCode >= 500 {
			s.breaker.RecordFailure()
		}
		s.observe(resource, "bad_status", time.Since(start))
		s.logger.Error(
			"backend returned an error status",
			"resource", resource,
			"status", resp.StatusCode,
			"body", truncate(string(body), 256),
		)
		return fmt.Errorf("get %s: %w (%d)", path, ErrUnexpectedStatus, resp.StatusCode)
	}

	if err := json.Unmarshal(body, out); err != nil {
		s.breaker.RecordSuccess()
		s.observe(resource, "decode_error", time.Since(start))
		return fmt.Errorf("decode %s response: %w", resource, err)
	}

	s.breaker.RecordSuccess()
	s.observe(resource, "success", time.Since(start))
	return nil
}

func (s *BackendClient) buildRequest(ctx context.Context, method, path string) (*http.Request, error) {
	url := strings.TrimRight(s.config.BaseURL, "/") + path

	req, err := http.NewRequestWithContext(ctx, method, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	return req, nil
}

func (s *BackendClient) do(req *http.Request) (*http.Response, []byte, error) {
	resp, err := s.client.Do(req)
	if err != nil {
		s.logger.Error(
			"backend request failed",
			"method", req.Method,
			"url", req.URL.String(),
			"error", err,
		)
		return nil, nil, err
	}

	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()

	if err != nil {
		return nil, nil, fmt.Errorf("read response body: %w", err)
	}

	return resp, body, nil
}

func (s *BackendClient) observe(resource, status string, d time.Duration) {
	if s.metrics == nil {
		return
	}
	s.metrics.IncrementCounter("backend_request", map[string]string{"resource": resource, "status": status})
	if d > 0 {
		s.metrics.RecordProcessingTime("backend_request_"+resource, d)
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
