package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	backendRequests        *prometheus.CounterVec
	backendRequestDuration *prometheus.HistogramVec
	circuitBreakerState    *prometheus.GaugeVec
	selectorEvents         *prometheus.CounterVec
	selectorSessions       prometheus.Gauge
	comodatoListings       *prometheus.CounterVec
	selectionAuditWrites   *prometheus.CounterVec
	pdfExports             *prometheus.CounterVec
}

// NewPrometheusMetrics registers the collectors on reg. Passing
// prometheus.DefaultRegisterer exposes them on the default /metrics handler.
func NewPrometheusMetrics(reg prometheus.Registerer) *PrometheusMetrics {
	factory := promauto.With(reg)

	return &PrometheusMetrics{
		backendRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "backend_requests_total",
				Help: "Total number of requests to the remote API by resource and outcome",
			},
			[]string{"resource", "status"},
		),
		backendRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "backend_request_duration_seconds",
				Help:    "Remote API request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"resource"},
		),
		circuitBreakerState: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "circuit_breaker_state",
				Help: "Circuit breaker state (0=closed, 1=open, 2=half-open)",
			},
			[]string{"service"},
		),
		selectorEvents: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "selector_events_total",
				Help: "Client selector fetch and selection outcomes",
			},
			[]string{"outcome"},
		),
		selectorSessions: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "selector_sessions_active",
				Help: "Current number of browser sessions holding a client selector",
			},
		),
		comodatoListings: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "comodato_listings_total",
				Help: "Comodatos listing loads by resulting state",
			},
			[]string{"status"},
		),
		selectionAuditWrites: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "selection_audit_writes_total",
				Help: "Selection audit rows written, by outcome",
			},
			[]string{"status"},
		),
		pdfExports: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "comodato_pdf_exports_total",
				Help: "Comodatos PDF exports, by outcome",
			},
			[]string{"status"},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	status := tags["status"]

	switch name {
	case "backend_request":
		m.backendRequests.WithLabelValues(tags["resource"], status).Inc()
	case "selector_event":
		if outcome := tags["outcome"]; outcome != "" {
			m.selectorEvents.WithLabelValues(outcome).Inc()
		}
	case "comodato_listing":
		if status != "" {
			m.comodatoListings.WithLabelValues(status).Inc()
		}
	case "selection_audit_write":
		if status != "" {
			m.selectionAuditWrites.WithLabelValues(status).Inc()
		}
	case "comodato_pdf_export":
		if status != "" {
			m.pdfExports.WithLabelValues(status).Inc()
		}
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "backend_request_clientes":
		m.backendRequestDuration.WithLabelValues("clientes").Observe(duration.Seconds())
	case "backend_request_comodatos":
		m.backendRequestDuration.WithLabelValues("comodatos").Observe(duration.Seconds())
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case "circuit_breaker_state":
		m.circuitBreakerState.WithLabelValues(tags["service"]).Set(value)
	case "selector_sessions":
		m.selectorSessions.Set(value)
	}
}
