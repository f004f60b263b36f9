package services

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gatherValue(t *testing.T, reg *prometheus.Registry, name string, labels map[string]string) float64 {
	t.Helper()

	families, err := reg.Gather()
	require.NoError(t, err)

	for _, mf := range families {
		if mf.GetName() != name {
			continue
		}
	metrics:
		for _, m := range mf.GetMetric() {
			for _, lp := range m.GetLabel() {
				if labels[lp.GetName()] != lp.GetValue() {
					continue metrics
				}
			}
			switch {
			case m.GetCounter() != nil:
				return m.GetCounter().GetValue()
			case m.GetGauge() != nil:
				return m.GetGauge().GetValue()
			case m.GetHistogram() != nil:
				return float64(m.GetHistogram().GetSampleCount())
			}
		}
	}
	return -1
}

func TestPrometheusMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewPrometheusMetrics(reg)

	m.IncrementCounter("backend_request", map[string]string{"resource": "clientes", "status": "success"})
	m.IncrementCounter("backend_request", map[string]string{"resource": "clientes", "status": "success"})
	m.IncrementCounter("selector_event", map[string]string{"outcome": "discarded"})
	m.IncrementCounter("comodato_listing", map[string]string{"status": "empty"})
	m.IncrementCounter("unknown_metric", nil)
	m.RecordProcessingTime("backend_request_comodatos", 150*time.Millisecond)
	m.RecordGauge("circuit_breaker_state", 1, map[string]string{"service": "backend"})
	m.RecordGauge("selector_sessions", 3, nil)

	assert.Equal(t, 2.0, gatherValue(t, reg, "backend_requests_total", map[string]string{"resource": "clientes", "status": "success"}))
	assert.Equal(t, 1.0, gatherValue(t, reg, "selector_events_total", map[string]string{"outcome": "discarded"}))
	assert.Equal(t, 1.0, gatherValue(t, reg, "comodato_listings_total", map[string]string{"status": "empty"}))
	assert.Equal(t, 1.0, gatherValue(t, reg, "backend_request_duration_seconds", map[string]string{"resource": "comodatos"}))
	assert.Equal(t, 1.0, gatherValue(t, reg, "circuit_breaker_state", map[string]string{"service": "backend"}))
	assert.Equal(t, 3.0, gatherValue(t, reg, "selector_sessions_active", nil))
}

func TestNewPrometheusMetrics_SeparateRegistries(t *testing.T) {
	assert.NotPanics(t, func() {
		NewPrometheusMetrics(prometheus.NewRegistry())
		NewPrometheusMetrics(prometheus.NewRegistry())
	})
}
