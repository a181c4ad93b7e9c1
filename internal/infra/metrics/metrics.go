// Package metrics exposes Prometheus instruments for the authentication service.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"gatekeeper/internal/domain/service"
)

const namespace = "gatekeeper"

// Metrics holds the service instruments on a private registry.
type Metrics struct {
	registry       *prometheus.Registry
	authAttempts   *prometheus.CounterVec
	activeSessions prometheus.Gauge
}

var _ service.AuthMetrics = (*Metrics)(nil)

// New creates the registry and registers all collectors.
func New() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,
		authAttempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "auth_attempts_total",
			Help:      "Authentication operations by operation and outcome.",
		}, []string{"operation", "outcome"}),
		activeSessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "active_sessions",
			Help:      "Refresh token records currently held in the session store.",
		}),
	}

	registry.MustRegister(
		m.authAttempts,
		m.activeSessions,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

// NewAuthMetrics adapts New for injection as service.AuthMetrics.
func NewAuthMetrics(m *Metrics) service.AuthMetrics {
	return m
}

// ObserveAttempt implements service.AuthMetrics.
func (m *Metrics) ObserveAttempt(operation, outcome string) {
	m.authAttempts.WithLabelValues(operation, outcome).Inc()
}

// SetActiveSessions implements service.AuthMetrics.
func (m *Metrics) SetActiveSessions(n int) {
	m.activeSessions.Set(float64(n))
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
