package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	reportRequests      *prometheus.CounterVec
	reportCacheWrites   *prometheus.CounterVec
	reportGeneration    prometheus.Histogram
	costsCreated        *prometheus.CounterVec
	eventsPublished     *prometheus.CounterVec
	usersCreated        prometheus.Counter
	circuitBreakerState *prometheus.GaugeVec
}

// NewPrometheusMetrics registers the service metrics with reg. A nil reg uses the
// default registry.
func NewPrometheusMetrics(reg prometheus.Registerer) MetricsRecorderInterface {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &PrometheusMetrics{
		reportRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "report_requests_total",
				Help: "Total number of monthly report requests by period state and outcome",
			},
			[]string{"period", "result"},
		),
		reportCacheWrites: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "report_cache_writes_total",
				Help: "Total number of closed-period report writes to the report store",
			},
			[]string{"status"},
		),
		reportGeneration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "report_generation_duration_seconds",
				Help:    "Time spent loading and aggregating costs for a report",
				Buckets: prometheus.DefBuckets,
			},
		),
		costsCreated: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "costs_created_total",
				Help: "Total number of costs recorded",
			},
			[]string{"category"},
		),
		eventsPublished: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "events_published_total",
				Help: "Total number of cost events by publish outcome",
			},
			[]string{"status"},
		),
		usersCreated: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "users_created_total",
				Help: "Total number of users created",
			},
		),
		circuitBreakerState: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "circuit_breaker_state",
				Help: "Circuit breaker state (0=closed, 1=open, 2=half-open)",
			},
			[]string{"service"},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	status := tags["status"]

	switch name {
	case "report_request":
		m.reportRequests.WithLabelValues(tags["period"], tags["result"]).Inc()
	case "report_cache_write":
		if status != "" {
			m.reportCacheWrites.WithLabelValues(status).Inc()
		}
	case "cost_created":
		if category := tags["category"]; category != "" {
			m.costsCreated.WithLabelValues(category).Inc()
		}
	case "event_published":
		if status != "" {
			m.eventsPublished.WithLabelValues(status).Inc()
		}
	case "user_created":
		m.usersCreated.Inc()
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "report_generation":
		m.reportGeneration.Observe(duration.Seconds())
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case "circuit_breaker_state":
		m.circuitBreakerState.WithLabelValues(tags["service"]).Set(value)
	}
}
