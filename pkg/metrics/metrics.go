// Package metrics provides Prometheus metrics instrumentation.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestDuration tracks HTTP request duration.
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path", "status"},
	)

	// RequestsTotal tracks total HTTP requests.
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// ModelCallDuration tracks remote model call duration, including
	// retries.
	ModelCallDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "model_call_duration_seconds",
			Help:    "Remote model call duration in seconds",
			Buckets: []float64{.25, .5, 1, 2, 5, 10, 20, 30, 45, 60},
		},
		[]string{"provider", "status"},
	)

	// ModelTokensTotal tracks total model tokens processed.
	ModelTokensTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "model_tokens_total",
			Help: "Total model tokens processed",
		},
		[]string{"provider", "direction"},
	)

	// ModelRetriesTotal tracks transient-failure retries against the
	// remote model.
	ModelRetriesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "model_retries_total",
			Help: "Total retry attempts against the remote model",
		},
	)

	// AnswersTotal tracks answer outcomes by how the gateway resolved
	// them (answered, greeting, redirect, failed).
	AnswersTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "answers_total",
			Help: "Total answer requests by outcome",
		},
		[]string{"outcome"},
	)

	// ConversationsActive tracks conversations held in memory.
	ConversationsActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "conversations_active",
			Help: "Number of conversations held in memory",
		},
	)
)

// RecordRequest records metrics for an HTTP request.
func RecordRequest(method, path, status string, duration float64) {
	RequestDuration.WithLabelValues(method, path, status).Observe(duration)
	RequestsTotal.WithLabelValues(method, path, status).Inc()
}

// RecordModelCall records metrics for a remote model call.
func RecordModelCall(provider, status string, duration float64, tokensIn, tokensOut int) {
	ModelCallDuration.WithLabelValues(provider, status).Observe(duration)
	ModelTokensTotal.WithLabelValues(provider, "in").Add(float64(tokensIn))
	ModelTokensTotal.WithLabelValues(provider, "out").Add(float64(tokensOut))
}
