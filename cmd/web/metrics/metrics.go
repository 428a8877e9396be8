package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// outcome 라벨 값
const (
	OutcomeSuccess           = "success"
	OutcomeEmptyTopic        = "empty_topic"
	OutcomeConnectionFailure = "connection_failure"
	OutcomeOtherFailure      = "other_failure"
)

var (
	GenerationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "spark_generations_total",
			Help: "Total number of idea generation attempts by outcome",
		},
		[]string{"outcome", "platform"},
	)

	GenerationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "spark_generation_duration_seconds",
			Help:    "Duration of the call to the local model in seconds",
			Buckets: []float64{0.5, 1, 2.5, 5, 10, 30, 60, 120, 300},
		},
		[]string{"outcome"},
	)

	IdeasReturned = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "spark_ideas_returned",
			Help:    "Number of ideas shown per successful generation",
			Buckets: prometheus.LinearBuckets(0, 1, 11),
		},
	)

	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "spark_http_requests_total",
			Help: "Total number of inbound HTTP requests",
		},
		[]string{"method", "route", "status"},
	)
)
