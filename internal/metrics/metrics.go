package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// APIRequestsTotal tracks outbound requests per endpoint and outcome
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "airdrop_api_requests_total",
			Help: "Total number of airdrop API requests",
		},
		[]string{"endpoint", "outcome"},
	)

	// APIRetriesTotal tracks retries after a failed attempt
	APIRetriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "airdrop_api_retries_total",
			Help: "Total number of airdrop API request retries",
		},
		[]string{"endpoint"},
	)

	// APILatency tracks request latency
	APILatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "airdrop_api_latency_seconds",
			Help:    "Airdrop API request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"endpoint"},
	)

	// ResultsTotal tracks produced results per status
	ResultsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "airdrop_results_total",
			Help: "Total number of eligibility results by status",
		},
		[]string{"status"},
	)

	// BatchesRejectedTotal tracks batches refused for exceeding the size limit
	BatchesRejectedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "airdrop_batches_rejected_total",
			Help: "Total number of batches rejected for exceeding the maximum size",
		},
	)
)

// Request outcomes.
const (
	OutcomeSuccess   = "success"
	OutcomeHTTPError = "http_error"
	OutcomeTransport = "transport_error"
)
