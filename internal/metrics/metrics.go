package metrics

import (
	"encoding/json"
	"net/http"

	"github.com/prashant-tajane/qkart-frontend/internal/health"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// API client metrics

	APIRequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "qkart",
		Name:      "api_request_duration_seconds",
		Help:      "Latency of calls to the QKart backend.",
		Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
	}, []string{"operation", "outcome"})

	APIRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "qkart",
		Name:      "api_requests_total",
		Help:      "Total calls to the QKart backend, by operation and outcome.",
	}, []string{"operation", "outcome"})

	// Cart metrics

	CartMutationsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "qkart",
		Name:      "cart_mutations_total",
		Help:      "Cart add/increment/decrement attempts, by outcome.",
	}, []string{"mode", "outcome"})

	ReconcileOrphansTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "qkart",
		Name:      "cart_reconcile_orphans_total",
		Help:      "Cart entries dropped from display because no catalog product matched.",
	})

	// Search metrics

	SearchesDispatchedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "qkart",
		Name:      "searches_dispatched_total",
		Help:      "Catalog queries that survived the debounce window.",
	})
)

func Register() {
	prometheus.MustRegister(
		APIRequestDuration,
		APIRequestsTotal,
		CartMutationsTotal,
		ReconcileOrphansTotal,
		SearchesDispatchedTotal,
	)
}

// NewServer serves /metrics plus liveness and readiness probes.
func NewServer(addr string, checker *health.Checker) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeHealth(w, checker.Liveness(r.Context()))
	})
	mux.HandleFunc("/readyz", func(w http.ResponseWriter, r *http.Request) {
		result := checker.Readiness(r.Context())
		if result.Status != "up" {
			w.WriteHeader(http.StatusServiceUnavailable)
		}
		writeHealth(w, result)
	})
	return &http.Server{Addr: addr, Handler: mux}
}

func writeHealth(w http.ResponseWriter, result health.HealthResult) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(result)
}
