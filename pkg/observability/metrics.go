package observability

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Fetch outcomes reported by ObserveFetch.
const (
	FetchSuccess   = "success"
	FetchAPIError  = "api_error"
	FetchMalformed = "malformed"
	FetchTransport = "transport"
	FetchStale     = "stale"
)

var (
	submissions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "weather_submissions_total",
			Help: "Location submissions by result (accepted, rejected).",
		},
		[]string{"result"},
	)
	fetches = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "weather_forecast_fetch_seconds",
			Help:    "Forecast fetch latency by outcome.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"outcome"},
	)
	activeSessions = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "weather_active_sessions",
			Help: "Browser sessions currently held in memory.",
		},
	)
)

func init() { prometheus.MustRegister(submissions, fetches, activeSessions) }

func ObserveSubmission(accepted bool) {
	result := "rejected"
	if accepted {
		result = "accepted"
	}
	submissions.WithLabelValues(result).Inc()
}

func ObserveFetch(outcome string, elapsed time.Duration) {
	fetches.WithLabelValues(outcome).Observe(elapsed.Seconds())
}

func SetActiveSessions(n int) {
	activeSessions.Set(float64(n))
}

// Handler exposes the default registry in the prometheus text format.
func Handler() http.Handler {
	return promhttp.Handler()
}
