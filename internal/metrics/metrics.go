package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	SearchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "firstbites_searches_total",
			Help: "Total number of search pipeline runs by winning strategy",
		},
		[]string{"strategy"},
	)

	SearchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "firstbites_search_duration_seconds",
			Help:    "Duration of search pipeline runs in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10},
		},
		[]string{"strategy"},
	)

	UpstreamRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "firstbites_upstream_requests_total",
			Help: "Total requests issued to the upstream recipe API",
		},
		[]string{"op", "status"},
	)
)

// RecordSearch updates the search metrics for one completed pipeline run.
func RecordSearch(strategy string, duration time.Duration) {
	SearchesTotal.WithLabelValues(strategy).Inc()
	SearchDuration.WithLabelValues(strategy).Observe(duration.Seconds())
}

// RecordUpstream counts one upstream request. A status of 0 means the
// request never produced an HTTP response.
func RecordUpstream(op string, status int) {
	statusStr := "error"
	if status != 0 {
		statusStr = strconv.Itoa(status)
	}
	UpstreamRequestsTotal.WithLabelValues(op, statusStr).Inc()
}

// Handler returns the HTTP handler serving the Prometheus registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
