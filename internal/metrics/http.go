package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "neighbornet_http_request_duration_seconds",
	Help:    "Duration of API requests.",
	Buckets: prometheus.DefBuckets,
}, []string{"method", "route", "status"})

// ObserveRequest records a served API request. route is the router pattern, not the raw path.
func ObserveRequest(method, route string, status int, duration time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	requestDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(duration.Seconds())
}
