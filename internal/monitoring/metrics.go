package monitoring

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "admin_http_requests_total",
			Help: "Total HTTP requests handled by the admin gateway",
		},
		[]string{"method", "route", "status"},
	)

	httpDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "admin_http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	backendCalls = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "admin_backend_calls_total",
			Help: "Calls made to the exhibition backend API",
		},
		[]string{"method", "status"},
	)

	uploadRejections = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "admin_upload_rejections_total",
			Help: "Uploads rejected before reaching the backend",
		},
		[]string{"reason"},
	)
)

// RequestMetrics records per-route counts and latency for every request.
func RequestMetrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())
		httpRequests.WithLabelValues(c.Request.Method, route, status).Inc()
		httpDuration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}

func TrackBackendCall(method string, status int) {
	backendCalls.WithLabelValues(method, strconv.Itoa(status)).Inc()
}

func TrackUploadRejection(reason string) {
	uploadRejections.WithLabelValues(reason).Inc()
}

// Handler exposes the Prometheus scrape endpoint.
func Handler() gin.HandlerFunc {
	h := promhttp.Handler()
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}
