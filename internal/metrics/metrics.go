package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	WsConnections = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "messanger_ws_connections",
		Help: "Current number of registered live channels",
	})
	NotificationsDelivered = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "messanger_notifications_delivered_total",
		Help: "Total number of payloads pushed to live channels",
	})
	NotificationsDropped = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "messanger_notifications_dropped_total",
		Help: "Total number of notifications skipped because the recipient had no live channel",
	})
	HttpRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})
	HttpRequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "HTTP request duration in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})
)

func init() {
	prometheus.MustRegister(WsConnections, NotificationsDelivered, NotificationsDropped, HttpRequestsTotal, HttpRequestDuration)
}

// GinMiddleware records request count and latency per method/path/status.
func GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		status := strconv.Itoa(c.Writer.Status())
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}
		labels := prometheus.Labels{"method": c.Request.Method, "path": path, "status": status}
		HttpRequestsTotal.With(labels).Inc()
		HttpRequestDuration.With(labels).Observe(time.Since(start).Seconds())
	}
}
