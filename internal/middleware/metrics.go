package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// HTTPMetrics collects request count and latency per route.
type HTTPMetrics struct {
	registry    *prometheus.Registry
	reqTotal    *prometheus.CounterVec
	reqDuration *prometheus.HistogramVec
}

// NewHTTPMetrics creates the metrics collector with its own registry plus
// Go runtime and process collectors.
func NewHTTPMetrics(serviceName string) *HTTPMetrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	constLabels := prometheus.Labels{"service": serviceName}

	reqTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace:   "http",
		Subsystem:   "server",
		Name:        "requests_total",
		Help:        "Total number of HTTP requests.",
		ConstLabels: constLabels,
	}, []string{"method", "path", "status"})

	reqDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace:   "http",
		Subsystem:   "server",
		Name:        "request_duration_seconds",
		Help:        "HTTP request duration in seconds.",
		Buckets:     prometheus.DefBuckets,
		ConstLabels: constLabels,
	}, []string{"method", "path", "status"})

	registry.MustRegister(reqTotal, reqDuration)

	return &HTTPMetrics{
		registry:    registry,
		reqTotal:    reqTotal,
		reqDuration: reqDuration,
	}
}

// Handler returns the /metrics export handler.
func (m *HTTPMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Middleware records metrics for every request.
func (m *HTTPMetrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())
		m.reqTotal.WithLabelValues(c.Request.Method, path, status).Inc()
		m.reqDuration.WithLabelValues(c.Request.Method, path, status).Observe(time.Since(start).Seconds())
	}
}
