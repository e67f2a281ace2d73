package router

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/traininghub/backend/internal/models"
)

// URLMiddleware stores the external base URL of the API on the context
// so that handlers can build links.
func URLMiddleware(url *url.URL) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(string(models.DBContextURL), strings.TrimSuffix(url.String(), "/"))
		c.Next()
	}
}

var requestCount = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "requests_total",
		Help: "How many HTTP requests processed, partitioned by status code and HTTP method.",
	},
	[]string{"code", "method", "url"},
)

var requestDuration = prometheus.NewHistogramVec(
	prometheus.HistogramOpts{
		Name: "request_duration_seconds",
		Help: "The HTTP request latencies in seconds.",
	},
	[]string{"code", "method", "url"},
)

func metrics() []prometheus.Collector {
	return append([]prometheus.Collector{requestCount, requestDuration}, models.Collectors()...)
}

// registerPrometheusMetrics registers all Prometheus metrics
// with the default registry.
//
// Collectors that are already registered are accepted so that a router
// can be configured multiple times in one process.
func registerPrometheusMetrics() error {
	for _, c := range metrics() {
		err := prometheus.Register(c)

		var already prometheus.AlreadyRegisteredError
		if err != nil && !errors.As(err, &already) {
			return fmt.Errorf("could not register %s with Prometheus: %w", c, err)
		}
	}

	return nil
}

// unregisterPrometheusMetrics unregisters all Prometheus metrics.
//
// This is needed to cleanly exit.
func unregisterPrometheusMetrics() bool {
	ok := true
	for _, c := range metrics() {
		if !prometheus.Unregister(c) {
			ok = false
		}
	}

	return ok
}

// MetricsMiddleware updates Prometheus metrics.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		status := strconv.Itoa(c.Writer.Status())
		elapsed := float64(time.Since(start)) / float64(time.Second)

		// Route templates keep the label cardinality bounded
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		requestDuration.WithLabelValues(status, c.Request.Method, path).Observe(elapsed)
		requestCount.WithLabelValues(status, c.Request.Method, path).Inc()
	}
}
