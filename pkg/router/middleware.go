package router

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/weekbudget/backend/internal/httputil"
)

// URLMiddleware stores the base URL of the API in the context.
func URLMiddleware(url *url.URL) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(httputil.ContextURL, strings.TrimSuffix(url.String(), "/"))
		c.Next()
	}
}

const metricsNamespace = "weekbudget"

// Labels for the request metrics. The route is the registered path
// pattern, e.g. /v1/expenses/:id, which keeps the cardinality bounded.
var requestLabels = []string{"code", "method", "route"}

var (
	requestCount = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Number of handled HTTP requests by status code, method and route.",
	}, requestLabels)

	requestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: metricsNamespace,
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "Latency of HTTP requests in seconds.",
		Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
	}, requestLabels)

	requestsInFlight = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: metricsNamespace,
		Subsystem: "http",
		Name:      "requests_in_flight",
		Help:      "Number of HTTP requests currently being handled.",
	})
)

var collectors = []prometheus.Collector{requestCount, requestDuration, requestsInFlight}

// registerMetrics registers the collectors with the default registry.
// Already registered collectors are unregistered again on error.
func registerMetrics() error {
	for i, c := range collectors {
		if err := prometheus.Register(c); err != nil {
			for _, registered := range collectors[:i] {
				prometheus.Unregister(registered)
			}

			var already prometheus.AlreadyRegisteredError
			if errors.As(err, &already) {
				return fmt.Errorf("metrics are already registered, is another router running? %w", err)
			}
			return fmt.Errorf("could not register metrics: %w", err)
		}
	}

	return nil
}

// unregisterMetrics removes the collectors from the default registry.
func unregisterMetrics() bool {
	ok := true
	for _, c := range collectors {
		ok = prometheus.Unregister(c) && ok
	}

	return ok
}

// MetricsMiddleware records count and latency of every request.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestsInFlight.Inc()
		defer requestsInFlight.Dec()

		timer := prometheus.NewTimer(prometheus.ObserverFunc(func(seconds float64) {
			route := c.FullPath()
			if route == "" {
				route = "unmatched"
			}

			labels := prometheus.Labels{
				"code":   strconv.Itoa(c.Writer.Status()),
				"method": c.Request.Method,
				"route":  route,
			}

			requestDuration.With(labels).Observe(seconds)
			requestCount.With(labels).Inc()
		}))

		c.Next()
		timer.ObserveDuration()
	}
}
