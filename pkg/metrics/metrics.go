// Package metrics provides Prometheus instrumentation for Laundro.
//
// It defines the standard HTTP metrics plus the business figures shown on
// the admin dashboard (order counts, revenue, loyalty points).
//
// Wire it up once in the server boot:
//
//	r.Use(metrics.Middleware())
//	r.Get("/metrics", "metrics", metrics.Handler())
//
// Then scrape http://localhost:8080/metrics from Prometheus.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// ─────────────────────────────────────────────
// HTTP metrics
// ─────────────────────────────────────────────

var (
	// RequestDuration tracks how long each HTTP request takes,
	// broken down by method, route path, and status code.
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "laundro",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	// RequestTotal counts all HTTP requests.
	RequestTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "laundro",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests.",
		},
		[]string{"method", "path", "status"},
	)

	// RequestInFlight tracks how many requests are currently being served.
	RequestInFlight = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "laundro",
		Subsystem: "http",
		Name:      "requests_in_flight",
		Help:      "Number of HTTP requests currently being served.",
	})
)

// ─────────────────────────────────────────────
// Business metrics (dashboard cards)
// ─────────────────────────────────────────────

var (
	// OrdersCreated counts placed orders by service level.
	OrdersCreated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "laundro",
			Subsystem: "orders",
			Name:      "created_total",
			Help:      "Total laundry orders placed.",
		},
		[]string{"service"},
	)

	// PointsAwarded counts loyalty points credited to members.
	PointsAwarded = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "laundro",
		Subsystem: "points",
		Name:      "awarded_total",
		Help:      "Total loyalty points credited.",
	})

	// OrdersTotal mirrors the dashboard "Total Orders" card.
	OrdersTotal = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "laundro",
		Subsystem: "orders",
		Name:      "current_total",
		Help:      "Orders currently in storage.",
	})

	// OrdersActive mirrors the "Active Orders" card (Pending/Processing).
	OrdersActive = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "laundro",
		Subsystem: "orders",
		Name:      "active",
		Help:      "Orders still pending or processing.",
	})

	// MembersTotal mirrors the "Total Customers" card.
	MembersTotal = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "laundro",
		Subsystem: "members",
		Name:      "total",
		Help:      "Registered member accounts.",
	})

	// Revenue mirrors the "Revenue" card: the sum of all order totals.
	Revenue = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "laundro",
		Subsystem: "orders",
		Name:      "revenue",
		Help:      "Sum of all order totals in Rupiah.",
	})
)

// ─────────────────────────────────────────────
// Registry
// ─────────────────────────────────────────────

// DefaultRegistry is the Prometheus registry used by Laundro.
var DefaultRegistry = prometheus.NewRegistry()

func init() {
	// Go runtime metrics (GC, goroutines, memory)
	DefaultRegistry.MustRegister(collectors.NewGoCollector())
	// OS process metrics (CPU, open FDs)
	DefaultRegistry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	DefaultRegistry.MustRegister(
		RequestDuration,
		RequestTotal,
		RequestInFlight,
		OrdersCreated,
		PointsAwarded,
		OrdersTotal,
		OrdersActive,
		MembersTotal,
		Revenue,
	)
}

// Register lets you add your own prometheus.Collector to the registry.
func Register(c prometheus.Collector) error {
	return DefaultRegistry.Register(c)
}

// MustRegister panics if registration fails.
func MustRegister(c ...prometheus.Collector) {
	DefaultRegistry.MustRegister(c...)
}

// ─────────────────────────────────────────────
// HTTP middleware
// ─────────────────────────────────────────────

// responseRecorder wraps http.ResponseWriter to capture the status code.
type responseRecorder struct {
	http.ResponseWriter
	status int
}

func (r *responseRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// Middleware records Prometheus metrics for every request: duration
// histogram, total counter, in-flight gauge.
func Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			path := r.URL.Path // raw path; normalize in high-cardinality APIs

			RequestInFlight.Inc()
			defer RequestInFlight.Dec()

			rr := &responseRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rr, r)

			duration := time.Since(start).Seconds()
			status := strconv.Itoa(rr.status)

			RequestDuration.WithLabelValues(r.Method, path, status).Observe(duration)
			RequestTotal.WithLabelValues(r.Method, path, status).Inc()
		})
	}
}

// Handler returns an http.HandlerFunc that exposes the Prometheus metrics
// page. Mount it on GET /metrics in your router.
func Handler() http.HandlerFunc {
	h := promhttp.HandlerFor(DefaultRegistry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
	})
	return h.ServeHTTP
}
