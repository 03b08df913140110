package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/umalmyha/crm/internal/model"
)

var (
	httpInFlight = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "crm",
		Name:      "http_in_flight_requests",
		Help:      "In-flight HTTP requests.",
	})

	httpRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "crm",
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests.",
	}, []string{"method", "path", "status"})

	httpRequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "crm",
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latencies in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	complaintsSubmitted = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "crm",
		Name:      "complaints_submitted_total",
		Help:      "Submitted complaints by category.",
	}, []string{"category"})

	complaintTransitions = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "crm",
		Name:      "complaint_status_transitions_total",
		Help:      "Complaint status transitions.",
	}, []string{"from", "to"})

	referenceCollisions = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "crm",
		Name:      "complaint_reference_collisions_total",
		Help:      "Generated complaint references which were already taken.",
	})

	emailsSent = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "crm",
		Name:      "emails_total",
		Help:      "Email send attempts by type and outcome.",
	}, []string{"type", "status"})
)

// Register registers all collectors in provided registerer
func Register(reg prometheus.Registerer) error {
	collectors := []prometheus.Collector{
		httpInFlight,
		httpRequestsTotal,
		httpRequestDuration,
		complaintsSubmitted,
		complaintTransitions,
		referenceCollisions,
		emailsSent,
	}

	for _, c := range collectors {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}

// Handler exposes metrics of default gatherer
func Handler() echo.HandlerFunc {
	return echo.WrapHandler(promhttp.Handler())
}

// Middleware measures requests count, latency and in-flight requests, path label is route template
func Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			httpInFlight.Inc()
			defer httpInFlight.Dec()

			start := time.Now()
			err := next(c)

			status := c.Response().Status
			if err != nil {
				var httpErr *echo.HTTPError
				if e, ok := err.(*echo.HTTPError); ok {
					httpErr = e
				}

				if httpErr != nil {
					status = httpErr.Code
				} else if status == 0 || status == http.StatusOK {
					status = http.StatusInternalServerError
				}
			}

			path := c.Path()
			if path == "" {
				path = "unmatched"
			}

			code := strconv.Itoa(status)
			httpRequestDuration.WithLabelValues(c.Request().Method, path, code).Observe(time.Since(start).Seconds())
			httpRequestsTotal.WithLabelValues(c.Request().Method, path, code).Inc()
			return err
		}
	}
}

// ComplaintSubmitted counts submitted complaint
func ComplaintSubmitted(category model.Category) {
	complaintsSubmitted.WithLabelValues(string(category)).Inc()
}

// StatusChanged counts complaint status transition
func StatusChanged(from, to model.Status) {
	complaintTransitions.WithLabelValues(string(from), string(to)).Inc()
}

// ReferenceCollision counts generated reference which was already taken
func ReferenceCollision() {
	referenceCollisions.Inc()
}

// EmailAttempted counts email attempt outcome
func EmailAttempted(tp model.EmailType, status model.EmailStatus) {
	emailsSent.WithLabelValues(string(tp), string(status)).Inc()
}
