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
	// HTTP metrics
	HttpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "registry",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	HttpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "registry",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	// Registration lifecycle metrics
	RegistrationsSubmittedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "registry",
			Subsystem: "registrations",
			Name:      "submitted_total",
			Help:      "Total number of accepted registration submissions",
		},
	)

	RegistrationsRejectedInputTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "registry",
			Subsystem: "registrations",
			Name:      "rejected_input_total",
			Help:      "Total number of submissions rejected before a store write",
		},
		[]string{"reason"},
	)

	StatusTransitionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "registry",
			Subsystem: "registrations",
			Name:      "status_transitions_total",
			Help:      "Total number of moderation status transitions",
		},
		[]string{"status"},
	)

	RegistrationsByStatus = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "registry",
			Subsystem: "registrations",
			Name:      "by_status",
			Help:      "Current number of registrations per status",
		},
		[]string{"status"},
	)

	// Database metrics
	DatabaseQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "registry",
			Subsystem: "database",
			Name:      "query_duration_seconds",
			Help:      "Database query duration in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"query_type"},
	)

	DatabaseErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "registry",
			Subsystem: "database",
			Name:      "errors_total",
			Help:      "Total number of database errors",
		},
		[]string{"error_type"},
	)

	AuditLogFailuresTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "registry",
			Subsystem: "database",
			Name:      "audit_log_failures_total",
			Help:      "Total number of swallowed audit log write failures",
		},
	)

	// Scheduler metrics
	SchedulerJobsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "registry",
			Subsystem: "scheduler",
			Name:      "jobs_total",
			Help:      "Total number of scheduled jobs executed",
		},
		[]string{"job_name", "status"},
	)

	SchedulerJobDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "registry",
			Subsystem: "scheduler",
			Name:      "job_duration_seconds",
			Help:      "Scheduled job execution duration in seconds",
			Buckets:   []float64{.1, .5, 1, 5, 10, 30, 60},
		},
		[]string{"job_name"},
	)

	LastSchedulerJobTime = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "registry",
			Subsystem: "scheduler",
			Name:      "last_job_timestamp",
			Help:      "Unix timestamp of last job execution",
		},
		[]string{"job_name"},
	)

	// Rate limiter metrics
	RateLimitedRequestsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "registry",
			Subsystem: "rate_limiter",
			Name:      "rejected_total",
			Help:      "Total number of requests rejected by the rate limiter",
		},
	)
)

// RecordHTTPRequest records an HTTP request metric
func RecordHTTPRequest(method, endpoint string, statusCode int, duration time.Duration) {
	HttpRequestsTotal.WithLabelValues(method, endpoint, strconv.Itoa(statusCode)).Inc()
	HttpRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// RecordStatusTransition records an approve/reject moderation action
func RecordStatusTransition(status string) {
	StatusTransitionsTotal.WithLabelValues(status).Inc()
}

// UpdateStatusCounts refreshes the per-status registration gauges
func UpdateStatusCounts(pending, approved, rejected int) {
	RegistrationsByStatus.WithLabelValues("pending").Set(float64(pending))
	RegistrationsByStatus.WithLabelValues("approved").Set(float64(approved))
	RegistrationsByStatus.WithLabelValues("rejected").Set(float64(rejected))
}

// RecordSchedulerJob records a scheduler job execution
func RecordSchedulerJob(jobName string, success bool, duration time.Duration) {
	status := "success"
	if !success {
		status = "failure"
	}
	SchedulerJobsTotal.WithLabelValues(jobName, status).Inc()
	SchedulerJobDuration.WithLabelValues(jobName).Observe(duration.Seconds())
	LastSchedulerJobTime.WithLabelValues(jobName).SetToCurrentTime()
}

// Handler returns the Prometheus HTTP handler
func Handler() http.Handler {
	return promhttp.Handler()
}
