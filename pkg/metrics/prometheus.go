// Package metrics provides Prometheus metrics for the teamforge service.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Default metrics configuration constants.
const (
	defaultRefreshInterval = 10 * time.Second
)

// Manager manages all Prometheus metrics for the teamforge service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	enabled          bool
	refreshInterval  time.Duration
	customLabels     map[string]string
	metricPrefix     string
	registry         prometheus.Registerer

	// Matching Metrics - What the service exists for
	matchComputations   prometheus.Counter
	matrixBuildDuration prometheus.Histogram
	teamsFormed         prometheus.Counter
	teammateQueries     prometheus.Counter

	// Roster Metrics
	rosterSize       prometheus.Gauge
	rosterShardCount prometheus.Gauge

	// Wizard Metrics - Team-creation funnel health
	wizardSessionsStarted   prometheus.Counter
	wizardSessionsSubmitted prometheus.Counter
	wizardSessionsAbandoned prometheus.Counter
	activeWizardSessions    prometheus.Gauge

	// Remote Check Metrics - External dependency health
	remoteChecks        *prometheus.CounterVec
	remoteCheckFailures *prometheus.CounterVec
	remoteCheckLatency  *prometheus.HistogramVec

	// Debounce Metrics - Validation scheduling behavior
	debounceScheduled  *prometheus.CounterVec
	debounceSuperseded *prometheus.CounterVec
	debounceFired      *prometheus.CounterVec

	// HTTP Performance Metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// Error Metrics
	errorRateByType     *prometheus.CounterVec
	errorRateByEndpoint *prometheus.CounterVec
	errorLatency        *prometheus.HistogramVec

	// System Metrics
	systemMemoryUsage    prometheus.Gauge
	systemGoroutineCount prometheus.Gauge
	systemGCPauseTime    prometheus.Histogram
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

// Initialize global metrics.
func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "teamforge",
		subsystem:        "teams",
		histogramBuckets: prometheus.DefBuckets,
		enabled:          true,
		refreshInterval:  defaultRefreshInterval,
		customLabels:     make(map[string]string),
		metricPrefix:     "",
		registry:         prometheus.DefaultRegisterer,
	}

	// Apply all options
	for _, opt := range opts {
		opt(m)
	}

	// Initialize metrics
	m.initializeMetrics()

	return m
}

// GetRegistry returns the custom Prometheus registry used by the global
// manager, for serving /healthz.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}

// initializeMetrics creates all the Prometheus metrics.
func (m *Manager) initializeMetrics() { //nolint:funlen // metric registration is inherently long
	auto := promauto.With(m.registry)

	m.matchComputations = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "match_computations_total",
		Help:      "Total number of pairwise compatibility scores computed",
	})

	m.matrixBuildDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "matrix_build_duration_milliseconds",
		Help:      "Histogram of pairwise matrix construction time in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	m.teamsFormed = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "teams_formed_total",
		Help:      "Total number of teams produced by formation runs",
	})

	m.teammateQueries = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "teammate_queries_total",
		Help:      "Total number of teammate filter queries served",
	})

	m.rosterSize = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "roster_size",
		Help:      "Current number of profiles on the roster",
	})

	m.rosterShardCount = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "roster_shard_count",
		Help:      "Number of lock shards in the roster store",
	})

	m.wizardSessionsStarted = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "wizard_sessions_started_total",
		Help:      "Total number of team-creation wizard sessions opened",
	})

	m.wizardSessionsSubmitted = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "wizard_sessions_submitted_total",
		Help:      "Total number of wizard sessions submitted successfully",
	})

	m.wizardSessionsAbandoned = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "wizard_sessions_abandoned_total",
		Help:      "Total number of wizard sessions abandoned or reaped",
	})

	m.activeWizardSessions = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "wizard_sessions_active",
		Help:      "Current number of live wizard sessions",
	})

	m.remoteChecks = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "remote_checks_total",
			Help:      "Total number of completed remote existence checks by service and outcome",
		},
		[]string{"service", "outcome"},
	)

	m.remoteCheckFailures = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "remote_check_failures_total",
			Help:      "Total number of remote checks that failed closed (transport/status/decode)",
		},
		[]string{"service"},
	)

	m.remoteCheckLatency = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "remote_check_latency_milliseconds",
			Help:      "Remote check round-trip latency in milliseconds",
			Buckets:   m.histogramBuckets,
		},
		[]string{"service"},
	)

	m.debounceScheduled = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "debounce_scheduled_total",
			Help:      "Total number of debounced invocations scheduled by key",
		},
		[]string{"key"},
	)

	m.debounceSuperseded = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "debounce_superseded_total",
			Help:      "Total number of pending invocations replaced before firing",
		},
		[]string{"key"},
	)

	m.debounceFired = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "debounce_fired_total",
			Help:      "Total number of debounced invocations that ran",
		},
		[]string{"key"},
	)

	m.httpRequests = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests by endpoint and method",
		},
		[]string{"endpoint", "method", "status_code"},
	)

	m.httpRequestDuration = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_request_duration_milliseconds",
			Help:      "HTTP request duration in milliseconds",
			Buckets:   m.histogramBuckets,
		},
		[]string{"endpoint", "method", "status_code"},
	)

	m.errorRateByType = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "errors_by_type_total",
			Help:      "Total errors by type and severity",
		},
		[]string{"error_type", "severity"},
	)

	m.errorRateByEndpoint = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "errors_by_endpoint_total",
			Help:      "Total errors by endpoint, method, and type",
		},
		[]string{"endpoint", "method", "error_type"},
	)

	m.errorLatency = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "error_latency_milliseconds",
			Help:      "Latency of requests that ended in an error",
			Buckets:   m.histogramBuckets,
		},
		[]string{"component", "error_type"},
	)

	m.systemMemoryUsage = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "system_memory_bytes",
		Help:      "Current heap allocation in bytes",
	})

	m.systemGoroutineCount = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "system_goroutines",
		Help:      "Current number of goroutines",
	})

	m.systemGCPauseTime = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "system_gc_pause_milliseconds",
		Help:      "Garbage collector pause time in milliseconds",
		Buckets:   m.histogramBuckets,
	})
}

// UpdateSystemMemoryUsage sets the current heap allocation.
func UpdateSystemMemoryUsage(bytes uint64) {
	if globalManager != nil && globalManager.enabled {
		globalManager.systemMemoryUsage.Set(float64(bytes))
	}
}

// UpdateSystemGoroutineCount sets the current goroutine count.
func UpdateSystemGoroutineCount(count int) {
	if globalManager != nil && globalManager.enabled {
		globalManager.systemGoroutineCount.Set(float64(count))
	}
}

// RecordSystemGCPauseTime observes the average GC pause in milliseconds.
func RecordSystemGCPauseTime(ms float64) {
	if globalManager != nil && globalManager.enabled {
		globalManager.systemGCPauseTime.Observe(ms)
	}
}

// RecordMatchComputation counts one pairwise score computation.
func RecordMatchComputation() {
	if globalManager != nil && globalManager.enabled {
		globalManager.matchComputations.Inc()
	}
}

// RecordMatrixBuildDuration observes pairwise matrix construction time.
func RecordMatrixBuildDuration(ms float64) {
	if globalManager != nil && globalManager.enabled {
		globalManager.matrixBuildDuration.Observe(ms)
	}
}

// RecordTeamsFormed counts teams produced by a formation run.
func RecordTeamsFormed(teams int) {
	if globalManager != nil && globalManager.enabled {
		globalManager.teamsFormed.Add(float64(teams))
	}
}

// RecordTeammateQuery counts one teammate filter query.
func RecordTeammateQuery() {
	if globalManager != nil && globalManager.enabled {
		globalManager.teammateQueries.Inc()
	}
}

// UpdateRosterSize sets the current roster size gauge.
func UpdateRosterSize(size int) {
	if globalManager != nil && globalManager.enabled {
		globalManager.rosterSize.Set(float64(size))
	}
}

// UpdateRosterShardCount sets the roster shard count gauge.
func UpdateRosterShardCount(count int) {
	if globalManager != nil && globalManager.enabled {
		globalManager.rosterShardCount.Set(float64(count))
	}
}

// RecordWizardSessionStarted counts a newly opened wizard session.
func RecordWizardSessionStarted() {
	if globalManager != nil && globalManager.enabled {
		globalManager.wizardSessionsStarted.Inc()
	}
}

// RecordWizardSessionSubmitted counts a successful submission.
func RecordWizardSessionSubmitted() {
	if globalManager != nil && globalManager.enabled {
		globalManager.wizardSessionsSubmitted.Inc()
	}
}

// RecordWizardSessionAbandoned counts an abandoned or reaped session.
func RecordWizardSessionAbandoned() {
	if globalManager != nil && globalManager.enabled {
		globalManager.wizardSessionsAbandoned.Inc()
	}
}

// UpdateActiveWizardSessions sets the live session gauge.
func UpdateActiveWizardSessions(count int) {
	if globalManager != nil && globalManager.enabled {
		globalManager.activeWizardSessions.Set(float64(count))
	}
}

// RecordRemoteCheck counts a completed remote check by outcome.
func RecordRemoteCheck(service string, valid bool) {
	if globalManager != nil && globalManager.enabled {
		outcome := "invalid"
		if valid {
			outcome = "valid"
		}
		globalManager.remoteChecks.WithLabelValues(service, outcome).Inc()
	}
}

// RecordRemoteCheckFailure counts a remote check that failed closed.
func RecordRemoteCheckFailure(service string) {
	if globalManager != nil && globalManager.enabled {
		globalManager.remoteCheckFailures.WithLabelValues(service).Inc()
	}
}

// RecordRemoteCheckLatency observes remote check round-trip time.
func RecordRemoteCheckLatency(service string, ms float64) {
	if globalManager != nil && globalManager.enabled {
		globalManager.remoteCheckLatency.WithLabelValues(service).Observe(ms)
	}
}

// RecordDebounceScheduled counts a scheduled debounced invocation.
func RecordDebounceScheduled(key string) {
	if globalManager != nil && globalManager.enabled {
		globalManager.debounceScheduled.WithLabelValues(key).Inc()
	}
}

// RecordDebounceSuperseded counts a pending invocation replaced before firing.
func RecordDebounceSuperseded(key string) {
	if globalManager != nil && globalManager.enabled {
		globalManager.debounceSuperseded.WithLabelValues(key).Inc()
	}
}

// RecordDebounceFired counts a debounced invocation that ran.
func RecordDebounceFired(key string) {
	if globalManager != nil && globalManager.enabled {
		globalManager.debounceFired.WithLabelValues(key).Inc()
	}
}

// RecordHTTPRequest counts an HTTP request.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	if globalManager != nil && globalManager.enabled {
		globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
	}
}

// RecordHTTPRequestDuration observes an HTTP request duration.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, ms float64) {
	if globalManager != nil && globalManager.enabled {
		globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(ms)
	}
}

// RecordErrorByType counts an error by type and severity.
func RecordErrorByType(errorType, severity string) {
	if globalManager != nil && globalManager.enabled {
		globalManager.errorRateByType.WithLabelValues(errorType, severity).Inc()
	}
}

// RecordErrorByEndpoint counts an error at an endpoint.
func RecordErrorByEndpoint(endpoint, method, errorType string) {
	if globalManager != nil && globalManager.enabled {
		globalManager.errorRateByEndpoint.WithLabelValues(endpoint, method, errorType).Inc()
	}
}

// RecordErrorLatency observes the latency of a failed operation.
func RecordErrorLatency(component, errorType string, ms float64) {
	if globalManager != nil && globalManager.enabled {
		globalManager.errorLatency.WithLabelValues(component, errorType).Observe(ms)
	}
}
