// Package metrics provides Prometheus metrics for the LLM battle service.
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

// Manager manages all Prometheus metrics for the battle service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	enabled          bool
	refreshInterval  time.Duration
	registry         prometheus.Registerer

	// Core Business Metrics - votes and battles drive everything else
	votesRecorded prometheus.Counter
	invalidVotes  prometheus.Counter
	battlesServed prometheus.Counter
	modelsSeeded  prometheus.Counter

	// Catalog scale gauges
	totalModels prometheus.Gauge
	totalVotes  prometheus.Gauge

	// HTTP Performance Metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// Storage Metrics
	storageErrors  *prometheus.CounterVec
	storageLatency *prometheus.HistogramVec

	// Agent Metrics
	agentRequests *prometheus.CounterVec
	agentLatency  *prometheus.HistogramVec

	// System Performance Metrics
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
		namespace:        "aivibe",
		subsystem:        "battle",
		histogramBuckets: prometheus.DefBuckets,
		enabled:          true,
		refreshInterval:  defaultRefreshInterval,
		registry:         prometheus.DefaultRegisterer,
	}

	// Apply all options
	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()
	return m
}

// initializeMetrics creates all the Prometheus metrics.
func (m *Manager) initializeMetrics() {
	// Ensure metrics are registered on the configured registry (custom by default)
	auto := promauto.With(m.registry)

	m.votesRecorded = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "votes_recorded_total",
		Help:      "Total number of votes appended to the ledger",
	})

	m.invalidVotes = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "votes_invalid_total",
		Help:      "Total number of rejected votes (winner equals loser)",
	})

	m.battlesServed = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "battles_served_total",
		Help:      "Total number of random battles served",
	})

	m.modelsSeeded = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "models_seeded_total",
		Help:      "Total number of models written by seed operations",
	})

	m.totalModels = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "total_models",
		Help:      "Current number of models in the catalog",
	})

	m.totalVotes = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "total_votes",
		Help:      "Current number of records in the vote ledger",
	})

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

	m.storageErrors = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "storage_errors_total",
			Help:      "Total number of storage errors by operation",
		},
		[]string{"operation"},
	)

	m.storageLatency = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "storage_latency_milliseconds",
			Help:      "Storage operation latency in milliseconds",
			Buckets:   m.histogramBuckets,
		},
		[]string{"operation"},
	)

	m.agentRequests = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "agent_requests_total",
			Help:      "Total number of agent executions by agent type and outcome",
		},
		[]string{"agent", "outcome"},
	)

	m.agentLatency = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "agent_latency_milliseconds",
			Help:      "Agent execution latency in milliseconds",
			Buckets:   m.histogramBuckets,
		},
		[]string{"agent"},
	)

	m.systemMemoryUsage = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "system_memory_bytes",
		Help:      "Current allocated heap memory in bytes",
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
		Help:      "Average GC pause time in milliseconds",
		Buckets:   m.histogramBuckets,
	})
}

// GetRegistry returns the custom Prometheus registry used by the service.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}

// Package-level helpers delegating to the global manager.

// RecordVote increments the recorded-votes counter.
func RecordVote() {
	if globalManager.enabled {
		globalManager.votesRecorded.Inc()
	}
}

// RecordInvalidVote increments the rejected-votes counter.
func RecordInvalidVote() {
	if globalManager.enabled {
		globalManager.invalidVotes.Inc()
	}
}

// RecordBattleServed increments the battles-served counter.
func RecordBattleServed() {
	if globalManager.enabled {
		globalManager.battlesServed.Inc()
	}
}

// RecordModelsSeeded adds the seeded model count.
func RecordModelsSeeded(n int) {
	if globalManager.enabled {
		globalManager.modelsSeeded.Add(float64(n))
	}
}

// UpdateTotalModels sets the catalog size gauge.
func UpdateTotalModels(n int) {
	if globalManager.enabled {
		globalManager.totalModels.Set(float64(n))
	}
}

// UpdateTotalVotes sets the ledger size gauge.
func UpdateTotalVotes(n int) {
	if globalManager.enabled {
		globalManager.totalVotes.Set(float64(n))
	}
}

// RecordHTTPRequest counts one HTTP request.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	if globalManager.enabled {
		globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
	}
}

// RecordHTTPRequestDuration observes one HTTP request duration.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, ms float64) {
	if globalManager.enabled {
		globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(ms)
	}
}

// RecordStorageError counts a storage failure for the given operation.
func RecordStorageError(operation string) {
	if globalManager.enabled {
		globalManager.storageErrors.WithLabelValues(operation).Inc()
	}
}

// RecordStorageLatency observes a storage operation duration.
func RecordStorageLatency(operation string, ms float64) {
	if globalManager.enabled {
		globalManager.storageLatency.WithLabelValues(operation).Observe(ms)
	}
}

// RecordAgentRequest counts an agent execution.
func RecordAgentRequest(agent, outcome string) {
	if globalManager.enabled {
		globalManager.agentRequests.WithLabelValues(agent, outcome).Inc()
	}
}

// RecordAgentLatency observes an agent execution duration.
func RecordAgentLatency(agent string, ms float64) {
	if globalManager.enabled {
		globalManager.agentLatency.WithLabelValues(agent).Observe(ms)
	}
}

// UpdateSystemMemoryUsage sets the heap memory gauge.
func UpdateSystemMemoryUsage(bytes uint64) {
	if globalManager.enabled {
		globalManager.systemMemoryUsage.Set(float64(bytes))
	}
}

// UpdateSystemGoroutineCount sets the goroutine gauge.
func UpdateSystemGoroutineCount(n int) {
	if globalManager.enabled {
		globalManager.systemGoroutineCount.Set(float64(n))
	}
}

// RecordSystemGCPauseTime observes a GC pause time.
func RecordSystemGCPauseTime(ms float64) {
	if globalManager.enabled {
		globalManager.systemGCPauseTime.Observe(ms)
	}
}
