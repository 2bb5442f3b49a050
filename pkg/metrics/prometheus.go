// Package metrics provides Prometheus metrics for the play-by-play scraper.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager manages all Prometheus metrics for the scraper.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	registry         prometheus.Registerer

	// Scrape metrics
	gamesScraped      prometheus.Counter
	fetchDuration     *prometheus.HistogramVec
	rowsEmitted       prometheus.Counter
	duplicateShots    prometheus.Counter
	gamesNotFound     prometheus.Counter
	decodeErrors      prometheus.Counter
	metadataErrors    prometheus.Counter
	exportedTables    prometheus.Counter

	// HTTP metrics (serve mode)
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
}

var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "pbp",
		subsystem:        "scraper",
		histogramBuckets: prometheus.DefBuckets,
		registry:         prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.initializeMetrics()
	return m
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.gamesScraped = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "games_scraped_total",
		Help:      "Total number of games successfully normalized",
	})
	m.fetchDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "fetch_duration_ms",
		Help:      "Feed fetch duration in milliseconds",
		Buckets:   m.histogramBuckets,
	}, []string{"feed"})
	m.rowsEmitted = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "rows_emitted_total",
		Help:      "Total number of normalized event rows emitted",
	})
	m.duplicateShots = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "duplicate_shot_rows_dropped_total",
		Help:      "Shot rows dropped as duplicates of goal rows",
	})
	m.gamesNotFound = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "games_not_found_total",
		Help:      "Scrape requests for game ids the vendor does not know",
	})
	m.decodeErrors = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "feed_decode_errors_total",
		Help:      "Play-by-play feed envelope/JSON decode failures",
	})
	m.metadataErrors = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "metadata_fetch_errors_total",
		Help:      "Summary feed fetch/parse failures",
	})
	m.exportedTables = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "tables_exported_total",
		Help:      "Total number of tables written out as CSV",
	})

	m.httpRequests = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "http_requests_total",
		Help:      "HTTP requests by endpoint, method, and status code",
	}, []string{"endpoint", "method", "status_code"})
	m.httpRequestDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "http_request_duration_ms",
		Help:      "HTTP request duration in milliseconds",
		Buckets:   m.histogramBuckets,
	}, []string{"endpoint", "method", "status_code"})
}

// RecordGameScraped increments the scraped games counter.
func RecordGameScraped() {
	globalManager.gamesScraped.Inc()
}

// RecordFetchDuration records a feed fetch duration in milliseconds.
func RecordFetchDuration(feed string, ms float64) {
	globalManager.fetchDuration.WithLabelValues(feed).Observe(ms)
}

// RecordRowsEmitted adds to the emitted rows counter.
func RecordRowsEmitted(n int) {
	globalManager.rowsEmitted.Add(float64(n))
}

// RecordDuplicateShotsDropped adds to the dropped duplicate shots counter.
func RecordDuplicateShotsDropped(n int) {
	globalManager.duplicateShots.Add(float64(n))
}

// RecordGameNotFound increments the unknown game id counter.
func RecordGameNotFound() {
	globalManager.gamesNotFound.Inc()
}

// RecordDecodeError increments the feed decode error counter.
func RecordDecodeError() {
	globalManager.decodeErrors.Inc()
}

// RecordMetadataError increments the summary feed error counter.
func RecordMetadataError() {
	globalManager.metadataErrors.Inc()
}

// RecordTableExported increments the exported tables counter.
func RecordTableExported() {
	globalManager.exportedTables.Inc()
}

// RecordHTTPRequest records an HTTP request.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// RecordHTTPRequestDuration records HTTP request duration in milliseconds.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, ms float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(ms)
}

// GetRegistry returns the custom Prometheus registry used by our metrics.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
