package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// DatabaseQueryLatency records database query latency by operation and table.
	DatabaseQueryLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "aaquestions_database_query_latency_seconds",
		Help:    "Database query latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation", "table"})

	// DatabaseQueryErrors counts failed queries by operation and table.
	DatabaseQueryErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "aaquestions_database_query_errors_total",
		Help: "Total number of failed database queries",
	}, []string{"operation", "table"})

	// RowsDecoded counts rows hydrated into entities by table.
	RowsDecoded = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "aaquestions_rows_decoded_total",
		Help: "Total number of result rows decoded into entities",
	}, []string{"table"})
)

// DatabaseMetrics records query metrics for one table.
type DatabaseMetrics struct {
	table string
}

// NewDatabaseMetrics returns a new DatabaseMetrics instance.
func NewDatabaseMetrics(table string) *DatabaseMetrics {
	return &DatabaseMetrics{table: table}
}

// ObserveQuery records the latency of a database query.
func (m *DatabaseMetrics) ObserveQuery(operation string, start time.Time) {
	DatabaseQueryLatency.WithLabelValues(operation, m.table).Observe(time.Since(start).Seconds())
}

// TrackQuery returns a function that records query latency when called (e.g. defer).
func (m *DatabaseMetrics) TrackQuery(operation string) func() {
	start := time.Now()
	return func() {
		m.ObserveQuery(operation, start)
	}
}

// RecordError increments the error counter for the operation.
func (m *DatabaseMetrics) RecordError(operation string) {
	DatabaseQueryErrors.WithLabelValues(operation, m.table).Inc()
}

// RecordRows adds n decoded rows for the table.
func (m *DatabaseMetrics) RecordRows(n int) {
	if n > 0 {
		RowsDecoded.WithLabelValues(m.table).Add(float64(n))
	}
}
