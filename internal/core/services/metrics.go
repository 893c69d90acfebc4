package services

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/fino-labs/fino-cli/internal/core/ports/driven"
)

// Ensure Metrics can serve as the connectors' drop observer.
var _ driven.DropObserver = (*Metrics)(nil)

// Metrics provides observability for the collection pipeline.
// All methods are nil-safe so callers can run without metrics.
type Metrics struct {
	// Source records dropped during listing, by reason.
	RecordsDropped *prometheus.CounterVec

	// Documents downloaded and saved.
	DocumentsCollected prometheus.Counter

	// Per-document collection failures, by stage.
	CollectFailures *prometheus.CounterVec
}

// NewMetrics creates a Metrics instance with all pipeline metrics registered
// on the default registry.
func NewMetrics() *Metrics {
	return &Metrics{
		RecordsDropped: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "fino_records_dropped_total",
			Help: "Source records excluded during listing by reason",
		}, []string{"reason"}), // reason: "unknown_type", "format_mismatch", "invalid_record"

		DocumentsCollected: promauto.NewCounter(prometheus.CounterOpts{
			Name: "fino_documents_collected_total",
			Help: "Documents downloaded and persisted",
		}),

		CollectFailures: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "fino_collect_failures_total",
			Help: "Per-document collection failures by stage",
		}, []string{"stage"}), // stage: "download", "save"
	}
}

// RecordDropped counts one excluded source record.
func (m *Metrics) RecordDropped(reason string) {
	if m != nil {
		m.RecordsDropped.WithLabelValues(reason).Inc()
	}
}

// IncrementCollected counts one persisted document.
func (m *Metrics) IncrementCollected() {
	if m != nil {
		m.DocumentsCollected.Inc()
	}
}

// IncrementFailure counts one per-document failure at the given stage.
func (m *Metrics) IncrementFailure(stage string) {
	if m != nil {
		m.CollectFailures.WithLabelValues(stage).Inc()
	}
}
