// Package metrics exposes Prometheus counters for the ingest pipeline and
// the remote store.
package metrics

import (
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics bundles every counter the server records, backed by its own
// registry so tests can build isolated instances.
type Metrics struct {
	RowsIngested *prometheus.CounterVec
	RowsDropped  *prometheus.CounterVec
	Batches      *prometheus.CounterVec
	StoreErrors  *prometheus.CounterVec
	registry     *prometheus.Registry
}

// New creates and registers all counters on a fresh registry.
func New() (*Metrics, error) {
	m := &Metrics{registry: prometheus.NewRegistry()}

	m.RowsIngested = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "ingest_rows_total",
		Help: "Total canonical rows produced by CSV ingestion, per dataset",
	}, []string{"dataset"})

	m.RowsDropped = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "ingest_rows_dropped_total",
		Help: "Total CSV rows dropped for missing required fields, per dataset",
	}, []string{"dataset"})

	m.Batches = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "ingest_batches_total",
		Help: "Total insert batches submitted to the store, per dataset",
	}, []string{"dataset"})

	m.StoreErrors = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "store_errors_total",
		Help: "Total failed store operations, per operation",
	}, []string{"op"})

	for _, c := range []prometheus.Collector{
		m.RowsIngested, m.RowsDropped, m.Batches, m.StoreErrors,
		collectors.NewGoCollector(),
	} {
		if err := m.registry.Register(c); err != nil {
			return nil, fmt.Errorf("registering collector: %w", err)
		}
	}
	return m, nil
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveIngest records one ingestion outcome for a dataset.
func (m *Metrics) ObserveIngest(dataset string, kept, dropped, batches int) {
	m.RowsIngested.WithLabelValues(dataset).Add(float64(kept))
	m.RowsDropped.WithLabelValues(dataset).Add(float64(dropped))
	m.Batches.WithLabelValues(dataset).Add(float64(batches))
}

// ObserveStoreError records one failed store operation.
func (m *Metrics) ObserveStoreError(op string) {
	m.StoreErrors.WithLabelValues(op).Inc()
}
