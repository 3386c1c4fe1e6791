package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveIngest(t *testing.T) {
	m, err := New()
	require.NoError(t, err)

	m.ObserveIngest("savant", 2500, 12, 5)
	m.ObserveIngest("savant", 100, 0, 1)

	assert.InDelta(t, 2600, testutil.ToFloat64(m.RowsIngested.WithLabelValues("savant")), 1e-9)
	assert.InDelta(t, 12, testutil.ToFloat64(m.RowsDropped.WithLabelValues("savant")), 1e-9)
	assert.InDelta(t, 6, testutil.ToFloat64(m.Batches.WithLabelValues("savant")), 1e-9)
}

func TestObserveStoreError(t *testing.T) {
	m, err := New()
	require.NoError(t, err)

	m.ObserveStoreError("insert")
	m.ObserveStoreError("insert")
	m.ObserveStoreError("delete")

	assert.InDelta(t, 2, testutil.ToFloat64(m.StoreErrors.WithLabelValues("insert")), 1e-9)
	assert.InDelta(t, 1, testutil.ToFloat64(m.StoreErrors.WithLabelValues("delete")), 1e-9)
}
