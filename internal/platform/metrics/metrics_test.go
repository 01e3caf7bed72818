package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestNilMetricsAreNoops(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.IncOperation("add", "ok")
		m.ObserveOperation("add", time.Now())
		m.SetInventory("fish", 1)
		m.IncPublishFailure("ADDED")
		m.IncRateLimited()
	})
}

func TestRecordsValues(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.IncOperation("borrow", "unavailable")
	m.IncOperation("borrow", "unavailable")
	m.SetInventory("cat", 7)
	m.IncPublishFailure("RETURNED")
	m.ObserveOperation("borrow", time.Now())

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Operations.WithLabelValues("borrow", "unavailable")))
	assert.Equal(t, 7.0, testutil.ToFloat64(m.Inventory.WithLabelValues("cat")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.PublishFailures.WithLabelValues("RETURNED")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.OperationDuration))
}
