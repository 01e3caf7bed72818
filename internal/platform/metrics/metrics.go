package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics agrupa las métricas Prometheus del registro.
// Todos los métodos aceptan receptor nil (servicio sin métricas).
type Metrics struct {
	Operations        *prometheus.CounterVec
	OperationDuration *prometheus.HistogramVec
	Inventory         *prometheus.GaugeVec
	PublishFailures   *prometheus.CounterVec
	RateLimited       prometheus.Counter
}

// New registra las métricas en reg. Si reg es nil usa el registry global.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	f := promauto.With(reg)

	return &Metrics{
		Operations: f.NewCounterVec(prometheus.CounterOpts{
			Name: "animal_zoo_operations_total",
			Help: "Registry operations by operation and result (ok, error or rejection code)",
		}, []string{"operation", "result"}),
		OperationDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "animal_zoo_operation_duration_seconds",
			Help:    "Duration of registry write operations",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"operation"}),
		Inventory: f.NewGaugeVec(prometheus.GaugeOpts{
			Name: "animal_zoo_inventory",
			Help: "Last observed available units per category",
		}, []string{"category"}),
		PublishFailures: f.NewCounterVec(prometheus.CounterOpts{
			Name: "animal_zoo_publish_failures_total",
			Help: "Notifications that could not be delivered to a publisher",
		}, []string{"type"}),
		RateLimited: f.NewCounter(prometheus.CounterOpts{
			Name: "animal_zoo_rate_limited_total",
			Help: "Requests rejected by the per-caller rate limiter",
		}),
	}
}

func (m *Metrics) IncOperation(op, result string) {
	if m == nil {
		return
	}
	m.Operations.WithLabelValues(op, result).Inc()
}

// ObserveOperation registra la duración; llamar con time.Now() tomado al inicio.
func (m *Metrics) ObserveOperation(op string, start time.Time) {
	if m == nil {
		return
	}
	m.OperationDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
}

func (m *Metrics) SetInventory(category string, n uint64) {
	if m == nil {
		return
	}
	m.Inventory.WithLabelValues(category).Set(float64(n))
}

func (m *Metrics) IncPublishFailure(notificationType string) {
	if m == nil {
		return
	}
	m.PublishFailures.WithLabelValues(notificationType).Inc()
}

func (m *Metrics) IncRateLimited() {
	if m == nil {
		return
	}
	m.RateLimited.Inc()
}
