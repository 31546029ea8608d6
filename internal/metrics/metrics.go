// Package metrics exposes board operation statistics as Prometheus collectors.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/thenoetrevino/tasklane/internal/models"
)

const namespace = "tasklane"

// Operation results used as the "result" label
const (
	ResultOK    = "ok"
	ResultError = "error"
)

// Metrics tracks facade statistics. A nil *Metrics is valid and records nothing.
type Metrics struct {
	operations   *prometheus.CounterVec
	tasks        *prometheus.GaugeVec
	labels       prometheus.Gauge
	celebrations prometheus.Counter
}

// New creates the collectors and registers them with reg.
// A nil reg leaves them unregistered, which is useful in tests.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operations_total",
			Help:      "Board operations by name and result.",
		}, []string{"op", "result"}),
		tasks: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "tasks",
			Help:      "Cached tasks per status.",
		}, []string{"status"}),
		labels: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "labels",
			Help:      "Cached labels.",
		}),
		celebrations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "celebrations_total",
			Help:      "Times every task reached done.",
		}),
	}

	if reg != nil {
		reg.MustRegister(m.operations, m.tasks, m.labels, m.celebrations)
	}
	return m
}

// ObserveOperation counts one facade operation
func (m *Metrics) ObserveOperation(op string, err error) {
	if m == nil {
		return
	}
	result := ResultOK
	if err != nil {
		result = ResultError
	}
	m.operations.WithLabelValues(op, result).Inc()
}

// SetBoard records the size of the cached board
func (m *Metrics) SetBoard(tasks []*models.Task, labelCount int) {
	if m == nil {
		return
	}
	counts := make(map[models.Status]int, len(models.Statuses))
	for _, t := range tasks {
		counts[t.Status]++
	}
	for _, s := range models.Statuses {
		m.tasks.WithLabelValues(string(s)).Set(float64(counts[s]))
	}
	m.labels.Set(float64(labelCount))
}

// IncCelebrations counts a raised celebration
func (m *Metrics) IncCelebrations() {
	if m == nil {
		return
	}
	m.celebrations.Inc()
}
