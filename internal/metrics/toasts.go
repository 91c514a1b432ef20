package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"brew_console/internal/model"
	"brew_console/internal/toast"
)

const namespace = "brew_console"

type Toasts struct {
	created *prometheus.CounterVec
	removed *prometheus.CounterVec
	live    prometheus.Gauge
}

// NewToasts registers the toast collectors on reg and keeps them current from
// the manager's transitions.
func NewToasts(reg prometheus.Registerer, manager *toast.Manager) *Toasts {
	factory := promauto.With(reg)
	m := &Toasts{
		created: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "toasts",
			Name:      "created_total",
			Help:      "Toasts created, by style",
		}, []string{"style"}),
		removed: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "toasts",
			Name:      "removed_total",
			Help:      "Toasts removed, by reason",
		}, []string{"reason"}),
		live: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "toasts",
			Name:      "live",
			Help:      "Toasts currently displayed",
		}),
	}
	manager.Subscribe(m.observe)
	return m
}

func (m *Toasts) observe(ev model.ToastEvent) {
	switch ev.Type {
	case model.ToastEventCreated:
		style := ev.Toast.Style
		if style == "" {
			style = "neutral"
		}
		m.created.WithLabelValues(style).Inc()
		m.live.Inc()
	case model.ToastEventRemoved:
		m.removed.WithLabelValues(ev.Reason).Inc()
		m.live.Dec()
	}
}
