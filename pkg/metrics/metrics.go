// Package metrics exposes Prometheus collectors for the posture service.
//
// All methods are safe on a nil *Metrics, so callers can leave metrics
// disabled without nil checks.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "postured"

// Metrics holds the service collectors and the registry they live in.
type Metrics struct {
	Registry *prometheus.Registry

	events        *prometheus.CounterVec
	decodeErrors  prometheus.Counter
	transitions   *prometheus.CounterVec
	applies       *prometheus.CounterVec
	composition   prometheus.Gauge
	launcher      prometheus.Counter
	callErrors    *prometheus.CounterVec
	linkUp        *prometheus.GaugeVec
	reconnects    *prometheus.CounterVec
	eventDuration *prometheus.HistogramVec
}

// New creates the collectors in a fresh registry. When withRuntime is set
// the Go and process collectors are registered too.
func New(withRuntime bool) *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),

		events: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "events",
			Name:      "received_total",
			Help:      "Events processed by the service loop.",
		}, []string{"kind"}),

		decodeErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "posture",
			Name:      "decode_errors_total",
			Help:      "Posture sensor readings dropped because the code was unknown.",
		}),

		transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "posture",
			Name:      "resolutions_total",
			Help:      "Lock policy resolutions by outcome.",
		}, []string{"outcome"}),

		applies: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "composition",
			Name:      "applies_total",
			Help:      "Composition driver applications by posture class and trigger.",
		}, []string{"class", "trigger"}),

		composition: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "composition",
			Name:      "current",
			Help:      "Last recorded panel composition id.",
		}),

		launcher: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "composition",
			Name:      "launcher_restarts_total",
			Help:      "Launcher restarts requested on tablet/single boundary crossings.",
		}),

		callErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "hal",
			Name:      "call_errors_total",
			Help:      "Swallowed hardware and platform call failures.",
		}, []string{"op"}),

		linkUp: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "hal",
			Name:      "link_up",
			Help:      "1 when the hardware link is connected.",
		}, []string{"link"}),

		reconnects: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "hal",
			Name:      "reconnects_total",
			Help:      "Reconnect attempts by cause and result.",
		}, []string{"cause", "result"}),

		eventDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "events",
			Name:      "handle_duration_seconds",
			Help:      "Time spent handling one event in the service loop.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 2, 14), // 100µs to ~1.6s
		}, []string{"kind"}),
	}

	m.Registry.MustRegister(
		m.events,
		m.decodeErrors,
		m.transitions,
		m.applies,
		m.composition,
		m.launcher,
		m.callErrors,
		m.linkUp,
		m.reconnects,
		m.eventDuration,
	)
	if withRuntime {
		m.Registry.MustRegister(
			prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
			prometheus.NewGoCollector(),
		)
	}
	return m
}

// Handler returns an HTTP handler exposing the registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})
}

// ObserveEvent records one handled event.
func (m *Metrics) ObserveEvent(kind string, d time.Duration) {
	if m == nil {
		return
	}
	m.events.WithLabelValues(kind).Inc()
	m.eventDuration.WithLabelValues(kind).Observe(d.Seconds())
}

// DecodeError counts a dropped posture reading.
func (m *Metrics) DecodeError() {
	if m == nil {
		return
	}
	m.decodeErrors.Inc()
}

// Resolution counts a lock policy outcome.
func (m *Metrics) Resolution(outcome string) {
	if m == nil {
		return
	}
	m.transitions.WithLabelValues(outcome).Inc()
}

// Applied records a composition driver application.
func (m *Metrics) Applied(class, trigger string, composition int32, launcherRestarted bool) {
	if m == nil {
		return
	}
	m.applies.WithLabelValues(class, trigger).Inc()
	m.composition.Set(float64(composition))
	if launcherRestarted {
		m.launcher.Inc()
	}
}

// CallError counts a swallowed call failure.
func (m *Metrics) CallError(op string) {
	if m == nil {
		return
	}
	m.callErrors.WithLabelValues(op).Inc()
}

// LinkState records whether a link is up.
func (m *Metrics) LinkState(link string, up bool) {
	if m == nil {
		return
	}
	v := 0.0
	if up {
		v = 1
	}
	m.linkUp.WithLabelValues(link).Set(v)
}

// Reconnect counts a reconnect attempt.
func (m *Metrics) Reconnect(cause string, ok bool) {
	if m == nil {
		return
	}
	result := "failed"
	if ok {
		result = "ok"
	}
	m.reconnects.WithLabelValues(cause, result).Inc()
}
