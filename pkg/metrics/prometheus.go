package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder implements domain.repository.Metrics using Prometheus.
type Recorder struct {
	signalsRouted  *prometheus.CounterVec
	deliveries     *prometheus.CounterVec
	observerEvents *prometheus.CounterVec
	errorsTotal    *prometheus.CounterVec
	pollCycle      prometheus.Histogram
	accountsLive   prometheus.Gauge
	observers      prometheus.Gauge
}

// New creates a new Prometheus metrics recorder.
func New() *Recorder {
	return &Recorder{
		signalsRouted: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bridge_signals_routed_total",
				Help: "Total trade signals accepted for fan-out",
			},
			[]string{"provider", "symbol"},
		),
		deliveries: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bridge_deliveries_total",
				Help: "Copy deliveries attempted, by transport and result",
			},
			[]string{"transport", "result"},
		),
		observerEvents: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bridge_observer_events_total",
				Help: "Events broadcast to monitor connections",
			},
			[]string{"kind"},
		),
		errorsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bridge_errors_total",
				Help: "Total number of errors encountered",
			},
			[]string{"type"},
		),
		pollCycle: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "bridge_filedrop_poll_seconds",
				Help:    "Duration of one file-drop poll cycle",
				Buckets: prometheus.DefBuckets,
			},
		),
		accountsLive: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "bridge_accounts_connected",
				Help: "Accounts currently marked live",
			},
		),
		observers: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "bridge_observer_connections",
				Help: "Monitor connections currently registered",
			},
		),
	}
}

// RecordSignalRouted records an accepted provider signal.
func (r *Recorder) RecordSignalRouted(providerID, symbol string) {
	r.signalsRouted.WithLabelValues(providerID, symbol).Inc()
}

// RecordDelivery records one delivery attempt.
func (r *Recorder) RecordDelivery(transport, result string) {
	r.deliveries.WithLabelValues(transport, result).Inc()
}

// RecordObserverEvent records one broadcast event.
func (r *Recorder) RecordObserverEvent(kind string) {
	r.observerEvents.WithLabelValues(kind).Inc()
}

// RecordError records an error occurrence.
func (r *Recorder) RecordError(kind string) {
	r.errorsTotal.WithLabelValues(kind).Inc()
}

// RecordPollCycle records the duration of one poll cycle.
func (r *Recorder) RecordPollCycle(seconds float64) {
	r.pollCycle.Observe(seconds)
}

// SetConnectedAccounts updates the live-accounts gauge.
func (r *Recorder) SetConnectedAccounts(n int) {
	r.accountsLive.Set(float64(n))
}

// SetObservers updates the monitor-connections gauge.
func (r *Recorder) SetObservers(n int) {
	r.observers.Set(float64(n))
}
