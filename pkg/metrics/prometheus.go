package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder implements the domain Metrics interface using Prometheus.
type Recorder struct {
	simulations *prometheus.CounterVec
	purchases   prometheus.Counter
	errorsTotal *prometheus.CounterVec
	seriesDays  *prometheus.GaugeVec
	latency     *prometheus.HistogramVec
}

// New creates a new Prometheus metrics recorder.
func New() *Recorder {
	return &Recorder{
		simulations: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "stacksim_simulations_total",
				Help: "Total number of simulation runs by cadence",
			},
			[]string{"frequency"},
		),
		purchases: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "stacksim_purchases_total",
				Help: "Total number of realized purchases across all runs",
			},
		),
		errorsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "stacksim_errors_total",
				Help: "Total number of errors encountered",
			},
			[]string{"type"},
		),
		seriesDays: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "stacksim_price_series_days",
				Help: "Days of price history served to the last run",
			},
			[]string{"symbol"},
		),
		latency: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "stacksim_operation_duration_seconds",
				Help:    "Duration of operations in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
	}
}

// RecordSimulation records a completed run and its realized purchase count.
func (r *Recorder) RecordSimulation(frequency string, purchases int) {
	r.simulations.WithLabelValues(frequency).Inc()
	r.purchases.Add(float64(purchases))
}

// RecordError records an error occurrence.
func (r *Recorder) RecordError(kind string) {
	r.errorsTotal.WithLabelValues(kind).Inc()
}

// RecordSeriesDays records the size of the price series served to a run.
func (r *Recorder) RecordSeriesDays(symbol string, days int) {
	r.seriesDays.WithLabelValues(symbol).Set(float64(days))
}

// RecordLatency records operation latency in seconds.
func (r *Recorder) RecordLatency(op string, seconds float64) {
	r.latency.WithLabelValues(op).Observe(seconds)
}
