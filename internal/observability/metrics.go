// Package observability provides Prometheus metrics for monitoring.
package observability

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"red-envelope-sim/internal/model"
)

// Metrics holds all Prometheus metrics for the application.
// It implements simulation.Observer.
type Metrics struct {
	registry *prometheus.Registry

	// Round metrics
	RoundsSimulated *prometheus.CounterVec
	GrabOutcomes    *prometheus.CounterVec
	BestLuckRounds  *prometheus.CounterVec
	AmountReceived  *prometheus.CounterVec

	// Run metrics
	SimulationsTotal   *prometheus.CounterVec
	SimulationDuration *prometheus.HistogramVec
}

// NewMetrics creates a new Metrics instance on its own registry.
func NewMetrics(namespace string) *Metrics {
	if namespace == "" {
		namespace = "red_envelope_sim"
	}
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,

		RoundsSimulated: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "rounds",
			Name:      "simulated_total",
			Help:      "Total number of rounds simulated",
		}, []string{"mode"}),
		GrabOutcomes: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "rounds",
			Name:      "grab_outcomes_total",
			Help:      "Participant grab outcomes by mode and result",
		}, []string{"mode", "result"}),
		BestLuckRounds: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "rounds",
			Name:      "best_luck_total",
			Help:      "Rounds where the participant held the largest share",
		}, []string{"mode"}),
		AmountReceived: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "rounds",
			Name:      "amount_received_total",
			Help:      "Total amount received by participants",
		}, []string{"mode"}),

		SimulationsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "simulations",
			Name:      "runs_total",
			Help:      "Total number of simulation batches by status",
		}, []string{"mode", "status"}),
		SimulationDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "simulations",
			Name:      "duration_seconds",
			Help:      "Simulation batch duration in seconds",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 4, 10),
		}, []string{"mode"}),
	}
}

// ObserveRound records one round's outcome for the participant.
func (m *Metrics) ObserveRound(mode model.GrabMode, rec model.RoundRecord) {
	label := mode.String()
	m.RoundsSimulated.WithLabelValues(label).Inc()
	if !rec.User.Success {
		m.GrabOutcomes.WithLabelValues(label, "failure").Inc()
		return
	}
	m.GrabOutcomes.WithLabelValues(label, "success").Inc()
	m.AmountReceived.WithLabelValues(label).Add(rec.User.Amount.InexactFloat64())
	if rec.User.IsBestLuck {
		m.BestLuckRounds.WithLabelValues(label).Inc()
	}
}

// ObserveSimulation records a finished batch. err == nil counts as success.
func (m *Metrics) ObserveSimulation(mode model.GrabMode, d time.Duration, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	m.SimulationsTotal.WithLabelValues(mode.String(), status).Inc()
	if err == nil {
		m.SimulationDuration.WithLabelValues(mode.String()).Observe(d.Seconds())
	}
}

// Registry exposes the underlying registry, mostly for tests.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// Handler returns the HTTP handler for the /metrics endpoint.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
