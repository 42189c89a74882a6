package scenario

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels for metronet_builds_total.
const (
	OutcomeOK         = "ok"
	OutcomeInfeasible = "infeasible"
	OutcomeError      = "error"
)

// Phase labels for metronet_network_length.
const (
	PhaseBaseline = "baseline"
	PhaseFinal    = "final"
)

// Metrics holds the collectors a Runner records into. Each Metrics owns a
// private registry, so several can coexist in one process (tests, batches).
type Metrics struct {
	// Build metrics
	BuildsTotal   *prometheus.CounterVec
	BuildDuration *prometheus.HistogramVec

	// Scenario metrics
	RunsTotal      *prometheus.CounterVec
	NetworkLength  *prometheus.GaugeVec
	TrueCost       prometheus.Gauge
	StationsInPlot prometheus.Gauge

	registry *prometheus.Registry
	mu       sync.Mutex
}

// NewMetrics creates a Metrics with every collector registered.
func NewMetrics() *Metrics {
	m := &Metrics{registry: prometheus.NewRegistry()}
	m.initBuildMetrics()
	m.initScenarioMetrics()

	return m
}

func (m *Metrics) initBuildMetrics() {
	m.BuildsTotal = promauto.With(m.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "metronet_builds_total",
			Help: "Total number of network builds",
		},
		[]string{"method", "outcome"},
	)

	m.BuildDuration = promauto.With(m.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "metronet_build_duration_seconds",
			Help:    "Network build duration in seconds",
			Buckets: []float64{0.0001, 0.001, 0.01, 0.1, 1.0},
		},
		[]string{"method"},
	)
}

func (m *Metrics) initScenarioMetrics() {
	m.RunsTotal = promauto.With(m.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "metronet_runs_total",
			Help: "Total number of scenario runs",
		},
		[]string{"corrupted"},
	)

	m.NetworkLength = promauto.With(m.registry).NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "metronet_network_length",
			Help: "Total length of the last network built, in distance units",
		},
		[]string{"phase"},
	)

	m.TrueCost = promauto.With(m.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "metronet_true_cost_millions",
			Help: "True cost of corruption of the last run, in millions",
		},
	)

	m.StationsInPlot = promauto.With(m.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "metronet_stations_in_plot",
			Help: "Stations inside the investor's plot in the last run",
		},
	)
}

// RecordBuild counts one build and observes its duration.
func (m *Metrics) RecordBuild(method, outcome string, d time.Duration) {
	if m == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	m.BuildsTotal.WithLabelValues(method, outcome).Inc()
	m.BuildDuration.WithLabelValues(method).Observe(d.Seconds())
}

// RecordReport sets the per-run gauges from a finished report.
func (m *Metrics) RecordReport(r *Report) {
	if m == nil || r == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	corrupted := "false"
	if r.Corrupted {
		corrupted = "true"
	}
	m.RunsTotal.WithLabelValues(corrupted).Inc()
	m.NetworkLength.WithLabelValues(PhaseBaseline).Set(r.Baseline.Length)
	m.NetworkLength.WithLabelValues(PhaseFinal).Set(r.Final.Length)
	m.TrueCost.Set(float64(r.Costs.TrueCost))
	m.StationsInPlot.Set(float64(len(r.InPlot)))
}

// Gatherer exposes the private registry.
func (m *Metrics) Gatherer() prometheus.Gatherer {
	return m.registry
}

// WriteTextfile writes every collector to path in the text exposition
// format, for node_exporter's textfile collector.
func (m *Metrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}
