package scenario_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/metronet/network"
	"github.com/katalvlaran/metronet/scenario"
)

func TestNewMetrics(t *testing.T) {
	m := scenario.NewMetrics()
	require.NotNil(t, m)
	assert.NotNil(t, m.BuildsTotal)
	assert.NotNil(t, m.BuildDuration)
	assert.NotNil(t, m.RunsTotal)
	assert.NotNil(t, m.NetworkLength)
	assert.NotNil(t, m.TrueCost)
	assert.NotNil(t, m.StationsInPlot)
}

// TestRunner_RecordsMetrics: a corrupted run builds twice and sets the gauges.
func TestRunner_RecordsMetrics(t *testing.T) {
	m := scenario.NewMetrics()
	rn := &scenario.Runner{Metrics: m}

	r, err := rn.Run(corruptConfig())
	require.NoError(t, err)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.BuildsTotal.WithLabelValues(network.MethodPrim, scenario.OutcomeOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RunsTotal.WithLabelValues("true")))
	assert.Equal(t, r.Baseline.Length, testutil.ToFloat64(m.NetworkLength.WithLabelValues(scenario.PhaseBaseline)))
	assert.Equal(t, r.Final.Length, testutil.ToFloat64(m.NetworkLength.WithLabelValues(scenario.PhaseFinal)))
	assert.Equal(t, float64(r.Costs.TrueCost), testutil.ToFloat64(m.TrueCost))
	assert.Equal(t, float64(len(r.InPlot)), testutil.ToFloat64(m.StationsInPlot))
}

// TestRunner_RecordsInfeasible labels the failed rebuild.
func TestRunner_RecordsInfeasible(t *testing.T) {
	m := scenario.NewMetrics()
	cfg := corruptConfig()
	cfg.Stations = 2
	cfg.Forbid = "0-1"

	_, err := (&scenario.Runner{Metrics: m}).Run(cfg)
	require.ErrorIs(t, err, network.ErrInfeasible)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.BuildsTotal.WithLabelValues(network.MethodPrim, scenario.OutcomeOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.BuildsTotal.WithLabelValues(network.MethodPrim, scenario.OutcomeInfeasible)))
	assert.Equal(t, 0, testutil.CollectAndCount(m.RunsTotal))
}

func TestMetrics_WriteTextfile(t *testing.T) {
	m := scenario.NewMetrics()
	_, err := (&scenario.Runner{Metrics: m}).Run(scenario.DefaultConfig())
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "metronet.prom")
	require.NoError(t, m.WriteTextfile(path))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(raw)
	for _, name := range []string{
		"metronet_builds_total",
		"metronet_build_duration_seconds",
		"metronet_runs_total",
		"metronet_network_length",
		"metronet_true_cost_millions",
		"metronet_stations_in_plot",
	} {
		assert.True(t, strings.Contains(text, name), "missing %s", name)
	}
	assert.Contains(t, text, `corrupted="false"`)
}

// TestMetrics_NilSafe: a Runner without metrics records nothing and works.
func TestMetrics_NilSafe(t *testing.T) {
	var m *scenario.Metrics
	assert.NotPanics(t, func() { m.RecordReport(&scenario.Report{}) })
}
