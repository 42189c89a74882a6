// Package scenario plays one session of the metro corruption exercise:
//
//  1. generate the stations from a seed;
//  2. build the baseline network;
//  3. pick one established connection at random: an investor wants a plot
//     at its midpoint and keeps the line away from it;
//  4. the official takes the bribe if it reaches the threshold;
//  5. if so, rebuild with that connection forbidden;
//  6. price everything and report.
//
// Runs are reproducible: the same Config always yields the same Report,
// apart from the RunID.
package scenario

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb"

	"github.com/katalvlaran/metronet/core"
	"github.com/katalvlaran/metronet/cost"
	"github.com/katalvlaran/metronet/network"
	"github.com/katalvlaran/metronet/stations"
)

// Report is everything one run produced.
type Report struct {
	RunID  uuid.UUID
	Config Config

	Stations []orb.Point
	Baseline network.Network

	// Forbidden is the connection the investor wants gone; nil when the
	// baseline has no connection to pick (a single station).
	Forbidden *core.EdgeKey
	// Obstacle is the midpoint of Forbidden, where the plot sits.
	Obstacle orb.Point
	// PlotRadius is the radius of the plot around Obstacle.
	PlotRadius float64
	// InPlot lists the stations inside the plot, ascending.
	InPlot []int

	// Corrupted reports whether the official took the bribe.
	Corrupted bool
	// Final is the network actually built: Baseline when not corrupted.
	Final network.Network

	Costs cost.Breakdown
}

// Extra is the length the exclusion added to the network.
func (r *Report) Extra() float64 { return r.Final.Length - r.Baseline.Length }

// Runner executes scenarios. The zero value is usable: it logs nowhere and
// records no metrics.
type Runner struct {
	Logger  *slog.Logger
	Metrics *Metrics
}

// Run is shorthand for a Runner with only a logger.
func Run(cfg Config, logger *slog.Logger) (*Report, error) {
	return (&Runner{Logger: logger}).Run(cfg)
}

// Run plays one session for cfg.
//
// Steps:
//  1. Validate cfg.
//  2. Seed one stream with cfg.Seed; generate the stations from it.
//  3. Build the baseline.
//  4. Choose the forbidden connection: cfg.Forbid when pinned, otherwise a
//     uniform draw over the baseline connections, continuing the station
//     stream (or a fresh stream from cfg.ChoiceSeed).
//  5. Corrupted iff the bribe reaches cfg.BribeThreshold; rebuild if so.
//  6. Query the plot footprint and evaluate the costs.
//
// An infeasible rebuild is returned as network.ErrInfeasible, never retried.
func (rn *Runner) Run(cfg Config) (*Report, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	r := &Report{RunID: uuid.New(), Config: cfg}
	log := rn.logger().With("run_id", r.RunID.String())

	rng := rand.New(rand.NewSource(cfg.Seed))
	pts, err := stations.Generate(cfg.Stations, cfg.Seed, stations.WithRand(rng))
	if err != nil {
		return nil, fmt.Errorf("scenario: stations: %w", err)
	}
	r.Stations = pts
	log.Debug("stations generated", "count", len(pts), "seed", cfg.Seed)

	if r.Baseline, err = rn.build(pts, cfg.Method, nil); err != nil {
		log.Error("baseline build failed", "error", err)
		return nil, fmt.Errorf("scenario: baseline: %w", err)
	}
	log.Info("baseline built", "length", r.Baseline.Length, "edges", len(r.Baseline.Edges))

	choice := rng
	if cfg.ChoiceSeed != nil {
		choice = rand.New(rand.NewSource(*cfg.ChoiceSeed))
	}
	if r.Forbidden, err = chooseForbidden(cfg, r.Baseline, choice); err != nil {
		return nil, err
	}

	r.Final = r.Baseline
	if r.Forbidden != nil {
		r.Obstacle = core.Midpoint(pts, *r.Forbidden)
		r.PlotRadius = float64(cfg.Economics.Profit) * cfg.PlotRadiusPerMillion
		r.InPlot = newStationIndex(pts).Within(r.Obstacle, r.PlotRadius)
		r.Corrupted = cfg.Economics.Bribe >= cfg.BribeThreshold
		log.Info("investor plot",
			"forbidden", r.Forbidden.String(),
			"obstacle_x", r.Obstacle[0], "obstacle_y", r.Obstacle[1],
			"stations_in_plot", len(r.InPlot),
			"bribe", cfg.Economics.Bribe.String(),
			"corrupted", r.Corrupted,
		)
	}

	if r.Corrupted {
		if r.Final, err = rn.build(pts, cfg.Method, r.Forbidden); err != nil {
			log.Warn("rebuild without forbidden edge failed", "forbidden", r.Forbidden.String(), "error", err)
			return nil, fmt.Errorf("scenario: rebuild: %w", err)
		}
		log.Info("network rebuilt", "length", r.Final.Length, "extra", r.Extra())
	}

	if r.Costs, err = cfg.Economics.Evaluate(r.Baseline.Length, r.Final.Length); err != nil {
		return nil, fmt.Errorf("scenario: costs: %w", err)
	}
	log.Info("scenario finished",
		"initial_cost", r.Costs.InitialCost.String(),
		"final_cost", r.Costs.FinalCost.String(),
		"true_cost", r.Costs.TrueCost.String(),
	)
	rn.Metrics.RecordReport(r)

	return r, nil
}

// build runs one network build and records it.
func (rn *Runner) build(pts []orb.Point, method string, forbidden *core.EdgeKey) (network.Network, error) {
	opts := []network.Option{network.WithMethod(method)}
	if forbidden != nil {
		opts = append(opts, network.WithForbiddenEdge(*forbidden))
	}

	start := time.Now()
	n, err := network.Build(pts, opts...)
	outcome := OutcomeOK
	switch {
	case errors.Is(err, network.ErrInfeasible):
		outcome = OutcomeInfeasible
	case err != nil:
		outcome = OutcomeError
	}
	rn.Metrics.RecordBuild(method, outcome, time.Since(start))

	return n, err
}

func (rn *Runner) logger() *slog.Logger {
	if rn.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}

	return rn.Logger
}

// chooseForbidden returns the pinned pair, or draws one baseline connection.
// Each connection is equally likely; nil when there is none.
func chooseForbidden(cfg Config, baseline network.Network, rng *rand.Rand) (*core.EdgeKey, error) {
	if cfg.Forbid != "" {
		k, err := core.ParseEdgeKey(cfg.Forbid)
		if err != nil {
			return nil, fmt.Errorf("scenario: forbid: %w", err)
		}

		return &k, nil
	}

	keys := baseline.EdgeKeys()
	if len(keys) == 0 {
		return nil, nil
	}
	k := keys[rng.Intn(len(keys))]

	return &k, nil
}
