package main

import (
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/metronet/cost"
	"github.com/katalvlaran/metronet/scenario"
	"github.com/katalvlaran/metronet/stations"
)

// app is the state shared by every command of one invocation.
type app struct {
	configPath string
	seed       int64
	clockSeed  bool
	stations   int
	method     string
	profit     float64
	bribe      float64
	logLevel   string
	logFormat  string

	config scenario.Config
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	rootCmd := &cobra.Command{
		Use:   "metronet",
		Short: "Shortest metro networks and what corruption costs them",
		Long: `metronet generates metro stations from a seed, joins them with the shortest
network, and replays the exercise where an investor bribes an official to keep
one connection away from a plot.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.load,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML config file (defaults apply when empty)")
	pf.Int64Var(&a.seed, "seed", 0, "station seed")
	pf.BoolVar(&a.clockSeed, "seed-from-clock", false, "seed with the current hour, as the classroom version did")
	pf.IntVar(&a.stations, "stations", 10, "number of stations")
	pf.StringVar(&a.method, "method", "prim", "network algorithm: prim or kruskal")
	pf.Float64Var(&a.profit, "profit", 2, "declared profit of the investor, millions")
	pf.Float64Var(&a.bribe, "bribe", 10, "bribe offered to the official, thousands")
	pf.StringVar(&a.logLevel, "log-level", "warn", "log level: debug, info, warn, error")
	pf.StringVar(&a.logFormat, "log-format", "text", "log format: text or json")

	rootCmd.AddCommand(newStationsCmd(a), newBuildCmd(a), newRunCmd(a))

	return rootCmd
}

// load resolves the config (file, then changed flags) and the logger.
func (a *app) load(cmd *cobra.Command, _ []string) error {
	logger, err := newLogger(cmd.ErrOrStderr(), a.logLevel, a.logFormat)
	if err != nil {
		return err
	}
	a.logger = logger

	cfg := scenario.DefaultConfig()
	if a.configPath != "" {
		if cfg, err = scenario.LoadConfig(a.configPath); err != nil {
			return err
		}
		a.logger.Debug("config loaded", "path", a.configPath)
	}

	flags := cmd.Flags()
	if flags.Changed("seed") {
		cfg.Seed = a.seed
	}
	if a.clockSeed {
		cfg.Seed = stations.SeedFromHour(time.Now())
	}
	if flags.Changed("stations") {
		cfg.Stations = a.stations
	}
	if flags.Changed("method") {
		cfg.Method = a.method
	}
	if flags.Changed("profit") {
		cfg.Economics.Profit = cost.Millions(a.profit)
	}
	if flags.Changed("bribe") {
		cfg.Economics.Bribe = cost.Thousands(a.bribe)
	}
	if err = cfg.Validate(); err != nil {
		return err
	}
	a.config = cfg

	return nil
}
