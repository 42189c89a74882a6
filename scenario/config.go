package scenario

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/metronet/core"
	"github.com/katalvlaran/metronet/cost"
	"github.com/katalvlaran/metronet/network"
)

// validate is the package's validator instance.
var validate = validator.New()

// Config describes one session of the simulation.
type Config struct {
	// Stations is the number of stations to generate.
	Stations int `yaml:"stations" validate:"gte=1,lte=1000"`

	// Seed seeds station generation. The edge choice continues on the same
	// stream unless ChoiceSeed is set.
	Seed int64 `yaml:"seed"`

	// ChoiceSeed, when set, seeds the random choice of the forbidden edge
	// on its own stream.
	ChoiceSeed *int64 `yaml:"choice_seed,omitempty"`

	// Forbid pins the forbidden edge ("u-v") instead of drawing one.
	Forbid string `yaml:"forbid,omitempty"`

	// Method is the network algorithm: "prim" or "kruskal".
	Method string `yaml:"method" validate:"oneof=prim kruskal"`

	// Economics holds the cost factor, declared profit and bribe.
	Economics cost.Params `yaml:"economics"`

	// BribeThreshold is the smallest bribe the official accepts.
	BribeThreshold cost.Thousands `yaml:"bribe_threshold" validate:"gte=0"`

	// PlotRadiusPerMillion sizes the investor's plot around the obstacle:
	// radius = profit (M) * PlotRadiusPerMillion.
	PlotRadiusPerMillion float64 `yaml:"plot_radius_per_million" validate:"gte=0"`
}

// DefaultConfig returns the original exercise: 10 stations, seed 0, Prim,
// 10 M per distance unit, 2 M profit, a 10 k bribe against a 50 k threshold.
func DefaultConfig() Config {
	return Config{
		Stations:             10,
		Method:               network.MethodPrim,
		Economics:            cost.DefaultParams(),
		BribeThreshold:       50,
		PlotRadiusPerMillion: 0.1,
	}
}

// Validate checks struct tags, the economics and the pinned edge.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config: %s: %w", formatValidationError(err), core.ErrInvalidInput)
	}
	if err := c.Economics.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.Forbid != "" {
		k, err := core.ParseEdgeKey(c.Forbid)
		if err != nil {
			return fmt.Errorf("config: %w", err)
		}
		if err = k.Validate(c.Stations); err != nil {
			return fmt.Errorf("config: forbid: %w", err)
		}
	}

	return nil
}

// LoadConfig reads a YAML file over DefaultConfig and validates the result.
// Keys missing from the file keep their defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	if err = yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err = cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// formatValidationError flattens validator field errors into one line.
func formatValidationError(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, fmt.Sprintf("%s must satisfy %s=%s", fe.Namespace(), fe.Tag(), fe.Param()))
	}

	return strings.Join(parts, "; ")
}
