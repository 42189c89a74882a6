package cost

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/katalvlaran/metronet/core"
)

// validate is the package's validator instance.
var validate = validator.New()

// Params are the economic inputs of one scenario.
type Params struct {
	// CostFactor is the construction cost per distance unit.
	CostFactor Millions `yaml:"cost_factor" validate:"gt=0"`

	// Profit is the investor's declared profit from keeping the link away.
	Profit Millions `yaml:"profit" validate:"gte=0"`

	// Bribe is the side payment offered to the official.
	Bribe Thousands `yaml:"bribe" validate:"gte=0"`
}

// DefaultParams mirrors the original exercise: 10 M per km, 2 M profit,
// a 10 k bribe.
func DefaultParams() Params {
	return Params{CostFactor: 10, Profit: 2, Bribe: 10}
}

// Validate checks p with struct tags and rejects non-finite values, which
// the tag comparisons alone would let through as +Inf.
func (p Params) Validate() error {
	if err := finite("Params", float64(p.CostFactor), float64(p.Profit), float64(p.Bribe)); err != nil {
		return err
	}
	if err := validate.Struct(p); err != nil {
		return fmt.Errorf("Params: %s: %w", formatValidationError(err), core.ErrInvalidInput)
	}

	return nil
}

// Breakdown is the full cost/benefit picture of one exclusion.
type Breakdown struct {
	InitialCost Millions
	FinalCost   Millions
	Bribe       Thousands
	Benefit     Millions
	TrueCost    Millions
}

// Evaluate derives every figure from the baseline and final lengths.
func (p Params) Evaluate(baseline, final float64) (Breakdown, error) {
	if err := p.Validate(); err != nil {
		return Breakdown{}, err
	}
	if baseline < 0 || final < 0 || math.IsNaN(baseline) || math.IsNaN(final) {
		return Breakdown{}, fmt.Errorf("Evaluate: lengths %g, %g: %w", baseline, final, core.ErrInvalidInput)
	}

	var (
		b   Breakdown
		err error
	)
	b.Bribe = p.Bribe
	if b.InitialCost, err = ConstructionCost(p.CostFactor, baseline); err != nil {
		return Breakdown{}, err
	}
	if b.FinalCost, err = ConstructionCost(p.CostFactor, final); err != nil {
		return Breakdown{}, err
	}
	if b.Benefit, err = CorruptionBenefit(p.Profit, p.Bribe.Millions()); err != nil {
		return Breakdown{}, err
	}
	if b.TrueCost, err = TrueCostOfCorruption(p.CostFactor, baseline, final); err != nil {
		return Breakdown{}, err
	}

	return b, nil
}

// formatValidationError flattens validator field errors into one line.
func formatValidationError(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, fmt.Sprintf("%s must satisfy %s=%s", fe.Field(), fe.Tag(), fe.Param()))
	}

	return strings.Join(parts, "; ")
}
