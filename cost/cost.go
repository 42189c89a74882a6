// Package cost turns network lengths into money: what the works cost, what
// the party paying a bribe gains, and what the exclusion costs everyone else.
//
// Units are explicit. Construction costs and profits are Millions; bribes are
// entered in Thousands and converted with Thousands.Millions() before they
// meet a profit figure. Nothing here converts implicitly.
//
// Every function is pure. The only failure is a non-finite input, reported
// as core.ErrInvalidInput.
package cost

import (
	"fmt"
	"math"

	"github.com/katalvlaran/metronet/core"
)

// Millions is an amount in millions of currency units.
type Millions float64

// Thousands is an amount in thousands of currency units.
type Thousands float64

// Millions converts t to millions.
func (t Thousands) Millions() Millions { return Millions(t / 1000) }

// String renders the amount with two decimals and its scale.
func (m Millions) String() string { return fmt.Sprintf("%.2f M", float64(m)) }

// String renders the amount without decimals and its scale.
func (t Thousands) String() string { return fmt.Sprintf("%.0f k", float64(t)) }

// ConstructionCost is factor * length: factor in Millions per distance unit.
func ConstructionCost(factor Millions, length float64) (Millions, error) {
	if err := finite("ConstructionCost", float64(factor), length); err != nil {
		return 0, err
	}

	return factor * Millions(length), nil
}

// CorruptionBenefit is what the bribing party keeps: declaredProfit - sidePayment.
// Both must already be in Millions.
func CorruptionBenefit(declaredProfit, sidePayment Millions) (Millions, error) {
	if err := finite("CorruptionBenefit", float64(declaredProfit), float64(sidePayment)); err != nil {
		return 0, err
	}

	return declaredProfit - sidePayment, nil
}

// TrueCostOfCorruption is the extra construction cost caused by the
// exclusion: ConstructionCost(final) - ConstructionCost(baseline).
// It is zero when the lengths match and scales linearly with factor.
func TrueCostOfCorruption(factor Millions, baseline, final float64) (Millions, error) {
	before, err := ConstructionCost(factor, baseline)
	if err != nil {
		return 0, fmt.Errorf("TrueCostOfCorruption: baseline: %w", err)
	}
	after, err := ConstructionCost(factor, final)
	if err != nil {
		return 0, fmt.Errorf("TrueCostOfCorruption: final: %w", err)
	}

	return after - before, nil
}

// finite rejects NaN and ±Inf.
func finite(method string, vs ...float64) error {
	for i, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%s: argument %d is not finite: %w", method, i, core.ErrInvalidInput)
		}
	}

	return nil
}
