package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/metronet/scenario"
)

// Summary renders the figures of r as a boxed report.
func Summary(r *scenario.Report) string {
	if r == nil {
		return ""
	}
	cfg := r.Config
	var rows []string
	row := func(label, value string) {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, Styles.Label.Render(label), value))
	}

	rows = append(rows, Styles.Title.Render("metronet "+r.RunID.String()), "")
	row("Stations", Styles.Value.Render(fmt.Sprintf("%d (seed %d)", len(r.Stations), cfg.Seed)))
	row("Initial network", Styles.Value.Render(fmt.Sprintf("%.4f", r.Baseline.Length)))
	row("Initial cost", Styles.Value.Render(r.Costs.InitialCost.String()))

	if r.Forbidden == nil {
		row("Investor", Styles.Muted.Render("no connection to target"))
		return Styles.Box.Render(strings.Join(rows, "\n"))
	}

	row("Investor wants gone", Styles.Value.Render(r.Forbidden.String()))
	row("Plot", fmt.Sprintf("(%.2f, %.2f) r=%.2f, stations %v",
		r.Obstacle[0], r.Obstacle[1], r.PlotRadius, r.InPlot))
	row("Declared profit", r.Config.Economics.Profit.String())

	bribe := fmt.Sprintf("%s (threshold %s)", r.Costs.Bribe, cfg.BribeThreshold)
	if r.Corrupted {
		row("Bribe", Styles.Warning.Render(bribe+" accepted"))
	} else {
		row("Bribe", Styles.Good.Render(bribe+" refused"))
	}

	row("Final network", Styles.Value.Render(fmt.Sprintf("%.4f (+%.4f)", r.Final.Length, r.Extra())))
	row("Final cost", Styles.Value.Render(r.Costs.FinalCost.String()))
	row("Corruption benefit", Styles.Value.Render(r.Costs.Benefit.String()))
	if r.Costs.TrueCost > 0 {
		row("True cost of corruption", Styles.Bad.Render(r.Costs.TrueCost.String()))
	} else {
		row("True cost of corruption", Styles.Good.Render(r.Costs.TrueCost.String()))
	}

	return Styles.Box.Render(strings.Join(rows, "\n"))
}
