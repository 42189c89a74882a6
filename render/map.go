// Package render draws scenario reports for a terminal: a character map of
// the stations and connections, and a styled cost summary.
//
// Map legend:
//
//	o   station, followed by its index when there is room
//	.   connection of the final network
//	:   baseline connection the final network dropped
//	x   the investor's plot (obstacle)
package render

import (
	"math"
	"strconv"
	"strings"

	"github.com/paulmach/orb"

	"github.com/katalvlaran/metronet/core"
	"github.com/katalvlaran/metronet/scenario"
	"github.com/katalvlaran/metronet/stations"
)

const (
	glyphStation  = 'o'
	glyphLink     = '.'
	glyphDropped  = ':'
	glyphObstacle = 'x'
	glyphEmpty    = ' '

	minMapSize = 2
)

// grid is a w×h canvas over a bound; row 0 is the top (largest y).
type grid struct {
	w, h  int
	bound orb.Bound
	cells [][]rune
}

func newGrid(w, h int, b orb.Bound) *grid {
	cells := make([][]rune, h)
	for i := range cells {
		cells[i] = []rune(strings.Repeat(string(glyphEmpty), w))
	}

	return &grid{w: w, h: h, bound: b, cells: cells}
}

// cell maps a point to its (col, row).
func (g *grid) cell(p orb.Point) (int, int) {
	fx := (p[0] - g.bound.Min[0]) / (g.bound.Max[0] - g.bound.Min[0])
	fy := (p[1] - g.bound.Min[1]) / (g.bound.Max[1] - g.bound.Min[1])
	col := int(math.Round(fx * float64(g.w-1)))
	row := g.h - 1 - int(math.Round(fy*float64(g.h-1)))

	return clamp(col, 0, g.w-1), clamp(row, 0, g.h-1)
}

func (g *grid) put(col, row int, r rune) {
	if col >= 0 && col < g.w && row >= 0 && row < g.h {
		g.cells[row][col] = r
	}
}

// line draws a Bresenham segment between a and b, ends included.
func (g *grid) line(a, b orb.Point, r rune) {
	x0, y0 := g.cell(a)
	x1, y1 := g.cell(b)
	dx, dy := abs(x1-x0), -abs(y1-y0)
	sx, sy := sign(x1-x0), sign(y1-y0)
	e := dx + dy
	for {
		g.put(x0, y0, r)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

func (g *grid) String() string {
	var sb strings.Builder
	for _, row := range g.cells {
		sb.WriteString(strings.TrimRight(string(row), string(glyphEmpty)))
		sb.WriteByte('\n')
	}

	return sb.String()
}

// Map draws r on a w×h character grid covering the generation bound (grown to
// fit any station outside it). Sizes below 2 are raised to 2.
//
// Layers, bottom to top: dropped connections, final connections, obstacle,
// stations, labels.
func Map(r *scenario.Report, w, h int) string {
	if r == nil {
		return ""
	}
	w, h = max(w, minMapSize), max(h, minMapSize)

	b := stations.DefaultBound
	if len(r.Stations) > 0 {
		b = b.Union(orb.MultiPoint(r.Stations).Bound())
	}
	g := newGrid(w, h, b)

	for _, e := range r.Baseline.Edges {
		if !r.Final.Has(e.From, e.To) {
			g.line(r.Stations[e.From], r.Stations[e.To], glyphDropped)
		}
	}
	for _, e := range r.Final.Edges {
		g.line(r.Stations[e.From], r.Stations[e.To], glyphLink)
	}
	if r.Forbidden != nil {
		col, row := g.cell(r.Obstacle)
		g.put(col, row, glyphObstacle)
	}
	for _, p := range r.Stations {
		col, row := g.cell(p)
		g.put(col, row, glyphStation)
	}
	for i, p := range r.Stations {
		col, row := g.cell(p)
		for k, d := range strconv.Itoa(i) {
			c := col + 1 + k
			if c >= g.w || g.cells[row][c] == glyphStation {
				break
			}
			g.cells[row][c] = d
		}
	}

	return g.String()
}

// Edges draws only the given connections over points, for callers that have
// a network but no scenario.
func Edges(points []orb.Point, edges []core.Edge, w, h int) string {
	r := &scenario.Report{Stations: points}
	r.Baseline.Edges = edges
	r.Final.Edges = edges

	return Map(r, w, h)
}

func clamp(v, lo, hi int) int { return min(max(v, lo), hi) }

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
