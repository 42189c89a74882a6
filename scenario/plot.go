package scenario

import (
	"sort"

	"github.com/dhconnelly/rtreego"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// stationTol is the half-size of the box each station occupies in the tree.
const stationTol = 1e-9

// stationEntry wraps a station for R-tree storage.
type stationEntry struct {
	index int
	at    orb.Point
	bbox  rtreego.Rect
}

// Bounds implements rtreego.Spatial.
func (s *stationEntry) Bounds() rtreego.Rect { return s.bbox }

// stationIndex answers "which stations lie inside this disc" queries.
type stationIndex struct {
	tree *rtreego.Rtree
}

// newStationIndex loads every station into a 2D R-tree.
func newStationIndex(points []orb.Point) *stationIndex {
	tree := rtreego.NewTree(2, 25, 50) // 2D, min 25, max 50 entries per node
	for i, p := range points {
		tree.Insert(&stationEntry{
			index: i,
			at:    p,
			bbox:  rtreego.Point{p[0], p[1]}.ToRect(stationTol),
		})
	}

	return &stationIndex{tree: tree}
}

// Within returns the indices of stations at most radius from center,
// ascending. A non-positive radius covers nothing.
func (si *stationIndex) Within(center orb.Point, radius float64) []int {
	if radius <= 0 {
		return nil
	}
	box, err := rtreego.NewRect(
		rtreego.Point{center[0] - radius, center[1] - radius},
		[]float64{2 * radius, 2 * radius},
	)
	if err != nil {
		return nil
	}

	var found []int
	for _, item := range si.tree.SearchIntersect(box) {
		entry := item.(*stationEntry)
		// The box is a coarse filter; keep only the disc.
		if planar.Distance(entry.at, center) <= radius {
			found = append(found, entry.index)
		}
	}
	sort.Ints(found)

	return found
}
