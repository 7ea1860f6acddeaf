package layer

import (
	"fmt"

	"github.com/katalvlaran/polysched/coloring"
	"github.com/katalvlaran/polysched/relation"
	"github.com/katalvlaran/polysched/schedule"
)

// Layer is a fully colored weight band plus its balanced day order.
type Layer struct {
	rel        relation.Matrix
	colors     coloring.ColorMap
	dayWeights map[int]int
	order      []int
	peak       waitPeak
	insertions int
}

// Build colors every edge of rel and balances the resulting days.
// rel is validated first; an empty band (no edges) yields a Layer with no days.
//
// Returns relation errors for malformed input and a wrapped
// coloring.ErrInvariant if the coloring is improper or incomplete.
//
// Complexity: O(m·n²) coloring with m edges, plus O(k²·r) balancing with
// k colors and r insertions.
func Build(rel relation.Matrix) (*Layer, error) {
	if err := relation.Validate(rel); err != nil {
		return nil, fmt.Errorf("layer.Build: %w", err)
	}

	var (
		cm = coloring.NewColorMap(rel)
		e  relation.Edge
	)
	for _, e = range rel.Edges() {
		if err := coloring.ColorEdge(cm, e.I, e.J); err != nil {
			return nil, fmt.Errorf("layer.Build: edge (%d,%d): %w", e.I, e.J, err)
		}
	}
	if err := cm.VerifyComplete(); err != nil {
		return nil, fmt.Errorf("layer.Build: %w", err)
	}

	var l = &Layer{rel: rel, colors: cm}
	l.dayWeights = l.DayWeights()
	l.balance()

	return l, nil
}

// Relation returns the weight band this layer was built from.
func (l *Layer) Relation() relation.Matrix { return l.rel }

// ColorMap returns a copy of the final coloring.
func (l *Layer) ColorMap() coloring.ColorMap { return l.colors.Clone() }

// Colors lists the colors in use, ascending.
func (l *Layer) Colors() []int { return l.colors.Colors() }

// EdgeCount returns the number of relationships in the band.
func (l *Layer) EdgeCount() int { return l.rel.EdgeCount() }

// DayWeights derives color → heaviest edge weight of that color. Every call
// recomputes the map from the coloring, so repeated calls agree.
// Complexity: O(n²).
func (l *Layer) DayWeights() map[int]int {
	var (
		out   = make(map[int]int)
		n     = len(l.colors)
		i, j  int
		color int
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			color = l.colors[i][j]
			if color > 0 && l.rel[i][j] > out[color] {
				out[color] = l.rel[i][j]
			}
		}
	}

	return out
}

// Order returns the balanced cyclic order of colors. A color may appear more
// than once.
func (l *Layer) Order() []int { return append([]int(nil), l.order...) }

// Insertions returns how many duplicates the balancer kept.
func (l *Layer) Insertions() int { return l.insertions }

// MaxWait returns the largest wait weight of the balanced order.
func (l *Layer) MaxWait() int { return l.peak.weight }

// Days returns one Day per position of Order. Positions holding the same
// color share the same Day value.
// Complexity: O(k·n²) with k distinct colors.
func (l *Layer) Days() []schedule.Day {
	var (
		byColor = make(map[int]schedule.Day, len(l.dayWeights))
		n       = len(l.colors)
		i, j    int
		color   int
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			color = l.colors[i][j]
			if color > 0 {
				byColor[color] = append(byColor[color], schedule.Meetup{A: i, B: j})
			}
		}
	}

	var days = make([]schedule.Day, len(l.order))
	for i, color = range l.order {
		days[i] = byColor[color]
	}

	return days
}

// Schedule returns the balanced days as a Schedule carrying names.
func (l *Layer) Schedule(names []string) *schedule.Schedule {
	var s = schedule.New(names)
	for _, d := range l.Days() {
		s.Append(d)
	}

	return s
}
