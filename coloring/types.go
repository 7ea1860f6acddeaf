package coloring

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/polysched/relation"
)

const (
	// Uncolored marks the absence of an edge.
	Uncolored = 0
	// Pending marks an edge that exists but has not been colored yet.
	Pending = -1
)

// ErrInvariant reports a broken precondition or coloring invariant.
var ErrInvariant = errors.New("coloring: invariant violated")

// ColorMap stores one color per ordered participant pair. It is symmetric:
// cm[i][j] == cm[j][i] at all times.
type ColorMap [][]int

// NewColorMap prepares a color map for m: Pending where m has an edge,
// Uncolored elsewhere. m is expected to be validated by the caller.
// Complexity: O(n²).
func NewColorMap(m relation.Matrix) ColorMap {
	var (
		n    = len(m)
		cm   = make(ColorMap, n)
		i, j int
	)
	for i = 0; i < n; i++ {
		cm[i] = make([]int, n)
	}
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if m[i][j] > 0 {
				cm[i][j] = Pending
				cm[j][i] = Pending
			}
		}
	}

	return cm
}

// Size returns the participant count.
func (cm ColorMap) Size() int { return len(cm) }

// Color returns the color of edge (i, j).
func (cm ColorMap) Color(i, j int) int { return cm[i][j] }

// set writes a color on both orientations of (i, j).
func (cm ColorMap) set(i, j, color int) {
	cm[i][j] = color
	cm[j][i] = color
}

// Clone returns a deep copy.
// Complexity: O(n²).
func (cm ColorMap) Clone() ColorMap {
	var cp = make(ColorMap, len(cm))
	var i int
	for i = range cm {
		cp[i] = append([]int(nil), cm[i]...)
	}

	return cp
}

// usesColor reports whether some edge incident to v holds color.
// Complexity: O(n).
func (cm ColorMap) usesColor(v, color int) bool {
	var j int
	for j = 0; j < len(cm[v]); j++ {
		if cm[v][j] == color {
			return true
		}
	}

	return false
}

// freeColor returns the smallest positive color not used at v and not equal
// to exclude (pass Uncolored to exclude nothing).
// Complexity: O(n).
func (cm ColorMap) freeColor(v, exclude int) int {
	// A vertex has at most n-1 colored edges, so colors 1..n+1 always leave
	// at least one candidate besides exclude.
	var (
		used  = make([]bool, len(cm)+2)
		j     int
		color int
	)
	for j = 0; j < len(cm[v]); j++ {
		color = cm[v][j]
		if color > 0 && color < len(used) {
			used[color] = true
		}
	}
	color = 1
	for used[color] || color == exclude {
		color++
	}

	return color
}

// findConnection returns the neighbor joined to start by an edge of the given
// color, or -1 when start has no such edge.
// Complexity: O(n).
func (cm ColorMap) findConnection(color, start int) int {
	var i int
	for i = 0; i < len(cm[start]); i++ {
		if cm[start][i] == color {
			return i
		}
	}

	return -1
}

// Colors lists the distinct positive colors in ascending order.
// Complexity: O(n²).
func (cm ColorMap) Colors() []int {
	var (
		seen = make(map[int]struct{})
		max  int
		i, j int
	)
	for i = 0; i < len(cm); i++ {
		for j = i + 1; j < len(cm); j++ {
			if cm[i][j] > 0 {
				seen[cm[i][j]] = struct{}{}
				if cm[i][j] > max {
					max = cm[i][j]
				}
			}
		}
	}

	var out = make([]int, 0, len(seen))
	var c int
	for c = 1; c <= max; c++ {
		if _, ok := seen[c]; ok {
			out = append(out, c)
		}
	}

	return out
}

// PendingCount returns how many edges are still waiting for a color.
// Complexity: O(n²).
func (cm ColorMap) PendingCount() int {
	var (
		count int
		i, j  int
	)
	for i = 0; i < len(cm); i++ {
		for j = i + 1; j < len(cm); j++ {
			if cm[i][j] == Pending {
				count++
			}
		}
	}

	return count
}

// Verify checks symmetry and properness. Pending edges are allowed.
// Complexity: O(n²) time, O(n) scratch per row.
func (cm ColorMap) Verify() error {
	var (
		n     = len(cm)
		owner = make(map[int]int, n)
		v, j  int
		color int
		prev  int
		ok    bool
	)
	for v = 0; v < n; v++ {
		if len(cm[v]) != n {
			return fmt.Errorf("Verify: row %d has %d columns: %w", v, len(cm[v]), ErrInvariant)
		}
	}
	for v = 0; v < n; v++ {
		if cm[v][v] != Uncolored {
			return fmt.Errorf("Verify: self-loop at %d: %w", v, ErrInvariant)
		}
		clear(owner)
		for j = 0; j < n; j++ {
			color = cm[v][j]
			if color != cm[j][v] {
				return fmt.Errorf("Verify: color[%d][%d]=%d but color[%d][%d]=%d: %w",
					v, j, color, j, v, cm[j][v], ErrInvariant)
			}
			if color < Pending {
				return fmt.Errorf("Verify: color[%d][%d]=%d: %w", v, j, color, ErrInvariant)
			}
			if color <= 0 {
				continue
			}
			if prev, ok = owner[color]; ok {
				return fmt.Errorf("Verify: edges (%d,%d) and (%d,%d) share color %d: %w",
					v, prev, v, j, color, ErrInvariant)
			}
			owner[color] = j
		}
	}

	return nil
}

// VerifyComplete is Verify plus the requirement that no edge is Pending.
// Complexity: O(n²).
func (cm ColorMap) VerifyComplete() error {
	if err := cm.Verify(); err != nil {
		return err
	}
	if p := cm.PendingCount(); p > 0 {
		return fmt.Errorf("VerifyComplete: %d edges still pending: %w", p, ErrInvariant)
	}

	return nil
}
