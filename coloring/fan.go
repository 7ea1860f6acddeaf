// Package coloring - fan construction, c/d path inversion and rotation.
//
// One ColorEdge call runs the Misra–Gries step on the pending edge (X, f):
//
//  1. Build a maximal fan F = [f, F2, …, Fk] at X: each Fi+1 is a colored
//     neighbor of X whose edge color (X, Fi+1) is free on Fi.
//  2. c = smallest color free on X; d = smallest color free on Fk, d ≠ c.
//  3. Invert the maximal path through X whose edges alternate c and d. Since
//     c is free on X the walk leaves X on d; afterwards d is free on X.
//  4. Rotate the longest prefix F[1:w] that is still a fan and has d free on
//     Fw: every (X, Fi) takes the color of (X, Fi+1), and (X, Fw) takes d.
//
// The fan and both path walks are bounded loops over explicit indices; no
// recursion is used, so very large participant counts cannot exhaust the stack.
package coloring

import "fmt"

// fan is the per-call working set. It borrows cm exclusively for the
// duration of one ColorEdge call and is discarded afterwards.
type fan struct {
	cm       ColorMap
	root     int
	children []int
	c, d     int
}

// ColorEdge colors the pending edge (root, child) in place.
//
// Contract:
//   - root and child are distinct, in range, and cm[root][child] == Pending.
//   - cm is proper on entry (as produced by NewColorMap + prior ColorEdge calls).
//
// On success cm is proper, symmetric, and (root, child) holds a positive color.
// Other pending edges stay pending; colored edges may be recolored only along
// the c/d path and inside the rotated fan.
//
// Complexity: O(n²) worst case (see package doc).
func ColorEdge(cm ColorMap, root, child int) error {
	var n = len(cm)
	if root < 0 || root >= n || child < 0 || child >= n || root == child {
		return fmt.Errorf("ColorEdge: edge (%d,%d) out of range for n=%d: %w", root, child, n, ErrInvariant)
	}
	if cm[root][child] != Pending {
		return fmt.Errorf("ColorEdge: edge (%d,%d) is %d, not pending: %w", root, child, cm[root][child], ErrInvariant)
	}

	var f = newFan(cm, root, child)
	f.invertCDPath()

	return f.rotate()
}

// newFan builds the maximal fan and fixes c and d.
func newFan(cm ColorMap, root, first int) *fan {
	var f = &fan{
		cm:       cm,
		root:     root,
		children: []int{first},
	}
	f.build()
	f.c = cm.freeColor(root, Uncolored)
	f.d = cm.freeColor(f.last(), f.c)

	return f
}

// last returns the final fan member.
func (f *fan) last() int { return f.children[len(f.children)-1] }

// contains reports fan membership.
// Complexity: O(k) with k = fan size.
func (f *fan) contains(v int) bool {
	var i int
	for i = 0; i < len(f.children); i++ {
		if f.children[i] == v {
			return true
		}
	}

	return false
}

// build extends the fan greedily. Each round scans the colored neighbors of
// root in ascending index order and appends every eligible one, updating the
// "last" member as it goes; rounds repeat until one appends nothing.
// Pending edges never join the fan body.
//
// Complexity: O(Δ²·n) worst case (Δ rounds × Δ candidates × O(n) color test).
func (f *fan) build() {
	var (
		row   = f.cm[f.root]
		conns = make([]int, 0, len(row))
		j     int
	)
	for j = 0; j < len(row); j++ {
		if row[j] > 0 {
			conns = append(conns, j)
		}
	}

	var (
		last  = f.children[0]
		grown = true
		v     int
	)
	for grown {
		grown = false
		for _, v = range conns {
			if f.contains(v) || f.cm.usesColor(last, row[v]) {
				continue
			}
			f.children = append(f.children, v)
			last = v
			grown = true
		}
	}
}

// invertCDPath swaps c and d along the maximal c/d alternating path through
// root. The path is traced completely before any edge is flipped.
//
// Complexity: O(L·n) with L the path length (≤ n).
func (f *fan) invertCDPath() {
	var onPath = make([]bool, len(f.cm))
	onPath[f.root] = true

	// c is free on root, so the c-first walk is normally empty; it is kept for
	// symmetry with the d-first walk.
	var forward = f.walk(f.c, f.d, onPath)
	var backward = f.walk(f.d, f.c, onPath)

	f.flipChain(forward)
	f.flipChain(backward)
}

// walk follows edges colored first, second, first, … outward from root and
// returns the visited vertices in order. Vertices already on the path end
// the walk, which also guards against cycles.
func (f *fan) walk(first, second int, onPath []bool) []int {
	var (
		chain []int
		pos   = f.root
		color = first
		next  int
	)
	for {
		next = f.cm.findConnection(color, pos)
		if next < 0 || onPath[next] {
			return chain
		}
		onPath[next] = true
		chain = append(chain, next)
		pos = next
		if color == first {
			color = second
		} else {
			color = first
		}
	}
}

// flipChain swaps c and d on each edge of root → chain[0] → chain[1] → ….
func (f *fan) flipChain(chain []int) {
	var (
		prev = f.root
		v    int
		i    int
	)
	for i = 0; i < len(chain); i++ {
		v = chain[i]
		if f.cm[prev][v] == f.c {
			f.cm.set(prev, v, f.d)
		} else {
			f.cm.set(prev, v, f.c)
		}
		prev = v
	}
}

// rotatable returns w, the length of the sub-fan F[1:w] to rotate: the
// longest prefix that is still a fan after the inversion, shortened until d
// is free on its last member.
//
// Complexity: O(k·n).
func (f *fan) rotatable() int {
	var w = 1 // the pending edge alone is always a fan
	for w < len(f.children) &&
		!f.cm.usesColor(f.children[w-1], f.cm[f.root][f.children[w]]) {
		w++
	}
	for w > 1 && f.cm.usesColor(f.children[w-1], f.d) {
		w--
	}

	return w
}

// rotate shifts colors down the admissible prefix and hands d to its end.
// The only Pending slot in the prefix is the entry edge at index 0; after the
// shift it lands at index w-1, where it is replaced by d.
//
// Complexity: O(k·n).
func (f *fan) rotate() error {
	var w = f.rotatable()
	if f.cm.usesColor(f.children[w-1], f.d) || f.cm.usesColor(f.root, f.d) {
		return fmt.Errorf("rotate: color %d not free at root %d and fan end %d: %w",
			f.d, f.root, f.children[w-1], ErrInvariant)
	}

	var (
		colors = make([]int, w)
		i      int
	)
	for i = 0; i < w; i++ {
		colors[i] = f.cm[f.root][f.children[(i+1)%w]]
	}
	for i = w - 1; i >= 0; i-- {
		if colors[i] == Pending {
			colors[i] = f.d
			break
		}
	}
	for i = 0; i < w; i++ {
		f.cm.set(f.root, f.children[i], colors[i])
	}

	return nil
}
