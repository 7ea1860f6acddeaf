// SPDX-License-Identifier: MIT
// Package: relation
//
// matrix.go - the relationship matrix and its read-only queries.
//
// Design:
//   - Matrix is a plain [][]int; callers may build it with literals.
//   - Queries never mutate the receiver; derived matrices are fresh copies.
//   - Only the upper triangle is scanned where symmetry makes it sufficient.

package relation

// Matrix is a symmetric n×n relationship matrix: w[i][j] > 0 is the strain
// weight between participants i and j, zero means no relationship.
type Matrix [][]int

// Edge is an unordered participant pair with its weight, stored with I < J.
type Edge struct {
	I, J   int
	Weight int
}

// New allocates an n×n zero matrix.
// Complexity: O(n²).
func New(n int) Matrix {
	var m = make(Matrix, n)
	var i int
	for i = 0; i < n; i++ {
		m[i] = make([]int, n)
	}

	return m
}

// Size returns the participant count n.
func (m Matrix) Size() int { return len(m) }

// Weight returns w[i][j].
func (m Matrix) Weight(i, j int) int { return m[i][j] }

// Connect sets the symmetric pair w[i][j] = w[j][i] = w.
func (m Matrix) Connect(i, j, w int) {
	m[i][j] = w
	m[j][i] = w
}

// Clone returns a deep copy; rows never alias the receiver.
// Complexity: O(n²).
func (m Matrix) Clone() Matrix {
	var cp = make(Matrix, len(m))
	var r int
	for r = 0; r < len(m); r++ {
		cp[r] = append([]int(nil), m[r]...)
	}

	return cp
}

// Degree returns how many relationships participant i has.
// Complexity: O(n).
func (m Matrix) Degree(i int) int {
	var (
		deg int
		j   int
	)
	for j = 0; j < len(m[i]); j++ {
		if m[i][j] > 0 {
			deg++
		}
	}

	return deg
}

// MaxDegree returns the largest Degree over all participants (0 if none).
// Complexity: O(n²).
func (m Matrix) MaxDegree() int {
	var (
		best int
		deg  int
		i    int
	)
	for i = 0; i < len(m); i++ {
		deg = m.Degree(i)
		if deg > best {
			best = deg
		}
	}

	return best
}

// MaxWeight returns the largest single weight (0 for an edgeless matrix).
// Complexity: O(n²) over the upper triangle.
func (m Matrix) MaxWeight() int {
	var (
		best int
		i, j int
	)
	for i = 0; i < len(m); i++ {
		for j = i + 1; j < len(m); j++ {
			if m[i][j] > best {
				best = m[i][j]
			}
		}
	}

	return best
}

// MinWeight returns the smallest positive weight incident to participant i,
// or 0 when i has no relationships.
// Complexity: O(n).
func (m Matrix) MinWeight(i int) int {
	var (
		low int
		j   int
	)
	for j = 0; j < len(m[i]); j++ {
		if m[i][j] > 0 && (low == 0 || m[i][j] < low) {
			low = m[i][j]
		}
	}

	return low
}

// EdgeCount returns the number of relationships (unordered pairs).
// Complexity: O(n²).
func (m Matrix) EdgeCount() int {
	var (
		count int
		i, j  int
	)
	for i = 0; i < len(m); i++ {
		for j = i + 1; j < len(m); j++ {
			if m[i][j] > 0 {
				count++
			}
		}
	}

	return count
}

// Edges lists every relationship in row-major upper-triangle order
// ((0,1), (0,2), …, (1,2), …). The order is stable for a fixed matrix.
// Complexity: O(n²).
func (m Matrix) Edges() []Edge {
	var (
		out  = make([]Edge, 0, len(m))
		i, j int
	)
	for i = 0; i < len(m); i++ {
		for j = i + 1; j < len(m); j++ {
			if m[i][j] > 0 {
				out = append(out, Edge{I: i, J: j, Weight: m[i][j]})
			}
		}
	}

	return out
}

// Band returns a copy that keeps only edges with lo < w ≤ hi.
// Complexity: O(n²).
func (m Matrix) Band(lo, hi int) Matrix {
	return m.filter(func(w int) bool { return w > lo && w <= hi })
}

// AtMost returns a copy that keeps only edges with w ≤ limit.
// Complexity: O(n²).
func (m Matrix) AtMost(limit int) Matrix {
	return m.filter(func(w int) bool { return w <= limit })
}

// filter copies the entries accepted by keep, mirroring the upper triangle.
func (m Matrix) filter(keep func(w int) bool) Matrix {
	var (
		out  = New(len(m))
		i, j int
	)
	for i = 0; i < len(m); i++ {
		for j = i + 1; j < len(m); j++ {
			if m[i][j] > 0 && keep(m[i][j]) {
				out.Connect(i, j, m[i][j])
			}
		}
	}

	return out
}
