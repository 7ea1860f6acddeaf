// SPDX-License-Identifier: MIT
// Package: relation
//
// validate.go - the single source of truth for the input contract.
//
// Order of checks (and therefore error priority):
//   shape (ErrEmpty, ErrNonSquare) -> diagonal -> negativity -> symmetry.
//
// Deterministic, allocation-free, O(n²).

package relation

// Validate enforces: n ≥ 1, square, zero diagonal, no negative weights,
// and w[i][j] == w[j][i].
//
// Complexity: O(n²) time, O(1) space.
func Validate(m Matrix) error {
	var n = len(m)
	if n == 0 {
		return ErrEmpty
	}

	var (
		i, j int
	)
	// Stage 1: shape.
	for i = 0; i < n; i++ {
		if len(m[i]) != n {
			return relationErrorf("Validate", ErrNonSquare, "row %d has %d columns, want %d", i, len(m[i]), n)
		}
	}

	// Stage 2: diagonal.
	for i = 0; i < n; i++ {
		if m[i][i] != 0 {
			return relationErrorf("Validate", ErrNonZeroDiagonal, "w[%d][%d]=%d", i, i, m[i][i])
		}
	}

	// Stage 3: negativity over the full matrix.
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if m[i][j] < 0 {
				return relationErrorf("Validate", ErrNegativeWeight, "w[%d][%d]=%d", i, j, m[i][j])
			}
		}
	}

	// Stage 4: symmetry on the upper triangle.
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if m[i][j] != m[j][i] {
				return relationErrorf("Validate", ErrAsymmetry, "w[%d][%d]=%d, w[%d][%d]=%d", i, j, m[i][j], j, i, m[j][i])
			}
		}
	}

	return nil
}

// ValidateNames accepts nil (names are optional). Otherwise len(names) must
// equal n and every name must be non-empty. Duplicates are allowed; names are
// only used for display.
//
// Complexity: O(n).
func ValidateNames(names []string, n int) error {
	if names == nil {
		return nil
	}
	if len(names) != n {
		return relationErrorf("ValidateNames", ErrNameCount, "got %d names for %d participants", len(names), n)
	}

	var i int
	for i = 0; i < n; i++ {
		if names[i] == "" {
			return relationErrorf("ValidateNames", ErrEmptyName, "index %d", i)
		}
	}

	return nil
}
