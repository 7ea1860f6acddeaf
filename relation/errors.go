// SPDX-License-Identifier: MIT
// Package relation: sentinel error set.
//
// Every message is prefixed with "relation: ..." for easy grepping. Callers
// MUST branch with errors.Is; context is attached with fmt.Errorf("%s: %w").

package relation

import (
	"errors"
	"fmt"
)

var (
	// ErrEmpty is returned for a nil or zero-sized matrix (n ≥ 1 is required).
	ErrEmpty = errors.New("relation: matrix is empty")

	// ErrNonSquare signals a row whose length differs from the row count.
	ErrNonSquare = errors.New("relation: matrix is not square")

	// ErrNonZeroDiagonal signals a participant related to itself.
	ErrNonZeroDiagonal = errors.New("relation: diagonal not zero")

	// ErrNegativeWeight signals a negative strain weight.
	ErrNegativeWeight = errors.New("relation: negative weight")

	// ErrAsymmetry signals w[i][j] != w[j][i].
	ErrAsymmetry = errors.New("relation: matrix is not symmetric")

	// ErrNameCount signals a name list whose length differs from n.
	ErrNameCount = errors.New("relation: name count mismatch")

	// ErrEmptyName signals an empty display name.
	ErrEmptyName = errors.New("relation: empty name")

	// ErrRaggedRow signals a CSV row whose field count differs from the header.
	ErrRaggedRow = errors.New("relation: ragged row")

	// ErrBadWeight signals a CSV field that is not an integer.
	ErrBadWeight = errors.New("relation: weight is not an integer")
)

// relationErrorf attaches positional context to a sentinel.
func relationErrorf(tag string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", tag, fmt.Sprintf(format, args...), err)
}
