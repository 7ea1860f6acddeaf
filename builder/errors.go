// SPDX-License-Identifier: MIT
// Package: polysched/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Context is attached with %w at the failing constructor.
//   • Option constructors (WithX) panic on meaningless input; Constructors
//     never panic.

package builder

import "errors"

// ErrTooFewVertices indicates a size parameter below the constructor minimum,
// or a topology that does not fit into the matrix it is applied to.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without WithSeed
// or WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a nil constructor or a generated weight that
// is not a valid relationship weight (negative).
var ErrConstructFailed = errors.New("builder: construction failed")
