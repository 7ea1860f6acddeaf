// SPDX-License-Identifier: MIT
// Package: polysched/builder
//
// api.go - public entry point for the builder package.
//
// Design contract:
//   - One orchestrator: BuildNetwork(n, bopts, cons...). Allocates the matrix,
//     resolves cfg, runs cons in order.
//   - Constructors only ever add symmetric edges off the diagonal, so every
//     result satisfies relation.Validate.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical
//     matrices and names.
//   - Later constructors overwrite weights of pairs set by earlier ones.

package builder

import (
	"fmt"

	"github.com/katalvlaran/polysched/relation"
)

// Constructor applies a deterministic mutation to m using the resolved config.
// Constructors validate their parameters first and leave m untouched on error.
type Constructor func(m relation.Matrix, cfg builderConfig) error

// BuildNetwork creates an n-participant matrix, resolves bopts and applies
// every constructor in order. The returned names come from the ID scheme.
//
// Errors:
//   - ErrTooFewVertices if n < 1;
//   - ErrConstructFailed for a nil constructor;
//   - any constructor error, wrapped as "BuildNetwork: %w".
//
// Complexity: O(n²) allocation plus the cost of each constructor.
func BuildNetwork(n int, bopts []BuilderOption, cons ...Constructor) (relation.Matrix, []string, error) {
	if n < minNetworkSize {
		return nil, nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodBuildNetwork, n, minNetworkSize, ErrTooFewVertices)
	}

	m := relation.New(n)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, nil, fmt.Errorf("%s: nil constructor at index %d: %w", methodBuildNetwork, i, ErrConstructFailed)
		}
		if err := fn(m, cfg); err != nil {
			return nil, nil, fmt.Errorf("%s: %w", methodBuildNetwork, err)
		}
	}

	return m, Names(n, cfg.idFn), nil
}

// connect writes one generated weight on (i, j).
func connect(method string, m relation.Matrix, cfg builderConfig, i, j int) error {
	w := cfg.weight()
	if w < 0 {
		return fmt.Errorf("%s: weight %d for (%d,%d): %w", method, w, i, j, ErrConstructFailed)
	}
	m.Connect(i, j, w)

	return nil
}

// fits checks that a k-participant topology with minimum size min fits into m.
func fits(method string, m relation.Matrix, k, min int) error {
	if k < min {
		return fmt.Errorf("%s: k=%d < min=%d: %w", method, k, min, ErrTooFewVertices)
	}
	if k > len(m) {
		return fmt.Errorf("%s: k=%d exceeds network size %d: %w", method, k, len(m), ErrTooFewVertices)
	}

	return nil
}
