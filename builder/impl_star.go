// SPDX-License-Identifier: MIT
// Package: polysched/builder
//
// impl_star.go - Star(k): participant 0 related to 1..k-1.
//
// Contract:
//   - 2 ≤ k ≤ n (else ErrTooFewVertices).
//   - Spokes are emitted in increasing leaf order; weights are drawn in that
//     order, so IncreasingWeightFn yields increasing leaf weights.
//
// Complexity: O(k).

package builder

import "github.com/katalvlaran/polysched/relation"

// Star returns a Constructor relating the hub 0 with leaves 1..k-1.
func Star(k int) Constructor {
	return func(m relation.Matrix, cfg builderConfig) error {
		if err := fits(methodStar, m, k, minStarNodes); err != nil {
			return err
		}
		for i := 1; i < k; i++ {
			if err := connect(methodStar, m, cfg, 0, i); err != nil {
				return err
			}
		}

		return nil
	}
}
