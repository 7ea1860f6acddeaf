// SPDX-License-Identifier: MIT
// Package: polysched/builder
//
// impl_cycle.go - Cycle(k): the path 0..k-1 closed by (k-1, 0).

package builder

import "github.com/katalvlaran/polysched/relation"

// Cycle returns a Constructor relating i with (i+1) mod k.
// Requires 3 ≤ k ≤ n. Complexity: O(k).
func Cycle(k int) Constructor {
	return func(m relation.Matrix, cfg builderConfig) error {
		if err := fits(methodCycle, m, k, minCycleNodes); err != nil {
			return err
		}
		for i := 0; i < k; i++ {
			if err := connect(methodCycle, m, cfg, i, (i+1)%k); err != nil {
				return err
			}
		}

		return nil
	}
}
