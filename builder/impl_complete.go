// SPDX-License-Identifier: MIT
// Package: polysched/builder
//
// impl_complete.go - Complete(k): every pair among 0..k-1.
//
// Edge order is row-major over i < j.

package builder

import "github.com/katalvlaran/polysched/relation"

// Complete returns a Constructor relating every pair of the first k
// participants. Requires 1 ≤ k ≤ n. Complexity: O(k²).
func Complete(k int) Constructor {
	return func(m relation.Matrix, cfg builderConfig) error {
		if err := fits(methodComplete, m, k, minCompleteSize); err != nil {
			return err
		}
		for i := 0; i < k; i++ {
			for j := i + 1; j < k; j++ {
				if err := connect(methodComplete, m, cfg, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
