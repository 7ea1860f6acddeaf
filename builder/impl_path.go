// SPDX-License-Identifier: MIT
// Package: polysched/builder
//
// impl_path.go - Path(k): 0-1-...-(k-1).

package builder

import "github.com/katalvlaran/polysched/relation"

// Path returns a Constructor relating i with i+1 for i in [0, k-1).
// Requires 2 ≤ k ≤ n. Complexity: O(k).
func Path(k int) Constructor {
	return func(m relation.Matrix, cfg builderConfig) error {
		if err := fits(methodPath, m, k, minPathNodes); err != nil {
			return err
		}
		for i := 0; i+1 < k; i++ {
			if err := connect(methodPath, m, cfg, i, i+1); err != nil {
				return err
			}
		}

		return nil
	}
}
