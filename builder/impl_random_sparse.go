// SPDX-License-Identifier: MIT
// Package: polysched/builder
//
// impl_random_sparse.go - RandomSparse(p): independent trials over all pairs.
//
// Contract:
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng is required for 0 < p < 1 (else ErrNeedRandSource); p=0 and
//     p=1 are deterministic and accept a nil RNG.
//   - Trials run row-major over unordered pairs i < j; the weight of a kept
//     pair is drawn right after its trial.
//
// Complexity: O(n²) trials.

package builder

import (
	"fmt"

	"github.com/katalvlaran/polysched/relation"
)

// RandomSparse returns a Constructor that relates each pair of the network
// independently with probability p.
func RandomSparse(p float64) Constructor {
	return func(m relation.Matrix, cfg builderConfig) error {
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		var (
			n    = len(m)
			i, j int
		)
		for i = 0; i < n; i++ {
			for j = i + 1; j < n; j++ {
				switch {
				case p == probMin:
					continue
				case p == probMax:
				case cfg.rng.Float64() >= p:
					continue
				}
				if err := connect(methodRandomSparse, m, cfg, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
