package network

import "github.com/katalvlaran/polysched/relation"

// MinimumRun is a lower bound on the worst strain of any schedule for rel:
// the largest of MaxWeight and, per participant, degree × lightest weight.
// An all-zero matrix gives 0.
// Complexity: O(n²).
func MinimumRun(rel relation.Matrix) int {
	var (
		best = rel.MaxWeight()
		i    int
		run  int
	)
	for i = 0; i < len(rel); i++ {
		run = rel.Degree(i) * rel.MinWeight(i)
		if run > best {
			best = run
		}
	}

	return best
}

// ApproximationLimit is MinimumRun × ⌊log₂ n³⌋, the guaranteed ceiling on
// the strain of a single-band plan.
// Complexity: O(n²).
func ApproximationLimit(rel relation.Matrix) int {
	var n = len(rel)
	return MinimumRun(rel) * halvings(n*n*n)
}

// LayerCount is the number of halved bands carved before the final band:
// ⌊log₂((maxDegree+1)/3)⌋, or 0 when that quotient is below 2.
// Complexity: O(n²).
func LayerCount(rel relation.Matrix) int {
	return halvings((rel.MaxDegree() + 1) / 3)
}

// halvings counts how often x can be halved while it is at least 2.
func halvings(x int) int {
	var count int
	for x >= 2 {
		count++
		x /= 2
	}

	return count
}
