package builder

import "github.com/katalvlaran/polysched/relation"

// Sample returns the 8-participant demo network and its names. Weights come
// from {16, 20, 40, 80}; participant 3 (Daisy) has the most relationships.
func Sample() (relation.Matrix, []string) {
	m := relation.Matrix{
		{0, 40, 0, 80, 0, 40, 0, 0},
		{40, 0, 80, 0, 0, 0, 0, 0},
		{0, 80, 0, 16, 0, 0, 0, 0},
		{80, 0, 16, 0, 20, 0, 16, 0},
		{0, 0, 0, 20, 0, 40, 0, 80},
		{40, 0, 0, 0, 40, 0, 40, 0},
		{0, 0, 0, 16, 0, 40, 0, 0},
		{0, 0, 0, 0, 80, 0, 0, 0},
	}
	names := []string{"Alice", "Belle", "Claire", "Daisy", "Emily", "Felix", "Grace", "Holly"}

	return m, names
}
