package builder

import (
	"fmt"
	"math/rand"
)

// WeightFn produces a relationship weight given an optional RNG. It must be
// deterministic for a given RNG state and never return a negative value.
type WeightFn func(rng *rand.Rand) int

// DefaultWeightFn always returns DefaultEdgeWeight.
func DefaultWeightFn(_ *rand.Rand) int {
	return DefaultEdgeWeight
}

// ConstantWeightFn returns a WeightFn that always yields value.
// Panics if value < 1.
func ConstantWeightFn(value int) WeightFn {
	if value < 1 {
		panic(fmt.Sprintf("ConstantWeightFn: value must be ≥ 1, got %d", value))
	}
	return func(_ *rand.Rand) int {
		return value
	}
}

// UniformWeightFn samples uniformly in [min, max] inclusive. With a nil RNG
// it yields min. Panics unless 1 ≤ min ≤ max.
func UniformWeightFn(min, max int) WeightFn {
	if min < 1 || max < min {
		panic(fmt.Sprintf("UniformWeightFn: require 1 ≤ min ≤ max, got min=%d, max=%d", min, max))
	}
	return func(rng *rand.Rand) int {
		if rng == nil || max == min {
			return min
		}
		return min + rng.Intn(max-min+1)
	}
}

// IncreasingWeightFn yields start, start+step, start+2·step, … on successive
// calls, ignoring the RNG. Useful for stars whose leaves have increasing
// strain. Panics unless start ≥ 1 and step ≥ 0.
//
// The returned function is stateful; build a new one per network.
func IncreasingWeightFn(start, step int) WeightFn {
	if start < 1 || step < 0 {
		panic(fmt.Sprintf("IncreasingWeightFn: require start ≥ 1, step ≥ 0, got start=%d, step=%d", start, step))
	}
	var next = start
	return func(_ *rand.Rand) int {
		w := next
		next += step
		return w
	}
}

// WithConstantWeight sets a fixed edge weight via ConstantWeightFn.
func WithConstantWeight(w int) BuilderOption {
	return WithWeightFn(ConstantWeightFn(w))
}

// WithUniformWeight sets weights ∼ U[min,max] via UniformWeightFn.
func WithUniformWeight(min, max int) BuilderOption {
	return WithWeightFn(UniformWeightFn(min, max))
}

// WithIncreasingWeight sets weights start, start+step, … via IncreasingWeightFn.
func WithIncreasingWeight(start, step int) BuilderOption {
	return WithWeightFn(IncreasingWeightFn(start, step))
}
