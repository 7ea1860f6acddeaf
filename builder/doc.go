// Package builder generates relationship matrices for tests, benchmarks and
// the command-line driver.
//
// The package offers the following key components:
//
//   - BuildNetwork: allocates an n-participant matrix, resolves options and
//     applies Constructors in order.
//   - Constructors: Star, Path, Cycle, Complete (fixed topologies over the
//     first k participants) and RandomSparse (independent pair trials).
//   - Options (BuilderOption): WithSeed/WithRand for reproducible draws,
//     WithWeightFn and its shorthands for edge weights, WithIDScheme for
//     participant names.
//   - Sample: the 8-participant demo network with its names.
//
// Guarantees:
//
//   - Every produced matrix passes relation.Validate.
//   - Same options, seed and constructor order ⇒ identical matrices.
//   - Option constructors panic on meaningless input; Constructors never panic
//     and return the sentinels from errors.go.
package builder
