// Package network plans a repeating meeting schedule for a whole
// relationship matrix and reports how good it is.
//
// Pipeline:
//
//  1. Bounds: MaxWeight, MinimumRun (lower bound on any schedule's worst
//     strain) and ApproximationLimit (MinimumRun × ⌊log₂ n³⌋).
//  2. Partition: LayerCount bands (size/2, size], halving size from
//     MaxWeight, plus a final band w ≤ size holding everything lighter.
//  3. Layers: each band is colored and balanced by package layer. Bands are
//     independent, so they may be built concurrently (WithParallelism);
//     results keep band order.
//  4. Interleave: layers are merged from the lightest band to the heaviest,
//     each new layer taking every other position, so heavier relationships
//     recur most often.
//  5. ScheduleWeight: two simulated cycles measure the realized worst strain.
//
// Errors:
//
//   - relation sentinels for malformed input (checked once in New);
//   - coloring.ErrInvariant (wrapped) if a layer fails its coloring checks;
//   - the context error if the planner's context is canceled.
//
// Algorithm packages below network never log. The Planner logs through an
// injected *logrus.Entry and is silent by default.
package network
