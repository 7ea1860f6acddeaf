// Package coloring implements proper edge coloring of a relationship graph
// by iterative fan rotation: the constructive proof of Vizing's theorem due to
// Misra and Gries. Every call colors one pending edge without ever leaving the
// color map in an improper state.
//
// What:
//
//   - ColorMap: an n×n matrix of edge colors. 0 means "no edge", Pending (-1)
//     means "edge present but not yet colored", positive values are colors.
//   - ColorEdge(cm, root, child): colors the pending edge (root, child) by
//     building a maximal fan at root, inverting the c/d alternating path
//     through root, and rotating the longest admissible sub-fan.
//   - Verify / VerifyComplete: the proper-coloring, symmetry, and
//     completeness checks used by callers and tests.
//
// Guarantees:
//
//   - After every ColorEdge call cm is symmetric and proper: no two colored
//     edges sharing an endpoint hold the same color.
//   - Colors never exceed Δ+2, where Δ is the maximum degree: c is free on
//     the root (c ≤ Δ) and d is the smallest color free on the last fan member
//     other than c (d ≤ Δ+2). Inversion and rotation only reuse c, d, and
//     colors already present.
//   - Only the requested pending edge changes from Pending to a color.
//
// Errors:
//
//   - ErrInvariant wraps every precondition or invariant failure. It signals a
//     programming error upstream (the map was not prepared by NewColorMap, or
//     was mutated outside this package); callers must not retry.
//
// Complexity:
//
//   - ColorEdge: O(Δ·n) for the fan, O(n²) worst case for the alternating path
//     (each step scans one row), O(Δ·n) for the rotation.
//   - Coloring a whole graph with m edges: O(m·n²) worst case.
package coloring
