// Package relation models the weighted relationship network consumed by the
// scheduler: a symmetric n×n integer matrix whose positive entries are strain
// weights and whose zero entries mean "no relationship".
//
// What:
//
//   - Matrix: dense [][]int storage with read-only queries (Size, Weight,
//     Degree, MaxDegree, MaxWeight, MinWeight, Edges, EdgeCount).
//   - Weight bands: Band(lo, hi) and AtMost(limit) carve weight-filtered copies
//     used by the layer partition of the planner.
//   - Validation: Validate and ValidateNames enforce the input contract once at
//     the public boundary, so downstream kernels can stay branch-free.
//   - Ingestion: ReadCSV / WriteCSV for the headered pairwise-weight format.
//
// Contract:
//
//   - Square, n ≥ 1, zero diagonal, non-negative, symmetric.
//   - Participants are identified by index 0..n-1; names are cosmetic.
//
// Errors:
//
//   - ErrEmpty, ErrNonSquare, ErrNonZeroDiagonal, ErrNegativeWeight,
//     ErrAsymmetry, ErrNameCount, ErrEmptyName, ErrRaggedRow, ErrBadWeight.
//
// Complexity:
//
//   - Validate, Band, AtMost, Edges, Clone: O(n²) time.
//   - Degree: O(n). MaxDegree, MaxWeight: O(n²).
package relation
