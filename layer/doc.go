// Package layer colors one weight band of a relationship matrix and turns the
// coloring into a balanced cyclic day order.
//
// Build runs coloring.ColorEdge once per edge (row-major, i < j), checks the
// finished ColorMap, derives the weight of every color class (its heaviest
// edge) and then balances the order of days with a greedy local search:
//
//   - the wait weight of a position is dayWeight × gap, gap being the cyclic
//     distance to the next occurrence of the same color;
//   - the color with the largest wait weight gets a duplicate in the middle of
//     its gap, at (start+end+1)/2 mod len(order);
//   - a duplicate is kept only when the new maximum is strictly smaller, and
//     the search ends when it is not or when the worst gap is already ≤ 2.
//
// A Layer is immutable after Build and safe for concurrent readers.
package layer
