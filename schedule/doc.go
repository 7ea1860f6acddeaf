// Package schedule holds the repeating meeting plan produced by the planner:
// an ordered cycle of days, each an unordered set of meetups between two
// participants.
//
// Key types:
//
//   - Meetup: an unordered participant pair stored as (A, B) with A < B.
//   - Day:    the meetups held on one day; pairwise vertex-disjoint when it
//     comes from a proper edge coloring.
//   - Schedule: the ordered cycle plus an optional parallel name list used
//     only for rendering.
//
// Order matters: the schedule repeats from the last day back to the first.
// Days may be shared between positions (the interleave step reuses a layer's
// days); treat them as read-only once added.
package schedule
