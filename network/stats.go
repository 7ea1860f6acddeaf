package network

import "github.com/katalvlaran/polysched/schedule"

// Stats summarizes a planned schedule against the network's bounds.
type Stats struct {
	Participants       int
	Relationships      int
	Layers             int
	Days               int
	Weight             int
	MinimumRun         int
	ApproximationLimit int
	// Performance is Weight as a percentage of MinimumRun, rounded down;
	// 0 when MinimumRun is 0.
	Performance int
}

// WithinBounds reports MinimumRun ≤ Weight ≤ ApproximationLimit.
func (s Stats) WithinBounds() bool {
	return s.MinimumRun <= s.Weight && s.Weight <= s.ApproximationLimit
}

// Stats measures s on this network.
// Complexity: O(D·n²) for D days.
func (p *Planner) Stats(s *schedule.Schedule) Stats {
	var st = Stats{
		Participants:       len(p.rel),
		Relationships:      p.rel.EdgeCount(),
		Layers:             p.LayerCount() + 1,
		Days:               s.Len(),
		Weight:             p.ScheduleWeight(s),
		MinimumRun:         p.MinimumRun(),
		ApproximationLimit: p.ApproximationLimit(),
	}
	if st.MinimumRun > 0 {
		st.Performance = st.Weight * 100 / st.MinimumRun
	}

	return st
}
