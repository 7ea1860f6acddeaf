package network

import (
	"github.com/katalvlaran/polysched/relation"
	"github.com/katalvlaran/polysched/schedule"
)

// ScheduleWeight simulates two cycles of s over rel and returns the largest
// strain any relationship reaches. Each day every relationship gains its
// weight, and the ones meeting that day drop back to their weight. The
// result is at least MaxWeight. Meetups of s must name participants of rel.
//
// Complexity: O(D·n²) for D days.
func ScheduleWeight(rel relation.Matrix, s *schedule.Schedule) int {
	var (
		n       = len(rel)
		strain  = rel.Clone()
		worst   = rel.MaxWeight()
		i, j, c int
		m       schedule.Meetup
	)
	for c = 0; c < 2; c++ {
		for _, d := range s.All() {
			for i = 0; i < n; i++ {
				for j = i + 1; j < n; j++ {
					strain[i][j] += rel[i][j]
				}
			}
			for _, m = range d {
				m = schedule.NewMeetup(m.A, m.B)
				strain[m.A][m.B] = rel[m.A][m.B]
			}
			for i = 0; i < n; i++ {
				for j = i + 1; j < n; j++ {
					if strain[i][j] > worst {
						worst = strain[i][j]
					}
				}
			}
		}
	}

	return worst
}
