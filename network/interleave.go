package network

import "github.com/katalvlaran/polysched/schedule"

// Interleave merges per-layer day sequences into one schedule. layers must be
// ordered heaviest band first (the Bands order); they are merged in reverse.
//
// Each new layer is woven into the running schedule by inserting its days at
// every other position, wrapping around its own days until the running
// schedule is covered, and appending leftovers at the end. Layers without
// days are skipped.
//
// Complexity: O(L·D²) for L layers and D final days (slice inserts).
func Interleave(names []string, layers [][]schedule.Day) (*schedule.Schedule, error) {
	var out = schedule.New(names)
	for k := len(layers) - 1; k >= 0; k-- {
		if err := weave(out, layers[k]); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// weave merges days into s in place.
func weave(s *schedule.Schedule, days []schedule.Day) error {
	if len(days) == 0 {
		return nil
	}

	var inc, day int
	for day < len(days) || inc < s.Len() {
		if inc >= s.Len() {
			s.Append(days[day])
			day++
			inc++
			continue
		}
		if err := s.Insert(inc, days[day%len(days)]); err != nil {
			return err
		}
		inc += 2
		day++
	}

	return nil
}
