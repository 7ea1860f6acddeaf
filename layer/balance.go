package layer

// waitPeak is the worst position of an order: the color (day) at start waits
// until end (unrolled index) for its next occurrence.
type waitPeak struct {
	weight int
	day    int
	start  int
	end    int
}

// maxWait scans order and returns its first position with the largest wait
// weight. An empty order yields the zero peak.
// Complexity: O(len(order)²).
func maxWait(order []int, weights map[int]int) waitPeak {
	var (
		peak   waitPeak
		size   = len(order)
		i, end int
		w      int
	)
	for i = 0; i < size; i++ {
		end = i + 1
		for order[end%size] != order[i] {
			end++
		}
		w = weights[order[i]] * (end - i)
		if w > peak.weight {
			peak = waitPeak{weight: w, day: order[i], start: i, end: end}
		}
	}

	return peak
}

// balance fills l.order, l.peak and l.insertions. It starts from the
// ascending color order and greedily splits the worst gap.
func (l *Layer) balance() {
	l.order = l.colors.Colors()

	var (
		peak = maxWait(l.order, l.dayWeights)
		next waitPeak
		at   int
	)
	for peak.end-peak.start > 2 {
		at = (peak.start + peak.end + 1) / 2 % len(l.order)
		l.order = insertAt(l.order, at, peak.day)

		next = maxWait(l.order, l.dayWeights)
		if next.weight >= peak.weight {
			l.order = removeAt(l.order, at)
			break
		}
		peak = next
		l.insertions++
	}
	l.peak = peak
}

func insertAt(s []int, i, v int) []int {
	s = append(s, 0)
	copy(s[i+1:], s[i:])
	s[i] = v

	return s
}

func removeAt(s []int, i int) []int {
	return append(s[:i], s[i+1:]...)
}
