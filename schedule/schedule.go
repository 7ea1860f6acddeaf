package schedule

import (
	"errors"
	"fmt"
	"iter"
	"strconv"
	"strings"
)

// ErrIndexOutOfRange is returned by Insert for a position outside [0, Len].
var ErrIndexOutOfRange = errors.New("schedule: index out of range")

// Meetup is an unordered participant pair with A < B.
type Meetup struct {
	A, B int
}

// NewMeetup orders the endpoints so that A < B.
func NewMeetup(a, b int) Meetup {
	if a > b {
		a, b = b, a
	}
	return Meetup{A: a, B: b}
}

// Day is the set of meetups held on one day.
type Day []Meetup

// Has reports whether the pair (a, b) meets on this day.
func (d Day) Has(a, b int) bool {
	var m = NewMeetup(a, b)
	for _, x := range d {
		if x == m {
			return true
		}
	}
	return false
}

// Disjoint reports whether no participant appears in two meetups.
func (d Day) Disjoint() bool {
	var seen = make(map[int]struct{}, 2*len(d))
	for _, m := range d {
		if _, ok := seen[m.A]; ok {
			return false
		}
		if _, ok := seen[m.B]; ok {
			return false
		}
		seen[m.A] = struct{}{}
		seen[m.B] = struct{}{}
	}
	return true
}

// Schedule is an ordered, repeating cycle of days.
type Schedule struct {
	days  []Day
	names []string
}

// New returns an empty schedule. names may be nil; when present it is used
// to render participant indices.
func New(names []string) *Schedule {
	return &Schedule{names: names}
}

// Len returns the cycle length in days.
func (s *Schedule) Len() int { return len(s.days) }

// Append adds d at the end of the cycle.
func (s *Schedule) Append(d Day) {
	s.days = append(s.days, d)
}

// Insert places d at position i, shifting later days right. i == Len appends.
func (s *Schedule) Insert(i int, d Day) error {
	if i < 0 || i > len(s.days) {
		return fmt.Errorf("Insert: %d not in [0,%d]: %w", i, len(s.days), ErrIndexOutOfRange)
	}
	s.days = append(s.days, nil)
	copy(s.days[i+1:], s.days[i:])
	s.days[i] = d

	return nil
}

// Day returns the i-th day.
func (s *Schedule) Day(i int) Day { return s.days[i] }

// Days returns the days in cycle order. The outer slice is a copy.
func (s *Schedule) Days() []Day {
	return append([]Day(nil), s.days...)
}

// All iterates days in cycle order with their zero-based position.
func (s *Schedule) All() iter.Seq2[int, Day] {
	return func(yield func(int, Day) bool) {
		for i, d := range s.days {
			if !yield(i, d) {
				return
			}
		}
	}
}

// Names returns the display names, or nil.
func (s *Schedule) Names() []string { return s.names }

// Name resolves participant i to its display name, falling back to the
// decimal index when no names were given.
func (s *Schedule) Name(i int) string {
	if s.names != nil && i >= 0 && i < len(s.names) {
		return s.names[i]
	}
	return strconv.Itoa(i)
}

// Occurrences counts the days on which (a, b) meet within one cycle.
func (s *Schedule) Occurrences(a, b int) int {
	var count int
	for _, d := range s.days {
		if d.Has(a, b) {
			count++
		}
	}
	return count
}

// MeetupCount returns the total number of meetups in one cycle.
func (s *Schedule) MeetupCount() int {
	var count int
	for _, d := range s.days {
		count += len(d)
	}
	return count
}

// String renders the cycle as numbered days:
//
//	DAY #1:
//		Alice and Belle meet
func (s *Schedule) String() string {
	var b strings.Builder
	for i, d := range s.days {
		fmt.Fprintf(&b, "DAY #%d:\n", i+1)
		for _, m := range d {
			fmt.Fprintf(&b, "\t%s and %s meet\n", s.Name(m.A), s.Name(m.B))
		}
	}
	return b.String()
}
