package squads

import "sort"

// Winners maps week numbers (1-based) to that week's squad of the week.
// Weeks without an entry had no squad of the week.
type Winners struct {
	byWeek map[int]Squad
}

// NewWinners builds an immutable winners table from a week-keyed map.
func NewWinners(byWeek map[int]Squad) Winners {
	cp := make(map[int]Squad, len(byWeek))
	for week, squad := range byWeek {
		cp[week] = squad
	}
	return Winners{byWeek: cp}
}

// DefaultWinners is the 2023 table as awarded so far.
func DefaultWinners() Winners {
	return NewWinners(map[int]Squad{1: "KAOS"})
}

// ForWeek returns the squad of the week for the given week, if any.
func (w Winners) ForWeek(week int) (Squad, bool) {
	s, ok := w.byWeek[week]
	return s, ok
}

// Weeks returns the awarded week numbers in ascending order.
func (w Winners) Weeks() []int {
	weeks := make([]int, 0, len(w.byWeek))
	for week := range w.byWeek {
		weeks = append(weeks, week)
	}
	sort.Ints(weeks)
	return weeks
}

// Len reports how many weeks have a squad of the week.
func (w Winners) Len() int {
	return len(w.byWeek)
}

// Unknown returns winners entries naming squads that are not on the roster, keyed by week.
func (w Winners) Unknown(roster Roster) map[int]Squad {
	out := make(map[int]Squad)
	for week, squad := range w.byWeek {
		if !roster.Contains(squad) {
			out[week] = squad
		}
	}
	return out
}
