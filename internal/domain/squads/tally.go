package squads

import (
	"sort"
	"strings"
)

// Tally counts squad-of-the-week awards per roster squad.
// The result has exactly one record per roster squad, in roster order; squads
// that never won report zero and winners outside the roster are not counted.
func Tally(roster Roster, winners Winners) []WinRecord {
	counts := make(map[Squad]int, roster.Len())
	for _, squad := range winners.byWeek {
		counts[squad]++
	}

	records := make([]WinRecord, 0, roster.Len())
	for _, squad := range roster.squads {
		records = append(records, WinRecord{Squad: squad, Wins: counts[squad]})
	}
	return records
}

// SortByName returns a copy of records ordered by squad name (case-sensitive).
func SortByName(records []WinRecord) []WinRecord {
	sorted := make([]WinRecord, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return strings.Compare(string(sorted[i].Squad), string(sorted[j].Squad)) < 0
	})
	return sorted
}
