package testutil

import (
	"github.com/preston-bernstein/msom-squad-service/internal/domain/schedule"
)

// Points returns a pointer to n for building scored games.
func Points(n int) *int {
	return &n
}

// SampleGame returns a regular-season 2023 game fixture.
func SampleGame(week int, home, away string, homePoints, awayPoints *int) schedule.Game {
	return schedule.Game{
		ID:         400000000 + week,
		Season:     2023,
		Week:       week,
		SeasonType: schedule.SeasonRegular,
		HomeTeam:   home,
		AwayTeam:   away,
		HomePoints: homePoints,
		AwayPoints: awayPoints,
	}
}

// SampleSchedule returns three games: a scored home game in week 1, a road
// game at the home program in week 2 and an unscored home game in week 3.
func SampleSchedule() []schedule.Game {
	return []schedule.Game{
		SampleGame(1, "Maryland", "Towson", Points(38), Points(6)),
		SampleGame(2, "Virginia", "Maryland", Points(14), Points(42)),
		SampleGame(3, "Maryland", "Michigan State", nil, nil),
	}
}
