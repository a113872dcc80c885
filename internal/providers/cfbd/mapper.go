package cfbd

import (
	"strings"

	"github.com/preston-bernstein/msom-squad-service/internal/domain/schedule"
)

func mapGame(g gameResponse) schedule.Game {
	return schedule.Game{
		ID:          g.ID,
		Season:      g.Season,
		Week:        g.Week,
		SeasonType:  mapSeasonType(g.SeasonType),
		StartDate:   g.StartDate,
		Completed:   g.Completed,
		NeutralSite: g.NeutralSite,
		Venue:       strings.TrimSpace(g.Venue),
		HomeTeam:    strings.TrimSpace(g.HomeTeam),
		AwayTeam:    strings.TrimSpace(g.AwayTeam),
		HomePoints:  g.HomePoints,
		AwayPoints:  g.AwayPoints,
	}
}

func mapGames(resp []gameResponse) []schedule.Game {
	if resp == nil {
		return nil
	}
	games := make([]schedule.Game, 0, len(resp))
	for _, g := range resp {
		games = append(games, mapGame(g))
	}
	return games
}

func mapSeasonType(raw string) schedule.SeasonType {
	switch strings.ToLower(raw) {
	case "postseason":
		return schedule.SeasonPostseason
	default:
		return schedule.SeasonRegular
	}
}
