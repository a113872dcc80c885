package page

import (
	"strconv"
	"strings"

	"github.com/preston-bernstein/msom-squad-service/internal/domain/schedule"
	"github.com/preston-bernstein/msom-squad-service/internal/domain/squads"
)

const (
	missingScore  = "N/A"
	awayGameMark  = "-"
	logoPrefix    = "./logos/"
	logoExtension = ".svg"
)

// View is everything the page template needs for one render.
type View struct {
	Title       string             `json:"title"`
	Season      int                `json:"season"`
	Wins        []squads.WinRecord `json:"wins"`
	Games       []GameRow          `json:"games"`
	HasSchedule bool               `json:"hasSchedule"`
}

// TeamCell is a team name with its logo path.
type TeamCell struct {
	Name string `json:"name"`
	Logo string `json:"logo"`
}

// GameRow is one schedule table row.
type GameRow struct {
	Week        int      `json:"week"`
	Home        TeamCell `json:"home"`
	Away        TeamCell `json:"away"`
	HomeScore   string   `json:"homeScore"`
	AwayScore   string   `json:"awayScore"`
	SquadOfWeek string   `json:"squadOfWeek"`
}

// BuildRows turns games into table rows, keeping upstream order.
func BuildRows(games []schedule.Game, winners squads.Winners, homeTeam string) []GameRow {
	rows := make([]GameRow, 0, len(games))
	for _, g := range games {
		rows = append(rows, GameRow{
			Week:        g.Week,
			Home:        teamCell(g.HomeTeam),
			Away:        teamCell(g.AwayTeam),
			HomeScore:   scoreText(g.HomePoints),
			AwayScore:   scoreText(g.AwayPoints),
			SquadOfWeek: squadOfWeek(g, winners, homeTeam),
		})
	}
	return rows
}

// LogoPath resolves a team's logo under ./logos, with every space replaced by an underscore.
// Multi-word names keep all words joined ("Sam Houston State" -> Sam_Houston_State), not only the first gap.
func LogoPath(team string) string {
	return logoPrefix + strings.ReplaceAll(team, " ", "_") + logoExtension
}

func teamCell(name string) TeamCell {
	return TeamCell{Name: name, Logo: LogoPath(name)}
}

func scoreText(points *int) string {
	if points == nil {
		return missingScore
	}
	return strconv.Itoa(*points)
}

// squadOfWeek is "-" when the home program travels, else the week's winner or "".
func squadOfWeek(g schedule.Game, winners squads.Winners, homeTeam string) string {
	if g.IsAwayFor(homeTeam) {
		return awayGameMark
	}
	if squad, ok := winners.ForWeek(g.Week); ok {
		return string(squad)
	}
	return ""
}
