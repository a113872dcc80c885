package fixture

import (
	"context"

	"github.com/preston-bernstein/msom-squad-service/internal/domain/schedule"
)

const (
	providerName = "fixture"
	fixtureYear  = 2023
)

// Provider returns a static Maryland schedule useful for local runs without an API token.
type Provider struct{}

// New creates a fixture provider.
func New() *Provider {
	return &Provider{}
}

// FetchSchedule returns a deterministic schedule. The query year, when set, is
// stamped on every game; other query fields are ignored.
func (p *Provider) FetchSchedule(ctx context.Context, q schedule.Query) ([]schedule.Game, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	season := fixtureYear
	if q.Year > 0 {
		season = q.Year
	}

	games := []schedule.Game{
		{ID: 401520180, Week: 1, StartDate: "2023-09-02T16:00:00.000Z", Completed: true, Venue: "SECU Stadium", HomeTeam: "Maryland", AwayTeam: "Towson", HomePoints: points(38), AwayPoints: points(6)},
		{ID: 401520190, Week: 2, StartDate: "2023-09-09T19:30:00.000Z", Completed: true, Venue: "Jerry Richardson Stadium", HomeTeam: "Charlotte", AwayTeam: "Maryland", HomePoints: points(20), AwayPoints: points(38)},
		{ID: 401520200, Week: 3, StartDate: "2023-09-15T23:30:00.000Z", Completed: true, Venue: "Scott Stadium", HomeTeam: "Virginia", AwayTeam: "Maryland", HomePoints: points(14), AwayPoints: points(42)},
		{ID: 401520210, Week: 5, StartDate: "2023-09-30T16:00:00.000Z", Completed: true, Venue: "SECU Stadium", HomeTeam: "Maryland", AwayTeam: "Indiana", HomePoints: points(44), AwayPoints: points(17)},
		{ID: 401520220, Week: 7, StartDate: "2023-10-14T19:30:00.000Z", Completed: true, Venue: "SECU Stadium", HomeTeam: "Maryland", AwayTeam: "Illinois", HomePoints: points(24), AwayPoints: points(27)},
		{ID: 401520230, Week: 12, StartDate: "2023-11-18T17:00:00.000Z", Venue: "SHI Stadium", HomeTeam: "Rutgers", AwayTeam: "Maryland"},
		{ID: 401520240, Week: 13, StartDate: "2023-11-25T17:00:00.000Z", Venue: "SECU Stadium", HomeTeam: "Maryland", AwayTeam: "Michigan State"},
	}
	for i := range games {
		games[i].Season = season
		games[i].SeasonType = schedule.SeasonRegular
	}
	return games, nil
}

// Name reports the provider identifier used in logs and metrics.
func (p *Provider) Name() string {
	return providerName
}

func points(n int) *int {
	return &n
}
