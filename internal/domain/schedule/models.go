package schedule

// SeasonType mirrors the upstream season segment filter.
type SeasonType string

const (
	SeasonRegular    SeasonType = "regular"
	SeasonPostseason SeasonType = "postseason"
)

// Query selects which games a provider should return.
type Query struct {
	Year       int
	SeasonType SeasonType
	Team       string
}

// Game is one scheduled or played game. Points are nil until the upstream reports them.
type Game struct {
	ID          int        `json:"id"`
	Season      int        `json:"season"`
	Week        int        `json:"week"`
	SeasonType  SeasonType `json:"seasonType"`
	StartDate   string     `json:"startDate,omitempty"`
	Completed   bool       `json:"completed"`
	NeutralSite bool       `json:"neutralSite,omitempty"`
	Venue       string     `json:"venue,omitempty"`
	HomeTeam    string     `json:"homeTeam"`
	AwayTeam    string     `json:"awayTeam"`
	HomePoints  *int       `json:"homePoints"`
	AwayPoints  *int       `json:"awayPoints"`
}

// IsAwayFor reports whether team played this game on the road.
func (g Game) IsAwayFor(team string) bool {
	return g.AwayTeam == team
}
