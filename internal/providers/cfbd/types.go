package cfbd

// gameResponse is one element of the /games array. Only the fields the page uses are decoded.
type gameResponse struct {
	ID          int    `json:"id"`
	Season      int    `json:"season"`
	Week        int    `json:"week"`
	SeasonType  string `json:"season_type"`
	StartDate   string `json:"start_date"`
	Completed   bool   `json:"completed"`
	NeutralSite bool   `json:"neutral_site"`
	Venue       string `json:"venue"`
	HomeTeam    string `json:"home_team"`
	AwayTeam    string `json:"away_team"`
	HomePoints  *int   `json:"home_points"`
	AwayPoints  *int   `json:"away_points"`
}
