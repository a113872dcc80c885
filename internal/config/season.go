package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/preston-bernstein/msom-squad-service/internal/domain/schedule"
	"github.com/preston-bernstein/msom-squad-service/internal/domain/squads"
)

const titleFormat = "MSOM Squad of the Week %d Wins"

// WinnerEntry names the squad of the week for one game week.
type WinnerEntry struct {
	Week  int    `koanf:"week"`
	Squad string `koanf:"squad"`
}

// Season is the season definition table: which schedule to fetch, which
// program is home, and who won squad of the week so far.
type Season struct {
	Year       int           `koanf:"year"`
	SeasonType string        `koanf:"season_type"`
	Team       string        `koanf:"team"`
	HomeTeam   string        `koanf:"home_team"`
	Title      string        `koanf:"title"`
	Roster     []string      `koanf:"roster"`
	Winners    []WinnerEntry `koanf:"winners"`
}

// DefaultSeason returns the built-in 2023 Maryland season table.
func DefaultSeason() Season {
	roster := squads.DefaultRoster().Squads()
	names := make([]string, 0, len(roster))
	for _, s := range roster {
		names = append(names, string(s))
	}

	defaults := squads.DefaultWinners()
	winners := make([]WinnerEntry, 0, defaults.Len())
	for _, week := range defaults.Weeks() {
		squad, _ := defaults.ForWeek(week)
		winners = append(winners, WinnerEntry{Week: week, Squad: string(squad)})
	}

	return Season{
		Year:       defaultSeasonYear,
		SeasonType: defaultSeasonType,
		Team:       defaultSeasonTeam,
		HomeTeam:   defaultHomeTeam,
		Roster:     names,
		Winners:    winners,
	}
}

// LoadSeason builds the season table by layering, low to high:
//  1. DefaultSeason
//  2. YAML file named by SEASON_CONFIG, if set
//  3. SEASON_YEAR, SEASON_TYPE, SEASON_TEAM, SEASON_HOME_TEAM, SEASON_TITLE
func LoadSeason() (Season, error) {
	k := koanf.New(".")

	if path := os.Getenv(envSeasonConfig); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return Season{}, fmt.Errorf("%w: %s: %v", ErrLoadSeason, path, err)
		}
	}

	if err := k.Load(env.Provider(envSeasonPrefix, ".", seasonEnvKey), nil); err != nil {
		return Season{}, fmt.Errorf("%w: env: %v", ErrLoadSeason, err)
	}

	// Decode into a zero value and merge defaults afterwards so a shorter
	// roster or winners list replaces the default one instead of overlaying it.
	var loaded Season
	if err := k.UnmarshalWithConf("", &loaded, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return Season{}, fmt.Errorf("%w: %v", ErrLoadSeason, err)
	}

	season := mergeSeason(DefaultSeason(), loaded, k.Exists("roster"), k.Exists("winners"))
	if err := season.Validate(); err != nil {
		return Season{}, err
	}
	return season, nil
}

// seasonEnvKey maps SEASON_* variables to table keys; anything else is ignored.
func seasonEnvKey(name string) string {
	switch strings.TrimPrefix(name, envSeasonPrefix) {
	case "YEAR":
		return "year"
	case "TYPE":
		return "season_type"
	case "TEAM":
		return "team"
	case "HOME_TEAM":
		return "home_team"
	case "TITLE":
		return "title"
	default:
		return ""
	}
}

func mergeSeason(base, loaded Season, hasRoster, hasWinners bool) Season {
	if loaded.Year != 0 {
		base.Year = loaded.Year
	}
	if s := strings.TrimSpace(loaded.SeasonType); s != "" {
		base.SeasonType = strings.ToLower(s)
	}
	if s := strings.TrimSpace(loaded.Team); s != "" {
		base.Team = s
	}
	if s := strings.TrimSpace(loaded.HomeTeam); s != "" {
		base.HomeTeam = s
	}
	if s := strings.TrimSpace(loaded.Title); s != "" {
		base.Title = s
	}
	if hasRoster {
		base.Roster = loaded.Roster
	}
	if hasWinners {
		base.Winners = loaded.Winners
	}
	return base
}

// Validate checks the table for values that would break rendering.
func (s Season) Validate() error {
	if s.Year <= 0 {
		return fmt.Errorf("%w: year must be positive, got %d", ErrInvalidSeason, s.Year)
	}
	switch schedule.SeasonType(s.SeasonType) {
	case schedule.SeasonRegular, schedule.SeasonPostseason:
	default:
		return fmt.Errorf("%w: unknown season type %q", ErrInvalidSeason, s.SeasonType)
	}
	if len(s.Roster) == 0 {
		return fmt.Errorf("%w: roster must not be empty", ErrInvalidSeason)
	}

	seen := make(map[string]struct{}, len(s.Roster))
	for _, name := range s.Roster {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("%w: roster contains an empty squad name", ErrInvalidSeason)
		}
		if _, dup := seen[name]; dup {
			return fmt.Errorf("%w: duplicate squad %q", ErrInvalidSeason, name)
		}
		seen[name] = struct{}{}
	}

	weeks := make(map[int]struct{}, len(s.Winners))
	for _, w := range s.Winners {
		if w.Week < 1 {
			return fmt.Errorf("%w: winner week must be >= 1, got %d", ErrInvalidSeason, w.Week)
		}
		if _, dup := weeks[w.Week]; dup {
			return fmt.Errorf("%w: duplicate winner for week %d", ErrInvalidSeason, w.Week)
		}
		weeks[w.Week] = struct{}{}
	}
	return nil
}

// Query returns the upstream schedule query for this season.
func (s Season) Query() schedule.Query {
	return schedule.Query{
		Year:       s.Year,
		SeasonType: schedule.SeasonType(s.SeasonType),
		Team:       s.Team,
	}
}

// PageTitle returns the configured title or one derived from the year.
func (s Season) PageTitle() string {
	if s.Title != "" {
		return s.Title
	}
	return fmt.Sprintf(titleFormat, s.Year)
}

// SquadRoster converts the configured names into a domain roster.
func (s Season) SquadRoster() squads.Roster {
	names := make([]squads.Squad, 0, len(s.Roster))
	for _, name := range s.Roster {
		names = append(names, squads.Squad(name))
	}
	return squads.NewRoster(names...)
}

// SquadWinners converts the configured entries into a week-keyed winners table.
func (s Season) SquadWinners() squads.Winners {
	byWeek := make(map[int]squads.Squad, len(s.Winners))
	for _, w := range s.Winners {
		byWeek[w.Week] = squads.Squad(w.Squad)
	}
	return squads.NewWinners(byWeek)
}
