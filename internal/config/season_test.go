package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/smartystreets/goconvey/convey"

	"github.com/preston-bernstein/msom-squad-service/internal/config"
	"github.com/preston-bernstein/msom-squad-service/internal/domain/schedule"
	"github.com/preston-bernstein/msom-squad-service/internal/domain/squads"
)

func TestSeasonLoader(t *testing.T) {
	convey.Convey("Given a season loader", t, func() {
		clearSeasonEnv(t)

		convey.Convey("When loading with defaults only", func() {
			season, err := config.LoadSeason()

			convey.Convey("Then it should return the built-in season", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(season.Year, convey.ShouldEqual, 2023)
				convey.So(season.SeasonType, convey.ShouldEqual, "regular")
				convey.So(season.Team, convey.ShouldEqual, "maryland")
				convey.So(season.HomeTeam, convey.ShouldEqual, "Maryland")
				convey.So(season.Roster, convey.ShouldHaveLength, 8)
				convey.So(season.Winners, convey.ShouldResemble, []config.WinnerEntry{{Week: 1, Squad: "KAOS"}})
				convey.So(season.PageTitle(), convey.ShouldEqual, "MSOM Squad of the Week 2023 Wins")
			})
		})

		convey.Convey("When environment overrides are set", func() {
			t.Setenv("SEASON_YEAR", "2024")
			t.Setenv("SEASON_TYPE", "Postseason")
			t.Setenv("SEASON_TEAM", "navy")
			t.Setenv("SEASON_HOME_TEAM", "Navy")
			t.Setenv("SEASON_TITLE", "Bowl Week")
			t.Setenv("SEASON_UNRELATED", "ignored")

			season, err := config.LoadSeason()

			convey.Convey("Then the overrides replace the defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(season.Year, convey.ShouldEqual, 2024)
				convey.So(season.SeasonType, convey.ShouldEqual, "postseason")
				convey.So(season.Team, convey.ShouldEqual, "navy")
				convey.So(season.HomeTeam, convey.ShouldEqual, "Navy")
				convey.So(season.PageTitle(), convey.ShouldEqual, "Bowl Week")
				convey.So(season.Query(), convey.ShouldResemble, schedule.Query{Year: 2024, SeasonType: schedule.SeasonPostseason, Team: "navy"})
			})
		})

		convey.Convey("When a YAML file is provided", func() {
			path := writeSeasonFile(t, `
year: 2022
home_team: Maryland
roster: [Tubas, KAOS]
winners:
  - week: 2
    squad: Tubas
  - week: 4
    squad: KAOS
`)
			t.Setenv("SEASON_CONFIG", path)

			season, err := config.LoadSeason()

			convey.Convey("Then the file replaces roster and winners", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(season.Year, convey.ShouldEqual, 2022)
				convey.So(season.Roster, convey.ShouldResemble, []string{"Tubas", "KAOS"})
				convey.So(season.Team, convey.ShouldEqual, "maryland")

				winners := season.SquadWinners()
				squad, ok := winners.ForWeek(4)
				convey.So(ok, convey.ShouldBeTrue)
				convey.So(squad, convey.ShouldEqual, squads.Squad("KAOS"))
				_, ok = winners.ForWeek(1)
				convey.So(ok, convey.ShouldBeFalse)
			})

			convey.Convey("And env still wins over the file", func() {
				t.Setenv("SEASON_YEAR", "2021")
				season, err := config.LoadSeason()
				convey.So(err, convey.ShouldBeNil)
				convey.So(season.Year, convey.ShouldEqual, 2021)
			})
		})

		convey.Convey("When the file lists no winners", func() {
			t.Setenv("SEASON_CONFIG", writeSeasonFile(t, "winners: []\n"))

			season, err := config.LoadSeason()

			convey.Convey("Then the winners table is empty, not defaulted", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(season.Winners, convey.ShouldBeEmpty)
				convey.So(season.SquadRoster().Len(), convey.ShouldEqual, 8)
			})
		})

		convey.Convey("When the file does not exist", func() {
			t.Setenv("SEASON_CONFIG", filepath.Join(t.TempDir(), "missing.yaml"))

			_, err := config.LoadSeason()

			convey.Convey("Then a load error is returned", func() {
				convey.So(errors.Is(err, config.ErrLoadSeason), convey.ShouldBeTrue)
			})
		})

		convey.Convey("When the file duplicates a winner week", func() {
			t.Setenv("SEASON_CONFIG", writeSeasonFile(t, `
winners:
  - {week: 3, squad: Tubas}
  - {week: 3, squad: Saxes}
`))

			_, err := config.LoadSeason()

			convey.Convey("Then validation fails", func() {
				convey.So(errors.Is(err, config.ErrInvalidSeason), convey.ShouldBeTrue)
			})
		})
	})
}

func TestSeasonValidate(t *testing.T) {
	convey.Convey("Given the default season", t, func() {
		base := config.DefaultSeason()

		convey.Convey("It is valid", func() {
			convey.So(base.Validate(), convey.ShouldBeNil)
		})

		convey.Convey("A non-positive year is rejected", func() {
			base.Year = 0
			convey.So(errors.Is(base.Validate(), config.ErrInvalidSeason), convey.ShouldBeTrue)
		})

		convey.Convey("An unknown season type is rejected", func() {
			base.SeasonType = "spring"
			convey.So(errors.Is(base.Validate(), config.ErrInvalidSeason), convey.ShouldBeTrue)
		})

		convey.Convey("An empty roster is rejected", func() {
			base.Roster = nil
			convey.So(errors.Is(base.Validate(), config.ErrInvalidSeason), convey.ShouldBeTrue)
		})

		convey.Convey("A duplicate squad is rejected", func() {
			base.Roster = []string{"KAOS", "KAOS"}
			convey.So(errors.Is(base.Validate(), config.ErrInvalidSeason), convey.ShouldBeTrue)
		})

		convey.Convey("A blank squad is rejected", func() {
			base.Roster = []string{"KAOS", " "}
			convey.So(errors.Is(base.Validate(), config.ErrInvalidSeason), convey.ShouldBeTrue)
		})

		convey.Convey("Week zero is rejected", func() {
			base.Winners = []config.WinnerEntry{{Week: 0, Squad: "KAOS"}}
			convey.So(errors.Is(base.Validate(), config.ErrInvalidSeason), convey.ShouldBeTrue)
		})

		convey.Convey("A winner outside the roster is allowed", func() {
			base.Winners = []config.WinnerEntry{{Week: 2, Squad: "Drum Majors"}}
			convey.So(base.Validate(), convey.ShouldBeNil)
		})
	})
}

func writeSeasonFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "season.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write season file: %v", err)
	}
	return path
}

func clearSeasonEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"SEASON_CONFIG", "SEASON_YEAR", "SEASON_TYPE", "SEASON_TEAM", "SEASON_HOME_TEAM", "SEASON_TITLE"} {
		t.Setenv(key, "")
		_ = os.Unsetenv(key)
	}
}
