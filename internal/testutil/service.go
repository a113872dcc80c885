package testutil

import (
	"github.com/preston-bernstein/msom-squad-service/internal/app/page"
	"github.com/preston-bernstein/msom-squad-service/internal/domain/schedule"
	"github.com/preston-bernstein/msom-squad-service/internal/domain/squads"
	"github.com/preston-bernstein/msom-squad-service/internal/providers"
)

// DefaultPageOptions mirrors the built-in 2023 Maryland season.
func DefaultPageOptions() page.Options {
	return page.Options{
		Title:    "MSOM Squad of the Week 2023 Wins",
		HomeTeam: "Maryland",
		Query:    schedule.Query{Year: 2023, SeasonType: schedule.SeasonRegular, Team: "maryland"},
		Roster:   squads.DefaultRoster(),
		Winners:  squads.DefaultWinners(),
	}
}

// NewPageService builds a page service over the provider with default options and no logger or metrics.
func NewPageService(p providers.ScheduleProvider) *page.Service {
	return page.NewService(p, DefaultPageOptions(), nil, nil)
}
