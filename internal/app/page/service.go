package page

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/preston-bernstein/msom-squad-service/internal/domain/schedule"
	"github.com/preston-bernstein/msom-squad-service/internal/domain/squads"
	"github.com/preston-bernstein/msom-squad-service/internal/logging"
	"github.com/preston-bernstein/msom-squad-service/internal/metrics"
	"github.com/preston-bernstein/msom-squad-service/internal/providers"
)

// Options describes the season a Service renders.
type Options struct {
	Title    string
	HomeTeam string
	Query    schedule.Query
	Roster   squads.Roster
	Winners  squads.Winners
}

// Service composes the squad tally and the season schedule into a page View.
type Service struct {
	provider providers.ScheduleProvider
	opts     Options
	logger   *slog.Logger
	metrics  *metrics.Recorder
}

// NewService constructs a Service. Winners naming squads outside the roster are
// logged once here and never counted.
func NewService(provider providers.ScheduleProvider, opts Options, logger *slog.Logger, recorder *metrics.Recorder) *Service {
	for week, squad := range opts.Winners.Unknown(opts.Roster) {
		logging.Warn(logger, "winner not on roster, ignoring",
			slog.Int(logging.FieldWeek, week),
			slog.String(logging.FieldSquad, string(squad)),
		)
	}
	return &Service{
		provider: provider,
		opts:     opts,
		logger:   logger,
		metrics:  recorder,
	}
}

// Wins returns the roster tally sorted by squad name.
func (s *Service) Wins() []squads.WinRecord {
	return squads.SortByName(squads.Tally(s.opts.Roster, s.opts.Winners))
}

// Season returns the configured season year.
func (s *Service) Season() int {
	return s.opts.Query.Year
}

// Build fetches the schedule and assembles the full page. Any fetch error fails
// the whole build; no partial view is returned.
func (s *Service) Build(ctx context.Context) (View, error) {
	start := time.Now()
	view, err := s.build(ctx)
	s.metrics.RecordPageRender(time.Since(start), err)
	return view, err
}

func (s *Service) build(ctx context.Context) (View, error) {
	if s.provider == nil {
		return View{}, providers.ErrProviderUnavailable
	}

	games, err := s.provider.FetchSchedule(ctx, s.opts.Query)
	if err != nil {
		return View{}, fmt.Errorf("fetch schedule: %w", err)
	}

	logger := logging.FromContext(ctx, s.logger)
	if logger != nil {
		logger.Debug("schedule fetched",
			slog.Int(logging.FieldSeason, s.opts.Query.Year),
			slog.String(logging.FieldTeam, s.opts.Query.Team),
			slog.Int(logging.FieldCount, len(games)),
		)
	}

	return View{
		Title:       s.opts.Title,
		Season:      s.opts.Query.Year,
		Wins:        s.Wins(),
		Games:       BuildRows(games, s.opts.Winners, s.opts.HomeTeam),
		HasSchedule: games != nil,
	}, nil
}
