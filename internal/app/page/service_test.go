package page_test

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/preston-bernstein/msom-squad-service/internal/app/page"
	"github.com/preston-bernstein/msom-squad-service/internal/domain/squads"
	"github.com/preston-bernstein/msom-squad-service/internal/providers"
	"github.com/preston-bernstein/msom-squad-service/internal/testutil"
)

func TestBuildComposesView(t *testing.T) {
	prov := &testutil.RecordingProvider{Games: testutil.SampleSchedule()}
	svc := page.NewService(prov, testutil.DefaultPageOptions(), nil, nil)

	view, err := svc.Build(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if view.Title != "MSOM Squad of the Week 2023 Wins" || view.Season != 2023 {
		t.Fatalf("unexpected header fields %+v", view)
	}
	if !view.HasSchedule || len(view.Games) != 3 {
		t.Fatalf("expected schedule with 3 rows, got %+v", view)
	}

	wantWins := []squads.WinRecord{
		{Squad: "Clarinets", Wins: 0},
		{Squad: "Guard", Wins: 0},
		{Squad: "KAOS", Wins: 1},
		{Squad: "Percussion", Wins: 0},
		{Squad: "Piccs", Wins: 0},
		{Squad: "Saxes", Wins: 0},
		{Squad: "Trumpets", Wins: 0},
		{Squad: "Tubas", Wins: 0},
	}
	if !reflect.DeepEqual(view.Wins, wantWins) {
		t.Fatalf("unexpected wins %+v", view.Wins)
	}

	want := []page.GameRow{
		{
			Week:        1,
			Home:        page.TeamCell{Name: "Maryland", Logo: "./logos/Maryland.svg"},
			Away:        page.TeamCell{Name: "Towson", Logo: "./logos/Towson.svg"},
			HomeScore:   "38",
			AwayScore:   "6",
			SquadOfWeek: "KAOS",
		},
		{
			Week:        2,
			Home:        page.TeamCell{Name: "Virginia", Logo: "./logos/Virginia.svg"},
			Away:        page.TeamCell{Name: "Maryland", Logo: "./logos/Maryland.svg"},
			HomeScore:   "14",
			AwayScore:   "42",
			SquadOfWeek: "-",
		},
		{
			Week:        3,
			Home:        page.TeamCell{Name: "Maryland", Logo: "./logos/Maryland.svg"},
			Away:        page.TeamCell{Name: "Michigan State", Logo: "./logos/Michigan_State.svg"},
			HomeScore:   "N/A",
			AwayScore:   "N/A",
			SquadOfWeek: "",
		},
	}
	if !reflect.DeepEqual(view.Games, want) {
		t.Fatalf("unexpected rows\n got: %+v\nwant: %+v", view.Games, want)
	}

	if qs := prov.Queries(); len(qs) != 1 || qs[0] != testutil.DefaultPageOptions().Query {
		t.Fatalf("expected a single fetch with the season query, got %+v", qs)
	}
}

func TestBuildNilScheduleHidesTable(t *testing.T) {
	svc := testutil.NewPageService(testutil.NilProvider{})

	view, err := svc.Build(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if view.HasSchedule {
		t.Fatalf("expected schedule to be hidden")
	}
	if len(view.Wins) != 8 {
		t.Fatalf("expected tally to render, got %+v", view.Wins)
	}
}

func TestBuildEmptyScheduleShowsEmptyTable(t *testing.T) {
	svc := testutil.NewPageService(testutil.EmptyProvider{})

	view, err := svc.Build(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !view.HasSchedule || len(view.Games) != 0 {
		t.Fatalf("expected empty visible schedule, got %+v", view)
	}
}

func TestBuildFetchErrorReturnsNoView(t *testing.T) {
	boom := errors.New("upstream down")
	rec, _ := testutil.NewRecorderWithShutdown()
	svc := page.NewService(testutil.ErrProvider{Err: boom}, testutil.DefaultPageOptions(), nil, rec)

	view, err := svc.Build(context.Background())
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped upstream error, got %v", err)
	}
	if !reflect.DeepEqual(view, page.View{}) {
		t.Fatalf("expected zero view on error, got %+v", view)
	}
	if got := rec.Renders(); got.Renders != 1 || got.Failures != 1 {
		t.Fatalf("expected failed render to be recorded, got %+v", got)
	}
}

func TestBuildWithoutProvider(t *testing.T) {
	svc := page.NewService(nil, testutil.DefaultPageOptions(), nil, nil)
	if _, err := svc.Build(context.Background()); !errors.Is(err, providers.ErrProviderUnavailable) {
		t.Fatalf("expected provider unavailable, got %v", err)
	}
}

func TestWinsIgnoresUnknownSquads(t *testing.T) {
	opts := testutil.DefaultPageOptions()
	opts.Winners = squads.NewWinners(map[int]squads.Squad{1: "KAOS", 2: "Drum Majors", 3: "KAOS"})
	logger, buf := testutil.NewBufferLogger()

	svc := page.NewService(testutil.EmptyProvider{}, opts, logger, nil)
	wins := svc.Wins()

	total := 0
	for _, w := range wins {
		total += w.Wins
		if w.Squad == "KAOS" && w.Wins != 2 {
			t.Fatalf("expected KAOS to have 2 wins, got %d", w.Wins)
		}
	}
	if total != 2 {
		t.Fatalf("expected unknown squad to be ignored, total=%d", total)
	}
	if !strings.Contains(buf.String(), "Drum Majors") {
		t.Fatalf("expected unknown winner to be logged, got %s", buf.String())
	}
	if svc.Season() != 2023 {
		t.Fatalf("unexpected season %d", svc.Season())
	}
}

func TestBuildRecordsSuccessfulRender(t *testing.T) {
	rec, _ := testutil.NewRecorderWithShutdown()
	svc := page.NewService(testutil.GoodProvider{Games: testutil.SampleSchedule()}, testutil.DefaultPageOptions(), nil, rec)

	if _, err := svc.Build(context.Background()); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got := rec.Renders(); got.Renders != 1 || got.Failures != 0 {
		t.Fatalf("expected successful render recorded, got %+v", got)
	}
}
