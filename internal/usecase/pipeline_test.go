package usecase

import (
	"errors"
	"testing"

	"github.com/AmbidextrousCoatie/league-analyzer-sub002/internal/domain/source"
	"github.com/AmbidextrousCoatie/league-analyzer-sub002/internal/infrastructure/diagnostics"
	"github.com/AmbidextrousCoatie/league-analyzer-sub002/internal/infrastructure/repository/memory"
)

// pipelineFixture wires the full stage graph and the reconstruction
// over one shared set of in-memory tables, the way the application
// container wires them over the csv store.
type pipelineFixture struct {
	source      *memory.SourceRepository
	venues      *memory.VenueRepository
	leagues     *memory.LeagueRepository
	systems     *memory.ScoringSystemRepository
	seasons     *memory.LeagueSeasonRepository
	events      *memory.EventRepository
	players     *memory.PlayerRepository
	clubs       *memory.ClubRepository
	teams       *memory.TeamSeasonRepository
	results     *memory.GameResultRepository
	pipeline    *Pipeline
	reconstruct *ReconstructionService
}

func newPipelineFixture(t *testing.T, rows []source.Row) *pipelineFixture {
	t.Helper()

	f := &pipelineFixture{
		source:  memory.NewSourceRepository(rows...),
		venues:  memory.NewVenueRepository(),
		leagues: memory.NewLeagueRepository(),
		systems: memory.NewScoringSystemRepository(),
		seasons: memory.NewLeagueSeasonRepository(),
		events:  memory.NewEventRepository(),
		players: memory.NewPlayerRepository(),
		clubs:   memory.NewClubRepository(),
		teams:   memory.NewTeamSeasonRepository(),
		results: memory.NewGameResultRepository(),
	}

	reporter := diagnostics.NewReporter(t.TempDir(), "test-run")
	f.pipeline = NewPipeline(
		NewVenueService(f.source, f.venues, nil),
		NewLeagueService(f.source, f.leagues, nil, nil),
		NewScoringSystemService(nil, f.systems, nil),
		NewLeagueSeasonService(f.source, f.leagues, f.systems, f.seasons, nil),
		NewEventService(f.source, f.seasons, f.venues, f.events, reporter, nil),
		NewPlayerService(f.source, f.players, reporter, nil),
		NewClubService(f.source, f.clubs, nil),
		NewTeamSeasonService(f.source, f.seasons, f.clubs, f.teams, nil),
		NewGameResultService(f.source, f.seasons, f.events, f.players, f.clubs, f.teams, f.results, reporter, nil),
		nil,
	)
	f.reconstruct = NewReconstructionService(
		f.source, f.venues, f.leagues, f.systems, f.seasons,
		f.events, f.players, f.clubs, f.teams, f.results, nil,
	)

	return f
}

func TestPipeline_Run(t *testing.T) {
	f := newPipelineFixture(t, memory.SeedRows())

	results, err := f.pipeline.Run(t.Context())
	if err != nil {
		t.Fatalf("run pipeline: %v", err)
	}
	if len(results) != 9 {
		t.Fatalf("expected 9 stage results, got %d", len(results))
	}

	wantRows := map[string]int{
		StageVenues:         1,
		StageLeagues:        1,
		StageScoringSystems: 2,
		StageLeagueSeasons:  1,
		StageEvents:         2,
		StagePlayers:        4,
		StageClubs:          2,
		StageTeamSeasons:    2,
		StageResults:        16,
	}
	for i, name := range f.pipeline.StageNames() {
		if results[i].Stage != name {
			t.Fatalf("stage %d ran out of order: got=%s want=%s", i, results[i].Stage, name)
		}
		if results[i].Rows != wantRows[name] {
			t.Fatalf("stage %s: %s", name, results[i].Summary())
		}
	}

	facts, err := f.results.Load(t.Context())
	if err != nil {
		t.Fatalf("load game_result table: %v", err)
	}
	if len(facts) != 16 {
		t.Fatalf("expected 16 facts after a full run, got %d", len(facts))
	}
}

func TestPipeline_RunStage(t *testing.T) {
	f := newPipelineFixture(t, memory.SeedRows())

	result, err := f.pipeline.RunStage(t.Context(), StageVenues)
	if err != nil {
		t.Fatalf("run venues stage: %v", err)
	}
	if result.Rows != 1 {
		t.Fatalf("unexpected counters: %s", result.Summary())
	}
}

func TestPipeline_RunStage_UnknownName(t *testing.T) {
	f := newPipelineFixture(t, memory.SeedRows())

	_, err := f.pipeline.RunStage(t.Context(), "venue")
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
}

func TestPipeline_RunStage_MissingDependency(t *testing.T) {
	f := newPipelineFixture(t, memory.SeedRows())

	// The events stage needs the league_season and venue tables, which
	// only an earlier stage can provide.
	_, err := f.pipeline.RunStage(t.Context(), StageEvents)
	if !errors.Is(err, ErrMissingDependency) {
		t.Fatalf("expected missing dependency, got %v", err)
	}
}

func TestPipeline_StageNames(t *testing.T) {
	f := newPipelineFixture(t, memory.SeedRows())

	names := f.pipeline.StageNames()
	want := []string{
		StageVenues, StageLeagues, StageScoringSystems, StageLeagueSeasons,
		StageEvents, StagePlayers, StageClubs, StageTeamSeasons, StageResults,
	}
	if len(names) != len(want) {
		t.Fatalf("expected %d stages, got %v", len(want), names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("stage %d: got=%s want=%s", i, names[i], want[i])
		}
	}
}
