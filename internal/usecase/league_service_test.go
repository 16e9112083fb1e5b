package usecase

import (
	"testing"

	"github.com/AmbidextrousCoatie/league-analyzer-sub002/internal/domain/league"
	"github.com/AmbidextrousCoatie/league-analyzer-sub002/internal/domain/source"
	"github.com/AmbidextrousCoatie/league-analyzer-sub002/internal/infrastructure/repository/memory"
)

func TestLeagueService_Build(t *testing.T) {
	sourceRepo := memory.NewSourceRepository(memory.SeedRows()...)
	leagueRepo := memory.NewLeagueRepository()

	svc := NewLeagueService(sourceRepo, leagueRepo, nil, nil)

	result, err := svc.Build(t.Context())
	if err != nil {
		t.Fatalf("build leagues: %v", err)
	}
	if result.Rows != 1 || result.Skipped != 0 {
		t.Fatalf("unexpected counters: %s", result.Summary())
	}

	leagues, err := leagueRepo.Load(t.Context())
	if err != nil {
		t.Fatalf("load league table: %v", err)
	}
	want := league.League{ID: "BayL", LongName: "Bayernliga", Level: 1}
	if len(leagues) != 1 || leagues[0] != want {
		t.Fatalf("unexpected league table: %+v", leagues)
	}
}

func TestLeagueService_Build_DivisionAndUnknownCodes(t *testing.T) {
	rows := []source.Row{
		{League: "BZL A"},
		{League: "Privatrunde"},
		{League: "BZL A"},
		{League: ""},
	}
	sourceRepo := memory.NewSourceRepository(rows...)
	leagueRepo := memory.NewLeagueRepository()

	svc := NewLeagueService(sourceRepo, leagueRepo, nil, nil)

	result, err := svc.Build(t.Context())
	if err != nil {
		t.Fatalf("build leagues: %v", err)
	}
	if result.Rows != 2 || result.Skipped != 1 {
		t.Fatalf("unexpected counters: %s", result.Summary())
	}

	leagues, err := leagueRepo.Load(t.Context())
	if err != nil {
		t.Fatalf("load league table: %v", err)
	}
	if leagues[0] != (league.League{ID: "BZL A", LongName: "Bezirksliga", Level: 4, Division: "A"}) {
		t.Fatalf("unexpected division league: %+v", leagues[0])
	}
	if leagues[1] != (league.League{ID: "Privatrunde", LongName: "Privatrunde"}) {
		t.Fatalf("unknown code must keep itself as long name: %+v", leagues[1])
	}
}

func TestLeagueService_Build_CustomCatalog(t *testing.T) {
	rows := []source.Row{{League: "STL"}}
	catalog := map[string]league.Info{
		"STL": {LongName: "Stadtliga", Level: 6},
	}
	leagueRepo := memory.NewLeagueRepository()

	svc := NewLeagueService(memory.NewSourceRepository(rows...), leagueRepo, catalog, nil)

	if _, err := svc.Build(t.Context()); err != nil {
		t.Fatalf("build leagues: %v", err)
	}

	leagues, err := leagueRepo.Load(t.Context())
	if err != nil {
		t.Fatalf("load league table: %v", err)
	}
	if leagues[0].LongName != "Stadtliga" || leagues[0].Level != 6 {
		t.Fatalf("catalog not applied: %+v", leagues[0])
	}
}
