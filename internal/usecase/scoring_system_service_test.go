package usecase

import (
	"testing"

	"github.com/AmbidextrousCoatie/league-analyzer-sub002/internal/domain/scoringsystem"
	"github.com/AmbidextrousCoatie/league-analyzer-sub002/internal/infrastructure/repository/memory"
)

func TestScoringSystemService_Build_DefaultCatalog(t *testing.T) {
	repo := memory.NewScoringSystemRepository()

	svc := NewScoringSystemService(nil, repo, nil)

	result, err := svc.Build(t.Context())
	if err != nil {
		t.Fatalf("build scoring systems: %v", err)
	}
	if result.Stage != StageScoringSystems || result.Rows != 2 {
		t.Fatalf("unexpected counters: %s", result.Summary())
	}

	systems, err := repo.Load(t.Context())
	if err != nil {
		t.Fatalf("load scoring_system table: %v", err)
	}
	if systems[0].ID != scoringsystem.TwoPointID || systems[1].ID != scoringsystem.ThreePointID {
		t.Fatalf("unexpected catalog order: %+v", systems)
	}
}

func TestScoringSystemService_Build_CustomCatalog(t *testing.T) {
	repo := memory.NewScoringSystemRepository()
	custom := []scoringsystem.ScoringSystem{
		{
			ID: "haus_regel", Name: "Hausregel",
			IndividualWin: 2, IndividualTie: 1, IndividualLoss: 0,
			TeamWin: 4, TeamTie: 2, TeamLoss: 0,
		},
	}

	svc := NewScoringSystemService(custom, repo, nil)

	result, err := svc.Build(t.Context())
	if err != nil {
		t.Fatalf("build scoring systems: %v", err)
	}
	if result.Rows != 1 {
		t.Fatalf("unexpected counters: %s", result.Summary())
	}

	systems, err := repo.Load(t.Context())
	if err != nil {
		t.Fatalf("load scoring_system table: %v", err)
	}
	if len(systems) != 1 || systems[0].ID != "haus_regel" {
		t.Fatalf("custom catalog not written: %+v", systems)
	}
}
