package usecase

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/AmbidextrousCoatie/league-analyzer-sub002/internal/domain/club"
	"github.com/AmbidextrousCoatie/league-analyzer-sub002/internal/infrastructure/repository/memory"
)

func TestClubService_Build(t *testing.T) {
	clubRepo := memory.NewClubRepository()

	svc := NewClubService(memory.NewSourceRepository(memory.SeedRows()...), clubRepo, nil)

	result, err := svc.Build(t.Context())
	if err != nil {
		t.Fatalf("build clubs: %v", err)
	}
	if result.SourceRows != 24 || result.Rows != 2 || result.Skipped != 0 {
		t.Fatalf("unexpected counters: %s", result.Summary())
	}

	clubs, err := clubRepo.Load(t.Context())
	if err != nil {
		t.Fatalf("load club table: %v", err)
	}
	want := []club.Club{
		{ID: 1, Name: "SV Musterstadt"},
		{ID: 2, Name: "TSV Beispielhausen"},
	}
	if len(clubs) != len(want) {
		t.Fatalf("expected %d clubs, got %d", len(want), len(clubs))
	}
	for i, c := range clubs {
		if c != want[i] {
			t.Fatalf("club %d: got=%+v want=%+v", i, c, want[i])
		}
	}
}

func TestClubService_Build_CollatedOrder(t *testing.T) {
	rows := memory.SeedRows()[:3]
	rows[0].Team = "Ostler KC"
	rows[1].Team = "Österreicher SC 2"
	rows[2].Team = ""

	clubRepo := memory.NewClubRepository()
	svc := NewClubService(memory.NewSourceRepository(rows...), clubRepo, nil)

	result, err := svc.Build(t.Context())
	if err != nil {
		t.Fatalf("build clubs: %v", err)
	}
	if result.Rows != 2 || result.Skipped != 1 {
		t.Fatalf("unexpected counters: %s", result.Summary())
	}

	clubs, err := clubRepo.Load(t.Context())
	if err != nil {
		t.Fatalf("load club table: %v", err)
	}
	// German collation keeps Ö next to O instead of after Z.
	if clubs[0].Name != "Österreicher SC" || clubs[1].Name != "Ostler KC" {
		t.Fatalf("unexpected order: %+v", clubs)
	}
}

func TestClubService_Build_DatasetMissing(t *testing.T) {
	svc := NewClubService(memory.NewSourceRepository(), memory.NewClubRepository(), nil)

	_, err := svc.Build(t.Context())
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected missing dataset error, got %v", err)
	}
}
