package usecase

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/AmbidextrousCoatie/league-analyzer-sub002/internal/domain/source"
	"github.com/AmbidextrousCoatie/league-analyzer-sub002/internal/infrastructure/repository/memory"
)

func TestVenueService_Build(t *testing.T) {
	sourceRepo := memory.NewSourceRepository(memory.SeedRows()...)
	venueRepo := memory.NewVenueRepository()

	svc := NewVenueService(sourceRepo, venueRepo, nil)

	result, err := svc.Build(t.Context())
	if err != nil {
		t.Fatalf("build venues: %v", err)
	}
	if result.Stage != StageVenues {
		t.Fatalf("unexpected stage: %q", result.Stage)
	}
	if result.SourceRows != 24 || result.Rows != 1 || result.Skipped != 0 {
		t.Fatalf("unexpected counters: %s", result.Summary())
	}

	venues, err := venueRepo.Load(t.Context())
	if err != nil {
		t.Fatalf("load venue table: %v", err)
	}
	if len(venues) != 1 || venues[0].ID != 1 || venues[0].Name != memory.SeedVenue {
		t.Fatalf("unexpected venue table: %+v", venues)
	}
}

func TestVenueService_Build_CollatedOrder(t *testing.T) {
	rows := []source.Row{
		{Location: "Zentrum Bowling"},
		{Location: "Ährenfeld Bowling"},
		{Location: "Bahnhof Bowling"},
		{Location: "Zentrum Bowling"},
		{Location: ""},
	}
	sourceRepo := memory.NewSourceRepository(rows...)
	venueRepo := memory.NewVenueRepository()

	svc := NewVenueService(sourceRepo, venueRepo, nil)

	result, err := svc.Build(t.Context())
	if err != nil {
		t.Fatalf("build venues: %v", err)
	}
	if result.Rows != 3 || result.Skipped != 1 {
		t.Fatalf("unexpected counters: %s", result.Summary())
	}

	venues, err := venueRepo.Load(t.Context())
	if err != nil {
		t.Fatalf("load venue table: %v", err)
	}
	// Umlauts sort next to their base letter, not after z.
	want := []string{"Ährenfeld Bowling", "Bahnhof Bowling", "Zentrum Bowling"}
	for i, name := range want {
		if venues[i].Name != name || venues[i].ID != int64(i+1) {
			t.Fatalf("venue %d: got (%d, %q) want (%d, %q)", i, venues[i].ID, venues[i].Name, i+1, name)
		}
	}
}

func TestVenueService_Build_DatasetMissing(t *testing.T) {
	svc := NewVenueService(memory.NewSourceRepository(), memory.NewVenueRepository(), nil)

	_, err := svc.Build(t.Context())
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected fs.ErrNotExist, got %v", err)
	}
}
