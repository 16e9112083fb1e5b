package csv

import (
	"errors"
	"io/fs"
	"os"
	"testing"
	"time"

	"github.com/AmbidextrousCoatie/league-analyzer-sub002/internal/domain/event"
	"github.com/AmbidextrousCoatie/league-analyzer-sub002/internal/domain/gameresult"
	"github.com/AmbidextrousCoatie/league-analyzer-sub002/internal/domain/scoringsystem"
	"github.com/AmbidextrousCoatie/league-analyzer-sub002/internal/domain/venue"
	"github.com/AmbidextrousCoatie/league-analyzer-sub002/internal/platform/tabular"
	"github.com/AmbidextrousCoatie/league-analyzer-sub002/internal/schema"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	catalog, err := schema.NewCatalog(schema.DefaultDocument(), "")
	if err != nil {
		t.Fatalf("new catalog: %v", err)
	}
	codec := tabular.NewCodec(tabular.DefaultDelimiter, tabular.DefaultDateLayout)

	return NewStore(t.TempDir(), codec, catalog)
}

func TestVenueRepositoryRoundTrip(t *testing.T) {
	store := newTestStore(t)
	repo := NewVenueRepository(store)

	venues := []venue.Venue{
		{ID: 1, Name: "Bowlingcenter München", FullName: "Bowlingcenter München Süd"},
		{ID: 2, Name: "Vereinsheim Nürnberg"},
	}
	if err := repo.Save(t.Context(), venues); err != nil {
		t.Fatalf("save venues: %v", err)
	}
	if !store.Exists(schema.TableVenue) {
		t.Fatal("venue table file not written")
	}

	got, err := repo.Load(t.Context())
	if err != nil {
		t.Fatalf("load venues: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("unexpected venue count: %d", len(got))
	}
	if got[0] != venues[0] || got[1] != venues[1] {
		t.Fatalf("round trip changed venues: %+v", got)
	}
}

func TestVenueRepositoryLoadMissingTable(t *testing.T) {
	repo := NewVenueRepository(newTestStore(t))

	_, err := repo.Load(t.Context())
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected fs.ErrNotExist, got %v", err)
	}
}

func TestStoreSaveRejectsDuplicateNaturalKey(t *testing.T) {
	store := newTestStore(t)
	repo := NewVenueRepository(store)

	venues := []venue.Venue{
		{ID: 1, Name: "Bowlingcenter München"},
		{ID: 2, Name: "Bowlingcenter München"},
	}
	err := repo.Save(t.Context(), venues)

	var verr *schema.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if verr.Table != schema.TableVenue || len(verr.Violations) != 1 {
		t.Fatalf("unexpected validation error: %+v", verr)
	}
	if verr.Violations[0].Rule != schema.RuleUnique {
		t.Fatalf("unexpected rule: %q", verr.Violations[0].Rule)
	}
	if store.Exists(schema.TableVenue) {
		t.Fatal("rejected table was written anyway")
	}
}

func TestGameResultRepositoryRoundTrip(t *testing.T) {
	repo := NewGameResultRepository(newTestStore(t))

	score := 212
	handicap := 8
	results := []gameresult.GameResult{
		{
			ID: 1, EventID: 1, PlayerID: 101, TeamSeasonID: 1,
			LineupPosition: 0, Score: &score, RoundNumber: 1, MatchNumber: 1,
			Handicap: &handicap,
		},
		{
			ID: 2, EventID: 1, PlayerID: 102, TeamSeasonID: 1,
			LineupPosition: 1, RoundNumber: 1, MatchNumber: 1,
			IsDisqualified: true,
		},
	}
	if err := repo.Save(t.Context(), results); err != nil {
		t.Fatalf("save game results: %v", err)
	}

	got, err := repo.Load(t.Context())
	if err != nil {
		t.Fatalf("load game results: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("unexpected result count: %d", len(got))
	}

	if got[0].Score == nil || *got[0].Score != 212 {
		t.Fatalf("score lost: %+v", got[0])
	}
	if got[0].Handicap == nil || *got[0].Handicap != 8 {
		t.Fatalf("handicap lost: %+v", got[0])
	}
	if got[1].Score != nil || !got[1].IsDisqualified {
		t.Fatalf("disqualification lost: %+v", got[1])
	}
}

func TestGameResultRepositorySaveRejectsInconsistentRow(t *testing.T) {
	repo := NewGameResultRepository(newTestStore(t))

	// A present score on a disqualified row breaks the invariant.
	score := 200
	results := []gameresult.GameResult{
		{
			ID: 1, EventID: 1, PlayerID: 101, TeamSeasonID: 1,
			LineupPosition: 0, Score: &score, RoundNumber: 1, MatchNumber: 1,
			IsDisqualified: true,
		},
	}
	if err := repo.Save(t.Context(), results); err == nil {
		t.Fatal("inconsistent game result passed validation")
	}
}

func TestScoringSystemRepositoryRoundTrip(t *testing.T) {
	repo := NewScoringSystemRepository(newTestStore(t))

	systems := scoringsystem.DefaultCatalog()
	if err := repo.Save(t.Context(), systems); err != nil {
		t.Fatalf("save scoring systems: %v", err)
	}

	got, err := repo.Load(t.Context())
	if err != nil {
		t.Fatalf("load scoring systems: %v", err)
	}
	if len(got) != len(systems) {
		t.Fatalf("unexpected system count: %d", len(got))
	}
	for i := range systems {
		if got[i] != systems[i] {
			t.Fatalf("system %d changed in round trip:\ngot  %+v\nwant %+v", i, got[i], systems[i])
		}
	}
}

func TestEventRepositoryRoundTrip(t *testing.T) {
	repo := NewEventRepository(newTestStore(t))

	events := []event.Event{
		{
			ID: 1, LeagueSeasonID: 1, LeagueWeek: 1,
			Date:    time.Date(2024, time.September, 14, 0, 0, 0, 0, time.UTC),
			VenueID: 1, Status: event.StatusCompleted, EventType: event.TypeLeagueMatch,
		},
	}
	if err := repo.Save(t.Context(), events); err != nil {
		t.Fatalf("save events: %v", err)
	}

	got, err := repo.Load(t.Context())
	if err != nil {
		t.Fatalf("load events: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("unexpected event count: %d", len(got))
	}
	if !got[0].Date.Equal(events[0].Date) {
		t.Fatalf("date changed in round trip: got %v want %v", got[0].Date, events[0].Date)
	}
	if got[0].Status != event.StatusCompleted || got[0].EventType != event.TypeLeagueMatch {
		t.Fatalf("unexpected event: %+v", got[0])
	}
}

func TestStoreValidateReportsFileEditedByHand(t *testing.T) {
	store := newTestStore(t)
	repo := NewVenueRepository(store)

	venues := []venue.Venue{{ID: 1, Name: "Bowlingcenter München"}}
	if err := repo.Save(t.Context(), venues); err != nil {
		t.Fatalf("save venues: %v", err)
	}

	// Blank out the name cell, as a careless manual edit would.
	content := "id;name;full_name\n1;;\n"
	if err := os.WriteFile(store.Path(schema.TableVenue), []byte(content), 0o644); err != nil {
		t.Fatalf("rewrite table file: %v", err)
	}

	violations, err := store.Validate(schema.TableVenue)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if len(violations) != 1 || violations[0].Rule != schema.RuleNotNull {
		t.Fatalf("unexpected violations: %+v", violations)
	}
}
