package csv

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/AmbidextrousCoatie/league-analyzer-sub002/internal/domain/club"
	"github.com/AmbidextrousCoatie/league-analyzer-sub002/internal/domain/source"
	"github.com/AmbidextrousCoatie/league-analyzer-sub002/internal/platform/tabular"
	"github.com/AmbidextrousCoatie/league-analyzer-sub002/internal/schema"
)

func newSourceRepository(t *testing.T, content string) *SourceRepository {
	t.Helper()

	dir := t.TempDir()
	dataPath := filepath.Join(dir, "results.csv")
	if content != "" {
		if err := os.WriteFile(dataPath, []byte(content), 0o644); err != nil {
			t.Fatalf("write dataset: %v", err)
		}
	}

	catalog, err := schema.NewCatalog(schema.DefaultDocument(), "")
	if err != nil {
		t.Fatalf("new catalog: %v", err)
	}
	codec := tabular.NewCodec(tabular.DefaultDelimiter, tabular.DefaultDateLayout)

	return NewSourceRepository(dataPath, filepath.Join(dir, "reconstructed.csv"), codec, catalog)
}

const sourceHeader = "Season;Week;Date;League;Players per Team;Location;Round Number;Match Number;Team;Position;Player;Player ID;Opponent;Score;Points;Input Data;Computed Data\n"

func TestSourceRepositoryLoad(t *testing.T) {
	content := sourceHeader +
		"24/25;1;2024-09-14;BayL;2;Bowlingcenter München;1;1;SV Musterstadt;0;Huber, Franz;101;TSV Beispielhausen 2;200;1;opponent;points\n" +
		"24/25;1;2024-09-14;BayL;2;Bowlingcenter München;1;1;SV Musterstadt;;Team Total;;TSV Beispielhausen 2;390;2;;opponent,score,points\n"
	repo := newSourceRepository(t, content)

	rows, err := repo.Load(t.Context())
	if err != nil {
		t.Fatalf("load dataset: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("unexpected row count: %d", len(rows))
	}

	member := rows[0]
	if member.Season != "24/25" || member.Week != 1 || member.League != "BayL" {
		t.Fatalf("unexpected member row: %+v", member)
	}
	if !member.Date.Equal(time.Date(2024, time.September, 14, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected date: %v", member.Date)
	}
	if member.Position == nil || *member.Position != 0 {
		t.Fatalf("position lost: %+v", member.Position)
	}
	if member.PlayerID == nil || *member.PlayerID != 101 {
		t.Fatalf("player id lost: %+v", member.PlayerID)
	}
	if member.Score == nil || *member.Score != 200 {
		t.Fatalf("score lost: %+v", member.Score)
	}
	if member.Points == nil || *member.Points != 1 {
		t.Fatalf("points lost: %+v", member.Points)
	}
	if !member.HasPlayerID() {
		t.Fatal("member row must carry a player id")
	}

	total := rows[1]
	if total.Player != club.AggregateLabel {
		t.Fatalf("unexpected total row player: %q", total.Player)
	}
	if total.Position != nil || total.PlayerID != nil {
		t.Fatalf("total row must have no position or player id: %+v", total)
	}
	if total.HasPlayerID() {
		t.Fatal("total row must not report a player id")
	}
}

func TestSourceRepositoryLoadMissingColumn(t *testing.T) {
	content := "Season;Week;Date\n24/25;1;2024-09-14\n"
	repo := newSourceRepository(t, content)

	_, err := repo.Load(t.Context())

	var verr *schema.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	found := false
	for _, v := range verr.Violations {
		if v.Rule == schema.RuleRequiredColumn && v.Column == "League" {
			found = true
		}
	}
	if !found {
		t.Fatalf("missing League column not reported: %+v", verr.Violations)
	}
}

func TestSourceRepositorySaveRoundTrip(t *testing.T) {
	repo := newSourceRepository(t, "")

	position := 0
	playerID := int64(101)
	score := 200
	points := 1.0
	totalScore := 390
	totalPoints := 2.0
	date := time.Date(2024, time.September, 14, 0, 0, 0, 0, time.UTC)

	rows := []source.Row{
		{
			Season: "24/25", Week: 1, Date: date, League: "BayL", PlayersPerTeam: 2,
			Location: "Bowlingcenter München", RoundNumber: 1, MatchNumber: 1,
			Team: "SV Musterstadt", Position: &position, Player: "Huber, Franz",
			PlayerID: &playerID, Opponent: "TSV Beispielhausen 2", Score: &score,
			Points: &points, InputData: "opponent", ComputedData: "points",
		},
		{
			Season: "24/25", Week: 1, Date: date, League: "BayL", PlayersPerTeam: 2,
			Location: "Bowlingcenter München", RoundNumber: 1, MatchNumber: 1,
			Team: "SV Musterstadt", Player: club.AggregateLabel,
			Opponent: "TSV Beispielhausen 2", Score: &totalScore, Points: &totalPoints,
			ComputedData: "opponent,score,points",
		},
	}
	if err := repo.Save(t.Context(), rows); err != nil {
		t.Fatalf("save reconstructed dataset: %v", err)
	}

	// Read the written file back through a repository bound to it.
	back := NewSourceRepository(repo.outPath, repo.outPath, repo.codec, repo.catalog)
	got, err := back.Load(t.Context())
	if err != nil {
		t.Fatalf("reload reconstructed dataset: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("unexpected row count: %d", len(got))
	}
	if got[0].Opponent != "TSV Beispielhausen 2" || got[0].InputData != "opponent" {
		t.Fatalf("member row changed in round trip: %+v", got[0])
	}
	if got[1].Player != club.AggregateLabel || got[1].Score == nil || *got[1].Score != 390 {
		t.Fatalf("total row changed in round trip: %+v", got[1])
	}
}
