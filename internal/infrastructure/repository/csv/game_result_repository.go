package csv

import (
	"context"
	"fmt"

	"github.com/AmbidextrousCoatie/league-analyzer-sub002/internal/domain/gameresult"
	"github.com/AmbidextrousCoatie/league-analyzer-sub002/internal/platform/tabular"
	"github.com/AmbidextrousCoatie/league-analyzer-sub002/internal/schema"
)

type GameResultRepository struct {
	store *Store
}

func NewGameResultRepository(store *Store) *GameResultRepository {
	return &GameResultRepository{store: store}
}

func (r *GameResultRepository) Load(_ context.Context) ([]gameresult.GameResult, error) {
	t, err := r.store.Load(schema.TableGameResult)
	if err != nil {
		return nil, fmt.Errorf("load game result table: %w", err)
	}

	out := make([]gameresult.GameResult, 0, t.Len())
	for i, row := range t.Rows {
		id, ok := tabular.Int(row, "id")
		if !ok {
			return nil, fmt.Errorf("game result table row %d: missing id", i+1)
		}
		eventID, _ := tabular.Int(row, "event_id")
		playerID, _ := tabular.Int(row, "player_id")
		teamSeasonID, _ := tabular.Int(row, "team_season_id")
		lineupPosition, _ := tabular.Int(row, "lineup_position")
		roundNumber, _ := tabular.Int(row, "round_number")
		matchNumber, _ := tabular.Int(row, "match_number")
		isDisqualified, _ := tabular.Bool(row, "is_disqualified")

		var score *int
		if v, ok := tabular.Int(row, "score"); ok {
			score = intPtr(v)
		}
		var handicap *int
		if v, ok := tabular.Int(row, "handicap"); ok {
			handicap = intPtr(v)
		}

		out = append(out, gameresult.GameResult{
			ID:             id,
			EventID:        eventID,
			PlayerID:       playerID,
			TeamSeasonID:   teamSeasonID,
			LineupPosition: int(lineupPosition),
			Score:          score,
			RoundNumber:    int(roundNumber),
			MatchNumber:    int(matchNumber),
			IsDisqualified: isDisqualified,
			Handicap:       handicap,
		})
	}

	return out, nil
}

func (r *GameResultRepository) Save(_ context.Context, results []gameresult.GameResult) error {
	t := tabular.New(
		"id", "event_id", "player_id", "team_season_id", "lineup_position",
		"score", "round_number", "match_number", "is_disqualified", "handicap",
	)
	for _, g := range results {
		if err := g.Validate(); err != nil {
			return fmt.Errorf("game result %d: %w", g.ID, err)
		}
		t.Append(tabular.Row{
			"id":              g.ID,
			"event_id":        g.EventID,
			"player_id":       g.PlayerID,
			"team_season_id":  g.TeamSeasonID,
			"lineup_position": int64(g.LineupPosition),
			"score":           optIntPtr(g.Score),
			"round_number":    int64(g.RoundNumber),
			"match_number":    int64(g.MatchNumber),
			"is_disqualified": g.IsDisqualified,
			"handicap":        optIntPtr(g.Handicap),
		})
	}

	if err := r.store.Save(schema.TableGameResult, t); err != nil {
		return fmt.Errorf("save game result table: %w", err)
	}

	return nil
}
