package csv

import (
	"context"
	"fmt"

	"github.com/AmbidextrousCoatie/league-analyzer-sub002/internal/domain/teamseason"
	"github.com/AmbidextrousCoatie/league-analyzer-sub002/internal/platform/tabular"
	"github.com/AmbidextrousCoatie/league-analyzer-sub002/internal/schema"
)

type TeamSeasonRepository struct {
	store *Store
}

func NewTeamSeasonRepository(store *Store) *TeamSeasonRepository {
	return &TeamSeasonRepository{store: store}
}

func (r *TeamSeasonRepository) Load(_ context.Context) ([]teamseason.TeamSeason, error) {
	t, err := r.store.Load(schema.TableTeamSeason)
	if err != nil {
		return nil, fmt.Errorf("load team season table: %w", err)
	}

	out := make([]teamseason.TeamSeason, 0, t.Len())
	for i, row := range t.Rows {
		id, ok := tabular.Int(row, "id")
		if !ok {
			return nil, fmt.Errorf("team season table row %d: missing id", i+1)
		}
		leagueSeasonID, _ := tabular.Int(row, "league_season_id")
		clubID, _ := tabular.Int(row, "club_id")
		teamNumber, _ := tabular.Int(row, "team_number")

		out = append(out, teamseason.TeamSeason{
			ID:             id,
			LeagueSeasonID: leagueSeasonID,
			ClubID:         clubID,
			TeamNumber:     int(teamNumber),
		})
	}

	return out, nil
}

func (r *TeamSeasonRepository) Save(_ context.Context, teams []teamseason.TeamSeason) error {
	t := tabular.New("id", "league_season_id", "club_id", "team_number")
	for _, ts := range teams {
		if err := ts.Validate(); err != nil {
			return fmt.Errorf("team season %d: %w", ts.ID, err)
		}
		t.Append(tabular.Row{
			"id":               ts.ID,
			"league_season_id": ts.LeagueSeasonID,
			"club_id":          ts.ClubID,
			"team_number":      int64(ts.TeamNumber),
		})
	}

	if err := r.store.Save(schema.TableTeamSeason, t); err != nil {
		return fmt.Errorf("save team season table: %w", err)
	}

	return nil
}
