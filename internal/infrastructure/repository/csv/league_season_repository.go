package csv

import (
	"context"
	"fmt"

	"github.com/AmbidextrousCoatie/league-analyzer-sub002/internal/domain/leagueseason"
	"github.com/AmbidextrousCoatie/league-analyzer-sub002/internal/platform/tabular"
	"github.com/AmbidextrousCoatie/league-analyzer-sub002/internal/schema"
)

type LeagueSeasonRepository struct {
	store *Store
}

func NewLeagueSeasonRepository(store *Store) *LeagueSeasonRepository {
	return &LeagueSeasonRepository{store: store}
}

func (r *LeagueSeasonRepository) Load(_ context.Context) ([]leagueseason.LeagueSeason, error) {
	t, err := r.store.Load(schema.TableLeagueSeason)
	if err != nil {
		return nil, fmt.Errorf("load league season table: %w", err)
	}

	out := make([]leagueseason.LeagueSeason, 0, t.Len())
	for i, row := range t.Rows {
		id, ok := tabular.Int(row, "id")
		if !ok {
			return nil, fmt.Errorf("league season table row %d: missing id", i+1)
		}
		leagueID, _ := tabular.String(row, "league_id")
		season, _ := tabular.String(row, "season")
		scoringSystemID, _ := tabular.String(row, "scoring_system_id")
		playersPerTeam, _ := tabular.Int(row, "players_per_team")
		numberOfTeams, _ := tabular.Int(row, "number_of_teams")

		out = append(out, leagueseason.LeagueSeason{
			ID:              id,
			LeagueID:        leagueID,
			Season:          season,
			ScoringSystemID: scoringSystemID,
			PlayersPerTeam:  int(playersPerTeam),
			NumberOfTeams:   int(numberOfTeams),
		})
	}

	return out, nil
}

func (r *LeagueSeasonRepository) Save(_ context.Context, seasons []leagueseason.LeagueSeason) error {
	t := tabular.New("id", "league_id", "season", "scoring_system_id", "players_per_team", "number_of_teams")
	for _, ls := range seasons {
		if err := ls.Validate(); err != nil {
			return fmt.Errorf("league season %d: %w", ls.ID, err)
		}
		t.Append(tabular.Row{
			"id":                ls.ID,
			"league_id":         ls.LeagueID,
			"season":            ls.Season,
			"scoring_system_id": ls.ScoringSystemID,
			"players_per_team":  int64(ls.PlayersPerTeam),
			"number_of_teams":   int64(ls.NumberOfTeams),
		})
	}

	if err := r.store.Save(schema.TableLeagueSeason, t); err != nil {
		return fmt.Errorf("save league season table: %w", err)
	}

	return nil
}
