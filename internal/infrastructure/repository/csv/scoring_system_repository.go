package csv

import (
	"context"
	"fmt"

	"github.com/AmbidextrousCoatie/league-analyzer-sub002/internal/domain/scoringsystem"
	"github.com/AmbidextrousCoatie/league-analyzer-sub002/internal/platform/tabular"
	"github.com/AmbidextrousCoatie/league-analyzer-sub002/internal/schema"
)

type ScoringSystemRepository struct {
	store *Store
}

func NewScoringSystemRepository(store *Store) *ScoringSystemRepository {
	return &ScoringSystemRepository{store: store}
}

func (r *ScoringSystemRepository) Load(_ context.Context) ([]scoringsystem.ScoringSystem, error) {
	t, err := r.store.Load(schema.TableScoringSystem)
	if err != nil {
		return nil, fmt.Errorf("load scoring system table: %w", err)
	}

	out := make([]scoringsystem.ScoringSystem, 0, t.Len())
	for i, row := range t.Rows {
		id, ok := tabular.String(row, "id")
		if !ok {
			return nil, fmt.Errorf("scoring system table row %d: missing id", i+1)
		}
		name, _ := tabular.String(row, "name")
		indWin, _ := tabular.Float(row, "points_per_individual_match_win")
		indTie, _ := tabular.Float(row, "points_per_individual_match_tie")
		indLoss, _ := tabular.Float(row, "points_per_individual_match_loss")
		teamWin, _ := tabular.Float(row, "points_per_team_match_win")
		teamTie, _ := tabular.Float(row, "points_per_team_match_tie")
		teamLoss, _ := tabular.Float(row, "points_per_team_match_loss")
		allowTies, _ := tabular.Bool(row, "allow_ties")

		out = append(out, scoringsystem.ScoringSystem{
			ID:             id,
			Name:           name,
			IndividualWin:  indWin,
			IndividualTie:  indTie,
			IndividualLoss: indLoss,
			TeamWin:        teamWin,
			TeamTie:        teamTie,
			TeamLoss:       teamLoss,
			AllowTies:      allowTies,
		})
	}

	return out, nil
}

func (r *ScoringSystemRepository) Save(_ context.Context, systems []scoringsystem.ScoringSystem) error {
	t := tabular.New(
		"id", "name",
		"points_per_individual_match_win", "points_per_individual_match_tie", "points_per_individual_match_loss",
		"points_per_team_match_win", "points_per_team_match_tie", "points_per_team_match_loss",
		"allow_ties",
	)
	for _, s := range systems {
		if err := s.Validate(); err != nil {
			return fmt.Errorf("scoring system %q: %w", s.ID, err)
		}
		t.Append(tabular.Row{
			"id":                               s.ID,
			"name":                             s.Name,
			"points_per_individual_match_win":  s.IndividualWin,
			"points_per_individual_match_tie":  s.IndividualTie,
			"points_per_individual_match_loss": s.IndividualLoss,
			"points_per_team_match_win":        s.TeamWin,
			"points_per_team_match_tie":        s.TeamTie,
			"points_per_team_match_loss":       s.TeamLoss,
			"allow_ties":                       s.AllowTies,
		})
	}

	if err := r.store.Save(schema.TableScoringSystem, t); err != nil {
		return fmt.Errorf("save scoring system table: %w", err)
	}

	return nil
}
