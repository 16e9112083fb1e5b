package csv

import (
	"context"
	"fmt"

	"github.com/AmbidextrousCoatie/league-analyzer-sub002/internal/domain/league"
	"github.com/AmbidextrousCoatie/league-analyzer-sub002/internal/platform/tabular"
	"github.com/AmbidextrousCoatie/league-analyzer-sub002/internal/schema"
)

type LeagueRepository struct {
	store *Store
}

func NewLeagueRepository(store *Store) *LeagueRepository {
	return &LeagueRepository{store: store}
}

func (r *LeagueRepository) Load(_ context.Context) ([]league.League, error) {
	t, err := r.store.Load(schema.TableLeague)
	if err != nil {
		return nil, fmt.Errorf("load league table: %w", err)
	}

	out := make([]league.League, 0, t.Len())
	for i, row := range t.Rows {
		id, ok := tabular.String(row, "id")
		if !ok {
			return nil, fmt.Errorf("league table row %d: missing id", i+1)
		}
		longName, _ := tabular.String(row, "long_name")
		level, _ := tabular.Int(row, "level")
		division, _ := tabular.String(row, "division")

		out = append(out, league.League{
			ID:       id,
			LongName: longName,
			Level:    int(level),
			Division: division,
		})
	}

	return out, nil
}

func (r *LeagueRepository) Save(_ context.Context, leagues []league.League) error {
	t := tabular.New("id", "long_name", "level", "division")
	for _, l := range leagues {
		if err := l.Validate(); err != nil {
			return fmt.Errorf("league %q: %w", l.ID, err)
		}
		t.Append(tabular.Row{
			"id":        l.ID,
			"long_name": l.LongName,
			"level":     optInt(l.Level),
			"division":  optString(l.Division),
		})
	}

	if err := r.store.Save(schema.TableLeague, t); err != nil {
		return fmt.Errorf("save league table: %w", err)
	}

	return nil
}
