package csv

import (
	"context"
	"fmt"

	"github.com/AmbidextrousCoatie/league-analyzer-sub002/internal/domain/club"
	"github.com/AmbidextrousCoatie/league-analyzer-sub002/internal/platform/tabular"
	"github.com/AmbidextrousCoatie/league-analyzer-sub002/internal/schema"
)

type ClubRepository struct {
	store *Store
}

func NewClubRepository(store *Store) *ClubRepository {
	return &ClubRepository{store: store}
}

func (r *ClubRepository) Load(_ context.Context) ([]club.Club, error) {
	t, err := r.store.Load(schema.TableClub)
	if err != nil {
		return nil, fmt.Errorf("load club table: %w", err)
	}

	out := make([]club.Club, 0, t.Len())
	for i, row := range t.Rows {
		id, ok := tabular.Int(row, "id")
		if !ok {
			return nil, fmt.Errorf("club table row %d: missing id", i+1)
		}
		name, _ := tabular.String(row, "name")

		out = append(out, club.Club{ID: id, Name: name})
	}

	return out, nil
}

func (r *ClubRepository) Save(_ context.Context, clubs []club.Club) error {
	t := tabular.New("id", "name")
	for _, c := range clubs {
		if err := c.Validate(); err != nil {
			return fmt.Errorf("club %d: %w", c.ID, err)
		}
		t.Append(tabular.Row{
			"id":   c.ID,
			"name": c.Name,
		})
	}

	if err := r.store.Save(schema.TableClub, t); err != nil {
		return fmt.Errorf("save club table: %w", err)
	}

	return nil
}
