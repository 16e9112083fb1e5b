package csv

import (
	"context"
	"fmt"

	"github.com/AmbidextrousCoatie/league-analyzer-sub002/internal/domain/venue"
	"github.com/AmbidextrousCoatie/league-analyzer-sub002/internal/platform/tabular"
	"github.com/AmbidextrousCoatie/league-analyzer-sub002/internal/schema"
)

type VenueRepository struct {
	store *Store
}

func NewVenueRepository(store *Store) *VenueRepository {
	return &VenueRepository{store: store}
}

func (r *VenueRepository) Load(_ context.Context) ([]venue.Venue, error) {
	t, err := r.store.Load(schema.TableVenue)
	if err != nil {
		return nil, fmt.Errorf("load venue table: %w", err)
	}

	out := make([]venue.Venue, 0, t.Len())
	for i, row := range t.Rows {
		id, ok := tabular.Int(row, "id")
		if !ok {
			return nil, fmt.Errorf("venue table row %d: missing id", i+1)
		}
		name, _ := tabular.String(row, "name")
		fullName, _ := tabular.String(row, "full_name")

		out = append(out, venue.Venue{ID: id, Name: name, FullName: fullName})
	}

	return out, nil
}

func (r *VenueRepository) Save(_ context.Context, venues []venue.Venue) error {
	t := tabular.New("id", "name", "full_name")
	for _, v := range venues {
		if err := v.Validate(); err != nil {
			return fmt.Errorf("venue %d: %w", v.ID, err)
		}
		t.Append(tabular.Row{
			"id":        v.ID,
			"name":      v.Name,
			"full_name": optString(v.FullName),
		})
	}

	if err := r.store.Save(schema.TableVenue, t); err != nil {
		return fmt.Errorf("save venue table: %w", err)
	}

	return nil
}
