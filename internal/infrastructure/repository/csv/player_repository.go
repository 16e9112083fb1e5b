package csv

import (
	"context"
	"fmt"

	"github.com/AmbidextrousCoatie/league-analyzer-sub002/internal/domain/player"
	"github.com/AmbidextrousCoatie/league-analyzer-sub002/internal/platform/tabular"
	"github.com/AmbidextrousCoatie/league-analyzer-sub002/internal/schema"
)

type PlayerRepository struct {
	store *Store
}

func NewPlayerRepository(store *Store) *PlayerRepository {
	return &PlayerRepository{store: store}
}

func (r *PlayerRepository) Load(_ context.Context) ([]player.Player, error) {
	t, err := r.store.Load(schema.TablePlayer)
	if err != nil {
		return nil, fmt.Errorf("load player table: %w", err)
	}

	out := make([]player.Player, 0, t.Len())
	for i, row := range t.Rows {
		id, ok := tabular.Int(row, "id")
		if !ok {
			return nil, fmt.Errorf("player table row %d: missing id", i+1)
		}
		givenName, _ := tabular.String(row, "given_name")
		familyName, _ := tabular.String(row, "family_name")
		fullName, _ := tabular.String(row, "full_name")

		out = append(out, player.Player{
			ID:         id,
			GivenName:  givenName,
			FamilyName: familyName,
			FullName:   fullName,
		})
	}

	return out, nil
}

func (r *PlayerRepository) Save(_ context.Context, players []player.Player) error {
	t := tabular.New("id", "given_name", "family_name", "full_name")
	for _, p := range players {
		if err := p.Validate(); err != nil {
			return fmt.Errorf("player %d: %w", p.ID, err)
		}
		t.Append(tabular.Row{
			"id":          p.ID,
			"given_name":  optString(p.GivenName),
			"family_name": p.FamilyName,
			"full_name":   p.FullName,
		})
	}

	if err := r.store.Save(schema.TablePlayer, t); err != nil {
		return fmt.Errorf("save player table: %w", err)
	}

	return nil
}
