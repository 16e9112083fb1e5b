package memory

import (
	"context"
	"fmt"
	"io/fs"
	"sync"

	"github.com/AmbidextrousCoatie/league-analyzer-sub002/internal/domain/teamseason"
)

type TeamSeasonRepository struct {
	mu    sync.RWMutex
	items []teamseason.TeamSeason
	built bool
}

func NewTeamSeasonRepository(teams ...teamseason.TeamSeason) *TeamSeasonRepository {
	r := &TeamSeasonRepository{}
	if len(teams) > 0 {
		r.items = append(r.items, teams...)
		r.built = true
	}
	return r
}

func (r *TeamSeasonRepository) Load(_ context.Context) ([]teamseason.TeamSeason, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if !r.built {
		return nil, fmt.Errorf("team_season table not built: %w", fs.ErrNotExist)
	}

	out := make([]teamseason.TeamSeason, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *TeamSeasonRepository) Save(_ context.Context, teams []teamseason.TeamSeason) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items = make([]teamseason.TeamSeason, len(teams))
	copy(r.items, teams)
	r.built = true
	return nil
}
