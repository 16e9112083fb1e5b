package memory

import (
	"context"
	"fmt"
	"io/fs"
	"sync"

	"github.com/AmbidextrousCoatie/league-analyzer-sub002/internal/domain/league"
)

type LeagueRepository struct {
	mu    sync.RWMutex
	items []league.League
	built bool
}

func NewLeagueRepository(leagues ...league.League) *LeagueRepository {
	r := &LeagueRepository{}
	if len(leagues) > 0 {
		r.items = append(r.items, leagues...)
		r.built = true
	}
	return r
}

func (r *LeagueRepository) Load(_ context.Context) ([]league.League, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if !r.built {
		return nil, fmt.Errorf("league table not built: %w", fs.ErrNotExist)
	}

	out := make([]league.League, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *LeagueRepository) Save(_ context.Context, leagues []league.League) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items = make([]league.League, len(leagues))
	copy(r.items, leagues)
	r.built = true
	return nil
}
