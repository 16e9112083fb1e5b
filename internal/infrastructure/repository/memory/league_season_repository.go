package memory

import (
	"context"
	"fmt"
	"io/fs"
	"sync"

	"github.com/AmbidextrousCoatie/league-analyzer-sub002/internal/domain/leagueseason"
)

type LeagueSeasonRepository struct {
	mu    sync.RWMutex
	items []leagueseason.LeagueSeason
	built bool
}

func NewLeagueSeasonRepository(seasons ...leagueseason.LeagueSeason) *LeagueSeasonRepository {
	r := &LeagueSeasonRepository{}
	if len(seasons) > 0 {
		r.items = append(r.items, seasons...)
		r.built = true
	}
	return r
}

func (r *LeagueSeasonRepository) Load(_ context.Context) ([]leagueseason.LeagueSeason, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if !r.built {
		return nil, fmt.Errorf("league_season table not built: %w", fs.ErrNotExist)
	}

	out := make([]leagueseason.LeagueSeason, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *LeagueSeasonRepository) Save(_ context.Context, seasons []leagueseason.LeagueSeason) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items = make([]leagueseason.LeagueSeason, len(seasons))
	copy(r.items, seasons)
	r.built = true
	return nil
}
