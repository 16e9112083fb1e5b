package memory

import (
	"context"
	"fmt"
	"io/fs"
	"sync"

	"github.com/AmbidextrousCoatie/league-analyzer-sub002/internal/domain/player"
)

type PlayerRepository struct {
	mu    sync.RWMutex
	items []player.Player
	built bool
}

func NewPlayerRepository(players ...player.Player) *PlayerRepository {
	r := &PlayerRepository{}
	if len(players) > 0 {
		r.items = append(r.items, players...)
		r.built = true
	}
	return r
}

func (r *PlayerRepository) Load(_ context.Context) ([]player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if !r.built {
		return nil, fmt.Errorf("player table not built: %w", fs.ErrNotExist)
	}

	out := make([]player.Player, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *PlayerRepository) Save(_ context.Context, players []player.Player) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items = make([]player.Player, len(players))
	copy(r.items, players)
	r.built = true
	return nil
}
