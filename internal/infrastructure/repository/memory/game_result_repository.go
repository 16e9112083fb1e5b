package memory

import (
	"context"
	"fmt"
	"io/fs"
	"sync"

	"github.com/AmbidextrousCoatie/league-analyzer-sub002/internal/domain/gameresult"
)

type GameResultRepository struct {
	mu    sync.RWMutex
	items []gameresult.GameResult
	built bool
}

func NewGameResultRepository(results ...gameresult.GameResult) *GameResultRepository {
	r := &GameResultRepository{}
	if len(results) > 0 {
		r.items = append(r.items, results...)
		r.built = true
	}
	return r
}

func (r *GameResultRepository) Load(_ context.Context) ([]gameresult.GameResult, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if !r.built {
		return nil, fmt.Errorf("game_result table not built: %w", fs.ErrNotExist)
	}

	out := make([]gameresult.GameResult, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *GameResultRepository) Save(_ context.Context, results []gameresult.GameResult) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items = make([]gameresult.GameResult, len(results))
	copy(r.items, results)
	r.built = true
	return nil
}
