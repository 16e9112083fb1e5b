package memory

import (
	"context"
	"fmt"
	"io/fs"
	"sync"

	"github.com/AmbidextrousCoatie/league-analyzer-sub002/internal/domain/scoringsystem"
)

type ScoringSystemRepository struct {
	mu    sync.RWMutex
	items []scoringsystem.ScoringSystem
	built bool
}

func NewScoringSystemRepository(systems ...scoringsystem.ScoringSystem) *ScoringSystemRepository {
	r := &ScoringSystemRepository{}
	if len(systems) > 0 {
		r.items = append(r.items, systems...)
		r.built = true
	}
	return r
}

func (r *ScoringSystemRepository) Load(_ context.Context) ([]scoringsystem.ScoringSystem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if !r.built {
		return nil, fmt.Errorf("scoring_system table not built: %w", fs.ErrNotExist)
	}

	out := make([]scoringsystem.ScoringSystem, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *ScoringSystemRepository) Save(_ context.Context, systems []scoringsystem.ScoringSystem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items = make([]scoringsystem.ScoringSystem, len(systems))
	copy(r.items, systems)
	r.built = true
	return nil
}
