package memory

import (
	"context"
	"fmt"
	"io/fs"
	"sync"

	"github.com/AmbidextrousCoatie/league-analyzer-sub002/internal/domain/club"
)

type ClubRepository struct {
	mu    sync.RWMutex
	items []club.Club
	built bool
}

func NewClubRepository(clubs ...club.Club) *ClubRepository {
	r := &ClubRepository{}
	if len(clubs) > 0 {
		r.items = append(r.items, clubs...)
		r.built = true
	}
	return r
}

func (r *ClubRepository) Load(_ context.Context) ([]club.Club, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if !r.built {
		return nil, fmt.Errorf("club table not built: %w", fs.ErrNotExist)
	}

	out := make([]club.Club, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *ClubRepository) Save(_ context.Context, clubs []club.Club) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items = make([]club.Club, len(clubs))
	copy(r.items, clubs)
	r.built = true
	return nil
}
