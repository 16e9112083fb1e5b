package memory

import (
	"context"
	"fmt"
	"io/fs"
	"sync"

	"github.com/AmbidextrousCoatie/league-analyzer-sub002/internal/domain/venue"
)

type VenueRepository struct {
	mu    sync.RWMutex
	items []venue.Venue
	built bool
}

func NewVenueRepository(venues ...venue.Venue) *VenueRepository {
	r := &VenueRepository{}
	if len(venues) > 0 {
		r.items = append(r.items, venues...)
		r.built = true
	}
	return r
}

func (r *VenueRepository) Load(_ context.Context) ([]venue.Venue, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if !r.built {
		return nil, fmt.Errorf("venue table not built: %w", fs.ErrNotExist)
	}

	out := make([]venue.Venue, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *VenueRepository) Save(_ context.Context, venues []venue.Venue) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items = make([]venue.Venue, len(venues))
	copy(r.items, venues)
	r.built = true
	return nil
}
