package memory

import (
	"context"
	"fmt"
	"io/fs"
	"sync"

	"github.com/AmbidextrousCoatie/league-analyzer-sub002/internal/domain/event"
)

type EventRepository struct {
	mu    sync.RWMutex
	items []event.Event
	built bool
}

func NewEventRepository(events ...event.Event) *EventRepository {
	r := &EventRepository{}
	if len(events) > 0 {
		r.items = append(r.items, events...)
		r.built = true
	}
	return r
}

func (r *EventRepository) Load(_ context.Context) ([]event.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if !r.built {
		return nil, fmt.Errorf("event table not built: %w", fs.ErrNotExist)
	}

	out := make([]event.Event, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *EventRepository) Save(_ context.Context, events []event.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items = make([]event.Event, len(events))
	copy(r.items, events)
	r.built = true
	return nil
}
