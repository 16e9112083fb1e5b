package memory

import (
	"context"
	"fmt"
	"io/fs"
	"sync"

	"github.com/AmbidextrousCoatie/league-analyzer-sub002/internal/domain/source"
)

// SourceRepository serves a fixed flat dataset and records what gets
// written back, keeping the two apart the way the csv repository keeps
// the source file apart from the reconstructed output file.
type SourceRepository struct {
	mu    sync.RWMutex
	items []source.Row
	saved []source.Row
	built bool
}

func NewSourceRepository(rows ...source.Row) *SourceRepository {
	r := &SourceRepository{}
	if len(rows) > 0 {
		r.items = append(r.items, rows...)
		r.built = true
	}
	return r
}

func (r *SourceRepository) Load(_ context.Context) ([]source.Row, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if !r.built {
		return nil, fmt.Errorf("results dataset not present: %w", fs.ErrNotExist)
	}

	out := make([]source.Row, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *SourceRepository) Save(_ context.Context, rows []source.Row) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.saved = make([]source.Row, len(rows))
	copy(r.saved, rows)
	return nil
}

// Saved returns the rows most recently written through Save.
func (r *SourceRepository) Saved() []source.Row {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]source.Row, len(r.saved))
	copy(out, r.saved)
	return out
}
