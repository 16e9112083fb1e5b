package source

import "context"

// Repository reads the flat results dataset and writes its
// reconstructed counterpart.
type Repository interface {
	Load(ctx context.Context) ([]Row, error)
	Save(ctx context.Context, rows []Row) error
}
