package club

import "context"

// Repository describes club table persistence needs from use cases.
type Repository interface {
	Load(ctx context.Context) ([]Club, error)
	Save(ctx context.Context, clubs []Club) error
}
