package league

import "context"

// Repository describes league table persistence needs from use cases.
type Repository interface {
	Load(ctx context.Context) ([]League, error)
	Save(ctx context.Context, leagues []League) error
}
