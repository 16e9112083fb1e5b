package player

import "context"

// Repository describes player table persistence needs from use cases.
type Repository interface {
	Load(ctx context.Context) ([]Player, error)
	Save(ctx context.Context, players []Player) error
}
