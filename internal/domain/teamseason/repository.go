package teamseason

import "context"

// Repository describes team season table persistence needs from use cases.
type Repository interface {
	Load(ctx context.Context) ([]TeamSeason, error)
	Save(ctx context.Context, teams []TeamSeason) error
}
