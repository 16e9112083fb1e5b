package scoringsystem

import "context"

// Repository describes scoring system table persistence needs from use cases.
type Repository interface {
	Load(ctx context.Context) ([]ScoringSystem, error)
	Save(ctx context.Context, systems []ScoringSystem) error
}
