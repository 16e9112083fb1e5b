package gameresult

import "context"

// Repository describes game result table persistence needs from use cases.
type Repository interface {
	Load(ctx context.Context) ([]GameResult, error)
	Save(ctx context.Context, results []GameResult) error
}
