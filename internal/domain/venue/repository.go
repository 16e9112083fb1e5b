package venue

import "context"

// Repository describes venue table persistence needs from use cases.
type Repository interface {
	Load(ctx context.Context) ([]Venue, error)
	Save(ctx context.Context, venues []Venue) error
}
