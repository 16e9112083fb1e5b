package event

import "context"

// Repository describes event table persistence needs from use cases.
type Repository interface {
	Load(ctx context.Context) ([]Event, error)
	Save(ctx context.Context, events []Event) error
}
