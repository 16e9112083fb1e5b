package leagueseason

import "context"

// Repository describes league season table persistence needs from use cases.
type Repository interface {
	Load(ctx context.Context) ([]LeagueSeason, error)
	Save(ctx context.Context, seasons []LeagueSeason) error
}
