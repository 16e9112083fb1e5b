package csv

import (
	"context"
	"fmt"

	"github.com/AmbidextrousCoatie/league-analyzer-sub002/internal/domain/event"
	"github.com/AmbidextrousCoatie/league-analyzer-sub002/internal/platform/tabular"
	"github.com/AmbidextrousCoatie/league-analyzer-sub002/internal/schema"
)

type EventRepository struct {
	store *Store
}

func NewEventRepository(store *Store) *EventRepository {
	return &EventRepository{store: store}
}

func (r *EventRepository) Load(_ context.Context) ([]event.Event, error) {
	t, err := r.store.Load(schema.TableEvent)
	if err != nil {
		return nil, fmt.Errorf("load event table: %w", err)
	}

	out := make([]event.Event, 0, t.Len())
	for i, row := range t.Rows {
		id, ok := tabular.Int(row, "id")
		if !ok {
			return nil, fmt.Errorf("event table row %d: missing id", i+1)
		}
		leagueSeasonID, _ := tabular.Int(row, "league_season_id")
		leagueWeek, _ := tabular.Int(row, "league_week")
		date, _ := tabular.Date(row, "date")
		venueID, _ := tabular.Int(row, "venue_id")
		status, _ := tabular.String(row, "status")
		eventType, _ := tabular.String(row, "event_type")

		out = append(out, event.Event{
			ID:             id,
			LeagueSeasonID: leagueSeasonID,
			LeagueWeek:     int(leagueWeek),
			Date:           date,
			VenueID:        venueID,
			Status:         status,
			EventType:      eventType,
		})
	}

	return out, nil
}

func (r *EventRepository) Save(_ context.Context, events []event.Event) error {
	t := tabular.New("id", "league_season_id", "league_week", "date", "venue_id", "status", "event_type")
	for _, e := range events {
		if err := e.Validate(); err != nil {
			return fmt.Errorf("event %d: %w", e.ID, err)
		}
		t.Append(tabular.Row{
			"id":               e.ID,
			"league_season_id": e.LeagueSeasonID,
			"league_week":      int64(e.LeagueWeek),
			"date":             e.Date,
			"venue_id":         e.VenueID,
			"status":           e.Status,
			"event_type":       e.EventType,
		})
	}

	if err := r.store.Save(schema.TableEvent, t); err != nil {
		return fmt.Errorf("save event table: %w", err)
	}

	return nil
}
