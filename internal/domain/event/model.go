package event

import (
	"fmt"
	"time"
)

// The source dataset only holds transcribed historical results, so every
// event is a finished league match until richer inputs exist.
const (
	StatusCompleted = "completed"
	TypeLeagueMatch = "league_match"
)

// Event is one match day of a league season at a venue.
type Event struct {
	ID             int64
	LeagueSeasonID int64
	LeagueWeek     int
	Date           time.Time
	VenueID        int64
	Status         string
	EventType      string
}

func (e Event) Validate() error {
	if e.ID <= 0 {
		return fmt.Errorf("event id must be positive")
	}
	if e.LeagueSeasonID <= 0 {
		return fmt.Errorf("event league season id must be positive")
	}
	if e.LeagueWeek <= 0 {
		return fmt.Errorf("event league week must be positive")
	}
	if e.Date.IsZero() {
		return fmt.Errorf("event date is required")
	}
	if e.VenueID <= 0 {
		return fmt.Errorf("event venue id must be positive")
	}
	if e.Status == "" {
		return fmt.Errorf("event status is required")
	}
	if e.EventType == "" {
		return fmt.Errorf("event type is required")
	}

	return nil
}
