package gameresult

import "fmt"

// Lineup positions run 0 through 3 within a round.
const MaxLineupPosition = 3

// GameResult is one player's scored game in one round of an event.
// Score is absent exactly when the player was disqualified.
type GameResult struct {
	ID             int64
	EventID        int64
	PlayerID       int64
	TeamSeasonID   int64
	LineupPosition int
	Score          *int
	RoundNumber    int
	MatchNumber    int
	IsDisqualified bool
	Handicap       *int
}

func (g GameResult) Validate() error {
	if g.ID <= 0 {
		return fmt.Errorf("game result id must be positive")
	}
	if g.EventID <= 0 {
		return fmt.Errorf("game result event id must be positive")
	}
	if g.PlayerID <= 0 {
		return fmt.Errorf("game result player id must be positive")
	}
	if g.TeamSeasonID <= 0 {
		return fmt.Errorf("game result team season id must be positive")
	}
	if g.LineupPosition < 0 || g.LineupPosition > MaxLineupPosition {
		return fmt.Errorf("game result lineup position must be between 0 and %d", MaxLineupPosition)
	}
	if g.RoundNumber <= 0 {
		return fmt.Errorf("game result round number must be positive")
	}
	if g.MatchNumber <= 0 {
		return fmt.Errorf("game result match number must be positive")
	}
	if (g.Score == nil) != g.IsDisqualified {
		return fmt.Errorf("game result score must be absent exactly when disqualified")
	}

	return nil
}
