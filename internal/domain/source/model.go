package source

import "time"

// Row is one transcribed line of the flat results dataset: one player
// (or one synthesized team total) in one round of one match. Pointer
// fields are absent in the file when nil.
type Row struct {
	Season         string
	Week           int
	Date           time.Time
	League         string
	PlayersPerTeam int
	Location       string
	RoundNumber    int
	MatchNumber    int
	Team           string
	Position       *int
	Player         string
	PlayerID       *int64
	Opponent       string
	Score          *int
	Points         *float64
	InputData      string
	ComputedData   string
}

// HasPlayerID reports whether the row carries a usable player identifier.
// Aggregate rows and transcription gaps leave it absent or non-positive.
func (r Row) HasPlayerID() bool {
	return r.PlayerID != nil && *r.PlayerID > 0
}
