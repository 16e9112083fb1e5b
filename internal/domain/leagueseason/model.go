package leagueseason

import "fmt"

// LeagueSeason is one league playing one season, carrying the counts
// and ruleset derived while building the table.
type LeagueSeason struct {
	ID              int64
	LeagueID        string
	Season          string
	ScoringSystemID string
	PlayersPerTeam  int
	NumberOfTeams   int
}

func (l LeagueSeason) Validate() error {
	if l.ID <= 0 {
		return fmt.Errorf("league season id must be positive")
	}
	if l.LeagueID == "" {
		return fmt.Errorf("league season league id is required")
	}
	if l.Season == "" {
		return fmt.Errorf("league season season is required")
	}
	if l.ScoringSystemID == "" {
		return fmt.Errorf("league season scoring system id is required")
	}
	if l.PlayersPerTeam <= 0 {
		return fmt.Errorf("league season players per team must be positive")
	}
	if l.NumberOfTeams <= 0 {
		return fmt.Errorf("league season number of teams must be positive")
	}

	return nil
}
