package teamseason

import "fmt"

// TeamSeason is one club team entered into one league season.
type TeamSeason struct {
	ID             int64
	LeagueSeasonID int64
	ClubID         int64
	TeamNumber     int
}

func (t TeamSeason) Validate() error {
	if t.ID <= 0 {
		return fmt.Errorf("team season id must be positive")
	}
	if t.LeagueSeasonID <= 0 {
		return fmt.Errorf("team season league season id must be positive")
	}
	if t.ClubID <= 0 {
		return fmt.Errorf("team season club id must be positive")
	}
	if t.TeamNumber <= 0 {
		return fmt.Errorf("team season team number must be positive")
	}

	return nil
}
