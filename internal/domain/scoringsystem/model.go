package scoringsystem

import "fmt"

// ScoringSystem is one fixed points ruleset. Systems are configuration,
// never derived from result data.
type ScoringSystem struct {
	ID             string
	Name           string
	IndividualWin  float64
	IndividualTie  float64
	IndividualLoss float64
	TeamWin        float64
	TeamTie        float64
	TeamLoss       float64
	AllowTies      bool
}

func (s ScoringSystem) Validate() error {
	if s.ID == "" {
		return fmt.Errorf("scoring system id is required")
	}
	if s.Name == "" {
		return fmt.Errorf("scoring system name is required")
	}
	if s.IndividualWin < s.IndividualTie || s.IndividualTie < s.IndividualLoss {
		return fmt.Errorf("individual points must not increase from win to loss")
	}
	if s.TeamWin < s.TeamTie || s.TeamTie < s.TeamLoss {
		return fmt.Errorf("team points must not increase from win to loss")
	}

	return nil
}
