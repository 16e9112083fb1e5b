package scoringsystem

import (
	"strconv"
	"strings"
)

const (
	TwoPointID   = "liga_bayern_2pt"
	ThreePointID = "liga_bayern_3pt"
)

// DefaultCatalog returns the built-in rulesets in catalog order.
func DefaultCatalog() []ScoringSystem {
	return []ScoringSystem{
		{
			ID:             TwoPointID,
			Name:           "Liga Bayern 2-Punkte-System",
			IndividualWin:  1,
			IndividualTie:  0.5,
			IndividualLoss: 0,
			TeamWin:        2,
			TeamTie:        1,
			TeamLoss:       0,
			AllowTies:      true,
		},
		{
			ID:             ThreePointID,
			Name:           "Liga Bayern 3-Punkte-System",
			IndividualWin:  1,
			IndividualTie:  0.5,
			IndividualLoss: 0,
			TeamWin:        3,
			TeamTie:        1,
			TeamLoss:       0,
			AllowTies:      true,
		},
	}
}

// SelectID picks the ruleset for a season label. Seasons whose numeric
// prefix reaches 25 play under the 3-point system; older seasons and
// labels without a numeric prefix stay on the 2-point one.
func SelectID(season string) string {
	trimmed := strings.TrimSpace(season)
	end := 0
	for end < len(trimmed) && trimmed[end] >= '0' && trimmed[end] <= '9' {
		end++
	}
	if end == 0 {
		return TwoPointID
	}

	prefix, err := strconv.Atoi(trimmed[:end])
	if err != nil {
		return TwoPointID
	}
	// Season labels use two-digit years ("24/25"); four-digit labels
	// reduce to the same cutoff.
	if prefix >= 100 {
		prefix %= 100
	}
	if prefix < 25 {
		return TwoPointID
	}
	return ThreePointID
}
