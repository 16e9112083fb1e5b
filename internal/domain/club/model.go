package club

import (
	"fmt"
	"strconv"
	"strings"
)

// AggregateLabel marks synthesized team total rows in the flat dataset.
// It is never a club.
const AggregateLabel = "Team Total"

// Club is the organization behind one or more teams.
type Club struct {
	ID   int64
	Name string
}

func (c Club) Validate() error {
	if c.ID <= 0 {
		return fmt.Errorf("club id must be positive")
	}
	if c.Name == "" {
		return fmt.Errorf("club name is required")
	}

	return nil
}

// ParseTeamLabel splits a team label into club name and team number.
// A trailing integer is the team number; labels without one belong to
// team 1. The aggregate sentinel yields no club.
func ParseTeamLabel(label string) (string, int, bool) {
	trimmed := strings.TrimSpace(label)
	if trimmed == "" || trimmed == AggregateLabel {
		return "", 0, false
	}

	idx := strings.LastIndexByte(trimmed, ' ')
	if idx > 0 {
		if number, err := strconv.Atoi(trimmed[idx+1:]); err == nil && number > 0 {
			return strings.TrimSpace(trimmed[:idx]), number, true
		}
	}

	return trimmed, 1, true
}

// TeamLabel renders the flat-dataset label for a club team. Team 1 uses
// the bare club name, matching how source labels omit the suffix.
func TeamLabel(name string, number int) string {
	if number <= 1 {
		return name
	}
	return name + " " + strconv.Itoa(number)
}
