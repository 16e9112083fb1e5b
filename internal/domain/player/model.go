package player

import (
	"fmt"
	"strings"
)

// Player is an individual keyed by the identifier carried in the source
// dataset, not by a generated surrogate.
type Player struct {
	ID         int64
	GivenName  string
	FamilyName string
	FullName   string
}

func (p Player) Validate() error {
	if p.ID <= 0 {
		return fmt.Errorf("player id must be positive")
	}
	if p.FamilyName == "" {
		return fmt.Errorf("player family name is required")
	}
	if p.FullName == "" {
		return fmt.Errorf("player full name is required")
	}

	return nil
}

// ParseName splits a source label of the form "Family, Given". Labels
// without a comma fall back to the last whitespace token as the family
// name with everything before it as given names.
func ParseName(label string) (string, string) {
	trimmed := strings.TrimSpace(label)
	if trimmed == "" {
		return "", ""
	}

	if idx := strings.IndexByte(trimmed, ','); idx >= 0 {
		family := strings.TrimSpace(trimmed[:idx])
		given := strings.TrimSpace(trimmed[idx+1:])
		return given, family
	}

	fields := strings.Fields(trimmed)
	if len(fields) == 1 {
		return "", fields[0]
	}
	return strings.Join(fields[:len(fields)-1], " "), fields[len(fields)-1]
}
