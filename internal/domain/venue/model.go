package venue

import "fmt"

// Venue is a bowling center events take place at. FullName is a curated
// alias; the source only carries the short label.
type Venue struct {
	ID       int64
	Name     string
	FullName string
}

func (v Venue) Validate() error {
	if v.ID <= 0 {
		return fmt.Errorf("venue id must be positive")
	}
	if v.Name == "" {
		return fmt.Errorf("venue name is required")
	}

	return nil
}

// Matches reports whether a source location label refers to this venue.
// Only exact name or full name matches count; anything fuzzier belongs
// in a diagnostics report, not in the join.
func (v Venue) Matches(label string) bool {
	return label != "" && (label == v.Name || label == v.FullName)
}
