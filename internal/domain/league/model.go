package league

import "fmt"

// League is a competition tier identified by its short code, the way
// the source dataset refers to it.
type League struct {
	ID       string
	LongName string
	Level    int
	Division string
}

func (l League) Validate() error {
	if l.ID == "" {
		return fmt.Errorf("league id is required")
	}
	if l.LongName == "" {
		return fmt.Errorf("league long name is required")
	}

	return nil
}
