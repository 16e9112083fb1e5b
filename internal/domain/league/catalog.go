package league

import "strings"

// Info carries the descriptive fields behind a league code.
type Info struct {
	LongName string
	Level    int
}

// DefaultCatalog maps the known Bavarian league codes to their long
// names and tier levels. An external catalog file replaces it wholesale.
func DefaultCatalog() map[string]Info {
	return map[string]Info{
		"BayL": {LongName: "Bayernliga", Level: 1},
		"LL":   {LongName: "Landesliga", Level: 2},
		"BOL":  {LongName: "Bezirksoberliga", Level: 3},
		"BZL":  {LongName: "Bezirksliga", Level: 4},
		"KL":   {LongName: "Kreisliga", Level: 5},
	}
}

// Resolve builds a League from a source code. A trailing token after the
// base code is the division ("BZL A"). Codes outside the catalog keep
// the code as their long name with no level.
func Resolve(code string, catalog map[string]Info) League {
	trimmed := strings.TrimSpace(code)
	base := trimmed
	division := ""
	if idx := strings.IndexByte(trimmed, ' '); idx > 0 {
		base = trimmed[:idx]
		division = strings.TrimSpace(trimmed[idx+1:])
	}

	if info, ok := catalog[base]; ok {
		return League{
			ID:       trimmed,
			LongName: info.LongName,
			Level:    info.Level,
			Division: division,
		}
	}

	return League{ID: trimmed, LongName: trimmed}
}
