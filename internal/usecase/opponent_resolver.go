package usecase

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/AmbidextrousCoatie/league-analyzer-sub002/internal/domain/source"
)

// OpponentKey addresses one member row of one round for primary-source
// opponent lookup.
type OpponentKey struct {
	Season string
	League string
	Week   int
	Date   string
	Round  int
	Team   string
	Player string
}

func NewOpponentKey(season, league string, week int, date time.Time, round int, team, player string) OpponentKey {
	return OpponentKey{
		Season: season,
		League: league,
		Week:   week,
		Date:   dateKey(date),
		Round:  round,
		Team:   team,
		Player: player,
	}
}

// RoundEntry is one member game of an (event, round) group as the
// inference sees it: a team fielding a lineup position. Entry order is
// the order the games were encountered in.
type RoundEntry struct {
	Team     string
	Position int
}

// PairingStrategy chunks teams sharing an identical position set into
// match pairs. Teams arrive in encounter order; a team left out of
// every pair stays unresolved.
type PairingStrategy func(teams []string) [][2]string

// EncounterOrderPairing pairs adjacent teams in encounter order. With
// exactly two teams this is the plain mutual pairing; larger groups are
// chunked pairwise, which mirrors how concurrent matches are listed in
// the transcription.
func EncounterOrderPairing(teams []string) [][2]string {
	pairs := make([][2]string, 0, len(teams)/2)
	for i := 0; i+1 < len(teams); i += 2 {
		pairs = append(pairs, [2]string{teams[i], teams[i+1]})
	}
	return pairs
}

// OpponentResolver derives the opponent of each member row. A label
// transcribed in the original dataset always wins; rows without one
// fall back to grouping the round's teams by identical lineup position
// sets and pairing within each group.
type OpponentResolver struct {
	primary  map[OpponentKey]string
	strategy PairingStrategy
}

// NewOpponentResolver indexes the transcribed opponents of the original
// flat dataset. Passing no rows leaves the index empty and every lookup
// to inference.
func NewOpponentResolver(rows []source.Row) *OpponentResolver {
	primary := make(map[OpponentKey]string)
	for _, row := range rows {
		if row.Opponent == "" {
			continue
		}
		key := NewOpponentKey(row.Season, row.League, row.Week, row.Date, row.RoundNumber, row.Team, row.Player)
		if _, ok := primary[key]; !ok {
			primary[key] = row.Opponent
		}
	}
	return &OpponentResolver{primary: primary, strategy: EncounterOrderPairing}
}

// SetStrategy swaps the pairing used for rounds where more than two
// teams share a position set.
func (r *OpponentResolver) SetStrategy(strategy PairingStrategy) {
	if strategy != nil {
		r.strategy = strategy
	}
}

// Primary returns the opponent the original dataset recorded for the
// keyed member row, if any.
func (r *OpponentResolver) Primary(key OpponentKey) (string, bool) {
	opponent, ok := r.primary[key]
	return opponent, ok
}

// Infer pairs the teams of one (event, round) group by identical
// lineup position sets and returns each paired team's opponent. Teams
// whose position set nobody else shares are absent from the result.
func (r *OpponentResolver) Infer(entries []RoundEntry) map[string]string {
	positions := make(map[string]map[int]struct{})
	teamOrder := make([]string, 0)
	for _, entry := range entries {
		set, ok := positions[entry.Team]
		if !ok {
			set = make(map[int]struct{})
			positions[entry.Team] = set
			teamOrder = append(teamOrder, entry.Team)
		}
		set[entry.Position] = struct{}{}
	}

	groups := make(map[string][]string)
	groupOrder := make([]string, 0)
	for _, team := range teamOrder {
		key := positionSetKey(positions[team])
		if _, ok := groups[key]; !ok {
			groupOrder = append(groupOrder, key)
		}
		groups[key] = append(groups[key], team)
	}

	opponents := make(map[string]string)
	for _, key := range groupOrder {
		teams := groups[key]
		if len(teams) < 2 {
			continue
		}
		for _, pair := range r.strategy(teams) {
			opponents[pair[0]] = pair[1]
			opponents[pair[1]] = pair[0]
		}
	}
	return opponents
}

func positionSetKey(set map[int]struct{}) string {
	positions := make([]int, 0, len(set))
	for p := range set {
		positions = append(positions, p)
	}
	sort.Ints(positions)

	parts := make([]string, len(positions))
	for i, p := range positions {
		parts[i] = strconv.Itoa(p)
	}
	return strings.Join(parts, ",")
}
