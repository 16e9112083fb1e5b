package usecase

import (
	"sort"

	"github.com/AmbidextrousCoatie/league-analyzer-sub002/internal/domain/scoringsystem"
)

// MemberGame is one player's game as the scoring engine sees it: the
// team, the lineup position and the pin count. A nil score is a
// disqualification and compares as zero.
type MemberGame struct {
	Team     string
	Position int
	Score    *int
}

// RoundScores carries the computed points of one (event, round) group.
// Individual points are keyed by team and lineup position; team points
// by match key ("A vs B") and team. Gaps counts comparisons that ended
// tied under a ruleset that forbids ties; those points stay at zero.
type RoundScores struct {
	Individual map[string]map[int]float64
	TeamPoints map[string]map[string]float64
	Gaps       int
}

// IndividualPoints returns the points of one (team, position) game, or
// zero when the position was never scored.
func (r RoundScores) IndividualPoints(team string, position int) float64 {
	if byPosition, ok := r.Individual[team]; ok {
		return byPosition[position]
	}
	return 0
}

// MatchKeys returns the round's match keys in sorted order.
func (r RoundScores) MatchKeys() []string {
	keys := make([]string, 0, len(r.TeamPoints))
	for key := range r.TeamPoints {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// ScoringEngine turns the games of one (event, round) group into
// points under a ruleset. Pin counts decide outcomes per shared lineup
// position; team outcomes compare the summed pins of the same shared
// positions.
type ScoringEngine struct{}

func NewScoringEngine() *ScoringEngine {
	return &ScoringEngine{}
}

// Score computes the points of one (event, round) group. pairs maps
// each team to its resolved opponent; only mutual pairs are scored and
// every unpaired team's games stay at zero points.
func (e *ScoringEngine) Score(system scoringsystem.ScoringSystem, games []MemberGame, pairs map[string]string) RoundScores {
	scores := RoundScores{
		Individual: make(map[string]map[int]float64),
		TeamPoints: make(map[string]map[string]float64),
	}

	byTeam := make(map[string]map[int]int)
	teamOrder := make([]string, 0)
	for _, game := range games {
		if _, ok := byTeam[game.Team]; !ok {
			byTeam[game.Team] = make(map[int]int)
			teamOrder = append(teamOrder, game.Team)
		}
		byTeam[game.Team][game.Position] = absScore(game.Score)
	}

	scored := make(map[string]struct{})
	for _, team := range teamOrder {
		if _, ok := scored[team]; ok {
			continue
		}
		opponent := pairs[team]
		if opponent == "" || pairs[opponent] != team {
			continue
		}
		if _, ok := byTeam[opponent]; !ok {
			continue
		}
		scored[team] = struct{}{}
		scored[opponent] = struct{}{}

		matchKey := team + " vs " + opponent
		e.scoreMatch(system, &scores, matchKey, team, opponent, byTeam[team], byTeam[opponent])
	}

	return scores
}

func (e *ScoringEngine) scoreMatch(
	system scoringsystem.ScoringSystem,
	scores *RoundScores,
	matchKey, home, away string,
	homeGames, awayGames map[int]int,
) {
	shared := make([]int, 0, len(homeGames))
	for position := range homeGames {
		if _, ok := awayGames[position]; ok {
			shared = append(shared, position)
		}
	}
	sort.Ints(shared)

	homePoints := ensureTeam(scores.Individual, home)
	awayPoints := ensureTeam(scores.Individual, away)

	homeTotal, awayTotal := 0, 0
	for _, position := range shared {
		h, a := homeGames[position], awayGames[position]
		homeTotal += h
		awayTotal += a

		switch {
		case h > a:
			homePoints[position] = system.IndividualWin
			awayPoints[position] = system.IndividualLoss
		case h < a:
			homePoints[position] = system.IndividualLoss
			awayPoints[position] = system.IndividualWin
		case system.AllowTies:
			homePoints[position] = system.IndividualTie
			awayPoints[position] = system.IndividualTie
		default:
			homePoints[position] = 0
			awayPoints[position] = 0
			scores.Gaps++
		}
	}

	teamPoints := make(map[string]float64, 2)
	switch {
	case homeTotal > awayTotal:
		teamPoints[home] = system.TeamWin
		teamPoints[away] = system.TeamLoss
	case homeTotal < awayTotal:
		teamPoints[home] = system.TeamLoss
		teamPoints[away] = system.TeamWin
	case system.AllowTies:
		teamPoints[home] = system.TeamTie
		teamPoints[away] = system.TeamTie
	default:
		teamPoints[home] = 0
		teamPoints[away] = 0
		scores.Gaps++
	}
	scores.TeamPoints[matchKey] = teamPoints
}

func ensureTeam(individual map[string]map[int]float64, team string) map[int]float64 {
	points, ok := individual[team]
	if !ok {
		points = make(map[int]float64)
		individual[team] = points
	}
	return points
}

func absScore(score *int) int {
	if score == nil {
		return 0
	}
	if *score < 0 {
		return -*score
	}
	return *score
}
