package usecase

import (
	"testing"

	"github.com/AmbidextrousCoatie/league-analyzer-sub002/internal/domain/scoringsystem"
)

func twoPointSystem() scoringsystem.ScoringSystem {
	return scoringsystem.DefaultCatalog()[0]
}

func mutualPair(a, b string) map[string]string {
	return map[string]string{a: b, b: a}
}

func TestScoringEngine_Score(t *testing.T) {
	engine := NewScoringEngine()

	games := []MemberGame{
		{Team: "A", Position: 0, Score: intPtr(200)},
		{Team: "A", Position: 1, Score: intPtr(190)},
		{Team: "B", Position: 0, Score: intPtr(180)},
		{Team: "B", Position: 1, Score: intPtr(190)},
	}
	scores := engine.Score(twoPointSystem(), games, mutualPair("A", "B"))

	if got := scores.IndividualPoints("A", 0); got != 1 {
		t.Fatalf("position 0 winner: got=%v want=1", got)
	}
	if got := scores.IndividualPoints("B", 0); got != 0 {
		t.Fatalf("position 0 loser: got=%v want=0", got)
	}
	if a, b := scores.IndividualPoints("A", 1), scores.IndividualPoints("B", 1); a != 0.5 || b != 0.5 {
		t.Fatalf("tied position: got=%v/%v want=0.5/0.5", a, b)
	}

	// 390 vs 370 pins: the team comparison goes to A.
	team := scores.TeamPoints["A vs B"]
	if team["A"] != 2 || team["B"] != 0 {
		t.Fatalf("unexpected team points: %v", team)
	}
	if scores.Gaps != 0 {
		t.Fatalf("unexpected gaps: %d", scores.Gaps)
	}
	if keys := scores.MatchKeys(); len(keys) != 1 || keys[0] != "A vs B" {
		t.Fatalf("unexpected match keys: %v", keys)
	}
}

func TestScoringEngine_Score_TeamTie(t *testing.T) {
	engine := NewScoringEngine()

	games := []MemberGame{
		{Team: "A", Position: 0, Score: intPtr(190)},
		{Team: "A", Position: 1, Score: intPtr(180)},
		{Team: "B", Position: 0, Score: intPtr(180)},
		{Team: "B", Position: 1, Score: intPtr(190)},
	}
	scores := engine.Score(twoPointSystem(), games, mutualPair("A", "B"))

	team := scores.TeamPoints["A vs B"]
	if team["A"] != 1 || team["B"] != 1 {
		t.Fatalf("370 vs 370 must split the team points: %v", team)
	}
}

func TestScoringEngine_Score_TiesForbidden(t *testing.T) {
	engine := NewScoringEngine()
	system := twoPointSystem()
	system.AllowTies = false

	games := []MemberGame{
		{Team: "A", Position: 0, Score: intPtr(190)},
		{Team: "B", Position: 0, Score: intPtr(190)},
	}
	scores := engine.Score(system, games, mutualPair("A", "B"))

	if a, b := scores.IndividualPoints("A", 0), scores.IndividualPoints("B", 0); a != 0 || b != 0 {
		t.Fatalf("forbidden tie must stay at zero: %v/%v", a, b)
	}
	team := scores.TeamPoints["A vs B"]
	if team["A"] != 0 || team["B"] != 0 {
		t.Fatalf("forbidden team tie must stay at zero: %v", team)
	}
	// One individual and one team comparison both ended tied.
	if scores.Gaps != 2 {
		t.Fatalf("unexpected gaps: %d", scores.Gaps)
	}
}

func TestScoringEngine_Score_DisqualificationComparesAsZero(t *testing.T) {
	engine := NewScoringEngine()

	games := []MemberGame{
		{Team: "A", Position: 0, Score: nil},
		{Team: "B", Position: 0, Score: intPtr(120)},
	}
	scores := engine.Score(twoPointSystem(), games, mutualPair("A", "B"))

	if got := scores.IndividualPoints("A", 0); got != 0 {
		t.Fatalf("disqualified game took points: %v", got)
	}
	if got := scores.IndividualPoints("B", 0); got != 1 {
		t.Fatalf("opponent of a disqualified game must win: %v", got)
	}
}

func TestScoringEngine_Score_UnpairedTeamStaysUnscored(t *testing.T) {
	engine := NewScoringEngine()

	games := []MemberGame{
		{Team: "A", Position: 0, Score: intPtr(200)},
		{Team: "B", Position: 0, Score: intPtr(180)},
		{Team: "C", Position: 0, Score: intPtr(240)},
	}
	scores := engine.Score(twoPointSystem(), games, mutualPair("A", "B"))

	if got := scores.IndividualPoints("C", 0); got != 0 {
		t.Fatalf("unpaired team took points: %v", got)
	}
	if len(scores.TeamPoints) != 1 {
		t.Fatalf("unpaired team produced a match: %v", scores.MatchKeys())
	}
}

func TestScoringEngine_Score_ThreePointTeamWin(t *testing.T) {
	engine := NewScoringEngine()
	system := scoringsystem.DefaultCatalog()[1]

	games := []MemberGame{
		{Team: "A", Position: 0, Score: intPtr(200)},
		{Team: "B", Position: 0, Score: intPtr(180)},
	}
	scores := engine.Score(system, games, mutualPair("A", "B"))

	team := scores.TeamPoints["A vs B"]
	if team["A"] != 3 || team["B"] != 0 {
		t.Fatalf("unexpected team points under the 3-point ruleset: %v", team)
	}
}
