package memory

import (
	"time"

	"github.com/AmbidextrousCoatie/league-analyzer-sub002/internal/domain/club"
	"github.com/AmbidextrousCoatie/league-analyzer-sub002/internal/domain/source"
)

const (
	SeedSeason = "24/25"
	SeedLeague = "BayL"
	SeedVenue  = "Bowlingcenter München"

	SeedTeamA = "SV Musterstadt"
	SeedTeamB = "TSV Beispielhausen 2"

	SeedPlayerA1 = "Huber, Franz"
	SeedPlayerA2 = "Maier, Sepp"
	SeedPlayerB1 = "Müller, Hans"
	SeedPlayerB2 = "Schmidt, Anna"
)

const (
	SeedPlayerA1ID int64 = 101
	SeedPlayerA2ID int64 = 102
	SeedPlayerB1ID int64 = 201
	SeedPlayerB2ID int64 = 202
)

var (
	SeedWeek1Date = time.Date(2024, time.September, 14, 0, 0, 0, 0, time.UTC)
	SeedWeek2Date = time.Date(2024, time.September, 28, 0, 0, 0, 0, time.UTC)
)

// SeedRows returns a complete two-team league day times two: both teams
// play each other twice per week over two weeks. Week one rows carry
// transcribed opponents, week two leaves them blank so resolution has to
// infer the pairing. One week-two score is absent (disqualification).
// Rows come out in the dataset's transcription order: both players of a
// team, then the team total.
func SeedRows() []source.Row {
	rows := make([]source.Row, 0, 24)
	rows = append(rows, seedRound(1, SeedWeek1Date, 1, true,
		seedTeamRound{scores: [2]*int{intPtr(200), intPtr(190)}, points: [2]float64{1, 0.5}, team: 2},
		seedTeamRound{scores: [2]*int{intPtr(180), intPtr(190)}, points: [2]float64{0, 0.5}, team: 0},
	)...)
	rows = append(rows, seedRound(1, SeedWeek1Date, 2, true,
		seedTeamRound{scores: [2]*int{intPtr(185), intPtr(170)}, points: [2]float64{0, 0}, team: 0},
		seedTeamRound{scores: [2]*int{intPtr(195), intPtr(210)}, points: [2]float64{1, 1}, team: 2},
	)...)
	rows = append(rows, seedRound(2, SeedWeek2Date, 1, false,
		seedTeamRound{scores: [2]*int{intPtr(205), nil}, points: [2]float64{1, 0}, team: 0},
		seedTeamRound{scores: [2]*int{intPtr(190), intPtr(199)}, points: [2]float64{0, 1}, team: 2},
	)...)
	rows = append(rows, seedRound(2, SeedWeek2Date, 2, false,
		seedTeamRound{scores: [2]*int{intPtr(188), intPtr(201)}, points: [2]float64{0.5, 1}, team: 2},
		seedTeamRound{scores: [2]*int{intPtr(188), intPtr(179)}, points: [2]float64{0.5, 0}, team: 0},
	)...)
	return rows
}

type seedTeamRound struct {
	scores [2]*int
	points [2]float64
	team   float64
}

func seedRound(week int, date time.Time, round int, withOpponents bool, a, b seedTeamRound) []source.Row {
	memberOpponentA, memberOpponentB := "", ""
	if withOpponents {
		memberOpponentA, memberOpponentB = SeedTeamB, SeedTeamA
	}

	return []source.Row{
		seedMember(week, date, round, SeedTeamA, 0, SeedPlayerA1, SeedPlayerA1ID, memberOpponentA, a.scores[0], a.points[0]),
		seedMember(week, date, round, SeedTeamA, 1, SeedPlayerA2, SeedPlayerA2ID, memberOpponentA, a.scores[1], a.points[1]),
		seedTotal(week, date, round, SeedTeamA, SeedTeamB, sumScores(a.scores), a.team),
		seedMember(week, date, round, SeedTeamB, 0, SeedPlayerB1, SeedPlayerB1ID, memberOpponentB, b.scores[0], b.points[0]),
		seedMember(week, date, round, SeedTeamB, 1, SeedPlayerB2, SeedPlayerB2ID, memberOpponentB, b.scores[1], b.points[1]),
		seedTotal(week, date, round, SeedTeamB, SeedTeamA, sumScores(b.scores), b.team),
	}
}

func seedMember(week int, date time.Time, round int, team string, position int, name string, playerID int64, opponent string, score *int, points float64) source.Row {
	return source.Row{
		Season:         SeedSeason,
		Week:           week,
		Date:           date,
		League:         SeedLeague,
		PlayersPerTeam: 2,
		Location:       SeedVenue,
		RoundNumber:    round,
		MatchNumber:    1,
		Team:           team,
		Position:       intPtr(position),
		Player:         name,
		PlayerID:       int64Ptr(playerID),
		Opponent:       opponent,
		Score:          score,
		Points:         floatPtr(points),
	}
}

func seedTotal(week int, date time.Time, round int, team, opponent string, score int, points float64) source.Row {
	return source.Row{
		Season:         SeedSeason,
		Week:           week,
		Date:           date,
		League:         SeedLeague,
		PlayersPerTeam: 2,
		Location:       SeedVenue,
		RoundNumber:    round,
		MatchNumber:    1,
		Team:           team,
		Player:         club.AggregateLabel,
		Opponent:       opponent,
		Score:          intPtr(score),
		Points:         floatPtr(points),
	}
}

func sumScores(scores [2]*int) int {
	total := 0
	for _, s := range scores {
		if s != nil {
			total += *s
		}
	}
	return total
}

func intPtr(v int) *int { return &v }

func int64Ptr(v int64) *int64 { return &v }

func floatPtr(v float64) *float64 { return &v }
