package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/AmbidextrousCoatie/league-analyzer-sub002/internal/domain/club"
	"github.com/AmbidextrousCoatie/league-analyzer-sub002/internal/domain/event"
	"github.com/AmbidextrousCoatie/league-analyzer-sub002/internal/domain/gameresult"
	"github.com/AmbidextrousCoatie/league-analyzer-sub002/internal/domain/leagueseason"
	"github.com/AmbidextrousCoatie/league-analyzer-sub002/internal/domain/player"
	"github.com/AmbidextrousCoatie/league-analyzer-sub002/internal/domain/source"
	"github.com/AmbidextrousCoatie/league-analyzer-sub002/internal/domain/teamseason"
	"github.com/AmbidextrousCoatie/league-analyzer-sub002/internal/infrastructure/diagnostics"
	"github.com/AmbidextrousCoatie/league-analyzer-sub002/internal/platform/logging"
)

// GameResultService builds the game_result fact table: one row per
// player per round, resolved against every dimension table. Aggregate
// rows and rows without a player identifier are expected and filtered
// silently; rows that fail to resolve an event or team season are
// dropped into a diagnostics report; a player identifier missing from
// the player table aborts, because that table came from the same
// dataset and a miss means the tables are stale.
type GameResultService struct {
	sourceRepo source.Repository
	seasonRepo leagueseason.Repository
	eventRepo  event.Repository
	playerRepo player.Repository
	clubRepo   club.Repository
	teamRepo   teamseason.Repository
	resultRepo gameresult.Repository
	reporter   *diagnostics.Reporter
	logger     *logging.Logger
}

func NewGameResultService(
	sourceRepo source.Repository,
	seasonRepo leagueseason.Repository,
	eventRepo event.Repository,
	playerRepo player.Repository,
	clubRepo club.Repository,
	teamRepo teamseason.Repository,
	resultRepo gameresult.Repository,
	reporter *diagnostics.Reporter,
	logger *logging.Logger,
) *GameResultService {
	if logger == nil {
		logger = logging.Default()
	}
	return &GameResultService{
		sourceRepo: sourceRepo,
		seasonRepo: seasonRepo,
		eventRepo:  eventRepo,
		playerRepo: playerRepo,
		clubRepo:   clubRepo,
		teamRepo:   teamRepo,
		resultRepo: resultRepo,
		reporter:   reporter,
		logger:     logger,
	}
}

// SkippedResult is one diagnostics entry for a member row dropped
// during the fact build.
type SkippedResult struct {
	Reason string `json:"reason"`
	Season string `json:"season"`
	League string `json:"league"`
	Week   int    `json:"week"`
	Date   string `json:"date"`
	Round  int    `json:"round"`
	Team   string `json:"team"`
	Player string `json:"player"`
}

const (
	skipReasonEvent      = "unresolved event"
	skipReasonTeamSeason = "unresolved team season"
	skipReasonPosition   = "missing lineup position"
	skipReasonRoundMatch = "invalid round or match number"
)

type eventLookupKey struct {
	leagueSeasonID int64
	week           int
	date           string
}

type resultKey struct {
	eventID        int64
	playerID       int64
	lineupPosition int
	matchNumber    int
	roundNumber    int
	teamSeasonID   int64
}

func (s *GameResultService) Build(ctx context.Context) (BuildResult, error) {
	rows, err := s.sourceRepo.Load(ctx)
	if err != nil {
		return BuildResult{}, fmt.Errorf("load results dataset: %w", err)
	}

	seasons, err := s.seasonRepo.Load(ctx)
	if err != nil {
		return BuildResult{}, dependencyErr("league_season", err)
	}
	seasonByKey := make(map[leagueSeasonKey]leagueseason.LeagueSeason, len(seasons))
	for _, ls := range seasons {
		seasonByKey[leagueSeasonKey{league: ls.LeagueID, season: ls.Season}] = ls
	}

	events, err := s.eventRepo.Load(ctx)
	if err != nil {
		return BuildResult{}, dependencyErr("event", err)
	}
	// Events are keyed without the venue: the flat row pins the match
	// day down by league, season, week and date alone.
	eventByKey := make(map[eventLookupKey]int64, len(events))
	for _, ev := range events {
		key := eventLookupKey{leagueSeasonID: ev.LeagueSeasonID, week: ev.LeagueWeek, date: dateKey(ev.Date)}
		if _, ok := eventByKey[key]; !ok {
			eventByKey[key] = ev.ID
		}
	}

	players, err := s.playerRepo.Load(ctx)
	if err != nil {
		return BuildResult{}, dependencyErr("player", err)
	}
	playerIDs := make(map[int64]struct{}, len(players))
	for _, p := range players {
		playerIDs[p.ID] = struct{}{}
	}

	clubs, err := s.clubRepo.Load(ctx)
	if err != nil {
		return BuildResult{}, dependencyErr("club", err)
	}
	clubByName := make(map[string]int64, len(clubs))
	for _, c := range clubs {
		clubByName[c.Name] = c.ID
	}

	teams, err := s.teamRepo.Load(ctx)
	if err != nil {
		return BuildResult{}, dependencyErr("team_season", err)
	}
	teamByKey := make(map[teamSeasonKey]int64, len(teams))
	for _, ts := range teams {
		teamByKey[teamSeasonKey{leagueSeasonID: ts.LeagueSeasonID, clubID: ts.ClubID, teamNumber: ts.TeamNumber}] = ts.ID
	}

	result := BuildResult{Stage: StageResults, SourceRows: len(rows)}

	seen := make(map[resultKey]struct{})
	var skipped []SkippedResult
	var facts []gameresult.GameResult

	for _, row := range rows {
		label := strings.TrimSpace(row.Player)
		if label == club.AggregateLabel || row.Team == club.AggregateLabel || !row.HasPlayerID() {
			result.Skipped++
			continue
		}

		drop := func(reason string) {
			result.Unresolved++
			skipped = append(skipped, SkippedResult{
				Reason: reason,
				Season: row.Season,
				League: row.League,
				Week:   row.Week,
				Date:   dateKey(row.Date),
				Round:  row.RoundNumber,
				Team:   row.Team,
				Player: label,
			})
		}

		if row.Position == nil {
			drop(skipReasonPosition)
			continue
		}
		if row.RoundNumber <= 0 || row.MatchNumber <= 0 {
			drop(skipReasonRoundMatch)
			continue
		}

		ls, ok := seasonByKey[leagueSeasonKey{league: row.League, season: row.Season}]
		if !ok {
			drop(skipReasonEvent)
			continue
		}
		eventID, ok := eventByKey[eventLookupKey{leagueSeasonID: ls.ID, week: row.Week, date: dateKey(row.Date)}]
		if !ok {
			drop(skipReasonEvent)
			continue
		}

		name, number, ok := club.ParseTeamLabel(row.Team)
		if !ok {
			result.Skipped++
			continue
		}
		clubID, ok := clubByName[name]
		if !ok {
			drop(skipReasonTeamSeason)
			continue
		}
		teamSeasonID, ok := teamByKey[teamSeasonKey{leagueSeasonID: ls.ID, clubID: clubID, teamNumber: number}]
		if !ok {
			drop(skipReasonTeamSeason)
			continue
		}

		playerID := *row.PlayerID
		if _, ok := playerIDs[playerID]; !ok {
			return BuildResult{}, fmt.Errorf(
				"%w: player %d (%q) missing from player table; rebuild the players stage",
				ErrReferentialIntegrity, playerID, label,
			)
		}

		key := resultKey{
			eventID:        eventID,
			playerID:       playerID,
			lineupPosition: *row.Position,
			matchNumber:    row.MatchNumber,
			roundNumber:    row.RoundNumber,
			teamSeasonID:   teamSeasonID,
		}
		if _, ok := seen[key]; ok {
			result.Duplicates++
			continue
		}
		seen[key] = struct{}{}

		var score *int
		if row.Score != nil {
			v := *row.Score
			score = &v
		}
		facts = append(facts, gameresult.GameResult{
			EventID:        eventID,
			PlayerID:       playerID,
			TeamSeasonID:   teamSeasonID,
			LineupPosition: *row.Position,
			Score:          score,
			RoundNumber:    row.RoundNumber,
			MatchNumber:    row.MatchNumber,
			IsDisqualified: score == nil,
		})
	}

	if err := s.reporter.Emit(diagnostics.ReportSkippedResults, len(skipped), skipped); err != nil {
		return BuildResult{}, err
	}

	sort.Slice(facts, func(i, j int) bool {
		a, b := facts[i], facts[j]
		if a.EventID != b.EventID {
			return a.EventID < b.EventID
		}
		if a.RoundNumber != b.RoundNumber {
			return a.RoundNumber < b.RoundNumber
		}
		if a.MatchNumber != b.MatchNumber {
			return a.MatchNumber < b.MatchNumber
		}
		if a.TeamSeasonID != b.TeamSeasonID {
			return a.TeamSeasonID < b.TeamSeasonID
		}
		if a.LineupPosition != b.LineupPosition {
			return a.LineupPosition < b.LineupPosition
		}
		return a.PlayerID < b.PlayerID
	})
	for i := range facts {
		facts[i].ID = int64(i + 1)
	}

	if err := s.resultRepo.Save(ctx, facts); err != nil {
		return BuildResult{}, fmt.Errorf("save game_result table: %w", err)
	}

	result.Rows = len(facts)
	s.logger.Info("game_result table built",
		"rows", result.Rows, "skipped", result.Skipped,
		"unresolved", result.Unresolved, "duplicates", result.Duplicates)

	return result, nil
}
