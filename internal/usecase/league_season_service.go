package usecase

import (
	"context"
	"fmt"
	"sort"

	"github.com/AmbidextrousCoatie/league-analyzer-sub002/internal/domain/club"
	"github.com/AmbidextrousCoatie/league-analyzer-sub002/internal/domain/league"
	"github.com/AmbidextrousCoatie/league-analyzer-sub002/internal/domain/leagueseason"
	"github.com/AmbidextrousCoatie/league-analyzer-sub002/internal/domain/scoringsystem"
	"github.com/AmbidextrousCoatie/league-analyzer-sub002/internal/domain/source"
	"github.com/AmbidextrousCoatie/league-analyzer-sub002/internal/platform/logging"
)

// LeagueSeasonService builds the league_season table from the distinct
// (league, season) pairs of the flat dataset. Each pair is enriched with
// the squad size, the distinct team count and the ruleset picked by the
// season cutoff.
type LeagueSeasonService struct {
	sourceRepo source.Repository
	leagueRepo league.Repository
	systemRepo scoringsystem.Repository
	seasonRepo leagueseason.Repository
	logger     *logging.Logger
}

func NewLeagueSeasonService(
	sourceRepo source.Repository,
	leagueRepo league.Repository,
	systemRepo scoringsystem.Repository,
	seasonRepo leagueseason.Repository,
	logger *logging.Logger,
) *LeagueSeasonService {
	if logger == nil {
		logger = logging.Default()
	}
	return &LeagueSeasonService{
		sourceRepo: sourceRepo,
		leagueRepo: leagueRepo,
		systemRepo: systemRepo,
		seasonRepo: seasonRepo,
		logger:     logger,
	}
}

type leagueSeasonKey struct {
	league string
	season string
}

type leagueSeasonGroup struct {
	playersPerTeam int
	teams          map[string]struct{}
}

func (s *LeagueSeasonService) Build(ctx context.Context) (BuildResult, error) {
	rows, err := s.sourceRepo.Load(ctx)
	if err != nil {
		return BuildResult{}, fmt.Errorf("load results dataset: %w", err)
	}

	leagues, err := s.leagueRepo.Load(ctx)
	if err != nil {
		return BuildResult{}, dependencyErr("league", err)
	}
	leagueIDs := make(map[string]struct{}, len(leagues))
	for _, l := range leagues {
		leagueIDs[l.ID] = struct{}{}
	}

	systems, err := s.systemRepo.Load(ctx)
	if err != nil {
		return BuildResult{}, dependencyErr("scoring_system", err)
	}
	systemIDs := make(map[string]struct{}, len(systems))
	for _, sys := range systems {
		systemIDs[sys.ID] = struct{}{}
	}

	result := BuildResult{Stage: StageLeagueSeasons, SourceRows: len(rows)}

	groups := make(map[leagueSeasonKey]*leagueSeasonGroup)
	for _, row := range rows {
		if row.League == "" || row.Season == "" {
			result.Skipped++
			continue
		}
		key := leagueSeasonKey{league: row.League, season: row.Season}
		group, ok := groups[key]
		if !ok {
			group = &leagueSeasonGroup{teams: make(map[string]struct{})}
			groups[key] = group
		}
		if row.PlayersPerTeam > group.playersPerTeam {
			group.playersPerTeam = row.PlayersPerTeam
		}
		if _, _, ok := club.ParseTeamLabel(row.Team); ok {
			group.teams[row.Team] = struct{}{}
		}
	}

	keys := make([]leagueSeasonKey, 0, len(groups))
	for key := range groups {
		keys = append(keys, key)
	}
	coll := newCollator()
	sort.Slice(keys, func(i, j int) bool {
		if c := coll.CompareString(keys[i].league, keys[j].league); c != 0 {
			return c < 0
		}
		return keys[i].season < keys[j].season
	})

	seasons := make([]leagueseason.LeagueSeason, 0, len(keys))
	for i, key := range keys {
		if _, ok := leagueIDs[key.league]; !ok {
			return BuildResult{}, fmt.Errorf(
				"%w: league %q missing from league table", ErrReferentialIntegrity, key.league,
			)
		}
		systemID := scoringsystem.SelectID(key.season)
		if _, ok := systemIDs[systemID]; !ok {
			return BuildResult{}, fmt.Errorf(
				"%w: scoring system %q missing from scoring_system table", ErrReferentialIntegrity, systemID,
			)
		}

		group := groups[key]
		seasons = append(seasons, leagueseason.LeagueSeason{
			ID:              int64(i + 1),
			LeagueID:        key.league,
			Season:          key.season,
			ScoringSystemID: systemID,
			PlayersPerTeam:  group.playersPerTeam,
			NumberOfTeams:   len(group.teams),
		})
	}

	if err := s.seasonRepo.Save(ctx, seasons); err != nil {
		return BuildResult{}, fmt.Errorf("save league_season table: %w", err)
	}

	result.Rows = len(seasons)
	s.logger.Info("league_season table built", "rows", result.Rows, "skipped", result.Skipped)

	return result, nil
}
