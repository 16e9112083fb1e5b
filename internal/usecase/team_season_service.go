package usecase

import (
	"context"
	"fmt"
	"sort"

	"github.com/AmbidextrousCoatie/league-analyzer-sub002/internal/domain/club"
	"github.com/AmbidextrousCoatie/league-analyzer-sub002/internal/domain/leagueseason"
	"github.com/AmbidextrousCoatie/league-analyzer-sub002/internal/domain/source"
	"github.com/AmbidextrousCoatie/league-analyzer-sub002/internal/domain/teamseason"
	"github.com/AmbidextrousCoatie/league-analyzer-sub002/internal/platform/logging"
)

// TeamSeasonService builds the team_season table: one row per club team
// entered into a league season, resolved against the league_season and
// club tables.
type TeamSeasonService struct {
	sourceRepo source.Repository
	seasonRepo leagueseason.Repository
	clubRepo   club.Repository
	teamRepo   teamseason.Repository
	logger     *logging.Logger
}

func NewTeamSeasonService(
	sourceRepo source.Repository,
	seasonRepo leagueseason.Repository,
	clubRepo club.Repository,
	teamRepo teamseason.Repository,
	logger *logging.Logger,
) *TeamSeasonService {
	if logger == nil {
		logger = logging.Default()
	}
	return &TeamSeasonService{
		sourceRepo: sourceRepo,
		seasonRepo: seasonRepo,
		clubRepo:   clubRepo,
		teamRepo:   teamRepo,
		logger:     logger,
	}
}

type teamSeasonKey struct {
	leagueSeasonID int64
	clubID         int64
	teamNumber     int
}

func (s *TeamSeasonService) Build(ctx context.Context) (BuildResult, error) {
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

	clubs, err := s.clubRepo.Load(ctx)
	if err != nil {
		return BuildResult{}, dependencyErr("club", err)
	}
	clubByName := make(map[string]int64, len(clubs))
	for _, c := range clubs {
		clubByName[c.Name] = c.ID
	}

	result := BuildResult{Stage: StageTeamSeasons, SourceRows: len(rows)}

	seen := make(map[teamSeasonKey]struct{})
	var teams []teamseason.TeamSeason

	for _, row := range rows {
		name, number, ok := club.ParseTeamLabel(row.Team)
		if !ok || row.League == "" || row.Season == "" {
			result.Skipped++
			continue
		}

		ls, ok := seasonByKey[leagueSeasonKey{league: row.League, season: row.Season}]
		if !ok {
			return BuildResult{}, fmt.Errorf(
				"%w: league season (%s, %s) missing from league_season table",
				ErrReferentialIntegrity, row.League, row.Season,
			)
		}
		clubID, ok := clubByName[name]
		if !ok {
			return BuildResult{}, fmt.Errorf(
				"%w: club %q missing from club table", ErrReferentialIntegrity, name,
			)
		}

		key := teamSeasonKey{leagueSeasonID: ls.ID, clubID: clubID, teamNumber: number}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}

		teams = append(teams, teamseason.TeamSeason{
			LeagueSeasonID: ls.ID,
			ClubID:         clubID,
			TeamNumber:     number,
		})
	}

	sort.Slice(teams, func(i, j int) bool {
		a, b := teams[i], teams[j]
		if a.LeagueSeasonID != b.LeagueSeasonID {
			return a.LeagueSeasonID < b.LeagueSeasonID
		}
		if a.ClubID != b.ClubID {
			return a.ClubID < b.ClubID
		}
		return a.TeamNumber < b.TeamNumber
	})
	for i := range teams {
		teams[i].ID = int64(i + 1)
	}

	if err := s.teamRepo.Save(ctx, teams); err != nil {
		return BuildResult{}, fmt.Errorf("save team_season table: %w", err)
	}

	result.Rows = len(teams)
	s.logger.Info("team_season table built", "rows", result.Rows, "skipped", result.Skipped)

	return result, nil
}
