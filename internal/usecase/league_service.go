package usecase

import (
	"context"
	"fmt"

	"github.com/AmbidextrousCoatie/league-analyzer-sub002/internal/domain/league"
	"github.com/AmbidextrousCoatie/league-analyzer-sub002/internal/domain/source"
	"github.com/AmbidextrousCoatie/league-analyzer-sub002/internal/platform/logging"
)

// LeagueService builds the league table from the distinct league codes
// of the flat dataset, enriched through the league catalog.
type LeagueService struct {
	sourceRepo source.Repository
	leagueRepo league.Repository
	catalog    map[string]league.Info
	logger     *logging.Logger
}

func NewLeagueService(sourceRepo source.Repository, leagueRepo league.Repository, catalog map[string]league.Info, logger *logging.Logger) *LeagueService {
	if catalog == nil {
		catalog = league.DefaultCatalog()
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &LeagueService{
		sourceRepo: sourceRepo,
		leagueRepo: leagueRepo,
		catalog:    catalog,
		logger:     logger,
	}
}

func (s *LeagueService) Build(ctx context.Context) (BuildResult, error) {
	rows, err := s.sourceRepo.Load(ctx)
	if err != nil {
		return BuildResult{}, fmt.Errorf("load results dataset: %w", err)
	}

	result := BuildResult{Stage: StageLeagues, SourceRows: len(rows)}

	seen := make(map[string]struct{})
	codes := make([]string, 0)
	for _, row := range rows {
		if row.League == "" {
			result.Skipped++
			continue
		}
		if _, ok := seen[row.League]; ok {
			continue
		}
		seen[row.League] = struct{}{}
		codes = append(codes, row.League)
	}
	sortLabels(codes)

	leagues := make([]league.League, 0, len(codes))
	for _, code := range codes {
		leagues = append(leagues, league.Resolve(code, s.catalog))
	}

	if err := s.leagueRepo.Save(ctx, leagues); err != nil {
		return BuildResult{}, fmt.Errorf("save league table: %w", err)
	}

	result.Rows = len(leagues)
	s.logger.Info("league table built", "rows", result.Rows, "skipped", result.Skipped)

	return result, nil
}
