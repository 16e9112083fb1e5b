package usecase

import (
	"context"
	"fmt"

	"github.com/AmbidextrousCoatie/league-analyzer-sub002/internal/domain/scoringsystem"
	"github.com/AmbidextrousCoatie/league-analyzer-sub002/internal/platform/logging"
)

// ScoringSystemService writes the configured ruleset catalog as the
// scoring_system table. Unlike the other builders it reads nothing from
// the flat dataset; the catalog is configuration.
type ScoringSystemService struct {
	systems []scoringsystem.ScoringSystem
	repo    scoringsystem.Repository
	logger  *logging.Logger
}

func NewScoringSystemService(systems []scoringsystem.ScoringSystem, repo scoringsystem.Repository, logger *logging.Logger) *ScoringSystemService {
	if len(systems) == 0 {
		systems = scoringsystem.DefaultCatalog()
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &ScoringSystemService{
		systems: systems,
		repo:    repo,
		logger:  logger,
	}
}

func (s *ScoringSystemService) Build(ctx context.Context) (BuildResult, error) {
	if err := s.repo.Save(ctx, s.systems); err != nil {
		return BuildResult{}, fmt.Errorf("save scoring_system table: %w", err)
	}

	result := BuildResult{Stage: StageScoringSystems, Rows: len(s.systems)}
	s.logger.Info("scoring_system table built", "rows", result.Rows)

	return result, nil
}
