package usecase

import (
	"context"
	"fmt"

	"github.com/AmbidextrousCoatie/league-analyzer-sub002/internal/domain/club"
	"github.com/AmbidextrousCoatie/league-analyzer-sub002/internal/domain/source"
	"github.com/AmbidextrousCoatie/league-analyzer-sub002/internal/platform/logging"
)

// ClubService builds the club table from the team labels of the flat
// dataset, stripped of their trailing team numbers. Aggregate rows
// carry the total sentinel instead of a team and yield no club.
type ClubService struct {
	sourceRepo source.Repository
	clubRepo   club.Repository
	logger     *logging.Logger
}

func NewClubService(sourceRepo source.Repository, clubRepo club.Repository, logger *logging.Logger) *ClubService {
	if logger == nil {
		logger = logging.Default()
	}
	return &ClubService{
		sourceRepo: sourceRepo,
		clubRepo:   clubRepo,
		logger:     logger,
	}
}

func (s *ClubService) Build(ctx context.Context) (BuildResult, error) {
	rows, err := s.sourceRepo.Load(ctx)
	if err != nil {
		return BuildResult{}, fmt.Errorf("load results dataset: %w", err)
	}

	result := BuildResult{Stage: StageClubs, SourceRows: len(rows)}

	seen := make(map[string]struct{})
	names := make([]string, 0)
	for _, row := range rows {
		name, _, ok := club.ParseTeamLabel(row.Team)
		if !ok {
			result.Skipped++
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	sortLabels(names)

	clubs := make([]club.Club, 0, len(names))
	for i, name := range names {
		clubs = append(clubs, club.Club{ID: int64(i + 1), Name: name})
	}

	if err := s.clubRepo.Save(ctx, clubs); err != nil {
		return BuildResult{}, fmt.Errorf("save club table: %w", err)
	}

	result.Rows = len(clubs)
	s.logger.Info("club table built", "rows", result.Rows, "skipped", result.Skipped)

	return result, nil
}
