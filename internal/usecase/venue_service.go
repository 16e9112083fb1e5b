package usecase

import (
	"context"
	"fmt"

	"github.com/AmbidextrousCoatie/league-analyzer-sub002/internal/domain/source"
	"github.com/AmbidextrousCoatie/league-analyzer-sub002/internal/domain/venue"
	"github.com/AmbidextrousCoatie/league-analyzer-sub002/internal/platform/logging"
)

// VenueService builds the venue table from the distinct location
// labels of the flat dataset.
type VenueService struct {
	sourceRepo source.Repository
	venueRepo  venue.Repository
	logger     *logging.Logger
}

func NewVenueService(sourceRepo source.Repository, venueRepo venue.Repository, logger *logging.Logger) *VenueService {
	if logger == nil {
		logger = logging.Default()
	}
	return &VenueService{
		sourceRepo: sourceRepo,
		venueRepo:  venueRepo,
		logger:     logger,
	}
}

func (s *VenueService) Build(ctx context.Context) (BuildResult, error) {
	rows, err := s.sourceRepo.Load(ctx)
	if err != nil {
		return BuildResult{}, fmt.Errorf("load results dataset: %w", err)
	}

	result := BuildResult{Stage: StageVenues, SourceRows: len(rows)}

	seen := make(map[string]struct{})
	names := make([]string, 0)
	for _, row := range rows {
		if row.Location == "" {
			result.Skipped++
			continue
		}
		if _, ok := seen[row.Location]; ok {
			continue
		}
		seen[row.Location] = struct{}{}
		names = append(names, row.Location)
	}
	sortLabels(names)

	venues := make([]venue.Venue, 0, len(names))
	for i, name := range names {
		venues = append(venues, venue.Venue{ID: int64(i + 1), Name: name})
	}

	if err := s.venueRepo.Save(ctx, venues); err != nil {
		return BuildResult{}, fmt.Errorf("save venue table: %w", err)
	}

	result.Rows = len(venues)
	s.logger.Info("venue table built", "rows", result.Rows, "skipped", result.Skipped)

	return result, nil
}
