package usecase

import (
	"context"
	"fmt"

	"github.com/AmbidextrousCoatie/league-analyzer-sub002/internal/platform/logging"
)

// Stage is one named builder of the normalization pipeline.
type Stage struct {
	Name  string
	Build func(ctx context.Context) (BuildResult, error)
}

// Pipeline runs the builder stages in dependency order: dimensions
// before the tables referencing them, the fact table last. Each stage
// persists its table before the next one starts, so a failed run can
// resume at the failing stage.
type Pipeline struct {
	stages []Stage
	logger *logging.Logger
}

func NewPipeline(
	venues *VenueService,
	leagues *LeagueService,
	systems *ScoringSystemService,
	seasons *LeagueSeasonService,
	events *EventService,
	players *PlayerService,
	clubs *ClubService,
	teams *TeamSeasonService,
	results *GameResultService,
	logger *logging.Logger,
) *Pipeline {
	if logger == nil {
		logger = logging.Default()
	}
	return &Pipeline{
		logger: logger,
		stages: []Stage{
			{Name: StageVenues, Build: venues.Build},
			{Name: StageLeagues, Build: leagues.Build},
			{Name: StageScoringSystems, Build: systems.Build},
			{Name: StageLeagueSeasons, Build: seasons.Build},
			{Name: StageEvents, Build: events.Build},
			{Name: StagePlayers, Build: players.Build},
			{Name: StageClubs, Build: clubs.Build},
			{Name: StageTeamSeasons, Build: teams.Build},
			{Name: StageResults, Build: results.Build},
		},
	}
}

// StageNames returns the stage names in pipeline order.
func (p *Pipeline) StageNames() []string {
	names := make([]string, len(p.stages))
	for i, stage := range p.stages {
		names[i] = stage.Name
	}
	return names
}

// Run executes every stage in order and stops at the first failure.
// The results of the completed stages are returned either way.
func (p *Pipeline) Run(ctx context.Context) ([]BuildResult, error) {
	results := make([]BuildResult, 0, len(p.stages))
	for _, stage := range p.stages {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		result, err := stage.Build(ctx)
		if err != nil {
			return results, fmt.Errorf("stage %s: %w", stage.Name, err)
		}
		p.logger.Info("stage finished", "summary", result.Summary())
		results = append(results, result)
	}
	return results, nil
}

// RunStage executes one named stage.
func (p *Pipeline) RunStage(ctx context.Context, name string) (BuildResult, error) {
	for _, stage := range p.stages {
		if stage.Name != name {
			continue
		}
		result, err := stage.Build(ctx)
		if err != nil {
			return BuildResult{}, fmt.Errorf("stage %s: %w", name, err)
		}
		return result, nil
	}
	return BuildResult{}, fmt.Errorf("%w: unknown stage %q", ErrInvalidInput, name)
}
