package app

import (
	"fmt"

	"github.com/AmbidextrousCoatie/league-analyzer-sub002/internal/config"
	"github.com/AmbidextrousCoatie/league-analyzer-sub002/internal/infrastructure/diagnostics"
	"github.com/AmbidextrousCoatie/league-analyzer-sub002/internal/infrastructure/repository/csv"
	"github.com/AmbidextrousCoatie/league-analyzer-sub002/internal/platform/id"
	"github.com/AmbidextrousCoatie/league-analyzer-sub002/internal/platform/logging"
	"github.com/AmbidextrousCoatie/league-analyzer-sub002/internal/platform/tabular"
	"github.com/AmbidextrousCoatie/league-analyzer-sub002/internal/schema"
	"github.com/AmbidextrousCoatie/league-analyzer-sub002/internal/usecase"
)

// App wires the analyzer: the schema catalog, the csv-backed
// repositories and the builder and reconstruction services on top of
// them. Every run gets its own id, which tags the log lines and the
// diagnostics reports it leaves behind.
type App struct {
	Config config.Config
	Logger *logging.Logger
	RunID  string

	Catalog *schema.Catalog
	Store   *csv.Store

	Pipeline       *usecase.Pipeline
	Reconstruction *usecase.ReconstructionService
}

func New(cfg config.Config, logger *logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Default()
	}

	runID, err := id.NewUUIDGenerator().NewID()
	if err != nil {
		return nil, fmt.Errorf("generate run id: %w", err)
	}
	logger = logger.With("run_id", runID)

	doc := schema.DefaultDocument()
	if cfg.SchemaPath != "" {
		doc, err = schema.Load(cfg.SchemaPath)
		if err != nil {
			return nil, fmt.Errorf("load schema document: %w", err)
		}
	}
	catalog, err := schema.NewCatalog(doc, cfg.DateLayout)
	if err != nil {
		return nil, fmt.Errorf("build schema catalog: %w", err)
	}

	systems, err := loadScoringCatalog(cfg.ScoringPath)
	if err != nil {
		return nil, err
	}
	leagueCatalog, err := loadLeagueCatalog(cfg.LeaguesPath)
	if err != nil {
		return nil, err
	}

	codec := tabular.NewCodec(cfg.Delimiter, cfg.DateLayout)
	store := csv.NewStore(cfg.TablesDir, codec, catalog)
	reporter := diagnostics.NewReporter(cfg.TablesDir, runID)

	sourceRepo := csv.NewSourceRepository(cfg.DataPath, cfg.OutPath, codec, catalog)
	venueRepo := csv.NewVenueRepository(store)
	leagueRepo := csv.NewLeagueRepository(store)
	systemRepo := csv.NewScoringSystemRepository(store)
	seasonRepo := csv.NewLeagueSeasonRepository(store)
	eventRepo := csv.NewEventRepository(store)
	playerRepo := csv.NewPlayerRepository(store)
	clubRepo := csv.NewClubRepository(store)
	teamRepo := csv.NewTeamSeasonRepository(store)
	resultRepo := csv.NewGameResultRepository(store)

	pipeline := usecase.NewPipeline(
		usecase.NewVenueService(sourceRepo, venueRepo, logger),
		usecase.NewLeagueService(sourceRepo, leagueRepo, leagueCatalog, logger),
		usecase.NewScoringSystemService(systems, systemRepo, logger),
		usecase.NewLeagueSeasonService(sourceRepo, leagueRepo, systemRepo, seasonRepo, logger),
		usecase.NewEventService(sourceRepo, seasonRepo, venueRepo, eventRepo, reporter, logger),
		usecase.NewPlayerService(sourceRepo, playerRepo, reporter, logger),
		usecase.NewClubService(sourceRepo, clubRepo, logger),
		usecase.NewTeamSeasonService(sourceRepo, seasonRepo, clubRepo, teamRepo, logger),
		usecase.NewGameResultService(
			sourceRepo, seasonRepo, eventRepo, playerRepo,
			clubRepo, teamRepo, resultRepo, reporter, logger,
		),
		logger,
	)

	reconstruction := usecase.NewReconstructionService(
		sourceRepo, venueRepo, leagueRepo, systemRepo, seasonRepo,
		eventRepo, playerRepo, clubRepo, teamRepo, resultRepo, logger,
	)

	return &App{
		Config:         cfg,
		Logger:         logger,
		RunID:          runID,
		Catalog:        catalog,
		Store:          store,
		Pipeline:       pipeline,
		Reconstruction: reconstruction,
	}, nil
}
