// Command analyzer normalizes the flat league results dataset into
// relational csv tables and reconstructs the flat view from them.
//
// Usage:
//
//	analyzer build all --data data/results.csv --tables data/tables
//	analyzer build venues
//	analyzer build results
//	analyzer reconstruct --out data/reconstructed.csv
//	analyzer validate
//	analyzer version
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/AmbidextrousCoatie/league-analyzer-sub002/internal/app"
	"github.com/AmbidextrousCoatie/league-analyzer-sub002/internal/config"
	"github.com/AmbidextrousCoatie/league-analyzer-sub002/internal/platform/logging"
	"github.com/AmbidextrousCoatie/league-analyzer-sub002/internal/schema"
	"github.com/AmbidextrousCoatie/league-analyzer-sub002/internal/usecase"
)

var (
	flagData      string
	flagTables    string
	flagOut       string
	flagSchema    string
	flagScoring   string
	flagLeagues   string
	flagDelimiter string
)

func main() {
	// Load .env if present
	_ = godotenv.Load(".env")

	root := &cobra.Command{
		Use:           "analyzer",
		Short:         "League results normalization and reconstruction CLI",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&flagData, "data", "", "path of the flat results dataset")
	flags.StringVar(&flagTables, "tables", "", "directory of the relational table files")
	flags.StringVar(&flagOut, "out", "", "path of the reconstructed dataset")
	flags.StringVar(&flagSchema, "schema", "", "path of a schema document replacing the built-in one")
	flags.StringVar(&flagScoring, "scoring", "", "path of a scoring catalog replacing the built-in one")
	flags.StringVar(&flagLeagues, "leagues", "", "path of a league catalog replacing the built-in one")
	flags.StringVar(&flagDelimiter, "delimiter", "", "field delimiter of every csv file")

	root.AddCommand(buildCmd())
	root.AddCommand(reconstructCmd())
	root.AddCommand(validateCmd())
	root.AddCommand(versionCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// --------------------------------------------------------------------------
// build command
// --------------------------------------------------------------------------

var stageShorts = map[string]string{
	usecase.StageVenues:         "Build the venue table from distinct locations",
	usecase.StageLeagues:        "Build the league table from distinct league codes",
	usecase.StageScoringSystems: "Write the scoring ruleset catalog as a table",
	usecase.StageLeagueSeasons:  "Build the league_season table",
	usecase.StageEvents:         "Build the event table of match days",
	usecase.StagePlayers:        "Build the player table",
	usecase.StageClubs:          "Build the club table from team labels",
	usecase.StageTeamSeasons:    "Build the team_season table",
	usecase.StageResults:        "Build the game_result fact table",
}

func buildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build relational tables from the flat dataset",
	}
	cmd.AddCommand(buildAllCmd())
	for _, name := range []string{
		usecase.StageVenues, usecase.StageLeagues, usecase.StageScoringSystems,
		usecase.StageLeagueSeasons, usecase.StageEvents, usecase.StagePlayers,
		usecase.StageClubs, usecase.StageTeamSeasons, usecase.StageResults,
	} {
		cmd.AddCommand(buildStageCmd(name))
	}
	return cmd
}

func buildAllCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "all",
		Short: "Run every build stage in dependency order",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApp(func(ctx context.Context, a *app.App) error {
				start := time.Now()
				results, err := a.Pipeline.Run(ctx)
				renderBuildResults(results)
				if err != nil {
					return err
				}
				a.Logger.Info("build finished", "duration", time.Since(start).Round(time.Millisecond))
				return nil
			})
		},
	}
}

func buildStageCmd(name string) *cobra.Command {
	return &cobra.Command{
		Use:   name,
		Short: stageShorts[name],
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApp(func(ctx context.Context, a *app.App) error {
				result, err := a.Pipeline.RunStage(ctx, name)
				if err != nil {
					return err
				}
				renderBuildResults([]usecase.BuildResult{result})
				return nil
			})
		},
	}
}

// --------------------------------------------------------------------------
// reconstruct command
// --------------------------------------------------------------------------

func reconstructCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reconstruct",
		Short: "Reconstruct the flat results view from the relational tables",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApp(func(ctx context.Context, a *app.App) error {
				start := time.Now()
				result, err := a.Reconstruction.Reconstruct(ctx)
				if err != nil {
					return err
				}
				renderReconstruction(result)
				a.Logger.Info("reconstruction finished",
					"out", a.Config.OutPath,
					"duration", time.Since(start).Round(time.Millisecond))
				return nil
			})
		},
	}
}

// --------------------------------------------------------------------------
// validate command
// --------------------------------------------------------------------------

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Re-validate every table file against the schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApp(func(ctx context.Context, a *app.App) error {
				var violations []schema.Violation
				missing := 0
				for _, spec := range a.Catalog.Tables() {
					if spec.Name == schema.TableResults {
						continue
					}
					if !a.Store.Exists(spec.Name) {
						missing++
						fmt.Printf("table %s: missing (%s)\n", spec.Name, a.Store.Path(spec.Name))
						continue
					}
					found, err := a.Store.Validate(spec.Name)
					if err != nil {
						return err
					}
					violations = append(violations, found...)
				}

				if len(violations) > 0 {
					renderViolations(violations)
					return fmt.Errorf("%d violation(s) across the table files", len(violations))
				}
				fmt.Printf("ok: %d table(s) validated, %d missing\n", len(a.Catalog.Tables())-1-missing, missing)
				return nil
			})
		},
	}
}

// --------------------------------------------------------------------------
// version command
// --------------------------------------------------------------------------

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the analyzer version",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			fmt.Printf("%s %s\n", cfg.ServiceName, cfg.ServiceVersion)
			return nil
		},
	}
}

// --------------------------------------------------------------------------
// helpers
// --------------------------------------------------------------------------

func runApp(fn func(ctx context.Context, a *app.App) error) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger := logging.NewJSON(cfg.LogLevel)
	defer func() { _ = logger.Sync() }()
	logging.SetDefault(logger)

	a, err := app.New(cfg, logger)
	if err != nil {
		return err
	}

	if err := fn(ctx, a); err != nil {
		var vErr *schema.ValidationError
		if errors.As(err, &vErr) {
			renderViolations(vErr.Violations)
		}
		return err
	}
	return nil
}

func loadConfig() (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, fmt.Errorf("load config: %w", err)
	}

	if flagData != "" {
		cfg.DataPath = flagData
	}
	if flagTables != "" {
		cfg.TablesDir = flagTables
	}
	if flagOut != "" {
		cfg.OutPath = flagOut
	}
	if flagSchema != "" {
		cfg.SchemaPath = flagSchema
	}
	if flagScoring != "" {
		cfg.ScoringPath = flagScoring
	}
	if flagLeagues != "" {
		cfg.LeaguesPath = flagLeagues
	}
	if flagDelimiter != "" {
		delimiter, err := config.ParseDelimiter(flagDelimiter)
		if err != nil {
			return config.Config{}, err
		}
		cfg.Delimiter = delimiter
	}

	return cfg, nil
}

func renderBuildResults(results []usecase.BuildResult) {
	if len(results) == 0 {
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Stage", "Source Rows", "Rows", "Skipped", "Unresolved", "Duplicates", "Conflicts"})
	for _, r := range results {
		t.AppendRow(table.Row{r.Stage, r.SourceRows, r.Rows, r.Skipped, r.Unresolved, r.Duplicates, r.Conflicts})
	}
	t.Render()
}

func renderReconstruction(result usecase.ReconstructionResult) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Counter", "Value"})
	t.AppendRow(table.Row{"member rows", result.MemberRows})
	t.AppendRow(table.Row{"total rows", result.TotalRows})
	t.AppendRow(table.Row{"opponents from input", result.PrimaryOpponents})
	t.AppendRow(table.Row{"opponents inferred", result.InferredOpponents})
	t.AppendRow(table.Row{"opponents unresolved", result.UnresolvedOpponents})
	t.AppendRow(table.Row{"scoring gaps", result.ScoringGaps})
	t.AppendRow(table.Row{"containment misses", result.ContainmentMisses})
	t.AppendRow(table.Row{"duplicates dropped", result.Duplicates})
	t.Render()
}

func renderViolations(violations []schema.Violation) {
	if len(violations) == 0 {
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Table", "Row", "Column", "Rule", "Message"})
	for _, v := range violations {
		row := ""
		if v.Row > 0 {
			row = strconv.Itoa(v.Row)
		}
		t.AppendRow(table.Row{v.Table, row, v.Column, v.Rule, v.Message})
	}
	t.Render()
	fmt.Printf("(%d violations)\n", len(violations))
}
