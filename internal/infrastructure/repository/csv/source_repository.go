package csv

import (
	"context"
	"fmt"

	"github.com/AmbidextrousCoatie/league-analyzer-sub002/internal/domain/source"
	"github.com/AmbidextrousCoatie/league-analyzer-sub002/internal/platform/tabular"
	"github.com/AmbidextrousCoatie/league-analyzer-sub002/internal/schema"
)

// Column labels of the flat results dataset, as transcribed.
const (
	colSeason         = "Season"
	colWeek           = "Week"
	colDate           = "Date"
	colLeague         = "League"
	colPlayersPerTeam = "Players per Team"
	colLocation       = "Location"
	colRoundNumber    = "Round Number"
	colMatchNumber    = "Match Number"
	colTeam           = "Team"
	colPosition       = "Position"
	colPlayer         = "Player"
	colPlayerID       = "Player ID"
	colOpponent       = "Opponent"
	colScore          = "Score"
	colPoints         = "Points"
	colInputData      = "Input Data"
	colComputedData   = "Computed Data"
)

// SourceRepository reads the flat results dataset and writes its
// reconstructed counterpart. Unlike the table repositories it is bound
// to two explicit file paths, not the tables directory: the transcribed
// input never lives next to the build artifacts.
type SourceRepository struct {
	dataPath string
	outPath  string
	codec    tabular.Codec
	catalog  *schema.Catalog
}

func NewSourceRepository(dataPath, outPath string, codec tabular.Codec, catalog *schema.Catalog) *SourceRepository {
	return &SourceRepository{
		dataPath: dataPath,
		outPath:  outPath,
		codec:    codec,
		catalog:  catalog,
	}
}

// Load reads, coerces and validates the flat dataset. Any violation of
// the declared shape (a required column absent, an empty cell in a
// non-nullable column) surfaces as the aggregated ValidationError; the
// file must be fixed, the loader never guesses.
func (r *SourceRepository) Load(_ context.Context) ([]source.Row, error) {
	t, err := r.codec.ReadFile(r.dataPath)
	if err != nil {
		return nil, err
	}
	if err := r.catalog.Coerce(t, schema.TableResults); err != nil {
		return nil, err
	}
	violations, err := r.catalog.Validate(t, schema.TableResults)
	if err != nil {
		return nil, err
	}
	if len(violations) > 0 {
		return nil, fmt.Errorf("results dataset %s: %w", r.dataPath,
			&schema.ValidationError{Table: schema.TableResults, Violations: violations})
	}

	out := make([]source.Row, 0, t.Len())
	for _, row := range t.Rows {
		item := source.Row{}
		item.Season, _ = tabular.String(row, colSeason)
		if v, ok := tabular.Int(row, colWeek); ok {
			item.Week = int(v)
		}
		item.Date, _ = tabular.Date(row, colDate)
		item.League, _ = tabular.String(row, colLeague)
		if v, ok := tabular.Int(row, colPlayersPerTeam); ok {
			item.PlayersPerTeam = int(v)
		}
		item.Location, _ = tabular.String(row, colLocation)
		if v, ok := tabular.Int(row, colRoundNumber); ok {
			item.RoundNumber = int(v)
		}
		if v, ok := tabular.Int(row, colMatchNumber); ok {
			item.MatchNumber = int(v)
		}
		item.Team, _ = tabular.String(row, colTeam)
		if v, ok := tabular.Int(row, colPosition); ok {
			item.Position = intPtr(v)
		}
		item.Player, _ = tabular.String(row, colPlayer)
		if v, ok := tabular.Int(row, colPlayerID); ok {
			item.PlayerID = int64Ptr(v)
		}
		item.Opponent, _ = tabular.String(row, colOpponent)
		if v, ok := tabular.Int(row, colScore); ok {
			item.Score = intPtr(v)
		}
		if v, ok := tabular.Float(row, colPoints); ok {
			item.Points = floatPtr(v)
		}
		item.InputData, _ = tabular.String(row, colInputData)
		item.ComputedData, _ = tabular.String(row, colComputedData)

		out = append(out, item)
	}

	return out, nil
}

// Save writes the reconstructed flat view, validated against the same
// declared shape as the input it mirrors.
func (r *SourceRepository) Save(_ context.Context, rows []source.Row) error {
	t := tabular.New(
		colSeason, colWeek, colDate, colLeague, colPlayersPerTeam, colLocation,
		colRoundNumber, colMatchNumber, colTeam, colPosition, colPlayer,
		colPlayerID, colOpponent, colScore, colPoints, colInputData, colComputedData,
	)
	for _, row := range rows {
		t.Append(tabular.Row{
			colSeason:         row.Season,
			colWeek:           int64(row.Week),
			colDate:           row.Date,
			colLeague:         row.League,
			colPlayersPerTeam: int64(row.PlayersPerTeam),
			colLocation:       row.Location,
			colRoundNumber:    int64(row.RoundNumber),
			colMatchNumber:    int64(row.MatchNumber),
			colTeam:           row.Team,
			colPosition:       optIntPtr(row.Position),
			colPlayer:         row.Player,
			colPlayerID:       optInt64Ptr(row.PlayerID),
			colOpponent:       optString(row.Opponent),
			colScore:          optIntPtr(row.Score),
			colPoints:         optFloatPtr(row.Points),
			colInputData:      optString(row.InputData),
			colComputedData:   optString(row.ComputedData),
		})
	}

	if err := r.catalog.EnsureColumns(t, schema.TableResults); err != nil {
		return err
	}
	if err := r.catalog.Coerce(t, schema.TableResults); err != nil {
		return err
	}
	violations, err := r.catalog.Validate(t, schema.TableResults)
	if err != nil {
		return err
	}
	if len(violations) > 0 {
		return fmt.Errorf("reconstructed dataset: %w",
			&schema.ValidationError{Table: schema.TableResults, Violations: violations})
	}

	if err := r.codec.WriteFile(r.outPath, t); err != nil {
		return fmt.Errorf("write reconstructed dataset: %w", err)
	}

	return nil
}
