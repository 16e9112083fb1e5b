package usecase

import "fmt"

// Stage names, in pipeline order. The CLI exposes them verbatim as
// build subcommands.
const (
	StageVenues         = "venues"
	StageLeagues        = "leagues"
	StageScoringSystems = "scoring-systems"
	StageLeagueSeasons  = "league-seasons"
	StageEvents         = "events"
	StagePlayers        = "players"
	StageClubs          = "clubs"
	StageTeamSeasons    = "team-seasons"
	StageResults        = "results"
)

// BuildResult tracks the counters of one builder stage. Skipped and
// Unresolved rows were dropped without failing the build; Duplicates
// were removed keep-first; Conflicts were reported to diagnostics.
type BuildResult struct {
	Stage      string
	SourceRows int
	Rows       int
	Skipped    int
	Unresolved int
	Duplicates int
	Conflicts  int
}

// Summary returns a one-line report of the stage, in the form the run
// log prints after each builder.
func (r BuildResult) Summary() string {
	return fmt.Sprintf(
		"stage=%s source_rows=%d rows=%d skipped=%d unresolved=%d duplicates=%d conflicts=%d",
		r.Stage, r.SourceRows, r.Rows, r.Skipped, r.Unresolved, r.Duplicates, r.Conflicts,
	)
}

// ReconstructionResult tracks the counters of one reconstruction run.
type ReconstructionResult struct {
	MemberRows          int
	TotalRows           int
	PrimaryOpponents    int
	InferredOpponents   int
	UnresolvedOpponents int
	ScoringGaps         int
	ContainmentMisses   int
	Duplicates          int
}

func (r ReconstructionResult) Summary() string {
	return fmt.Sprintf(
		"member_rows=%d total_rows=%d opponents_primary=%d opponents_inferred=%d opponents_unresolved=%d scoring_gaps=%d containment_misses=%d duplicates=%d",
		r.MemberRows, r.TotalRows, r.PrimaryOpponents, r.InferredOpponents,
		r.UnresolvedOpponents, r.ScoringGaps, r.ContainmentMisses, r.Duplicates,
	)
}
