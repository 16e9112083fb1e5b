package schema

// Table names of the relational model plus the flat results dataset.
const (
	TableVenue         = "venue"
	TableLeague        = "league"
	TableScoringSystem = "scoring_system"
	TableLeagueSeason  = "league_season"
	TableEvent         = "event"
	TablePlayer        = "player"
	TableClub          = "club"
	TableTeamSeason    = "team_season"
	TableGameResult    = "game_result"
	TableResults       = "results"
)

// DefaultDocument is the built-in table specification. A document loaded
// from file replaces it wholesale.
func DefaultDocument() Document {
	return Document{
		Tables: []Table{
			{
				Name: TableVenue,
				Columns: []Column{
					{Name: "id", Kind: KindInteger, PrimaryKey: true},
					{Name: "name", Kind: KindString},
					{Name: "full_name", Kind: KindString, Nullable: true},
				},
				Unique: [][]string{{"name"}},
			},
			{
				Name: TableLeague,
				Columns: []Column{
					{Name: "id", Kind: KindString, PrimaryKey: true},
					{Name: "long_name", Kind: KindString},
					{Name: "level", Kind: KindInteger, Nullable: true},
					{Name: "division", Kind: KindString, Nullable: true},
				},
			},
			{
				Name: TableScoringSystem,
				Columns: []Column{
					{Name: "id", Kind: KindString, PrimaryKey: true},
					{Name: "name", Kind: KindString},
					{Name: "points_per_individual_match_win", Kind: KindNumber},
					{Name: "points_per_individual_match_tie", Kind: KindNumber},
					{Name: "points_per_individual_match_loss", Kind: KindNumber},
					{Name: "points_per_team_match_win", Kind: KindNumber},
					{Name: "points_per_team_match_tie", Kind: KindNumber},
					{Name: "points_per_team_match_loss", Kind: KindNumber},
					{Name: "allow_ties", Kind: KindBoolean},
				},
			},
			{
				Name: TableLeagueSeason,
				Columns: []Column{
					{Name: "id", Kind: KindInteger, PrimaryKey: true},
					{Name: "league_id", Kind: KindString},
					{Name: "season", Kind: KindString},
					{Name: "scoring_system_id", Kind: KindString},
					{Name: "players_per_team", Kind: KindInteger},
					{Name: "number_of_teams", Kind: KindInteger},
				},
				Unique: [][]string{{"league_id", "season"}},
			},
			{
				Name: TableEvent,
				Columns: []Column{
					{Name: "id", Kind: KindInteger, PrimaryKey: true},
					{Name: "league_season_id", Kind: KindInteger},
					{Name: "league_week", Kind: KindInteger},
					{Name: "date", Kind: KindDate},
					{Name: "venue_id", Kind: KindInteger},
					{Name: "status", Kind: KindString},
					{Name: "event_type", Kind: KindString},
				},
				Unique: [][]string{{"league_season_id", "league_week", "date", "venue_id"}},
			},
			{
				Name: TablePlayer,
				Columns: []Column{
					{Name: "id", Kind: KindInteger, PrimaryKey: true},
					{Name: "given_name", Kind: KindString, Nullable: true},
					{Name: "family_name", Kind: KindString},
					{Name: "full_name", Kind: KindString},
				},
			},
			{
				Name: TableClub,
				Columns: []Column{
					{Name: "id", Kind: KindInteger, PrimaryKey: true},
					{Name: "name", Kind: KindString},
				},
				Unique: [][]string{{"name"}},
			},
			{
				Name: TableTeamSeason,
				Columns: []Column{
					{Name: "id", Kind: KindInteger, PrimaryKey: true},
					{Name: "league_season_id", Kind: KindInteger},
					{Name: "club_id", Kind: KindInteger},
					{Name: "team_number", Kind: KindInteger},
				},
				Unique: [][]string{{"league_season_id", "club_id", "team_number"}},
			},
			{
				Name: TableGameResult,
				Columns: []Column{
					{Name: "id", Kind: KindInteger, PrimaryKey: true},
					{Name: "event_id", Kind: KindInteger},
					{Name: "player_id", Kind: KindInteger},
					{Name: "team_season_id", Kind: KindInteger},
					{Name: "lineup_position", Kind: KindInteger},
					{Name: "score", Kind: KindInteger, Nullable: true},
					{Name: "round_number", Kind: KindInteger},
					{Name: "match_number", Kind: KindInteger},
					{Name: "is_disqualified", Kind: KindBoolean},
					{Name: "handicap", Kind: KindInteger, Nullable: true},
				},
				Unique: [][]string{{
					"event_id", "player_id", "lineup_position",
					"match_number", "round_number", "team_season_id",
				}},
			},
			{
				Name: TableResults,
				Columns: []Column{
					{Name: "Season", Kind: KindString},
					{Name: "Week", Kind: KindInteger},
					{Name: "Date", Kind: KindDate},
					{Name: "League", Kind: KindString},
					{Name: "Players per Team", Kind: KindInteger},
					{Name: "Location", Kind: KindString},
					{Name: "Round Number", Kind: KindInteger},
					{Name: "Match Number", Kind: KindInteger},
					{Name: "Team", Kind: KindString},
					{Name: "Position", Kind: KindInteger, Nullable: true},
					{Name: "Player", Kind: KindString},
					{Name: "Player ID", Kind: KindInteger, Nullable: true},
					{Name: "Opponent", Kind: KindString, Nullable: true},
					{Name: "Score", Kind: KindInteger, Nullable: true},
					{Name: "Points", Kind: KindNumber, Nullable: true},
					{Name: "Input Data", Kind: KindString, Nullable: true},
					{Name: "Computed Data", Kind: KindString, Nullable: true},
				},
			},
		},
	}
}
