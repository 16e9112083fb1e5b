package usecase

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strconv"
	"strings"

	"github.com/AmbidextrousCoatie/league-analyzer-sub002/internal/domain/club"
	"github.com/AmbidextrousCoatie/league-analyzer-sub002/internal/domain/event"
	"github.com/AmbidextrousCoatie/league-analyzer-sub002/internal/domain/gameresult"
	"github.com/AmbidextrousCoatie/league-analyzer-sub002/internal/domain/league"
	"github.com/AmbidextrousCoatie/league-analyzer-sub002/internal/domain/leagueseason"
	"github.com/AmbidextrousCoatie/league-analyzer-sub002/internal/domain/player"
	"github.com/AmbidextrousCoatie/league-analyzer-sub002/internal/domain/scoringsystem"
	"github.com/AmbidextrousCoatie/league-analyzer-sub002/internal/domain/source"
	"github.com/AmbidextrousCoatie/league-analyzer-sub002/internal/domain/teamseason"
	"github.com/AmbidextrousCoatie/league-analyzer-sub002/internal/domain/venue"
	"github.com/AmbidextrousCoatie/league-analyzer-sub002/internal/platform/logging"
)

// Markers for the provenance columns of the reconstructed view. A
// member row that got its opponent from the transcription carries the
// opponent marker as input data; everything derived lands in computed
// data.
const (
	markerOpponent = "opponent"
	markerScore    = "score"
	markerPoints   = "points"
)

// ReconstructionService joins the nine relational tables back into the
// flat results view: one row per player per round plus one synthesized
// total row per team per round, with opponents and points derived on
// the way out.
type ReconstructionService struct {
	sourceRepo source.Repository
	venueRepo  venue.Repository
	leagueRepo league.Repository
	systemRepo scoringsystem.Repository
	seasonRepo leagueseason.Repository
	eventRepo  event.Repository
	playerRepo player.Repository
	clubRepo   club.Repository
	teamRepo   teamseason.Repository
	resultRepo gameresult.Repository
	engine     *ScoringEngine
	pairing    PairingStrategy
	logger     *logging.Logger
}

func NewReconstructionService(
	sourceRepo source.Repository,
	venueRepo venue.Repository,
	leagueRepo league.Repository,
	systemRepo scoringsystem.Repository,
	seasonRepo leagueseason.Repository,
	eventRepo event.Repository,
	playerRepo player.Repository,
	clubRepo club.Repository,
	teamRepo teamseason.Repository,
	resultRepo gameresult.Repository,
	logger *logging.Logger,
) *ReconstructionService {
	if logger == nil {
		logger = logging.Default()
	}
	return &ReconstructionService{
		sourceRepo: sourceRepo,
		venueRepo:  venueRepo,
		leagueRepo: leagueRepo,
		systemRepo: systemRepo,
		seasonRepo: seasonRepo,
		eventRepo:  eventRepo,
		playerRepo: playerRepo,
		clubRepo:   clubRepo,
		teamRepo:   teamRepo,
		resultRepo: resultRepo,
		engine:     NewScoringEngine(),
		logger:     logger,
	}
}

// SetPairingStrategy swaps the fallback pairing used when more than two
// teams of a round share a lineup position set.
func (s *ReconstructionService) SetPairingStrategy(strategy PairingStrategy) {
	s.pairing = strategy
}

type roundGroupKey struct {
	eventID int64
	round   int
}

type memberGameRow struct {
	eventID int64
	round   int
	row     source.Row
}

func (s *ReconstructionService) Reconstruct(ctx context.Context) (ReconstructionResult, error) {
	// The transcribed dataset only feeds the primary opponent index;
	// reconstruction works without it, on inference alone.
	originalRows, err := s.sourceRepo.Load(ctx)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return ReconstructionResult{}, fmt.Errorf("load results dataset: %w", err)
		}
		s.logger.Info("results dataset absent, opponents come from inference only")
		originalRows = nil
	}

	tables, err := s.loadTables(ctx)
	if err != nil {
		return ReconstructionResult{}, err
	}

	members, err := s.assembleMembers(tables)
	if err != nil {
		return ReconstructionResult{}, err
	}

	resolver := NewOpponentResolver(originalRows)
	if s.pairing != nil {
		resolver.SetStrategy(s.pairing)
	}

	result := ReconstructionResult{MemberRows: len(members)}

	groups := make(map[roundGroupKey][]int)
	groupOrder := make([]roundGroupKey, 0)
	for i, member := range members {
		key := roundGroupKey{eventID: member.eventID, round: member.round}
		if _, ok := groups[key]; !ok {
			groupOrder = append(groupOrder, key)
		}
		groups[key] = append(groups[key], i)
	}
	sort.Slice(groupOrder, func(i, j int) bool {
		a, b := groupOrder[i], groupOrder[j]
		if a.eventID != b.eventID {
			return a.eventID < b.eventID
		}
		return a.round < b.round
	})

	rows := make([]source.Row, 0, len(members)+len(groupOrder)*2)
	for _, key := range groupOrder {
		groupRows := s.reconstructRound(tables, members, groups[key], key, resolver, &result)
		rows = append(rows, groupRows...)
	}

	rows = s.sortAndDedup(rows, &result)

	if err := s.sourceRepo.Save(ctx, rows); err != nil {
		return ReconstructionResult{}, fmt.Errorf("save reconstructed dataset: %w", err)
	}

	s.logger.Info("results view reconstructed",
		"member_rows", result.MemberRows, "total_rows", result.TotalRows,
		"opponents_primary", result.PrimaryOpponents, "opponents_inferred", result.InferredOpponents,
		"opponents_unresolved", result.UnresolvedOpponents, "scoring_gaps", result.ScoringGaps,
		"containment_misses", result.ContainmentMisses, "duplicates", result.Duplicates)

	return result, nil
}

// relationalTables bundles the loaded dimension and fact tables with
// their lookup indexes.
type relationalTables struct {
	venueByID  map[int64]venue.Venue
	leagueIDs  map[string]struct{}
	systemByID map[string]scoringsystem.ScoringSystem
	seasonByID map[int64]leagueseason.LeagueSeason
	eventByID  map[int64]event.Event
	playerByID map[int64]player.Player
	clubByID   map[int64]club.Club
	teamByID   map[int64]teamseason.TeamSeason
	facts      []gameresult.GameResult
}

func (s *ReconstructionService) loadTables(ctx context.Context) (relationalTables, error) {
	var tables relationalTables

	venues, err := s.venueRepo.Load(ctx)
	if err != nil {
		return tables, dependencyErr("venue", err)
	}
	tables.venueByID = make(map[int64]venue.Venue, len(venues))
	for _, v := range venues {
		tables.venueByID[v.ID] = v
	}

	leagues, err := s.leagueRepo.Load(ctx)
	if err != nil {
		return tables, dependencyErr("league", err)
	}
	tables.leagueIDs = make(map[string]struct{}, len(leagues))
	for _, l := range leagues {
		tables.leagueIDs[l.ID] = struct{}{}
	}

	systems, err := s.systemRepo.Load(ctx)
	if err != nil {
		return tables, dependencyErr("scoring_system", err)
	}
	tables.systemByID = make(map[string]scoringsystem.ScoringSystem, len(systems))
	for _, sys := range systems {
		tables.systemByID[sys.ID] = sys
	}

	seasons, err := s.seasonRepo.Load(ctx)
	if err != nil {
		return tables, dependencyErr("league_season", err)
	}
	tables.seasonByID = make(map[int64]leagueseason.LeagueSeason, len(seasons))
	for _, ls := range seasons {
		tables.seasonByID[ls.ID] = ls
	}

	events, err := s.eventRepo.Load(ctx)
	if err != nil {
		return tables, dependencyErr("event", err)
	}
	tables.eventByID = make(map[int64]event.Event, len(events))
	for _, ev := range events {
		tables.eventByID[ev.ID] = ev
	}

	players, err := s.playerRepo.Load(ctx)
	if err != nil {
		return tables, dependencyErr("player", err)
	}
	tables.playerByID = make(map[int64]player.Player, len(players))
	for _, p := range players {
		tables.playerByID[p.ID] = p
	}

	clubs, err := s.clubRepo.Load(ctx)
	if err != nil {
		return tables, dependencyErr("club", err)
	}
	tables.clubByID = make(map[int64]club.Club, len(clubs))
	for _, c := range clubs {
		tables.clubByID[c.ID] = c
	}

	teams, err := s.teamRepo.Load(ctx)
	if err != nil {
		return tables, dependencyErr("team_season", err)
	}
	tables.teamByID = make(map[int64]teamseason.TeamSeason, len(teams))
	for _, ts := range teams {
		tables.teamByID[ts.ID] = ts
	}

	tables.facts, err = s.resultRepo.Load(ctx)
	if err != nil {
		return tables, dependencyErr("game_result", err)
	}

	return tables, nil
}

// assembleMembers joins every game result back to its flat member row.
// A foreign key that fails to resolve means the tables were edited out
// of step with each other, which no amount of dropping can repair.
func (s *ReconstructionService) assembleMembers(tables relationalTables) ([]memberGameRow, error) {
	members := make([]memberGameRow, 0, len(tables.facts))

	for _, fact := range tables.facts {
		ev, ok := tables.eventByID[fact.EventID]
		if !ok {
			return nil, fmt.Errorf("%w: event %d of game result %d", ErrReferentialIntegrity, fact.EventID, fact.ID)
		}
		ls, ok := tables.seasonByID[ev.LeagueSeasonID]
		if !ok {
			return nil, fmt.Errorf("%w: league season %d of event %d", ErrReferentialIntegrity, ev.LeagueSeasonID, ev.ID)
		}
		if _, ok := tables.leagueIDs[ls.LeagueID]; !ok {
			return nil, fmt.Errorf("%w: league %q of league season %d", ErrReferentialIntegrity, ls.LeagueID, ls.ID)
		}
		vn, ok := tables.venueByID[ev.VenueID]
		if !ok {
			return nil, fmt.Errorf("%w: venue %d of event %d", ErrReferentialIntegrity, ev.VenueID, ev.ID)
		}
		pl, ok := tables.playerByID[fact.PlayerID]
		if !ok {
			return nil, fmt.Errorf("%w: player %d of game result %d", ErrReferentialIntegrity, fact.PlayerID, fact.ID)
		}
		ts, ok := tables.teamByID[fact.TeamSeasonID]
		if !ok {
			return nil, fmt.Errorf("%w: team season %d of game result %d", ErrReferentialIntegrity, fact.TeamSeasonID, fact.ID)
		}
		cl, ok := tables.clubByID[ts.ClubID]
		if !ok {
			return nil, fmt.Errorf("%w: club %d of team season %d", ErrReferentialIntegrity, ts.ClubID, ts.ID)
		}

		position := fact.LineupPosition
		playerID := fact.PlayerID
		var score *int
		if fact.Score != nil {
			v := *fact.Score
			score = &v
		}

		members = append(members, memberGameRow{
			eventID: ev.ID,
			round:   fact.RoundNumber,
			row: source.Row{
				Season:         ls.Season,
				Week:           ev.LeagueWeek,
				Date:           ev.Date,
				League:         ls.LeagueID,
				PlayersPerTeam: ls.PlayersPerTeam,
				Location:       vn.Name,
				RoundNumber:    fact.RoundNumber,
				MatchNumber:    fact.MatchNumber,
				Team:           club.TeamLabel(cl.Name, ts.TeamNumber),
				Position:       &position,
				Player:         pl.FullName,
				PlayerID:       &playerID,
				Score:          score,
			},
		})
	}

	return members, nil
}

// reconstructRound derives opponents, points and the synthesized total
// rows for one (event, round) group and returns the group's flat rows.
func (s *ReconstructionService) reconstructRound(
	tables relationalTables,
	members []memberGameRow,
	indexes []int,
	key roundGroupKey,
	resolver *OpponentResolver,
	result *ReconstructionResult,
) []source.Row {
	entries := make([]RoundEntry, 0, len(indexes))
	for _, i := range indexes {
		row := members[i].row
		entries = append(entries, RoundEntry{Team: row.Team, Position: *row.Position})
	}
	inferred := resolver.Infer(entries)

	pairs := make(map[string]string)
	groupRows := make([]source.Row, 0, len(indexes))
	for _, i := range indexes {
		row := members[i].row

		opponentKey := NewOpponentKey(row.Season, row.League, row.Week, row.Date, row.RoundNumber, row.Team, row.Player)
		computed := make([]string, 0, 2)
		if opponent, ok := resolver.Primary(opponentKey); ok {
			row.Opponent = opponent
			row.InputData = markerOpponent
			result.PrimaryOpponents++
		} else if opponent := inferred[row.Team]; opponent != "" {
			row.Opponent = opponent
			computed = append(computed, markerOpponent)
			result.InferredOpponents++
		} else {
			result.UnresolvedOpponents++
		}
		row.ComputedData = strings.Join(append(computed, markerPoints), ",")

		if row.Opponent != "" && pairs[row.Team] == "" {
			pairs[row.Team] = row.Opponent
		}
		groupRows = append(groupRows, row)
	}

	games := make([]MemberGame, 0, len(indexes))
	for _, i := range indexes {
		row := members[i].row
		games = append(games, MemberGame{Team: row.Team, Position: *row.Position, Score: row.Score})
	}

	ev := tables.eventByID[key.eventID]
	ls := tables.seasonByID[ev.LeagueSeasonID]

	var scores RoundScores
	if system, ok := tables.systemByID[ls.ScoringSystemID]; ok {
		scores = s.engine.Score(system, games, pairs)
		result.ScoringGaps += scores.Gaps
	} else {
		// Points stay at zero for the whole round.
		result.ScoringGaps++
	}

	for i := range groupRows {
		points := scores.IndividualPoints(groupRows[i].Team, *groupRows[i].Position)
		groupRows[i].Points = &points
	}

	groupRows = append(groupRows, s.synthesizeTotals(groupRows, scores, result)...)

	return groupRows
}

// synthesizeTotals builds one aggregate row per team of the round: the
// summed pins, the opponent by majority over the member rows and the
// team points looked up by match-key containment.
func (s *ReconstructionService) synthesizeTotals(
	memberRows []source.Row,
	scores RoundScores,
	result *ReconstructionResult,
) []source.Row {
	byTeam := make(map[string][]int)
	teamOrder := make([]string, 0)
	for i, row := range memberRows {
		if _, ok := byTeam[row.Team]; !ok {
			teamOrder = append(teamOrder, row.Team)
		}
		byTeam[row.Team] = append(byTeam[row.Team], i)
	}

	matchKeys := scores.MatchKeys()
	totals := make([]source.Row, 0, len(teamOrder))
	for _, team := range teamOrder {
		indexes := byTeam[team]

		opponents := make([]string, 0, len(indexes))
		total := 0
		for _, i := range indexes {
			opponents = append(opponents, memberRows[i].Opponent)
			total += absScore(memberRows[i].Score)
		}
		opponent := modeLabel(opponents)

		points := 0.0
		if len(matchKeys) > 0 {
			matched := ""
			for _, key := range matchKeys {
				if strings.Contains(key, team) && strings.Contains(key, opponent) {
					matched = key
					break
				}
			}
			if matched == "" {
				// The transcription disagrees with the scored pairing;
				// fall back to the first match of the round.
				matched = matchKeys[0]
				result.ContainmentMisses++
			}
			points = scores.TeamPoints[matched][team]
		}

		row := memberRows[indexes[0]]
		score := total
		pts := points
		row.Position = nil
		row.Player = club.AggregateLabel
		row.PlayerID = nil
		row.Opponent = opponent
		row.Score = &score
		row.Points = &pts
		row.InputData = ""
		row.ComputedData = strings.Join([]string{markerOpponent, markerScore, markerPoints}, ",")

		totals = append(totals, row)
		result.TotalRows++
	}

	return totals
}

// sortAndDedup orders the flat view the way the printed dataset is
// ordered and drops exact duplicate rows.
func (s *ReconstructionService) sortAndDedup(rows []source.Row, result *ReconstructionResult) []source.Row {
	coll := newCollator()
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if a.Season != b.Season {
			return a.Season < b.Season
		}
		if c := coll.CompareString(a.League, b.League); c != 0 {
			return c < 0
		}
		if a.Week != b.Week {
			return a.Week < b.Week
		}
		if a.RoundNumber != b.RoundNumber {
			return a.RoundNumber < b.RoundNumber
		}
		if a.MatchNumber != b.MatchNumber {
			return a.MatchNumber < b.MatchNumber
		}
		if c := coll.CompareString(a.Team, b.Team); c != 0 {
			return c < 0
		}
		return positionRank(a.Position) < positionRank(b.Position)
	})

	deduped := rows[:0]
	seen := make(map[string]struct{}, len(rows))
	for _, row := range rows {
		identity := rowIdentity(row)
		if _, ok := seen[identity]; ok {
			result.Duplicates++
			continue
		}
		seen[identity] = struct{}{}
		deduped = append(deduped, row)
	}

	return deduped
}

// positionRank orders member rows by lineup position and totals rows,
// which have none, after them.
func positionRank(position *int) int {
	if position == nil {
		return gameresult.MaxLineupPosition + 1
	}
	return *position
}

// modeLabel picks the most frequent non-empty label, first encountered
// winning ties.
func modeLabel(labels []string) string {
	counts := make(map[string]int)
	order := make([]string, 0)
	for _, label := range labels {
		if label == "" {
			continue
		}
		if _, ok := counts[label]; !ok {
			order = append(order, label)
		}
		counts[label]++
	}

	best := ""
	bestCount := 0
	for _, label := range order {
		if counts[label] > bestCount {
			best = label
			bestCount = counts[label]
		}
	}
	return best
}

// rowIdentity renders every field of a flat row into one comparable
// key for exact-duplicate detection.
func rowIdentity(row source.Row) string {
	parts := []string{
		row.Season,
		strconv.Itoa(row.Week),
		dateKey(row.Date),
		row.League,
		strconv.Itoa(row.PlayersPerTeam),
		row.Location,
		strconv.Itoa(row.RoundNumber),
		strconv.Itoa(row.MatchNumber),
		row.Team,
		optIntKey(row.Position),
		row.Player,
		optInt64Key(row.PlayerID),
		row.Opponent,
		optIntKey(row.Score),
		optFloatKey(row.Points),
		row.InputData,
		row.ComputedData,
	}
	return strings.Join(parts, "\x1f")
}

func optIntKey(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

func optInt64Key(v *int64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatInt(*v, 10)
}

func optFloatKey(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}
