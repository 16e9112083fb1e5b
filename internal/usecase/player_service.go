package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/AmbidextrousCoatie/league-analyzer-sub002/internal/domain/club"
	"github.com/AmbidextrousCoatie/league-analyzer-sub002/internal/domain/player"
	"github.com/AmbidextrousCoatie/league-analyzer-sub002/internal/domain/source"
	"github.com/AmbidextrousCoatie/league-analyzer-sub002/internal/infrastructure/diagnostics"
	"github.com/AmbidextrousCoatie/league-analyzer-sub002/internal/platform/logging"
)

// PlayerService builds the player table. Players keep the identifier
// the source carries instead of a surrogate, so identity conflicts
// (one id under several names, one name under several ids) cannot be
// resolved mechanically; they are reported for curation and the first
// transcription wins.
type PlayerService struct {
	sourceRepo source.Repository
	playerRepo player.Repository
	reporter   *diagnostics.Reporter
	logger     *logging.Logger
}

func NewPlayerService(sourceRepo source.Repository, playerRepo player.Repository, reporter *diagnostics.Reporter, logger *logging.Logger) *PlayerService {
	if logger == nil {
		logger = logging.Default()
	}
	return &PlayerService{
		sourceRepo: sourceRepo,
		playerRepo: playerRepo,
		reporter:   reporter,
		logger:     logger,
	}
}

// PlayerIDConflict is one identifier transcribed under several names.
type PlayerIDConflict struct {
	PlayerID int64    `json:"player_id"`
	Names    []string `json:"names"`
}

// PlayerNameConflict is one name transcribed under several identifiers.
type PlayerNameConflict struct {
	Name      string  `json:"name"`
	PlayerIDs []int64 `json:"player_ids"`
}

type playerIdentityReport struct {
	IDsWithManyNames []PlayerIDConflict   `json:"ids_with_many_names,omitempty"`
	NamesWithManyIDs []PlayerNameConflict `json:"names_with_many_ids,omitempty"`
}

func (s *PlayerService) Build(ctx context.Context) (BuildResult, error) {
	rows, err := s.sourceRepo.Load(ctx)
	if err != nil {
		return BuildResult{}, fmt.Errorf("load results dataset: %w", err)
	}

	result := BuildResult{Stage: StagePlayers, SourceRows: len(rows)}

	nameByID := make(map[int64]string)
	namesByID := make(map[int64][]string)
	idsByName := make(map[string][]int64)
	order := make([]int64, 0)

	for _, row := range rows {
		label := strings.TrimSpace(row.Player)
		if !row.HasPlayerID() || label == "" || label == club.AggregateLabel {
			result.Skipped++
			continue
		}
		id := *row.PlayerID

		if _, ok := nameByID[id]; !ok {
			nameByID[id] = label
			order = append(order, id)
		}
		if !containsString(namesByID[id], label) {
			namesByID[id] = append(namesByID[id], label)
		}
		if !containsInt64(idsByName[label], id) {
			idsByName[label] = append(idsByName[label], id)
		}
	}

	report := playerIdentityReport{}
	for _, id := range order {
		if names := namesByID[id]; len(names) > 1 {
			report.IDsWithManyNames = append(report.IDsWithManyNames, PlayerIDConflict{PlayerID: id, Names: names})
		}
	}
	names := make([]string, 0, len(idsByName))
	for name := range idsByName {
		names = append(names, name)
	}
	sortLabels(names)
	for _, name := range names {
		if ids := idsByName[name]; len(ids) > 1 {
			sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
			report.NamesWithManyIDs = append(report.NamesWithManyIDs, PlayerNameConflict{Name: name, PlayerIDs: ids})
		}
	}
	sort.Slice(report.IDsWithManyNames, func(i, j int) bool {
		return report.IDsWithManyNames[i].PlayerID < report.IDsWithManyNames[j].PlayerID
	})
	result.Conflicts = len(report.IDsWithManyNames) + len(report.NamesWithManyIDs)
	if err := s.reporter.Emit(diagnostics.ReportPlayerIdentity, result.Conflicts, report); err != nil {
		return BuildResult{}, err
	}

	sort.Slice(order, func(i, j int) bool { return order[i] < order[j] })
	players := make([]player.Player, 0, len(order))
	for _, id := range order {
		label := nameByID[id]
		given, family := player.ParseName(label)
		players = append(players, player.Player{
			ID:         id,
			GivenName:  given,
			FamilyName: family,
			FullName:   label,
		})
	}

	if err := s.playerRepo.Save(ctx, players); err != nil {
		return BuildResult{}, fmt.Errorf("save player table: %w", err)
	}

	result.Rows = len(players)
	s.logger.Info("player table built",
		"rows", result.Rows, "skipped", result.Skipped, "conflicts", result.Conflicts)

	return result, nil
}

func containsString(items []string, v string) bool {
	for _, item := range items {
		if item == v {
			return true
		}
	}
	return false
}

func containsInt64(items []int64, v int64) bool {
	for _, item := range items {
		if item == v {
			return true
		}
	}
	return false
}
