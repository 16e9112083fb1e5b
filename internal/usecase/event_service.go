package usecase

import (
	"context"
	"fmt"
	"sort"

	"github.com/AmbidextrousCoatie/league-analyzer-sub002/internal/domain/event"
	"github.com/AmbidextrousCoatie/league-analyzer-sub002/internal/domain/leagueseason"
	"github.com/AmbidextrousCoatie/league-analyzer-sub002/internal/domain/source"
	"github.com/AmbidextrousCoatie/league-analyzer-sub002/internal/domain/venue"
	"github.com/AmbidextrousCoatie/league-analyzer-sub002/internal/infrastructure/diagnostics"
	"github.com/AmbidextrousCoatie/league-analyzer-sub002/internal/platform/logging"
)

// EventService builds the event table from the distinct match days of
// the flat dataset. Location labels must resolve against the venue
// table exactly; any unmatched label lands in a diagnostics report and
// aborts the build so the venue aliases can be curated first.
type EventService struct {
	sourceRepo source.Repository
	seasonRepo leagueseason.Repository
	venueRepo  venue.Repository
	eventRepo  event.Repository
	reporter   *diagnostics.Reporter
	logger     *logging.Logger
}

func NewEventService(
	sourceRepo source.Repository,
	seasonRepo leagueseason.Repository,
	venueRepo venue.Repository,
	eventRepo event.Repository,
	reporter *diagnostics.Reporter,
	logger *logging.Logger,
) *EventService {
	if logger == nil {
		logger = logging.Default()
	}
	return &EventService{
		sourceRepo: sourceRepo,
		seasonRepo: seasonRepo,
		venueRepo:  venueRepo,
		eventRepo:  eventRepo,
		reporter:   reporter,
		logger:     logger,
	}
}

// UnmatchedLocation is one diagnostics entry for a location label the
// venue table could not resolve.
type UnmatchedLocation struct {
	Label  string `json:"label"`
	League string `json:"league"`
	Season string `json:"season"`
	Rows   int    `json:"rows"`
}

type eventKey struct {
	leagueSeasonID int64
	week           int
	date           string
	venueID        int64
}

func (s *EventService) Build(ctx context.Context) (BuildResult, error) {
	rows, err := s.sourceRepo.Load(ctx)
	if err != nil {
		return BuildResult{}, fmt.Errorf("load results dataset: %w", err)
	}

	seasons, err := s.seasonRepo.Load(ctx)
	if err != nil {
		return BuildResult{}, dependencyErr("league_season", err)
	}
	seasonByKey := make(map[leagueSeasonKey]leagueseason.LeagueSeason, len(seasons))
	for _, ls := range seasons {
		seasonByKey[leagueSeasonKey{league: ls.LeagueID, season: ls.Season}] = ls
	}

	venues, err := s.venueRepo.Load(ctx)
	if err != nil {
		return BuildResult{}, dependencyErr("venue", err)
	}

	result := BuildResult{Stage: StageEvents, SourceRows: len(rows)}

	seen := make(map[eventKey]struct{})
	unmatched := make(map[string]*UnmatchedLocation)
	var events []event.Event

	for _, row := range rows {
		if row.League == "" || row.Season == "" || row.Week <= 0 || row.Date.IsZero() || row.Location == "" {
			result.Skipped++
			continue
		}

		ls, ok := seasonByKey[leagueSeasonKey{league: row.League, season: row.Season}]
		if !ok {
			return BuildResult{}, fmt.Errorf(
				"%w: league season (%s, %s) missing from league_season table",
				ErrReferentialIntegrity, row.League, row.Season,
			)
		}

		venueID, ok := matchVenue(venues, row.Location)
		if !ok {
			entry, exists := unmatched[row.Location]
			if !exists {
				entry = &UnmatchedLocation{Label: row.Location, League: row.League, Season: row.Season}
				unmatched[row.Location] = entry
			}
			entry.Rows++
			continue
		}

		key := eventKey{
			leagueSeasonID: ls.ID,
			week:           row.Week,
			date:           dateKey(row.Date),
			venueID:        venueID,
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}

		events = append(events, event.Event{
			LeagueSeasonID: ls.ID,
			LeagueWeek:     row.Week,
			Date:           row.Date,
			VenueID:        venueID,
			Status:         event.StatusCompleted,
			EventType:      event.TypeLeagueMatch,
		})
	}

	entries := make([]UnmatchedLocation, 0, len(unmatched))
	for _, entry := range unmatched {
		entries = append(entries, *entry)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Label < entries[j].Label })
	if err := s.reporter.Emit(diagnostics.ReportUnmatchedLocations, len(entries), entries); err != nil {
		return BuildResult{}, err
	}
	if len(entries) > 0 {
		return BuildResult{}, fmt.Errorf(
			"%w: %d location labels matched no venue, see %s",
			ErrReferentialIntegrity, len(entries), s.reporter.Path(diagnostics.ReportUnmatchedLocations),
		)
	}

	sort.Slice(events, func(i, j int) bool {
		a, b := events[i], events[j]
		if a.LeagueSeasonID != b.LeagueSeasonID {
			return a.LeagueSeasonID < b.LeagueSeasonID
		}
		if a.LeagueWeek != b.LeagueWeek {
			return a.LeagueWeek < b.LeagueWeek
		}
		if !a.Date.Equal(b.Date) {
			return a.Date.Before(b.Date)
		}
		return a.VenueID < b.VenueID
	})
	for i := range events {
		events[i].ID = int64(i + 1)
	}

	if err := s.eventRepo.Save(ctx, events); err != nil {
		return BuildResult{}, fmt.Errorf("save event table: %w", err)
	}

	result.Rows = len(events)
	s.logger.Info("event table built", "rows", result.Rows, "skipped", result.Skipped)

	return result, nil
}

func matchVenue(venues []venue.Venue, label string) (int64, bool) {
	for _, v := range venues {
		if v.Matches(label) {
			return v.ID, true
		}
	}
	return 0, false
}
