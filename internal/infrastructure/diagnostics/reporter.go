// Package diagnostics writes the side reports a pipeline run leaves
// behind for manual curation: unmatched locations, player identity
// conflicts and skipped result rows. A report exists on disk exactly
// when the latest run found something to report.
package diagnostics

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/bytedance/sonic"
)

// Report names, one file per concern.
const (
	ReportUnmatchedLocations = "unmatched_locations"
	ReportPlayerIdentity     = "player_identity_conflicts"
	ReportSkippedResults     = "skipped_result_rows"
)

type envelope struct {
	RunID       string `json:"run_id"`
	GeneratedAt string `json:"generated_at"`
	Count       int    `json:"count"`
	Entries     any    `json:"entries"`
}

// Reporter persists JSON reports under one directory, stamped with the
// id of the run that produced them.
type Reporter struct {
	dir   string
	runID string
	now   func() time.Time
}

func NewReporter(dir, runID string) *Reporter {
	return &Reporter{dir: dir, runID: runID, now: time.Now}
}

func (r *Reporter) Path(name string) string {
	return filepath.Join(r.dir, name+".json")
}

// Emit writes the named report when entries exist and removes a stale
// copy when the run came back clean, so a report on disk always
// belongs to the latest run.
func (r *Reporter) Emit(name string, count int, entries any) error {
	if count == 0 {
		return r.Clear(name)
	}

	payload, err := sonic.Marshal(envelope{
		RunID:       r.runID,
		GeneratedAt: r.now().UTC().Format(time.RFC3339),
		Count:       count,
		Entries:     entries,
	})
	if err != nil {
		return fmt.Errorf("encode %s report: %w", name, err)
	}

	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return fmt.Errorf("create diagnostics dir %s: %w", r.dir, err)
	}
	if err := os.WriteFile(r.Path(name), payload, 0o644); err != nil {
		return fmt.Errorf("write %s report: %w", name, err)
	}

	return nil
}

// Clear removes the named report if present.
func (r *Reporter) Clear(name string) error {
	err := os.Remove(r.Path(name))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove %s report: %w", name, err)
	}

	return nil
}
