package diagnostics

import (
	"os"
	"testing"

	"github.com/bytedance/sonic"
)

type testEntry struct {
	Label string `json:"label"`
	Rows  int    `json:"rows"`
}

func TestReporterEmit(t *testing.T) {
	dir := t.TempDir()
	reporter := NewReporter(dir, "run-123")

	entries := []testEntry{
		{Label: "Bowlingcenter Nord", Rows: 3},
		{Label: "Vereinsheim", Rows: 1},
	}
	if err := reporter.Emit(ReportUnmatchedLocations, len(entries), entries); err != nil {
		t.Fatalf("emit: %v", err)
	}

	raw, err := os.ReadFile(reporter.Path(ReportUnmatchedLocations))
	if err != nil {
		t.Fatalf("read report: %v", err)
	}

	var report struct {
		RunID       string      `json:"run_id"`
		GeneratedAt string      `json:"generated_at"`
		Count       int         `json:"count"`
		Entries     []testEntry `json:"entries"`
	}
	if err := sonic.Unmarshal(raw, &report); err != nil {
		t.Fatalf("decode report: %v", err)
	}

	if report.RunID != "run-123" {
		t.Fatalf("unexpected run id: %q", report.RunID)
	}
	if report.GeneratedAt == "" {
		t.Fatal("report carries no timestamp")
	}
	if report.Count != 2 || len(report.Entries) != 2 {
		t.Fatalf("unexpected count: count=%d entries=%d", report.Count, len(report.Entries))
	}
	if report.Entries[0].Label != "Bowlingcenter Nord" || report.Entries[0].Rows != 3 {
		t.Fatalf("unexpected first entry: %+v", report.Entries[0])
	}
}

func TestReporterEmitCleanRunRemovesStaleReport(t *testing.T) {
	dir := t.TempDir()
	reporter := NewReporter(dir, "run-1")

	if err := reporter.Emit(ReportPlayerIdentity, 1, []testEntry{{Label: "x"}}); err != nil {
		t.Fatalf("emit: %v", err)
	}
	if _, err := os.Stat(reporter.Path(ReportPlayerIdentity)); err != nil {
		t.Fatalf("report not written: %v", err)
	}

	if err := reporter.Emit(ReportPlayerIdentity, 0, nil); err != nil {
		t.Fatalf("clean emit: %v", err)
	}
	if _, err := os.Stat(reporter.Path(ReportPlayerIdentity)); !os.IsNotExist(err) {
		t.Fatalf("stale report survived a clean run: %v", err)
	}
}

func TestReporterClearIsIdempotent(t *testing.T) {
	reporter := NewReporter(t.TempDir(), "run-1")
	if err := reporter.Clear(ReportSkippedResults); err != nil {
		t.Fatalf("clear on missing report: %v", err)
	}
	if err := reporter.Clear(ReportSkippedResults); err != nil {
		t.Fatalf("second clear: %v", err)
	}
}
