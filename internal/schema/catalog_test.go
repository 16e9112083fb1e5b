package schema

import (
	"errors"
	"testing"
	"time"

	"github.com/AmbidextrousCoatie/league-analyzer-sub002/internal/platform/tabular"
)

func testDocument() Document {
	return Document{
		Tables: []Table{
			{
				Name: "club",
				Columns: []Column{
					{Name: "id", Kind: KindInteger, PrimaryKey: true},
					{Name: "name", Kind: KindString},
					{Name: "founded", Kind: KindDate, Nullable: true},
					{Name: "active", Kind: KindBoolean, Nullable: true},
					{Name: "rating", Kind: KindNumber, Nullable: true},
				},
				Unique: [][]string{{"name"}},
			},
		},
	}
}

func TestNewCatalogRejectsBrokenDocuments(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Document)
	}{
		{
			name:   "no tables",
			mutate: func(doc *Document) { doc.Tables = nil },
		},
		{
			name: "duplicate table",
			mutate: func(doc *Document) {
				doc.Tables = append(doc.Tables, doc.Tables[0])
			},
		},
		{
			name: "duplicate column",
			mutate: func(doc *Document) {
				doc.Tables[0].Columns = append(doc.Tables[0].Columns, Column{Name: "id", Kind: KindInteger})
			},
		},
		{
			name: "unknown kind",
			mutate: func(doc *Document) {
				doc.Tables[0].Columns[0].Kind = "decimal"
			},
		},
		{
			name: "unique set over unknown column",
			mutate: func(doc *Document) {
				doc.Tables[0].Unique = [][]string{{"missing"}}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := testDocument()
			tt.mutate(&doc)
			if _, err := NewCatalog(doc, ""); err == nil {
				t.Fatal("broken document passed catalog construction")
			}
		})
	}
}

func TestCatalogCoerce(t *testing.T) {
	catalog, err := NewCatalog(testDocument(), "")
	if err != nil {
		t.Fatalf("new catalog: %v", err)
	}

	table := tabular.New("id", "name", "founded", "active", "rating")
	table.Append(tabular.Row{
		"id":      "42",
		"name":    "  SV Musterstadt  ",
		"founded": "2024-09-14",
		"active":  "TRUE",
		"rating":  "4.5",
	})
	table.Append(tabular.Row{
		"id":      "3.0",
		"name":    "TSV",
		"founded": "not a date",
		"active":  nil,
		"rating":  "abc",
	})

	if err := catalog.Coerce(table, "club"); err != nil {
		t.Fatalf("coerce: %v", err)
	}

	first := table.Rows[0]
	if v, ok := tabular.Int(first, "id"); !ok || v != 42 {
		t.Fatalf("unexpected id: %v", first["id"])
	}
	if v, _ := tabular.String(first, "name"); v != "SV Musterstadt" {
		t.Fatalf("string not trimmed: %q", v)
	}
	if v, ok := tabular.Date(first, "founded"); !ok || !v.Equal(time.Date(2024, time.September, 14, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected date: %v", first["founded"])
	}
	if v, ok := tabular.Bool(first, "active"); !ok || !v {
		t.Fatalf("unexpected bool: %v", first["active"])
	}
	if v, ok := tabular.Float(first, "rating"); !ok || v != 4.5 {
		t.Fatalf("unexpected number: %v", first["rating"])
	}

	second := table.Rows[1]
	if v, ok := tabular.Int(second, "id"); !ok || v != 3 {
		t.Fatalf("whole float must coerce to integer: %v", second["id"])
	}
	if !tabular.IsMissing(second["founded"]) {
		t.Fatalf("unparseable date must become missing: %v", second["founded"])
	}
	if !tabular.IsMissing(second["rating"]) {
		t.Fatalf("unparseable number must become missing: %v", second["rating"])
	}

	if err := catalog.Coerce(table, "nope"); !errors.Is(err, ErrTableNotFound) {
		t.Fatalf("expected ErrTableNotFound, got %v", err)
	}
}

func TestCatalogValidateCollectsEveryViolation(t *testing.T) {
	catalog, err := NewCatalog(testDocument(), "")
	if err != nil {
		t.Fatalf("new catalog: %v", err)
	}

	table := tabular.New("id", "name", "founded", "active", "rating")
	table.Append(tabular.Row{"id": int64(1), "name": "SV Musterstadt"})
	table.Append(tabular.Row{"id": int64(1), "name": "TSV"})
	table.Append(tabular.Row{"id": int64(3), "name": nil})
	table.Append(tabular.Row{"id": int64(4), "name": "TSV"})

	violations, err := catalog.Validate(table, "club")
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if len(violations) != 3 {
		t.Fatalf("expected 3 violations, got %d: %+v", len(violations), violations)
	}

	assertViolation(t, violations, RuleNotNull, "name", 3)
	assertViolation(t, violations, RulePrimaryKey, "id", 2)
	assertViolation(t, violations, RuleUnique, "name", 4)
}

func TestCatalogValidateMissingRequiredColumn(t *testing.T) {
	catalog, err := NewCatalog(testDocument(), "")
	if err != nil {
		t.Fatalf("new catalog: %v", err)
	}

	table := tabular.New("id")
	table.Append(tabular.Row{"id": int64(1)})

	violations, err := catalog.Validate(table, "club")
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	assertViolation(t, violations, RuleRequiredColumn, "name", 0)
}

func TestCatalogEnsureColumns(t *testing.T) {
	catalog, err := NewCatalog(testDocument(), "")
	if err != nil {
		t.Fatalf("new catalog: %v", err)
	}

	table := tabular.New("name", "id", "stray")
	table.Append(tabular.Row{"name": "SV Musterstadt", "id": int64(1), "stray": "x"})

	if err := catalog.EnsureColumns(table, "club"); err != nil {
		t.Fatalf("ensure columns: %v", err)
	}

	want := []string{"id", "name", "founded", "active", "rating"}
	if len(table.Columns) != len(want) {
		t.Fatalf("unexpected columns: %v", table.Columns)
	}
	for i, col := range want {
		if table.Columns[i] != col {
			t.Fatalf("column %d: got %q want %q", i, table.Columns[i], col)
		}
	}
	if !tabular.IsMissing(table.Rows[0]["founded"]) {
		t.Fatalf("added column must be missing, got %v", table.Rows[0]["founded"])
	}
}

func TestDefaultDocumentBuildsCatalog(t *testing.T) {
	catalog, err := NewCatalog(DefaultDocument(), "")
	if err != nil {
		t.Fatalf("default document rejected: %v", err)
	}

	names := []string{
		TableVenue, TableLeague, TableScoringSystem, TableLeagueSeason,
		TableEvent, TablePlayer, TableClub, TableTeamSeason, TableGameResult,
		TableResults,
	}
	for _, name := range names {
		if _, err := catalog.Table(name); err != nil {
			t.Fatalf("table %q missing from default document: %v", name, err)
		}
	}

	results, err := catalog.Table(TableResults)
	if err != nil {
		t.Fatalf("results table: %v", err)
	}
	if results.Columns[0].Name != "Season" {
		t.Fatalf("results dataset leads with %q", results.Columns[0].Name)
	}
}

func assertViolation(t *testing.T, violations []Violation, rule, column string, row int) {
	t.Helper()
	for _, v := range violations {
		if v.Rule == rule && v.Column == column && v.Row == row {
			return
		}
	}
	t.Fatalf("no %s violation for column %q at row %d in %+v", rule, column, row, violations)
}
