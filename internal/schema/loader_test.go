package schema

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	content := `tables:
  - name: club
    columns:
      - name: id
        kind: integer
        primary_key: true
      - name: name
        kind: string
      - name: founded
        kind: date
        nullable: true
    unique:
      - [name]
`
	path := filepath.Join(t.TempDir(), "schema.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	doc, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(doc.Tables) != 1 {
		t.Fatalf("unexpected table count: %d", len(doc.Tables))
	}

	table := doc.Tables[0]
	if table.Name != "club" || len(table.Columns) != 3 {
		t.Fatalf("unexpected table: %+v", table)
	}
	if !table.Columns[0].PrimaryKey || table.Columns[0].Kind != KindInteger {
		t.Fatalf("unexpected id column: %+v", table.Columns[0])
	}
	if !table.Columns[2].Nullable {
		t.Fatalf("nullable flag lost: %+v", table.Columns[2])
	}
	if len(table.Unique) != 1 || table.Unique[0][0] != "name" {
		t.Fatalf("unexpected unique sets: %+v", table.Unique)
	}

	if _, err := NewCatalog(doc, ""); err != nil {
		t.Fatalf("loaded document rejected by catalog: %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("loading a missing schema file must fail")
	}
}

func TestLoadRejectedByCatalog(t *testing.T) {
	content := `tables:
  - name: club
    columns:
      - name: id
        kind: decimal
`
	path := filepath.Join(t.TempDir(), "schema.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	doc, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if _, err := NewCatalog(doc, ""); err == nil {
		t.Fatal("unknown kind passed catalog construction")
	}
}
