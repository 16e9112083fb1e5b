package csv

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/AmbidextrousCoatie/league-analyzer-sub002/internal/platform/tabular"
	"github.com/AmbidextrousCoatie/league-analyzer-sub002/internal/schema"
)

// Store persists one delimited file per table under a directory, with
// every write completed and validated against the schema catalog.
type Store struct {
	dir     string
	codec   tabular.Codec
	catalog *schema.Catalog
}

func NewStore(dir string, codec tabular.Codec, catalog *schema.Catalog) *Store {
	return &Store{dir: dir, codec: codec, catalog: catalog}
}

func (s *Store) Path(table string) string {
	return filepath.Join(s.dir, table+".csv")
}

func (s *Store) Exists(table string) bool {
	info, err := os.Stat(s.Path(table))
	return err == nil && !info.IsDir()
}

// Load reads and coerces a table. A missing file surfaces as
// fs.ErrNotExist so callers can treat it as an absent prerequisite.
func (s *Store) Load(table string) (*tabular.Table, error) {
	t, err := s.codec.ReadFile(s.Path(table))
	if err != nil {
		return nil, err
	}
	if err := s.catalog.EnsureColumns(t, table); err != nil {
		return nil, err
	}
	if err := s.catalog.Coerce(t, table); err != nil {
		return nil, err
	}

	return t, nil
}

// Save completes, coerces and validates the table, then writes it.
// Any violation aborts the write with the aggregated ValidationError.
func (s *Store) Save(table string, t *tabular.Table) error {
	if err := s.catalog.EnsureColumns(t, table); err != nil {
		return err
	}
	if err := s.catalog.Coerce(t, table); err != nil {
		return err
	}
	violations, err := s.catalog.Validate(t, table)
	if err != nil {
		return err
	}
	if len(violations) > 0 {
		return &schema.ValidationError{Table: table, Violations: violations}
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create tables dir %s: %w", s.dir, err)
	}

	return s.codec.WriteFile(s.Path(table), t)
}

// Validate re-checks a table file on disk and returns its violations.
func (s *Store) Validate(table string) ([]schema.Violation, error) {
	t, err := s.Load(table)
	if err != nil {
		return nil, err
	}

	return s.catalog.Validate(t, table)
}
