package schema

// Kind is the closed set of column value types the catalog understands.
type Kind string

const (
	KindInteger Kind = "integer"
	KindNumber  Kind = "number"
	KindBoolean Kind = "boolean"
	KindDate    Kind = "date"
	KindString  Kind = "string"
)

// Column describes one declared column of a table.
type Column struct {
	Name       string `koanf:"name" validate:"required"`
	Kind       Kind   `koanf:"kind" validate:"required,oneof=integer number boolean date string"`
	Nullable   bool   `koanf:"nullable"`
	PrimaryKey bool   `koanf:"primary_key"`
}

// Table declares the ordered columns of a table plus the column sets
// that must stay unique across its rows.
type Table struct {
	Name    string     `koanf:"name" validate:"required"`
	Columns []Column   `koanf:"columns" validate:"min=1,dive"`
	Unique  [][]string `koanf:"unique"`
}

// Document is the full declarative table specification.
type Document struct {
	Tables []Table `koanf:"tables" validate:"min=1,dive"`
}

func (t Table) ColumnNames() []string {
	out := make([]string, 0, len(t.Columns))
	for _, col := range t.Columns {
		out = append(out, col.Name)
	}
	return out
}

func (t Table) Column(name string) (Column, bool) {
	for _, col := range t.Columns {
		if col.Name == name {
			return col, true
		}
	}
	return Column{}, false
}

// PrimaryKey returns the names of the primary key columns in declared order.
func (t Table) PrimaryKey() []string {
	out := make([]string, 0, 1)
	for _, col := range t.Columns {
		if col.PrimaryKey {
			out = append(out, col.Name)
		}
	}
	return out
}
