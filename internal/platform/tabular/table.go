package tabular

import "time"

// Row is one record keyed by column name. A missing cell holds nil.
type Row map[string]any

// Table is an ordered set of columns plus the rows filed under them.
type Table struct {
	Columns []string
	Rows    []Row
}

func New(columns ...string) *Table {
	return &Table{
		Columns: append([]string(nil), columns...),
		Rows:    make([]Row, 0),
	}
}

func (t *Table) Append(row Row) {
	t.Rows = append(t.Rows, row)
}

func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Rows)
}

func (t *Table) HasColumn(name string) bool {
	for _, col := range t.Columns {
		if col == name {
			return true
		}
	}
	return false
}

// IsMissing reports whether a cell carries no value.
func IsMissing(v any) bool {
	return v == nil
}

// String reads a cell as a string. The second return is false when the
// cell is missing or holds another type.
func String(row Row, col string) (string, bool) {
	v, ok := row[col].(string)
	return v, ok
}

func Int(row Row, col string) (int64, bool) {
	v, ok := row[col].(int64)
	return v, ok
}

func Float(row Row, col string) (float64, bool) {
	switch v := row[col].(type) {
	case float64:
		return v, true
	case int64:
		return float64(v), true
	default:
		return 0, false
	}
}

func Bool(row Row, col string) (bool, bool) {
	v, ok := row[col].(bool)
	return v, ok
}

func Date(row Row, col string) (time.Time, bool) {
	v, ok := row[col].(time.Time)
	return v, ok
}
