package schema

import (
	"fmt"
	"strings"

	"github.com/AmbidextrousCoatie/league-analyzer-sub002/internal/platform/tabular"
)

// Compound key cells are joined with a separator that cannot appear in
// the data itself.
const keySeparator = "\x1f"

// Validate checks a table against its specification and returns every
// violation found. It never stops at the first failure.
func (c *Catalog) Validate(t *tabular.Table, tableName string) ([]Violation, error) {
	spec, err := c.Table(tableName)
	if err != nil {
		return nil, err
	}

	violations := make([]Violation, 0)

	present := make(map[string]struct{}, len(t.Columns))
	for _, col := range t.Columns {
		present[col] = struct{}{}
	}
	for _, col := range spec.Columns {
		if _, ok := present[col.Name]; !ok {
			violations = append(violations, Violation{
				Table:   tableName,
				Column:  col.Name,
				Rule:    RuleRequiredColumn,
				Message: fmt.Sprintf("required column %q is missing", col.Name),
			})
		}
	}

	for _, col := range spec.Columns {
		if col.Nullable {
			continue
		}
		if _, ok := present[col.Name]; !ok {
			continue
		}
		for i, row := range t.Rows {
			if tabular.IsMissing(row[col.Name]) {
				violations = append(violations, Violation{
					Table:   tableName,
					Column:  col.Name,
					Row:     i + 1,
					Rule:    RuleNotNull,
					Message: fmt.Sprintf("row %d: column %q must not be empty", i+1, col.Name),
				})
			}
		}
	}

	if pk := spec.PrimaryKey(); len(pk) > 0 {
		violations = append(violations, c.checkUniqueSet(t, tableName, pk, RulePrimaryKey)...)
	}
	for _, set := range spec.Unique {
		violations = append(violations, c.checkUniqueSet(t, tableName, set, RuleUnique)...)
	}

	return violations, nil
}

func (c *Catalog) checkUniqueSet(t *tabular.Table, tableName string, cols []string, rule string) []Violation {
	for _, col := range cols {
		if !t.HasColumn(col) {
			return nil
		}
	}

	codec := tabular.NewCodec(tabular.DefaultDelimiter, c.dateLayout)
	out := make([]Violation, 0)
	seen := make(map[string]int, len(t.Rows))
	for i, row := range t.Rows {
		parts := make([]string, 0, len(cols))
		for _, col := range cols {
			parts = append(parts, codec.FormatCell(row[col]))
		}
		key := strings.Join(parts, keySeparator)
		if first, exists := seen[key]; exists {
			out = append(out, Violation{
				Table:  tableName,
				Column: strings.Join(cols, ","),
				Row:    i + 1,
				Rule:   rule,
				Message: fmt.Sprintf("row %d: duplicate value for (%s), first seen at row %d",
					i+1, strings.Join(cols, ", "), first),
			})
			continue
		}
		seen[key] = i + 1
	}

	return out
}

// EnsureColumns adds schema-declared columns the table lacks as
// all-missing and reorders the table into schema column order. Columns
// not covered by the schema are dropped from the ordering.
func (c *Catalog) EnsureColumns(t *tabular.Table, tableName string) error {
	spec, err := c.Table(tableName)
	if err != nil {
		return err
	}

	t.Columns = spec.ColumnNames()
	for _, row := range t.Rows {
		for _, col := range spec.Columns {
			if _, exists := row[col.Name]; !exists {
				row[col.Name] = nil
			}
		}
	}

	return nil
}
