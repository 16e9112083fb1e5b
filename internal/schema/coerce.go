package schema

import (
	"strconv"
	"strings"
	"time"

	"github.com/AmbidextrousCoatie/league-analyzer-sub002/internal/platform/tabular"
)

// Coerce casts every cell of the table to its declared kind in place.
// Values that cannot be parsed become missing; coercion never fails on
// data, only on an unknown table.
func (c *Catalog) Coerce(t *tabular.Table, tableName string) error {
	spec, err := c.Table(tableName)
	if err != nil {
		return err
	}

	for _, row := range t.Rows {
		for _, col := range spec.Columns {
			value, exists := row[col.Name]
			if !exists {
				continue
			}
			row[col.Name] = c.coerceValue(value, col.Kind)
		}
	}

	return nil
}

func (c *Catalog) coerceValue(value any, kind Kind) any {
	if value == nil {
		return nil
	}

	// Typed cells pass through when they already match the kind.
	switch v := value.(type) {
	case int64:
		switch kind {
		case KindInteger:
			return v
		case KindNumber:
			return float64(v)
		case KindString:
			return strconv.FormatInt(v, 10)
		}
	case int:
		return c.coerceValue(int64(v), kind)
	case float64:
		switch kind {
		case KindNumber:
			return v
		case KindInteger:
			if v == float64(int64(v)) {
				return int64(v)
			}
			return nil
		}
	case bool:
		if kind == KindBoolean {
			return v
		}
	case time.Time:
		if kind == KindDate {
			return v
		}
	case string:
		return c.parseString(v, kind)
	}

	return nil
}

func (c *Catalog) parseString(raw string, kind Kind) any {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil
	}

	switch kind {
	case KindString:
		return trimmed
	case KindInteger:
		if n, err := strconv.ParseInt(trimmed, 10, 64); err == nil {
			return n
		}
		if f, err := strconv.ParseFloat(trimmed, 64); err == nil && f == float64(int64(f)) {
			return int64(f)
		}
		return nil
	case KindNumber:
		if f, err := strconv.ParseFloat(trimmed, 64); err == nil {
			return f
		}
		return nil
	case KindBoolean:
		if b, err := strconv.ParseBool(strings.ToLower(trimmed)); err == nil {
			return b
		}
		return nil
	case KindDate:
		if ts, err := time.Parse(c.dateLayout, trimmed); err == nil {
			return ts
		}
		return nil
	}

	return nil
}
