package schema

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/AmbidextrousCoatie/league-analyzer-sub002/internal/platform/tabular"
)

// Catalog holds the validated table specifications and applies them to
// tables: type coercion, violation collection and column completion.
type Catalog struct {
	tables     map[string]Table
	order      []string
	dateLayout string
}

func NewCatalog(doc Document, dateLayout string) (*Catalog, error) {
	if err := validator.New().Struct(doc); err != nil {
		return nil, fmt.Errorf("schema document is invalid: %w", err)
	}
	if dateLayout == "" {
		dateLayout = tabular.DefaultDateLayout
	}

	tables := make(map[string]Table, len(doc.Tables))
	order := make([]string, 0, len(doc.Tables))
	for _, t := range doc.Tables {
		if _, exists := tables[t.Name]; exists {
			return nil, fmt.Errorf("schema document declares table %q twice", t.Name)
		}
		seen := make(map[string]struct{}, len(t.Columns))
		for _, col := range t.Columns {
			if _, exists := seen[col.Name]; exists {
				return nil, fmt.Errorf("table %q declares column %q twice", t.Name, col.Name)
			}
			seen[col.Name] = struct{}{}
		}
		for _, set := range t.Unique {
			for _, name := range set {
				if _, ok := t.Column(name); !ok {
					return nil, fmt.Errorf("table %q unique set references unknown column %q: %w", t.Name, name, ErrColumnNotFound)
				}
			}
		}
		tables[t.Name] = t
		order = append(order, t.Name)
	}

	return &Catalog{tables: tables, order: order, dateLayout: dateLayout}, nil
}

func (c *Catalog) Table(name string) (Table, error) {
	t, ok := c.tables[name]
	if !ok {
		return Table{}, fmt.Errorf("%w: %q", ErrTableNotFound, name)
	}
	return t, nil
}

// Tables returns the specifications in document order.
func (c *Catalog) Tables() []Table {
	out := make([]Table, 0, len(c.order))
	for _, name := range c.order {
		out = append(out, c.tables[name])
	}
	return out
}

func (c *Catalog) DateLayout() string {
	return c.dateLayout
}
