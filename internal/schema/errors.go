package schema

import (
	"fmt"
	"strings"

	crerr "github.com/cockroachdb/errors"
)

var (
	ErrTableNotFound  = crerr.New("table is not declared in the schema")
	ErrColumnNotFound = crerr.New("column is not declared in the schema")
)

// Violation is one failed validation rule on a table. Row is the 1-based
// data row the rule failed on, or 0 for table-level violations.
type Violation struct {
	Table   string
	Column  string
	Row     int
	Rule    string
	Message string
}

const (
	RuleRequiredColumn = "required_column"
	RuleNotNull        = "not_null"
	RulePrimaryKey     = "primary_key"
	RuleUnique         = "unique"
)

// ValidationError aggregates every violation found in one table so a
// single run reports the full set instead of the first failure.
type ValidationError struct {
	Table      string
	Violations []Violation
}

func (e *ValidationError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "table %q failed validation with %d violation(s)", e.Table, len(e.Violations))
	for _, v := range e.Violations {
		sb.WriteString("; ")
		sb.WriteString(v.Message)
	}
	return sb.String()
}
