package usecase

import (
	"errors"
	"fmt"
	"io/fs"

	crerr "github.com/cockroachdb/errors"
)

var (
	ErrInvalidInput = crerr.New("invalid input")

	// ErrMissingDependency marks a builder started before its
	// prerequisite tables were written. The caller has to run the
	// earlier stages; nothing is rebuilt implicitly.
	ErrMissingDependency = crerr.New("prerequisite table has not been built")

	// ErrReferentialIntegrity marks a natural key that failed to
	// resolve against an already-built dimension table. It always
	// aborts the stage.
	ErrReferentialIntegrity = crerr.New("foreign key did not resolve")
)

// dependencyErr translates a missing table file into
// ErrMissingDependency so callers can tell "run the earlier stage"
// apart from a genuinely broken file.
func dependencyErr(table string, err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %s", ErrMissingDependency, table)
	}
	return fmt.Errorf("load %s table: %w", table, err)
}
