package usecase

import (
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/AmbidextrousCoatie/league-analyzer-sub002/internal/platform/tabular"
)

// newCollator returns a German-collation comparer. Club, player and
// venue labels carry umlauts, which must sort next to their base
// letters instead of after "z". Collators are not safe for concurrent
// use, so every sort creates its own.
func newCollator() *collate.Collator {
	return collate.New(language.German)
}

// sortLabels orders source labels the way the printed league tables do.
func sortLabels(labels []string) {
	newCollator().SortStrings(labels)
}

// dateKey renders a date for grouping and lookup keys. The dataset
// carries bare dates, so the day is the whole identity.
func dateKey(t time.Time) string {
	return t.Format(tabular.DefaultDateLayout)
}
