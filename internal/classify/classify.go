// Package classify contains the pure classification rules that flag columns
// and rows as candidates for cleanup or type correction. Every rule reads the
// current state of the dataset; nothing is cached between calls.
package classify

import (
	"math"
	"sort"
	"strings"

	"github.com/aayushsanghavi/dsbox/internal/dataset"
)

// DefaultMissingThreshold is the fraction of missing values above which a
// column or row is considered majority-missing.
const DefaultMissingThreshold = 0.8

// SingleValueColumns returns the columns holding exactly one distinct value.
// A null counts as its own distinct value, so an all-null column qualifies
// while a zero-row column never does.
func SingleValueColumns(ds *dataset.Dataset) []string {
	var out []string
	for _, name := range ds.Columns() {
		values, nulls := ds.Distinct(name)
		distinct := len(values)
		if nulls {
			distinct++
		}
		if distinct == 1 {
			out = append(out, name)
		}
	}
	return out
}

// isIdentifierName reports whether a column name looks like an identifier.
// The exact match is case-insensitive while the substring checks are
// case-sensitive; the asymmetry is kept on purpose so that names such as
// "candid" are not matched but "userId" and "user_id" are.
func isIdentifierName(name string) bool {
	return strings.EqualFold(name, "id") ||
		strings.Contains(name, "ID") ||
		strings.Contains(name, "Id") ||
		strings.Contains(name, "_id")
}

// IdentifierColumns returns the integer-typed columns whose name looks like
// an identifier. Such columns carry no signal for analysis.
func IdentifierColumns(ds *dataset.Dataset) []string {
	var out []string
	for _, name := range ds.Columns() {
		kind, ok := ds.Kind(name)
		if ok && kind == dataset.KindInt && isIdentifierName(name) {
			out = append(out, name)
		}
	}
	return out
}

// MajorityMissingColumns returns the columns whose null count reaches
// thresholdCount(rowCount, threshold).
func MajorityMissingColumns(ds *dataset.Dataset, threshold float64) []string {
	want := thresholdCount(ds.NumRows(), threshold)
	var out []string
	for _, name := range ds.Columns() {
		if ds.NullCount(name) >= want {
			out = append(out, name)
		}
	}
	return out
}

// MajorityMissingRows returns the indices of rows whose null count, tallied
// over every column except the named target column, reaches the threshold
// count. The target column is excluded both from the tally and from the
// column count the threshold is computed over; an empty or unknown target
// excludes nothing.
func MajorityMissingRows(ds *dataset.Dataset, target string, threshold float64) []int {
	counted := ds.NumCols()
	exclude := ""
	if target != "" && ds.HasColumn(target) {
		counted--
		exclude = target
	}
	want := thresholdCount(counted, threshold)
	var out []int
	for ri := 0; ri < ds.NumRows(); ri++ {
		if ds.RowNullCount(ri, exclude) >= want {
			out = append(out, ri)
		}
	}
	sort.Ints(out)
	return out
}

// thresholdCount converts a fractional threshold over n items into a minimum
// count, rounding half to even as the rest of the rules expect.
func thresholdCount(n int, threshold float64) int {
	return int(math.RoundToEven(float64(n) * threshold))
}
