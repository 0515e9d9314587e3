package classify

import (
	"strings"

	"github.com/aayushsanghavi/dsbox/internal/dataset"
)

// trueValues and falseValues are the raw values (lowercased for comparison)
// recognised as boolean literals in disguise.
var trueValues = map[string]bool{
	"1":    true,
	"true": true,
	"y":    true,
	"yes":  true,
}

var falseValues = map[string]bool{
	"0":     true,
	"false": true,
	"n":     true,
	"no":    true,
}

// BooleanColumns returns the columns whose distinct values are all boolean
// encodings with at least one truthy and one falsy member. A null cell is a
// distinct value outside the boolean set and disqualifies the column.
func BooleanColumns(ds *dataset.Dataset) []string {
	var out []string
	for _, name := range ds.Columns() {
		values, nulls := ds.Distinct(name)
		if nulls || len(values) == 0 {
			continue
		}
		hasTrue, hasFalse, allBoolean := false, false, true
		for _, v := range values {
			lower := strings.ToLower(v)
			switch {
			case trueValues[lower]:
				hasTrue = true
			case falseValues[lower]:
				hasFalse = true
			default:
				allBoolean = false
			}
		}
		if hasTrue && hasFalse && allBoolean {
			out = append(out, name)
		}
	}
	return out
}

// BooleanMapping builds one substitution table from every distinct raw value
// observed across the given columns to its boolean literal. Keys keep their
// original casing; lookup is lowercased. Values outside the boolean sets are
// omitted, so a value can never map to both literals.
func BooleanMapping(ds *dataset.Dataset, columns []string) map[string]bool {
	mapping := map[string]bool{}
	for _, name := range columns {
		values, _ := ds.Distinct(name)
		for _, v := range values {
			lower := strings.ToLower(v)
			switch {
			case trueValues[lower]:
				mapping[v] = true
			case falseValues[lower]:
				mapping[v] = false
			}
		}
	}
	return mapping
}
