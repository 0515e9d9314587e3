// Package dataset implements the in-memory tabular data model the cleanup
// and preprocessing pipelines operate on: named, typed columns of cells,
// positionally indexed rows, mutable in place.
package dataset

import (
	"fmt"
	"sort"
	"strings"
)

// Kind is the declared type of a column.
type Kind int

const (
	KindString Kind = iota
	KindInt
	KindFloat
	KindBool
)

// String returns the kind name as used in logs and CSV inference.
func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	default:
		return "string"
	}
}

// Cell is a single value. Null cells keep no value text.
type Cell struct {
	Value string
	Null  bool
}

// Column is a named, typed sequence of cells.
type Column struct {
	Name  string
	Kind  Kind
	Cells []Cell
}

// Dataset is a table of columns of equal length.
type Dataset struct {
	cols []Column
}

// New builds a dataset from columns. All columns must have the same number
// of cells and unique names.
func New(cols ...Column) (*Dataset, error) {
	seen := map[string]bool{}
	for _, c := range cols {
		if seen[c.Name] {
			return nil, fmt.Errorf("duplicate column name %q", c.Name)
		}
		seen[c.Name] = true
		if len(c.Cells) != len(cols[0].Cells) {
			return nil, fmt.Errorf("column %q has %d cells, want %d", c.Name, len(c.Cells), len(cols[0].Cells))
		}
	}
	return &Dataset{cols: cols}, nil
}

// NumRows returns the current row count.
func (d *Dataset) NumRows() int {
	if len(d.cols) == 0 {
		return 0
	}
	return len(d.cols[0].Cells)
}

// NumCols returns the current column count.
func (d *Dataset) NumCols() int {
	return len(d.cols)
}

// Columns returns the column names in positional order.
func (d *Dataset) Columns() []string {
	names := make([]string, len(d.cols))
	for i, c := range d.cols {
		names[i] = c.Name
	}
	return names
}

// Kind reports the declared kind of the named column.
func (d *Dataset) Kind(name string) (Kind, bool) {
	c := d.column(name)
	if c == nil {
		return KindString, false
	}
	return c.Kind, true
}

// HasColumn reports whether the named column currently exists.
func (d *Dataset) HasColumn(name string) bool {
	return d.column(name) != nil
}

// Cell returns the cell at the given column name and row index.
func (d *Dataset) Cell(name string, row int) (Cell, bool) {
	c := d.column(name)
	if c == nil || row < 0 || row >= len(c.Cells) {
		return Cell{}, false
	}
	return c.Cells[row], true
}

// Distinct returns the sorted distinct non-null values of the named column
// and whether the column contains any null cell. A null counts as one
// additional distinct value for rules that need it.
func (d *Dataset) Distinct(name string) (values []string, nulls bool) {
	c := d.column(name)
	if c == nil {
		return nil, false
	}
	set := map[string]bool{}
	for _, cell := range c.Cells {
		if cell.Null {
			nulls = true
			continue
		}
		set[cell.Value] = true
	}
	for v := range set {
		values = append(values, v)
	}
	sort.Strings(values)
	return values, nulls
}

// NullCount returns the number of null cells in the named column.
func (d *Dataset) NullCount(name string) int {
	c := d.column(name)
	if c == nil {
		return 0
	}
	n := 0
	for _, cell := range c.Cells {
		if cell.Null {
			n++
		}
	}
	return n
}

// RowNullCount returns the number of null cells in the given row, skipping
// the column named exclude (empty string skips nothing).
func (d *Dataset) RowNullCount(row int, exclude string) int {
	n := 0
	for _, c := range d.cols {
		if c.Name == exclude {
			continue
		}
		if row >= 0 && row < len(c.Cells) && c.Cells[row].Null {
			n++
		}
	}
	return n
}

// DropColumns removes the named columns in place. Unknown names are ignored.
// Returns the number of columns removed.
func (d *Dataset) DropColumns(names []string) int {
	drop := map[string]bool{}
	for _, n := range names {
		drop[n] = true
	}
	kept := d.cols[:0]
	removed := 0
	for _, c := range d.cols {
		if drop[c.Name] {
			removed++
			continue
		}
		kept = append(kept, c)
	}
	d.cols = kept
	return removed
}

// DropRows removes the rows at the given indices in place. Out-of-range and
// duplicate indices are ignored. Returns the number of rows removed.
func (d *Dataset) DropRows(indices []int) int {
	rows := d.NumRows()
	drop := map[int]bool{}
	for _, i := range indices {
		if i >= 0 && i < rows {
			drop[i] = true
		}
	}
	if len(drop) == 0 {
		return 0
	}
	for ci := range d.cols {
		kept := d.cols[ci].Cells[:0]
		for ri, cell := range d.cols[ci].Cells {
			if !drop[ri] {
				kept = append(kept, cell)
			}
		}
		d.cols[ci].Cells = kept
	}
	return len(drop)
}

// DropDuplicateRows removes rows whose cells exactly match an earlier row,
// keeping the first occurrence. Returns the number of rows removed.
func (d *Dataset) DropDuplicateRows() int {
	seen := map[string]bool{}
	var dup []int
	for ri := 0; ri < d.NumRows(); ri++ {
		var b strings.Builder
		for _, c := range d.cols {
			if c.Cells[ri].Null {
				b.WriteString("\x00")
			} else {
				b.WriteString(c.Cells[ri].Value)
			}
			b.WriteString("\x1f")
		}
		key := b.String()
		if seen[key] {
			dup = append(dup, ri)
			continue
		}
		seen[key] = true
	}
	return d.DropRows(dup)
}

// ReplaceValues substitutes cell values dataset-wide: every non-null cell
// whose value appears as a key in mapping is rewritten to the mapped value.
// Matching is exact on the raw cell text. Returns the number of cells changed.
func (d *Dataset) ReplaceValues(mapping map[string]string) int {
	changed := 0
	for ci := range d.cols {
		for ri := range d.cols[ci].Cells {
			cell := &d.cols[ci].Cells[ri]
			if cell.Null {
				continue
			}
			if repl, ok := mapping[cell.Value]; ok && repl != cell.Value {
				cell.Value = repl
				changed++
			}
		}
	}
	return changed
}

// Coerce sets the declared kind of the named column. Cell values are left
// as-is; callers are expected to have rewritten them first.
func (d *Dataset) Coerce(name string, k Kind) bool {
	c := d.column(name)
	if c == nil {
		return false
	}
	c.Kind = k
	return true
}

func (d *Dataset) column(name string) *Column {
	for i := range d.cols {
		if d.cols[i].Name == name {
			return &d.cols[i]
		}
	}
	return nil
}
