package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// nullTokens are the raw CSV cell values treated as missing, compared
// case-insensitively.
var nullTokens = map[string]bool{
	"":     true,
	"na":   true,
	"n/a":  true,
	"nan":  true,
	"null": true,
}

// ReadCSV parses CSV content into a dataset. The first record is the header.
// Column kinds are inferred from the non-null cells: int if every cell parses
// as an integer, else float, else bool if every cell is true/false, else
// string. A column with no non-null cells is a string column.
func ReadCSV(r io.Reader) (*Dataset, error) {
	reader := csv.NewReader(r)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading csv: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("csv input has no header row")
	}

	header := records[0]
	cols := make([]Column, len(header))
	for i, name := range header {
		cols[i] = Column{Name: name, Cells: make([]Cell, 0, len(records)-1)}
	}

	for _, record := range records[1:] {
		for i := range cols {
			raw := strings.TrimSpace(record[i])
			if nullTokens[strings.ToLower(raw)] {
				cols[i].Cells = append(cols[i].Cells, Cell{Null: true})
				continue
			}
			cols[i].Cells = append(cols[i].Cells, Cell{Value: raw})
		}
	}

	for i := range cols {
		cols[i].Kind = inferKind(cols[i].Cells)
	}
	return New(cols...)
}

// WriteCSV writes the dataset as CSV with a header row. Null cells are
// written as empty fields.
func (d *Dataset) WriteCSV(w io.Writer) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(d.Columns()); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}
	for ri := 0; ri < d.NumRows(); ri++ {
		record := make([]string, len(d.cols))
		for ci, c := range d.cols {
			if !c.Cells[ri].Null {
				record[ci] = c.Cells[ri].Value
			}
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("writing csv row %d: %w", ri, err)
		}
	}
	writer.Flush()
	return writer.Error()
}

// inferKind picks the narrowest kind that fits every non-null cell.
func inferKind(cells []Cell) Kind {
	isInt, isFloat, isBool := true, true, true
	nonNull := 0
	for _, cell := range cells {
		if cell.Null {
			continue
		}
		nonNull++
		if _, err := strconv.ParseInt(cell.Value, 10, 64); err != nil {
			isInt = false
		}
		if _, err := strconv.ParseFloat(cell.Value, 64); err != nil {
			isFloat = false
		}
		lower := strings.ToLower(cell.Value)
		if lower != "true" && lower != "false" {
			isBool = false
		}
	}
	switch {
	case nonNull == 0:
		return KindString
	case isInt:
		return KindInt
	case isFloat:
		return KindFloat
	case isBool:
		return KindBool
	default:
		return KindString
	}
}
