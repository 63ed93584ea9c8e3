// Package tabular provides concrete DataFrame implementations for the
// thinkcell builder: in-memory frames plus adapters from xlsx sheets, CSV
// streams and database/sql result sets. Column order is preserved everywhere
// because the first column of a chart frame carries the row labels.
package tabular

import "fmt"

// Frame is an ordered, rectangular table of values.
type Frame struct {
	columns []string
	rows    [][]interface{}
}

// NewFrame builds a Frame from named columns and row-major data. Every row
// must have exactly one value per column.
func NewFrame(columns []string, rows [][]interface{}) (*Frame, error) {
	if len(columns) == 0 {
		return nil, fmt.Errorf("frame needs at least one column")
	}
	for i, row := range rows {
		if len(row) != len(columns) {
			return nil, fmt.Errorf("row %d has %d values but the frame has %d columns", i, len(row), len(columns))
		}
	}
	return &Frame{columns: columns, rows: rows}, nil
}

// Columns returns the column names in order.
func (f *Frame) Columns() []string { return f.columns }

// Rows returns the row-major data.
func (f *Frame) Rows() [][]interface{} { return f.rows }

// Len returns the number of data rows.
func (f *Frame) Len() int { return len(f.rows) }
