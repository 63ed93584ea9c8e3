package tabular

import (
	"encoding/csv"
	"fmt"
	"io"
)

// FromCSV reads a CSV stream into a Frame. The first record is the header;
// numeric and date-looking fields are coerced like ReadSheet does.
func FromCSV(r io.Reader) (*Frame, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("csv input is empty")
	}

	columns := records[0]
	rows := make([][]interface{}, 0, len(records)-1)
	for _, rec := range records[1:] {
		rows = append(rows, coerceRow(rec, len(columns)))
	}
	return NewFrame(columns, rows)
}
