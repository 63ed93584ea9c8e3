package tabular

import (
	"fmt"
	"io"
	"os"

	"github.com/xuri/excelize/v2"
)

// ReadSheet reads one worksheet from an xlsx stream into a Frame. The first
// row supplies the column names; the remaining rows become data, with numeric
// and date-looking cells coerced to their typed values. Rows shorter than the
// header are padded with empty strings (excelize trims trailing empty cells).
func ReadSheet(r io.Reader, sheet string) (*Frame, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open xlsx: %w", err)
	}
	defer f.Close()

	raw, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", sheet, err)
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("sheet %s is empty", sheet)
	}

	columns := raw[0]
	rows := make([][]interface{}, 0, len(raw)-1)
	for _, line := range raw[1:] {
		rows = append(rows, coerceRow(line, len(columns)))
	}
	return NewFrame(columns, rows)
}

// ReadSheetFile is ReadSheet for a file on disk.
func ReadSheetFile(path, sheet string) (*Frame, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadSheet(f, sheet)
}
