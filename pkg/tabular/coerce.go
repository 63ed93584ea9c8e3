package tabular

import (
	"strconv"
	"time"
)

// dateLayouts are the formats coerceValue recognizes as dates. xlsx and CSV
// sources deliver every cell as text, so typed values have to be recovered
// before they reach the cell classifier.
var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"01-02-06",
	"1/2/06 15:04",
}

// coerceValue turns a textual cell into a number or date when it parses
// unambiguously as one, and leaves it a string otherwise.
func coerceValue(s string) interface{} {
	if s == "" {
		return s
	}
	if n, err := strconv.ParseFloat(s, 64); err == nil {
		return n
	}
	for _, layout := range dateLayouts {
		if d, err := time.Parse(layout, s); err == nil {
			return d
		}
	}
	return s
}

// coerceRow pads a short row to width and coerces every cell.
func coerceRow(raw []string, width int) []interface{} {
	row := make([]interface{}, width)
	for i := 0; i < width; i++ {
		if i < len(raw) {
			row[i] = coerceValue(raw[i])
		} else {
			row[i] = ""
		}
	}
	return row
}
