// Package thinkcell builds the JSON documents consumed by think-cell's
// PowerPoint automation (".ppttc" files). A Template accumulates named chart,
// table and text objects as tables of typed cells; a Presentation collects
// one or more Templates and serializes them into a single ppttc document.
//
// The package never touches PowerPoint itself. Template paths are opaque
// references into a .pptx file that is assumed to contain objects with the
// names used here; whether it actually does cannot be verified from this side.
package thinkcell

import (
	"encoding/json"
	"time"
)

// DateLayout is the date format think-cell expects in cell payloads.
const DateLayout = "2006-01-02"

type cellKind int

const (
	kindString cellKind = iota
	kindNumber
	kindDate
)

// Cell is a single typed value in a slide object's table. Exactly one of the
// string/number/date tags is emitted, plus an optional fill color.
type Cell struct {
	kind cellKind
	str  string
	num  interface{}
	date time.Time
	fill string
}

// Fill returns the fill color attached to the cell, or "" if none.
func (c *Cell) Fill() string { return c.fill }

// MarshalJSON emits the think-cell cell shape, e.g. {"number": 3} or
// {"date": "2012-09-16", "fill": "#70AD47"}.
func (c *Cell) MarshalJSON() ([]byte, error) {
	obj := make(map[string]interface{}, 2)
	switch c.kind {
	case kindDate:
		obj["date"] = c.date.Format(DateLayout)
	case kindNumber:
		obj["number"] = c.num
	default:
		obj["string"] = c.str
	}
	if c.fill != "" {
		obj["fill"] = c.fill
	}
	return json.Marshal(obj)
}

// Row is one table row. A nil element marshals as JSON null (the header
// placeholder above a chart's row labels); an empty Row marshals as [].
type Row []*Cell

// TransformValue classifies a raw value into a Cell. Dates are checked before
// the generic cases because time.Time is a distinguished type, not a structural
// subtype of number or string. fill may be "" for no fill.
//
// Accepted types are time.Time, string, and all integer and float kinds.
// Anything else returns an *InvalidValueTypeError.
func TransformValue(value interface{}, fill string) (*Cell, error) {
	switch v := value.(type) {
	case time.Time:
		return &Cell{kind: kindDate, date: v, fill: fill}, nil
	case string:
		return &Cell{kind: kindString, str: v, fill: fill}, nil
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return &Cell{kind: kindNumber, num: v, fill: fill}, nil
	case json.Number:
		return &Cell{kind: kindNumber, num: v, fill: fill}, nil
	default:
		return nil, &InvalidValueTypeError{Value: value}
	}
}

// transformRow transforms every element of a raw row with a single fill color.
func transformRow(raw []interface{}, fill string) (Row, error) {
	row := make(Row, 0, len(raw))
	for _, el := range raw {
		cell, err := TransformValue(el, fill)
		if err != nil {
			return nil, err
		}
		row = append(row, cell)
	}
	return row, nil
}
