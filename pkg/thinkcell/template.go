package thinkcell

import (
	"fmt"

	"github.com/rs/zerolog/log"
)

// WarningFunc receives non-fatal diagnostics. It must not panic.
type WarningFunc func(format string, args ...interface{})

// SlideObject is one named chart/table/text payload inside a slide.
type SlideObject struct {
	Name  string `json:"name"`
	Table []Row  `json:"table"`
}

// Document is the serialized form of a single Template.
type Document struct {
	Template string         `json:"template"`
	Data     []*SlideObject `json:"data"`
}

// Template accumulates named objects destined for one .pptx template. The
// zero value is not usable; construct with NewTemplate. All Add* methods are
// append-only: a failed call leaves the object list untouched.
type Template struct {
	path    string
	objects []*SlideObject
	warnf   WarningFunc
}

// NewTemplate returns a Template bound to the given .pptx path. The path is
// not checked here (it may be a URL or network share); validation happens when
// the template is added to a Presentation.
func NewTemplate(path string, opts ...TemplateOption) *Template {
	t := &Template{
		path:    path,
		objects: []*SlideObject{},
		warnf: func(format string, args ...interface{}) {
			log.Warn().Msgf(format, args...)
		},
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Path returns the template path the Template was constructed with.
func (t *Template) Path() string { return t.path }

// Objects returns the accumulated slide objects, in insertion order.
func (t *Template) Objects() []*SlideObject { return t.objects }

// coerceName stringifies the object name, warning when it was not a string to
// begin with.
func (t *Template) coerceName(name interface{}) string {
	if s, ok := name.(string); ok {
		return s
	}
	t.warnf("object name %v is not a string, converting it to one", name)
	return fmt.Sprint(name)
}

// AddTextField adds a single text field under the given name.
func (t *Template) AddTextField(name interface{}, text string) error {
	cell, err := TransformValue(text, "")
	if err != nil {
		return err
	}
	t.objects = append(t.objects, &SlideObject{
		Name:  t.coerceName(name),
		Table: []Row{{cell}},
	})
	return nil
}

// AddTable adds a table: one output row per input row. WithFill applies one
// color per row, uniformly to every cell in that row. Row lengths are not
// constrained; ragged tables are allowed. Per-cell fills are not supported.
func (t *Template) AddTable(name interface{}, data [][]interface{}, opts ...ObjectOption) error {
	cfg := newObjectConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	objName := t.coerceName(name)
	if cfg.fill != nil && len(cfg.fill) != len(data) {
		return &InvalidShapeError{
			Object: objName,
			Reason: fmt.Sprintf("fill has %d colors but there are %d rows; one color per row is required", len(cfg.fill), len(data)),
		}
	}

	table := make([]Row, 0, len(data))
	for i, raw := range data {
		row, err := transformRow(raw, rowFill(cfg.fill, i))
		if err != nil {
			return err
		}
		table = append(table, row)
	}
	t.objects = append(t.objects, &SlideObject{Name: objName, Table: table})
	return nil
}

// AddChart adds a chart for the stacked, 100%, clustered, area, line,
// combination and Mekko chart types. categories become the header row; each
// data row must carry its own label in element 0, so its length must be
// len(categories)+1. A blank row is inserted below the header unless disabled
// with WithFirstRowBlank(false).
func (t *Template) AddChart(name interface{}, categories []interface{}, data [][]interface{}, opts ...ObjectOption) error {
	cfg := newObjectConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	objName := t.coerceName(name)
	for _, raw := range data {
		if len(raw) != len(categories)+1 {
			return &InvalidShapeError{
				Object: objName,
				Reason: fmt.Sprintf("data row %v has %d elements but should have %d (categories + the row label)", raw, len(raw), len(categories)+1),
			}
		}
	}
	if cfg.fill != nil && len(cfg.fill) != len(data) {
		return &InvalidShapeError{
			Object: objName,
			Reason: fmt.Sprintf("fill has %d colors but there are %d data rows; one color per row is required", len(cfg.fill), len(data)),
		}
	}

	header := make(Row, 0, len(categories)+1)
	header = append(header, nil)
	for _, cat := range categories {
		cell, err := TransformValue(cat, "")
		if err != nil {
			return err
		}
		header = append(header, cell)
	}

	table := make([]Row, 0, len(data)+2)
	table = append(table, header)
	if cfg.firstRowBlank {
		// Reserved for the 100% reference value in stacked charts.
		table = append(table, Row{})
	}
	for i, raw := range data {
		row, err := transformRow(raw, rowFill(cfg.fill, i))
		if err != nil {
			return err
		}
		table = append(table, row)
	}
	t.objects = append(t.objects, &SlideObject{Name: objName, Table: table})
	return nil
}

// AddPieChart adds a pie/doughnut chart. Every data row must be a
// [label, value] pair. The table always starts with exactly one blank row;
// that slot is structurally required by think-cell for this chart type, so
// WithFirstRowBlank has no effect here. With a single row and a value greater
// than zero this can also stand in for Harvey balls.
func (t *Template) AddPieChart(name interface{}, data [][]interface{}, opts ...ObjectOption) error {
	cfg := newObjectConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	objName := t.coerceName(name)
	for _, raw := range data {
		if len(raw) != 2 {
			return &InvalidShapeError{
				Object: objName,
				Reason: fmt.Sprintf("pie/doughnut row %v should contain exactly two elements, one label and one value", raw),
			}
		}
	}
	if cfg.fill != nil && len(cfg.fill) != len(data) {
		return &InvalidShapeError{
			Object: objName,
			Reason: fmt.Sprintf("fill has %d colors but there are %d data rows; one color per row is required", len(cfg.fill), len(data)),
		}
	}

	table := make([]Row, 0, len(data)+1)
	table = append(table, Row{})
	for i, raw := range data {
		row, err := transformRow(raw, rowFill(cfg.fill, i))
		if err != nil {
			return err
		}
		table = append(table, row)
	}
	t.objects = append(t.objects, &SlideObject{Name: objName, Table: table})
	return nil
}

// Serialize returns the document form of the template. No validation happens
// here; errors are raised when each object is added.
func (t *Template) Serialize() Document {
	return Document{Template: t.path, Data: t.objects}
}

func rowFill(fill []string, i int) string {
	if fill == nil || i >= len(fill) {
		return ""
	}
	return fill[i]
}
