package thinkcell

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeFrame struct {
	cols []string
	rows [][]interface{}
}

func (f *fakeFrame) Columns() []string     { return f.cols }
func (f *fakeFrame) Rows() [][]interface{} { return f.rows }

func assertFrameError(t *testing.T, err error) {
	t.Helper()
	var frameErr *DataFrameError
	assert.True(t, errors.As(err, &frameErr), "expected DataFrameError, got %v", err)
}

func TestAddChartFromFrame(t *testing.T) {
	frame := &fakeFrame{
		cols: []string{"Company", "2020", "2021"},
		rows: [][]interface{}{
			{"Acme", 10, 12},
			{"Initech", 7, 9},
		},
	}

	tmpl := NewTemplate("example.pptx")
	err := tmpl.AddChartFromFrame("Growth", frame)
	assert.NoError(t, err)

	want := `{
		"template": "example.pptx",
		"data": [
			{
				"name": "Growth",
				"table": [
					[null, {"string": "2020"}, {"string": "2021"}],
					[],
					[{"string": "Acme"}, {"number": 10}, {"number": 12}],
					[{"string": "Initech"}, {"number": 7}, {"number": 9}]
				]
			}
		]
	}`
	assert.JSONEq(t, want, serializeJSON(t, tmpl))
}

func TestAddChartFromFrameErrors(t *testing.T) {
	tmpl := NewTemplate("example.pptx")

	t.Run("nil frame", func(t *testing.T) {
		assertFrameError(t, tmpl.AddChartFromFrame("Growth", nil))
	})

	t.Run("invalid frame", func(t *testing.T) {
		assertFrameError(t, tmpl.AddChartFromFrame("Growth", &fakeFrame{}))
	})

	t.Run("no categories", func(t *testing.T) {
		frame := &fakeFrame{cols: []string{"Company"}, rows: [][]interface{}{{"Acme"}}}
		assertFrameError(t, tmpl.AddChartFromFrame("Growth", frame))
	})

	t.Run("no rows", func(t *testing.T) {
		frame := &fakeFrame{cols: []string{"Company", "2020"}, rows: [][]interface{}{}}
		assertFrameError(t, tmpl.AddChartFromFrame("Growth", frame))
	})

	assert.Empty(t, tmpl.Objects())
}

func TestAddScatterFromFrame(t *testing.T) {
	frame := &fakeFrame{
		cols: []string{"city", "income", "age", "population"},
		rows: [][]interface{}{
			{"Lisbon", 1200, 41, 500000},
			{"Porto", 1100, 43, 220000},
		},
	}

	tmpl := NewTemplate("example.pptx")
	err := tmpl.AddScatterFromFrame("Cities", frame, "income", "age",
		WithLabelColumn("city"),
		WithSizeColumn("population"),
	)
	assert.NoError(t, err)

	// No blank row after the header; the group slot is synthesized as an
	// empty column headed "None".
	want := `{
		"template": "example.pptx",
		"data": [
			{
				"name": "Cities",
				"table": [
					[null, {"string": "income"}, {"string": "age"}, {"string": "population"}, {"string": "None"}],
					[{"string": "Lisbon"}, {"number": 1200}, {"number": 41}, {"number": 500000}, {"string": ""}],
					[{"string": "Porto"}, {"number": 1100}, {"number": 43}, {"number": 220000}, {"string": ""}]
				]
			}
		]
	}`
	assert.JSONEq(t, want, serializeJSON(t, tmpl))
}

func TestAddScatterFromFrameUnknownColumn(t *testing.T) {
	frame := &fakeFrame{
		cols: []string{"city", "income"},
		rows: [][]interface{}{{"Lisbon", 1200}},
	}

	tmpl := NewTemplate("example.pptx")
	assertFrameError(t, tmpl.AddScatterFromFrame("Cities", frame, "income", "age"))
	assert.Empty(t, tmpl.Objects())
}

func TestAddScatterFromFrameNoLabel(t *testing.T) {
	frame := &fakeFrame{
		cols: []string{"income", "age"},
		rows: [][]interface{}{{1200, 41}},
	}

	tmpl := NewTemplate("example.pptx")
	err := tmpl.AddScatterFromFrame("Cities", frame, "income", "age")
	assert.NoError(t, err)

	want := `{
		"template": "example.pptx",
		"data": [
			{
				"name": "Cities",
				"table": [
					[null, {"string": "income"}, {"string": "age"}, {"string": "None"}, {"string": "None"}],
					[{"string": ""}, {"number": 1200}, {"number": 41}, {"string": ""}, {"string": ""}]
				]
			}
		]
	}`
	assert.JSONEq(t, want, serializeJSON(t, tmpl))
}
