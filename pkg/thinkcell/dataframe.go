package thinkcell

import "fmt"

// DataFrame is the tabular collaborator charts can be built from. Column
// order is significant: the first column holds the per-row labels, the rest
// become chart categories. pkg/tabular provides implementations backed by
// in-memory data, xlsx sheets, CSV and database/sql result sets.
type DataFrame interface {
	Columns() []string
	Rows() [][]interface{}
}

// sliceFrame is the minimal in-package DataFrame, used for the scatter
// re-projection.
type sliceFrame struct {
	cols []string
	rows [][]interface{}
}

func (f *sliceFrame) Columns() []string     { return f.cols }
func (f *sliceFrame) Rows() [][]interface{} { return f.rows }

// AddChartFromFrame adds a chart whose categories and data come from a frame:
// the first column supplies the row labels, the remaining column names become
// the categories. A nil frame, a frame without columns or rows, or one with
// no category columns fails with a *DataFrameError.
func (t *Template) AddChartFromFrame(name interface{}, frame DataFrame, opts ...ObjectOption) error {
	if frame == nil {
		return &DataFrameError{Reason: "no dataframe provided"}
	}
	cols := frame.Columns()
	rows := frame.Rows()
	if cols == nil || rows == nil {
		return &DataFrameError{Reason: "the value passed is not a valid dataframe"}
	}
	if len(cols) < 2 || len(rows) == 0 {
		return &DataFrameError{Reason: "the dataframe passed does not contain data"}
	}

	categories := make([]interface{}, 0, len(cols)-1)
	for _, c := range cols[1:] {
		categories = append(categories, c)
	}
	return t.AddChart(name, categories, rows, opts...)
}

// AddScatterFromFrame adds a scatter plot from a frame. x and y name the
// columns for the two axes; label, size and group columns are optional and
// configured with ScatterOptions. The frame is re-projected onto the five
// logical columns [label, x, y, size, group]; any of label/size/group left
// unspecified is synthesized as an empty-string column whose header is the
// literal "None", which is what think-cell expects for an unused slot.
func (t *Template) AddScatterFromFrame(name interface{}, frame DataFrame, x, y string, opts ...ScatterOption) error {
	cfg := &scatterConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	if frame == nil {
		return &DataFrameError{Reason: "no dataframe provided"}
	}
	cols := frame.Columns()
	rows := frame.Rows()
	if cols == nil || rows == nil {
		return &DataFrameError{Reason: "the value passed is not a valid dataframe"}
	}

	projected, err := projectScatter(cols, rows, [5]string{cfg.label, x, y, cfg.size, cfg.group})
	if err != nil {
		return err
	}

	objOpts := []ObjectOption{WithFirstRowBlank(false)}
	if cfg.fill != nil {
		objOpts = append(objOpts, WithFill(cfg.fill))
	}
	return t.AddChartFromFrame(name, projected, objOpts...)
}

// projectScatter builds the 5-column scatter frame. An empty name in want
// selects the synthesized empty column.
func projectScatter(cols []string, rows [][]interface{}, want [5]string) (*sliceFrame, error) {
	index := make(map[string]int, len(cols))
	for i, c := range cols {
		index[c] = i
	}

	outCols := make([]string, 5)
	srcIdx := make([]int, 5) // -1 means synthesized empty column
	for i, name := range want[:] {
		if name == "" {
			outCols[i] = "None"
			srcIdx[i] = -1
			continue
		}
		j, ok := index[name]
		if !ok {
			return nil, &DataFrameError{Reason: fmt.Sprintf("column %q not found in dataframe", name)}
		}
		outCols[i] = name
		srcIdx[i] = j
	}

	outRows := make([][]interface{}, 0, len(rows))
	for _, row := range rows {
		out := make([]interface{}, 5)
		for i, j := range srcIdx {
			if j < 0 {
				out[i] = ""
				continue
			}
			if j >= len(row) {
				return nil, &DataFrameError{Reason: fmt.Sprintf("row %v is shorter than the dataframe's column list", row)}
			}
			out[i] = row[j]
		}
		outRows = append(outRows, out)
	}
	return &sliceFrame{cols: outCols, rows: outRows}, nil
}
