package domain

// ObjectRequest describes one slide object in a build request. Type selects
// which fields apply: "text" uses Text; "table" and "pie" use Data (+ Fill);
// "chart" uses Categories and Data (+ Fill, FirstRowBlank); "frame_chart"
// uses Columns and Data, where the first column holds the row labels.
type ObjectRequest struct {
	Name          string          `json:"name"`
	Type          string          `json:"type"`
	Text          string          `json:"text,omitempty"`
	Categories    []interface{}   `json:"categories,omitempty"`
	Columns       []string        `json:"columns,omitempty"`
	Data          [][]interface{} `json:"data,omitempty"`
	Fill          []string        `json:"fill,omitempty"`
	FirstRowBlank *bool           `json:"first_row_blank,omitempty"`
}

// SlideRequest binds a template path to the objects to populate in it.
type SlideRequest struct {
	Template string          `json:"template"`
	Objects  []ObjectRequest `json:"objects"`
}

// PresentationRequest is the body of POST /presentations.
type PresentationRequest struct {
	Slides []SlideRequest `json:"slides"`
}

// QueryChartRequest is the body of POST /presentations/from-query. The query
// must select the label column first; the remaining selected columns become
// chart categories.
type QueryChartRequest struct {
	Template string   `json:"template"`
	Name     string   `json:"name"`
	Query    string   `json:"query"`
	Fill     []string `json:"fill,omitempty"`
}
