package thinkcell

import (
	"errors"
	"fmt"
)

// ErrInvalidTemplate indicates a template path that is not a string ending in
// the .pptx extension.
var ErrInvalidTemplate = errors.New("invalid template path")

// ErrInvalidOutputPath indicates an output filename that does not end in .ppttc.
var ErrInvalidOutputPath = errors.New("output path must end in .ppttc")

// ErrNoSlides indicates an attempt to save a presentation with no slides.
var ErrNoSlides = errors.New("presentation has no slides")

// InvalidValueTypeError reports a raw cell value that is not a string, number
// or date.
type InvalidValueTypeError struct {
	Value interface{}
}

func (e *InvalidValueTypeError) Error() string {
	return fmt.Sprintf("%v of type %T is not acceptable as a cell value", e.Value, e.Value)
}

// InvalidShapeError reports a row/category/fill cardinality mismatch.
type InvalidShapeError struct {
	Object string // name of the slide object under construction
	Reason string
}

func (e *InvalidShapeError) Error() string {
	return fmt.Sprintf("invalid shape for %q: %s", e.Object, e.Reason)
}

// DataFrameError reports a malformed or empty tabular input. It is a distinct
// kind so callers can tell "no data" apart from bad values or bad shapes.
type DataFrameError struct {
	Reason string
}

func (e *DataFrameError) Error() string {
	return "dataframe error: " + e.Reason
}
