package ingest

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyResult indicates an ingestion attempt produced zero usable
// question records. Fatal to the attempt; no session should be created
// and any prior session must be left untouched.
var ErrEmptyResult = errors.New("ingestion produced no usable questions")

// FormatError indicates a CSV source is missing required columns.
type FormatError struct {
	Missing []string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("CSV is missing required columns: %s", strings.Join(e.Missing, ", "))
}

// LineWarning reports a single generated-text line that did not parse.
// Warnings are non-fatal; the line is dropped and processing continues.
type LineWarning struct {
	// LineNo is the 1-based line number in the source text.
	LineNo int

	// Line is the raw offending line.
	Line string
}

func (w LineWarning) String() string {
	return fmt.Sprintf("skipping malformed line %d: %s", w.LineNo, w.Line)
}
