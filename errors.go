package pdfpage

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the failure classes the commands distinguish.
// Underlying causes are wrapped with additional context where available.
var (
	// ErrNotFound means the input file does not exist.
	ErrNotFound = errors.New("file not found")

	// ErrNotRegularFile means the input path exists but is not a regular file.
	ErrNotRegularFile = errors.New("not a regular file")

	// ErrEngineUnavailable means the selected engine's backend is not present
	// in this build or environment.
	ErrEngineUnavailable = errors.New("extraction engine unavailable")

	// ErrExtraction wraps decode or recognition failures from an underlying
	// engine.
	ErrExtraction = errors.New("text extraction failed")
)

// PageOutOfRangeError reports a requested page outside the document bounds.
// The message carries both the requested page and the valid range.
type PageOutOfRangeError struct {
	Page  int
	Total int
}

func (e *PageOutOfRangeError) Error() string {
	return fmt.Sprintf("page %d out of range (1-%d)", e.Page, e.Total)
}

// UnknownEngineError reports an engine selector that is not one of the
// known engine names.
type UnknownEngineError struct {
	Name string
}

func (e *UnknownEngineError) Error() string {
	return fmt.Sprintf("unknown extraction engine %q (valid: %s)", e.Name, strings.Join(EngineNames(), ", "))
}
