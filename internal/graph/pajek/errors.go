// Film Gourmet - Graph-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmgourmet

package pajek

import (
	"errors"
	"fmt"
)

// ErrFormat matches every *FormatError via errors.Is.
var ErrFormat = errors.New("pajek: malformed graph source")

// Reasons reported by FormatError.
const (
	ReasonEmptySource    = "empty source"
	ReasonBadNodeLine    = "unparsable node line"
	ReasonDuplicateNode  = "duplicate node index"
	ReasonMissingNode    = "node indices not contiguous"
	ReasonUnknownSection = "unknown link-section type"
	ReasonMissingSection = "missing link section"
	ReasonBadEdgeLine    = "unparsable edge line"
	ReasonEdgeOutOfRange = "edge endpoint out of range"
)

// FormatError describes the first violation found in a graph source.
type FormatError struct {
	// Line is the 1-based line number, or 0 when the source had no lines.
	Line int

	// Reason is one of the Reason* constants.
	Reason string

	// Text is the offending line or a short detail.
	Text string
}

func newFormatError(line int, reason, text string) *FormatError {
	return &FormatError{Line: line, Reason: reason, Text: text}
}

// Error implements error.
func (e *FormatError) Error() string {
	if e.Text == "" {
		return fmt.Sprintf("pajek: line %d: %s", e.Line, e.Reason)
	}
	return fmt.Sprintf("pajek: line %d: %s: %q", e.Line, e.Reason, e.Text)
}

// Is makes errors.Is(err, ErrFormat) true for any FormatError.
func (e *FormatError) Is(target error) bool {
	return target == ErrFormat
}
