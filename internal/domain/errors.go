package domain

import (
	"errors"
	"fmt"
)

// Error markers. Every fatal condition of a run matches exactly one of these
// with errors.Is.
var (
	ErrUsage          = errors.New("usage error")
	ErrMalformedInput = errors.New("malformed input")
	ErrNetwork        = errors.New("network error")
	ErrMalformedNote  = errors.New("malformed release note")
	ErrIO             = errors.New("i/o error")
)

// Other domain errors.
var (
	ErrSummaryExists  = errors.New("summary file already exists")
	ErrNotGitRepo     = errors.New("not a git repository")
	ErrEmptyReportDoc = errors.New("document has no root element")
)

// MalformedInputError reports a required field that is absent or unusable in
// the summary or a tracker export.
type MalformedInputError struct {
	Field  string // Tag or attribute that was expected
	Parent string // Tag of the element that should have contained it
	Detail string // Optional extra description
}

func (e *MalformedInputError) Error() string {
	msg := fmt.Sprintf("could not find child element '%s' in parent element '%s'", e.Field, e.Parent)
	if e.Detail != "" {
		msg = fmt.Sprintf("bad value for '%s' in parent element '%s': %s", e.Field, e.Parent, e.Detail)
	}
	return msg
}

// Is matches ErrMalformedInput.
func (e *MalformedInputError) Is(target error) bool {
	return target == ErrMalformedInput
}

// NoteError reports a failure to obtain or interpret the detailed release
// note of one issue.
// Fields are ordered to minimize memory padding.
type NoteError struct {
	Kind error  // ErrNetwork or ErrMalformedNote
	Err  error  // Underlying cause
	Key  string // Issue key
	Hint string // Operator hint, set for host resolution failures
}

func (e *NoteError) Error() string {
	verb := "unable to read or parse release note"
	if e.Kind == ErrMalformedNote {
		verb = "badly formatted release note"
	}
	msg := fmt.Sprintf("%s for %s", verb, e.Key)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	if e.Hint != "" {
		msg += " (" + e.Hint + ")"
	}
	return msg
}

// Is matches the error's kind marker.
func (e *NoteError) Is(target error) bool {
	return e.Kind != nil && target == e.Kind
}

func (e *NoteError) Unwrap() error {
	return e.Err
}
