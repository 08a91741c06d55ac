package vlsp

import (
	"fmt"

	"github.com/pkg/errors"
)

// entry level error kinds
var (
	ErrMissingCategory     = errors.New("syntactic block has no category")
	ErrMissingHeadword     = errors.New("missing headword")
	ErrMissingPartOfSpeech = errors.New("missing part of speech")
	ErrMissingDefinition   = errors.New("missing definition")
	ErrMalformedDefinition = errors.New("malformed definition")
)

// EntryError is returned when a single entry can not be converted.
// The whole document is rejected in that case.
type EntryError struct {
	// Index is zero-based position of the entry in the document
	Index int
	// Line of the entry start tag
	Line int
	// Headword is empty if the failure happened before it was read
	Headword string
	Err      error
}

func (e *EntryError) Error() string {
	if e.Headword != "" {
		return fmt.Sprintf("entry #%d %q (line %d): %v", e.Index, e.Headword, e.Line, e.Err)
	}
	return fmt.Sprintf("entry #%d (line %d): %v", e.Index, e.Line, e.Err)
}

func (e *EntryError) Unwrap() error {
	return e.Err
}
