package schema

import (
	"errors"
	"fmt"
)

// ErrUnknownFormat is returned when a format value or file extension does not
// name a supported encoding.
var ErrUnknownFormat = errors.New("unknown schema format")

// DecodeError wraps whatever went wrong while turning a document into a
// RuleSet. Index and Field identify the offending rule; Index is -1 when the
// document itself failed to parse.
type DecodeError struct {
	Index int
	Field string
	Err   error
}

func (e *DecodeError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("decode rules document: %v", e.Err)
	}
	if e.Field == "" {
		return fmt.Sprintf("decode rule %d: %v", e.Index, e.Err)
	}
	return fmt.Sprintf("decode rule %d (%s): %v", e.Index, e.Field, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
