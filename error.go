package csstree

import (
	"errors"
	"fmt"
)

// Error kinds, to be matched with errors.Is.
var (
	// ErrUnclosed is returned for strings, comments and brackets that reach the end of input in strict mode.
	ErrUnclosed = errors.New("unclosed construct")
	// ErrStructure is returned for malformed block structure, which is never recovered.
	ErrStructure = errors.New("structural error")
)

// Error is a lexing or parsing error. It contains a message, the offending byte range and the position at which the error occurred.
type Error struct {
	Kind     error
	Message  string
	Start    int
	End      int
	Filename string
	Line     int
	Column   int
	Context  string
}

// NewError creates a new error for the range [start, end) of src.
func NewError(kind error, msg string, src []byte, start, end int) *Error {
	line, column, context := Position(src, start)
	return &Error{
		Kind:    kind,
		Message: msg,
		Start:   start,
		End:     end,
		Line:    line,
		Column:  column,
		Context: context,
	}
}

// Span returns the byte range of the error.
func (e *Error) Span() Span {
	return Span{e.Start, e.End}
}

// Position returns the line, column, and context of the error.
// Context is the entire line at which the error occurred.
func (e *Error) Position() (int, int, string) {
	return e.Line, e.Column, e.Context
}

// Error returns the error string, containing the context and line + column number.
func (e *Error) Error() string {
	if e.Filename != "" {
		return fmt.Sprintf("%s in %s on line %d and column %d\n%s", e.Message, e.Filename, e.Line, e.Column, e.Context)
	}
	return fmt.Sprintf("%s on line %d and column %d\n%s", e.Message, e.Line, e.Column, e.Context)
}

func (e *Error) Unwrap() error {
	return e.Kind
}
