package csstree

import (
	"errors"
	"testing"

	"github.com/tdewolff/test"
)

func TestError(t *testing.T) {
	err := NewError(ErrStructure, "message", []byte("buffer"), 3, 4)

	line, column, context := err.Position()
	test.T(t, line, 1, "line")
	test.T(t, column, 4, "column")
	test.T(t, "\n"+context, "\n    1: buffer\n          ^", "context")
	test.T(t, err.Span(), Span{3, 4}, "span")

	test.T(t, err.Error(), "message on line 1 and column 4\n    1: buffer\n          ^", "error")

	err.Filename = "style.css"
	test.T(t, err.Error(), "message in style.css on line 1 and column 4\n    1: buffer\n          ^", "error with filename")
}

func TestErrorKind(t *testing.T) {
	var err error = NewError(ErrUnclosed, "unclosed string", []byte("a \"b"), 2, 4)
	test.That(t, errors.Is(err, ErrUnclosed), "must match kind")
	test.That(t, !errors.Is(err, ErrStructure), "must not match other kind")

	var perr *Error
	test.That(t, errors.As(err, &perr), "must be *Error")
	test.T(t, perr.Message, "unclosed string")
}
