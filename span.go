// Package csstree contains the shared types of the CSS parser in its subpackages: byte spans, errors with source context, and line/column lookup.
package csstree // import "github.com/tdewolff/csstree"

import "strconv"

// Span is a half-open byte range [Start, End) into a source buffer.
type Span struct {
	Start, End int
}

// Len returns the number of bytes covered.
func (s Span) Len() int {
	return s.End - s.Start
}

// Empty returns true for zero-width spans.
func (s Span) Empty() bool {
	return s.End <= s.Start
}

// Contains returns true if offset lies in [Start, End).
func (s Span) Contains(offset int) bool {
	return s.Start <= offset && offset < s.End
}

// Cover returns the smallest span containing both s and t.
func (s Span) Cover(t Span) Span {
	if t.Start < s.Start {
		s.Start = t.Start
	}
	if s.End < t.End {
		s.End = t.End
	}
	return s
}

// Text returns the substring of src covered by the span, clamped to the bounds of src.
func (s Span) Text(src string) string {
	start, end := s.Start, s.End
	if end > len(src) {
		end = len(src)
	}
	if start < 0 {
		start = 0
	} else if start > end {
		start = end
	}
	return src[start:end]
}

func (s Span) String() string {
	return strconv.Itoa(s.Start) + ".." + strconv.Itoa(s.End)
}
