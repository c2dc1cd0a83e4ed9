package csstree

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// contextWidth is the maximum number of bytes of the offending line shown in an error context.
const contextWidth = 60

// Position returns the line and column number for a certain position in a file. It is useful for recovering the position in a file that caused an error.
// It only treats \n, \r, and \r\n as newlines. Offsets outside of src point to the end of src.
func Position(src []byte, offset int) (line, col int, context string) {
	if offset < 0 || len(src) < offset {
		offset = len(src)
	}

	line = 1
	start := 0
	for i := 0; i < offset; i++ {
		if c := src[i]; c == '\n' || c == '\r' && (i+1 == len(src) || src[i+1] != '\n') {
			line++
			start = i + 1
		}
	}
	col = offset - start + 1
	context = positionContext(src, line, start, offset)
	return
}

func positionContext(src []byte, line, start, offset int) string {
	end := offset
	for end < len(src) && src[end] != '\n' && src[end] != '\r' {
		end++
	}

	b := src[start:end]
	pos := offset - start
	left, right := 0, len(b)
	if contextWidth < len(b) {
		left = pos - contextWidth/2
		if left < 0 {
			left = 0
		}
		right = left + contextWidth
		if len(b) < right {
			right = len(b)
			left = right - contextWidth
		}
		for 0 < left && !utf8.RuneStart(b[left]) {
			left--
		}
		for right < len(b) && !utf8.RuneStart(b[right]) {
			right++
		}
	}

	prefix, suffix := "", ""
	if 0 < left {
		prefix = "..."
	}
	if right < len(b) {
		suffix = "..."
	}
	text := prefix + string(b[left:right]) + suffix
	width := uniseg.StringWidth(prefix + string(b[left:pos]))

	context := fmt.Sprintf("%5d: %s\n", line, text)
	context += fmt.Sprintf("%s^", strings.Repeat(" ", width+7))
	return context
}
