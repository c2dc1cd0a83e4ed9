package csstree

import (
	"github.com/tidwall/btree"
)

type lineEntry struct {
	line  int
	start int
}

// LineIndex maps byte offsets to 1-based line and column numbers and back. Lines are terminated by \n, \r, or \r\n; the terminator belongs to the line it ends.
type LineIndex struct {
	size   int
	ends   btree.Map[int, lineEntry] // keyed by the offset of the last byte of the line (its terminator)
	starts []int
}

// NewLineIndex indexes the line starts of src.
func NewLineIndex(src []byte) *LineIndex {
	idx := &LineIndex{
		size:   len(src),
		starts: []int{0},
	}
	start := 0
	for i := 0; i < len(src); i++ {
		c := src[i]
		if c == '\r' && i+1 < len(src) && src[i+1] == '\n' {
			continue
		} else if c == '\n' || c == '\r' {
			idx.ends.Set(i, lineEntry{len(idx.starts), start})
			start = i + 1
			idx.starts = append(idx.starts, start)
		}
	}
	idx.ends.Set(len(src), lineEntry{len(idx.starts), start})
	return idx
}

// Lines returns the number of lines, which is at least one.
func (idx *LineIndex) Lines() int {
	return len(idx.starts)
}

// LineStart returns the offset at which the 1-based line starts, or -1 if no such line exists.
func (idx *LineIndex) LineStart(line int) int {
	if line < 1 || len(idx.starts) < line {
		return -1
	}
	return idx.starts[line-1]
}

// Position returns the 1-based line and byte column of offset. Offsets past the end are clamped.
func (idx *LineIndex) Position(offset int) (line, col int) {
	if offset < 0 {
		offset = 0
	} else if idx.size < offset {
		offset = idx.size
	}
	iter := idx.ends.Iter()
	if !iter.Seek(offset) {
		return 1, offset + 1
	}
	e := iter.Value()
	return e.line, offset - e.start + 1
}

// Offset returns the byte offset of the 1-based line and column, or -1 when out of range.
func (idx *LineIndex) Offset(line, col int) int {
	start := idx.LineStart(line)
	if start < 0 || col < 1 {
		return -1
	}
	end := idx.size
	if line < len(idx.starts) {
		end = idx.starts[line] - 1
	}
	if offset := start + col - 1; offset <= end {
		return offset
	}
	return -1
}
