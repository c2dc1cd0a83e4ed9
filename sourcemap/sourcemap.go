// Package sourcemap builds Source Map v3 files from the output of css.Stringify.
package sourcemap // import "github.com/tdewolff/csstree/sourcemap"

import (
	"encoding/json"
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/tdewolff/csstree"
	"github.com/tdewolff/csstree/css"
)

// Map is a Source Map revision 3.
type Map struct {
	Version        int      `json:"version"`
	File           string   `json:"file,omitempty"`
	SourceRoot     string   `json:"sourceRoot,omitempty"`
	Sources        []string `json:"sources"`
	SourcesContent []string `json:"sourcesContent,omitempty"`
	Names          []string `json:"names"`
	Mappings       string   `json:"mappings"`
}

// JSON returns the map in its JSON encoding.
func (m *Map) JSON() ([]byte, error) {
	return json.Marshal(m)
}

// Segment maps a generated position to a source position. Lines are zero-based, columns count UTF-16 code units.
type Segment struct {
	GenLine, GenColumn int
	Source             int
	Line, Column       int
}

// Comment returns the comment that links a stylesheet to its source map.
func Comment(url string) string {
	return "/*# sourceMappingURL=" + url + " */"
}

////////////////////////////////////////////////////////////////

// Builder collects the generated output and its mappings. Its Add method is a css.Sink.
type Builder struct {
	file, sourceName, source string
	includeSource            bool
	index                    *csstree.LineIndex

	out      strings.Builder
	mappings []byte
	segments []Segment

	genLine, genColumn int
	prev               Segment // previous segment on the current line, for relative encoding
	lineHasSegment     bool
	lastR              bool // last output byte was \r
}

// NewBuilder returns a Builder for the output file generated from a single source with the given name and text.
func NewBuilder(file, sourceName, source string) *Builder {
	return &Builder{
		file:       file,
		sourceName: sourceName,
		source:     source,
		index:      csstree.NewLineIndex([]byte(source)),
	}
}

// IncludeSource embeds the source text in the map.
func (b *Builder) IncludeSource(include bool) {
	b.includeSource = include
}

// Add writes chunk to the output. A chunk with a node is mapped to the start of the node, or to its closing } for an EndBoundary.
func (b *Builder) Add(chunk string, n css.Node, boundary css.Boundary) {
	if n != nil && chunk != "" {
		offset := n.Range().Start
		if boundary == css.EndBoundary {
			switch n := n.(type) {
			case *css.Rule:
				offset = n.Close
			case *css.AtRule:
				offset = n.Close
			}
		}
		if 0 <= offset && offset <= len(b.source) {
			b.addSegment(offset)
		}
	}
	b.out.WriteString(chunk)
	b.advance(chunk)
}

func (b *Builder) addSegment(offset int) {
	line, _ := b.index.Position(offset)
	start := b.index.LineStart(line)
	seg := Segment{
		GenLine:   b.genLine,
		GenColumn: b.genColumn,
		Line:      line - 1,
		Column:    utf16Len(b.source[start:offset]),
	}

	if b.lineHasSegment {
		b.mappings = append(b.mappings, ',')
	}
	b.mappings = appendVLQ(b.mappings, seg.GenColumn-b.prev.GenColumn)
	b.mappings = appendVLQ(b.mappings, seg.Source-b.prev.Source)
	b.mappings = appendVLQ(b.mappings, seg.Line-b.prev.Line)
	b.mappings = appendVLQ(b.mappings, seg.Column-b.prev.Column)
	b.prev = seg
	b.lineHasSegment = true
	b.segments = append(b.segments, seg)
}

// advance moves the generated position past s. Newlines are \n, \r and \r\n.
func (b *Builder) advance(s string) {
	for i := 0; i < len(s); {
		c := s[i]
		if c == '\n' && b.lastR {
			b.lastR = false
			i++
			continue
		}
		b.lastR = c == '\r'
		if c == '\n' || c == '\r' {
			b.newline()
			i++
			continue
		}
		r, n := utf8.DecodeRuneInString(s[i:])
		b.genColumn += utf16.RuneLen(r) // invalid bytes decode to U+FFFD and count as one
		i += n
	}
}

func (b *Builder) newline() {
	b.mappings = append(b.mappings, ';')
	b.genLine++
	b.genColumn = 0
	b.prev.GenColumn = 0
	b.lineHasSegment = false
}

// String returns the generated output.
func (b *Builder) String() string {
	return b.out.String()
}

// Segments returns the mapped positions in the order they were added.
func (b *Builder) Segments() []Segment {
	return b.segments
}

// Map returns the source map of the output so far.
func (b *Builder) Map() *Map {
	m := &Map{
		Version:  3,
		File:     b.file,
		Sources:  []string{b.sourceName},
		Names:    []string{},
		Mappings: string(b.mappings),
	}
	if b.includeSource {
		m.SourcesContent = []string{b.source}
	}
	return m
}

func utf16Len(s string) int {
	n := 0
	for _, r := range s {
		n += utf16.RuneLen(r)
	}
	return n
}

////////////////////////////////////////////////////////////////

// Decode parses the mappings of a source map into absolute segments.
func Decode(mappings string) ([]Segment, error) {
	segments := []Segment{}
	prev := Segment{}
	line := 0
	for _, group := range strings.Split(mappings, ";") {
		prev.GenColumn = 0
		for _, field := range strings.Split(group, ",") {
			if field == "" {
				continue
			}
			var values [4]int
			for i := range values {
				v, n, err := readVLQ(field)
				if err != nil {
					return nil, err
				}
				values[i] = v
				field = field[n:]
			}
			if field != "" {
				// names index is not used for stylesheets
				if _, _, err := readVLQ(field); err != nil {
					return nil, err
				}
			}
			seg := Segment{
				GenLine:   line,
				GenColumn: prev.GenColumn + values[0],
				Source:    prev.Source + values[1],
				Line:      prev.Line + values[2],
				Column:    prev.Column + values[3],
			}
			segments = append(segments, seg)
			prev = seg
		}
		line++
	}
	return segments, nil
}
