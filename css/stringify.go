package css

import (
	"io"
	"strconv"
	"strings"
)

// Boundary marks chunks that open or close a block.
type Boundary uint8

// Boundary values.
const (
	NoBoundary    Boundary = iota
	StartBoundary          // chunk ending in {
	EndBoundary            // chunk }
)

// String returns the string representation of a Boundary.
func (b Boundary) String() string {
	switch b {
	case NoBoundary:
		return "None"
	case StartBoundary:
		return "Start"
	case EndBoundary:
		return "End"
	}
	return "Invalid(" + strconv.Itoa(int(b)) + ")"
}

// Sink receives the output of Stringify in document order. Node is nil for trivia between nodes.
type Sink func(chunk string, n Node, b Boundary)

// Stringify emits the text of a node and its children to sink. An unmodified tree reproduces its source exactly.
// Each node emits one chunk when it starts, blocks also emit their closing } with EndBoundary. Empty trivia chunks are skipped.
func Stringify(n Node, sink Sink) {
	switch n := n.(type) {
	case *Root:
		stringifyBody(n.Nodes, sink)
		if n.Raws.After != "" {
			sink(n.Raws.After, nil, NoBoundary)
		}
	case *Rule:
		sink(n.Selector+n.Raws.Between+"{", n, StartBoundary)
		stringifyBody(n.Nodes, sink)
		if n.Raws.After != "" {
			sink(n.Raws.After, nil, NoBoundary)
		}
		sink("}", n, EndBoundary)
	case *AtRule:
		head := "@" + n.Name + n.Raws.AfterName + n.Params + n.Raws.Between
		if n.HasBlock() {
			sink(head+"{", n, StartBoundary)
			stringifyBody(n.Nodes, sink)
			if n.Raws.After != "" {
				sink(n.Raws.After, nil, NoBoundary)
			}
			sink("}", n, EndBoundary)
		} else {
			if 0 <= n.Semicolon {
				head += ";"
			}
			sink(head, n, NoBoundary)
		}
	case *Declaration:
		sb := strings.Builder{}
		sb.WriteString(n.Prop)
		sb.WriteString(n.Raws.Between)
		sb.WriteString(n.Value)
		if n.Important {
			if n.Raws.Important != "" {
				sb.WriteString(n.Raws.Important)
			} else {
				sb.WriteString(" !important")
			}
		}
		sb.WriteString(n.Raws.Semicolon)
		sink(sb.String(), n, NoBoundary)
	case *Comment:
		sink(n.Text, n, NoBoundary)
	}
}

func stringifyBody(nodes []Node, sink Sink) {
	for _, n := range nodes {
		if b := before(n); b != "" {
			sink(b, nil, NoBoundary)
		}
		Stringify(n, sink)
	}
}

// String returns the text of a node.
func String(n Node) string {
	sb := strings.Builder{}
	Stringify(n, func(chunk string, _ Node, _ Boundary) {
		sb.WriteString(chunk)
	})
	return sb.String()
}

// WriteTo writes the stylesheet to w.
func (n *Root) WriteTo(w io.Writer) (int64, error) {
	var size int64
	var err error
	Stringify(n, func(chunk string, _ Node, _ Boundary) {
		if err != nil {
			return
		}
		var m int
		m, err = io.WriteString(w, chunk)
		size += int64(m)
	})
	return size, err
}
