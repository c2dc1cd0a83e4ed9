package transform

import (
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/mazznoer/csscolorparser"

	"github.com/tdewolff/csstree"
	"github.com/tdewolff/csstree/css"
)

// shortNames holds the color keywords that are shorter than their hexadecimal notation.
var shortNames = map[string]string{
	"#f0ffff": "azure",
	"#f5f5dc": "beige",
	"#ffe4c4": "bisque",
	"#a52a2a": "brown",
	"#ff7f50": "coral",
	"#ffd700": "gold",
	"#808080": "gray",
	"#008000": "green",
	"#4b0082": "indigo",
	"#fffff0": "ivory",
	"#f0e68c": "khaki",
	"#faf0e6": "linen",
	"#800000": "maroon",
	"#000080": "navy",
	"#808000": "olive",
	"#ffa500": "orange",
	"#da70d6": "orchid",
	"#cd853f": "peru",
	"#ffc0cb": "pink",
	"#dda0dd": "plum",
	"#800080": "purple",
	"#ff0000": "red",
	"#fa8072": "salmon",
	"#a0522d": "sienna",
	"#c0c0c0": "silver",
	"#fffafa": "snow",
	"#d2b48c": "tan",
	"#008080": "teal",
	"#ff6347": "tomato",
	"#ee82ee": "violet",
	"#f5deb3": "wheat",
}

// keywordProps hold values where a color keyword is a name, such as a font family.
var keywordProps = map[string]bool{
	"font":              true,
	"font-family":       true,
	"animation":         true,
	"animation-name":    true,
	"grid-area":         true,
	"grid-template":     true,
	"counter-reset":     true,
	"counter-increment": true,
	"list-style":        true,
	"list-style-type":   true,
	"will-change":       true,
	"transition":        true,
}

// ShortColors rewrites opaque colors in declaration values to their shortest notation: #rgb, #rrggbb or a keyword.
// Colors with transparency, custom properties and properties that take identifiers are left alone.
type ShortColors struct {
	css.BaseMutVisitor
}

func (ShortColors) VisitDeclaration(d *css.Declaration) {
	if strings.HasPrefix(d.Prop, "--") || keywordProps[csstree.ToLower(d.Prop)] {
		return
	}

	tokens, err := css.Tokenize([]byte(d.Value), true)
	if err != nil {
		return
	}
	sb := strings.Builder{}
	for i := 0; i < len(tokens); i++ {
		t := tokens[i]
		data := string(t.Data)
		if t.TokenType == css.WordToken {
			if i+1 < len(tokens) && tokens[i+1].TokenType == css.BracketsToken {
				if isColorFunction(data) {
					if short, ok := shortColor(data + string(tokens[i+1].Data)); ok {
						sb.WriteString(short)
						i++
						continue
					}
				}
			} else {
				data = rewriteList(data, func(word string) string {
					if isColorWord(word) {
						if short, ok := shortColor(word); ok {
							return short
						}
					}
					return word
				})
			}
		}
		sb.WriteString(data)
	}
	d.Value = sb.String()
}

func isColorFunction(name string) bool {
	switch csstree.ToLower(name) {
	case "rgb", "rgba", "hsl", "hsla", "hwb":
		return true
	}
	return false
}

// isColorWord returns true for hash colors and words that could be color keywords. Bare hexadecimal words such as `face` are not colors.
func isColorWord(word string) bool {
	if len(word) < 2 {
		return false
	} else if word[0] == '#' {
		return true
	}
	hex := true
	for i := 0; i < len(word); i++ {
		c := word[i]
		if !('a' <= c && c <= 'z' || 'A' <= c && c <= 'Z') {
			return false
		} else if !('a' <= c && c <= 'f' || 'A' <= c && c <= 'F') {
			hex = false
		}
	}
	return !hex
}

// shortColor returns the shortest notation of an opaque color, if it is not longer than s.
func shortColor(s string) (string, bool) {
	c, err := csscolorparser.Parse(s)
	if err != nil || c.A < 1 {
		return "", false
	}
	r, g, b, _ := c.RGBA255()
	hex := colorful.Color{R: float64(r) / 255.0, G: float64(g) / 255.0, B: float64(b) / 255.0}.Hex()

	short := hex
	if hex[1] == hex[2] && hex[3] == hex[4] && hex[5] == hex[6] {
		short = string([]byte{'#', hex[1], hex[3], hex[5]})
	}
	if name, ok := shortNames[hex]; ok && len(name) < len(short) {
		short = name
	}
	if len(short) < len(s) || len(short) == len(s) && strings.EqualFold(short, s) {
		return short, true
	}
	return "", false
}
