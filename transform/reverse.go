package transform

import (
	"github.com/tdewolff/csstree/css"
)

// ReverseProp reverses the characters of every property name. Custom properties and names that would no longer lex as a single word are kept.
type ReverseProp struct {
	css.BaseMutVisitor
}

func (ReverseProp) VisitDeclaration(d *css.Declaration) {
	if len(d.Prop) < 2 || d.Prop[0] == '-' && d.Prop[1] == '-' || !css.IsWord(d.Prop) {
		return
	}
	prop := []rune(d.Prop)
	for i, j := 0, len(prop)-1; i < j; i, j = i+1, j-1 {
		prop[i], prop[j] = prop[j], prop[i]
	}
	if reversed := string(prop); css.IsWord(reversed) {
		d.Prop = reversed
	}
}
