package transform

import (
	"math"
	"strconv"

	"github.com/tdewolff/csstree"
	"github.com/tdewolff/csstree/css"
)

// DefaultRootValue is the root font size in pixels.
const DefaultRootValue = 16.0

// PxToRem converts px lengths in declaration values to rem.
type PxToRem struct {
	css.BaseMutVisitor

	RootValue     float64 // root font size in pixels, DefaultRootValue if zero
	UnitPrecision int     // decimals of the rem value, 5 if zero
	MinPixelValue float64 // smaller absolute lengths are kept in px
}

// NewPxToRem returns a PxToRem for the given root font size.
func NewPxToRem(rootValue float64) *PxToRem {
	return &PxToRem{RootValue: rootValue}
}

func (p *PxToRem) VisitDeclaration(d *css.Declaration) {
	if d.Value == "" {
		return
	}
	d.Value = rewriteValue(d.Value, p.convert)
}

func (p *PxToRem) convert(word string) string {
	num, unit := csstree.Dimension(word)
	if num == 0 || unit != 2 || num+unit != len(word) || !csstree.EqualFold(word[num:], "px") {
		return word
	}
	px, err := strconv.ParseFloat(word[:num], 64)
	if err != nil || math.Abs(px) < p.MinPixelValue {
		return word
	}

	root := p.RootValue
	if root == 0 {
		root = DefaultRootValue
	}
	precision := p.UnitPrecision
	if precision == 0 {
		precision = 5
	}
	scale := math.Pow(10, float64(precision))
	rem := math.Round(px/root*scale) / scale
	if rem == 0 {
		return "0"
	}
	return strconv.FormatFloat(rem, 'f', -1, 64) + "rem"
}
