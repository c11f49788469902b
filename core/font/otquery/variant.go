package otquery

import (
	"fmt"

	"github.com/jassielof/typst/core/font/ot"
	xfont "golang.org/x/image/font"
)

// Variant classifies a font along the three discrete CSS font-matching
// properties: style, weight and stretch. For variable fonts the variant
// describes the default design-space position.
type Variant struct {
	Style   xfont.Style
	Weight  xfont.Weight
	Stretch xfont.Stretch
}

// VariantDefault is the normal font variant: upright, regular weight,
// normal stretch.
var VariantDefault = Variant{
	Style:   xfont.StyleNormal,
	Weight:  xfont.WeightNormal,
	Stretch: xfont.StretchNormal,
}

func (v Variant) String() string {
	return fmt.Sprintf("(style=%d weight=%d stretch=%d)", v.Style, v.Weight, v.Stretch)
}

// VariantOf classifies a font from its OS/2 table, falling back to the
// macStyle flags of the 'head' table for fonts without one.
func VariantOf(otf *ot.Font) Variant {
	v := VariantDefault
	if table := otf.Table(ot.T("OS/2")); table != nil {
		os2 := table.Self().AsOS2()
		v.Weight = weightFromClass(int(os2.WeightClass))
		v.Stretch = stretchFromClass(int(os2.WidthClass))
		// fsSelection: bit 0 = italic, bit 9 = oblique
		if os2.Selection&0x0200 != 0 {
			v.Style = xfont.StyleOblique
		} else if os2.Selection&0x0001 != 0 {
			v.Style = xfont.StyleItalic
		}
		return v
	}
	tracer().Debugf("font has no OS/2 table, classifying from head.macStyle")
	if table := otf.Table(ot.T("head")); table != nil {
		head := table.Self().AsHead()
		if head.MacStyle&0x01 != 0 {
			v.Weight = xfont.WeightBold
		}
		if head.MacStyle&0x02 != 0 {
			v.Style = xfont.StyleItalic
		}
	}
	return v
}

// weightFromClass maps an OS/2 usWeightClass (1–1000, CSS-like scale) onto
// the xfont.Weight scale, which centers WeightNormal at 0.
func weightFromClass(class int) xfont.Weight {
	if class < 1 {
		return xfont.WeightNormal
	}
	// round to the nearest of the nine CSS weight classes 100…900
	w := (class + 50) / 100
	if w < 1 {
		w = 1
	} else if w > 9 {
		w = 9
	}
	return xfont.Weight(w - 4) // 400 → WeightNormal (0)
}

// stretchFromClass maps an OS/2 usWidthClass (1–9) onto the xfont.Stretch
// scale, which centers StretchNormal at 0.
func stretchFromClass(class int) xfont.Stretch {
	if class < 1 || class > 9 {
		return xfont.StretchNormal
	}
	return xfont.Stretch(class - 5) // 5 → StretchNormal (0)
}
