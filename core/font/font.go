/*
Package font handles loading of font resources.

A word on nomenclature: Go (golang) uses the terms "font" and "face" more or
less in an inverse manner to the rest of the typesetting world. We stick with
the typesetting tradition: a "scalable font" is one variant of a typeface,
e.g. "Helvetica regular", backed by a font file. Variable fonts blur this
picture somewhat, as a single file may carry a whole design space of variants
(see package ot for inspecting the variation axes of such fonts).

TODO: font collections (*.ttc), e.g., /System/Library/Fonts/Helvetica.ttc
*/
package font

import (
	"os"
	"sync"

	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"
)

// tracer writes to trace with key 'typst.fonts'
func tracer() tracing.Trace {
	return tracing.Select("typst.fonts")
}

// ScalableFont is an in-memory font resource, loaded from a font file.
// The font's binary data is kept around, as clients (e.g. package ot)
// interpret table data lazily from it.
type ScalableFont struct {
	Fontname string
	Filepath string     // file path, or "internal" for packaged fonts
	Binary   []byte     // raw data
	SFNT     *sfnt.Font // the font's container
}

// LoadOpenTypeFont loads an OpenType font (.ttf or .otf) from a file.
func LoadOpenTypeFont(fontfile string) (*ScalableFont, error) {
	bytez, err := os.ReadFile(fontfile)
	if err != nil {
		return nil, err
	}
	f, err := ParseOpenTypeFont(bytez)
	if err != nil {
		return nil, err
	}
	f.Filepath = fontfile
	return f, nil
}

// ParseOpenTypeFont interprets a byte slice as an OpenType font resource.
func ParseOpenTypeFont(fbytes []byte) (f *ScalableFont, err error) {
	f = &ScalableFont{Binary: fbytes}
	f.SFNT, err = sfnt.Parse(f.Binary)
	if err != nil {
		return nil, err
	}
	f.Fontname, _ = f.SFNT.Name(nil, sfnt.NameIDFull)
	return
}

// --- Fallback font ---------------------------------------------------------

// FallbackFont returns a font to be used if everything else failes. It is
// always present. Currently we use Go Sans.
func FallbackFont() *ScalableFont {
	fallbackFontLoading.Do(func() {
		fallbackFont = loadFallbackFont()
	})
	return fallbackFont
}

var fallbackFontLoading sync.Once

// fallbackFont is a font that is used if everything else failes.
// Currently we use Go Sans.
var fallbackFont *ScalableFont

func loadFallbackFont() *ScalableFont {
	var err error
	gofont := &ScalableFont{
		Fontname: "Go Sans",
		Filepath: "internal",
		Binary:   goregular.TTF,
	}
	gofont.SFNT, err = sfnt.Parse(gofont.Binary)
	if err != nil {
		panic("cannot load default font") // this cannot happen
	}
	tracer().Infof("loaded fallback font %s", gofont.Fontname)
	return gofont
}
