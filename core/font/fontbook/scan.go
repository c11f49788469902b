package fontbook

import (
	"bytes"
	"os"

	hbtt "github.com/benoitkugler/textlayout/fonts/truetype"
	"github.com/flopp/go-findfont"
	"github.com/jassielof/typst/core/font/ot"
	"github.com/jassielof/typst/core/font/otquery"
	"github.com/jassielof/typst/core/locate/fontfiles"
	"golang.org/x/text/language"
)

// Scan walks a directory tree, indexes every font file it can interpret and
// returns the resulting catalog. Files the shaping-grade parser rejects are
// skipped with a trace message; they do not fail the scan. A scan fails as
// a whole only when the tree cannot be walked.
func Scan(root string) (*Book, error) {
	files, err := fontfiles.Discover(root, fontfiles.DefaultFontPatterns)
	if err != nil {
		return nil, err
	}
	book := NewBook()
	for _, path := range files {
		addFontFile(book, path)
	}
	tracer().Infof("scanned %s: %d font(s) in %d family(ies)",
		root, book.Size(), len(book.Families()))
	return book, nil
}

// ScanSystem indexes the fonts installed in the system's font directories.
func ScanSystem() *Book {
	book := NewBook()
	for _, path := range findfont.List() {
		addFontFile(book, path)
	}
	tracer().Infof("system scan: %d font(s) in %d family(ies)",
		book.Size(), len(book.Families()))
	return book
}

func addFontFile(book *Book, path string) {
	info, err := IndexFontFile(path)
	if err != nil {
		tracer().Infof("skipping %s: %v", path, err)
		return
	}
	book.Add(info)
}

// IndexFontFile extracts the catalog metadata of one font file.
//
// The candidate is first probed with the HarfBuzz stack's truetype parser:
// the catalog only lists fonts that a shaping engine will accept later on.
// Metadata is then read from the font's own tables, with a file-name guess
// as variant fallback for fonts without an OS/2 table.
func IndexFontFile(path string) (FontInfo, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return FontInfo{}, err
	}
	if _, err := hbtt.Parse(bytes.NewReader(data), true); err != nil {
		return FontInfo{}, err
	}
	otf, err := ot.Parse(data)
	if err != nil {
		return FontInfo{}, err
	}
	info := FontInfo{Path: path}
	names := otquery.NameInfo(otf, language.Und)
	info.Family = names["family"]
	info.Subfamily = names["subfamily"]
	if otf.Table(ot.T("OS/2")) != nil {
		info.Variant = otquery.VariantOf(otf)
	} else {
		info.Variant = GuessVariant(path)
	}
	info.Variable = otquery.IsVariable(otf)
	info.Axes = otquery.Axes(otf)
	if maxp := otf.Table(ot.T("maxp")); maxp != nil {
		info.NumGlyphs = maxp.Self().AsMaxP().NumGlyphs
	}
	return info, nil
}
