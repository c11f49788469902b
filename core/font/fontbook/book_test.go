package fontbook

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jassielof/typst/core/font"
	"github.com/jassielof/typst/core/font/otquery"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	xfont "golang.org/x/image/font"
)

func TestBookAddAndLookup(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "typst.fonts")
	defer teardown()
	//
	book := NewBook()
	book.Add(FontInfo{Path: "x/GentiumPlus-R.ttf", Family: "Gentium Plus"})
	book.Add(FontInfo{Path: "x/GentiumPlus-B.ttf", Family: "Gentium Plus",
		Variant: otquery.Variant{Weight: xfont.WeightBold}})
	book.Add(FontInfo{Path: "x/Inter.ttf", Family: "Inter"})
	//
	if book.Size() != 3 {
		t.Errorf("expected 3 fonts in book, have %d", book.Size())
	}
	families := book.Families()
	if len(families) != 2 {
		t.Fatalf("expected 2 families, have %v", families)
	}
	if families[0] != "Gentium Plus" { // sorted by normalized name
		t.Errorf("expected 'Gentium Plus' to sort first, have %v", families)
	}
	if fonts := book.Fonts("gentium plus"); len(fonts) != 2 {
		t.Errorf("expected case-insensitive family lookup to find 2 fonts, found %d",
			len(fonts))
	}
}

func TestBookSuggestFamilies(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "typst.fonts")
	defer teardown()
	//
	book := NewBook()
	book.Add(FontInfo{Family: "Gentium Plus", Path: "a.ttf"})
	book.Add(FontInfo{Family: "Gentium Book", Path: "b.ttf"})
	book.Add(FontInfo{Family: "Inter", Path: "c.ttf"})
	//
	hits := book.SuggestFamilies("gent")
	if len(hits) != 2 {
		t.Errorf("expected 2 suggestions for prefix 'gent', have %v", hits)
	}
	if hits := book.SuggestFamilies("helvet"); len(hits) != 0 {
		t.Errorf("expected no suggestions for prefix 'helvet', have %v", hits)
	}
}

func TestBookSelectBest(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "typst.fonts")
	defer teardown()
	//
	book := NewBook()
	book.Add(FontInfo{Path: "r.ttf", Family: "Demo", Variant: otquery.VariantDefault})
	book.Add(FontInfo{Path: "b.ttf", Family: "Demo",
		Variant: otquery.Variant{Weight: xfont.WeightBold}})
	book.Add(FontInfo{Path: "i.ttf", Family: "Demo",
		Variant: otquery.Variant{Style: xfont.StyleItalic}})
	//
	best, ok := book.SelectBest("Demo", otquery.Variant{Weight: xfont.WeightBold})
	if !ok || best.Path != "b.ttf" {
		t.Errorf("expected bold variant to be selected, have %+v", best)
	}
	// an oblique request prefers the italic font over upright ones
	best, ok = book.SelectBest("Demo", otquery.Variant{Style: xfont.StyleOblique})
	if !ok || best.Path != "i.ttf" {
		t.Errorf("expected italic variant for oblique request, have %+v", best)
	}
	if _, ok := book.SelectBest("No Such Family", otquery.VariantDefault); ok {
		t.Error("expected selection in unknown family to report failure")
	}
}

func TestGuessVariant(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "typst.fonts")
	defer teardown()
	//
	if v := GuessVariant("GentiumPlus-B.ttf"); v.Weight != xfont.WeightBold {
		t.Errorf("expected '-B' suffix to guess bold, is %v", v)
	}
	if v := GuessVariant("SomeFont-Italic.ttf"); v.Style != xfont.StyleItalic {
		t.Errorf("expected 'italic' to guess italic style, is %v", v)
	}
	if v := GuessVariant("Plain.ttf"); v != otquery.VariantDefault {
		t.Errorf("expected plain file name to guess the default variant, is %v", v)
	}
}

func TestScanDirectory(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "typst.fonts")
	defer teardown()
	//
	root := t.TempDir()
	write := func(name string, data []byte) {
		if err := os.WriteFile(filepath.Join(root, name), data, 0644); err != nil {
			t.Fatal(err)
		}
	}
	write("GoRegular.ttf", font.FallbackFont().Binary)
	write("Broken.ttf", []byte("these bytes are no font at all......"))
	write("notes.txt", []byte("not a font"))
	//
	book, err := Scan(root)
	if err != nil {
		t.Fatal(err)
	}
	if book.Size() != 1 {
		t.Fatalf("expected exactly the healthy font to be indexed, have %d", book.Size())
	}
	fonts := book.Fonts("Go")
	if len(fonts) != 1 {
		t.Fatalf("expected family 'Go' in book, have families %v", book.Families())
	}
	info := fonts[0]
	if info.Variable {
		t.Error("expected Go Regular not to be indexed as variable font")
	}
	if info.NumGlyphs < 100 {
		t.Errorf("expected a real glyph count, have %d", info.NumGlyphs)
	}
	if info.Variant != otquery.VariantDefault {
		t.Errorf("expected Go Regular to classify as default variant, is %v", info.Variant)
	}
}
