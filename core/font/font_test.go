package font

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestFallbackFont(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "typst.fonts")
	defer teardown()
	//
	f := FallbackFont()
	if f == nil {
		t.Fatal("expected fallback font to be present, is nil")
	}
	if f.SFNT == nil {
		t.Error("expected fallback font to carry a parsed SFNT container")
	}
	t.Logf("fallback font is %s", f.Fontname)
}

func TestParseOpenTypeFont(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "typst.fonts")
	defer teardown()
	//
	f, err := ParseOpenTypeFont(FallbackFont().Binary)
	if err != nil {
		t.Fatal(err)
	}
	if f.Fontname == "" {
		t.Error("expected parsed font to have a full name entry")
	}
	t.Logf("parsed font name = %s", f.Fontname)
}
