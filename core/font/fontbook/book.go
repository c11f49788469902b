package fontbook

import (
	"path"
	"strings"
	"sync"

	"github.com/derekparker/trie"
	"github.com/emirpasic/gods/maps/treemap"
	"github.com/jassielof/typst/core/font/ot"
	"github.com/jassielof/typst/core/font/otquery"
	xfont "golang.org/x/image/font"
)

// FontInfo holds the indexed metadata of one font file.
type FontInfo struct {
	Path      string // location of the font file
	Family    string // font family display name, e.g. "Helvetica Neue"
	Subfamily string // variant display name, e.g. "Bold Italic"
	Variant   otquery.Variant
	Variable  bool
	Axes      []ot.VariationAxis // design-variation axes; nil for static fonts
	NumGlyphs int
}

// familyEntry collects the fonts of one family. The display name is the one
// of the first font indexed for the family.
type familyEntry struct {
	display string
	infos   []FontInfo
}

// Book is an indexed catalog of font files, keyed by normalized family name.
// All methods are safe for concurrent use.
type Book struct {
	sync.Mutex
	families *treemap.Map // normalized family -> *familyEntry
	names    *trie.Trie   // normalized family names, for prefix search
}

// NewBook creates an empty font catalog.
func NewBook() *Book {
	return &Book{
		families: treemap.NewWithStringComparator(),
		names:    trie.New(),
	}
}

// Add indexes the metadata of one font. Fonts without a family name are
// filed under the base name of their file path.
func (b *Book) Add(info FontInfo) {
	if info.Family == "" {
		info.Family = strings.TrimSuffix(path.Base(info.Path), path.Ext(info.Path))
	}
	key := NormalizeFamily(info.Family)
	b.Lock()
	defer b.Unlock()
	if e, ok := b.families.Get(key); ok {
		entry := e.(*familyEntry)
		entry.infos = append(entry.infos, info)
		return
	}
	b.families.Put(key, &familyEntry{display: info.Family, infos: []FontInfo{info}})
	b.names.Add(key, info.Family)
	tracer().Debugf("book indexes new family %q", info.Family)
}

// Families returns the display names of all indexed families, sorted by
// their normalized names.
func (b *Book) Families() []string {
	b.Lock()
	defer b.Unlock()
	keys := b.families.Keys()
	families := make([]string, 0, len(keys))
	for _, k := range keys {
		e, _ := b.families.Get(k)
		families = append(families, e.(*familyEntry).display)
	}
	return families
}

// Fonts returns the indexed fonts of a family, in indexing order.
// Family matching is normalized, i.e. case-insensitive.
func (b *Book) Fonts(family string) []FontInfo {
	b.Lock()
	defer b.Unlock()
	if e, ok := b.families.Get(NormalizeFamily(family)); ok {
		return e.(*familyEntry).infos
	}
	return nil
}

// Size returns the number of indexed fonts.
func (b *Book) Size() int {
	b.Lock()
	defer b.Unlock()
	n := 0
	for _, k := range b.families.Keys() {
		e, _ := b.families.Get(k)
		n += len(e.(*familyEntry).infos)
	}
	return n
}

// SuggestFamilies returns the display names of all families whose normalized
// name starts with prefix. Useful for "did you mean …" hints.
func (b *Book) SuggestFamilies(prefix string) []string {
	b.Lock()
	defer b.Unlock()
	keys := b.names.PrefixSearch(NormalizeFamily(prefix))
	families := make([]string, 0, len(keys))
	for _, k := range keys {
		if e, ok := b.families.Get(k); ok {
			families = append(families, e.(*familyEntry).display)
		}
	}
	return families
}

// SelectBest returns the indexed font of a family that is closest to the
// requested variant, using the CSS font-matching priorities: stretch
// distance outranks style mismatch, which outranks weight distance.
// The second return value is false if the family is unknown.
func (b *Book) SelectBest(family string, v otquery.Variant) (FontInfo, bool) {
	infos := b.Fonts(family)
	if len(infos) == 0 {
		return FontInfo{}, false
	}
	best, bestScore := infos[0], variantDistance(infos[0].Variant, v)
	for _, info := range infos[1:] {
		if score := variantDistance(info.Variant, v); score < bestScore {
			best, bestScore = info, score
		}
	}
	return best, true
}

// variantDistance computes a lexicographic distance of a candidate variant
// from a requested one. Lower is better; 0 is an exact match.
func variantDistance(have, want otquery.Variant) int {
	stretch := have.Stretch - want.Stretch
	if stretch < 0 {
		stretch = -stretch
	}
	style := styleDistance(have.Style, want.Style)
	weight := int(have.Weight) - int(want.Weight)
	if weight < 0 {
		weight = -weight
	}
	return int(stretch)*100 + style*10 + weight
}

// styleDistance prefers an exact style match, then the other slanted style
// for a slanted request, then everything else.
func styleDistance(have, want xfont.Style) int {
	if have == want {
		return 0
	}
	slanted := func(s xfont.Style) bool {
		return s == xfont.StyleItalic || s == xfont.StyleOblique
	}
	if slanted(have) && slanted(want) {
		return 1
	}
	return 2
}

// NormalizeFamily normalizes a font family name for use as a lookup key:
// trimmed, lower-cased, inner whitespace replaced.
func NormalizeFamily(family string) string {
	family = strings.TrimSpace(family)
	family = strings.ReplaceAll(family, " ", "_")
	return strings.ToLower(family)
}

// GuessVariant tries to guess a font's style and weight from the font's
// file name, for fonts which do not classify themselves.
func GuessVariant(fontfilename string) otquery.Variant {
	fontfilename = path.Base(fontfilename)
	ext := path.Ext(fontfilename)
	fontfilename = strings.ToLower(fontfilename[:len(fontfilename)-len(ext)])
	v := otquery.VariantDefault
	s := strings.Split(fontfilename, "-")
	if len(s) > 1 {
		switch s[len(s)-1] {
		case "light", "xlight":
			v.Weight = xfont.WeightLight
			return v
		case "normal", "medium", "regular", "r":
			return v
		case "bold", "b":
			v.Weight = xfont.WeightBold
			return v
		case "xbold", "black":
			v.Weight = xfont.WeightExtraBold
			return v
		}
	}
	if strings.Contains(fontfilename, "italic") || strings.Contains(fontfilename, "oblique") {
		v.Style = xfont.StyleItalic
	}
	if strings.Contains(fontfilename, "light") {
		v.Weight = xfont.WeightLight
	}
	if strings.Contains(fontfilename, "bold") {
		v.Weight = xfont.WeightBold
	}
	return v
}
