package otquery

import (
	"github.com/jassielof/typst/core/font/ot"
	"golang.org/x/text/language"
)

// FontType returns the font type, encoded in the font header, as a string.
func FontType(otf *ot.Font) string {
	if otf.Header == nil {
		return "<empty>"
	}
	typ := otf.Header.FontType
	switch typ {
	case 0x4f54544f: // OTTO
		return "OpenType (outlines)"
	case 0x00010000: // TrueType
		return "TrueType"
	case 0x74727565: // true
		return "TrueType (Mac legacy)"
	}
	return "<unknown>"
}

// NameInfo returns a map with selected fields from OpenType table `name`.
// Will include (if available in the font) "family", "subfamily", "version".
//
// Parameter `lang` is currently unused; Windows English entries are
// preferred, as those are the most reliably present ones.
func NameInfo(otf *ot.Font, lang language.Tag) map[string]string {
	names := make(map[string]string)
	name := nameTable(otf)
	if name == nil {
		tracer().Debugf("no name table found in font")
		return names
	}
	fields := []struct {
		key string
		id  uint16
	}{
		{"family", ot.NameFamily},
		{"subfamily", ot.NameSubfamily},
		{"version", ot.NameVersion},
	}
	for _, f := range fields {
		if s := name.Get(f.id); s != "" {
			names[f.key] = s
		}
	}
	return names
}

// NameOfID returns the decoded entry of the font's naming table for a given
// name ID, or "". Used e.g. for display names of variation axes and named
// instances, which reference the naming table by ID.
func NameOfID(otf *ot.Font, nameID uint16) string {
	name := nameTable(otf)
	if name == nil {
		return ""
	}
	return name.Get(nameID)
}

// IsVariable tells if a font is a variable font, i.e. if it carries a
// design-variation axes table.
func IsVariable(otf *ot.Font) bool {
	return otf.Fvar != nil
}

// Axes returns the design-variation axes of a font, in the order the font's
// axis table stores them. For non-variable fonts, Axes returns nil.
func Axes(otf *ot.Font) []ot.VariationAxis {
	if otf.Fvar == nil {
		return nil
	}
	return otf.Fvar.Axes()
}

// NamedInstances returns the named instances of a variable font, in table
// order. For non-variable fonts, NamedInstances returns nil.
func NamedInstances(otf *ot.Font) []ot.NamedInstance {
	if otf.Fvar == nil {
		return nil
	}
	return otf.Fvar.Instances()
}

func nameTable(otf *ot.Font) *ot.NameTable {
	table := otf.Table(ot.T("name"))
	if table == nil {
		return nil
	}
	return table.Self().AsName()
}
