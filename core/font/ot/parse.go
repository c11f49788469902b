package ot

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// Code comments often will cite passages from the
// OpenType specification version 1.8.4;
// see https://docs.microsoft.com/en-us/typography/opentype/spec/.

// ---------------------------------------------------------------------------

// Parse parses an OpenType font from a byte slice.
// An ot.Font needs ongoing access to the font's byte-data after the Parse
// function returns. Its elements are assumed immutable while the ot.Font
// remains in use.
//
// Unlike a shaping engine, Parse does not insist on the presence of layout
// tables. The only table required is 'head': a file without it is not
// recognizable as a font. Fonts without an 'fvar' table parse fine and
// simply report as non-variable.
func Parse(font []byte) (*Font, error) {
	// https://www.microsoft.com/typography/otspec/otff.htm: Offset Table is 12 bytes.
	r := bytes.NewReader(font)
	h := FontHeader{}
	if err := binary.Read(r, binary.BigEndian, &h); err != nil {
		return nil, errFontFormat("table directory header")
	}
	tracer().Debugf("header = %v, tag = %x|%s", h, h.FontType, Tag(h.FontType).String())
	if !(h.FontType == 0x4f54544f || // OTTO
		h.FontType == 0x00010000 || // TrueType
		h.FontType == 0x74727565) { // true
		return nil, errFontFormat(fmt.Sprintf("font type not supported: %x", h.FontType))
	}
	otf := &Font{Header: &h, tables: make(map[Tag]Table)}
	src := binarySegm(font)
	// "The Offset Table is followed immediately by the Table Record entries …
	// sorted in ascending order by tag", 16 bytes each.
	buf, err := src.view(12, 16*int(h.TableCount))
	if err != nil {
		return nil, errFontFormat("table record entries")
	}
	for b, prevTag := buf, Tag(0); len(b) > 0; b = b[16:] {
		tag := MakeTag(b)
		if tag < prevTag {
			return nil, errFontFormat("table order")
		}
		prevTag = tag
		off, size := u32(b[8:12]), u32(b[12:16])
		if off&3 != 0 { // ignore checksums, but "all tables must begin on four byte boundries".
			return nil, errFontFormat("invalid table offset")
		}
		data, err := src.view(int(off), int(size))
		if err != nil {
			return nil, errFontFormat(fmt.Sprintf("table %s exceeds font data", tag))
		}
		if otf.tables[tag], err = parseTable(tag, data, off, size); err != nil {
			return nil, err
		}
	}
	if otf.tables[T("head")] == nil {
		return nil, errFontFormat("missing required table head")
	}
	// Shortcut to the design-variation table, for variable fonts.
	if fv := otf.tables[T("fvar")]; fv != nil {
		otf.Fvar = fv.Self().AsFvar()
	}
	return otf, nil
}

func parseTable(t Tag, b binarySegm, offset, size uint32) (Table, error) {
	switch t {
	case T("fvar"):
		return parseFvar(t, b, offset, size)
	case T("head"):
		return parseHead(t, b, offset, size)
	case T("maxp"):
		return parseMaxP(t, b, offset, size)
	case T("name"):
		return parseName(t, b, offset, size)
	case T("OS/2"):
		return parseOS2(t, b, offset, size)
	}
	tracer().Debugf("font contains table (%s), will not be interpreted", t)
	return newTable(t, b, offset, size), nil
}

// --- head table ------------------------------------------------------------

func parseHead(tag Tag, b binarySegm, offset, size uint32) (Table, error) {
	if size < 54 {
		return nil, errFontFormat("size of head table")
	}
	t := newHeadTable(tag, b, offset, size)
	t.Flags, _ = b.u16(16)      // flags
	t.UnitsPerEm, _ = b.u16(18) // units per em
	t.MacStyle, _ = b.u16(44)   // macStyle
	return t, nil
}

// --- maxp table ------------------------------------------------------------

func parseMaxP(tag Tag, b binarySegm, offset, size uint32) (Table, error) {
	if size < 6 {
		return nil, errFontFormat("size of maxp table")
	}
	t := newMaxPTable(tag, b, offset, size)
	n, _ := b.u16(4)
	t.NumGlyphs = int(n)
	return t, nil
}

// --- OS/2 table ------------------------------------------------------------

func parseOS2(tag Tag, b binarySegm, offset, size uint32) (Table, error) {
	// Version 0 of the table is 78 bytes; all fields we read live in the
	// first 64 bytes, common to every version.
	if size < 64 {
		return nil, errFontFormat("size of OS/2 table")
	}
	t := newOS2Table(tag, b, offset, size)
	t.Version, _ = b.u16(0)
	t.WeightClass, _ = b.u16(4) // usWeightClass
	t.WidthClass, _ = b.u16(6)  // usWidthClass
	t.Selection, _ = b.u16(62)  // fsSelection
	return t, nil
}
