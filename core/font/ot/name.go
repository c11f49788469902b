package ot

import (
	"golang.org/x/text/encoding/unicode"
)

// The naming table 'name' holds the human-readable strings of a font:
// family and subfamily names, version, axis display names, and so on.
// Strings are stored per (platform, encoding, language); we decode the
// platforms commonly found in fonts today.
// See https://docs.microsoft.com/en-us/typography/opentype/spec/name

// Well-known name IDs.
const (
	NameFamily     uint16 = 1
	NameSubfamily  uint16 = 2
	NameUnique     uint16 = 3
	NameFull       uint16 = 4
	NameVersion    uint16 = 5
	NamePostScript uint16 = 6
)

// NameTable represents the naming table of a font.
type NameTable struct {
	tableBase
	records []nameRecord
}

// nameRecord is the on-disk format of one entry of the naming table,
// sans the storage-area offset resolution.
type nameRecord struct {
	platformID uint16
	encodingID uint16
	languageID uint16
	nameID     uint16
	value      binarySegm // raw string data, not yet decoded
}

func newNameTable(tag Tag, b binarySegm, offset, size uint32) *NameTable {
	t := &NameTable{}
	base := tableBase{
		data:   b,
		name:   tag,
		offset: offset,
		length: size,
	}
	t.tableBase = base
	t.self = t
	return t
}

func parseName(tag Tag, b binarySegm, offset, size uint32) (Table, error) {
	if size < 6 {
		return nil, errFontFormat("size of name table")
	}
	t := newNameTable(tag, b, offset, size)
	count, _ := t.data.u16(2)
	storage, _ := t.data.u16(4)
	t.records = make([]nameRecord, 0, count)
	for i := 0; i < int(count); i++ {
		rec, err := t.data.view(6+i*12, 12)
		if err != nil {
			return nil, errFontFormat("name record array exceeds table")
		}
		length, _ := rec.u16(8)
		off, _ := rec.u16(10)
		value, err := t.data.view(int(storage)+int(off), int(length))
		if err != nil {
			// Tolerate records pointing outside the storage area; fonts with
			// truncated name tables exist and the remaining entries are
			// still useful.
			tracer().Infof("name record %d outside storage area, ignored", i)
			continue
		}
		r := nameRecord{value: value}
		r.platformID, _ = rec.u16(0)
		r.encodingID, _ = rec.u16(2)
		r.languageID, _ = rec.u16(4)
		r.nameID, _ = rec.u16(6)
		t.records = append(t.records, r)
	}
	return t, nil
}

// Name returns the decoded string for an exact (platform, encoding, language,
// name-ID) combination, or "" if the font does not carry it.
func (t *NameTable) Name(platform, encoding, language, nameID uint16) string {
	for _, r := range t.records {
		if r.platformID == platform && r.encodingID == encoding &&
			r.languageID == language && r.nameID == nameID {
			return decodeNameValue(r)
		}
	}
	return ""
}

// Get returns the decoded string for a name ID, trying platform keys in order
// of decreasing reliability: Windows/BMP English first, then any Windows/BMP
// language, then Macintosh/Roman, then Unicode platform records.
func (t *NameTable) Get(nameID uint16) string {
	if s := t.Name(3, 1, 0x0409, nameID); s != "" {
		return s
	}
	for _, r := range t.records {
		if r.nameID != nameID {
			continue
		}
		if (r.platformID == 3 && r.encodingID == 1) ||
			r.platformID == 1 && r.encodingID == 0 ||
			r.platformID == 0 {
			return decodeNameValue(r)
		}
	}
	return ""
}

func decodeNameValue(r nameRecord) string {
	switch r.platformID {
	case 0, 3: // Unicode and Windows platforms store UTF-16BE
		dec := unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM).NewDecoder()
		if out, err := dec.Bytes(r.value); err == nil {
			return string(out)
		}
		return ""
	case 1: // Macintosh/Roman; treat as ASCII-ish single byte data
		return string(r.value)
	}
	return ""
}
