package ot

import "fmt"

// The font variations table 'fvar' is the heart of a variable font: it
// declares the design-variation axes the font supports and, optionally, a
// set of named instances (predefined positions in the design space).
// See https://docs.microsoft.com/en-us/typography/opentype/spec/fvar

// FvarTable represents the font variations table of a variable font.
type FvarTable struct {
	tableBase
	header    fvarHeader
	axes      []VariationAxis
	instances []NamedInstance
}

// fvarHeader is the on-disk format of the fvar table header.
type fvarHeader struct {
	majorVersion  uint16
	minorVersion  uint16
	axesOffset    uint16 // offset to the axes array, from the beginning of the table
	axisCount     uint16
	axisSize      uint16 // size of a VariationAxisRecord, currently 20
	instanceCount uint16
	instanceSize  uint16 // axisCount * 4 + 4, or axisCount * 4 + 6
}

// VariationAxis is one design-variation axis of a variable font: a named,
// continuous parameter bounded by a minimum and maximum, carrying a default.
// Well-known registered axes are 'wght', 'wdth', 'ital', 'slnt' and 'opsz'.
type VariationAxis struct {
	Tag     Tag   // axis identification, e.g. 'wght'
	Minimum Fixed // minimum coordinate value
	Default Fixed // default coordinate value
	Maximum Fixed // maximum coordinate value
	Flags   uint16
	NameID  uint16 // 'name' table entry for a display name of the axis
}

// NamedInstance is a predefined position in the design space of a variable
// font, e.g. "SemiBold Condensed". Coordinates are listed in the order of the
// font's variation axes.
type NamedInstance struct {
	SubfamilyNameID  uint16
	Flags            uint16
	Coordinates      []Fixed
	PostScriptNameID uint16 // 0xffff if the font does not provide one
}

// Version returns major and minor version numbers of the fvar table.
func (t *FvarTable) Version() (int, int) {
	return int(t.header.majorVersion), int(t.header.minorVersion)
}

// AxisCount returns the number of design-variation axes of the font.
func (t *FvarTable) AxisCount() int {
	return len(t.axes)
}

// Axes returns the font's variation axes, in the order the font's axis table
// stores them. Clients must treat the returned slice as read-only.
func (t *FvarTable) Axes() []VariationAxis {
	return t.axes
}

// Instances returns the font's named instances, in table order. The returned
// slice is read-only for clients and may be empty.
func (t *FvarTable) Instances() []NamedInstance {
	return t.instances
}

func newFvarTable(tag Tag, b binarySegm, offset, size uint32) *FvarTable {
	t := &FvarTable{}
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

func parseFvar(tag Tag, b binarySegm, offset, size uint32) (Table, error) {
	if size < 16 {
		return nil, errFontFormat("size of fvar table")
	}
	t := newFvarTable(tag, b, offset, size)
	t.header.majorVersion, _ = b.u16(0)
	t.header.minorVersion, _ = b.u16(2)
	t.header.axesOffset, _ = b.u16(4)
	// u16 at offset 6 is reserved, "set to 2"; fonts in the wild disagree,
	// so we do not check it.
	t.header.axisCount, _ = b.u16(8)
	t.header.axisSize, _ = b.u16(10)
	t.header.instanceCount, _ = b.u16(12)
	t.header.instanceSize, _ = b.u16(14)
	if t.header.majorVersion != 1 {
		return nil, errFontFormat("fvar table version")
	}
	if t.header.axisCount == 0 {
		// "If axisCount is 0, the font is not functional as a variable font."
		return nil, errFontFormat("fvar table without axes")
	}
	if t.header.axisSize < 20 {
		return nil, errFontFormat("fvar axis record size")
	}
	if err := parseFvarAxes(t, b); err != nil {
		return nil, err
	}
	if err := parseFvarInstances(t, b); err != nil {
		return nil, err
	}
	tracer().Debugf("fvar: %d axes, %d named instances", len(t.axes), len(t.instances))
	return t, nil
}

// parseFvarAxes reads the array of VariationAxisRecords:
//
//	axisTag       Tag      0
//	minValue      Fixed    4
//	defaultValue  Fixed    8
//	maxValue      Fixed   12
//	flags         uint16  16
//	axisNameID    uint16  18
func parseFvarAxes(t *FvarTable, b binarySegm) error {
	count, asize := int(t.header.axisCount), int(t.header.axisSize)
	t.axes = make([]VariationAxis, 0, count)
	for i := 0; i < count; i++ {
		rec, err := b.view(int(t.header.axesOffset)+i*asize, asize)
		if err != nil {
			return errFontFormat("fvar axis array exceeds table")
		}
		var axis VariationAxis
		axis.Tag = MakeTag(rec[0:4])
		axis.Minimum, _ = rec.fixed(4)
		axis.Default, _ = rec.fixed(8)
		axis.Maximum, _ = rec.fixed(12)
		axis.Flags, _ = rec.u16(16)
		axis.NameID, _ = rec.u16(18)
		if axis.Minimum > axis.Default || axis.Default > axis.Maximum {
			return errFontFormat(fmt.Sprintf("fvar axis %s range", axis.Tag))
		}
		t.axes = append(t.axes, axis)
	}
	return nil
}

// parseFvarInstances reads the array of InstanceRecords, which follows the
// axes array immediately. An InstanceRecord is
//
//	subfamilyNameID   uint16
//	flags             uint16
//	coordinates       Fixed[axisCount]
//	postScriptNameID  uint16   (optional, signalled by instanceSize)
func parseFvarInstances(t *FvarTable, b binarySegm) error {
	count, isize := int(t.header.instanceCount), int(t.header.instanceSize)
	if count == 0 {
		return nil
	}
	axisCount := int(t.header.axisCount)
	withPSName := isize == axisCount*4+6
	if !withPSName && isize != axisCount*4+4 {
		return errFontFormat("fvar instance record size")
	}
	start := int(t.header.axesOffset) + axisCount*int(t.header.axisSize)
	t.instances = make([]NamedInstance, 0, count)
	for i := 0; i < count; i++ {
		rec, err := b.view(start+i*isize, isize)
		if err != nil {
			return errFontFormat("fvar instance array exceeds table")
		}
		var inst NamedInstance
		inst.SubfamilyNameID, _ = rec.u16(0)
		inst.Flags, _ = rec.u16(2)
		inst.PostScriptNameID = 0xffff
		if withPSName {
			inst.PostScriptNameID, _ = rec.u16(isize - 2)
		}
		inst.Coordinates = make([]Fixed, axisCount)
		for j := 0; j < axisCount; j++ {
			inst.Coordinates[j], _ = rec.fixed(4 + j*4)
		}
		t.instances = append(t.instances, inst)
	}
	return nil
}
