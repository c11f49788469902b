package ot

import (
	"errors"
	"strconv"
)

// Reading bytes from a font's binary representation

var errBufferBounds = errors.New("internal inconsistency: buffer bounds error")

func u16(b []byte) uint16 {
	_ = b[1] // Bounds check hint to compiler
	return uint16(b[0])<<8 | uint16(b[1])<<0
}

func u32(b []byte) uint32 {
	_ = b[3] // Bounds check hint to compiler
	return uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])<<0
}

// binarySegm is a segment of byte data.
// We use it throughout this package to navigate the font's binary data.
type binarySegm []byte

// view returns n bytes at the given offset.
// The byte segment returned is a sub-slice of b.
func (b binarySegm) view(offset, n int) (binarySegm, error) {
	if offset < 0 || n <= 0 || offset+n > len(b) {
		return nil, errBufferBounds
	}
	return b[offset : offset+n], nil
}

// u16 returns the uint16 in b at the relative offset i.
func (b binarySegm) u16(i int) (uint16, error) {
	buf, err := b.view(i, 2)
	if err != nil {
		return 0, err
	}
	return u16(buf), nil
}

// u32 returns the uint32 in b at the relative offset i.
func (b binarySegm) u32(i int) (uint32, error) {
	buf, err := b.view(i, 4)
	if err != nil {
		return 0, err
	}
	return u32(buf), nil
}

// --- Fixed-point numbers ---------------------------------------------------

// Fixed is a signed 16.16 fixed-point number, the numeric format the OpenType
// spec uses for design-variation axis values.
type Fixed int32

// fixed returns the Fixed in b at the relative offset i.
func (b binarySegm) fixed(i int) (Fixed, error) {
	n, err := b.u32(i)
	if err != nil {
		return 0, err
	}
	return Fixed(int32(n)), nil
}

// Float64 returns x as a floating point number.
func (x Fixed) Float64() float64 {
	return float64(x) / 65536
}

// String formats x with the minimal number of digits, i.e. "400" and "62.5",
// never "400.0". This matches the way font dump tools print axis values.
func (x Fixed) String() string {
	return strconv.FormatFloat(x.Float64(), 'f', -1, 64)
}
