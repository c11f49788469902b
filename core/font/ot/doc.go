/*
Package ot provides access to the internal structure of OpenType fonts.

The package is centered around inspection: it parses the top-level table
directory of a font and interprets those tables needed to answer questions
about a font's identity and design space, in particular the 'fvar' table of
variable fonts (design-variation axes and named instances).

It is *not* a shaping or rasterizing engine. Shapers need to interpret the
advanced layout tables (GSUB, GPOS, …), which is a much larger undertaking;
for that kind of work we hand the font bytes to the HarfBuzz stack.
Neither is this package intended for font manipulation applications.

The font binary is kept in memory and tables are thin views into it; no
table data is copied out beyond the few header fields we interpret. Tables
we do not understand are still retained as generic byte-range tables, i.e.
no table information is dropped.

Valuable resources:

▪︎ https://docs.microsoft.com/en-us/typography/opentype/spec/

▪︎ https://docs.microsoft.com/en-us/typography/opentype/spec/fvar

▪︎ http://opentypecookbook.com/
*/
package ot

import (
	"github.com/jassielof/typst/core"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'typst.fonts'
func tracer() tracing.Trace {
	return tracing.Select("typst.fonts")
}

// errFontFormat produces user level errors for font parsing.
func errFontFormat(x string) error {
	return core.Error(core.EINVALID, "OpenType font format: %s", x)
}
