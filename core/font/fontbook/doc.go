/*
Package fontbook keeps an indexed catalog of font files.

A Book maps font families to the variants (style, weight, stretch) found on
disk, so that clients can enumerate families, look up the fonts of one
family, search families by name prefix, and select the variant closest to a
requested one. Variable fonts are indexed with their design-variation axes.

A Book does not retain font binaries; it stores metadata only and re-reads
a font file when a client actually needs the font.
*/
package fontbook

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'typst.fonts'
func tracer() tracing.Trace {
	return tracing.Select("typst.fonts")
}
