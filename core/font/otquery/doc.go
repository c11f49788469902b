/*
Package otquery answers questions about OpenType fonts.

It is a convenience layer on top of package ot: given a parsed font, it
extracts identity information (family/subfamily names, version, font type),
tells variable fonts from static ones, lists design-variation axes and
named instances, and classifies a font's variant (style, weight, stretch)
the way CSS font matching does.
*/
package otquery

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'typst.fonts'
func tracer() tracing.Trace {
	return tracing.Select("typst.fonts")
}
