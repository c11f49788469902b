/*
Package axisreport scans a directory tree for font files and reports the
design-variation axes of every variable font it finds.

A report run has three phases, executed strictly in sequence:

 1. Cleanup — stale text-dump artifacts (.ttx files by default) from earlier
    tool runs are deleted.
 2. Discovery — font files are collected recursively, in traversal order.
 3. Inspection — each font is opened and either its axes are printed, one
    line per axis in the font's own table order, or a single line states
    that the font is not variable.

Each font is processed independently: a file that fails to parse is recorded
as a failure and the batch continues. Font data lives only for the duration
of its iteration.
*/
package axisreport

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/jassielof/typst/core"
	"github.com/jassielof/typst/core/font/ot"
	"github.com/jassielof/typst/core/font/otquery"
	"github.com/jassielof/typst/core/locate/fontfiles"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'typst.fonts'
func tracer() tracing.Trace {
	return tracing.Select("typst.fonts")
}

// DefaultRoot is the directory a report run scans when the client does not
// select one.
const DefaultRoot = "assets/fonts"

// Options configure a report run. The zero value selects DefaultRoot, the
// default stale/font patterns, and axes-only output.
type Options struct {
	Root         string   // directory tree to scan; DefaultRoot if empty
	StalePattern string   // glob for stale report files; fontfiles.DefaultStalePattern if empty
	FontPatterns []string // globs for font files; fontfiles.DefaultFontPatterns if empty
	Instances    bool     // also print the named instances of variable fonts
}

// Summary is the aggregated outcome of a report run.
type Summary struct {
	Cleaned   int // stale report files deleted
	FontCount int // font files inspected, including failed ones
	Variable  int // fonts with a design-variation table
	Failures  *core.BatchError
}

// Failed tells if any font file of the run failed to parse.
func (s Summary) Failed() bool {
	return !s.Failures.Empty()
}

// Report runs cleanup, discovery and inspection on a directory tree, writing
// the axis report to w. Per-file parse failures do not abort the run; they
// are collected in the summary. A non-nil error is returned only when a
// filesystem phase fails as a whole (e.g. the root does not exist).
func Report(w io.Writer, opts Options) (Summary, error) {
	if opts.Root == "" {
		opts.Root = DefaultRoot
	}
	if opts.StalePattern == "" {
		opts.StalePattern = fontfiles.DefaultStalePattern
	}
	if len(opts.FontPatterns) == 0 {
		opts.FontPatterns = fontfiles.DefaultFontPatterns
	}
	summary := Summary{Failures: &core.BatchError{}}
	var err error
	if summary.Cleaned, err = fontfiles.CleanStale(opts.Root, opts.StalePattern); err != nil {
		return summary, core.WrapError(err, core.EMISSING, "cleanup failed in %s", opts.Root)
	}
	tracer().Infof("cleanup: deleted %d stale report file(s)", summary.Cleaned)
	files, err := fontfiles.Discover(opts.Root, opts.FontPatterns)
	if err != nil {
		return summary, core.WrapError(err, core.EMISSING, "cannot scan %s", opts.Root)
	}
	for _, path := range files {
		summary.FontCount++
		variable, err := inspect(w, path, opts)
		if err != nil {
			tracer().Errorf("%s: %v", path, err)
			summary.Failures.Collect(filepath.Base(path), err)
			continue
		}
		if variable {
			summary.Variable++
		}
	}
	return summary, nil
}

// inspect reports on a single font file. The font's data is local to this
// call; nothing survives into the next iteration.
func inspect(w io.Writer, path string, opts Options) (variable bool, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return false, err
	}
	otf, err := ot.Parse(data)
	if err != nil {
		return false, err
	}
	name := filepath.Base(path)
	if !otquery.IsVariable(otf) {
		fmt.Fprintf(w, "%s: Not a variable font\n", name)
		return false, nil
	}
	fmt.Fprintf(w, "\n%s:\n", name)
	for _, axis := range otquery.Axes(otf) {
		fmt.Fprintf(w, "  %s: %s - %s (default: %s)\n",
			axis.Tag, axis.Minimum, axis.Maximum, axis.Default)
	}
	if opts.Instances {
		printInstances(w, otf)
	}
	return true, nil
}

// printInstances lists the named instances of a variable font, resolving
// their display names through the font's naming table.
func printInstances(w io.Writer, otf *ot.Font) {
	for _, inst := range otquery.NamedInstances(otf) {
		label := otquery.NameOfID(otf, inst.SubfamilyNameID)
		if label == "" {
			label = fmt.Sprintf("#%d", inst.SubfamilyNameID)
		}
		fmt.Fprintf(w, "  instance %s:", label)
		for i, c := range inst.Coordinates {
			if i < otf.Fvar.AxisCount() {
				fmt.Fprintf(w, " %s=%s", otf.Fvar.Axes()[i].Tag, c)
			}
		}
		fmt.Fprintln(w)
	}
}
