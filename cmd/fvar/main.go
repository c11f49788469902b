// Command fvar scans a directory tree for font files, removes stale .ttx
// text dumps from earlier tool runs, and prints the design-variation axes
// of every variable font it finds. Non-variable fonts are reported with a
// single line.
//
// Without flags, the tool scans ./assets/fonts. Use -dir to scan elsewhere,
// -book for a font-family catalog, -system to include the fonts installed
// on this machine, and -i for an interactive inspection shell.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/jassielof/typst/core"
	"github.com/jassielof/typst/core/font/axisreport"
	"github.com/jassielof/typst/core/font/fontbook"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
)

// tracer traces with key 'typst.fonts'
func tracer() tracing.Trace {
	return tracing.Select("typst.fonts")
}

func main() {
	initDisplay()

	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":   "go",
		"trace.typst.fonts": "Info",
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())

	// command line flags
	tlevel := flag.String("trace", "Error", "Trace level [Debug|Info|Error]")
	dir := flag.String("dir", axisreport.DefaultRoot, "Directory tree to scan")
	stale := flag.String("stale", "", "Glob of stale report files to delete (default **/*.ttx)")
	instances := flag.Bool("instances", false, "Also print named instances of variable fonts")
	book := flag.Bool("book", false, "Print a font-family catalog of the scanned tree")
	system := flag.Bool("system", false, "Include system fonts in the catalog (with -book)")
	interactive := flag.Bool("i", false, "Interactive inspection shell")
	flag.Parse()
	switch strings.ToLower(*tlevel) {
	case "debug":
		tracer().SetTraceLevel(tracing.LevelDebug)
	case "info":
		tracer().SetTraceLevel(tracing.LevelInfo)
	default:
		tracer().SetTraceLevel(tracing.LevelError)
	}
	//
	if *interactive {
		repl(*dir)
		return
	}
	if *book {
		printBook(*dir, *system)
		return
	}
	summary, err := axisreport.Report(os.Stdout, axisreport.Options{
		Root:         *dir,
		StalePattern: *stale,
		Instances:    *instances,
	})
	if err != nil {
		core.UserError(err)
		os.Exit(core.Code(err))
	}
	tracer().Infof("inspected %d font(s), %d variable, %d stale file(s) removed",
		summary.FontCount, summary.Variable, summary.Cleaned)
	if summary.Failed() {
		core.UserError(summary.Failures)
		os.Exit(core.EPARTIAL)
	}
}

// printBook scans the tree (and optionally the system font directories) and
// prints a per-family summary of the catalog.
func printBook(dir string, withSystem bool) {
	book, err := fontbook.Scan(dir)
	if err != nil {
		core.UserError(err)
		os.Exit(core.Code(err))
	}
	if withSystem {
		system := fontbook.ScanSystem()
		for _, family := range system.Families() {
			for _, info := range system.Fonts(family) {
				book.Add(info)
			}
		}
	}
	for _, family := range book.Families() {
		fonts := book.Fonts(family)
		pterm.Printfln("%s (%d font(s))", family, len(fonts))
		for _, info := range fonts {
			marker := ""
			if info.Variable {
				marker = fmt.Sprintf("  [variable, %d axes]", len(info.Axes))
			}
			pterm.Printfln("  %s%s", info.Path, marker)
		}
	}
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}
