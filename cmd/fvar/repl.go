package main

import (
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/jassielof/typst/core/font/fontbook"
	"github.com/jassielof/typst/core/font/ot"
	"github.com/jassielof/typst/core/font/otquery"
	"github.com/pterm/pterm"
	"golang.org/x/text/language"
)

// Intp is our interpreter object for the interactive shell.
type Intp struct {
	repl *readline.Instance
	book *fontbook.Book
	dir  string
}

// repl starts the interactive inspection shell. Commands operate on single
// font files or on the catalog of the scanned tree.
func repl(dir string) {
	pterm.Info.Println("Welcome to the font inspection shell")
	rl, err := readline.New("fvar > ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	book, err := fontbook.Scan(dir)
	if err != nil {
		pterm.Error.Printfln("cannot scan %s: %v", dir, err)
		book = fontbook.NewBook()
	}
	intp := &Intp{repl: rl, book: book, dir: dir}
	pterm.Info.Println("Quit with <ctrl>D")
	intp.REPL()
}

// REPL receives commands until EOF or quit.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		if quit := intp.execute(line); quit {
			break
		}
	}
	pterm.Info.Println("Good bye!")
}

func (intp *Intp) execute(line string) (quit bool) {
	cmd, arg := line, ""
	if i := strings.IndexByte(line, ' '); i > 0 {
		cmd, arg = line[:i], strings.TrimSpace(line[i+1:])
	}
	switch strings.ToLower(cmd) {
	case "quit":
		return true
	case "axes":
		intp.withFont(arg, func(otf *ot.Font) {
			if !otquery.IsVariable(otf) {
				pterm.Printfln("%s: Not a variable font", arg)
				return
			}
			for _, axis := range otquery.Axes(otf) {
				pterm.Printfln("  %s: %s - %s (default: %s)",
					axis.Tag, axis.Minimum, axis.Maximum, axis.Default)
			}
		})
	case "info":
		intp.withFont(arg, func(otf *ot.Font) {
			pterm.Printfln("%-10s %s", "type:", otquery.FontType(otf))
			for key, value := range otquery.NameInfo(otf, language.Und) {
				pterm.Printfln("%-10s %s", key+":", value)
			}
			pterm.Printfln("%-10s %v", "variant:", otquery.VariantOf(otf))
		})
	case "tables":
		intp.withFont(arg, func(otf *ot.Font) {
			pterm.Printfln("font tables: %v", otf.TableTags())
		})
	case "families":
		families := intp.book.Families()
		if arg != "" {
			families = intp.book.SuggestFamilies(arg)
		}
		for _, family := range families {
			pterm.Printfln("%s (%d font(s))", family, len(intp.book.Fonts(family)))
		}
	default:
		help()
	}
	return false
}

// withFont loads a font file and hands it to a command body. The argument
// may be a file path or an indexed family name (its best-matching variant
// is used then).
func (intp *Intp) withFont(arg string, body func(otf *ot.Font)) {
	if arg == "" {
		pterm.Error.Println("command needs a font file or family name")
		return
	}
	path := arg
	if _, err := os.Stat(path); err != nil {
		info, ok := intp.book.SelectBest(arg, otquery.VariantDefault)
		if !ok {
			pterm.Error.Printfln("neither a font file nor a known family: %s", arg)
			if hints := intp.book.SuggestFamilies(arg); len(hints) > 0 {
				pterm.Printfln("did you mean one of %v?", hints)
			}
			return
		}
		path = info.Path
	}
	data, err := os.ReadFile(path)
	if err != nil {
		pterm.Error.Printfln("cannot read %s: %v", path, err)
		return
	}
	otf, err := ot.Parse(data)
	if err != nil {
		pterm.Error.Printfln("cannot parse %s: %v", path, err)
		return
	}
	body(otf)
}

func help() {
	pterm.Info.Println("Commands")
	pterm.Println(`
	axes <font>        print the variation axes of a font
	info <font>        print name entries, font type and variant
	tables <font>      list the tables of a font
	families [prefix]  list indexed font families
	quit               leave the shell

	<font> is a file path, or the family name of a font found in the
	scanned directory tree.
	`)
}
