/*
Package fontfiles locates font resources in a directory tree.

It covers the two filesystem phases of a font-inspection run: removing stale
text-dump artifacts left behind by earlier tool runs, and discovering the
font files to inspect. File selection works with doublestar glob patterns,
matched against slash-separated paths relative to the scan root; the "**"
wildcard crosses directory boundaries, so the default patterns select files
by extension at any depth.
*/
package fontfiles

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'typst.fonts'
func tracer() tracing.Trace {
	return tracing.Select("typst.fonts")
}

// Default patterns: .ttx is the extension fontTools-style pipelines use for
// text dumps of font tables; .ttf and .otf are the font flavours we read.
var (
	DefaultStalePattern = "**/*.ttx"
	DefaultFontPatterns = []string{"**/*.ttf", "**/*.otf"}
)

// CleanStale recursively deletes all files under root whose relative path
// matches pattern. It returns the number of files deleted. Deleting nothing
// is not an error; a missing root is.
//
// Deletion is not transactional: on error, files already deleted stay
// deleted.
func CleanStale(root string, pattern string) (int, error) {
	count := 0
	err := walkMatching(root, []string{pattern}, func(path string) error {
		if err := os.Remove(path); err != nil {
			return err
		}
		tracer().Debugf("deleted stale report %s", path)
		count++
		return nil
	})
	return count, err
}

// Discover recursively collects all files under root whose relative path
// matches one of the given patterns. Order follows the directory traversal
// (lexical within each directory); no further sorting is applied.
func Discover(root string, patterns []string) ([]string, error) {
	var files []string
	err := walkMatching(root, patterns, func(path string) error {
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, err
	}
	tracer().Debugf("discovered %d files under %s", len(files), root)
	return files, nil
}

func walkMatching(root string, patterns []string, visit func(path string) error) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		for _, pattern := range patterns {
			ok, err := doublestar.Match(pattern, rel)
			if err != nil {
				return err
			}
			if ok {
				return visit(path)
			}
		}
		return nil
	})
}
