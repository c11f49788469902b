package fontfiles

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestCleanStale(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "typst.fonts")
	defer teardown()
	//
	root := scratchTree(t, []string{
		"A.ttx",
		"sub/B.ttx",
		"sub/Roman.ttf",
		"keep.txt",
	})
	n, err := CleanStale(root, DefaultStalePattern)
	if err != nil {
		t.Fatal(err)
	}
	if n != 2 {
		t.Errorf("expected 2 stale files deleted, was %d", n)
	}
	if _, err := os.Stat(filepath.Join(root, "sub", "B.ttx")); !os.IsNotExist(err) {
		t.Error("expected sub/B.ttx to be deleted, still exists")
	}
	if _, err := os.Stat(filepath.Join(root, "sub", "Roman.ttf")); err != nil {
		t.Error("expected sub/Roman.ttf to survive cleanup, does not")
	}
	// idempotence: deleting already-absent stale files is a no-op
	n, err = CleanStale(root, DefaultStalePattern)
	if err != nil {
		t.Fatal(err)
	}
	if n != 0 {
		t.Errorf("expected repeated cleanup to delete nothing, deleted %d", n)
	}
}

func TestDiscover(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "typst.fonts")
	defer teardown()
	//
	root := scratchTree(t, []string{
		"Roman.ttf",
		"nested/deep/Variable.otf",
		"nested/notes.txt",
		"dump.ttx",
	})
	files, err := Discover(root, DefaultFontPatterns)
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 2 {
		t.Fatalf("expected 2 font files discovered, have %d: %v", len(files), files)
	}
	for _, f := range files {
		switch filepath.Base(f) {
		case "Roman.ttf", "Variable.otf":
		default:
			t.Errorf("unexpected file discovered: %s", f)
		}
	}
}

func TestDiscoverMissingRoot(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "typst.fonts")
	defer teardown()
	//
	if _, err := Discover(filepath.Join(t.TempDir(), "no-such-dir"), DefaultFontPatterns); err == nil {
		t.Error("expected discovery in a missing root to fail, did not")
	}
}

// scratchTree creates a temporary directory tree with empty files.
func scratchTree(t *testing.T, files []string) string {
	t.Helper()
	root := t.TempDir()
	for _, f := range files {
		path := filepath.Join(root, filepath.FromSlash(f))
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte{}, 0644); err != nil {
			t.Fatal(err)
		}
	}
	return root
}
