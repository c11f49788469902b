package axisreport

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jassielof/typst/core/font"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestReportMixedTree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "typst.fonts")
	defer teardown()
	//
	root := t.TempDir()
	writeFile(t, root, "Roman.ttf", font.FallbackFont().Binary)
	writeFile(t, root, "Variable.ttf", variableFontData())
	writeFile(t, root, "Roman.ttx", []byte("<stale dump>"))
	//
	var out strings.Builder
	summary, err := Report(&out, Options{Root: root})
	if err != nil {
		t.Fatal(err)
	}
	if summary.Cleaned != 1 {
		t.Errorf("expected 1 stale file cleaned, was %d", summary.Cleaned)
	}
	if summary.FontCount != 2 || summary.Variable != 1 {
		t.Errorf("expected 2 fonts with 1 variable, have %d/%d",
			summary.FontCount, summary.Variable)
	}
	if summary.Failed() {
		t.Errorf("expected no failures, have %v", summary.Failures)
	}
	expect := "Roman.ttf: Not a variable font\n" +
		"\nVariable.ttf:\n" +
		"  wght: 100 - 900 (default: 400)\n"
	if out.String() != expect {
		t.Errorf("report output mismatch:\n--- have ---\n%s--- want ---\n%s", out.String(), expect)
	}
	if _, err := os.Stat(filepath.Join(root, "Roman.ttx")); !os.IsNotExist(err) {
		t.Error("expected stale report file to be deleted, still exists")
	}
}

func TestReportIsIdempotent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "typst.fonts")
	defer teardown()
	//
	root := t.TempDir()
	writeFile(t, root, "Variable.ttf", variableFontData())
	writeFile(t, root, "dump.ttx", []byte{})
	//
	var first, second strings.Builder
	if _, err := Report(&first, Options{Root: root}); err != nil {
		t.Fatal(err)
	}
	if _, err := Report(&second, Options{Root: root}); err != nil {
		t.Fatal(err)
	}
	if first.String() != second.String() {
		t.Error("expected two consecutive runs to print identical output")
	}
}

func TestReportEmptyTree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "typst.fonts")
	defer teardown()
	//
	root := t.TempDir()
	writeFile(t, root, "leftover.ttx", []byte{})
	var out strings.Builder
	summary, err := Report(&out, Options{Root: root})
	if err != nil {
		t.Fatal(err)
	}
	if summary.Cleaned != 1 || summary.FontCount != 0 {
		t.Errorf("expected 1 cleaned and 0 fonts, have %d/%d",
			summary.Cleaned, summary.FontCount)
	}
	if out.String() != "" {
		t.Errorf("expected no output for a tree without fonts, have %q", out.String())
	}
}

func TestReportCollectsCorruptFonts(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "typst.fonts")
	defer teardown()
	//
	root := t.TempDir()
	writeFile(t, root, "Broken.ttf", []byte("zero bytes of font data, really"))
	writeFile(t, root, "Empty.ttf", []byte{})
	writeFile(t, root, "Roman.ttf", font.FallbackFont().Binary)
	//
	var out strings.Builder
	summary, err := Report(&out, Options{Root: root})
	if err != nil {
		t.Fatal(err)
	}
	if !summary.Failed() {
		t.Fatal("expected corrupt fonts to be collected as failures")
	}
	if len(summary.Failures.Failures) != 2 {
		t.Errorf("expected 2 failures, have %d", len(summary.Failures.Failures))
	}
	// the healthy font is still reported
	if !strings.Contains(out.String(), "Roman.ttf: Not a variable font") {
		t.Error("expected the batch to continue past corrupt fonts, did not")
	}
}

func TestReportMissingRoot(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "typst.fonts")
	defer teardown()
	//
	var out strings.Builder
	_, err := Report(&out, Options{Root: filepath.Join(t.TempDir(), "nowhere")})
	if err == nil {
		t.Error("expected a missing root directory to fail the run, did not")
	}
}

// --- Helpers ---------------------------------------------------------------

func writeFile(t *testing.T, root, name string, data []byte) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(root, name), data, 0644); err != nil {
		t.Fatal(err)
	}
}

// variableFontData builds a minimal variable font: a head table plus an fvar
// table with one weight axis 100…900, default 400.
func variableFontData() []byte {
	fvar := make([]byte, 0, 36)
	put16 := func(n uint16) { fvar = binary.BigEndian.AppendUint16(fvar, n) }
	putFixed := func(f float64) { fvar = binary.BigEndian.AppendUint32(fvar, uint32(int32(f*65536))) }
	put16(1)  // majorVersion
	put16(0)  // minorVersion
	put16(16) // axesArrayOffset
	put16(2)  // reserved
	put16(1)  // axisCount
	put16(20) // axisSize
	put16(0)  // instanceCount
	put16(8)  // instanceSize
	fvar = append(fvar, []byte("wght")...)
	putFixed(100)
	putFixed(400)
	putFixed(900)
	put16(0)   // flags
	put16(256) // axisNameID

	head := make([]byte, 54)
	binary.BigEndian.PutUint16(head[18:], 1000) // unitsPerEm

	buf := make([]byte, 0, 128)
	buf = binary.BigEndian.AppendUint32(buf, 0x00010000)
	buf = binary.BigEndian.AppendUint16(buf, 2)
	buf = append(buf, make([]byte, 6)...) // searchRange etc.
	offset := 12 + 2*16
	for _, entry := range []struct {
		tag  string
		size int
	}{{"fvar", len(fvar)}, {"head", len(head)}} {
		buf = append(buf, []byte(entry.tag)...)
		buf = binary.BigEndian.AppendUint32(buf, 0) // checksum, ignored
		buf = binary.BigEndian.AppendUint32(buf, uint32(offset))
		buf = binary.BigEndian.AppendUint32(buf, uint32(entry.size))
		offset += (entry.size + 3) &^ 3
	}
	buf = append(buf, fvar...)
	buf = append(buf, head...)
	return buf
}
