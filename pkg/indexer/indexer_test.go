package indexer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"archindex/pkg/icons"
)

const (
	testHead = "HEAD[{{foldername}}]\n"
	testFoot = "FOOT[{{total_files}}|{{total_size}}|{{buildtime}}]\n"
)

// emptyTable resolves everything to the inline placeholder, keeping page
// content deterministic.
func emptyTable(t *testing.T) *icons.Table {
	t.Helper()
	return icons.Load(filepath.Join(t.TempDir(), "nope.json"), t.TempDir())
}

func writeFile(t *testing.T, path string, size int) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, make([]byte, size), 0644); err != nil {
		t.Fatal(err)
	}
}

func newTestRenderer(root string, totals Totals, table *icons.Table) *Renderer {
	return &Renderer{
		Root:      root,
		Head:      testHead,
		Foot:      testFoot,
		Totals:    totals,
		BuildTime: "at 2024-01-01 00:00:00 UTC",
		Icons:     table,
	}
}

func TestComputeTotals(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.bin"), 100)
	writeFile(t, filepath.Join(root, "sub", "b.bin"), 200)
	writeFile(t, filepath.Join(root, "sub", "deep", "c.bin"), 300)
	writeFile(t, filepath.Join(root, "index.html"), 50)
	writeFile(t, filepath.Join(root, "sub", "INDEX.HTML"), 60)

	got := ComputeTotals(root)
	if got.FileCount != 3 || got.TotalBytes != 600 {
		t.Errorf("ComputeTotals = %+v, want {FileCount:3 TotalBytes:600}", got)
	}
}

func TestComputeTotalsEmptyTree(t *testing.T) {
	got := ComputeTotals(t.TempDir())
	if got.FileCount != 0 || got.TotalBytes != 0 {
		t.Errorf("ComputeTotals = %+v, want zero totals", got)
	}
}

func TestRunRendersEveryDirectory(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "zz.bin"), 100)
	writeFile(t, filepath.Join(root, "aa.bin"), 200)
	writeFile(t, filepath.Join(root, "docs", "readme.txt"), 300)
	writeFile(t, filepath.Join(root, "docs", "old", "notes.txt"), 10)

	totals := ComputeTotals(root)
	r := newTestRenderer(root, totals, emptyTable(t))
	summary := r.Run()

	if summary.Visited != 3 || summary.Written != 3 || summary.Skipped != 0 {
		t.Fatalf("summary = %+v, want 3 visited, 3 written", summary)
	}
	for _, dir := range []string{root, filepath.Join(root, "docs"), filepath.Join(root, "docs", "old")} {
		if _, err := os.Stat(filepath.Join(dir, "index.html")); err != nil {
			t.Errorf("missing index.html in %s: %v", dir, err)
		}
	}
}

func TestRootPage(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "zz.bin"), 100)
	writeFile(t, filepath.Join(root, "aa.bin"), 200)
	writeFile(t, filepath.Join(root, "docs", "readme.txt"), 300)

	r := newTestRenderer(root, ComputeTotals(root), emptyTable(t))
	r.Run()

	data, err := os.ReadFile(filepath.Join(root, "index.html"))
	if err != nil {
		t.Fatal(err)
	}
	page := string(data)

	if !strings.HasPrefix(page, "HEAD[/]") {
		t.Errorf("root page head = %q, want foldername /", page[:20])
	}
	if strings.Contains(page, `href="../"`) {
		t.Error("root page must not contain a parent-link row")
	}
	if !strings.Contains(page, `href="docs/"`) {
		t.Error("root page missing directory row for docs/")
	}
	if !strings.Contains(page, "FOOT[3|600 B|at 2024-01-01 00:00:00 UTC]") {
		t.Errorf("root page footer wrong: %q", page)
	}

	// files sorted ascending, directories listed before files
	iDocs := strings.Index(page, `href="docs/"`)
	iAA := strings.Index(page, `href="aa.bin"`)
	iZZ := strings.Index(page, `href="zz.bin"`)
	if iAA < 0 || iZZ < 0 {
		t.Fatal("file rows missing from root page")
	}
	if !(iDocs < iAA && iAA < iZZ) {
		t.Errorf("row order wrong: docs=%d aa=%d zz=%d", iDocs, iAA, iZZ)
	}
}

func TestSubdirectoryPage(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "docs", "readme.txt"), 2048)

	r := newTestRenderer(root, ComputeTotals(root), emptyTable(t))
	r.Run()

	data, err := os.ReadFile(filepath.Join(root, "docs", "index.html"))
	if err != nil {
		t.Fatal(err)
	}
	page := string(data)

	if !strings.Contains(page, `href="../"`) {
		t.Error("subdirectory page missing parent-link row")
	}
	if !strings.Contains(page, ">2.00 KB<") {
		t.Errorf("file row missing formatted size: %q", page)
	}
	// parent row comes before any other row
	if strings.Index(page, `href="../"`) > strings.Index(page, `href="readme.txt"`) {
		t.Error("parent-link row must be the first row")
	}
}

func TestIndexHTMLNeverListed(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "sub", "a.bin"), 1)
	writeFile(t, filepath.Join(root, "sub", "index.html"), 1)

	r := newTestRenderer(root, ComputeTotals(root), emptyTable(t))
	r.Run()

	data, err := os.ReadFile(filepath.Join(root, "index.html"))
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(data), "index.html") {
		t.Error("index.html must never appear as a listing row")
	}
}

func TestSkipIfExists(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.bin"), 1)
	existing := []byte("hands off")
	if err := os.WriteFile(filepath.Join(root, "index.html"), existing, 0644); err != nil {
		t.Fatal(err)
	}

	r := newTestRenderer(root, ComputeTotals(root), emptyTable(t))
	summary := r.Run()

	if summary.Written != 0 || summary.Skipped != 1 {
		t.Errorf("summary = %+v, want 0 written, 1 skipped", summary)
	}
	data, err := os.ReadFile(filepath.Join(root, "index.html"))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != string(existing) {
		t.Errorf("existing index.html was modified: %q", data)
	}
}

func TestSecondRunIsNoOp(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "sub", "a.bin"), 1)

	r := newTestRenderer(root, ComputeTotals(root), emptyTable(t))
	r.Run()

	first, err := os.ReadFile(filepath.Join(root, "sub", "index.html"))
	if err != nil {
		t.Fatal(err)
	}

	// a second run with different totals must not touch existing pages
	r2 := newTestRenderer(root, Totals{FileCount: 99, TotalBytes: 9999}, emptyTable(t))
	summary := r2.Run()
	if summary.Written != 0 {
		t.Errorf("second run wrote %d pages, want 0", summary.Written)
	}

	second, err := os.ReadFile(filepath.Join(root, "sub", "index.html"))
	if err != nil {
		t.Fatal(err)
	}
	if string(first) != string(second) {
		t.Error("second run changed an existing page")
	}
}

func TestFootPlaceholderVariants(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.bin"), 100)

	r := newTestRenderer(root, ComputeTotals(root), emptyTable(t))
	r.Foot = "{{totalfiles}}/{{totalsize}}/{{buildtime}}"
	r.Run()

	data, err := os.ReadFile(filepath.Join(root, "index.html"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "1/100 B/at 2024-01-01 00:00:00 UTC") {
		t.Errorf("compact placeholder variant not substituted: %q", data)
	}
}

func TestDirectoryRowsShowNoMetadata(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "docs", "readme.txt"), 1)

	r := newTestRenderer(root, ComputeTotals(root), emptyTable(t))
	r.Run()

	data, err := os.ReadFile(filepath.Join(root, "index.html"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `>docs/</a></th><td>-</td><td>-</td></tr>`) {
		t.Errorf("directory row must show - for size and mtime: %q", data)
	}
}
