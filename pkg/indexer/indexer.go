package indexer

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"archindex/pkg/files"
	"archindex/pkg/icons"
	"archindex/pkg/logger"
)

// Totals holds the aggregate file count and byte size for the whole tree,
// excluding generated index files. Computed once per run and embedded
// unchanged into every page footer.
type Totals struct {
	FileCount  int
	TotalBytes int64
}

// Summary reports what a run did, for the completion log line.
type Summary struct {
	Visited int
	Written int
	Skipped int
}

// ComputeTotals walks the tree under root counting every regular file that is
// not itself a generated index.html. Stat failures skip the file; walk errors
// skip the entry. The walk never aborts.
func ComputeTotals(root string) Totals {
	var t Totals
	filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			logger.Warn("Totals walk error at %s: %v", path, err)
			return nil
		}
		if d.IsDir() || !d.Type().IsRegular() {
			return nil
		}
		if strings.EqualFold(d.Name(), "index.html") {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			logger.Warn("Could not stat %s: %v, excluded from totals", path, err)
			return nil
		}
		t.FileCount++
		t.TotalBytes += info.Size()
		return nil
	})
	return t
}

// Renderer generates one index.html per directory. All fields are fixed for
// the lifetime of a run; the same Totals and BuildTime go into every footer.
type Renderer struct {
	Root      string
	Head      string
	Foot      string
	Totals    Totals
	BuildTime string
	Icons     *icons.Table
}

const rowOpen = `<tr class="bg-gray-800 border-b border-gray-600 hover:bg-gray-700"><th scope="row" class="py-2 px-2 lg:px-6 font-medium text-gray-300 flex align-middle">`

// row emits one listing row. Markup matches the pages already deployed from
// this generator, so it stays hardcoded rather than templated.
func row(b *strings.Builder, iconURI, href, label, size, mtime string) {
	b.WriteString(rowOpen)
	b.WriteString(`<img style="max-width:23px;margin-right:5px" src="`)
	b.WriteString(iconURI)
	b.WriteString(`"><a class="my-auto text-blue-400" href="`)
	b.WriteString(href)
	b.WriteString(`">`)
	b.WriteString(label)
	b.WriteString(`</a></th><td>`)
	b.WriteString(size)
	b.WriteString(`</td><td>`)
	b.WriteString(mtime)
	b.WriteString("</td></tr>\n")
}

// displayName returns the folder name substituted into the head template.
// The traversal root always renders as "/".
func (r *Renderer) displayName(dir string) string {
	if filepath.Clean(dir) == filepath.Clean(r.Root) {
		return "/"
	}
	return filepath.ToSlash(filepath.Clean(dir))
}

// RenderDirectory writes dir/index.html unless one already exists. The page
// is head + parent row + directory rows + file rows + foot. Returns whether a
// page was written; every failure short of that is swallowed.
func (r *Renderer) RenderDirectory(dir string) bool {
	indexPath := filepath.Join(dir, "index.html")
	if _, err := os.Stat(indexPath); err == nil {
		logger.Debug("Skipping %s: index.html already exists", dir)
		return false
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		logger.Warn("Could not list %s: %v, generating empty listing", dir, err)
		entries = nil
	}

	var dirs, names []string
	for _, entry := range entries {
		if entry.IsDir() {
			dirs = append(dirs, entry.Name())
		} else if !strings.EqualFold(entry.Name(), "index.html") {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(dirs)
	sort.Strings(names)

	var b strings.Builder
	b.WriteString(strings.ReplaceAll(r.Head, "{{foldername}}", r.displayName(dir)))

	if filepath.Clean(dir) != filepath.Clean(r.Root) {
		row(&b, r.Icons.DataURI(icons.FolderHome), "../", "../", "-", "-")
	}

	for _, d := range dirs {
		row(&b, r.Icons.DataURI(icons.Folder), d+"/", d+"/", "-", "-")
	}

	for _, name := range names {
		path := filepath.Join(dir, name)
		size := "-"
		if info, err := os.Stat(path); err == nil {
			size = files.FormatSize(info.Size())
		}
		row(&b, r.Icons.DataURI(name), name, name, size, files.FormatModTime(path))
	}

	b.WriteString(r.renderFoot())

	if err := os.WriteFile(indexPath, []byte(b.String()), 0644); err != nil {
		logger.Warn("Could not write %s: %v, continuing", indexPath, err)
		return false
	}
	logger.Debug("Wrote %s (%d directories, %d files)", indexPath, len(dirs), len(names))
	return true
}

// renderFoot substitutes the run-wide totals and build time into the foot
// template. Both placeholder spellings seen in deployed template sets are
// replaced, so either template variant works unmodified.
func (r *Renderer) renderFoot() string {
	count := strconv.Itoa(r.Totals.FileCount)
	size := files.FormatSize(r.Totals.TotalBytes)
	return strings.NewReplacer(
		"{{total_files}}", count,
		"{{totalfiles}}", count,
		"{{total_size}}", size,
		"{{totalsize}}", size,
		"{{buildtime}}", r.BuildTime,
	).Replace(r.Foot)
}

// Run visits every directory under Root exactly once and renders each one.
// Directory read errors are logged and the subtree is still attempted where
// reachable; the run itself always completes.
func (r *Renderer) Run() Summary {
	var s Summary
	filepath.WalkDir(r.Root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			logger.Warn("Walk error at %s: %v", path, err)
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		s.Visited++
		if r.RenderDirectory(path) {
			s.Written++
		} else {
			s.Skipped++
		}
		return nil
	})
	return s
}
