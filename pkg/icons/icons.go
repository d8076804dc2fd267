package icons

import (
	"encoding/base64"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"archindex/pkg/logger"
)

// Sentinel names resolved without consulting the rule table. The parent-link
// row uses FolderHome; directory rows use Folder.
const (
	Folder     = "o.folder"
	FolderHome = "o.folder-home"
)

// unknownIcon is the table-miss fallback image name.
const unknownIcon = "unknown.png"

// PlaceholderURI is a 1x1 transparent PNG, inlined so that a missing or
// unreadable icon file can never abort a run.
const PlaceholderURI = "data:image/png;base64, iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAQAAAC1HAwCAAAAC0lEQVR4nGNgYAAAAAMAASsJTYQAAAAASUVORK5CYII="

// Rule maps a set of file extensions to an icon base name. Rules are matched
// in table order; the first rule containing the extension wins.
type Rule struct {
	Extensions []string `json:"extension"`
	Icon       string   `json:"icon"`
}

// Table is the ordered icon rule set plus the directory its images live in.
// It is built once at startup and read-only afterwards.
type Table struct {
	rules   []Rule
	iconDir string
}

// Load reads the rule table from a JSON file. Any failure (missing file, bad
// JSON) yields an empty table, which resolves everything to the unknown icon.
func Load(jsonPath, iconDir string) *Table {
	t := &Table{iconDir: iconDir}

	data, err := os.ReadFile(jsonPath)
	if err != nil {
		logger.Warn("Could not read icon table %s: %v, all files get the unknown icon", jsonPath, err)
		return t
	}
	if err := json.Unmarshal(data, &t.rules); err != nil {
		logger.Warn("Could not parse icon table %s: %v, all files get the unknown icon", jsonPath, err)
		t.rules = nil
		return t
	}

	logger.Debug("Loaded %d icon rules from %s", len(t.rules), jsonPath)
	return t
}

// Len returns the number of loaded rules.
func (t *Table) Len() int {
	return len(t.rules)
}

// extOf derives the match key: everything after the last dot, lowercased and
// keeping the dot. A name without a dot has no extension and never matches.
func extOf(filename string) string {
	idx := strings.LastIndex(filename, ".")
	if idx < 0 {
		return ""
	}
	return strings.ToLower(filename[idx:])
}

// ResolveName returns the icon image filename for the given entry name.
// Sentinel names bypass the table entirely.
func (t *Table) ResolveName(filename string) string {
	if filename == Folder || filename == FolderHome {
		return filename + ".png"
	}

	ext := extOf(filename)
	if ext == "" {
		return unknownIcon
	}
	for _, rule := range t.rules {
		for _, e := range rule.Extensions {
			if strings.ToLower(e) == ext {
				return rule.Icon + ".png"
			}
		}
	}
	return unknownIcon
}

// DataURI resolves the icon for filename, reads its image and returns it as
// an inline base64 PNG URI. The single space after the comma is load-bearing:
// existing deployments diff generated pages byte-for-byte.
func (t *Table) DataURI(filename string) string {
	iconPath := filepath.Join(t.iconDir, t.ResolveName(filename))

	data, err := os.ReadFile(iconPath)
	if err != nil {
		logger.Debug("Icon %s unreadable: %v, using placeholder", iconPath, err)
		return PlaceholderURI
	}
	return "data:image/png;base64, " + base64.StdEncoding.EncodeToString(data)
}
