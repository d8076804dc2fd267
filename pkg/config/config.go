package config

import (
	"path/filepath"

	"archindex/pkg/env"
)

// Defaults mirror the layout the generator ships with: a template directory
// holding head.html/foot.html, an icons.json table, and a png directory of
// icon images, all relative to the working directory.
const (
	defaultTemplateDir = "template"
	defaultIconsJSON   = "icons.json"
	defaultIconsDir    = "png"
)

// GetTemplateDir returns the directory containing head.html and foot.html.
func GetTemplateDir() string {
	return env.GetString("INDEX_TEMPLATE_DIR", defaultTemplateDir)
}

// GetHeadTemplatePath returns the path of the head template fragment.
func GetHeadTemplatePath() string {
	return filepath.Join(GetTemplateDir(), "head.html")
}

// GetFootTemplatePath returns the path of the foot template fragment.
func GetFootTemplatePath() string {
	return filepath.Join(GetTemplateDir(), "foot.html")
}

// GetIconsJSONPath returns the path of the icon table file.
func GetIconsJSONPath() string {
	return env.GetString("INDEX_ICONS_JSON", defaultIconsJSON)
}

// GetIconsDir returns the directory holding <icon-name>.png images.
func GetIconsDir() string {
	return env.GetString("INDEX_ICONS_DIR", defaultIconsDir)
}
