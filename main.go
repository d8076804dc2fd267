package main

import (
	"os"
	"time"

	"archindex/pkg/config"
	"archindex/pkg/diskstat"
	"archindex/pkg/env"
	"archindex/pkg/files"
	"archindex/pkg/icons"
	"archindex/pkg/indexer"
	"archindex/pkg/logger"
)

// readTemplate loads a template fragment, degrading to an empty string on
// failure. Pages still get generated, just without the missing half.
func readTemplate(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		logger.Warn("Could not read template %s: %v, using empty fragment", path, err)
		return ""
	}
	return string(data)
}

func main() {
	// No .env is the common case; defaults cover everything.
	_ = env.LoadEnv()
	logger.Init()
	defer logger.Close()

	root := "."
	if len(os.Args) > 1 {
		root = os.Args[1]
	}

	info, err := os.Stat(root)
	if err != nil {
		logger.Fatal("Target directory %s is not accessible: %v", root, err)
	}
	if !info.IsDir() {
		logger.Fatal("Target %s is not a directory", root)
	}

	if total, free, err := diskstat.Usage(root); err == nil {
		logger.Info("Volume holding %s: %s free of %s", root, files.FormatSize(free), files.FormatSize(total))
	} else {
		logger.Debug("Disk usage unavailable for %s: %v", root, err)
	}

	table := icons.Load(config.GetIconsJSONPath(), config.GetIconsDir())
	head := readTemplate(config.GetHeadTemplatePath())
	foot := readTemplate(config.GetFootTemplatePath())

	totals := indexer.ComputeTotals(root)
	logger.Info("Archive totals: %d files, %s", totals.FileCount, files.FormatSize(totals.TotalBytes))

	r := &indexer.Renderer{
		Root:      root,
		Head:      head,
		Foot:      foot,
		Totals:    totals,
		BuildTime: "at " + files.FormatTime(time.Now()),
		Icons:     table,
	}

	summary := r.Run()
	logger.Info("Indexed %d directories: %d written, %d skipped", summary.Visited, summary.Written, summary.Skipped)
}
