package files

import (
	"fmt"
	"os"
	"time"
)

// FormatSize formats a byte count for display. Thresholds are binary
// (1024-based) and the unit suffix stops at GB. Fractions use %.2f, so
// rounding is Go's round-half-to-even; 1024*1024-1 bytes renders as
// "1024.00 KB" rather than promoting to MB.
func FormatSize(bytes int64) string {
	if bytes < 1024 {
		return fmt.Sprintf("%d B", bytes)
	}
	kb := float64(bytes) / 1024.0
	if kb < 1024 {
		return fmt.Sprintf("%.2f KB", kb)
	}
	mb := kb / 1024.0
	if mb < 1024 {
		return fmt.Sprintf("%.2f MB", mb)
	}
	return fmt.Sprintf("%.2f GB", mb/1024.0)
}

// FormatTime renders a timestamp in the fixed UTC layout used across all
// generated pages, including the footer build time.
func FormatTime(t time.Time) string {
	return t.UTC().Format("2006-01-02 15:04:05") + " UTC"
}

// FormatModTime returns the file's modification time as
// "YYYY-MM-DD HH:MM:SS UTC", or "-" if the file cannot be stat'd.
func FormatModTime(path string) string {
	info, err := os.Stat(path)
	if err != nil {
		return "-"
	}
	return FormatTime(info.ModTime())
}
