package scrape

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// HashPage computes a hash of the raw page content using xxhash.
func HashPage(page string) string {
	h := xxhash.Sum64String(page)
	return fmt.Sprintf("%x", h)
}

// FormatBytes formats bytes in human-readable form.
func FormatBytes(bytes int) string {
	const (
		KB = 1024
		MB = KB * 1024
	)
	switch {
	case bytes >= MB:
		return fmt.Sprintf("%.1f MB", float64(bytes)/float64(MB))
	case bytes >= KB:
		return fmt.Sprintf("%.1f KB", float64(bytes)/float64(KB))
	default:
		return fmt.Sprintf("%d B", bytes)
	}
}
