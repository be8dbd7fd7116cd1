package scrape_test

import (
	"testing"

	"github.com/mlipska/farmsub/scrape"
	"github.com/stretchr/testify/assert"
)

func TestHashPage(t *testing.T) {
	t.Parallel()

	t.Run("returns consistent hash for same content", func(t *testing.T) {
		t.Parallel()
		page := "<html>same page</html>"
		assert.Equal(t, scrape.HashPage(page), scrape.HashPage(page))
	})

	t.Run("returns different hashes for different content", func(t *testing.T) {
		t.Parallel()
		assert.NotEqual(t, scrape.HashPage("page a"), scrape.HashPage("page b"))
	})

	t.Run("returns hex string", func(t *testing.T) {
		t.Parallel()
		assert.Regexp(t, `^[0-9a-f]+$`, scrape.HashPage("test"))
	})
}

func TestFormatBytes(t *testing.T) {
	t.Parallel()

	t.Run("formats bytes as B", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "512 B", scrape.FormatBytes(512))
	})

	t.Run("formats kilobytes as KB", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "1.5 KB", scrape.FormatBytes(1536))
	})

	t.Run("formats megabytes as MB", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "2.0 MB", scrape.FormatBytes(2*1024*1024))
	})
}
