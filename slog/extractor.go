package slog

import (
	"log/slog"
	"time"

	"github.com/mlipska/farmsub"
)

// Ensure LoggingExtractor implements farmsub.Extractor.
var _ farmsub.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with structured logging.
type LoggingExtractor struct {
	next   farmsub.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next farmsub.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the operation.
func (e *LoggingExtractor) Extract(page string) (block string, err error) {
	defer func(begin time.Time) {
		e.logger.Info("extract",
			"page_bytes", len(page),
			"block_bytes", len(block),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(page)
}
