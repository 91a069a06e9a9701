package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/wetsplit"
)

// Ensure LoggingOCR implements wetsplit.OCR.
var _ wetsplit.OCR = (*LoggingOCR)(nil)

// LoggingOCR wraps an OCR with debug logging per recognized image.
type LoggingOCR struct {
	next   wetsplit.OCR
	logger *slog.Logger
}

// NewLoggingOCR creates a new LoggingOCR.
func NewLoggingOCR(next wetsplit.OCR, logger *slog.Logger) *LoggingOCR {
	return &LoggingOCR{next: next, logger: logger}
}

// Recognize delegates to the wrapped OCR and logs the result.
func (o *LoggingOCR) Recognize(ctx context.Context, img wetsplit.PageImage) (string, error) {
	begin := time.Now()
	text, err := o.next.Recognize(ctx, img)
	if err != nil {
		o.logger.Warn("ocr failed",
			"page", img.PageNr,
			"type", img.FileType,
			"error", err,
			"duration", time.Since(begin),
		)
		return "", err
	}
	o.logger.Debug("ocr",
		"page", img.PageNr,
		"type", img.FileType,
		"chars", len(text),
		"duration", time.Since(begin),
	)
	return text, nil
}
