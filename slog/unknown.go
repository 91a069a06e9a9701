package slog

import (
	"log/slog"

	"github.com/fwojciec/wetsplit/etree"
)

// ReportUnknownTags logs tags the text flattener had no rule for.
func ReportUnknownTags(logger *slog.Logger, extractor string, tags []etree.UnknownTag) {
	for _, t := range tags {
		logger.Warn("unknown tag in text flattening",
			"extractor", extractor,
			"tag", t.Tag,
			"count", t.Count,
		)
	}
}

// UnknownTagReporter returns a callback for the extractors' OnUnknown
// option that logs through logger.
func UnknownTagReporter(logger *slog.Logger) func(string, []etree.UnknownTag) {
	return func(extractor string, tags []etree.UnknownTag) {
		ReportUnknownTags(logger, extractor, tags)
	}
}
