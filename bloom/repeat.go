// Package bloom detects page furniture repeated across PDF pages using
// Bloom filters.
package bloom

import (
	"strings"
	"unicode"

	"github.com/bits-and-blooms/bloom/v3"
	"github.com/fwojciec/wetsplit"
)

var _ wetsplit.RepeatDetector = (*RepeatDetector)(nil)

// RepeatDetector remembers the lines of earlier pages in a Bloom filter.
// Lines are compared case-insensitively with digits masked, so running
// footers that carry a page number still match.
type RepeatDetector struct {
	f       *bloom.BloomFilter
	pending []string
}

// NewRepeatDetector creates a detector sized for n expected lines with
// the given false positive rate.
func NewRepeatDetector(n uint, fpRate float64) *RepeatDetector {
	return &RepeatDetector{f: bloom.NewWithEstimates(n, fpRate)}
}

// Seen returns true if the line might have occurred on an earlier page.
// False positives are possible; false negatives are not.
func (d *RepeatDetector) Seen(line string) bool {
	k := Key(line)
	return k != "" && d.f.TestString(k)
}

// Add queues a line of the current page.
func (d *RepeatDetector) Add(line string) {
	if k := Key(line); k != "" {
		d.pending = append(d.pending, k)
	}
}

// EndPage adds the queued lines to the filter.
func (d *RepeatDetector) EndPage() {
	for _, k := range d.pending {
		d.f.AddString(k)
	}
	d.pending = d.pending[:0]
}

// EstimatedCount returns the approximate number of distinct lines seen.
func (d *RepeatDetector) EstimatedCount() uint {
	return uint(d.f.ApproximatedSize())
}

// Key normalizes a line for comparison.
func Key(line string) string {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return ""
	}
	return strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return '#'
		}
		return unicode.ToLower(r)
	}, strings.Join(fields, " "))
}
