package sqlite

import (
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/wetsplit"
)

// parseRFC3339 parses an RFC3339 formatted timestamp string.
// Returns an error if parsing fails with a descriptive message including the field name.
func parseRFC3339(value, fieldName string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse %s: %w", fieldName, err)
	}
	return t, nil
}

// appendPagination appends LIMIT and OFFSET clauses to a query builder if values are > 0.
// SQLite needs a LIMIT before OFFSET; -1 means no limit.
func appendPagination(query *strings.Builder, args *[]any, limit, offset int) {
	if limit > 0 {
		query.WriteString(" LIMIT ?")
		*args = append(*args, limit)
	} else if offset > 0 {
		query.WriteString(" LIMIT -1")
	}
	if offset > 0 {
		query.WriteString(" OFFSET ?")
		*args = append(*args, offset)
	}
}

// hashFragments computes xxHash over the fragment texts and returns a
// hex string. Used when a document arrives without a content hash.
func hashFragments(frags []wetsplit.Fragment) string {
	d := xxhash.New()
	for _, f := range frags {
		_, _ = d.WriteString(f.Text)
		_, _ = d.Write([]byte{0})
	}
	return hex.EncodeToString(d.Sum(nil))
}
