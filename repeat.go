package wetsplit

// RepeatDetector recognizes text that recurs page after page, such as
// running headers and footers.
type RepeatDetector interface {
	// Seen reports whether line occurred on an earlier page.
	Seen(line string) bool
	// Add records line for the current page.
	Add(line string)
	// EndPage makes the lines added so far visible to Seen.
	EndPage()
}
