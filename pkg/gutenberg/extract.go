package gutenberg

import (
	"regexp"
	"strings"
)

// MaxExcerptLength bounds the amount of text handed to summary generation.
const MaxExcerptLength = 10000

// Gutenberg plain-text files wrap the body in boundary markers such as
// "*** START OF THE PROJECT GUTENBERG EBOOK MOBY DICK ***". The marker
// body between the asterisk runs is not validated beyond the keyword.
var (
	startMarkerRe = regexp.MustCompile(`(?i)\*\*\* START [^*]*\*\*\*`)
	endMarkerRe   = regexp.MustCompile(`(?i)\*\*\* END [^*]*\*\*\*`)
)

// Extract returns the canonical body text of a raw archive file, capped at
// MaxExcerptLength and trimmed. When both boundary markers are present in
// order, the result starts immediately after the start marker and stops at
// the end marker. Missing or reversed markers fall back to the head of the
// raw input rather than failing.
func Extract(raw string) string {
	start := startMarkerRe.FindStringIndex(raw)
	end := endMarkerRe.FindStringIndex(raw)

	if start != nil && end != nil && start[0] < end[0] {
		from := start[1]
		// The end marker can begin inside the start marker's trailing
		// asterisks when the file is malformed; clamp instead of slicing
		// backwards.
		to := max(min(from+MaxExcerptLength, end[0]), from)
		return strings.TrimSpace(raw[from:to])
	}
	return strings.TrimSpace(raw[:min(MaxExcerptLength, len(raw))])
}
