// Package pageid normalizes operator-supplied Notion page references into a
// bare page id. The input may be a full page URL, a markdown-style link, or
// an already-bare id.
package pageid

import "strings"

// Extract resolves a raw URL-or-id string to the page id, in order:
// strip square brackets, truncate at the first "(" (a markdown link target),
// take the last "/" path segment, drop any query string, and take the final
// hyphen-delimited token. Returns "" for empty input. The result is not
// validated; a malformed input yields a malformed id that only surfaces as a
// downstream API failure.
func Extract(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}

	clean := strings.NewReplacer("[", "", "]", "").Replace(raw)
	if i := strings.Index(clean, "("); i >= 0 {
		clean = clean[:i]
	}

	segments := strings.Split(clean, "/")
	last := segments[len(segments)-1]
	last = strings.SplitN(last, "?", 2)[0]

	tokens := strings.Split(last, "-")
	return tokens[len(tokens)-1]
}
