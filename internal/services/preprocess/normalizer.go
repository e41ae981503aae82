// Package preprocess cleans and filters raw articles ahead of analysis.
package preprocess

import (
	"regexp"
	"strings"
)

var (
	// truncationMarker matches the provider's trailing truncation notice,
	// e.g. "... [+1234 chars]", which means the content was cut off there.
	truncationMarker = regexp.MustCompile(`\s*\[\+\d+\s*chars\]\s*$`)

	// whitespaceRun matches any run of whitespace including newlines and tabs.
	whitespaceRun = regexp.MustCompile(`\s+`)
)

// CleanContent normalizes a single piece of article text: the truncation
// marker is removed, whitespace runs collapse to a single space, and
// leading/trailing whitespace is trimmed. The operation is idempotent.
func CleanContent(text string) string {
	text = truncationMarker.ReplaceAllString(text, "")
	text = whitespaceRun.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}
