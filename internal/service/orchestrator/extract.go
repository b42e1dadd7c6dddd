package orchestrator

import (
	"fmt"
	"regexp"
)

var emailPattern = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)

// OrderNumberPattern builds the pattern matching a digit run of at least
// minDigits, with an optional leading '#'.
func OrderNumberPattern(minDigits int) *regexp.Regexp {
	return regexp.MustCompile(fmt.Sprintf(`#?(\d{%d,})`, minDigits))
}

// ExtractOrderNumber returns the first order-number candidate in the
// text. Extraction is total: no match is ("", false), never a panic.
func ExtractOrderNumber(pattern *regexp.Regexp, text string) (string, bool) {
	match := pattern.FindStringSubmatch(text)
	if match == nil {
		return "", false
	}
	return match[1], true
}

// ExtractEmail returns the first email address in the text.
func ExtractEmail(text string) (string, bool) {
	match := emailPattern.FindString(text)
	if match == "" {
		return "", false
	}
	return match, true
}
