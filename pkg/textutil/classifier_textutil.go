// Package textutil normalizes raw email text before classification.
package textutil

import (
	"strings"
	"unicode/utf8"
)

// MaxTextLen is the maximum normalized length passed to the classifier and
// the model backends. Longer texts are truncated with a marker.
const MaxTextLen = 512

// Clean collapses all whitespace runs (including newlines from file
// extraction) into single spaces and trims the result.
func Clean(text string) string {
	if text == "" {
		return ""
	}
	return strings.Join(strings.Fields(text), " ")
}

// Truncate cuts the text at maxLen bytes and appends a truncation marker.
// Texts at or below the limit pass through untouched.
func Truncate(text string, maxLen int) string {
	if len(text) <= maxLen {
		return text
	}
	// Back up to a rune boundary so accented characters are never split.
	cut := maxLen
	for cut > 0 && !utf8.RuneStart(text[cut]) {
		cut--
	}
	return text[:cut] + "..."
}

// Normalize applies Clean followed by truncation at MaxTextLen.
func Normalize(text string) string {
	return Truncate(Clean(text), MaxTextLen)
}
