package service

import "strings"

// Normalize produces the canonical form used everywhere words and topics
// are compared: lowercase with surrounding whitespace removed. "Polite",
// "polite" and " polite " are the same word.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
