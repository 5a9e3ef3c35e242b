package helpers

import "strings"

// CollapseWhitespace joins all whitespace-separated fragments of text with
// single spaces, approximating the visible text of an HTML node.
func CollapseWhitespace(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// TruncateRunes shortens text to at most n runes.
func TruncateRunes(text string, n int) string {
	runes := []rune(text)
	if len(runes) <= n {
		return text
	}
	return string(runes[:n])
}
