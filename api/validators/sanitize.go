package validators

import "strings"

// SanitizeString trims surrounding whitespace and caps the length in runes.
// HTML content is passed through untouched.
func SanitizeString(input string, maxLen int) string {
	trimmed := strings.TrimSpace(input)
	if maxLen > 0 {
		if runes := []rune(trimmed); len(runes) > maxLen {
			return string(runes[:maxLen])
		}
	}
	return trimmed
}
