package textutil

import "strings"

// ContainsFold reports whether needle occurs within haystack under
// case-insensitive comparison. Empty needles never match.
func ContainsFold(haystack, needle string) bool {
	if needle == "" {
		return false
	}
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

// CollapseSpaces replaces every run of whitespace with a single space and
// trims the result.
func CollapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// TruncateWords returns the first n whitespace-separated words of s joined by
// single spaces. Values of n at or above the word count return every word.
func TruncateWords(s string, n int) string {
	words := strings.Fields(s)
	if n >= 0 && len(words) > n {
		words = words[:n]
	}
	return strings.Join(words, " ")
}

// WordCount reports the number of whitespace-separated words in s.
func WordCount(s string) int {
	return len(strings.Fields(s))
}
