package roster

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ocrSpelling looks for the candidate in the raw OCR text, line by
// line, and returns the span of the first hit with its on-screen
// casing. OCR capitalization tends to be the official one (lower
// thirds, name cards), so it beats the extracted casing. Returns ""
// when no line contains the name.
func ocrSpelling(name, ocrText string) string {
	nameRunes := []rune(name)
	if len(nameRunes) == 0 {
		return ""
	}
	loweredName := lowerRunes(nameRunes)
	for _, line := range strings.Split(ocrText, "\n") {
		line = strings.TrimRight(line, "\r")
		lineRunes := []rune(line)
		if len(lineRunes) < len(nameRunes) {
			continue
		}
		loweredLine := lowerRunes(lineRunes)
		byteIdx := strings.Index(loweredLine, loweredName)
		if byteIdx < 0 {
			continue
		}
		runeIdx := utf8.RuneCountInString(loweredLine[:byteIdx])
		return string(lineRunes[runeIdx : runeIdx+len(nameRunes)])
	}
	return ""
}

// lowerRunes lowercases rune by rune so positions stay aligned with
// the original rune slice.
func lowerRunes(runes []rune) string {
	lowered := make([]rune, len(runes))
	for i, r := range runes {
		lowered[i] = unicode.ToLower(r)
	}
	return string(lowered)
}

// findNameInSnippet returns how the snippet spells the name, or ""
// when the snippet never mentions it verbatim.
func findNameInSnippet(name, snippet string) string {
	pattern, err := regexp.Compile("(?i)" + regexp.QuoteMeta(name))
	if err != nil {
		return ""
	}
	return pattern.FindString(snippet)
}
