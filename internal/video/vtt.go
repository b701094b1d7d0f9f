package video

import (
	"regexp"
	"strings"
)

var inlineTagPattern = regexp.MustCompile(`<[^>]+>`)

// parseVTT flattens a WebVTT document into plain text. Headers, cue
// timings, bare numeric cue ids and inline tags are dropped, and
// consecutive duplicate lines (rolling captions) are collapsed.
func parseVTT(data string) string {
	var lines []string
	prev := ""
	for _, raw := range strings.Split(data, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" ||
			strings.HasPrefix(line, "WEBVTT") ||
			strings.HasPrefix(line, "Kind:") ||
			strings.HasPrefix(line, "Language:") ||
			strings.Contains(line, "-->") ||
			isAllDigits(line) {
			continue
		}
		clean := inlineTagPattern.ReplaceAllString(line, "")
		if clean != "" && clean != prev {
			lines = append(lines, clean)
			prev = clean
		}
	}
	return strings.Join(lines, " ")
}

func isAllDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}
