package content

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

const maxTopicHints = 20

var topicHintPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:vamos falar|vamos conversar) (?:sobre|de) ([^,.!?]{5,40})`),
	regexp.MustCompile(`(?i)(?:o tema|o assunto|o tópico) (?:é|de hoje é) ([^,.!?]{5,40})`),
	regexp.MustCompile(`(?i)(?:primeiro ponto|segundo ponto|terceiro ponto)[:\s]+([^,.!?]{5,40})`),
	regexp.MustCompile(`(?i)(?:a questão|o ponto) (?:é|aqui é) ([^,.!?]{5,40})`),
}

// BuildChapters returns the episode chapter list. Chapters shipped in
// the video metadata win as-is, capped at the configured maximum. With
// no metadata chapters the episode is segmented at fixed intervals,
// titled from transcript topic hints while they last.
func (g *Generator) BuildChapters(existing []Chapter, transcript string, duration int) []Chapter {
	if len(existing) > 0 {
		if len(existing) > g.maxChapters {
			existing = existing[:g.maxChapters]
		}
		return existing
	}
	if duration <= 0 {
		return []Chapter{{Start: 0, Title: "Introdução"}}
	}

	chapters := []Chapter{{Start: 0, Title: "Introdução"}}
	hints := topicHints(transcript, maxTopicHints)
	hintIdx := 0
	for current := g.chapterInterval; current < duration && len(chapters) < g.maxChapters; current += g.chapterInterval {
		var title string
		if hintIdx < len(hints) {
			title = hints[hintIdx]
			hintIdx++
		} else {
			title = fmt.Sprintf("Parte %d", len(chapters)+1)
		}
		chapters = append(chapters, Chapter{Start: current, Title: title})
	}
	return chapters
}

// topicHints scans the transcript for phrases that introduce a topic
// and returns them as chapter-title candidates.
func topicHints(transcript string, maxHints int) []string {
	if transcript == "" {
		return nil
	}
	var hints []string
	seen := make(map[string]struct{})
	for _, pattern := range topicHintPatterns {
		for _, m := range pattern.FindAllStringSubmatch(transcript, -1) {
			hint := capitalizeFirst(strings.TrimSpace(m[1]))
			if hint == "" {
				continue
			}
			if _, dup := seen[hint]; dup {
				continue
			}
			seen[hint] = struct{}{}
			hints = append(hints, hint)
			if len(hints) >= maxHints {
				return hints
			}
		}
	}
	return hints
}

func capitalizeFirst(s string) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return ""
	}
	runes[0] = unicode.ToUpper(runes[0])
	for i := 1; i < len(runes); i++ {
		runes[i] = unicode.ToLower(runes[i])
	}
	return string(runes)
}
