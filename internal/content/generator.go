package content

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"shownotes/internal/config"
)

// Chapter is one entry of the episode chapter list.
type Chapter struct {
	Start int    `json:"start"`
	Title string `json:"title"`
}

// Generator produces summaries, chapters and keywords under the
// configured limits.
type Generator struct {
	summaryMaxWords int
	maxChapters     int
	chapterInterval int
	maxKeywords     int
}

// NewGenerator builds a Generator from configuration.
func NewGenerator(cfg *config.Config) *Generator {
	summaryMaxWords := cfg.Content.SummaryMaxWords
	if summaryMaxWords <= 0 {
		summaryMaxWords = 150
	}
	maxChapters := cfg.Content.MaxChapters
	if maxChapters <= 0 {
		maxChapters = 25
	}
	chapterInterval := cfg.Content.ChapterIntervalSeconds
	if chapterInterval <= 0 {
		chapterInterval = 240
	}
	maxKeywords := cfg.Content.MaxKeywords
	if maxKeywords <= 0 {
		maxKeywords = 15
	}
	return &Generator{
		summaryMaxWords: summaryMaxWords,
		maxChapters:     maxChapters,
		chapterInterval: chapterInterval,
		maxKeywords:     maxKeywords,
	}
}

// FormatTimestamp renders seconds as HH:MM:SS, or MM:SS under an hour.
func FormatTimestamp(seconds int) string {
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	if h > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", m, s)
}

// MainTopic derives the episode's main topic from its title: the first
// separator found splits the title and the longer side wins. Titles
// without separators are the topic themselves.
func MainTopic(title string) string {
	for _, sep := range []string{"|", " - ", ":"} {
		if !strings.Contains(title, sep) {
			continue
		}
		parts := strings.Split(title, sep)
		topic := parts[0]
		best := utf8.RuneCountInString(strings.TrimSpace(parts[0]))
		for _, part := range parts[1:] {
			if n := utf8.RuneCountInString(strings.TrimSpace(part)); n > best {
				topic = part
				best = n
			}
		}
		return strings.TrimSpace(topic)
	}
	return strings.TrimSpace(title)
}
