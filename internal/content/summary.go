package content

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

var sentenceSplitPattern = regexp.MustCompile(`[.!?\n]+`)

// Summarize builds an extractive summary from the episode text
// surfaces, capped at the configured word budget. Sentences are ranked
// by title-word overlap, participant mentions, position and length;
// the top ranks are emitted in rank order until the budget runs out.
func (g *Generator) Summarize(title, description, transcript string, names []string) string {
	source := title + ". " + description + ". " + transcript
	sentences := splitSentences(source)
	if len(sentences) == 0 {
		return fallbackSummary(title, names)
	}

	scored := scoreSentences(sentences, title, names)
	var parts []string
	wordCount := 0
	for _, s := range scored {
		words := len(strings.Fields(s.text))
		if wordCount+words > g.summaryMaxWords {
			break
		}
		parts = append(parts, s.text)
		wordCount += words
	}
	if len(parts) == 0 {
		return fallbackSummary(title, names)
	}
	return strings.Join(parts, " ")
}

func fallbackSummary(title string, names []string) string {
	list := strings.Join(names, ", ")
	if list == "" {
		list = "os participantes"
	}
	return fmt.Sprintf("Neste episódio, %s discutem %s.", list, title)
}

// splitSentences keeps only sentences of at least five words; shorter
// fragments carry too little signal to summarize from.
func splitSentences(text string) []string {
	var sentences []string
	for _, raw := range sentenceSplitPattern.Split(text, -1) {
		s := strings.TrimSpace(raw)
		if len(strings.Fields(s)) >= 5 {
			sentences = append(sentences, s)
		}
	}
	return sentences
}

type scoredSentence struct {
	text  string
	score float64
}

func scoreSentences(sentences []string, title string, names []string) []scoredSentence {
	titleWords := make(map[string]struct{})
	for _, w := range strings.Fields(strings.ToLower(title)) {
		titleWords[w] = struct{}{}
	}
	nameSet := make(map[string]struct{}, len(names))
	loweredNames := make([]string, 0, len(names))
	for _, n := range names {
		lowered := strings.ToLower(n)
		if _, dup := nameSet[lowered]; dup || lowered == "" {
			continue
		}
		nameSet[lowered] = struct{}{}
		loweredNames = append(loweredNames, lowered)
	}

	scored := make([]scoredSentence, 0, len(sentences))
	for i, sentence := range sentences {
		lowered := strings.ToLower(sentence)
		score := 0.0

		seen := make(map[string]struct{})
		for _, w := range strings.Fields(lowered) {
			if _, dup := seen[w]; dup {
				continue
			}
			seen[w] = struct{}{}
			if _, ok := titleWords[w]; ok {
				score += 2.0
			}
		}
		for _, n := range loweredNames {
			if strings.Contains(lowered, n) {
				score += 3.0
			}
		}
		score -= float64(i) * 0.1
		if wc := len(strings.Fields(sentence)); wc >= 10 && wc <= 30 {
			score += 1.0
		}
		scored = append(scored, scoredSentence{text: sentence, score: score})
	}
	sort.SliceStable(scored, func(a, b int) bool { return scored[a].score > scored[b].score })
	return scored
}
