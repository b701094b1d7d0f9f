package description

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"shownotes/internal/content"
	"shownotes/internal/roster"
)

const maxHashtags = 8

const asrNotice = "(Transcrição gerada automaticamente — pode conter imprecisões.)"

// Input carries everything the renderer needs for one episode.
type Input struct {
	Title        string
	MainTopic    string
	OCRShort     string
	Summary      string
	Participants []roster.Person
	Chapters     []content.Chapter
	Keywords     []string
	Channel      string
	ASRGenerated bool
}

// Render assembles the episode description. Sections that have no content
// (thumbnail text, participants, keywords) are omitted entirely.
func Render(in Input) string {
	lines := []string{in.Title + " | " + in.MainTopic, ""}

	if in.OCRShort != "" {
		lines = append(lines, "OCR: "+in.OCRShort, "")
	}

	names := make([]string, 0, len(in.Participants))
	for _, person := range in.Participants {
		names = append(names, person.Name)
	}
	lines = append(lines, "No episódio de hoje, "+nameList(names)+" exploram "+in.Summary, "")

	if len(in.Participants) > 0 {
		lines = append(lines, "Participantes")
		for _, person := range in.Participants {
			bio := person.Bio
			if bio == "" {
				bio = roster.FallbackBio
			}
			lines = append(lines, "• "+person.Name+" — "+bio)
		}
		lines = append(lines, "")
	}

	lines = append(lines, "Tópicos Abordados:")
	for _, chapter := range in.Chapters {
		lines = append(lines, content.FormatTimestamp(chapter.Start)+" "+chapter.Title)
	}
	lines = append(lines, "")

	if len(in.Keywords) > 0 {
		lines = append(lines, "Palavras-chave: "+strings.Join(in.Keywords, ", "), "")
	}

	lines = append(lines, hashtagLine(in.Channel, in.MainTopic, in.Keywords))

	if in.ASRGenerated {
		lines = append(lines, "", asrNotice)
	}

	return strings.Join(lines, "\n")
}

// nameList joins names for running text, with "e" before the last one.
func nameList(names []string) string {
	switch len(names) {
	case 0:
		return "os participantes"
	case 1:
		return names[0]
	}
	return strings.Join(names[:len(names)-1], ", ") + " e " + names[len(names)-1]
}

func hashtagLine(channel, topic string, keywords []string) string {
	caser := cases.Title(language.BrazilianPortuguese)
	tags := []string{"#Podcast"}

	add := func(text string) {
		tag := hashtag(caser, text)
		if tag == "" {
			return
		}
		for _, existing := range tags {
			if existing == tag {
				return
			}
		}
		tags = append(tags, tag)
	}

	add(channel)
	add(topic)
	for _, keyword := range keywords {
		if len(tags) >= maxHashtags {
			break
		}
		add(keyword)
	}
	return strings.Join(tags, " ")
}

// hashtag turns free text into a single CamelCase tag. Words containing
// punctuation are dropped rather than cleaned.
func hashtag(caser cases.Caser, text string) string {
	var b strings.Builder
	for _, word := range strings.Fields(text) {
		if !alphanumeric(word) {
			continue
		}
		b.WriteString(caser.String(word))
	}
	if b.Len() == 0 {
		return ""
	}
	return "#" + b.String()
}

func alphanumeric(word string) bool {
	for _, r := range word {
		if !unicode.IsLetter(r) && !unicode.IsNumber(r) {
			return false
		}
	}
	return true
}
