package roster

import (
	"context"

	"shownotes/internal/textutil"
)

// Source records which surface ultimately vouched for a person.
type Source string

const (
	// SourceExtraction marks a person confirmed only by text surfaces.
	SourceExtraction Source = "extraction"
	// SourceOCR marks a person whose spelling came from on-screen text.
	SourceOCR Source = "ocr"
	// SourceWeb marks a person corroborated by an external lookup.
	SourceWeb Source = "web"
)

// Trust grades how strongly a person was corroborated.
type Trust string

const (
	// TrustHigh requires external corroboration.
	TrustHigh Trust = "high"
	// TrustMedium covers people accepted on local evidence alone.
	TrustMedium Trust = "medium"
)

// Person is one accepted roster entry.
type Person struct {
	Name   string `json:"name"`
	Source Source `json:"source"`
	Trust  Trust  `json:"trust"`
	Bio    string `json:"bio"`
}

// Sources bundles the text surfaces of a single episode.
type Sources struct {
	Title       string
	Description string
	Transcript  string
	OCRText     string
	OCRNames    []string
	Channel     string
}

// Searcher returns a plain-text snippet of external search results for
// a query. Implementations return an empty snippet when nothing useful
// came back; errors are tolerated by every caller in this package.
type Searcher interface {
	Search(ctx context.Context, query string) (string, error)
}

// Matcher extracts candidate name strings from free text.
type Matcher interface {
	Names(text string) []string
}

// SequenceMatcher is the default Matcher. It finds runs of capitalized
// words, between MinWords and MaxWords long.
type SequenceMatcher struct {
	MinWords int
	MaxWords int
}

// Names implements Matcher.
func (m SequenceMatcher) Names(text string) []string {
	minWords := m.MinWords
	if minWords <= 0 {
		minWords = 2
	}
	maxWords := m.MaxWords
	if maxWords < minWords {
		maxWords = 5
	}
	return textutil.CapitalizedSequences(text, minWords, maxWords)
}
