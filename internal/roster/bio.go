package roster

import (
	"context"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"shownotes/internal/config"
	"shownotes/internal/logging"
	"shownotes/internal/textutil"
)

// FallbackBio is used when the external lookup yields nothing usable.
const FallbackBio = "Profissional e participante do programa"

// bioMaxWords caps how much of a matched snippet phrase survives.
const bioMaxWords = 12

var bioPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)é\s+(?:um(?:a)?)\s+([^.]{10,80})`),
	regexp.MustCompile(`(?i)conhecido(?:a)?\s+(?:como|por)\s+([^.]{10,80})`),
	regexp.MustCompile(`(?i)(?:empresário|jornalista|economista|médico|advogado|professor|atleta|influenciador|apresentador|comediante|escritor|analista|trader|investidor)[a-z]*\s+([^.]{5,60})`),
}

// BioSynthesizer produces one-line Portuguese descriptors for accepted
// people from external search snippets.
type BioSynthesizer struct {
	searcher Searcher
	logger   *slog.Logger
	timeout  time.Duration
}

// NewBioSynthesizer builds a BioSynthesizer. A nil searcher makes every
// bio the fallback descriptor.
func NewBioSynthesizer(cfg *config.Config, searcher Searcher, logger *slog.Logger) *BioSynthesizer {
	if logger == nil {
		logger = logging.NewNop()
	}
	timeout := time.Duration(cfg.Roster.LookupTimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &BioSynthesizer{
		searcher: searcher,
		logger:   logging.NewComponentLogger(logger, "roster"),
		timeout:  timeout,
	}
}

// MiniBio returns a short descriptor for the person. It never fails:
// lookup errors, empty snippets and unusable text all degrade to
// FallbackBio.
func (b *BioSynthesizer) MiniBio(ctx context.Context, name, channel string) string {
	snippet := b.search(ctx, name, channel)
	if snippet == "" {
		return FallbackBio
	}
	if bio := summarizeSnippet(snippet); bio != "" {
		return bio
	}
	return FallbackBio
}

func (b *BioSynthesizer) search(ctx context.Context, name, channel string) string {
	if b.searcher == nil {
		return ""
	}
	lookupCtx, cancel := context.WithTimeout(ctx, b.timeout)
	defer cancel()

	query := strings.TrimSpace(name + " " + channel)
	snippet, err := b.searcher.Search(lookupCtx, query)
	if err != nil {
		b.logger.Warn("bio lookup failed",
			logging.String("person", name),
			logging.Error(err))
		return ""
	}
	return snippet
}

// summarizeSnippet pulls a descriptive phrase out of a search snippet.
// Biography-shaped patterns win; failing those, the first clause of a
// plausible sentence length is used. Returns "" when nothing fits.
func summarizeSnippet(snippet string) string {
	for _, pattern := range bioPatterns {
		if match := pattern.FindString(snippet); match != "" {
			return textutil.TruncateWords(match, bioMaxWords)
		}
	}
	clauses := strings.FieldsFunc(snippet, func(r rune) bool {
		return r == '.' || r == '!' || r == '?'
	})
	for _, clause := range clauses {
		if n := textutil.WordCount(clause); n >= 8 && n <= 15 {
			return textutil.TruncateWords(clause, bioMaxWords)
		}
	}
	return ""
}
