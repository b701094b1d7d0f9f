package roster

import (
	"log/slog"
	"strings"

	"shownotes/internal/config"
	"shownotes/internal/logging"
)

// Collector gathers raw candidate names from episode text surfaces.
type Collector struct {
	matcher    Matcher
	minRepeats int
	logger     *slog.Logger
}

// CollectorOption adjusts Collector construction.
type CollectorOption func(*Collector)

// WithMatcher replaces the default capitalized-sequence matcher.
func WithMatcher(m Matcher) CollectorOption {
	return func(c *Collector) {
		if m != nil {
			c.matcher = m
		}
	}
}

// NewCollector builds a Collector from configuration.
func NewCollector(cfg *config.Config, logger *slog.Logger, opts ...CollectorOption) *Collector {
	if logger == nil {
		logger = logging.NewNop()
	}
	minRepeats := cfg.Roster.TranscriptMinRepeats
	if minRepeats < 1 {
		minRepeats = 1
	}
	collector := &Collector{
		matcher: SequenceMatcher{
			MinWords: cfg.Roster.MinSequenceWords,
			MaxWords: cfg.Roster.MaxSequenceWords,
		},
		minRepeats: minRepeats,
		logger:     logging.NewComponentLogger(logger, "roster"),
	}
	for _, opt := range opts {
		opt(collector)
	}
	return collector
}

// Collect returns the deduplicated candidate list for the episode.
//
// OCR-provided names come first, then matches from the title and the
// description. Transcript matches are noisy, so they only qualify when
// the exact same string appears at least the configured number of
// times; qualifying transcript names keep their first-appearance order.
// Duplicates are folded case-insensitively after trimming, keeping the
// casing of the first occurrence.
func (c *Collector) Collect(src Sources) []string {
	candidates := make([]string, 0, len(src.OCRNames)+8)
	candidates = append(candidates, src.OCRNames...)
	candidates = append(candidates, c.matcher.Names(src.Title)...)
	candidates = append(candidates, c.matcher.Names(src.Description)...)
	candidates = append(candidates, c.repeatedTranscriptNames(src.Transcript)...)

	deduped := dedupeCandidates(candidates)
	c.logger.Debug("collected candidates",
		logging.Int("raw", len(candidates)),
		logging.Int("unique", len(deduped)))
	return deduped
}

func (c *Collector) repeatedTranscriptNames(transcript string) []string {
	if transcript == "" {
		return nil
	}
	counts := make(map[string]int)
	var order []string
	for _, name := range c.matcher.Names(transcript) {
		key := strings.ToLower(name)
		if counts[key] == 0 {
			order = append(order, name)
		}
		counts[key]++
	}
	var repeated []string
	for _, name := range order {
		if counts[strings.ToLower(name)] >= c.minRepeats {
			repeated = append(repeated, name)
		}
	}
	return repeated
}

func dedupeCandidates(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, name := range names {
		trimmed := strings.TrimSpace(name)
		if trimmed == "" {
			continue
		}
		key := strings.ToLower(trimmed)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, trimmed)
	}
	return out
}
