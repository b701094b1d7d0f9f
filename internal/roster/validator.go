package roster

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"shownotes/internal/config"
	"shownotes/internal/logging"
	"shownotes/internal/textutil"
)

// acceptThreshold is the minimum number of satisfied criteria for a
// candidate to be accepted. Every candidate earns one criterion for
// surviving collection, so at least one independent confirmation is
// required on top of it.
const acceptThreshold = 2

// Validator scores candidates against corroboration criteria and
// canonises the spelling of the survivors.
type Validator struct {
	searcher Searcher
	logger   *slog.Logger
	workers  int
	timeout  time.Duration
}

// NewValidator builds a Validator. The searcher may be nil, in which
// case external corroboration is skipped and acceptance relies on
// local evidence only.
func NewValidator(cfg *config.Config, searcher Searcher, logger *slog.Logger) *Validator {
	if logger == nil {
		logger = logging.NewNop()
	}
	workers := cfg.Roster.LookupWorkers
	if workers < 1 {
		workers = 1
	}
	timeout := time.Duration(cfg.Roster.LookupTimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Validator{
		searcher: searcher,
		logger:   logging.NewComponentLogger(logger, "roster"),
		workers:  workers,
		timeout:  timeout,
	}
}

// Validate evaluates every candidate and returns the accepted people in
// candidate order. External lookups run on a bounded pool; a failed or
// timed-out lookup only costs the candidate that one criterion.
func (v *Validator) Validate(ctx context.Context, candidates []string, src Sources) []Person {
	if len(candidates) == 0 {
		return nil
	}
	results := make([]*Person, len(candidates))
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(v.workers)
	for i, name := range candidates {
		group.Go(func() error {
			results[i] = v.evaluate(groupCtx, name, src)
			return nil
		})
	}
	_ = group.Wait()

	accepted := make([]Person, 0, len(candidates))
	for _, person := range results {
		if person != nil {
			accepted = append(accepted, *person)
		}
	}
	v.logger.Debug("validated candidates",
		logging.Int("candidates", len(candidates)),
		logging.Int("accepted", len(accepted)))
	return accepted
}

func (v *Validator) evaluate(ctx context.Context, name string, src Sources) *Person {
	criteria := 0
	spelling := name
	source := SourceExtraction
	var trust Trust

	if textutil.ContainsFold(src.Title, name) {
		criteria++
	}
	if textutil.ContainsFold(src.OCRText, name) {
		criteria++
		if ocr := ocrSpelling(name, src.OCRText); ocr != "" {
			spelling = ocr
		}
		source = SourceOCR
	}
	if confirmed, webSpelling := v.corroborate(ctx, name, src.Channel); confirmed {
		criteria++
		trust = TrustHigh
		spelling = webSpelling
		source = SourceWeb
	}
	// Surviving collection counts as evidence in its own right.
	criteria++

	if criteria < acceptThreshold {
		v.logger.Debug("rejected candidate",
			logging.String("candidate", name),
			logging.Int("criteria", criteria))
		return nil
	}
	if trust == "" {
		trust = TrustMedium
	}
	return &Person{Name: spelling, Source: source, Trust: trust}
}

// corroborate asks the external searcher about the candidate. A
// non-empty snippet confirms existence; when the snippet contains the
// name verbatim (case-insensitively) its spelling wins, otherwise the
// original spelling is kept.
func (v *Validator) corroborate(ctx context.Context, name, channel string) (bool, string) {
	if v.searcher == nil {
		return false, ""
	}
	lookupCtx, cancel := context.WithTimeout(ctx, v.timeout)
	defer cancel()

	query := strings.TrimSpace(name + " " + channel)
	snippet, err := v.searcher.Search(lookupCtx, query)
	if err != nil {
		v.logger.Warn("corroboration lookup failed",
			logging.String("candidate", name),
			logging.Error(err))
		return false, ""
	}
	if snippet == "" {
		return false, ""
	}
	if match := findNameInSnippet(name, snippet); match != "" {
		return true, match
	}
	return true, name
}
