package roster

import (
	"context"
	"log/slog"

	"shownotes/internal/config"
	"shownotes/internal/logging"
)

// Engine runs the full resolution pass: collect, validate, describe.
type Engine struct {
	collector *Collector
	validator *Validator
	bios      *BioSynthesizer
	logger    *slog.Logger
}

// NewEngine wires the three phases together. The searcher may be nil;
// resolution then runs on local evidence with fallback bios.
func NewEngine(cfg *config.Config, searcher Searcher, logger *slog.Logger, opts ...CollectorOption) *Engine {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Engine{
		collector: NewCollector(cfg, logger, opts...),
		validator: NewValidator(cfg, searcher, logger),
		bios:      NewBioSynthesizer(cfg, searcher, logger),
		logger:    logging.NewComponentLogger(logger, "roster"),
	}
}

// Resolve returns the accepted people for the episode, each with a
// mini bio, in candidate order.
func (e *Engine) Resolve(ctx context.Context, src Sources) []Person {
	candidates := e.collector.Collect(src)
	people := e.validator.Validate(ctx, candidates, src)
	for i := range people {
		people[i].Bio = e.bios.MiniBio(ctx, people[i].Name, src.Channel)
	}
	e.logger.Info("roster resolved",
		logging.Int("candidates", len(candidates)),
		logging.Int("people", len(people)))
	return people
}
