package ocr

import (
	"context"
	"log/slog"
	"os"
	"os/exec"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"shownotes/internal/config"
	"shownotes/internal/logging"
	"shownotes/internal/textutil"
)

// Executor abstracts command execution for the OCR engine.
type Executor interface {
	Run(ctx context.Context, binary string, args []string) ([]byte, error)
}

// commandExecutor executes commands using os/exec.
type commandExecutor struct{}

func (commandExecutor) Run(ctx context.Context, binary string, args []string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, binary, args...) //nolint:gosec
	return cmd.Output()
}

// Result holds the recognised thumbnail text in two forms.
type Result struct {
	FullText  string
	ShortText string
}

// Engine runs tesseract against thumbnail images.
type Engine struct {
	binary      string
	languages   string
	pageSegMode int
	timeout     time.Duration
	shortLimit  int
	minWords    int
	maxWords    int
	exec        Executor
	logger      *slog.Logger
}

// NewEngine constructs an Engine from configuration.
func NewEngine(cfg *config.Config, logger *slog.Logger) *Engine {
	return NewEngineWithExecutor(cfg, logger, commandExecutor{})
}

// NewEngineWithExecutor allows injecting a custom executor for testing.
func NewEngineWithExecutor(cfg *config.Config, logger *slog.Logger, executor Executor) *Engine {
	if executor == nil {
		executor = commandExecutor{}
	}
	if logger == nil {
		logger = logging.NewNop()
	}
	timeout := time.Duration(cfg.OCR.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	shortLimit := cfg.OCR.ShortTextLimit
	if shortLimit < 10 {
		shortLimit = 120
	}
	return &Engine{
		binary:      strings.TrimSpace(cfg.OCR.Binary),
		languages:   strings.TrimSpace(cfg.OCR.Languages),
		pageSegMode: cfg.OCR.PageSegMode,
		timeout:     timeout,
		shortLimit:  shortLimit,
		minWords:    cfg.Roster.MinSequenceWords,
		maxWords:    cfg.Roster.MaxSequenceWords,
		exec:        executor,
		logger:      logging.NewComponentLogger(logger, "ocr"),
	}
}

// ExtractText runs OCR on the image and returns cleaned full text plus
// a shortened single-line form. Any failure yields an empty Result.
func (e *Engine) ExtractText(ctx context.Context, imagePath string) Result {
	if imagePath == "" {
		return Result{}
	}
	if _, err := os.Stat(imagePath); err != nil {
		e.logger.Warn("thumbnail missing, skipping ocr", logging.String("image", imagePath))
		return Result{}
	}

	runCtx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	args := []string{
		imagePath,
		"stdout",
		"-l", e.languages,
		"--psm", strconv.Itoa(e.pageSegMode),
	}
	output, err := e.exec.Run(runCtx, e.binary, args)
	if err != nil {
		e.logger.Warn("ocr failed, continuing without thumbnail text",
			logging.String("image", imagePath),
			logging.Error(err))
		return Result{}
	}

	full := cleanText(string(output))
	return Result{FullText: full, ShortText: shorten(full, e.shortLimit)}
}

// Names extracts candidate person names from recognised text.
func (e *Engine) Names(text string) []string {
	if text == "" {
		return nil
	}
	minWords := e.minWords
	if minWords <= 0 {
		minWords = 2
	}
	maxWords := e.maxWords
	if maxWords < minWords {
		maxWords = 5
	}
	return textutil.CapitalizedSequences(text, minWords, maxWords)
}

var blankRunPattern = regexp.MustCompile(`[ \t]+`)

// cleanText collapses runs of spaces and tabs and drops lines that are
// blank or a single character, which in OCR output are almost always
// recognition noise.
func cleanText(raw string) string {
	var lines []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimRight(line, "\r")
		line = strings.TrimSpace(blankRunPattern.ReplaceAllString(line, " "))
		if utf8.RuneCountInString(line) > 1 {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n")
}

// shorten folds the cleaned text into one display line, cutting at a
// word boundary when it exceeds the limit.
func shorten(full string, limit int) string {
	oneLine := strings.Join(strings.Split(full, "\n"), " | ")
	if utf8.RuneCountInString(oneLine) <= limit {
		return oneLine
	}
	runes := []rune(oneLine)
	cut := string(runes[:limit-3])
	if idx := strings.LastIndex(cut, " "); idx >= 0 {
		cut = cut[:idx]
	}
	return cut + "..."
}
