package pipeline

import (
	"context"
	"log/slog"
	"os"
	"strings"
	"time"

	"shownotes/internal/config"
	"shownotes/internal/content"
	"shownotes/internal/description"
	"shownotes/internal/logging"
	"shownotes/internal/ocr"
	"shownotes/internal/roster"
	"shownotes/internal/services"
	"shownotes/internal/video"
)

// Extractor fetches metadata, thumbnail, and transcript for a video URL.
type Extractor interface {
	Extract(ctx context.Context, videoURL, workDir string) (*video.Info, error)
}

// Recognizer pulls text and name candidates out of a thumbnail image.
type Recognizer interface {
	ExtractText(ctx context.Context, imagePath string) ocr.Result
	Names(text string) []string
}

// Runner executes the description pipeline end to end.
type Runner struct {
	cfg        *config.Config
	extractor  Extractor
	recognizer Recognizer
	roster     *roster.Engine
	generator  *content.Generator
	logger     *slog.Logger
}

// Option tweaks Runner construction.
type Option func(*Runner)

// WithExtractor replaces the yt-dlp backed extractor.
func WithExtractor(extractor Extractor) Option {
	return func(r *Runner) {
		if extractor != nil {
			r.extractor = extractor
		}
	}
}

// WithRecognizer replaces the tesseract backed recognizer.
func WithRecognizer(recognizer Recognizer) Option {
	return func(r *Runner) {
		if recognizer != nil {
			r.recognizer = recognizer
		}
	}
}

// NewRunner wires the pipeline stages together. A nil searcher disables web
// corroboration and bios fall back to the fixed string.
func NewRunner(cfg *config.Config, searcher roster.Searcher, logger *slog.Logger, opts ...Option) *Runner {
	runner := &Runner{
		cfg:        cfg,
		extractor:  video.NewExtractor(cfg, logger),
		recognizer: ocr.NewEngine(cfg, logger),
		roster:     roster.NewEngine(cfg, searcher, logger),
		generator:  content.NewGenerator(cfg),
		logger:     logging.NewComponentLogger(logger, "pipeline"),
	}
	for _, opt := range opts {
		opt(runner)
	}
	return runner
}

// Run generates the description document for one video. Only metadata
// extraction can fail the run; OCR, lookup, and subtitle problems degrade to
// partial sources.
func (r *Runner) Run(ctx context.Context, videoURL string) (*Result, error) {
	if strings.TrimSpace(videoURL) == "" {
		return nil, services.Wrap(services.ErrValidation, "pipeline", "run", "video URL is required", nil)
	}

	start := time.Now()
	workDir, err := r.makeRunDir()
	if err != nil {
		return nil, err
	}
	defer os.RemoveAll(workDir)

	r.logger.Info("extracting video data", logging.String("url", videoURL))
	info, err := r.extractor.Extract(ctx, videoURL, workDir)
	if err != nil {
		return nil, err
	}

	r.logger.Info("reading thumbnail text", logging.String("video_id", info.VideoID))
	thumbText := r.recognizer.ExtractText(ctx, info.ThumbnailPath)

	r.logger.Info("resolving roster")
	people := r.roster.Resolve(ctx, roster.Sources{
		Title:       info.Title,
		Description: info.Description,
		Transcript:  info.Transcript,
		OCRText:     thumbText.FullText,
		OCRNames:    r.recognizer.Names(thumbText.FullText),
		Channel:     info.Channel,
	})
	if people == nil {
		people = []roster.Person{}
	}
	names := make([]string, 0, len(people))
	for _, person := range people {
		names = append(names, person.Name)
	}

	r.logger.Info("generating content")
	mainTopic := content.MainTopic(info.Title)
	summary := r.generator.Summarize(info.Title, info.Description, info.Transcript, names)
	chapters := r.generator.BuildChapters(info.Chapters, info.Transcript, info.Duration)
	keywords := r.generator.Keywords(info.Title, info.Description, info.Transcript, thumbText.FullText)
	if keywords == nil {
		keywords = []string{}
	}

	r.logger.Info("rendering description")
	rendered := description.Render(description.Input{
		Title:        info.Title,
		MainTopic:    mainTopic,
		OCRShort:     thumbText.ShortText,
		Summary:      summary,
		Participants: people,
		Chapters:     chapters,
		Keywords:     keywords,
		Channel:      info.Channel,
		ASRGenerated: info.ASRGenerated,
	})

	result := &Result{
		VideoID:      info.VideoID,
		Title:        info.Title,
		Channel:      info.Channel,
		UploadDate:   info.UploadDate,
		Duration:     info.Duration,
		OCRTextFull:  thumbText.FullText,
		OCRTextShort: thumbText.ShortText,
		Participants: people,
		Chapters:     chapters,
		Keywords:     keywords,
		Summary:      summary,
		MainTopic:    mainTopic,
		ASRGenerated: info.ASRGenerated,
		Description:  rendered,
	}

	r.logger.Info("pipeline finished",
		logging.String("video_id", info.VideoID),
		logging.Int("participants", len(people)),
		logging.Int("chapters", len(chapters)),
		logging.Int("keywords", len(keywords)),
		logging.Duration("elapsed", time.Since(start)))
	return result, nil
}

// makeRunDir creates a scratch directory for one run so concurrent jobs never
// share thumbnails or subtitle files.
func (r *Runner) makeRunDir() (string, error) {
	if err := os.MkdirAll(r.cfg.Paths.WorkDir, 0o755); err != nil {
		return "", services.Wrap(services.ErrConfiguration, "pipeline", "run", "create work directory", err)
	}
	dir, err := os.MkdirTemp(r.cfg.Paths.WorkDir, "run-")
	if err != nil {
		return "", services.Wrap(services.ErrConfiguration, "pipeline", "run", "create scratch directory", err)
	}
	return dir, nil
}
