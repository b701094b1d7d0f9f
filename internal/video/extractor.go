package video

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"shownotes/internal/config"
	"shownotes/internal/content"
	"shownotes/internal/logging"
	"shownotes/internal/services"
)

// Executor abstracts command execution for the extractor.
type Executor interface {
	Run(ctx context.Context, binary string, args []string) ([]byte, error)
}

// commandExecutor executes commands using os/exec.
type commandExecutor struct{}

func (commandExecutor) Run(ctx context.Context, binary string, args []string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, binary, args...) //nolint:gosec
	return cmd.Output()
}

// Info holds everything extracted for one episode.
type Info struct {
	VideoID       string
	Title         string
	Description   string
	UploadDate    string
	Channel       string
	ChannelURL    string
	ThumbnailURL  string
	ThumbnailPath string
	Duration      int
	Chapters      []content.Chapter
	Tags          []string
	Transcript    string
	ASRGenerated  bool
}

// Extractor drives yt-dlp and the thumbnail download.
type Extractor struct {
	binary      string
	timeout     time.Duration
	subtitleTag string
	exec        Executor
	httpClient  *http.Client
	logger      *slog.Logger
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithExecutor injects a custom executor for testing.
func WithExecutor(executor Executor) Option {
	return func(e *Extractor) {
		if executor != nil {
			e.exec = executor
		}
	}
}

// WithHTTPClient overrides the thumbnail download client.
func WithHTTPClient(client *http.Client) Option {
	return func(e *Extractor) {
		if client != nil {
			e.httpClient = client
		}
	}
}

// NewExtractor builds an Extractor from configuration.
func NewExtractor(cfg *config.Config, logger *slog.Logger, opts ...Option) *Extractor {
	if logger == nil {
		logger = logging.NewNop()
	}
	timeout := time.Duration(cfg.Extractor.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 120 * time.Second
	}
	languages := cfg.Extractor.SubtitleLanguages
	if len(languages) == 0 {
		languages = []string{"pt", "pt-BR", "en"}
	}
	extractor := &Extractor{
		binary:      strings.TrimSpace(cfg.Extractor.Binary),
		timeout:     timeout,
		subtitleTag: strings.Join(languages, ","),
		exec:        commandExecutor{},
		httpClient:  &http.Client{Timeout: 30 * time.Second},
		logger:      logging.NewComponentLogger(logger, "video"),
	}
	for _, opt := range opts {
		opt(extractor)
	}
	return extractor
}

// metadata mirrors the yt-dlp --dump-json fields we consume.
type metadata struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	UploadDate  string        `json:"upload_date"`
	Channel     string        `json:"channel"`
	Uploader    string        `json:"uploader"`
	ChannelURL  string        `json:"channel_url"`
	Thumbnail   string        `json:"thumbnail"`
	Duration    float64       `json:"duration"`
	Tags        []string      `json:"tags"`
	Chapters    []metaChapter `json:"chapters"`
}

type metaChapter struct {
	StartTime float64 `json:"start_time"`
	Title     string  `json:"title"`
}

// Extract pulls metadata, thumbnail and transcript for the URL into
// workDir. The directory is created if needed.
func (e *Extractor) Extract(ctx context.Context, videoURL, workDir string) (*Info, error) {
	if err := os.MkdirAll(workDir, 0o755); err != nil {
		return nil, services.Wrap(services.ErrConfiguration, "video", "extract", "create work directory", err)
	}

	meta, err := e.fetchMetadata(ctx, videoURL)
	if err != nil {
		return nil, err
	}
	if meta.ID == "" {
		return nil, services.Wrap(services.ErrExternalTool, "video", "metadata", "yt-dlp returned no video id", nil)
	}

	info := &Info{
		VideoID:      meta.ID,
		Title:        meta.Title,
		Description:  meta.Description,
		UploadDate:   formatDate(meta.UploadDate),
		Channel:      meta.Channel,
		ChannelURL:   meta.ChannelURL,
		ThumbnailURL: meta.Thumbnail,
		Duration:     int(meta.Duration),
		Tags:         meta.Tags,
	}
	if info.Channel == "" {
		info.Channel = meta.Uploader
	}
	for _, ch := range meta.Chapters {
		info.Chapters = append(info.Chapters, content.Chapter{
			Start: int(ch.StartTime),
			Title: ch.Title,
		})
	}

	if info.ThumbnailURL != "" {
		info.ThumbnailPath = e.downloadThumbnail(ctx, info.ThumbnailURL,
			filepath.Join(workDir, info.VideoID+"_thumb.jpg"))
	}

	info.Transcript, info.ASRGenerated = e.fetchTranscript(ctx, videoURL, workDir)
	return info, nil
}

func (e *Extractor) fetchMetadata(ctx context.Context, videoURL string) (*metadata, error) {
	runCtx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	args := []string{"--dump-json", "--no-download", "--no-warnings", videoURL}
	output, err := e.exec.Run(runCtx, e.binary, args)
	if err != nil {
		return nil, services.Wrap(services.ErrExternalTool, "video", "metadata", "yt-dlp metadata extraction failed", err)
	}
	var meta metadata
	if err := json.Unmarshal(output, &meta); err != nil {
		return nil, services.Wrap(services.ErrExternalTool, "video", "metadata", "parse yt-dlp output", err)
	}
	return &meta, nil
}

// downloadThumbnail fetches the thumbnail to dest and returns the
// local path, or "" when the download fails; the pipeline continues
// without OCR in that case.
func (e *Extractor) downloadThumbnail(ctx context.Context, thumbnailURL, dest string) string {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, thumbnailURL, nil)
	if err != nil {
		e.logger.Warn("thumbnail request build failed", logging.Error(err))
		return ""
	}
	resp, err := e.httpClient.Do(req)
	if err != nil {
		e.logger.Warn("thumbnail download failed", logging.Error(err))
		return ""
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		e.logger.Warn("thumbnail download failed",
			logging.Int("status", resp.StatusCode),
			logging.String("url", thumbnailURL))
		return ""
	}
	file, err := os.Create(dest) //nolint:gosec
	if err != nil {
		e.logger.Warn("thumbnail write failed", logging.Error(err))
		return ""
	}
	defer file.Close()
	if _, err := io.Copy(file, resp.Body); err != nil {
		e.logger.Warn("thumbnail write failed", logging.Error(err))
		return ""
	}
	return dest
}

// fetchTranscript tries manual subtitles first and falls back to the
// automatic (ASR) track. Returns the parsed transcript and whether it
// came from the automatic track.
func (e *Extractor) fetchTranscript(ctx context.Context, videoURL, workDir string) (string, bool) {
	attempts := []struct {
		flag string
		asr  bool
	}{
		{"--write-subs", false},
		{"--write-auto-subs", true},
	}
	for _, attempt := range attempts {
		text, ok := e.subtitleAttempt(ctx, videoURL, workDir, attempt.flag)
		if ok {
			return text, attempt.asr
		}
	}
	return "", false
}

func (e *Extractor) subtitleAttempt(ctx context.Context, videoURL, workDir, flag string) (string, bool) {
	runCtx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	args := []string{
		flag,
		"--sub-langs", e.subtitleTag,
		"--sub-format", "vtt",
		"--skip-download",
		"--no-warnings",
		"-o", filepath.Join(workDir, "%(id)s.%(ext)s"),
		videoURL,
	}
	if _, err := e.exec.Run(runCtx, e.binary, args); err != nil {
		e.logger.Debug("subtitle fetch failed",
			logging.String("flag", flag),
			logging.Error(err))
		return "", false
	}

	matches, err := filepath.Glob(filepath.Join(workDir, "*.vtt"))
	if err != nil || len(matches) == 0 {
		return "", false
	}
	sort.Strings(matches)

	data, err := os.ReadFile(matches[0])
	if err != nil {
		e.logger.Warn("subtitle read failed",
			logging.String("path", matches[0]),
			logging.Error(err))
		return "", false
	}
	text := parseVTT(string(data))
	if strings.TrimSpace(text) == "" {
		return "", false
	}
	return text, true
}

// formatDate converts yt-dlp's YYYYMMDD stamps to YYYY-MM-DD. Anything
// else passes through unchanged.
func formatDate(raw string) string {
	if len(raw) != 8 {
		return raw
	}
	for _, r := range raw {
		if r < '0' || r > '9' {
			return raw
		}
	}
	return fmt.Sprintf("%s-%s-%s", raw[:4], raw[4:6], raw[6:])
}
