package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Paths contains directory configuration.
type Paths struct {
	WorkDir     string `toml:"work_dir"`
	LogDir      string `toml:"log_dir"`
	DatabaseDir string `toml:"database_dir"`
}

// Extractor contains configuration for video metadata extraction via yt-dlp.
type Extractor struct {
	Binary            string   `toml:"binary"`
	TimeoutSeconds    int      `toml:"timeout_seconds"`
	SubtitleLanguages []string `toml:"subtitle_languages"`
}

// OCR contains configuration for thumbnail text extraction via tesseract.
type OCR struct {
	Binary         string `toml:"binary"`
	Languages      string `toml:"languages"`
	PageSegMode    int    `toml:"page_seg_mode"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
	ShortTextLimit int    `toml:"short_text_limit"`
}

// Roster contains configuration for name collection and corroboration.
type Roster struct {
	MinSequenceWords     int `toml:"min_sequence_words"`
	MaxSequenceWords     int `toml:"max_sequence_words"`
	TranscriptMinRepeats int `toml:"transcript_min_repeats"`
	LookupWorkers        int `toml:"lookup_workers"`
	LookupTimeoutSeconds int `toml:"lookup_timeout_seconds"`
}

// Lookup contains configuration for the web snippet search client.
type Lookup struct {
	BaseURL         string `toml:"base_url"`
	Language        string `toml:"language"`
	UserAgent       string `toml:"user_agent"`
	TimeoutSeconds  int    `toml:"timeout_seconds"`
	SnippetMaxChars int    `toml:"snippet_max_chars"`
}

// Content contains configuration for summary, chapter, and keyword generation.
type Content struct {
	SummaryMaxWords        int `toml:"summary_max_words"`
	MaxChapters            int `toml:"max_chapters"`
	ChapterIntervalSeconds int `toml:"chapter_interval_seconds"`
	MaxKeywords            int `toml:"max_keywords"`
}

// Server contains configuration for the HTTP API.
type Server struct {
	Bind              string `toml:"bind"`
	MaxConcurrentJobs int    `toml:"max_concurrent_jobs"`
	JobTimeoutMinutes int    `toml:"job_timeout_minutes"`
}

// Notifications contains configuration for ntfy push notifications.
type Notifications struct {
	NtfyTopic      string `toml:"ntfy_topic"`
	RequestTimeout int    `toml:"request_timeout"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config encapsulates all configuration values for shownotes.
//
// Configuration sections by subsystem:
//   - Paths: scratch, log, and database directories
//   - Extractor: yt-dlp binary and subtitle settings
//   - OCR: tesseract binary and text shaping limits
//   - Roster: name sequence bounds and lookup concurrency
//   - Lookup: web snippet search endpoint and locale
//   - Content: summary/chapter/keyword generation limits
//   - Server: HTTP API bind and job concurrency
//   - Notifications: ntfy push notification settings
//   - Logging: log format and level
type Config struct {
	Paths         Paths         `toml:"paths"`
	Extractor     Extractor     `toml:"extractor"`
	OCR           OCR           `toml:"ocr"`
	Roster        Roster        `toml:"roster"`
	Lookup        Lookup        `toml:"lookup"`
	Content       Content       `toml:"content"`
	Server        Server        `toml:"server"`
	Notifications Notifications `toml:"notifications"`
	Logging       Logging       `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/shownotes/config.toml")
}

// Load locates, parses, and validates a configuration file. The returned config has all
// path fields expanded and normalized.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("shownotes.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

// EnsureDirectories creates the directories required before running a pipeline
// or starting the server.
func (c *Config) EnsureDirectories() error {
	for _, dir := range []string{c.Paths.WorkDir, c.Paths.LogDir, c.Paths.DatabaseDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %q: %w", dir, err)
		}
	}
	return nil
}

// DatabasePath returns the location of the jobs database.
func (c *Config) DatabasePath() string {
	return filepath.Join(c.Paths.DatabaseDir, "jobs.db")
}

// LockFilePath returns the location of the server instance lock.
func (c *Config) LockFilePath() string {
	return filepath.Join(c.Paths.WorkDir, "shownotes-server.lock")
}

// CreateSample writes the embedded sample configuration to the given path.
func CreateSample(path string) error {
	expanded, err := expandPath(path)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(expanded), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	if _, err := os.Stat(expanded); err == nil {
		return fmt.Errorf("config file already exists at %s", expanded)
	}
	if err := os.WriteFile(expanded, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}
