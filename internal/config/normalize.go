package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeExtractor()
	c.normalizeOCR()
	c.normalizeRoster()
	c.normalizeLookup()
	c.normalizeContent()
	c.normalizeServer()
	c.normalizeNotifications()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.WorkDir) == "" {
		c.Paths.WorkDir = defaultWorkDir
	}
	if c.Paths.WorkDir, err = expandPath(c.Paths.WorkDir); err != nil {
		return fmt.Errorf("paths.work_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.DatabaseDir) == "" {
		c.Paths.DatabaseDir = defaultDatabaseDir
	}
	if c.Paths.DatabaseDir, err = expandPath(c.Paths.DatabaseDir); err != nil {
		return fmt.Errorf("paths.database_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeExtractor() {
	c.Extractor.Binary = strings.TrimSpace(c.Extractor.Binary)
	if c.Extractor.Binary == "" {
		c.Extractor.Binary = defaultExtractorBinary
	}
	if c.Extractor.TimeoutSeconds <= 0 {
		c.Extractor.TimeoutSeconds = defaultExtractorTimeout
	}
	langs := make([]string, 0, len(c.Extractor.SubtitleLanguages))
	for _, lang := range c.Extractor.SubtitleLanguages {
		if lang = strings.TrimSpace(lang); lang != "" {
			langs = append(langs, lang)
		}
	}
	if len(langs) == 0 {
		langs = []string{"pt", "pt-BR", "en"}
	}
	c.Extractor.SubtitleLanguages = langs
}

func (c *Config) normalizeOCR() {
	c.OCR.Binary = strings.TrimSpace(c.OCR.Binary)
	if c.OCR.Binary == "" {
		c.OCR.Binary = defaultOCRBinary
	}
	if strings.TrimSpace(c.OCR.Languages) == "" {
		c.OCR.Languages = defaultOCRLanguages
	}
	if c.OCR.PageSegMode <= 0 {
		c.OCR.PageSegMode = defaultOCRPageSegMode
	}
	if c.OCR.TimeoutSeconds <= 0 {
		c.OCR.TimeoutSeconds = defaultOCRTimeout
	}
	if c.OCR.ShortTextLimit <= 0 {
		c.OCR.ShortTextLimit = defaultOCRShortLimit
	}
}

func (c *Config) normalizeRoster() {
	if c.Roster.MinSequenceWords <= 0 {
		c.Roster.MinSequenceWords = defaultMinSequenceWords
	}
	if c.Roster.MaxSequenceWords <= 0 {
		c.Roster.MaxSequenceWords = defaultMaxSequenceWords
	}
	if c.Roster.TranscriptMinRepeats <= 0 {
		c.Roster.TranscriptMinRepeats = defaultTranscriptMinRepeats
	}
	if c.Roster.LookupWorkers <= 0 {
		c.Roster.LookupWorkers = defaultLookupWorkers
	}
	if c.Roster.LookupTimeoutSeconds <= 0 {
		c.Roster.LookupTimeoutSeconds = defaultLookupTimeout
	}
}

func (c *Config) normalizeLookup() {
	c.Lookup.BaseURL = strings.TrimSpace(c.Lookup.BaseURL)
	if c.Lookup.BaseURL == "" {
		c.Lookup.BaseURL = defaultLookupBaseURL
	}
	if strings.TrimSpace(c.Lookup.Language) == "" {
		c.Lookup.Language = defaultLookupLanguage
	}
	if strings.TrimSpace(c.Lookup.UserAgent) == "" {
		c.Lookup.UserAgent = defaultLookupUserAgent
	}
	if c.Lookup.TimeoutSeconds <= 0 {
		c.Lookup.TimeoutSeconds = defaultLookupTimeout
	}
	if c.Lookup.SnippetMaxChars <= 0 {
		c.Lookup.SnippetMaxChars = defaultSnippetMaxChars
	}
}

func (c *Config) normalizeContent() {
	if c.Content.SummaryMaxWords <= 0 {
		c.Content.SummaryMaxWords = defaultSummaryMaxWords
	}
	if c.Content.MaxChapters <= 0 {
		c.Content.MaxChapters = defaultMaxChapters
	}
	if c.Content.ChapterIntervalSeconds <= 0 {
		c.Content.ChapterIntervalSeconds = defaultChapterInterval
	}
	if c.Content.MaxKeywords <= 0 {
		c.Content.MaxKeywords = defaultMaxKeywords
	}
}

func (c *Config) normalizeServer() {
	c.Server.Bind = strings.TrimSpace(c.Server.Bind)
	if c.Server.Bind == "" {
		c.Server.Bind = defaultServerBind
	}
	if c.Server.MaxConcurrentJobs <= 0 {
		c.Server.MaxConcurrentJobs = defaultMaxConcurrentJobs
	}
	if c.Server.JobTimeoutMinutes <= 0 {
		c.Server.JobTimeoutMinutes = defaultJobTimeoutMinutes
	}
}

func (c *Config) normalizeNotifications() {
	c.Notifications.NtfyTopic = strings.TrimSpace(c.Notifications.NtfyTopic)
	if c.Notifications.NtfyTopic == "" {
		if value, ok := os.LookupEnv("SHOWNOTES_NTFY_TOPIC"); ok {
			c.Notifications.NtfyTopic = strings.TrimSpace(value)
		}
	}
	if c.Notifications.RequestTimeout <= 0 {
		c.Notifications.RequestTimeout = defaultNotifyRequestTimeout
	}
}

func (c *Config) normalizeLogging() {
	format := strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if format == "" {
		format = defaultLogFormat
	}
	c.Logging.Format = format

	level := strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if level == "" {
		level = defaultLogLevel
	}
	c.Logging.Level = level
}
