package config

const (
	defaultWorkDir     = "~/.local/share/shownotes/work"
	defaultLogDir      = "~/.local/share/shownotes/logs"
	defaultDatabaseDir = "~/.local/share/shownotes"

	defaultExtractorBinary  = "yt-dlp"
	defaultExtractorTimeout = 120

	defaultOCRBinary      = "tesseract"
	defaultOCRLanguages   = "por+eng"
	defaultOCRPageSegMode = 3
	defaultOCRTimeout     = 30
	defaultOCRShortLimit  = 120

	defaultMinSequenceWords     = 2
	defaultMaxSequenceWords     = 5
	defaultTranscriptMinRepeats = 2
	defaultLookupWorkers        = 4
	defaultLookupTimeout        = 10

	defaultLookupBaseURL   = "https://www.google.com/search"
	defaultLookupLanguage  = "pt-BR"
	defaultLookupUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0 Safari/537.36"
	defaultSnippetMaxChars = 2000

	defaultSummaryMaxWords = 150
	defaultMaxChapters     = 25
	defaultChapterInterval = 240
	defaultMaxKeywords     = 15

	defaultServerBind        = "127.0.0.1:8756"
	defaultMaxConcurrentJobs = 2
	defaultJobTimeoutMinutes = 15

	defaultNotifyRequestTimeout = 10

	defaultLogFormat = "console"
	defaultLogLevel  = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			WorkDir:     defaultWorkDir,
			LogDir:      defaultLogDir,
			DatabaseDir: defaultDatabaseDir,
		},
		Extractor: Extractor{
			Binary:            defaultExtractorBinary,
			TimeoutSeconds:    defaultExtractorTimeout,
			SubtitleLanguages: []string{"pt", "pt-BR", "en"},
		},
		OCR: OCR{
			Binary:         defaultOCRBinary,
			Languages:      defaultOCRLanguages,
			PageSegMode:    defaultOCRPageSegMode,
			TimeoutSeconds: defaultOCRTimeout,
			ShortTextLimit: defaultOCRShortLimit,
		},
		Roster: Roster{
			MinSequenceWords:     defaultMinSequenceWords,
			MaxSequenceWords:     defaultMaxSequenceWords,
			TranscriptMinRepeats: defaultTranscriptMinRepeats,
			LookupWorkers:        defaultLookupWorkers,
			LookupTimeoutSeconds: defaultLookupTimeout,
		},
		Lookup: Lookup{
			BaseURL:         defaultLookupBaseURL,
			Language:        defaultLookupLanguage,
			UserAgent:       defaultLookupUserAgent,
			TimeoutSeconds:  defaultLookupTimeout,
			SnippetMaxChars: defaultSnippetMaxChars,
		},
		Content: Content{
			SummaryMaxWords:        defaultSummaryMaxWords,
			MaxChapters:            defaultMaxChapters,
			ChapterIntervalSeconds: defaultChapterInterval,
			MaxKeywords:            defaultMaxKeywords,
		},
		Server: Server{
			Bind:              defaultServerBind,
			MaxConcurrentJobs: defaultMaxConcurrentJobs,
			JobTimeoutMinutes: defaultJobTimeoutMinutes,
		},
		Notifications: Notifications{
			RequestTimeout: defaultNotifyRequestTimeout,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
