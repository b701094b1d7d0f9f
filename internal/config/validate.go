package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateExtractor(); err != nil {
		return err
	}
	if err := c.validateRoster(); err != nil {
		return err
	}
	if err := c.validateLookup(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateExtractor() error {
	if c.Extractor.Binary == "" {
		return errors.New("extractor.binary must be set")
	}
	if c.Extractor.TimeoutSeconds < 10 {
		return errors.New("extractor.timeout_seconds must be at least 10")
	}
	return nil
}

func (c *Config) validateRoster() error {
	if c.Roster.MinSequenceWords > c.Roster.MaxSequenceWords {
		return fmt.Errorf("roster.min_sequence_words (%d) may not exceed roster.max_sequence_words (%d)",
			c.Roster.MinSequenceWords, c.Roster.MaxSequenceWords)
	}
	if c.Roster.MaxSequenceWords > 10 {
		return errors.New("roster.max_sequence_words may not exceed 10")
	}
	if c.Roster.LookupWorkers > 16 {
		return errors.New("roster.lookup_workers may not exceed 16")
	}
	return nil
}

func (c *Config) validateLookup() error {
	if c.Lookup.BaseURL == "" {
		return errors.New("lookup.base_url must be set")
	}
	if c.Lookup.SnippetMaxChars < 100 {
		return errors.New("lookup.snippet_max_chars must be at least 100")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	return nil
}
