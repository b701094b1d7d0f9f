package main

import (
	"log/slog"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"shownotes/internal/config"
	"shownotes/internal/logging"
	"shownotes/internal/lookup"
	"shownotes/internal/pipeline"
	"shownotes/internal/roster"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		cfg, _, _, err := config.Load(c.configPath())
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) configPath() string {
	if c.configFlag == nil {
		return ""
	}
	return strings.TrimSpace(*c.configFlag)
}

// newCLILogger logs to stderr plus the configured log file so stdout stays
// reserved for command output.
func (c *commandContext) newCLILogger(cfg *config.Config) (*slog.Logger, error) {
	outputs := []string{"stderr"}
	if logPath := logging.LogFilePath(cfg); logPath != "" {
		outputs = append(outputs, logPath)
	}
	return logging.New(logging.Options{
		Level:            cfg.Logging.Level,
		Format:           cfg.Logging.Format,
		OutputPaths:      outputs,
		ErrorOutputPaths: outputs,
	})
}

// newRunner builds the full pipeline with the configured snippet searcher.
func (c *commandContext) newRunner(cfg *config.Config, logger *slog.Logger) *pipeline.Runner {
	return pipeline.NewRunner(cfg, newSearcher(cfg, logger), logger)
}

func newSearcher(cfg *config.Config, logger *slog.Logger) roster.Searcher {
	client, err := lookup.NewFromConfig(cfg)
	if err != nil {
		logger.Warn("web lookup disabled", logging.Error(err))
		return nil
	}
	return client
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
