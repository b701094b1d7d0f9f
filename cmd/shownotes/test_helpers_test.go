package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func runCLI(t *testing.T, args []string, configPath string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	if configPath != "" {
		args = append([]string{"--config", configPath}, args...)
	}
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

// writeTestConfig writes a config file whose paths live under a fresh temp
// directory and whose external binaries point at the given commands.
func writeTestConfig(t *testing.T, extractorBinary, ocrBinary string) string {
	t.Helper()
	base := t.TempDir()
	content := fmt.Sprintf(`[paths]
work_dir = %q
log_dir = %q
database_dir = %q

[extractor]
binary = %q

[ocr]
binary = %q
`,
		filepath.Join(base, "work"),
		filepath.Join(base, "logs"),
		filepath.Join(base, "db"),
		extractorBinary,
		ocrBinary,
	)
	path := filepath.Join(base, "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func writeStubBinary(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "stub")
	if err := os.WriteFile(path, []byte("#!/bin/sh\nexit 0\n"), 0o755); err != nil {
		t.Fatalf("write stub binary: %v", err)
	}
	return path
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}
