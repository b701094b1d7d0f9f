package main

import (
	"strings"
	"testing"
)

func TestDepsReportsAvailableBinaries(t *testing.T) {
	stub := writeStubBinary(t)
	cfgPath := writeTestConfig(t, stub, stub)

	out, _, err := runCLI(t, []string{"deps"}, cfgPath)
	if err != nil {
		t.Fatalf("deps: %v", err)
	}
	requireContains(t, out, "yt-dlp")
	requireContains(t, out, "tesseract")
	requireContains(t, out, "ok")
}

func TestDepsFailsWhenExtractorMissing(t *testing.T) {
	stub := writeStubBinary(t)
	cfgPath := writeTestConfig(t, "/nonexistent/yt-dlp-missing", stub)

	out, _, err := runCLI(t, []string{"deps"}, cfgPath)
	if err == nil {
		t.Fatal("expected missing dependency error")
	}
	if !strings.Contains(err.Error(), "yt-dlp") {
		t.Fatalf("unexpected error %v", err)
	}
	requireContains(t, out, "missing")
}
