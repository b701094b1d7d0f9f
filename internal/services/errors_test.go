package services

import (
	"errors"
	"testing"
)

func TestWrapTagsMarker(t *testing.T) {
	base := errors.New("connection refused")
	err := Wrap(ErrExternalTool, "lookup", "search", "request failed", base)
	if !errors.Is(err, ErrExternalTool) {
		t.Fatalf("expected wrapped error to match marker, got %v", err)
	}
	if !errors.Is(err, base) {
		t.Fatalf("expected wrapped error to retain cause, got %v", err)
	}
	want := "external tool error: lookup: search: request failed: connection refused"
	if err.Error() != want {
		t.Fatalf("unexpected message %q, want %q", err.Error(), want)
	}
}

func TestWrapDefaultsMarker(t *testing.T) {
	err := Wrap(nil, "", "", "", nil)
	if !errors.Is(err, ErrTransient) {
		t.Fatalf("expected nil marker to default to transient, got %v", err)
	}
	if err.Error() != "transient failure: service failure" {
		t.Fatalf("unexpected message %q", err.Error())
	}
}

func TestFailureKind(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{nil, ""},
		{Wrap(ErrConfiguration, "config", "load", "missing", nil), "configuration"},
		{Wrap(ErrTimeout, "video", "extract", "deadline", nil), "timeout"},
		{Wrap(ErrExternalTool, "ocr", "run", "exit 1", nil), "external_tool"},
		{errors.New("anything else"), "transient"},
	}
	for _, tt := range tests {
		if got := FailureKind(tt.err); got != tt.want {
			t.Errorf("FailureKind(%v) = %q, want %q", tt.err, got, tt.want)
		}
	}
}
