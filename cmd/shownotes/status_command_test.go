package main

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"shownotes/internal/api"
)

func TestFetchStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/status" {
			http.NotFound(w, r)
			return
		}
		_ = json.NewEncoder(w).Encode(api.StatusResponse{
			Running:      true,
			PID:          41,
			Uptime:       "3m0s",
			DatabasePath: "/var/lib/shownotes/jobs.db",
			Jobs:         map[string]int{"completed": 3},
		})
	}))
	defer srv.Close()

	bind := strings.TrimPrefix(srv.URL, "http://")
	status, err := fetchStatus(context.Background(), bind)
	if err != nil {
		t.Fatalf("fetchStatus: %v", err)
	}
	if !status.Running || status.PID != 41 || status.Jobs["completed"] != 3 {
		t.Fatalf("unexpected status %+v", status)
	}
}

func TestFetchStatusConnectionError(t *testing.T) {
	_, err := fetchStatus(context.Background(), "127.0.0.1:1")
	if err == nil {
		t.Fatal("expected connection error")
	}
	if !strings.Contains(err.Error(), "shownotes serve") {
		t.Fatalf("error should hint at starting the server, got %v", err)
	}
}

func TestRenderStatus(t *testing.T) {
	out := renderStatus(&api.StatusResponse{
		Running:      true,
		PID:          99,
		Uptime:       "1m30s",
		DatabasePath: "/tmp/jobs.db",
		Jobs:         map[string]int{"pending": 1, "failed": 2},
		Dependencies: []api.DependencyStatus{
			{Name: "yt-dlp", Available: true},
			{Name: "tesseract", Optional: true},
		},
	})

	requireContains(t, out, "Server: running (pid 99, uptime 1m30s)")
	requireContains(t, out, "/tmp/jobs.db")
	requireContains(t, out, "pending")
	requireContains(t, out, "failed")
	requireContains(t, out, "yt-dlp")
	requireContains(t, out, "missing (optional)")
}

func TestRenderStatusWithoutJobs(t *testing.T) {
	out := renderStatus(&api.StatusResponse{PID: 7, DatabasePath: "/tmp/jobs.db"})
	requireContains(t, out, "Server: stopped (pid 7)")
	requireContains(t, out, "No jobs recorded")
}
