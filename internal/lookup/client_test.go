package lookup_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"shownotes/internal/config"
	"shownotes/internal/lookup"
)

func TestNewRequiresBaseURL(t *testing.T) {
	if _, err := lookup.New("", "pt-BR", "agent"); err == nil {
		t.Fatal("expected error when base url missing")
	}
}

func TestSearchCleansSnippet(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("q"); got != "João Silva Canal X" {
			t.Fatalf("q = %q", got)
		}
		if got := r.URL.Query().Get("hl"); got != "pt-BR" {
			t.Fatalf("hl = %q", got)
		}
		if got := r.Header.Get("Accept-Language"); got != "pt-BR,pt;q=0.9,en;q=0.8" {
			t.Fatalf("Accept-Language = %q", got)
		}
		if got := r.Header.Get("User-Agent"); got != "test-agent" {
			t.Fatalf("User-Agent = %q", got)
		}
		_, _ = w.Write([]byte("<html><body><div>João Silva</div>\n\n<span>é   um economista</span></body></html>"))
	}))
	t.Cleanup(server.Close)

	client, err := lookup.New(server.URL, "pt-BR", "test-agent")
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	snippet, err := client.Search(context.Background(), "João Silva Canal X")
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if snippet != "João Silva é um economista" {
		t.Fatalf("snippet = %q", snippet)
	}
}

func TestSearchCapsSnippetRunes(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<p>" + strings.Repeat("é ", 50) + "</p>"))
	}))
	t.Cleanup(server.Close)

	client, err := lookup.New(server.URL, "pt-BR", "agent", lookup.WithSnippetLimit(10))
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	snippet, err := client.Search(context.Background(), "qualquer")
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if got := len([]rune(snippet)); got != 10 {
		t.Fatalf("snippet rune length = %d, want 10", got)
	}
}

func TestSearchHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	t.Cleanup(server.Close)

	client, err := lookup.New(server.URL, "pt-BR", "agent")
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if _, err := client.Search(context.Background(), "fail"); err == nil {
		t.Fatal("expected error when lookup returns non-200")
	}
}

func TestSearchEmptyQuery(t *testing.T) {
	client, err := lookup.New("https://example.com", "pt-BR", "agent")
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if _, err := client.Search(context.Background(), "   "); err == nil {
		t.Fatal("expected error for empty query")
	}
}

func TestNewFromConfig(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<b>resultado</b>"))
	}))
	t.Cleanup(server.Close)

	cfg := config.Default()
	cfg.Lookup.BaseURL = server.URL
	client, err := lookup.NewFromConfig(&cfg)
	if err != nil {
		t.Fatalf("NewFromConfig returned error: %v", err)
	}
	snippet, err := client.Search(context.Background(), "algo")
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if snippet != "resultado" {
		t.Fatalf("snippet = %q", snippet)
	}
}
