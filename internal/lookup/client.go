package lookup

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"shownotes/internal/config"
)

var (
	tagPattern        = regexp.MustCompile(`<[^>]+>`)
	whitespacePattern = regexp.MustCompile(`\s+`)
)

// Client queries a web-search endpoint and returns cleaned snippets.
type Client struct {
	baseURL      string
	language     string
	userAgent    string
	snippetRunes int
	httpClient   *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithSnippetLimit caps the snippet length in runes.
func WithSnippetLimit(limit int) Option {
	return func(c *Client) {
		if limit > 0 {
			c.snippetRunes = limit
		}
	}
}

// WithTimeout overrides the request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.httpClient.Timeout = timeout
		}
	}
}

// New creates a snippet client.
func New(baseURL, language, userAgent string, opts ...Option) (*Client, error) {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil, errors.New("lookup base url required")
	}
	client := &Client{
		baseURL:      strings.TrimRight(baseURL, "/"),
		language:     strings.TrimSpace(language),
		userAgent:    strings.TrimSpace(userAgent),
		snippetRunes: 2000,
		httpClient:   &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

// NewFromConfig creates a snippet client from the lookup config section.
func NewFromConfig(cfg *config.Config, opts ...Option) (*Client, error) {
	base := []Option{
		WithSnippetLimit(cfg.Lookup.SnippetMaxChars),
		WithTimeout(time.Duration(cfg.Lookup.TimeoutSeconds) * time.Second),
	}
	return New(cfg.Lookup.BaseURL, cfg.Lookup.Language, cfg.Lookup.UserAgent, append(base, opts...)...)
}

// Search fetches search results for the query and returns them as one
// cleaned text snippet: tags stripped, whitespace collapsed, capped at
// the configured rune limit. An empty snippet means nothing useful came
// back; transport and status failures are returned as errors.
func (c *Client) Search(ctx context.Context, query string) (string, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return "", errors.New("query must not be empty")
	}
	endpoint, err := url.Parse(c.baseURL)
	if err != nil {
		return "", fmt.Errorf("parse lookup url: %w", err)
	}
	params := url.Values{}
	params.Set("q", query)
	if c.language != "" {
		params.Set("hl", c.language)
	}
	endpoint.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	if c.language != "" {
		req.Header.Set("Accept-Language", acceptLanguage(c.language))
	}

	requestStart := time.Now()
	resp, err := c.httpClient.Do(req)
	latency := time.Since(requestStart)
	if err != nil {
		return "", fmt.Errorf("execute request (latency=%v): %w", latency, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("lookup returned %d (latency=%v)", resp.StatusCode, latency)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}
	return cleanSnippet(string(body), c.snippetRunes), nil
}

// acceptLanguage builds an Accept-Language header that prefers the
// configured locale, then its primary subtag, then English.
func acceptLanguage(language string) string {
	primary, _, _ := strings.Cut(language, "-")
	if primary == "" || primary == language {
		return fmt.Sprintf("%s,en;q=0.8", language)
	}
	return fmt.Sprintf("%s,%s;q=0.9,en;q=0.8", language, primary)
}

func cleanSnippet(html string, maxRunes int) string {
	text := tagPattern.ReplaceAllString(html, " ")
	text = whitespacePattern.ReplaceAllString(text, " ")
	text = strings.TrimSpace(text)
	if maxRunes <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= maxRunes {
		return text
	}
	return string(runes[:maxRunes])
}
