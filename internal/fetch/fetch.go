// Package fetch retrieves job-listing pages. It fetches over plain HTTP
// first and falls back to a headless browser for JavaScript-rendered pages
// whose initial payload carries too little text.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// DefaultTimeout is the default HTTP request timeout.
const DefaultTimeout = 30 * time.Second

// DefaultUserAgent is the user agent string for HTTP requests.
const DefaultUserAgent = "Mozilla/5.0 (compatible; InterviewCoach/1.0)"

// MinContentLength is the minimum visible text length for an HTTP fetch to
// count as rendered. Anything shorter is likely an SPA shell.
const MinContentLength = 500

// RenderError indicates the page could not be retrieved or rendered. It is
// surfaced to the user as an extraction failure.
type RenderError struct {
	URL     string
	Message string
	Cause   error
}

func (e *RenderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("render error for %s: %s: %v", e.URL, e.Message, e.Cause)
	}
	return fmt.Sprintf("render error for %s: %s", e.URL, e.Message)
}

func (e *RenderError) Unwrap() error {
	return e.Cause
}

// Renderer produces final HTML for a URL, reflecting any client-side
// rendering the page performs.
type Renderer struct {
	client         *http.Client
	userAgent      string
	browserTimeout time.Duration
	useBrowser     bool
}

// NewRenderer builds a Renderer. When useBrowser is true, pages whose HTTP
// payload looks like an unrendered SPA shell are re-fetched through a
// headless browser.
func NewRenderer(useBrowser bool, browserTimeout time.Duration) *Renderer {
	if browserTimeout <= 0 {
		browserTimeout = DefaultTimeout
	}
	return &Renderer{
		client:         &http.Client{Timeout: DefaultTimeout},
		userAgent:      DefaultUserAgent,
		browserTimeout: browserTimeout,
		useBrowser:     useBrowser,
	}
}

// Render returns the final HTML for a URL, failing with a *RenderError on
// navigation or timeout failures.
func (r *Renderer) Render(ctx context.Context, urlStr string) (string, error) {
	parsed, err := url.Parse(urlStr)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return "", &RenderError{URL: urlStr, Message: "invalid URL", Cause: err}
	}

	html, err := r.fetchHTTP(ctx, urlStr)
	if err != nil {
		// A blocked or failed plain fetch is still worth a browser attempt:
		// some boards refuse non-browser clients outright.
		if r.useBrowser {
			return r.renderBrowser(ctx, urlStr)
		}
		return "", err
	}

	if r.useBrowser && ShouldUseBrowser(html) {
		rendered, browserErr := r.renderBrowser(ctx, urlStr)
		if browserErr != nil {
			// Keep the HTTP content when the browser fails; the extractor
			// decides whether it is usable.
			return html, nil
		}
		return rendered, nil
	}

	return html, nil
}

func (r *Renderer) fetchHTTP(ctx context.Context, urlStr string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, urlStr, nil)
	if err != nil {
		return "", &RenderError{URL: urlStr, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("User-Agent", r.userAgent)

	resp, err := r.client.Do(req)
	if err != nil {
		return "", &RenderError{URL: urlStr, Message: "HTTP request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &RenderError{URL: urlStr, Message: "failed to read response body", Cause: err}
	}

	if resp.StatusCode != http.StatusOK {
		return "", &RenderError{URL: urlStr, Message: fmt.Sprintf("HTTP status %d", resp.StatusCode)}
	}

	return string(body), nil
}

// ShouldUseBrowser reports whether the HTML carries too little visible text
// to have been server-rendered.
func ShouldUseBrowser(html string) bool {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return true
	}
	doc.Find("script, style, noscript").Remove()
	return len(strings.TrimSpace(doc.Text())) < MinContentLength
}
