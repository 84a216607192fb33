package fetcher

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jmylchreest/telugu-corpus/internal/logger"
	"github.com/jmylchreest/telugu-corpus/pkg/extract"
)

// AutoFetcher fetches statically first and falls back to the browser when
// the page looks JavaScript-rendered or has no article paragraphs.
type AutoFetcher struct {
	static  Fetcher
	dynamic Fetcher
}

// NewAuto creates a fetcher that auto-detects JS requirements.
func NewAuto(cfg Config) (*AutoFetcher, error) {
	dynamic, err := NewDynamic(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create dynamic fetcher: %w", err)
	}
	return NewAutoWith(NewStatic(cfg), dynamic), nil
}

// NewAutoWith builds an AutoFetcher from existing fetchers.
func NewAutoWith(static, dynamic Fetcher) *AutoFetcher {
	return &AutoFetcher{static: static, dynamic: dynamic}
}

// Fetch tries static first, then falls back to dynamic if needed.
// A static non-2xx answer is returned as is; the browser would see the same.
func (f *AutoFetcher) Fetch(ctx context.Context, url string, opts Options) (Content, error) {
	content, err := f.static.Fetch(ctx, url, opts)
	if err != nil {
		if errors.Is(err, ErrStatus) || ctx.Err() != nil {
			return content, err
		}
		logger.Debug("static fetch failed, trying browser", "url", url, "error", err)
		return f.dynamic.Fetch(ctx, url, opts)
	}

	if reason := fallbackReason(content); reason != "" {
		logger.Debug("falling back to browser", "url", url, "reason", reason)
		return f.dynamic.Fetch(ctx, url, opts)
	}

	return content, nil
}

// fallbackReason returns why the static result is insufficient, or "".
func fallbackReason(content Content) string {
	if NeedsJavaScript(content.HTML) {
		return "javascript"
	}
	a, err := extract.ArticleFromHTML(content.HTML)
	if err != nil || len(a.Paragraphs) == 0 {
		return "no_paragraphs"
	}
	return ""
}

// NeedsJavaScript checks if a page appears to require JS rendering.
func NeedsJavaScript(html string) bool {
	lower := strings.ToLower(html)

	spaMarkers := []string{
		"<div id=\"root\"></div>",   // React
		"<div id=\"app\"></div>",    // Vue
		"<app-root></app-root>",     // Angular
		"<div id=\"__next\"></div>", // Next.js
		"<div id=\"__nuxt\"></div>", // Nuxt.js
		"<div data-reactroot",       // React
		"ng-app",                    // Angular
		"v-cloak",                   // Vue
	}
	for _, marker := range spaMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}

	if strings.Contains(lower, "<noscript>") {
		noscript := extractBetween(lower, "<noscript>", "</noscript>")
		for _, indicator := range []string{"enable javascript", "javascript is required", "javascript required"} {
			if strings.Contains(noscript, indicator) {
				return true
			}
		}
	}

	return false
}

// extractBetween extracts content between two markers.
func extractBetween(s, start, end string) string {
	startIdx := strings.Index(s, start)
	if startIdx == -1 {
		return ""
	}
	startIdx += len(start)

	endIdx := strings.Index(s[startIdx:], end)
	if endIdx == -1 {
		return ""
	}

	return s[startIdx : startIdx+endIdx]
}

// Close releases all fetcher resources.
func (f *AutoFetcher) Close() error {
	var errs []error
	for _, ft := range []Fetcher{f.static, f.dynamic} {
		if ft != nil {
			errs = append(errs, ft.Close())
		}
	}
	return errors.Join(errs...)
}

// Type returns the fetcher type.
func (f *AutoFetcher) Type() string {
	return "auto"
}
