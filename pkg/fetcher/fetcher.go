// Package fetcher defines how article pages are retrieved.
// StaticFetcher issues a plain HTTP request, DynamicFetcher renders the page
// in headless Chrome, and AutoFetcher picks between them per page.
package fetcher

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Fetcher abstracts page fetching strategies.
type Fetcher interface {
	// Fetch retrieves page content from a URL.
	Fetch(ctx context.Context, url string, opts Options) (Content, error)

	// Close releases any resources (browser instances, etc.).
	Close() error

	// Type returns a string identifying the fetcher type (e.g., "static", "dynamic").
	Type() string
}

// Options controls fetching behavior. Zero values fall back to the
// fetcher's config.
type Options struct {
	UserAgent       string
	Timeout         time.Duration
	WaitForSelector string        // CSS selector to wait for (dynamic fetchers)
	WaitDuration    time.Duration // Additional wait after load
	Headers         map[string]string
}

// Content represents fetched page data.
type Content struct {
	URL         string
	HTML        string
	Title       string
	StatusCode  int
	ContentType string
	FetchedAt   time.Time
	Links       []string // Absolute links found on the page
}

// Mode selects a fetcher implementation.
type Mode string

const (
	ModeAuto    Mode = "auto"
	ModeStatic  Mode = "static"
	ModeDynamic Mode = "dynamic"
)

// Error types for distinguishing failure reasons.
// Check with errors.Is(err, fetcher.ErrStatus).
var (
	// ErrStatus indicates the server answered with a non-2xx status.
	ErrStatus = errors.New("unexpected HTTP status")
	// ErrEmptyBody indicates the server answered without any HTML.
	ErrEmptyBody = errors.New("empty response body")
)

// Config holds configuration shared by all fetchers.
type Config struct {
	UserAgent string
	Timeout   time.Duration
	// Headers are sent with every request.
	Headers map[string]string
}

// Chrome user agent; several Telugu news sites refuse unknown agents.
const defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// DefaultAcceptLanguage asks for Telugu first.
const DefaultAcceptLanguage = "te,en;q=0.8,*;q=0.5"

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		UserAgent: defaultUserAgent,
		Timeout:   30 * time.Second,
		Headers: map[string]string{
			"Accept-Language": DefaultAcceptLanguage,
		},
	}
}

func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if c.UserAgent == "" {
		c.UserAgent = def.UserAgent
	}
	if c.Timeout == 0 {
		c.Timeout = def.Timeout
	}
	if c.Headers == nil {
		c.Headers = def.Headers
	}
	return c
}

// New creates an appropriate fetcher based on mode.
func New(mode Mode, cfg Config) (Fetcher, error) {
	switch mode {
	case ModeStatic:
		return NewStatic(cfg), nil
	case ModeDynamic:
		return NewDynamic(cfg)
	case ModeAuto, "":
		return NewAuto(cfg)
	default:
		return nil, fmt.Errorf("unknown fetch mode: %s", mode)
	}
}

// coalesce returns the first non-empty string.
func coalesce(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
