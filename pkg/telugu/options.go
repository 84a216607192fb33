package telugu

import (
	"time"

	"github.com/jmylchreest/telugu-corpus/internal/crawler"
	"github.com/jmylchreest/telugu-corpus/pkg/cleaner/strict"
	"github.com/jmylchreest/telugu-corpus/pkg/corpus"
	"github.com/jmylchreest/telugu-corpus/pkg/fetcher"
)

// Config holds all Scraper configuration.
type Config struct {
	// Fetching
	FetchMode fetcher.Mode
	UserAgent string
	Timeout   time.Duration

	// Cleaning
	Strict *strict.Config

	// Crawling, used by Crawl. MaxDepth and MaxFollow are set per call.
	CrawlConfig crawler.Config

	// Injected collaborators. Nil values are built from the settings above.
	Fetcher fetcher.Fetcher
	Store   *corpus.Store
}

// DefaultConfig returns sensible defaults: static fetching and the strict
// cleaner's default thresholds.
func DefaultConfig() Config {
	return Config{
		FetchMode:   fetcher.ModeStatic,
		Timeout:     30 * time.Second,
		Strict:      strict.DefaultConfig(),
		CrawlConfig: crawler.DefaultConfig(),
	}
}

// Option configures a Scraper.
type Option func(*Config)

// WithFetchMode sets the fetch mode (auto, static, dynamic).
func WithFetchMode(mode fetcher.Mode) Option {
	return func(c *Config) {
		c.FetchMode = mode
	}
}

// WithUserAgent sets the HTTP user agent.
func WithUserAgent(ua string) Option {
	return func(c *Config) {
		c.UserAgent = ua
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Config) {
		c.Timeout = d
	}
}

// WithStrictConfig replaces the strict cleaner configuration.
func WithStrictConfig(cfg *strict.Config) Option {
	return func(c *Config) {
		c.Strict = cfg
	}
}

// WithCrawlConfig sets the crawl settings used by Crawl.
func WithCrawlConfig(cfg crawler.Config) Option {
	return func(c *Config) {
		c.CrawlConfig = cfg
	}
}

// WithFetcher injects a fetcher. The Scraper closes it on Close.
func WithFetcher(f fetcher.Fetcher) Option {
	return func(c *Config) {
		c.Fetcher = f
	}
}

// WithStore sets where Save writes corpus files.
func WithStore(s *corpus.Store) Option {
	return func(c *Config) {
		c.Store = s
	}
}
