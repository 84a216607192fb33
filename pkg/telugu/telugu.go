// Package telugu is the public API for building a Telugu text corpus from
// web articles: fetch a page, isolate its article paragraphs, clean them with
// the strict cleaner and optionally save the result as a corpus file.
package telugu

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/jmylchreest/telugu-corpus/internal/crawler"
	"github.com/jmylchreest/telugu-corpus/internal/logger"
	"github.com/jmylchreest/telugu-corpus/pkg/cleaner"
	"github.com/jmylchreest/telugu-corpus/pkg/cleaner/strict"
	"github.com/jmylchreest/telugu-corpus/pkg/corpus"
	"github.com/jmylchreest/telugu-corpus/pkg/extract"
	"github.com/jmylchreest/telugu-corpus/pkg/fetcher"
)

// RawMinLength is the rune length from which ScrapeRaw keeps a paragraph.
const RawMinLength = 10

// Result is one cleaned article, or the pooled result of a crawl.
type Result struct {
	Document  *corpus.Document
	Stats     *strict.Stats
	Container string // selector the paragraphs came from (first page)
	Pages     int    // pages that contributed paragraphs
	FetchedAt time.Time

	FetchDuration time.Duration
}

// Scraper wires fetcher, extraction, strict cleaning and storage.
// It is safe for concurrent use.
type Scraper struct {
	fetcher fetcher.Fetcher
	cleaner *strict.Cleaner
	store   *corpus.Store
	config  Config
}

// New creates a new Scraper.
func New(opts ...Option) (*Scraper, error) {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.Strict == nil {
		cfg.Strict = strict.DefaultConfig()
	}
	if err := cfg.Strict.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	f := cfg.Fetcher
	if f == nil {
		var err error
		f, err = fetcher.New(cfg.FetchMode, fetcher.Config{
			UserAgent: cfg.UserAgent,
			Timeout:   cfg.Timeout,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create fetcher: %w", err)
		}
	}

	logger.Debug("scraper created",
		"fetcher", f.Type(),
		"max_lines", cfg.Strict.MaxLines,
		"post_rules", cfg.Strict.PostRules)

	return &Scraper{
		fetcher: f,
		cleaner: strict.New(cfg.Strict),
		store:   cfg.Store,
		config:  cfg,
	}, nil
}

// Scrape fetches one article and returns its cleaned document.
func (s *Scraper) Scrape(ctx context.Context, rawURL string) (*Result, error) {
	if err := ValidateURL(rawURL); err != nil {
		return nil, err
	}

	content, fetchDuration, err := s.fetch(ctx, rawURL)
	if err != nil {
		return nil, err
	}

	article, err := extract.ArticleFromHTML(content.HTML)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProcessing, err)
	}

	result, err := s.clean(rawURL, article.Headline, article.Paragraphs)
	if err != nil {
		return nil, err
	}
	result.Container = article.Container
	result.FetchedAt = content.FetchedAt
	result.FetchDuration = fetchDuration
	if len(article.Paragraphs) > 0 {
		result.Pages = 1
	}

	logger.Info("scraped",
		"url", rawURL,
		"container", article.Container,
		"paragraphs", len(article.Paragraphs),
		"lines", len(result.Document.Body),
		"fetch", fetchDuration.Round(time.Millisecond))
	return result, nil
}

// ScrapeRaw fetches one article and returns its Telugu paragraphs with
// whitespace collapsed, joined by blank lines. No strict cleaning is applied.
func (s *Scraper) ScrapeRaw(ctx context.Context, rawURL string) (string, error) {
	if err := ValidateURL(rawURL); err != nil {
		return "", err
	}

	content, _, err := s.fetch(ctx, rawURL)
	if err != nil {
		return "", err
	}

	article, err := extract.ArticleFromHTML(content.HTML)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrProcessing, err)
	}
	return strings.Join(RawParagraphs(article.Paragraphs), "\n\n"), nil
}

// RawParagraphs collapses whitespace and keeps paragraphs that contain
// Telugu and are at least RawMinLength runes long.
func RawParagraphs(paragraphs []string) []string {
	var out []string
	for _, p := range paragraphs {
		t := cleaner.CollapseSpace(p)
		if t == "" || !cleaner.ContainsTelugu(t) || utf8.RuneCountInString(t) < RawMinLength {
			continue
		}
		out = append(out, t)
	}
	return out
}

// Crawl scrapes seed and up to limit same-domain pages linked from it, pools
// their paragraphs in visit order and cleans them in one pass. The headline
// is the seed's. A seed that cannot be fetched fails the call; failing
// followed pages are skipped.
func (s *Scraper) Crawl(ctx context.Context, seed string, limit int) (*Result, error) {
	if err := ValidateURL(seed); err != nil {
		return nil, err
	}
	if limit < 0 {
		return nil, fmt.Errorf("%w: negative follow limit %d", ErrInvalidInput, limit)
	}

	cfg := s.config.CrawlConfig
	cfg.MaxDepth = 1
	cfg.MaxFollow = limit
	if limit == 0 {
		cfg.MaxDepth = 0
	}
	cfg.FetchOptions = s.fetchOptions()
	if _, err := crawler.NewLinkSelector(cfg.FollowSelector, cfg.FollowPattern); err != nil {
		return nil, fmt.Errorf("%w: follow pattern: %v", ErrInvalidInput, err)
	}

	start := time.Now()
	pages := crawler.New(s.fetcher, cfg).Collect(ctx, []string{seed})

	var headline, container string
	var paragraphs []string
	contributed := 0
	var fetchedAt time.Time

	for _, page := range pages {
		if page.Error != nil {
			if page.Seq == 0 {
				return nil, fmt.Errorf("%w: %s: %v", ErrFetchFailure, page.URL, page.Error)
			}
			logger.Warn("skipping page", "url", page.URL, "error", page.Error)
			continue
		}

		article, err := extract.ArticleFromHTML(page.Content.HTML)
		if err != nil {
			logger.Warn("skipping unparsable page", "url", page.URL, "error", err)
			continue
		}
		if page.Seq == 0 {
			headline = article.Headline
			container = article.Container
			fetchedAt = page.Content.FetchedAt
		}
		if len(article.Paragraphs) > 0 {
			contributed++
			paragraphs = append(paragraphs, article.Paragraphs...)
		}
	}
	if len(pages) == 0 {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrFetchFailure, err)
		}
	}

	result, err := s.clean(seed, headline, paragraphs)
	if err != nil {
		return nil, err
	}
	result.Container = container
	result.Pages = contributed
	result.FetchedAt = fetchedAt
	result.FetchDuration = time.Since(start)

	logger.Info("crawled",
		"seed", seed,
		"pages", len(pages),
		"contributing", contributed,
		"lines", len(result.Document.Body))
	return result, nil
}

// Save writes the document to the configured store and returns its path.
func (s *Scraper) Save(doc *corpus.Document) (string, error) {
	if s.store == nil {
		return "", fmt.Errorf("%w: no corpus store configured", ErrProcessing)
	}
	path, err := s.store.Save(doc)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrProcessing, err)
	}
	return path, nil
}

// Cleaner returns the strict cleaner in use.
func (s *Scraper) Cleaner() *strict.Cleaner {
	return s.cleaner
}

// Close releases all resources.
func (s *Scraper) Close() error {
	if s.fetcher != nil {
		return s.fetcher.Close()
	}
	return nil
}

// CleanText runs the basic cleaner over raw text.
func CleanText(raw string) string {
	return cleaner.CleanText(raw)
}

// ValidateURL checks that rawURL is an absolute http(s) URL.
func ValidateURL(rawURL string) error {
	if strings.TrimSpace(rawURL) == "" {
		return fmt.Errorf("%w: missing URL", ErrInvalidInput)
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: not an http(s) URL: %q", ErrInvalidInput, rawURL)
	}
	return nil
}

func (s *Scraper) fetchOptions() fetcher.Options {
	return fetcher.Options{
		UserAgent: s.config.UserAgent,
		Timeout:   s.config.Timeout,
	}
}

func (s *Scraper) fetch(ctx context.Context, rawURL string) (fetcher.Content, time.Duration, error) {
	start := time.Now()
	content, err := s.fetcher.Fetch(ctx, rawURL, s.fetchOptions())
	d := time.Since(start)
	if err != nil {
		logger.Warn("fetch failed", "url", rawURL, "error", err, "duration", d)
		return content, d, fmt.Errorf("%w: %v", ErrFetchFailure, err)
	}
	return content, d, nil
}

// clean runs the strict cleaner over paragraphs and headline. A panic in
// the cleaner is reported as ErrProcessing.
func (s *Scraper) clean(rawURL, headline string, paragraphs []string) (result *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("cleaner panic", "url", rawURL, "panic", r)
			result = nil
			err = fmt.Errorf("%w: cleaner panic: %v", ErrProcessing, r)
		}
	}()

	cleaned := s.cleaner.CleanWithStats(paragraphs)
	return &Result{
		Document: &corpus.Document{
			URL:      rawURL,
			Headline: s.cleaner.CleanHeadline(headline),
			Body:     cleaned.Lines,
		},
		Stats: cleaned.Stats,
	}, nil
}
