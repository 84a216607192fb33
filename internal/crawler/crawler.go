package crawler

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/jmylchreest/telugu-corpus/internal/logger"
	"github.com/jmylchreest/telugu-corpus/pkg/fetcher"
)

// Page is one fetched page of a crawl.
type Page struct {
	URL           string
	Depth         int
	Seq           int // visit order, starting at 0
	Content       fetcher.Content
	Error         error
	FetchDuration time.Duration
}

// Config holds crawler configuration.
type Config struct {
	// Link following
	FollowSelector string // CSS selector for links to follow (default: all a[href])
	FollowPattern  string // Regex pattern for URLs to follow
	SameDomainOnly bool   // Only follow links on the seed's host (default: true)
	MaxDepth       int    // Max link depth (0 = seeds only, 1 = seeds + direct links)
	MaxFollow      int    // Max followed pages, seeds excluded (0 = unlimited)

	// Pagination
	NextSelector string // CSS selector for "next page" link
	MaxPages     int    // Max depth-0 pages including seeds (0 = unlimited)

	// Rate limiting
	Delay       time.Duration // Minimum spacing between request starts
	Concurrency int           // Max concurrent requests

	// Fetch options passed to every request.
	FetchOptions fetcher.Options
}

// DefaultFollowLimit is how many links are followed from a seed by default.
const DefaultFollowLimit = 20

// DefaultConfig returns sensible crawler defaults: seed pages only.
func DefaultConfig() Config {
	return Config{
		SameDomainOnly: true,
		MaxDepth:       0,
		MaxFollow:      DefaultFollowLimit,
		Delay:          200 * time.Millisecond,
		Concurrency:    3,
	}
}

// FollowConfig returns DefaultConfig set up to follow up to limit
// same-domain links from each seed.
func FollowConfig(limit int) Config {
	cfg := DefaultConfig()
	cfg.MaxDepth = 1
	cfg.MaxFollow = limit
	return cfg
}

// Crawler fetches seed pages and the links they lead to.
type Crawler struct {
	fetcher fetcher.Fetcher
	config  Config
}

// New creates a new Crawler.
func New(f fetcher.Fetcher, cfg Config) *Crawler {
	if cfg.Concurrency < 1 {
		cfg.Concurrency = 1
	}
	return &Crawler{
		fetcher: f,
		config:  cfg,
	}
}

// Crawl starts crawling from seed URLs and returns pages via channel as they
// complete. The channel is closed when the crawl ends.
func (c *Crawler) Crawl(ctx context.Context, seeds []string) <-chan Page {
	results := make(chan Page, 100)

	go func() {
		defer close(results)
		c.crawl(ctx, seeds, results)
	}()

	return results
}

// Collect runs a crawl to completion and returns the pages in visit order.
func (c *Crawler) Collect(ctx context.Context, seeds []string) []Page {
	var pages []Page
	for p := range c.Crawl(ctx, seeds) {
		pages = append(pages, p)
	}
	sort.Slice(pages, func(i, j int) bool { return pages[i].Seq < pages[j].Seq })
	return pages
}

func (c *Crawler) crawl(ctx context.Context, seeds []string, results chan<- Page) {
	logger.Debug("crawler starting",
		"seeds", len(seeds),
		"max_depth", c.config.MaxDepth,
		"max_follow", c.config.MaxFollow,
		"concurrency", c.config.Concurrency,
		"delay", c.config.Delay)

	queue := NewURLQueue()
	var linkSelector *LinkSelector
	var paginationSelector *PaginationSelector

	if c.config.MaxDepth > 0 {
		var err error
		linkSelector, err = NewLinkSelector(c.config.FollowSelector, c.config.FollowPattern)
		if err != nil {
			results <- Page{Error: fmt.Errorf("invalid link selector: %w", err)}
			return
		}
	}
	if c.config.NextSelector != "" {
		paginationSelector = NewPaginationSelector(c.config.NextSelector)
	}

	for _, seed := range seeds {
		if !queue.Add(seed, 0) {
			logger.Warn("skipping seed", "url", seed)
			results <- Page{URL: seed, Error: fmt.Errorf("invalid or duplicate seed URL: %q", seed)}
		}
	}

	seq := 0
	followed := 0
	depthZero := 0

	// Burst of one: the first request starts at once, later ones are
	// spaced by Delay across all workers.
	limiter := rate.NewLimiter(rate.Inf, 1)
	if c.config.Delay > 0 {
		limiter = rate.NewLimiter(rate.Every(c.config.Delay), 1)
	}

	sem := make(chan struct{}, c.config.Concurrency)
	var wg sync.WaitGroup

	for {
		select {
		case <-ctx.Done():
			wg.Wait()
			return
		default:
		}

		currentURL, depth, ok := queue.Pop()
		if !ok {
			// Queue empty, wait for in-flight requests that may add links
			wg.Wait()
			if queue.Len() == 0 {
				return
			}
			continue
		}

		if depth == 0 {
			if c.config.MaxPages > 0 && depthZero >= c.config.MaxPages {
				logger.Debug("crawler reached max pages", "max_pages", c.config.MaxPages)
				continue
			}
			depthZero++
		} else {
			if c.config.MaxFollow > 0 && followed >= c.config.MaxFollow {
				continue
			}
			followed++
		}

		sem <- struct{}{}
		wg.Add(1)

		go func(url string, d, n int) {
			defer wg.Done()
			defer func() { <-sem }()

			if err := limiter.Wait(ctx); err != nil {
				results <- Page{URL: url, Depth: d, Seq: n, Error: err}
				return
			}

			c.processURL(ctx, url, d, n, queue, linkSelector, paginationSelector, results)
		}(currentURL, depth, seq)
		seq++
	}
}

func (c *Crawler) processURL(
	ctx context.Context,
	url string,
	depth int,
	seq int,
	queue *URLQueue,
	linkSelector *LinkSelector,
	paginationSelector *PaginationSelector,
	results chan<- Page,
) {
	logger.Debug("crawler processing URL", "url", url, "depth", depth)

	fetchStart := time.Now()
	content, err := c.fetcher.Fetch(ctx, url, c.config.FetchOptions)
	fetchDuration := time.Since(fetchStart)

	if err != nil {
		logger.Warn("fetch failed", "url", url, "error", err, "duration", fetchDuration)
		results <- Page{URL: url, Depth: depth, Seq: seq, Error: fmt.Errorf("fetch error: %w", err), FetchDuration: fetchDuration}
		return
	}

	logger.Info("fetched", "url", url, "depth", depth, "fetch", fetchDuration.Round(time.Millisecond))

	// Enqueue before reporting so the crawl loop sees new links once
	// this goroutine is done.
	if linkSelector != nil && depth < c.config.MaxDepth {
		links, err := linkSelector.ExtractLinks(content.HTML, url)
		if err != nil {
			logger.Debug("crawler link extraction failed", "url", url, "error", err)
		}
		added := 0
		for _, link := range links {
			if c.config.SameDomainOnly && !IsSameDomain(url, link) {
				continue
			}
			if queue.Add(link, depth+1) {
				added++
			}
		}
		if added > 0 {
			logger.Info("following links", "from", url, "count", added)
		}
	}

	if paginationSelector != nil && depth == 0 {
		if nextURL, found := paginationSelector.FindNextPage(content.HTML, url); found {
			logger.Info("pagination", "next", nextURL)
			queue.Add(nextURL, 0)
		}
	}

	results <- Page{
		URL:           url,
		Depth:         depth,
		Seq:           seq,
		Content:       content,
		FetchDuration: fetchDuration,
	}
}
