// Package crawler follows links from seed pages and hands back the fetched
// pages in visit order.
package crawler

import (
	"net/url"
	"strings"
	"sync"
)

// URLQueue manages URLs to be crawled with deduplication.
type URLQueue struct {
	mu      sync.Mutex
	queue   []queueItem
	visited map[string]bool
}

type queueItem struct {
	URL   string
	Depth int
}

// NewURLQueue creates a new URL queue.
func NewURLQueue() *URLQueue {
	return &URLQueue{
		queue:   make([]queueItem, 0),
		visited: make(map[string]bool),
	}
}

// Add adds a URL to the queue if it was never queued before.
func (q *URLQueue) Add(rawURL string, depth int) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	normalized := normalizeURL(rawURL)
	if normalized == "" || q.visited[normalized] {
		return false
	}

	q.visited[normalized] = true
	q.queue = append(q.queue, queueItem{URL: normalized, Depth: depth})
	return true
}

// Pop removes and returns the next URL from the queue.
func (q *URLQueue) Pop() (string, int, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.queue) == 0 {
		return "", 0, false
	}

	item := q.queue[0]
	q.queue = q.queue[1:]
	return item.URL, item.Depth, true
}

// Len returns the number of items in the queue.
func (q *URLQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.queue)
}

// Seen returns how many distinct URLs were ever queued.
func (q *URLQueue) Seen() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.visited)
}

// normalizeURL drops the fragment and a trailing slash. Only absolute
// http(s) URLs are accepted.
func normalizeURL(rawURL string) string {
	parsed, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil || parsed.Host == "" {
		return ""
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return ""
	}

	parsed.Fragment = ""
	parsed.Host = strings.ToLower(parsed.Host)

	if len(parsed.Path) > 1 && parsed.Path[len(parsed.Path)-1] == '/' {
		parsed.Path = parsed.Path[:len(parsed.Path)-1]
	}

	return parsed.String()
}

// IsSameDomain reports whether two URLs share a host, ignoring case.
// Subdomains count as different hosts.
func IsSameDomain(url1, url2 string) bool {
	parsed1, err := url.Parse(url1)
	if err != nil || parsed1.Host == "" {
		return false
	}
	parsed2, err := url.Parse(url2)
	if err != nil || parsed2.Host == "" {
		return false
	}
	return strings.EqualFold(parsed1.Host, parsed2.Host)
}
