package crawler

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/jmylchreest/telugu-corpus/pkg/extract"
)

// LinkSelector picks the links to follow from a page.
type LinkSelector struct {
	CSSSelector string         // CSS selector for links to follow; all a[href] when empty
	URLPattern  *regexp.Regexp // Regex pattern the absolute URL must match
}

// NewLinkSelector creates a link selector.
func NewLinkSelector(cssSelector string, urlPattern string) (*LinkSelector, error) {
	ls := &LinkSelector{
		CSSSelector: cssSelector,
	}

	if urlPattern != "" {
		pattern, err := regexp.Compile(urlPattern)
		if err != nil {
			return nil, err
		}
		ls.URLPattern = pattern
	}

	return ls, nil
}

// ExtractLinks returns matching absolute links in document order, without
// fragments or duplicates.
func (ls *LinkSelector) ExtractLinks(html string, baseURL string) ([]string, error) {
	doc, err := extract.Parse(html)
	if err != nil {
		return nil, err
	}

	var links []string
	if ls.CSSSelector == "" {
		links = extract.Links(doc, baseURL)
	} else {
		base, err := url.Parse(baseURL)
		if err != nil {
			return nil, err
		}
		seen := make(map[string]bool)
		doc.Find(ls.CSSSelector).Each(func(_ int, s *goquery.Selection) {
			if u := resolveHref(s, base); u != "" && !seen[u] {
				seen[u] = true
				links = append(links, u)
			}
		})
	}

	if ls.URLPattern == nil {
		return links, nil
	}
	matched := links[:0]
	for _, link := range links {
		if ls.URLPattern.MatchString(link) {
			matched = append(matched, link)
		}
	}
	return matched, nil
}

// PaginationSelector finds the next page link on section pages.
type PaginationSelector struct {
	NextSelector string // CSS selector for "next" link
}

// NewPaginationSelector creates a pagination selector.
func NewPaginationSelector(nextSelector string) *PaginationSelector {
	return &PaginationSelector{
		NextSelector: nextSelector,
	}
}

// FindNextPage finds the URL of the next page.
func (ps *PaginationSelector) FindNextPage(html string, baseURL string) (string, bool) {
	if ps.NextSelector == "" {
		return "", false
	}

	doc, err := extract.Parse(html)
	if err != nil {
		return "", false
	}
	base, err := url.Parse(baseURL)
	if err != nil {
		return "", false
	}

	next := resolveHref(doc.Find(ps.NextSelector).First(), base)
	return next, next != ""
}

// resolveHref returns the absolute http(s) URL of s's href without its
// fragment, or "" when there is none.
func resolveHref(s *goquery.Selection, base *url.URL) string {
	href, exists := s.Attr("href")
	href = strings.TrimSpace(href)
	if !exists || href == "" {
		return ""
	}
	if strings.HasPrefix(href, "#") || strings.HasPrefix(strings.ToLower(href), "javascript:") {
		return ""
	}

	linkURL, err := url.Parse(href)
	if err != nil {
		return ""
	}
	if !linkURL.IsAbs() {
		linkURL = base.ResolveReference(linkURL)
	}
	if linkURL.Scheme != "http" && linkURL.Scheme != "https" {
		return ""
	}
	linkURL.Fragment = ""
	return linkURL.String()
}
