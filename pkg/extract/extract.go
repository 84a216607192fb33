// Package extract pulls the article headline, body paragraphs and links out
// of fetched HTML.
package extract

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ContainerSelectors are tried in order; the first one that yields at least
// one non-blank paragraph wins.
var ContainerSelectors = []string{
	"article p",
	"main p",
	`div[role="main"] p`,
	"p",
}

// noiseSelectors are removed before paragraphs are collected.
const noiseSelectors = "script, style, noscript, iframe, svg, template"

// Article is the best-effort content of one page.
type Article struct {
	// Headline is the first h1, else the first h2, whitespace collapsed.
	Headline string
	// Paragraphs holds the raw text of each non-blank paragraph in document order.
	Paragraphs []string
	// Container is the selector that produced Paragraphs, empty when none did.
	Container string
	// Title is the <title> text.
	Title string
}

// Parse parses html into a goquery document.
func Parse(html string) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}
	return doc, nil
}

// ArticleFromHTML extracts the article from raw HTML.
func ArticleFromHTML(html string) (Article, error) {
	doc, err := Parse(html)
	if err != nil {
		return Article{}, err
	}
	return ArticleFromDocument(doc), nil
}

// ArticleFromDocument extracts the article from a parsed document.
// The document is modified: noise elements are removed.
func ArticleFromDocument(doc *goquery.Document) Article {
	doc.Find(noiseSelectors).Remove()

	a := Article{
		Headline: Headline(doc),
		Title:    Title(doc),
	}

	for _, sel := range ContainerSelectors {
		var paras []string
		doc.Find(sel).Each(func(_ int, s *goquery.Selection) {
			text := s.Text()
			if strings.TrimSpace(text) != "" {
				paras = append(paras, text)
			}
		})
		if len(paras) > 0 {
			a.Paragraphs = paras
			a.Container = sel
			break
		}
	}

	return a
}

// Title returns the <title> text, whitespace collapsed.
func Title(doc *goquery.Document) string {
	return collapse(doc.Find("title").First().Text())
}

// Headline returns the first h1 text, falling back to the first h2.
func Headline(doc *goquery.Document) string {
	for _, sel := range []string{"h1", "h2"} {
		if h := collapse(doc.Find(sel).First().Text()); h != "" {
			return h
		}
	}
	return ""
}

// Links returns the absolute http(s) URLs of all a[href] elements, resolved
// against base, without fragments and in document order. Duplicates are
// removed.
func Links(doc *goquery.Document, base string) []string {
	baseURL, _ := url.Parse(base)

	seen := make(map[string]bool)
	var links []string
	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		href = strings.TrimSpace(href)
		if href == "" || strings.HasPrefix(href, "#") {
			return
		}
		if strings.HasPrefix(strings.ToLower(href), "javascript:") {
			return
		}

		linkURL, err := url.Parse(href)
		if err != nil {
			return
		}
		if !linkURL.IsAbs() && baseURL != nil {
			linkURL = baseURL.ResolveReference(linkURL)
		}
		if linkURL.Scheme != "http" && linkURL.Scheme != "https" {
			return
		}
		linkURL.Fragment = ""

		u := linkURL.String()
		if !seen[u] {
			seen[u] = true
			links = append(links, u)
		}
	})
	return links
}

// LinksFromHTML is Links over raw HTML.
func LinksFromHTML(html, base string) ([]string, error) {
	doc, err := Parse(html)
	if err != nil {
		return nil, err
	}
	return Links(doc, base), nil
}

func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
