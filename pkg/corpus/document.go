// Package corpus holds cleaned article documents and writes them to disk.
package corpus

import (
	"strings"
)

// Line markers used when rendering a document.
const (
	HeadlinePrefix = "HEADLINE: "
	BodyMarker     = "ARTICLE BODY:"
)

// Document is one cleaned article.
type Document struct {
	URL      string   `json:"url" yaml:"url"`
	Headline string   `json:"headline,omitempty" yaml:"headline,omitempty"`
	Body     []string `json:"lines" yaml:"lines"`

	// Sectioned adds an ARTICLE BODY line between headline and body, the
	// layout of corpus files written by the scrape command.
	Sectioned bool `json:"-" yaml:"-"`
}

// Lines renders the document: a HEADLINE line when the headline is
// non-empty, then the body lines.
func (d *Document) Lines() []string {
	lines := make([]string, 0, len(d.Body)+2)
	if h := strings.TrimSpace(d.Headline); h != "" {
		lines = append(lines, HeadlinePrefix+h)
		if d.Sectioned {
			lines = append(lines, BodyMarker)
		}
	}
	return append(lines, d.Body...)
}

// String joins the rendered lines with newlines.
func (d *Document) String() string {
	return strings.Join(d.Lines(), "\n")
}

// Empty reports whether the document has no body lines.
func (d *Document) Empty() bool {
	return len(d.Body) == 0
}
