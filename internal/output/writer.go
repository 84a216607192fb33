// Package output renders cleaned articles for the CLI.
package output

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jmylchreest/telugu-corpus/pkg/cleaner/strict"
	"github.com/jmylchreest/telugu-corpus/pkg/telugu"
)

// Format represents output format types.
type Format string

const (
	FormatText  Format = "text"
	FormatJSON  Format = "json"
	FormatJSONL Format = "jsonl"
	FormatYAML  Format = "yaml"
)

// Formats lists the supported formats, for flag help.
var Formats = []Format{FormatText, FormatJSON, FormatJSONL, FormatYAML}

// ParseFormat resolves a user-supplied format name. Empty means text.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	if f == "" {
		return FormatText, nil
	}
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("unsupported output format: %s", s)
}

// Record is one cleaned article as written by the CLI.
type Record struct {
	URL       string        `json:"url" yaml:"url"`
	Headline  string        `json:"headline,omitempty" yaml:"headline,omitempty"`
	Lines     []string      `json:"lines" yaml:"lines"`
	Pages     int           `json:"pages,omitempty" yaml:"pages,omitempty"`
	Container string        `json:"container,omitempty" yaml:"container,omitempty"`
	SavedTo   string        `json:"saved_to,omitempty" yaml:"saved_to,omitempty"`
	FetchedAt time.Time     `json:"fetched_at" yaml:"fetched_at"`
	Stats     *strict.Stats `json:"stats,omitempty" yaml:"stats,omitempty"`

	// text is the rendered document used by the text writer.
	text string
}

// FromResult builds a record from a scrape or crawl result. Stats are only
// carried when withStats is set.
func FromResult(res *telugu.Result, savedTo string, withStats bool) Record {
	rec := Record{
		URL:       res.Document.URL,
		Headline:  res.Document.Headline,
		Lines:     res.Document.Body,
		Pages:     res.Pages,
		Container: res.Container,
		SavedTo:   savedTo,
		FetchedAt: res.FetchedAt,
		text:      res.Document.String(),
	}
	if rec.Lines == nil {
		rec.Lines = []string{}
	}
	if withStats {
		rec.Stats = res.Stats
	}
	return rec
}

// Text returns the plain-text rendering of the record.
func (r Record) Text() string {
	if r.text != "" {
		return r.text
	}
	return strings.Join(r.Lines, "\n")
}

// Writer handles output serialization.
type Writer interface {
	// Write outputs a single record.
	Write(rec Record) error

	// Flush ensures all data is written.
	Flush() error

	// Close releases resources.
	Close() error
}

// WriterOption configures a writer.
type WriterOption func(*writerConfig)

type writerConfig struct {
	pretty bool
	indent string
}

// WithPretty enables pretty-printing.
func WithPretty(enabled bool) WriterOption {
	return func(c *writerConfig) {
		c.pretty = enabled
	}
}

// WithIndent sets the indentation string.
func WithIndent(indent string) WriterOption {
	return func(c *writerConfig) {
		c.indent = indent
	}
}

// NewWriter creates a writer for the specified format.
func NewWriter(w io.Writer, format Format, opts ...WriterOption) (Writer, error) {
	cfg := &writerConfig{
		pretty: true,
		indent: "  ",
	}
	for _, opt := range opts {
		opt(cfg)
	}

	switch format {
	case FormatText, "":
		return NewTextWriter(w), nil
	case FormatJSON:
		return NewJSONWriter(w, cfg.pretty, cfg.indent), nil
	case FormatJSONL:
		return NewJSONLWriter(w), nil
	case FormatYAML:
		return NewYAMLWriter(w), nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}
