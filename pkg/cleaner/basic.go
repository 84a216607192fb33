package cleaner

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"github.com/jmylchreest/telugu-corpus/internal/logger"
)

var (
	// Naive, non-validating: any angle-bracket span is dropped.
	tagRegex     = regexp.MustCompile(`<[^>]*>`)
	newlineRegex = regexp.MustCompile(`\r?\n`)
)

// BasicCleaner is the light whole-text cleaner used for uploads and pasted
// text: markup strip, NFC, basic character filter, line dedup and trim.
// It is stateless and safe for concurrent use.
type BasicCleaner struct{}

// NewBasic creates a basic cleaner.
func NewBasic() *BasicCleaner {
	return &BasicCleaner{}
}

// Clean runs the basic pipeline. It never returns an error.
func (c *BasicCleaner) Clean(text string) (string, error) {
	return CleanText(text), nil
}

// Name returns the cleaner type.
func (c *BasicCleaner) Name() string {
	return "basic"
}

// CleanAny cleans v when it is a string and returns "" for anything else.
func CleanAny(v any) string {
	s, ok := v.(string)
	if !ok {
		return ""
	}
	return CleanText(s)
}

// CleanText runs the basic pipeline on raw text. Stage order is fixed.
func CleanText(raw string) string {
	s := stripMarkup(raw)
	s = normalizeNFC(s)
	s = FilterBasic(s)
	s = dedupLines(s)
	s = trimLines(s)

	logger.Debug("basic clean complete", "input_bytes", len(raw), "output_bytes", len(s))
	return s
}

func stripMarkup(s string) string {
	return tagRegex.ReplaceAllString(s, "")
}

var composeNFC = norm.NFC.String

// normalizeNFC composes s to NFC. Malformed input is passed through as is.
func normalizeNFC(s string) (out string) {
	if !utf8.ValidString(s) {
		return s
	}
	defer func() {
		if r := recover(); r != nil {
			logger.Warn("unicode normalization failed, passing through", "panic", r)
			out = s
		}
	}()
	return composeNFC(s)
}

// dedupLines keeps the first occurrence of each line. Lines are compared
// after trimming and collapsing inner whitespace; blank lines are dropped.
func dedupLines(s string) string {
	lines := newlineRegex.Split(s, -1)
	seen := make(map[string]bool, len(lines))
	out := make([]string, 0, len(lines))

	for _, line := range lines {
		key := CollapseSpace(line)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, key)
	}
	return strings.Join(out, "\n")
}

func trimLines(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}
