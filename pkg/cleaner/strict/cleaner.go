package strict

import (
	"regexp"
	"strings"
	"time"

	"github.com/jmylchreest/telugu-corpus/internal/logger"
	"github.com/jmylchreest/telugu-corpus/pkg/cleaner"
)

var newlineRegex = regexp.MustCompile(`\r?\n`)

// Cleaner is the strict article cleaner.
// It implements the cleaner.Cleaner interface. A Cleaner holds only its
// config, so one instance can serve concurrent calls.
type Cleaner struct {
	config *Config
}

// New creates a new Cleaner with the given configuration.
// If config is nil, DefaultConfig() is used.
func New(config *Config) *Cleaner {
	if config == nil {
		config = DefaultConfig()
	}
	return &Cleaner{
		config: config,
	}
}

// Name returns the cleaner name for logging.
func (c *Cleaner) Name() string {
	return "strict"
}

// Config returns the cleaner's configuration.
func (c *Cleaner) Config() *Config {
	return c.config
}

// Clean treats each input line as one paragraph and returns the kept
// lines joined with newlines.
func (c *Cleaner) Clean(text string) (string, error) {
	lines := c.CleanParagraphs(newlineRegex.Split(text, -1))
	return strings.Join(lines, "\n"), nil
}

// CleanParagraphs returns the kept paragraphs in input order.
func (c *Cleaner) CleanParagraphs(paragraphs []string) []string {
	return c.CleanWithStats(paragraphs).Lines
}

// CleanWithStats runs every paragraph through the step pipeline, dedups the
// survivors and stops once MaxLines lines are kept.
func (c *Cleaner) CleanWithStats(paragraphs []string) *Result {
	start := time.Now()
	result := &Result{
		Lines: make([]string, 0),
		Stats: NewStats(),
	}

	seen := make(map[string]bool)
	for _, p := range paragraphs {
		if len(result.Lines) >= c.config.MaxLines {
			result.Stats.Truncated = true
			break
		}

		result.Stats.Blocks++
		result.Stats.InputBytes += len(p)

		line, stage, ok := c.CleanBlock(p)
		if !ok {
			result.Stats.RecordDiscard(stage)
			c.debugDiscard(stage, p)
			continue
		}
		if seen[line] {
			result.Stats.RecordDiscard(StageDuplicate)
			continue
		}
		seen[line] = true

		if strings.Contains(line, AddressOpen) {
			result.Stats.AddressBlocks++
		}
		result.Lines = append(result.Lines, line)
		result.Stats.OutputBytes += len(line)
	}

	result.Stats.Kept = len(result.Lines)
	result.Stats.Duration = time.Since(start)

	logger.Debug("strict clean complete",
		"blocks", result.Stats.Blocks,
		"kept", result.Stats.Kept,
		"discarded", result.Stats.TotalDiscarded(),
		"truncated", result.Stats.Truncated)

	return result
}

// CleanBlock runs a single block through the step pipeline. It returns the
// cleaned block, or the stage that rejected it and false.
func (c *Cleaner) CleanBlock(block string) (string, Stage, bool) {
	t := block
	for _, s := range pipeline {
		var ok bool
		t, ok = s.apply(c.config, t)
		if !ok {
			return "", s.stage, false
		}
	}
	return t, "", true
}

// CleanHeadline applies the strict character filter and UI-word removal
// only. No length, junk, address or dedup rules apply to headlines.
func (c *Cleaner) CleanHeadline(headline string) string {
	h := cleaner.CollapseSpace(headline)
	h = cleaner.CollapseSpace(cleaner.FilterStrict(h))
	return cleaner.CollapseSpace(RemoveAll(CategoryUIWords, h))
}

func (c *Cleaner) debugDiscard(stage Stage, block string) {
	if !c.config.Debug {
		return
	}
	logger.Debug("block discarded", "stage", stage, "block", logger.Preview(cleaner.CollapseSpace(block), 60))
}
