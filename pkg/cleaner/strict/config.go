// Package strict provides the article paragraph cleaner.
//
// It is applied to paragraphs already isolated from a page's main content
// region. Each paragraph runs through a fixed, ordered chain of steps and is
// either kept or discarded at the first failing step. The rule tables are
// fixed; only the numeric thresholds are tunable through Config.
package strict

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Defaults. These are hand-tuned values without a derivation; they are
// exposed on Config so they can be adjusted per corpus.
const (
	DefaultEnglishRatio  = 0.6
	DefaultMinLineLength = 10
	DefaultMaxLines      = 5000
)

// DefaultSideStoryTerms are phrases marking unrelated side stories that the
// post rules drop.
var DefaultSideStoryTerms = []string{
	"బర్త్ డే",
	"థాయిలాండ్",
	"సింధు",
	"దర్శకులతో",
}

// Config defines the tunable parameters of the strict cleaner.
type Config struct {
	// EnglishRatio is the ASCII-letter share above which a block without an
	// address marker is treated as UI text. Default: 0.6.
	EnglishRatio float64 `json:"english_ratio" yaml:"english_ratio" mapstructure:"english_ratio" validate:"gt=0,lte=1"`

	// MinLineLength is the rune length from which a Telugu block is kept.
	// Shorter blocks survive only as bare numbers or dates. Default: 10.
	MinLineLength int `json:"min_line_length" yaml:"min_line_length" mapstructure:"min_line_length" validate:"gte=1"`

	// MaxLines caps the number of kept lines per call. Default: 5000.
	MaxLines int `json:"max_lines" yaml:"max_lines" mapstructure:"max_lines" validate:"gte=1"`

	// PostRules enables the corpus post rules: drop photo-gallery markers,
	// lines starting with ':' and side-story lines.
	PostRules bool `json:"post_rules" yaml:"post_rules" mapstructure:"post_rules"`

	// SideStoryTerms are used by the post rules.
	SideStoryTerms []string `json:"side_story_terms" yaml:"side_story_terms" mapstructure:"side_story_terms" validate:"dive,required"`

	// Debug logs every discarded block with its stage.
	Debug bool `json:"debug" yaml:"debug" mapstructure:"debug"`
}

// DefaultConfig returns the configuration used by the scrape endpoints.
func DefaultConfig() *Config {
	return &Config{
		EnglishRatio:   DefaultEnglishRatio,
		MinLineLength:  DefaultMinLineLength,
		MaxLines:       DefaultMaxLines,
		PostRules:      false,
		SideStoryTerms: append([]string(nil), DefaultSideStoryTerms...),
	}
}

// PresetCorpus returns DefaultConfig with the post rules enabled. This is
// what the command-line scraper uses when building corpus files.
func PresetCorpus() *Config {
	cfg := DefaultConfig()
	cfg.PostRules = true
	return cfg
}

var validate = validator.New()

// Validate checks the config values.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok {
			msgs := make([]string, 0, len(verrs))
			for _, e := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s failed %s=%s", e.Field(), e.Tag(), e.Param()))
			}
			return fmt.Errorf("invalid strict config: %s", strings.Join(msgs, "; "))
		}
		return fmt.Errorf("invalid strict config: %w", err)
	}
	return nil
}

// Merge returns a copy of c with non-zero values from other applied.
// Side-story terms are appended, not replaced.
func (c *Config) Merge(other *Config) *Config {
	merged := *c
	merged.SideStoryTerms = append([]string(nil), c.SideStoryTerms...)
	if other == nil {
		return &merged
	}

	if other.EnglishRatio > 0 {
		merged.EnglishRatio = other.EnglishRatio
	}
	if other.MinLineLength > 0 {
		merged.MinLineLength = other.MinLineLength
	}
	if other.MaxLines > 0 {
		merged.MaxLines = other.MaxLines
	}
	if other.PostRules {
		merged.PostRules = true
	}
	if other.Debug {
		merged.Debug = true
	}

	if len(other.SideStoryTerms) > 0 {
		seen := make(map[string]bool, len(merged.SideStoryTerms))
		for _, t := range merged.SideStoryTerms {
			seen[t] = true
		}
		for _, t := range other.SideStoryTerms {
			if !seen[t] {
				merged.SideStoryTerms = append(merged.SideStoryTerms, t)
				seen[t] = true
			}
		}
	}

	return &merged
}
