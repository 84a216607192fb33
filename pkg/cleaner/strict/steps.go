package strict

import (
	"strings"
	"unicode/utf8"

	"github.com/jmylchreest/telugu-corpus/pkg/cleaner"
)

// Stage identifies a step of the block pipeline.
type Stage string

const (
	StageEmpty     Stage = "empty"
	StageCharset   Stage = "charset"
	StageUIWords   Stage = "ui_words"
	StageJunk      Stage = "junk"
	StageNote      Stage = "note"
	StageAddress   Stage = "address"
	StageEnglish   Stage = "english"
	StageAdmission Stage = "admission"
	StagePostRules Stage = "post_rules"
	StageDuplicate Stage = "duplicate"
)

// step transforms a block or rejects it by returning false.
type step struct {
	stage Stage
	apply func(cfg *Config, block string) (string, bool)
}

// pipeline is the fixed step order. Later patterns assume the
// normalization done by earlier steps.
var pipeline = []step{
	{StageEmpty, collapseStep},
	{StageCharset, charsetStep},
	{StageUIWords, uiWordsStep},
	{StageJunk, junkStep},
	{StageNote, noteStep},
	{StageAddress, addressStep},
	{StageEnglish, englishStep},
	{StageAdmission, admissionStep},
	{StagePostRules, postRulesStep},
}

func collapseStep(_ *Config, block string) (string, bool) {
	t := cleaner.CollapseSpace(block)
	return t, t != ""
}

func charsetStep(_ *Config, block string) (string, bool) {
	t := cleaner.CollapseSpace(cleaner.FilterStrict(block))
	return t, t != ""
}

func uiWordsStep(_ *Config, block string) (string, bool) {
	t := cleaner.CollapseSpace(RemoveAll(CategoryUIWords, block))
	return t, t != ""
}

func junkStep(_ *Config, block string) (string, bool) {
	return block, !MatchAny(CategoryJunk, block)
}

// noteStep drops "గమనిక:" boilerplate unless it carries an importance keyword.
func noteStep(_ *Config, block string) (string, bool) {
	if !MatchAny(CategoryNotePrefix, block) {
		return block, true
	}
	return block, MatchAny(CategoryImportance, block)
}

// addressStep never rejects. A block that is itself a short number or date
// is left untagged so the admission step can still accept it.
func addressStep(cfg *Config, block string) (string, bool) {
	if utf8.RuneCountInString(block) < cfg.MinLineLength && IsShortShape(block) {
		// Intentionally untagged: "1/1/24" must stay a date, not an address.
		return block, true
	}
	return TagAddresses(block), true
}

func englishStep(cfg *Config, block string) (string, bool) {
	if strings.Contains(block, AddressOpen) {
		return block, true
	}
	return block, EnglishRatio(block) <= cfg.EnglishRatio
}

func admissionStep(cfg *Config, block string) (string, bool) {
	n := utf8.RuneCountInString(block)
	if n >= cfg.MinLineLength {
		return block, cleaner.ContainsTelugu(block)
	}
	return block, IsShortShape(block)
}

func postRulesStep(cfg *Config, block string) (string, bool) {
	if !cfg.PostRules {
		return block, true
	}
	return block, KeepAfterPostRules(block, cfg.SideStoryTerms)
}

// EnglishRatio returns the share of ASCII letters among all runes of s.
func EnglishRatio(s string) float64 {
	total := 0
	letters := 0
	for _, r := range s {
		total++
		if cleaner.IsASCIILetter(r) {
			letters++
		}
	}
	if total == 0 || letters == 0 {
		return 0
	}
	return float64(letters) / float64(total)
}

// photoMarker tags photo-gallery teasers.
const photoMarker = "(ఫొటోలు)"

// KeepAfterPostRules reports whether a cleaned line survives the corpus
// post rules.
func KeepAfterPostRules(line string, sideStoryTerms []string) bool {
	if strings.HasPrefix(line, ":") {
		return false
	}
	if strings.Contains(line, photoMarker) {
		return false
	}
	for _, term := range sideStoryTerms {
		if term != "" && strings.Contains(line, term) {
			return false
		}
	}
	return true
}
