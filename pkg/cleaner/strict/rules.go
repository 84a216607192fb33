package strict

import (
	"regexp"
)

// RuleCategory names a group of fixed patterns.
type RuleCategory string

const (
	// CategoryUIWords are interface words removed from inside a block.
	CategoryUIWords RuleCategory = "ui_words"
	// CategoryJunk are noise phrases that discard the whole block.
	CategoryJunk RuleCategory = "junk"
	// CategoryNotePrefix marks a "గమనిక" (Note) block.
	CategoryNotePrefix RuleCategory = "note_prefix"
	// CategoryImportance are keywords that keep a note block.
	CategoryImportance RuleCategory = "importance"
	// CategoryAddress matches building/plot number sequences.
	CategoryAddress RuleCategory = "address"
	// CategoryShortShape matches the number and date forms admitted below
	// the minimum line length.
	CategoryShortShape RuleCategory = "short_shape"
)

// Rules holds every fixed pattern by category. It is read-only.
var Rules = map[RuleCategory][]*regexp.Regexp{
	CategoryUIWords: {
		regexp.MustCompile(`(?i)\b(click|download|pdf|live\s*updates?)\b`),
	},
	CategoryJunk: {
		regexp.MustCompile(`(?i)డౌన్\s*లోడ్`),
		regexp.MustCompile(`(?i)డౌన్\x{200C}లోడ్`),
		regexp.MustCompile(`(?i)ఇక్కడ\s*చూడండి`),
		regexp.MustCompile(`(?i)క్లిక్`),
		regexp.MustCompile(`(?i)click`),
		regexp.MustCompile(`(?i)pdf`),
		regexp.MustCompile(`(?i)download`),
		regexp.MustCompile(`(?i)live\s*updates?`),
	},
	CategoryNotePrefix: {
		regexp.MustCompile(`^గమనిక[\s:,\-]`),
	},
	CategoryImportance: {
		regexp.MustCompile(`(?i)(పరీక్ష|సూచనలు|ప్రకటన|అధికారిక|హెచ్చరిక|జాగ్రత్త|advisory|notice|guidelines|exam|instructions|announcement|official|warning|caution)`),
	},
	CategoryAddress: {
		// e.g. 50-17-64 ... 500016
		regexp.MustCompile(`\b\d{1,4}(?:[-/]\d{1,4}){1,4}\b(?:[^\n]*?\b\d{3}\s?-?\s?\d{3}\b)?`),
	},
	CategoryShortShape: {
		regexp.MustCompile(`^\d{1,4}$`),
		regexp.MustCompile(`^\d{1,2}[/-]\d{1,2}[/-](?:\d{2}|\d{4})$`),
		regexp.MustCompile(`^\d{4}[/-]\d{1,2}[/-]\d{1,2}$`),
	},
}

// Address markers wrapped around address matches.
const (
	AddressOpen  = "[ADDRESS]"
	AddressClose = "[/ADDRESS]"
)

// MatchAny reports whether s matches any pattern in the category.
func MatchAny(category RuleCategory, s string) bool {
	for _, re := range Rules[category] {
		if re.MatchString(s) {
			return true
		}
	}
	return false
}

// RemoveAll deletes every match of the category's patterns from s.
func RemoveAll(category RuleCategory, s string) string {
	for _, re := range Rules[category] {
		s = re.ReplaceAllString(s, "")
	}
	return s
}

// TagAddresses wraps each address match in [ADDRESS] ... [/ADDRESS] markers
// without touching the surrounding text.
func TagAddresses(s string) string {
	for _, re := range Rules[CategoryAddress] {
		s = re.ReplaceAllStringFunc(s, func(m string) string {
			return AddressOpen + " " + m + " " + AddressClose
		})
	}
	return s
}

// IsShortShape reports whether s is a bare 1–4 digit number or a date in
// D/M/Y, D-M-Y, Y-M-D or Y/M/D form.
func IsShortShape(s string) bool {
	return MatchAny(CategoryShortShape, s)
}
