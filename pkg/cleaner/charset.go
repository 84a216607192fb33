package cleaner

import (
	"strings"
	"unicode"
)

// Telugu block boundaries.
const (
	TeluguFirst rune = 0x0C00
	TeluguLast  rune = 0x0C7F
)

// Zero-width joiners used inside Telugu conjuncts.
const (
	ZWNJ rune = 0x200C
	ZWJ  rune = 0x200D
)

// Punctuation kept by both cleaners. Slash is strict-only, see StrictAllowed.
var punctuation = map[rune]bool{
	'.':      true,
	',':      true,
	'!':      true,
	'?':      true,
	';':      true,
	':':      true,
	'(':      true,
	')':      true,
	'"':      true,
	'\'':     true,
	'-':      true,
	'\u2013': true, // en dash
	'\u2014': true, // em dash
	'\u2026': true, // ellipsis
	'\u20B9': true, // rupee sign
}

// IsTelugu reports whether r is in the Telugu block U+0C00–U+0C7F.
func IsTelugu(r rune) bool {
	return r >= TeluguFirst && r <= TeluguLast
}

// ContainsTelugu reports whether s has at least one Telugu character.
func ContainsTelugu(s string) bool {
	return strings.IndexFunc(s, IsTelugu) >= 0
}

func isASCIIDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// IsASCIILetter reports whether r is A-Z or a-z.
func IsASCIILetter(r rune) bool {
	return (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z')
}

// BasicAllowed reports whether r survives the basic character filter:
// Telugu, ASCII digits, whitespace, the shared punctuation and ZWJ/ZWNJ.
// ASCII letters are not allowed.
func BasicAllowed(r rune) bool {
	switch {
	case IsTelugu(r), isASCIIDigit(r), unicode.IsSpace(r):
		return true
	case r == ZWNJ, r == ZWJ:
		return true
	}
	return punctuation[r]
}

// StrictAllowed reports whether r survives the strict character filter:
// Telugu, ASCII digits and letters, whitespace, the shared punctuation and
// slash. Zero-width joiners are not allowed.
func StrictAllowed(r rune) bool {
	switch {
	case IsTelugu(r), isASCIIDigit(r), IsASCIILetter(r), unicode.IsSpace(r):
		return true
	case r == '/':
		return true
	}
	return punctuation[r]
}

// FilterBasic deletes every character outside the basic allowed set.
func FilterBasic(s string) string {
	return strings.Map(func(r rune) rune {
		if BasicAllowed(r) {
			return r
		}
		return -1
	}, s)
}

// FilterStrict replaces each run of characters outside the strict allowed
// set with a single space. Callers collapse whitespace afterwards.
func FilterStrict(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	inRun := false
	for _, r := range s {
		if StrictAllowed(r) {
			b.WriteRune(r)
			inRun = false
			continue
		}
		if !inRun {
			b.WriteByte(' ')
			inRun = true
		}
	}
	return b.String()
}

// CollapseSpace replaces runs of whitespace with a single space and trims.
func CollapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
