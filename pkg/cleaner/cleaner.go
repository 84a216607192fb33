// Package cleaner provides the text cleaners that turn scraped or uploaded
// text into Telugu corpus lines.
//
// The Basic cleaner handles arbitrary pasted or uploaded text. The strict
// article cleaner in the strict subpackage handles paragraphs taken from a
// page's main content region. Both share the character tables in this package.
package cleaner

// Cleaner transforms text into corpus-ready text.
type Cleaner interface {
	// Clean transforms the input into cleaned, newline-separated lines.
	Clean(text string) (string, error)

	// Name returns the cleaner type for logging/debugging.
	Name() string
}
