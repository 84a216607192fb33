package telugu

import (
	"errors"
)

// Error kinds returned by the Scraper. Check with errors.Is.
var (
	// ErrInvalidInput indicates a missing or malformed URL or text.
	ErrInvalidInput = errors.New("invalid input")
	// ErrFetchFailure indicates the page could not be retrieved. Not retried.
	ErrFetchFailure = errors.New("fetch failed")
	// ErrProcessing indicates an internal failure while extracting or
	// cleaning, including a recovered panic.
	ErrProcessing = errors.New("processing failed")
)
