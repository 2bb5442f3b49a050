package feed

import "errors"

// Sentinel kinds for feed errors. All are terminal for the game being
// scraped; callers get no partial table.
var (
	// ErrGameNotFound signals the vendor does not know the game id.
	ErrGameNotFound = errors.New("game not found")

	// ErrFeedDecode signals an envelope strip or JSON parse failure on the
	// play-by-play feed.
	ErrFeedDecode = errors.New("feed decode failed")

	// ErrMetadataFetch signals the summary feed was unreachable or
	// malformed; the pipeline cannot run without team identity.
	ErrMetadataFetch = errors.New("metadata fetch failed")
)
