// Package feed fetches and decodes the vendor's play-by-play and game
// summary feeds.
//
// Both feeds arrive wrapped in a JSONP callback envelope
// (angular.callbacks._N(<json>)); the numeric suffix varies per request.
package feed

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// callbackEnvelope matches the leading callback invocation of a JSONP body.
var callbackEnvelope = regexp.MustCompile(`^\s*[A-Za-z_$][\w.$]*\(`)

// stripEnvelope removes the JSONP callback wrapper and the trailing call
// close. Bodies that arrive as bare JSON pass through untouched.
func stripEnvelope(body string) string {
	trimmed := callbackEnvelope.ReplaceAllString(body, "")
	if trimmed == body {
		return strings.TrimSpace(body)
	}
	return strings.TrimRight(strings.TrimSpace(trimmed), ");\x00 \t\r\n")
}

// decodeEvents strips the envelope and parses the embedded JSON array of
// raw event records.
func decodeEvents(body string) ([]map[string]any, error) {
	const op = "feed.decode_events"
	payload := stripEnvelope(body)

	var records []map[string]any
	if err := json.Unmarshal([]byte(payload), &records); err != nil {
		return nil, fmt.Errorf("%s: %w: %w", op, ErrFeedDecode, err)
	}
	return records, nil
}

// decodeObject strips the envelope and parses the embedded JSON object.
func decodeObject(body string) (map[string]any, error) {
	const op = "feed.decode_object"
	payload := stripEnvelope(body)

	var obj map[string]any
	if err := json.Unmarshal([]byte(payload), &obj); err != nil {
		return nil, fmt.Errorf("%s: %w: %w", op, ErrFeedDecode, err)
	}
	return obj, nil
}
