package feed

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/okian/pbp/internal/domain/event"
	"github.com/okian/pbp/pkg/metrics"
)

// Summary fetches the game summary feed and extracts the identity block the
// pipeline stamps onto every row. Any fetch or parse failure is terminal:
// the pipeline cannot attribute teams without it.
func (c *Client) Summary(ctx context.Context, gameID int) (event.GameMeta, error) {
	const op = "feed.summary"
	body, err := c.fetch(ctx, viewSummary, gameID)
	if err != nil {
		if errors.Is(err, ErrGameNotFound) {
			return event.GameMeta{}, fmt.Errorf("%s: %w", op, err)
		}
		metrics.RecordMetadataError()
		return event.GameMeta{}, fmt.Errorf("%s: %w: %w", op, ErrMetadataFetch, err)
	}
	obj, err := decodeObject(body)
	if err != nil {
		metrics.RecordMetadataError()
		return event.GameMeta{}, fmt.Errorf("%s: %w: %w", op, ErrMetadataFetch, err)
	}
	meta, err := parseSummary(obj)
	if err != nil {
		metrics.RecordMetadataError()
		return event.GameMeta{}, fmt.Errorf("%s: %w: %w", op, ErrMetadataFetch, err)
	}
	return meta, nil
}

// parseSummary pulls team identity, date, and season out of the decoded
// summary object.
func parseSummary(obj map[string]any) (event.GameMeta, error) {
	meta := event.GameMeta{
		GameID:     digString(obj, "details", "id"),
		Date:       digString(obj, "details", "GameDateISO8601"),
		SeasonID:   digString(obj, "details", "seasonId"),
		HomeID:     digInt(obj, "homeTeam", "info", "id"),
		AwayID:     digInt(obj, "visitingTeam", "info", "id"),
		HomeAbbrev: digString(obj, "homeTeam", "info", "abbreviation"),
		AwayAbbrev: digString(obj, "visitingTeam", "info", "abbreviation"),
	}
	if meta.HomeID == 0 || meta.AwayID == 0 {
		return event.GameMeta{}, errors.New("summary missing team identity")
	}
	if meta.HomeAbbrev == "" || meta.AwayAbbrev == "" {
		return event.GameMeta{}, errors.New("summary missing team abbreviations")
	}
	return meta, nil
}

// digString walks nested objects and renders the leaf as a string.
func digString(obj map[string]any, path ...string) string {
	var cur any = obj
	for _, p := range path {
		m, ok := cur.(map[string]any)
		if !ok {
			return ""
		}
		cur = m[p]
	}
	switch v := cur.(type) {
	case string:
		return v
	case float64:
		if v == float64(int64(v)) {
			return strconv.FormatInt(int64(v), 10)
		}
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return ""
	}
}

// digInt walks nested objects and renders the leaf as an int, 0 when absent
// or non-numeric.
func digInt(obj map[string]any, path ...string) int {
	n, err := strconv.Atoi(digString(obj, path...))
	if err != nil {
		return 0
	}
	return n
}
