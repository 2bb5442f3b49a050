package pipeline

import "github.com/okian/pbp/internal/domain/event"

// joinMetadata stamps every row identically with the game identity block
// from the summary feed.
func (p *Pipeline) joinMetadata(t *event.Table, meta event.GameMeta) {
	for _, r := range t.Rows {
		r.GameID = meta.GameID
		r.GameDate = meta.Date
		r.SeasonID = meta.SeasonID
	}
}
