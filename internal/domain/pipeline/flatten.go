package pipeline

import (
	"strconv"

	"github.com/okian/pbp/internal/domain/event"
)

// flatten turns each raw record into a Row with all nested object paths
// flattened into dotted keys (details.shooter.id, ...). Arrays are left on
// the raw record; the role resolver reads assist lists from there. Row order
// is preserved and equals chronological feed order.
func (p *Pipeline) flatten(records []map[string]any) *event.Table {
	t := &event.Table{Rows: make([]*event.Row, 0, len(records))}
	for _, rec := range records {
		r := &event.Row{
			Raw:    rec,
			Fields: make(map[string]string),
		}
		flattenInto(r.Fields, "", rec)
		t.Rows = append(t.Rows, r)
	}
	return t
}

func flattenInto(dst map[string]string, prefix string, v any) {
	switch val := v.(type) {
	case map[string]any:
		for k, child := range val {
			key := k
			if prefix != "" {
				key = prefix + "." + k
			}
			flattenInto(dst, key, child)
		}
	case []any:
		// Arrays are handled by the stage that owns them.
	default:
		if prefix != "" {
			dst[prefix] = scalarString(v)
		}
	}
}

// scalarString renders a decoded JSON scalar the way the vendor writes it:
// integral floats without a fraction, booleans as "1"/"0" to match the
// feed's flag convention.
func scalarString(v any) string {
	switch val := v.(type) {
	case nil:
		return event.Absent
	case string:
		return val
	case bool:
		if val {
			return "1"
		}
		return "0"
	case int:
		return strconv.Itoa(val)
	case float64:
		if val == float64(int64(val)) {
			return strconv.FormatInt(int64(val), 10)
		}
		return strconv.FormatFloat(val, 'f', -1, 64)
	default:
		return event.Absent
	}
}
