package models

import (
	"github.com/spf13/cast"
)

// Record is one usage-metric record as decoded from JSON: a user-day of
// activity with optional scalar fields and up to five nested breakdown
// lists. Accessors coerce missing or mistyped fields to zero values
// (0 / "" / false), matching the best-effort extraction contract.
type Record map[string]any

func (r Record) Str(key string) string {
	return cast.ToString(r[key])
}

func (r Record) Int(key string) int {
	return cast.ToInt(r[key])
}

func (r Record) Bool(key string) bool {
	return cast.ToBool(r[key])
}

// Sub returns a nested object field. Absent or non-object values yield an
// empty Record, so chained lookups stay total.
func (r Record) Sub(key string) Record {
	if m, ok := r[key].(map[string]any); ok {
		return Record(m)
	}
	return Record{}
}

// List returns a nested list field as records. Elements that are not JSON
// objects are dropped; an absent or non-list field yields nil.
func (r Record) List(key string) []Record {
	raw, ok := r[key].([]any)
	if !ok {
		return nil
	}
	out := make([]Record, 0, len(raw))
	for _, el := range raw {
		if m, ok := el.(map[string]any); ok {
			out = append(out, Record(m))
		}
	}
	return out
}
