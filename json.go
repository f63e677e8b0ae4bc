package httpflow

import (
	"encoding/json"

	"github.com/kbukum/httpflow/optional"
)

// JSONValue is a raw JSON document. DecodeJSON guarantees a JSONValue
// it produces is valid JSON text.
type JSONValue = json.RawMessage

// EncodeJSON renders v as JSON text. Values encoding/json cannot
// marshal (channels, functions, cycles) render as "null" so the
// function stays total for use inside pure builders.
func EncodeJSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return "null"
	}
	return string(b)
}

// DecodeJSON interprets raw as a JSON document. It is total: invalid
// input yields an absent value, never a panic.
func DecodeJSON(raw string) optional.Optional[JSONValue] {
	if !json.Valid([]byte(raw)) {
		return optional.None[JSONValue]()
	}
	return optional.Some(JSONValue(raw))
}
