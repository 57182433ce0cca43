package usecase

import (
	"bytes"
	"encoding/json"

	"github.com/tidwall/gjson"
)

// extractText accepts a bare JSON string or an array whose first element is a string.
func extractText(payload json.RawMessage) (text string, shape string, ok bool) {
	if !gjson.ValidBytes(payload) {
		return "", "", false
	}

	res := gjson.ParseBytes(payload)
	switch {
	case res.Type == gjson.String:
		return res.Str, "string", true
	case res.IsArray():
		if first := res.Get("0"); first.Type == gjson.String {
			return first.Str, "array", true
		}
	}
	return "", "", false
}

func compactPayload(payload json.RawMessage) string {
	var buf bytes.Buffer
	if err := json.Compact(&buf, payload); err != nil {
		return string(payload)
	}
	return buf.String()
}
