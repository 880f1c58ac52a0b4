package services

import (
	"encoding/json"
	"strings"
)

// ExtractJSON is a best-effort fallback parser for model output. It takes the
// text between the first '{' and the last '}' and decodes it. Prose or
// markdown fences around the object are ignored; several objects in one
// response, or braces in surrounding prose, will make it fail.
func ExtractJSON(raw string) (map[string]any, error) {
	text := strings.TrimSpace(raw)

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end == -1 || end < start {
		return nil, &NoJSONFoundError{Raw: raw}
	}

	var parsed map[string]any
	if err := json.Unmarshal([]byte(text[start:end+1]), &parsed); err != nil {
		return nil, &MalformedJSONError{Raw: raw, Cause: err}
	}

	return parsed, nil
}
