package ai

import (
	"encoding/json"
	"strings"
)

// FormatError reports a model response that could not be decoded as the
// requested structure, even after brace-block recovery. Raw keeps the
// full response for the error surface.
type FormatError struct {
	Raw string
}

func (e *FormatError) Error() string {
	return "ai response is not in the expected JSON format"
}

// decodeResponse unmarshals raw into v. If raw is not valid JSON on its
// own, the largest brace-delimited block is tried before giving up; the
// upstream model wraps JSON in prose or markdown fences often enough that
// this second pass is required.
func decodeResponse(raw string, v interface{}) error {
	if err := json.Unmarshal([]byte(raw), v); err == nil {
		return nil
	}

	block, ok := extractObject(raw)
	if !ok {
		return &FormatError{Raw: raw}
	}
	if err := json.Unmarshal([]byte(block), v); err != nil {
		return &FormatError{Raw: raw}
	}
	return nil
}

// extractObject returns the widest substring spanning the first "{" to the
// last "}".
func extractObject(raw string) (string, bool) {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start == -1 || end <= start {
		return "", false
	}
	return raw[start : end+1], true
}

// truncate limits text to at most limit runes before it is embedded in a
// prompt, to stay under model input limits.
func truncate(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit])
}
