package style

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// isNull returns true for absent or JSON null value.
func isNull(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	return len(raw) == 0 || bytes.Equal(raw, []byte("null"))
}

// describe returns JSON type name of raw for error messages.
func describe(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return "nothing"
	}
	switch raw[0] {
	case '"':
		return "string"
	case '{':
		return "object"
	case '[':
		return "array"
	case 't', 'f':
		return "boolean"
	case 'n':
		return "null"
	default:
		return "number"
	}
}

// decodeString returns false when value is null.
func decodeString(raw json.RawMessage) (string, bool, error) {
	if isNull(raw) {
		return "", false, nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false, fmt.Errorf("%w, got %s", ErrExpectedString, describe(raw))
	}
	return s, true, nil
}

// decodeNumber returns false when value is null.
func decodeNumber(raw json.RawMessage) (float64, bool, error) {
	if isNull(raw) {
		return 0, false, nil
	}
	if describe(raw) != "number" {
		return 0, false, fmt.Errorf("%w, got %s", ErrExpectedNumber, describe(raw))
	}
	var v float64
	if err := json.Unmarshal(raw, &v); err != nil {
		return 0, false, fmt.Errorf("%w: %w", ErrExpectedNumber, err)
	}
	return v, true, nil
}
