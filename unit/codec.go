package unit

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	keywordAuto   = "auto"
	suffixPercent = "%"
	suffixPoint   = "px"
)

var (
	ErrUnknownUnit   = errors.New("unknown length unit")
	ErrInvalidNumber = errors.New("invalid length number")
	ErrNonFinite     = errors.New("length is not finite")
)

// Parse converts length text to Length. It never returns Undefined.
func Parse(s string) (Length, error) {
	switch {
	case s == keywordAuto:
		return Auto(), nil
	case strings.HasSuffix(s, suffixPercent):
		v, err := parseNumber(s, suffixPercent)
		if err != nil {
			return Length{}, err
		}
		return Percent(v), nil
	case strings.HasSuffix(s, suffixPoint):
		v, err := parseNumber(s, suffixPoint)
		if err != nil {
			return Length{}, err
		}
		return Point(v), nil
	default:
		return Length{}, fmt.Errorf("%q: %w", s, ErrUnknownUnit)
	}
}

// parseNumber parses numeric part of s preceding suffix.
func parseNumber(s, suffix string) (float64, error) {
	num := strings.TrimSuffix(s, suffix)
	// Go literal extensions are not part of the grammar
	if strings.ContainsAny(num, "_xX") {
		return 0, fmt.Errorf("%q: %w", s, ErrInvalidNumber)
	}
	v, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return 0, fmt.Errorf("%q: %w: %w", s, ErrInvalidNumber, err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%q: %w", s, ErrNonFinite)
	}
	return v, nil
}

// Decode converts JSON value to Length. Absent value (empty raw) or value
// which is not a JSON string is not an error - nil is returned so caller
// treats property as not specified. Malformed length strings are errors.
func Decode(raw json.RawMessage) (*Length, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '"' {
		return nil, nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("unable to decode length string: %w", err)
	}
	l, err := Parse(s)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

// Encode converts optional Length to JSON value: null for nil, quoted
// canonical text otherwise.
func Encode(l *Length) json.RawMessage {
	if l == nil {
		return json.RawMessage("null")
	}
	// canonical text never needs escaping
	return json.RawMessage(`"` + l.String() + `"`)
}

// truncate converts v to integer toward zero saturating at int32 bounds,
// NaN becomes 0.
func truncate(v float64) int32 {
	switch {
	case math.IsNaN(v):
		return 0
	case v >= math.MaxInt32:
		return math.MaxInt32
	case v <= math.MinInt32:
		return math.MinInt32
	}
	return int32(v)
}
