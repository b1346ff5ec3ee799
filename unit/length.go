package unit

import "fmt"

// Kind specifies how a Length is interpreted.
type Kind uint8

const (
	KindUndefined Kind = iota // Not set, layout engine default applies
	KindPoint                 // Absolute device independent pixels
	KindPercent               // Percentage of reference dimension
	KindAuto                  // Computed by layout engine
)

// String returns the name of the kind for debugging.
func (k Kind) String() string {
	switch k {
	case KindUndefined:
		return "undefined"
	case KindPoint:
		return "point"
	case KindPercent:
		return "percent"
	case KindAuto:
		return "auto"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// Length is a box model dimension. Zero value is Undefined.
type Length struct {
	Value float64 // Meaningful for KindPoint and KindPercent only
	Kind  Kind
}

// Point returns a Length of v device independent pixels.
func Point(v float64) Length {
	return Length{Value: v, Kind: KindPoint}
}

// Percent returns a Length representing a percentage of reference dimension.
// The value is on a 0-100 scale (50.0 = 50%).
func Percent(v float64) Length {
	return Length{Value: v, Kind: KindPercent}
}

// Auto returns a Length that should be computed by layout engine.
func Auto() Length {
	return Length{Kind: KindAuto}
}

// Undefined returns a Length which is explicitly not set.
func Undefined() Length {
	return Length{}
}

// IsAuto returns true if this length should be computed by layout engine.
func (l Length) IsAuto() bool {
	return l.Kind == KindAuto
}

// IsUndefined returns true if this length is not set.
func (l Length) IsUndefined() bool {
	return l.Kind == KindUndefined
}

// Ptr returns pointer to a copy of l, handy for filling optional fields.
func (l Length) Ptr() *Length {
	return &l
}

// String returns canonical text form of the length, see Encode.
func (l Length) String() string {
	switch l.Kind {
	case KindPercent:
		return fmt.Sprintf("%d%%", truncate(l.Value))
	case KindPoint:
		return fmt.Sprintf("%dpx", truncate(l.Value))
	default:
		// Auto and Undefined share the same text form
		return keywordAuto
	}
}

// MarshalText implements encoding.TextMarshaler.
func (l Length) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using Parse.
func (l *Length) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*l = v
	return nil
}
