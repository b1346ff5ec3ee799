package style

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Background describes element appearance. Exactly one of Color or Gradient
// is set. Colors are kept as opaque strings, layout engine never looks at them.
type Background struct {
	Color    string
	Gradient *Gradient
}

// Gradient is a linear gradient.
type Gradient struct {
	Angle float64        `json:"angle" yaml:"angle"` // Degrees
	Stops []GradientStop `json:"stops" yaml:"stops"`
}

// GradientStop is a color at offset along gradient line, offsets are in [0, 1].
type GradientStop struct {
	Color  string  `json:"color" yaml:"color"`
	Offset float64 `json:"offset" yaml:"offset"`
}

// backgroundForm is the wire form of Background.
type backgroundForm struct {
	Color    *string   `json:"color,omitempty" yaml:"color,omitempty"`
	Gradient *Gradient `json:"gradient,omitempty" yaml:"gradient,omitempty"`
}

func (b *Background) form() backgroundForm {
	if b.Gradient != nil {
		return backgroundForm{Gradient: b.Gradient}
	}
	return backgroundForm{Color: &b.Color}
}

// MarshalJSON implements json.Marshaler.
func (b *Background) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.form())
}

// MarshalYAML implements yaml.Marshaler.
func (b *Background) MarshalYAML() (any, error) {
	return b.form(), nil
}

// decodeBackground accepts color string shorthand or background object,
// null is absent.
func decodeBackground(raw json.RawMessage) (*Background, error) {
	if isNull(raw) {
		return nil, nil
	}

	switch describe(raw) {
	case "string":
		var color string
		if err := json.Unmarshal(raw, &color); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidBackground, err)
		}
		if color == "" {
			return nil, fmt.Errorf("%w: empty color", ErrInvalidBackground)
		}
		return &Background{Color: color}, nil
	case "object":
	default:
		return nil, fmt.Errorf("%w: expected string or object, got %s", ErrInvalidBackground, describe(raw))
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()

	var form backgroundForm
	if err := dec.Decode(&form); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBackground, err)
	}

	switch {
	case form.Color != nil && form.Gradient != nil:
		return nil, fmt.Errorf("%w: both color and gradient specified", ErrInvalidBackground)
	case form.Color != nil:
		if *form.Color == "" {
			return nil, fmt.Errorf("%w: empty color", ErrInvalidBackground)
		}
		return &Background{Color: *form.Color}, nil
	case form.Gradient != nil:
		if err := form.Gradient.validate(); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidBackground, err)
		}
		return &Background{Gradient: form.Gradient}, nil
	default:
		return nil, fmt.Errorf("%w: neither color nor gradient specified", ErrInvalidBackground)
	}
}

func (g *Gradient) validate() error {
	if len(g.Stops) < 2 {
		return fmt.Errorf("gradient needs at least 2 stops, got %d", len(g.Stops))
	}
	for i, s := range g.Stops {
		if s.Color == "" {
			return fmt.Errorf("gradient stop %d: empty color", i)
		}
		if s.Offset < 0 || s.Offset > 1 {
			return fmt.Errorf("gradient stop %d: offset %v out of [0, 1]", i, s.Offset)
		}
	}
	return nil
}
