package style_test

import (
	"encoding/json"
	"errors"
	"testing"

	"flexstyle/style"
)

func TestBackground_Decode(t *testing.T) {
	tests := []struct {
		name  string
		input string
		check func(t *testing.T, b *style.Background)
	}{
		{
			name:  "shorthand",
			input: `"#fff"`,
			check: func(t *testing.T, b *style.Background) {
				if b.Color != "#fff" || b.Gradient != nil {
					t.Errorf("unexpected background %+v", b)
				}
			},
		},
		{
			name:  "color object",
			input: `{"color": "rgba(0, 0, 0, 0.5)"}`,
			check: func(t *testing.T, b *style.Background) {
				if b.Color != "rgba(0, 0, 0, 0.5)" {
					t.Errorf("unexpected color %q", b.Color)
				}
			},
		},
		{
			name:  "gradient",
			input: `{"gradient": {"stops": [{"color": "red", "offset": 0}, {"color": "green", "offset": 0.5}, {"color": "blue", "offset": 1}]}}`,
			check: func(t *testing.T, b *style.Background) {
				g := b.Gradient
				if g == nil {
					t.Fatal("expected gradient")
				}
				if g.Angle != 0 || len(g.Stops) != 3 || g.Stops[1] != (style.GradientStop{Color: "green", Offset: 0.5}) {
					t.Errorf("unexpected gradient %+v", g)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, err := style.Parse([]byte(`{"background": ` + tt.input + `}`))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if rec.Background == nil {
				t.Fatal("expected background")
			}
			tt.check(t, rec.Background)
		})
	}
}

func TestBackground_Null(t *testing.T) {
	rec, err := style.Parse([]byte(`{"background": null}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Background != nil {
		t.Errorf("expected absent background, got %+v", rec.Background)
	}
}

func TestBackground_Invalid(t *testing.T) {
	tests := map[string]string{
		"number":          `12`,
		"array":           `["red"]`,
		"empty shorthand": `""`,
		"empty object":    `{}`,
		"empty color":     `{"color": ""}`,
		"both":            `{"color": "red", "gradient": {"stops": [{"color": "red", "offset": 0}, {"color": "blue", "offset": 1}]}}`,
		"unknown key":     `{"colour": "red"}`,
		"single stop":     `{"gradient": {"stops": [{"color": "red", "offset": 0}]}}`,
		"offset range":    `{"gradient": {"stops": [{"color": "red", "offset": 0}, {"color": "blue", "offset": 1.5}]}}`,
		"negative offset": `{"gradient": {"stops": [{"color": "red", "offset": -0.1}, {"color": "blue", "offset": 1}]}}`,
		"stop color":      `{"gradient": {"stops": [{"color": "", "offset": 0}, {"color": "blue", "offset": 1}]}}`,
		"angle type":      `{"gradient": {"angle": "45deg", "stops": [{"color": "red", "offset": 0}, {"color": "blue", "offset": 1}]}}`,
	}

	for name, input := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := style.Parse([]byte(`{"background": ` + input + `}`))
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, style.ErrInvalidBackground) {
				t.Errorf("expected ErrInvalidBackground, got %v", err)
			}
			var perr *style.PropertyError
			if !errors.As(err, &perr) || perr.Property != style.PropertyBackground.String() {
				t.Errorf("expected background property error, got %v", err)
			}
		})
	}
}

func TestBackground_Encode(t *testing.T) {
	tests := []struct {
		name     string
		bg       *style.Background
		expected string
	}{
		{"color", &style.Background{Color: "red"}, `{"color":"red"}`},
		{
			"gradient",
			&style.Background{Gradient: &style.Gradient{Angle: 90, Stops: []style.GradientStop{{Color: "red"}, {Color: "blue", Offset: 1}}}},
			`{"gradient":{"angle":90,"stops":[{"color":"red","offset":0},{"color":"blue","offset":1}]}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.bg)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if string(data) != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, data)
			}
		})
	}
}
