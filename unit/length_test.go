package unit

import (
	"encoding/json"
	"testing"
)

func TestLength_Constructors(t *testing.T) {
	type tc struct {
		value       Length
		isAuto      bool
		isUndefined bool
		kind        Kind
		amount      float64
	}

	tests := map[string]tc{
		"Auto":      {value: Auto(), isAuto: true, kind: KindAuto},
		"Undefined": {value: Undefined(), isUndefined: true, kind: KindUndefined},
		"Zero":      {value: Length{}, isUndefined: true, kind: KindUndefined},
		"Point":     {value: Point(100), kind: KindPoint, amount: 100},
		"Percent":   {value: Percent(50), kind: KindPercent, amount: 50},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.value.IsAuto(); got != tt.isAuto {
				t.Errorf("IsAuto() = %v, want %v", got, tt.isAuto)
			}
			if got := tt.value.IsUndefined(); got != tt.isUndefined {
				t.Errorf("IsUndefined() = %v, want %v", got, tt.isUndefined)
			}
			if tt.value.Kind != tt.kind {
				t.Errorf("Kind = %v, want %v", tt.value.Kind, tt.kind)
			}
			if tt.value.Value != tt.amount {
				t.Errorf("Value = %v, want %v", tt.value.Value, tt.amount)
			}
		})
	}
}

func TestLength_TextMarshaling(t *testing.T) {
	type holder struct {
		Width  Length  `json:"width"`
		Height *Length `json:"height"`
	}

	data, err := json.Marshal(holder{Width: Percent(25.5), Height: Point(10).Ptr()})
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if string(data) != `{"width":"25%","height":"10px"}` {
		t.Errorf("unexpected JSON: %s", data)
	}

	var h holder
	if err := json.Unmarshal([]byte(`{"width":"auto","height":"3.5%"}`), &h); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if h.Width != Auto() {
		t.Errorf("expected auto width, got %+v", h.Width)
	}
	if h.Height == nil || *h.Height != Percent(3.5) {
		t.Errorf("expected 3.5%% height, got %+v", h.Height)
	}

	if err := json.Unmarshal([]byte(`{"width":"3em"}`), &h); err == nil {
		t.Error("expected error for unknown unit")
	}
}

func TestKind_String(t *testing.T) {
	tests := map[Kind]string{
		KindUndefined: "undefined",
		KindPoint:     "point",
		KindPercent:   "percent",
		KindAuto:      "auto",
		Kind(42):      "Kind(42)",
	}
	for kind, expected := range tests {
		if got := kind.String(); got != expected {
			t.Errorf("expected %q, got %q", expected, got)
		}
	}
}
