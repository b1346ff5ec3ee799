package css_test

import (
	"reflect"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"

	"flexstyle/css"
	"flexstyle/style"
	"flexstyle/unit"
)

func TestParser_InlineMatchesJSON(t *testing.T) {
	log := zaptest.NewLogger(t)
	p := css.NewParser(log)

	fields, warnings := p.ParseInline([]byte(`width: 50%; flex-grow: 2; display: flex`))
	if len(warnings) != 0 {
		t.Errorf("unexpected warnings: %v", warnings)
	}

	fromCSS, err := style.NewParser(log).ParseFields(fields)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	fromJSON, err := style.Parse([]byte(`{"width": "50%", "flex_grow": 2, "display": "flex"}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(fromCSS, fromJSON) {
		t.Errorf("records differ:\ncss:  %s\njson: %s", css.Format(fromCSS), css.Format(fromJSON))
	}
}

func TestParser_Values(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		field    string
		expected string
	}{
		{"percentage", "width: 50%", "width", `"50%"`},
		{"dimension", "height: 120px", "height", `"120px"`},
		{"dimension upper case", "height: 10PX", "height", `"10px"`},
		{"negative dimension", "top: -4px", "top", `"-4px"`},
		{"number", "flex-grow: 1.5", "flex_grow", `1.5`},
		{"leading dot number", "flex: .5", "flex", `0.5`},
		{"keyword", "position: ABSOLUTE", "position", `"absolute"`},
		{"hyphenated keyword", "justify-content: space-between", "justify_content", `"space-between"`},
		{"hash", "background: #FFF", "background", `"#FFF"`},
		{"quoted string", `background: "red"`, "background", `"red"`},
		{"function", "background: rgb(1, 2, 3)", "background", `"rgb(1, 2, 3)"`},
		{"important", "height: auto !important", "height", `"auto"`},
		{"upper case name", "FLEX-WRAP: nowrap", "flex_wrap", `"nowrap"`},
	}

	p := css.NewParser(zap.NewNop())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields, warnings := p.ParseInline([]byte(tt.input))
			if len(warnings) != 0 {
				t.Errorf("unexpected warnings: %v", warnings)
			}
			if len(fields) != 1 {
				t.Fatalf("expected 1 field, got %d", len(fields))
			}
			if fields[0].Name != tt.field {
				t.Errorf("expected field %q, got %q", tt.field, fields[0].Name)
			}
			if string(fields[0].Value) != tt.expected {
				t.Errorf("expected value %s, got %s", tt.expected, fields[0].Value)
			}
		})
	}
}

func TestParser_LaterDeclarationWins(t *testing.T) {
	p := css.NewParser(zaptest.NewLogger(t))

	fields, _ := p.ParseInline([]byte(`width: 10px; height: 5px; width: 20%`))
	if len(fields) != 2 {
		t.Fatalf("expected 2 fields, got %d", len(fields))
	}
	if fields[0].Name != "width" || string(fields[0].Value) != `"20%"` {
		t.Errorf("expected overridden width first, got %s=%s", fields[0].Name, fields[0].Value)
	}
	if fields[1].Name != "height" {
		t.Errorf("expected height second, got %s", fields[1].Name)
	}

	rec, err := style.NewParser(nil).ParseFields(fields)
	if err != nil {
		t.Fatalf("fields must not produce duplicate error: %v", err)
	}
	if *rec.Width != unit.Percent(20) {
		t.Errorf("expected 20%%, got %v", *rec.Width)
	}
}

func TestParser_Warnings(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		fields  int
		warning string
	}{
		{"multi value", "margin: 1px 2px; top: 0px", 1, "margin"},
		{"custom property", "--gap: 4px; top: 1px", 1, "--gap"},
	}

	p := css.NewParser(zaptest.NewLogger(t))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields, warnings := p.ParseInline([]byte(tt.input))
			if len(fields) != tt.fields {
				t.Errorf("expected %d fields, got %d", tt.fields, len(fields))
			}
			if len(warnings) != 1 {
				t.Fatalf("expected 1 warning, got %v", warnings)
			}
			if !strings.Contains(warnings[0], tt.warning) {
				t.Errorf("warning %q does not mention %q", warnings[0], tt.warning)
			}
		})
	}
}

func TestParser_Empty(t *testing.T) {
	p := css.NewParser(nil)
	fields, warnings := p.ParseInline(nil)
	if len(fields) != 0 || len(warnings) != 0 {
		t.Errorf("expected nothing, got %v %v", fields, warnings)
	}
}

func TestParser_Declarations(t *testing.T) {
	p := css.NewParser(zap.NewNop())
	decls, _ := p.Declarations([]byte(`Flex-Basis: 30px !important; align-self: center`))
	if len(decls) != 2 {
		t.Fatalf("expected 2 declarations, got %d", len(decls))
	}
	if decls[0].Name != "flex-basis" || decls[0].Value.Raw != "30px" || !decls[0].Value.Important {
		t.Errorf("unexpected first declaration %+v", decls[0])
	}
	if decls[1].Name != "align-self" || decls[1].Value.Important {
		t.Errorf("unexpected second declaration %+v", decls[1])
	}
}

func TestFormat(t *testing.T) {
	grow := 2.0
	row := style.FlexDirectionRow
	rec := &style.Record{
		FlexDirection: &row,
		FlexGrow:      &grow,
		Width:         unit.Percent(50).Ptr(),
		Background:    &style.Background{Color: "red"},
	}

	text := css.Format(rec)
	expected := "flex-direction: row; flex-grow: 2; width: 50%; background: red"
	if text != expected {
		t.Fatalf("expected %q, got %q", expected, text)
	}

	fields, warnings := css.NewParser(nil).ParseInline([]byte(text))
	if len(warnings) != 0 {
		t.Errorf("unexpected warnings: %v", warnings)
	}
	back, err := style.NewParser(nil).ParseFields(fields)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(rec, back) {
		t.Errorf("round trip changed record: %s", css.Format(back))
	}
}

func TestFormat_Gradient(t *testing.T) {
	rec := &style.Record{Background: &style.Background{Gradient: &style.Gradient{
		Angle: 45,
		Stops: []style.GradientStop{{Color: "red"}, {Color: "blue", Offset: 1}},
	}}}
	expected := "background: linear-gradient(45deg, red 0%, blue 100%)"
	if text := css.Format(rec); text != expected {
		t.Errorf("expected %q, got %q", expected, text)
	}
}

func TestFormat_Empty(t *testing.T) {
	if text := css.Format(&style.Record{}); text != "" {
		t.Errorf("expected empty string, got %q", text)
	}
}

func TestParser_FunctionSpacing(t *testing.T) {
	tests := map[string]string{
		"background: rgb(1,2,3)":         `"rgb(1, 2, 3)"`,
		"background: rgb( 1 ,2,  3 )":    `"rgb(1, 2, 3)"`,
		"background: rgba(0, 0, 0, .5)":  `"rgba(0, 0, 0, .5)"`,
		"background: hsl(120deg 50% 1%)": `"hsl(120deg 50% 1%)"`,
	}

	p := css.NewParser(zaptest.NewLogger(t))
	for input, expected := range tests {
		t.Run(input, func(t *testing.T) {
			fields, warnings := p.ParseInline([]byte(input))
			if len(warnings) != 0 || len(fields) != 1 {
				t.Fatalf("unexpected result %v, warnings %v", fields, warnings)
			}
			if got := string(fields[0].Value); got != expected {
				t.Errorf("expected value %s, got %s", expected, got)
			}
		})
	}
}

func TestFormat_GradientReadBack(t *testing.T) {
	rec := &style.Record{Background: &style.Background{Gradient: &style.Gradient{
		Angle: 90,
		Stops: []style.GradientStop{{Color: "red"}, {Color: "blue", Offset: 1}},
	}}}
	text := css.Format(rec)

	fields, warnings := css.NewParser(nil).ParseInline([]byte(text))
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}
	back, err := style.NewParser(nil).ParseFields(fields)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// gradients are read back as color text, unchanged
	if back.Background == nil || back.Background.Color != "linear-gradient(90deg, red 0%, blue 100%)" {
		t.Errorf("unexpected background %+v", back.Background)
	}
	if css.Format(back) != text {
		t.Errorf("second format differs: %q", css.Format(back))
	}
}
