package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rupor-github/gencfg"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}
	return path
}

func TestLoadConfiguration_NoFile(t *testing.T) {
	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() with empty path error = %v", err)
	}

	if cfg == nil {
		t.Fatal("LoadConfiguration() returned nil config")
	}

	if cfg.Version != 1 {
		t.Errorf("Default config version = %d, want 1", cfg.Version)
	}
}

func TestConfig_DefaultValues(t *testing.T) {
	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	if cfg.Output.Format != OutputFormatJson {
		t.Errorf("Output.Format = %s, want json", cfg.Output.Format)
	}
	if cfg.Output.Indent != 2 || !cfg.Output.OmitAbsent {
		t.Errorf("unexpected output defaults %+v", cfg.Output)
	}
	if cfg.Markup.StyleAttribute != "style" {
		t.Errorf("Markup.StyleAttribute = %q, want style", cfg.Markup.StyleAttribute)
	}
	if len(cfg.Markup.Extensions) != 1 || cfg.Markup.Extensions[0] != ".xml" {
		t.Errorf("Markup.Extensions = %v, want [.xml]", cfg.Markup.Extensions)
	}
	if cfg.Logging.ConsoleLogger.Level != "normal" || cfg.Logging.FileLogger.Level != "none" {
		t.Errorf("unexpected logging defaults %+v", cfg.Logging)
	}
	if cfg.Reporting.Destination == "" {
		t.Error("Reporting.Destination must have default")
	}
}

func TestLoadConfiguration_WithFile(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "test.log")
	configPath := writeConfig(t, `version: 1
output:
  format: yaml
  indent: 0
markup:
  style_attribute: ui:style
  extensions: [".xml", ".ui"]
logging:
  console:
    level: debug
  file:
    level: debug
    destination: `+logPath+`
    mode: append
`)

	cfg, err := LoadConfiguration(configPath)
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	if cfg.Output.Format != OutputFormatYaml {
		t.Errorf("Output.Format = %s, want yaml", cfg.Output.Format)
	}
	if cfg.Output.Indent != 0 {
		t.Errorf("Output.Indent = %d, want 0", cfg.Output.Indent)
	}
	// not mentioned in file, default must survive
	if !cfg.Output.OmitAbsent {
		t.Error("Expected OmitAbsent default to be kept")
	}
	if cfg.Markup.StyleAttribute != "ui:style" || len(cfg.Markup.Extensions) != 2 {
		t.Errorf("unexpected markup config %+v", cfg.Markup)
	}
	if cfg.Logging.FileLogger.Mode != "append" {
		t.Errorf("Logging.FileLogger.Mode = %s, want append", cfg.Logging.FileLogger.Mode)
	}
	if cfg.Logging.FileLogger.Destination != logPath {
		t.Errorf("Logging.FileLogger.Destination = %s, want %s", cfg.Logging.FileLogger.Destination, logPath)
	}
}

func TestLoadConfiguration_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"invalid yaml", "version: 1\noutput:\n  format: json\n  invalid indent\n"},
		{"unknown field", "version: 1\nunknown_field: value\n"},
		{"bad version", "version: 2\n"},
		{"bad format", "version: 1\noutput:\n  format: xml\n"},
		{"indent too large", "version: 1\noutput:\n  indent: 12\n"},
		{"empty attribute", "version: 1\nmarkup:\n  style_attribute: \"\"\n"},
		{"bad extension", "version: 1\nmarkup:\n  extensions: [\"xml\"]\n"},
		{"no extensions", "version: 1\nmarkup:\n  extensions: []\n"},
		{"bad log level", "version: 1\nlogging:\n  console:\n    level: loud\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadConfiguration(writeConfig(t, tt.content)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestLoadConfiguration_NonExistentFile(t *testing.T) {
	_, err := LoadConfiguration("/nonexistent/config.yaml")
	if err == nil {
		t.Error("Expected error for nonexistent file")
	}
}

func TestLoadConfiguration_WithOptions(t *testing.T) {
	option := func(opts *gencfg.ProcessingOptions) {
		// Options are opaque, just test that we can pass them
	}

	cfg, err := LoadConfiguration("", option)
	if err != nil {
		t.Fatalf("LoadConfiguration() with options error = %v", err)
	}

	if cfg == nil {
		t.Fatal("LoadConfiguration() returned nil config")
	}
}

func TestPrepare(t *testing.T) {
	data, err := Prepare()
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}

	if len(data) == 0 {
		t.Error("Prepare() returned empty data")
	}

	// Verify it's valid YAML by trying to unmarshal
	cfg := &Config{}
	_, err = unmarshalConfig(data, cfg, true)
	if err != nil {
		t.Errorf("Prepared config is not valid: %v", err)
	}
}

func TestDump(t *testing.T) {
	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}
	cfg.Output.Format = OutputFormatCss

	data, err := Dump(cfg)
	if err != nil {
		t.Fatalf("Dump() error = %v", err)
	}
	if !strings.Contains(string(data), "format: css") {
		t.Errorf("Dump() does not contain format as text:\n%s", data)
	}

	// Verify we can load it back
	cfg2 := &Config{}
	if _, err = unmarshalConfig(data, cfg2, true); err != nil {
		t.Fatalf("Dumped config cannot be loaded: %v", err)
	}
	if cfg2.Output != cfg.Output {
		t.Errorf("Output mismatch after dump/load: got %+v, want %+v", cfg2.Output, cfg.Output)
	}
}

func TestUnmarshalConfig_WrapsValidationError(t *testing.T) {
	_, err := unmarshalConfig([]byte("version: 99\n"), &Config{}, true)
	if err == nil {
		t.Fatal("expected validation error, got nil")
	}
	if !strings.Contains(err.Error(), "validat") {
		t.Errorf("expected error to mention validation, got: %v", err)
	}
	if errors.Unwrap(err) == nil {
		t.Errorf("expected wrapped error (errors.Unwrap non-nil), got bare error: %v", err)
	}
}

func TestOutputConfig_IndentString(t *testing.T) {
	tests := []struct {
		indent int
		want   string
	}{
		{0, ""},
		{2, "  "},
		{4, "    "},
	}
	for _, tt := range tests {
		conf := OutputConfig{Indent: tt.indent}
		if got := conf.IndentString(); got != tt.want {
			t.Errorf("IndentString(%d) = %q, want %q", tt.indent, got, tt.want)
		}
	}
}

func TestOutputFormat(t *testing.T) {
	tests := []struct {
		name string
		ext  string
	}{
		{"json", ".json"},
		{"yaml", ".yaml"},
		{"css", ".css"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := ParseOutputFormat(tt.name)
			if err != nil {
				t.Fatalf("ParseOutputFormat(%q) error = %v", tt.name, err)
			}
			if f.String() != tt.name || f.Ext() != tt.ext {
				t.Errorf("unexpected format %s (%s)", f, f.Ext())
			}
		})
	}

	if _, err := ParseOutputFormat("xml"); !errors.Is(err, ErrInvalidOutputFormat) {
		t.Errorf("expected ErrInvalidOutputFormat, got %v", err)
	}
}

func TestOutputFormat_Ext_Panic(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("Ext() should panic for invalid format")
		}
	}()
	OutputFormat(99).Ext()
}
