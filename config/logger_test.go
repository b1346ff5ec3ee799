package config

import (
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"
	"testing"
)

func TestLoggingConfig_Prepare(t *testing.T) {
	dir := t.TempDir()
	t.Cleanup(func() { debug.SetCrashOutput(nil, debug.CrashOptions{}) })

	tests := []struct {
		name      string
		level     string
		report    bool
		visible   []string
		invisible []string
	}{
		{"normal", "normal", false, []string{"info message"}, []string{"debug message"}},
		{"debug", "debug", false, []string{"info message", "debug message"}, nil},
		{"report forces debug", "normal", true, []string{"info message", "debug message"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conf := LoggingConfig{
				ConsoleLogger: LoggerConfig{Level: "none"},
				FileLogger: LoggerConfig{
					Level:       tt.level,
					Destination: filepath.Join(dir, strings.ReplaceAll(tt.name, " ", "-")+".log"),
					Mode:        "overwrite",
				},
			}

			var rpt *Report
			if tt.report {
				rpt = &Report{entries: make(map[string]entry)}
			}

			log, err := conf.Prepare(rpt)
			if err != nil {
				t.Fatalf("Prepare() error = %v", err)
			}
			log.Debug("debug message")
			log.Info("info message")
			_ = log.Sync()

			data, err := os.ReadFile(conf.FileLogger.Destination)
			if err != nil {
				t.Fatalf("unable to read log: %v", err)
			}
			for _, s := range tt.visible {
				if !strings.Contains(string(data), s) {
					t.Errorf("log does not contain %q:\n%s", s, data)
				}
			}
			for _, s := range tt.invisible {
				if strings.Contains(string(data), s) {
					t.Errorf("log must not contain %q:\n%s", s, data)
				}
			}
			if !strings.Contains(string(data), "flexstyle") {
				t.Errorf("logger is not named:\n%s", data)
			}

			if tt.report {
				if _, ok := rpt.entries["final.log"]; !ok {
					t.Error("log file is not stored in report")
				}
				if _, ok := rpt.entries["panic.log"]; !ok {
					t.Error("panic log is not stored in report")
				}
			}
		})
	}
}

func TestLoggingConfig_PrepareNone(t *testing.T) {
	conf := LoggingConfig{
		ConsoleLogger: LoggerConfig{Level: "none"},
		FileLogger:    LoggerConfig{Level: "none"},
	}
	log, err := conf.Prepare(nil)
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}
	if log.Core().Enabled(-1) {
		t.Error("logger with all outputs disabled must not be enabled")
	}
}
