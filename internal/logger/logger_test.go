package logger

import (
	"bufio"
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Faultbox/glowplane/internal/config"
)

// reset puts the package back in its pre-Init state.
func reset(t *testing.T) {
	t.Helper()
	closeFile()
	Log = zap.NewNop()
	helpers = Log
	sink = nil
	components = nil
	t.Cleanup(func() {
		closeFile()
		Log = zap.NewNop()
		helpers = Log
		sink = nil
		components = nil
	})
}

func TestNopBeforeInit(t *testing.T) {
	reset(t)

	l := Named("demo")
	if l.Core().Enabled(zapcore.ErrorLevel) {
		t.Error("logger before Init should discard everything")
	}

	// Package helpers must be safe to call from tests that never Init.
	Debug("dropped")
	Info("dropped")
	Error("dropped")
	Sync()
}

func TestComponentLevels(t *testing.T) {
	reset(t)

	cfg := config.LoggingConfig{
		Level: "warn",
		Components: map[string]string{
			"demo":   "debug",
			"window": "error",
		},
	}
	if err := build(cfg, nil); err != nil {
		t.Fatalf("build failed: %v", err)
	}

	tests := []struct {
		component string
		level     zapcore.Level
		enabled   bool
	}{
		{"demo", zapcore.DebugLevel, true},
		{"window", zapcore.WarnLevel, false},
		{"window", zapcore.ErrorLevel, true},
		{"app", zapcore.InfoLevel, false},
		{"app", zapcore.WarnLevel, true},
	}

	for _, tt := range tests {
		t.Run(tt.component+"/"+tt.level.String(), func(t *testing.T) {
			got := Named(tt.component).Core().Enabled(tt.level)
			if got != tt.enabled {
				t.Errorf("Named(%q) enabled at %s = %v, want %v", tt.component, tt.level, got, tt.enabled)
			}
		})
	}

	if Log.Core().Enabled(zapcore.InfoLevel) {
		t.Error("root logger should follow logging.level")
	}
}

func TestInitRejectsBadLevels(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.LoggingConfig
	}{
		{"root", config.LoggingConfig{Level: "loud"}},
		{"component", config.LoggingConfig{Level: "info", Components: map[string]string{"demo": "chatty"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reset(t)
			if err := build(tt.cfg, nil); err == nil {
				t.Error("expected error for unknown level, got nil")
			}
		})
	}
}

func TestConsoleOutput(t *testing.T) {
	reset(t)

	var buf bytes.Buffer
	cfg := config.LoggingConfig{Level: "info", Console: true}
	if err := build(cfg, zapcore.AddSync(&buf)); err != nil {
		t.Fatalf("build failed: %v", err)
	}

	Info("plane ready", zap.Int("vertices", 2601))
	Debug("hidden detail")
	Sync()

	out := buf.String()
	if !strings.Contains(out, "plane ready") || !strings.Contains(out, "2601") {
		t.Errorf("expected info entry in console output, got %q", out)
	}
	if strings.Contains(out, "hidden detail") {
		t.Errorf("debug entry leaked at info level: %q", out)
	}
	if !strings.Contains(out, "logger_test.go") {
		t.Errorf("expected caller to point at the call site, got %q", out)
	}
}

func TestConsoleDisabled(t *testing.T) {
	reset(t)

	var buf bytes.Buffer
	if err := build(config.LoggingConfig{Level: "debug", Console: false}, zapcore.AddSync(&buf)); err != nil {
		t.Fatalf("build failed: %v", err)
	}
	Info("nowhere")
	Sync()

	if buf.Len() != 0 {
		t.Errorf("expected no console output, got %q", buf.String())
	}
}

func TestJSONFileOutput(t *testing.T) {
	reset(t)

	logFile := filepath.Join(t.TempDir(), "glowplane.log")
	cfg := config.LoggingConfig{
		Level:      "info",
		Components: map[string]string{"plane": "debug"},
		LogFile:    logFile,
		Format:     "json",
		MaxSizeMB:  1,
	}
	if err := build(cfg, nil); err != nil {
		t.Fatalf("build failed: %v", err)
	}

	Named("plane").Debug("plane regenerated", zap.Int("vertices", 9))
	Named("demo").Debug("filtered out")
	Sync()

	f, err := os.Open(logFile)
	if err != nil {
		t.Fatalf("failed to open log file: %v", err)
	}
	defer f.Close()

	var entries []map[string]any
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		var e map[string]any
		if err := json.Unmarshal(sc.Bytes(), &e); err != nil {
			t.Fatalf("log line is not JSON: %q: %v", sc.Text(), err)
		}
		entries = append(entries, e)
	}

	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d: %v", len(entries), entries)
	}
	e := entries[0]
	if e["logger"] != "plane" || e["msg"] != "plane regenerated" {
		t.Errorf("unexpected entry %v", e)
	}
	if e["vertices"] != float64(9) {
		t.Errorf("vertices = %v, want 9", e["vertices"])
	}
}

func TestReinitReplacesComponents(t *testing.T) {
	reset(t)

	first := config.LoggingConfig{Level: "error", Components: map[string]string{"demo": "debug"}}
	if err := build(first, nil); err != nil {
		t.Fatalf("build failed: %v", err)
	}
	if !Named("demo").Core().Enabled(zapcore.DebugLevel) {
		t.Fatal("demo should log debug after first Init")
	}

	if err := build(config.LoggingConfig{Level: "error"}, nil); err != nil {
		t.Fatalf("build failed: %v", err)
	}
	if Named("demo").Core().Enabled(zapcore.WarnLevel) {
		t.Error("demo override should be dropped by the second Init")
	}
}

func TestFileWriterFollowsConfig(t *testing.T) {
	cfg := config.Default().Logging
	cfg.LogFile = "/tmp/glowplane.log"

	w := fileWriter(cfg)
	if w.Filename != cfg.LogFile {
		t.Errorf("Filename = %s, want %s", w.Filename, cfg.LogFile)
	}
	if w.MaxSize != 10 || w.MaxBackups != 3 || w.MaxAge != 7 {
		t.Errorf("rotation = %d MB / %d backups / %d days, want 10/3/7", w.MaxSize, w.MaxBackups, w.MaxAge)
	}
	if !w.Compress || !w.LocalTime {
		t.Error("expected compressed, local-time backups")
	}
}
