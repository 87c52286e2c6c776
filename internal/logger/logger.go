// Package logger provides the process-wide zap logger. Output goes to the
// console and, optionally, to a size-rotated file; each component gets a
// named logger whose level can be tuned on its own from the config.
package logger

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/Faultbox/glowplane/internal/config"
)

// Log is the root logger. It discards everything until Init is called.
var Log = zap.NewNop()

var (
	// helpers backs the package-level Debug/Info/Error so the caller field
	// points at the call site instead of this file.
	helpers = Log

	sink       zapcore.Core
	rootLevel  zapcore.Level
	components map[string]zapcore.Level
	file       io.Closer
)

// Init builds the console and file sinks from the logging section of the
// config. Calling it again replaces the previous sinks.
func Init(cfg config.LoggingConfig) error {
	return build(cfg, zapcore.Lock(os.Stdout))
}

func build(cfg config.LoggingConfig, console zapcore.WriteSyncer) error {
	lvl, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return fmt.Errorf("logging.level: %w", err)
	}
	levels := make(map[string]zapcore.Level, len(cfg.Components))
	for name, text := range cfg.Components {
		l, err := zapcore.ParseLevel(text)
		if err != nil {
			return fmt.Errorf("logging.components.%s: %w", name, err)
		}
		levels[name] = l
	}

	closeFile()

	// Sinks accept everything; the per-component filter decides.
	var cores []zapcore.Core
	if cfg.Console && console != nil {
		cores = append(cores, zapcore.NewCore(consoleEncoder(true), console, zapcore.DebugLevel))
	}
	if cfg.LogFile != "" {
		w := fileWriter(cfg)
		file = w
		enc := consoleEncoder(false)
		if cfg.Format == "json" {
			enc = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
		}
		cores = append(cores, zapcore.NewCore(enc, zapcore.AddSync(w), zapcore.DebugLevel))
	}

	sink = zapcore.NewTee(cores...)
	rootLevel = lvl
	components = levels

	Log = zap.New(levelFilter{Core: sink, enabler: lvl}, zap.AddCaller())
	helpers = Log.WithOptions(zap.AddCallerSkip(1))
	return nil
}

func consoleEncoder(color bool) zapcore.Encoder {
	cfg := zapcore.EncoderConfig{
		TimeKey:          "time",
		LevelKey:         "level",
		NameKey:          "logger",
		MessageKey:       "msg",
		CallerKey:        "caller",
		EncodeTime:       zapcore.ISO8601TimeEncoder,
		EncodeLevel:      zapcore.CapitalLevelEncoder,
		EncodeCaller:     zapcore.ShortCallerEncoder,
		EncodeDuration:   zapcore.StringDurationEncoder,
		ConsoleSeparator: " ",
	}
	if color {
		cfg.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		cfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	return zapcore.NewConsoleEncoder(cfg)
}

func fileWriter(cfg config.LoggingConfig) *lumberjack.Logger {
	return &lumberjack.Logger{
		Filename:   cfg.LogFile,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
		Compress:   cfg.Compress,
		LocalTime:  true,
	}
}

func closeFile() {
	if file != nil {
		_ = file.Close()
		file = nil
	}
}

// Named returns the logger for a component. Its level is the component's
// entry under logging.components, or the root level.
func Named(component string) *zap.Logger {
	if sink == nil {
		return Log.Named(component)
	}
	lvl, ok := components[component]
	if !ok {
		lvl = rootLevel
	}
	return zap.New(levelFilter{Core: sink, enabler: lvl}, zap.AddCaller()).Named(component)
}

// levelFilter gates a shared sink with one component's level.
type levelFilter struct {
	zapcore.Core
	enabler zapcore.LevelEnabler
}

func (f levelFilter) Enabled(l zapcore.Level) bool {
	return f.enabler.Enabled(l)
}

func (f levelFilter) With(fields []zapcore.Field) zapcore.Core {
	return levelFilter{Core: f.Core.With(fields), enabler: f.enabler}
}

func (f levelFilter) Check(e zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if f.Enabled(e.Level) {
		return ce.AddCore(e, f)
	}
	return ce
}

// Sync flushes buffered entries.
func Sync() {
	_ = Log.Sync()
}

// Debug logs on the root logger.
func Debug(msg string, fields ...zap.Field) {
	helpers.Debug(msg, fields...)
}

// Info logs on the root logger.
func Info(msg string, fields ...zap.Field) {
	helpers.Info(msg, fields...)
}

// Error logs on the root logger.
func Error(msg string, fields ...zap.Field) {
	helpers.Error(msg, fields...)
}
