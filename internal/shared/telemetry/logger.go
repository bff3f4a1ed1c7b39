package telemetry

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Config controls the process-wide logger.
type Config struct {
	Level      string
	Format     string
	TimeFormat string
}

var (
	mu     sync.RWMutex
	logger = newLogger(os.Stdout, Config{})
)

// Init replaces the process-wide logger. Format "pretty" writes colored
// console lines; anything else writes JSON.
func Init(cfg Config) {
	var out io.Writer = os.Stdout
	if cfg.Format == "pretty" {
		out = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: cfg.TimeFormat}
	}
	SetOutput(out, cfg)
}

// SetOutput points the logger at w. Tests use it to capture lines.
func SetOutput(w io.Writer, cfg Config) {
	l := newLogger(w, cfg)
	mu.Lock()
	logger = l
	mu.Unlock()
}

func newLogger(w io.Writer, cfg Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}
	zerolog.TimestampFieldName = "ts"
	zerolog.MessageFieldName = "msg"
	if cfg.TimeFormat == "" {
		zerolog.TimeFieldFormat = time.RFC3339
	} else {
		zerolog.TimeFieldFormat = cfg.TimeFormat
	}
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}

// Debug writes a debug-level log line with the given fields.
func Debug(msg string, fields map[string]any) {
	write(zerolog.DebugLevel, msg, fields)
}

// Info writes an info-level log line with the given fields.
func Info(msg string, fields map[string]any) {
	write(zerolog.InfoLevel, msg, fields)
}

// Warn writes a warn-level log line with the given fields.
func Warn(msg string, fields map[string]any) {
	write(zerolog.WarnLevel, msg, fields)
}

// Error writes an error-level log line with the given fields.
func Error(msg string, fields map[string]any) {
	write(zerolog.ErrorLevel, msg, fields)
}

func write(level zerolog.Level, msg string, fields map[string]any) {
	mu.RLock()
	l := logger
	mu.RUnlock()
	l.WithLevel(level).Fields(fields).Msg(msg)
}
