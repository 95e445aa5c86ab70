// Package logging provides the leveled, optionally colored logger used by
// every batchrename component, backed by zerolog console writers.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/backmassage/batchrename/internal/config"
	"github.com/backmassage/batchrename/internal/term"
)

const (
	timeFormat   = "2006-01-02 15:04:05"
	successLevel = "success"
)

// Logger provides leveled, optionally colored logging with optional file sink.
// Errors go to stderr, everything else to stdout.
type Logger struct {
	mu   sync.Mutex
	zl   zerolog.Logger
	file *os.File
}

// NewLogger configures terminal colors from cfg and optionally opens
// cfg.LogFile for appending. Call Close() when done if LogFile was set.
func NewLogger(cfg *config.Config) (*Logger, error) {
	return newLogger(cfg, os.Stdout, os.Stderr)
}

func newLogger(cfg *config.Config, stdout, stderr io.Writer) (*Logger, error) {
	term.Configure(cfg.ColorMode)
	color := term.Enabled()

	l := &Logger{}
	writers := []io.Writer{splitWriter{
		out: consoleWriter(stdout, color),
		err: consoleWriter(stderr, color),
	}}

	if cfg.LogFile != "" {
		dir := filepath.Dir(cfg.LogFile)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, err
		}
		l.file = f
		writers = append(writers, consoleWriter(f, false))
	}

	level := zerolog.InfoLevel
	if cfg.Verbose {
		level = zerolog.DebugLevel
	}
	l.zl = zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(level).
		With().Timestamp().Logger()
	return l, nil
}

// consoleWriter renders events as "<time> [LEVEL] message key=value".
func consoleWriter(out io.Writer, color bool) zerolog.ConsoleWriter {
	return zerolog.ConsoleWriter{
		Out:         out,
		NoColor:     !color,
		TimeFormat:  timeFormat,
		FormatLevel: levelFormatter(color),
	}
}

// levelFormatter maps zerolog level names to the bracketed labels used in
// the terminal and the log file.
func levelFormatter(color bool) zerolog.Formatter {
	return func(i interface{}) string {
		name, _ := i.(string)
		var label, c string
		switch name {
		case zerolog.LevelDebugValue:
			label, c = "DEBUG", term.Cyan
		case zerolog.LevelInfoValue:
			label, c = "INFO", term.Blue
		case zerolog.LevelWarnValue:
			label, c = "WARN", term.Yellow
		case zerolog.LevelErrorValue:
			label, c = "ERROR", term.Red
		case successLevel:
			label, c = "SUCCESS", term.Green
		default:
			label = strings.ToUpper(name)
		}
		if !color || c == "" {
			return "[" + label + "]"
		}
		return c + "[" + label + "]" + term.NC
	}
}

// splitWriter routes error-level events to err and everything else to out.
type splitWriter struct {
	out io.Writer
	err io.Writer
}

func (w splitWriter) Write(p []byte) (int, error) { return w.out.Write(p) }

func (w splitWriter) WriteLevel(level zerolog.Level, p []byte) (int, error) {
	if level >= zerolog.ErrorLevel && level <= zerolog.PanicLevel {
		return w.err.Write(p)
	}
	return w.out.Write(p)
}

// Close closes the log file if one was opened.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file != nil {
		err := l.file.Close()
		l.file = nil
		return err
	}
	return nil
}

func (l *Logger) emit(e *zerolog.Event, format string, args []interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	e.Msg(fmt.Sprintf(format, args...))
}

// Info logs at INFO level (blue).
func (l *Logger) Info(format string, args ...interface{}) {
	l.emit(l.zl.Info(), format, args)
}

// Success logs at SUCCESS level (green). It bypasses level filtering.
func (l *Logger) Success(format string, args ...interface{}) {
	l.emit(l.zl.Log().Str(zerolog.LevelFieldName, successLevel), format, args)
}

// Warn logs at WARN level (yellow).
func (l *Logger) Warn(format string, args ...interface{}) {
	l.emit(l.zl.Warn(), format, args)
}

// Error logs at ERROR level (red), to stderr.
func (l *Logger) Error(format string, args ...interface{}) {
	l.emit(l.zl.Error(), format, args)
}

// Debug logs at DEBUG level (cyan). Dropped unless the logger was built with
// Verbose set.
func (l *Logger) Debug(format string, args ...interface{}) {
	l.emit(l.zl.Debug(), format, args)
}
