package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Field names shared by every entry the kit writes.
const (
	FieldComponent = "component"
	FieldTheme     = "theme"
	FieldCommand   = "command"
	FieldKeys      = "keys"
	FieldDefault   = "default_theme"
)

// Options configures a Logger. Theme, when set, is stamped on every entry
// under FieldDefault as the theme the process was configured with.
type Options struct {
	Level         string
	HumanReadable bool
	Writer        io.Writer
	Theme         string
}

// Logger writes structured entries scoped to a component, theme or command.
// A nil *Logger is valid and discards everything.
type Logger struct {
	base zerolog.Logger
}

// New builds a Logger from opts. An empty level means info.
func New(opts Options) (*Logger, error) {
	level, err := parseLevel(opts.Level)
	if err != nil {
		return nil, err
	}

	out := opts.Writer
	if out == nil {
		out = os.Stderr
	}
	if opts.HumanReadable {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.Kitchen}
	}

	ctx := zerolog.New(out).Level(level).With().Timestamp()
	if opts.Theme != "" {
		ctx = ctx.Str(FieldDefault, opts.Theme)
	}
	return &Logger{base: ctx.Logger()}, nil
}

func parseLevel(value string) (zerolog.Level, error) {
	if value == "" {
		return zerolog.InfoLevel, nil
	}
	return zerolog.ParseLevel(strings.ToLower(value))
}

// Nop returns a logger that drops every entry.
func Nop() *Logger {
	return &Logger{base: zerolog.Nop()}
}

// Component scopes the logger to a component name.
func (l *Logger) Component(name string) *Logger {
	return l.with(FieldComponent, name)
}

// Theme scopes the logger to the theme a render or resolution uses.
func (l *Logger) Theme(name string) *Logger {
	return l.with(FieldTheme, name)
}

// Command scopes the logger to a CLI command.
func (l *Logger) Command(name string) *Logger {
	return l.with(FieldCommand, name)
}

func (l *Logger) with(key, value string) *Logger {
	if l == nil {
		return nil
	}
	return &Logger{base: l.base.With().Str(key, value).Logger()}
}

// WithFields returns a derived logger that always writes the supplied fields.
func (l *Logger) WithFields(fields map[string]any) *Logger {
	if l == nil {
		return nil
	}
	ctx := l.base.With()
	for key, value := range fields {
		ctx = ctx.Interface(key, value)
	}
	return &Logger{base: ctx.Logger()}
}

// Resolved records a finished class resolution of keys structural keys.
func (l *Logger) Resolved(keys int) {
	if l == nil {
		return
	}
	l.base.Debug().Int(FieldKeys, keys).Msg("classes resolved")
}

// Info writes an informational log entry.
func (l *Logger) Info(msg string) {
	if l == nil {
		return
	}
	l.base.Info().Msg(msg)
}

// Debug writes a debug-level log entry if enabled.
func (l *Logger) Debug(msg string) {
	if l == nil {
		return
	}
	l.base.Debug().Msg(msg)
}

// Warn writes a warning level log entry.
func (l *Logger) Warn(msg string) {
	l.WarnErr(nil, msg)
}

// WarnErr writes a warning carrying a recoverable error.
func (l *Logger) WarnErr(err error, msg string) {
	if l == nil {
		return
	}
	l.base.Warn().Err(err).Msg(msg)
}

// Error writes an error log entry including the supplied error context.
func (l *Logger) Error(err error, msg string) {
	if l == nil {
		return
	}
	l.base.Error().Err(err).Msg(msg)
}
