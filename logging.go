package shapeviz

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

type Logger interface {
	DebugEnabled() bool
	SetDebug(enabled bool)
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

type DefaultLogger struct {
	mu    sync.Mutex
	debug bool
	out   zerolog.Logger
}

// NewDefaultLogger writes human-readable lines to stderr.
func NewDefaultLogger(prefix string, debug bool) *DefaultLogger {
	return NewLogger(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}, prefix, debug)
}

// NewLogger writes to w; pass a plain writer to get JSON lines.
func NewLogger(w io.Writer, prefix string, debug bool) *DefaultLogger {
	ctx := zerolog.New(w).With().Timestamp()
	if prefix != "" {
		ctx = ctx.Str("component", prefix)
	}
	return &DefaultLogger{
		debug: debug,
		out:   ctx.Logger().Level(zerolog.DebugLevel),
	}
}

func (l *DefaultLogger) DebugEnabled() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.debug
}

func (l *DefaultLogger) SetDebug(enabled bool) {
	l.mu.Lock()
	l.debug = enabled
	l.mu.Unlock()
}

func (l *DefaultLogger) Debugf(format string, args ...any) {
	if !l.DebugEnabled() {
		return
	}
	l.out.Debug().Msg(fmt.Sprintf(format, args...))
}

func (l *DefaultLogger) Infof(format string, args ...any) {
	l.out.Info().Msg(fmt.Sprintf(format, args...))
}

func (l *DefaultLogger) Warnf(format string, args ...any) {
	l.out.Warn().Msg(fmt.Sprintf(format, args...))
}

func (l *DefaultLogger) Errorf(format string, args ...any) {
	l.out.Error().Msg(fmt.Sprintf(format, args...))
}

// LoggingModule installs a default logger on the app.
type LoggingModule struct {
	Prefix string
	Debug  bool
	// Out overrides the console writer when set.
	Out io.Writer
}

func (m LoggingModule) Install(app *App, cmd *Commands) {
	if m.Out != nil {
		app.logger = NewLogger(m.Out, m.Prefix, m.Debug)
		return
	}
	app.logger = NewDefaultLogger(m.Prefix, m.Debug)
}

// NewNopLogger returns a logger backed by zerolog.Nop that drops every line.
func NewNopLogger() Logger {
	return &DefaultLogger{out: zerolog.Nop()}
}

// Logger returns the installed logger, otherwise a no-op logger.
// Safe to call at any time; never returns nil.
func (app *App) Logger() Logger {
	if app == nil || app.logger == nil {
		return NewNopLogger()
	}
	return app.logger
}
