package logging

import (
	"io"
	"log/slog"
	"os"

	"github.com/m-mizutani/clog"
	"golang.org/x/term"
)

// Format represents the log output format
type Format int

const (
	FormatAuto Format = iota
	FormatConsole
	FormatJSON
)

// New creates a slog.Logger with the specified format. Logs go to the
// given writer (stderr by default: stdout is reserved for reports and
// CSV output). FormatAuto picks colored console output on a terminal
// and JSON otherwise.
func New(level slog.Level, w io.Writer, format Format) *slog.Logger {
	if w == nil {
		w = os.Stderr
	}

	var handler slog.Handler

	switch format {
	case FormatConsole:
		handler = consoleHandler(level, w)

	case FormatJSON:
		handler = slog.NewJSONHandler(w, &slog.HandlerOptions{
			Level:     level,
			AddSource: true,
		})

	case FormatAuto:
		isTerminal := false
		if f, ok := w.(*os.File); ok {
			isTerminal = term.IsTerminal(int(f.Fd()))
		}

		if isTerminal {
			handler = consoleHandler(level, w)
		} else {
			handler = slog.NewJSONHandler(w, &slog.HandlerOptions{
				Level: level,
			})
		}
	}

	return slog.New(handler)
}

func consoleHandler(level slog.Level, w io.Writer) slog.Handler {
	return clog.New(
		clog.WithWriter(w),
		clog.WithLevel(level),
		clog.WithTimeFmt("15:04:05"),
		clog.WithSource(false),
		clog.WithAttrHook(clog.GoerrHook),
	)
}

// ParseLevel parses a string log level to slog.Level
func ParseLevel(level string) slog.Level {
	switch level {
	case "debug", "DEBUG":
		return slog.LevelDebug
	case "info", "INFO", "":
		return slog.LevelInfo
	case "warn", "warning", "WARN", "WARNING":
		return slog.LevelWarn
	case "error", "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
