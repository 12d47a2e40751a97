// Package logger is the structured JSON logger shared by every service.
// Customer phone numbers are masked on the way out.
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Logger defines structured logging interface
type Logger interface {
	Info(msg string, args ...any)
	Error(msg string, args ...any)
	Warn(msg string, args ...any)
	Debug(msg string, args ...any)
	With(args ...any) Logger
}

// Attribute keys whose values are WhatsApp numbers.
var phoneKeys = map[string]bool{"phone": true, "to": true, "remote_jid": true}

type slogLogger struct {
	*slog.Logger
}

// New writes JSON at level to stdout.
func New(level string) Logger {
	return NewWithWriter(level, os.Stdout)
}

// NewWithWriter writes JSON at level to w.
func NewWithWriter(level string, w io.Writer) Logger {
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:       parseLevel(level),
		ReplaceAttr: maskPhones,
	})
	return slogLogger{slog.New(handler).With("service", "salesagent")}
}

// Nop discards everything.
func Nop() Logger {
	return slogLogger{slog.New(slog.NewJSONHandler(io.Discard, nil))}
}

func (l slogLogger) With(args ...any) Logger {
	return slogLogger{l.Logger.With(args...)}
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func maskPhones(_ []string, a slog.Attr) slog.Attr {
	if phoneKeys[a.Key] && a.Value.Kind() == slog.KindString {
		return slog.String(a.Key, MaskPhone(a.Value.String()))
	}
	return a
}

// MaskPhone keeps the last four digits of a number: "5511987654321" becomes
// "*********4321". Short values are masked entirely.
func MaskPhone(phone string) string {
	if len(phone) <= 4 {
		return strings.Repeat("*", len(phone))
	}
	return strings.Repeat("*", len(phone)-4) + phone[len(phone)-4:]
}
