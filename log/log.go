// Package log holds a swappable structured logger so the real backend
// (zap in the CLI, slog otherwise) is chosen at startup.
package log

import (
	syslog "log"
	"log/slog"
)

// Logger is the minimal sugared interface the rest of the code needs.
type Logger interface {
	Debugw(msg string, keysAndValues ...any)
	Infow(msg string, keysAndValues ...any)
	Warnw(msg string, keysAndValues ...any)
	Errorw(msg string, keysAndValues ...any)
	Fatalw(msg string, keysAndValues ...any)
}

type logger struct{}

// Default 默认实例
var Default Logger

func init() {
	syslog.SetFlags(syslog.Ltime | syslog.Lshortfile)
	Default = &logger{}
}

func Set(l Logger) {
	if l != nil {
		Default = l
	}
}

func Get() Logger {
	return Default
}

func (z *logger) Debugw(msg string, keysAndValues ...any) {
	slog.Debug(msg, keysAndValues...)
}

func (z *logger) Infow(msg string, keysAndValues ...any) {
	slog.Info(msg, keysAndValues...)
}

func (z *logger) Warnw(msg string, keysAndValues ...any) {
	slog.Warn(msg, keysAndValues...)
}

func (z *logger) Errorw(msg string, keysAndValues ...any) {
	slog.Error(msg, keysAndValues...)
}

func (z *logger) Fatalw(msg string, keysAndValues ...any) {
	syslog.Fatal(msg, keysAndValues)
}

func Infow(msg string, keysAndValues ...any) {
	Default.Infow(msg, keysAndValues...)
}

func Warnw(msg string, keysAndValues ...any) {
	Default.Warnw(msg, keysAndValues...)
}

func Errorw(msg string, keysAndValues ...any) {
	Default.Errorw(msg, keysAndValues...)
}

func Fatalw(msg string, keysAndValues ...any) {
	Default.Fatalw(msg, keysAndValues...)
}
