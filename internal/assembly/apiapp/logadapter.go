package apiapp

import (
	"log/slog"

	"github.com/cheneysan/link-shortener/internal/app/links"
)

type linksSlogLogger struct {
	l *slog.Logger
}

func newLinksLogger(l *slog.Logger) links.Logger {
	if l == nil {
		return links.NopLogger{}
	}

	return linksSlogLogger{l: l}
}

func (l linksSlogLogger) With(kv ...any) links.Logger {
	return linksSlogLogger{l: l.l.With(kv...)}
}

func (l linksSlogLogger) Debug(msg string, kv ...any) { l.l.Debug(msg, kv...) }
func (l linksSlogLogger) Warn(msg string, kv ...any)  { l.l.Warn(msg, kv...) }
func (l linksSlogLogger) Error(msg string, kv ...any) { l.l.Error(msg, kv...) }

var _ links.Logger = linksSlogLogger{}
