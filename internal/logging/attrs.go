package logging

import (
	"context"
	"log/slog"
	"time"
)

// Attr is the structured field type accepted by the helpers below.
type Attr = slog.Attr

func Bool(key string, value bool) Attr              { return slog.Bool(key, value) }
func Duration(key string, value time.Duration) Attr { return slog.Duration(key, value) }
func Int(key string, value int) Attr                { return slog.Int(key, value) }
func String(key, value string) Attr                 { return slog.String(key, value) }

// Error records err under the "error" key. A nil error is rendered as "<nil>".
func Error(err error) Attr {
	if err == nil {
		return slog.String("error", "<nil>")
	}
	return slog.Any("error", err)
}

// NewNop returns a logger that discards everything.
func NewNop() *slog.Logger {
	return slog.New(nopHandler{})
}

// NewComponentLogger tags logger with a component name. A nil logger yields a
// tagged no-op logger so callers never need a nil check.
func NewComponentLogger(logger *slog.Logger, component string) *slog.Logger {
	if logger == nil {
		logger = NewNop()
	}
	return logger.With(String(FieldComponent, component))
}

// warningDefaults fill the fields every warning must carry.
var warningDefaults = []struct {
	key   string
	value string
}{
	{FieldErrorHint, "check logs for details"},
	{FieldImpact, "catalog results may be stale or incomplete"},
}

// WarnWithContext logs a warning carrying event_type, error_hint and impact.
// Fields already present in attrs are kept as given.
func WarnWithContext(logger *slog.Logger, msg, eventType string, attrs ...Attr) {
	if logger == nil {
		return
	}
	present := make(map[string]struct{}, len(attrs))
	args := make([]any, 0, len(attrs)+len(warningDefaults)+1)
	for _, a := range attrs {
		present[a.Key] = struct{}{}
		args = append(args, a)
	}
	if _, ok := present[FieldEventType]; !ok {
		args = append(args, String(FieldEventType, eventType))
	}
	for _, d := range warningDefaults {
		if _, ok := present[d.key]; !ok {
			args = append(args, String(d.key, d.value))
		}
	}
	logger.Warn(msg, args...)
}

type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }
