package logger

import (
	"context"
	"log/slog"

	"github.com/rs/zerolog"
)

type zlHandler struct {
	zl   *zerolog.Logger
	attr []slog.Attr
}

// NewSlog wraps a zerolog logger behind the slog API for packages that
// take *slog.Logger.
func NewSlog(zl *zerolog.Logger) *slog.Logger {
	return slog.New(&zlHandler{zl: zl})
}

func (h *zlHandler) Enabled(_ context.Context, _ slog.Level) bool {
	return true
}

func (h *zlHandler) Handle(ctx context.Context, r slog.Record) error {
	base := FromContext(ctx, h.zl)

	var ev *zerolog.Event
	switch {
	case r.Level <= slog.LevelDebug:
		ev = base.Debug()
	case r.Level == slog.LevelWarn:
		ev = base.Warn()
	case r.Level >= slog.LevelError:
		ev = base.Error()
	default:
		ev = base.Info()
	}

	for _, a := range h.attr {
		ev = addAttr(ev, a)
	}
	r.Attrs(func(a slog.Attr) bool {
		ev = addAttr(ev, a)
		return true
	})

	ev.Msg(r.Message)
	return nil
}

func (h *zlHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	cp := *h
	cp.attr = append(cp.attr, attrs...)
	return &cp
}

func (h *zlHandler) WithGroup(_ string) slog.Handler { return h }

func addAttr(ev *zerolog.Event, a slog.Attr) *zerolog.Event {
	v := a.Value.Resolve()
	switch v.Kind() {
	case slog.KindString:
		return ev.Str(a.Key, v.String())
	case slog.KindInt64:
		return ev.Int64(a.Key, v.Int64())
	case slog.KindUint64:
		return ev.Uint64(a.Key, v.Uint64())
	case slog.KindFloat64:
		return ev.Float64(a.Key, v.Float64())
	case slog.KindBool:
		return ev.Bool(a.Key, v.Bool())
	case slog.KindDuration:
		return ev.Dur(a.Key, v.Duration())
	case slog.KindTime:
		return ev.Time(a.Key, v.Time())
	default:
		return ev.Interface(a.Key, v.Any())
	}
}
