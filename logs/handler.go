package logs

import (
	"context"
	"log/slog"
)

// Handler drops records below level before passing them on. The journal
// handler has no level option of its own.
type Handler struct {
	slog.Handler
	level slog.Leveler
}

func (h *Handler) Enabled(ctx context.Context, level slog.Level) bool {
	return level >= h.level.Level() && h.Handler.Enabled(ctx, level)
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &Handler{Handler: h.Handler.WithAttrs(attrs), level: h.level}
}

func (h *Handler) WithGroup(name string) slog.Handler {
	return &Handler{Handler: h.Handler.WithGroup(name), level: h.level}
}
