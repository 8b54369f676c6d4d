// Package zerologger adapts a zerolog.Logger to the client's logging
// interface.
package zerologger

import "github.com/rs/zerolog"

type Handler struct {
	logger zerolog.Logger
}

// New wraps the given zerolog logger.
func New(l zerolog.Logger) *Handler {
	return &Handler{logger: l}
}

func (h *Handler) Error(msg string, args ...any) {
	h.logger.Error().Fields(args).Msg(msg)
}

func (h *Handler) Warn(msg string, args ...any) {
	h.logger.Warn().Fields(args).Msg(msg)
}

func (h *Handler) Info(msg string, args ...any) {
	h.logger.Info().Fields(args).Msg(msg)
}

func (h *Handler) Debug(msg string, args ...any) {
	h.logger.Debug().Fields(args).Msg(msg)
}
