package http

import (
	"air-cargo-assistant/internal/booking"
	"air-cargo-assistant/pkg/log"
)

type handler struct {
	l  log.Logger
	uc booking.UseCase
}

// New creates a new HTTP handler for the booking domain.
func New(l log.Logger, uc booking.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
