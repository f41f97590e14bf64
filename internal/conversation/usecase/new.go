package usecase

import (
	"air-cargo-assistant/internal/booking"
	"air-cargo-assistant/internal/extractor"
	"air-cargo-assistant/pkg/log"
)

// implUseCase is the private implementation of conversation.UseCase.
type implUseCase struct {
	extractor extractor.Extractor
	bookingUC booking.UseCase
	l         log.Logger
}

// New creates a new conversation UseCase implementation.
func New(ext extractor.Extractor, bookingUC booking.UseCase, l log.Logger) *implUseCase {
	return &implUseCase{
		extractor: ext,
		bookingUC: bookingUC,
		l:         l,
	}
}
