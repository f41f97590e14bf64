package usecase

import (
	"time"

	"air-cargo-assistant/internal/booking/repository"
	"air-cargo-assistant/pkg/log"
)

// implUseCase is the private implementation of booking.UseCase.
type implUseCase struct {
	repo repository.Repository
	l    log.Logger

	// now is injectable for deterministic date validation in tests.
	now func() time.Time
}

// New creates a new booking UseCase implementation.
func New(repo repository.Repository, l log.Logger) *implUseCase {
	return &implUseCase{
		repo: repo,
		l:    l,
		now:  time.Now,
	}
}
