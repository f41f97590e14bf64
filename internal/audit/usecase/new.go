package usecase

import (
	"time"

	"air-cargo-assistant/internal/audit/repository"
	"air-cargo-assistant/pkg/log"
)

const writeTimeout = 5 * time.Second

// implUseCase is the private implementation of audit.UseCase.
type implUseCase struct {
	repo repository.Repository
	l    log.Logger
	now  func() time.Time

	// async lets tests run Record synchronously.
	async bool
}

// New creates a new audit UseCase implementation.
func New(repo repository.Repository, l log.Logger) *implUseCase {
	return &implUseCase{
		repo:  repo,
		l:     l,
		now:   time.Now,
		async: true,
	}
}
