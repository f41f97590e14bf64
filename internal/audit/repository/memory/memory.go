// Package memory holds audit entries in process memory. Used when no
// database is configured and in tests.
package memory

import (
	"context"
	"sync"

	repo "air-cargo-assistant/internal/audit/repository"
	"air-cargo-assistant/internal/model"
)

type implRepository struct {
	mu      sync.RWMutex
	entries []model.AuditLog
	nextID  int64
}

// New creates an empty in-memory audit repository.
func New() *implRepository {
	return &implRepository{nextID: 1}
}

func (r *implRepository) CreateAuditLog(_ context.Context, opts repo.CreateAuditLogOptions) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, model.AuditLog{
		ID:             r.nextID,
		Timestamp:      opts.Timestamp,
		Endpoint:       opts.Endpoint,
		Method:         opts.Method,
		LatencyMs:      opts.LatencyMs,
		RequestData:    opts.RequestData,
		ResponseStatus: opts.ResponseStatus,
		UserMessage:    opts.UserMessage,
	})
	r.nextID++
	return nil
}

// Entries returns a copy of everything recorded so far.
func (r *implRepository) Entries() []model.AuditLog {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.AuditLog, len(r.entries))
	copy(out, r.entries)
	return out
}
