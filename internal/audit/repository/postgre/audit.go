package postgre

import (
	"context"

	repo "air-cargo-assistant/internal/audit/repository"
)

// CreateAuditLog inserts one request record.
func (r *implRepository) CreateAuditLog(ctx context.Context, opts repo.CreateAuditLogOptions) error {
	const query = `
		INSERT INTO audit_logs (timestamp, endpoint, method, latency_ms, request_data, response_status, user_message)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.ExecContext(ctx, query,
		opts.Timestamp, opts.Endpoint, opts.Method, opts.LatencyMs,
		opts.RequestData, opts.ResponseStatus, opts.UserMessage,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateAuditLog"), err)
		return repo.ErrFailedToInsertAuditLog
	}
	return nil
}
