package audit

import "context"

// UseCase records request audit entries.
type UseCase interface {
	// Record persists an audit entry without blocking the caller.
	// Failures are logged, never surfaced to the request path.
	Record(ctx context.Context, input RecordInput)
}
