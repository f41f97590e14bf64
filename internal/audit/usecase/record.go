package usecase

import (
	"context"

	"air-cargo-assistant/internal/audit"
	"air-cargo-assistant/internal/audit/repository"
)

// Record persists the entry in the background. The write uses its own
// deadline, detached from the request context, so an audit insert can
// neither delay nor fail the response it describes.
func (uc *implUseCase) Record(_ context.Context, input audit.RecordInput) {
	opts := repository.CreateAuditLogOptions{
		Timestamp:      uc.now().UTC(),
		Endpoint:       input.Endpoint,
		Method:         input.Method,
		LatencyMs:      input.LatencyMs,
		RequestData:    input.RequestData,
		ResponseStatus: input.ResponseStatus,
		UserMessage:    input.UserMessage,
	}

	if !uc.async {
		uc.write(opts)
		return
	}
	go uc.write(opts)
}

func (uc *implUseCase) write(opts repository.CreateAuditLogOptions) {
	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	if err := uc.repo.CreateAuditLog(ctx, opts); err != nil {
		uc.l.Warnf(ctx, "uc.audit.Record: %v", err)
	}
}
