package repository

import "errors"

var (
	ErrFailedToInsertAuditLog = errors.New("failed to insert audit log")
)
