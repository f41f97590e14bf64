package repository

import "context"

//go:generate mockery --name Repository
type Repository interface {
	CreateAuditLog(ctx context.Context, opts CreateAuditLogOptions) error
}
