package middleware

import (
	"air-cargo-assistant/internal/audit"
	"air-cargo-assistant/pkg/log"
)

type Middleware struct {
	l       log.Logger
	auditUC audit.UseCase
}

func New(l log.Logger, auditUC audit.UseCase) Middleware {
	return Middleware{
		l:       l,
		auditUC: auditUC,
	}
}
