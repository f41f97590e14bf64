package postgre

import (
	"database/sql"
	"fmt"

	"air-cargo-assistant/internal/audit/repository"
	"air-cargo-assistant/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a new PostgreSQL-backed Repository for audit entries.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("audit/repository/postgre: db is required")
	}
	return &implRepository{db: db, l: l}
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("audit/repository/postgre.%s", method)
}
