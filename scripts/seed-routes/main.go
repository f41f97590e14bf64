// Command seed-routes creates the schema and loads the default lane
// table into Postgres. Safe to re-run: route inserts are idempotent.
//
// Usage: go run scripts/seed-routes/main.go
// Requires postgres.url in config.yaml or POSTGRES_URL in the env.
package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	_ "github.com/jackc/pgx/v5/stdlib"

	"air-cargo-assistant/config"
	"air-cargo-assistant/internal/booking"
	"air-cargo-assistant/pkg/log"
)

const schema = `
CREATE TABLE IF NOT EXISTS routes (
	id                BIGSERIAL PRIMARY KEY,
	origin            TEXT NOT NULL,
	destination       TEXT NOT NULL,
	base_price_per_kg DOUBLE PRECISION NOT NULL,
	transit_days      INTEGER NOT NULL,
	UNIQUE (origin, destination)
);

CREATE TABLE IF NOT EXISTS bookings (
	id             BIGSERIAL PRIMARY KEY,
	booking_id     TEXT NOT NULL UNIQUE,
	customer_name  TEXT,
	customer_email TEXT,
	origin         TEXT NOT NULL,
	destination    TEXT NOT NULL,
	weight         DOUBLE PRECISION NOT NULL,
	volume         DOUBLE PRECISION,
	cargo_type     TEXT NOT NULL,
	shipping_date  TEXT NOT NULL,
	price          DOUBLE PRECISION NOT NULL,
	status         TEXT NOT NULL,
	created_at     TIMESTAMPTZ NOT NULL,
	updated_at     TIMESTAMPTZ NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_bookings_status ON bookings (status);

CREATE TABLE IF NOT EXISTS audit_logs (
	id              BIGSERIAL PRIMARY KEY,
	timestamp       TIMESTAMPTZ NOT NULL,
	endpoint        TEXT NOT NULL,
	method          TEXT NOT NULL,
	latency_ms      DOUBLE PRECISION NOT NULL,
	request_data    TEXT,
	response_status INTEGER,
	user_message    TEXT
);
`

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if cfg.Postgres.URL == "" {
		fmt.Println("postgres.url is not configured, nothing to seed")
		os.Exit(1)
	}

	logger := log.Init(log.ZapConfig{
		Level:        "info",
		Mode:         "development",
		ColorEnabled: true,
	})
	ctx := context.Background()

	db, err := sql.Open("pgx", cfg.Postgres.URL)
	if err != nil {
		logger.Fatalf(ctx, "Failed to open Postgres: %v", err)
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		logger.Fatalf(ctx, "Failed to ping Postgres: %v", err)
	}

	if _, err := db.ExecContext(ctx, schema); err != nil {
		logger.Fatalf(ctx, "Failed to create schema: %v", err)
	}
	logger.Info(ctx, "Schema ready")

	const insert = `
		INSERT INTO routes (origin, destination, base_price_per_kg, transit_days)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (origin, destination) DO UPDATE
		SET base_price_per_kg = EXCLUDED.base_price_per_kg,
		    transit_days      = EXCLUDED.transit_days`

	for _, route := range booking.DefaultRoutes() {
		if _, err := db.ExecContext(ctx, insert, route.Origin, route.Destination, route.BasePricePerKg, route.TransitDays); err != nil {
			logger.Fatalf(ctx, "Failed to seed route %s-%s: %v", route.Origin, route.Destination, err)
		}
	}

	logger.Infof(ctx, "Seeded %d routes", len(booking.DefaultRoutes()))
}
