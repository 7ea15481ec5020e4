package postgres

import (
	"context"
	"fmt"

	"storeadmin/pkg/logger"
)

const baseColumns = `
	id          UUID PRIMARY KEY,
	store_id    UUID NOT NULL,
	version     INTEGER NOT NULL DEFAULT 1,
	created_at  TIMESTAMPTZ NOT NULL,
	updated_at  TIMESTAMPTZ NOT NULL,`

// schemaStatements create every table the console needs. They are idempotent.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS stores (` + baseColumns + `
	owner_id    UUID NOT NULL,
	name        TEXT NOT NULL,
	currency    CHAR(3) NOT NULL
)`,
	`CREATE INDEX IF NOT EXISTS idx_stores_owner ON stores (owner_id, created_at)`,

	`CREATE TABLE IF NOT EXISTS users (` + baseColumns + `
	email                 TEXT NOT NULL UNIQUE,
	password_hash         TEXT NOT NULL,
	display_name          TEXT NOT NULL DEFAULT '',
	theme                 TEXT NOT NULL DEFAULT 'light',
	failed_login_attempts INTEGER NOT NULL DEFAULT 0,
	locked_until          TIMESTAMPTZ,
	last_login_at         TIMESTAMPTZ
)`,

	`CREATE TABLE IF NOT EXISTS products (` + baseColumns + `
	name        TEXT NOT NULL,
	sku         TEXT NOT NULL,
	category    TEXT NOT NULL DEFAULT '',
	description TEXT NOT NULL DEFAULT '',
	status      TEXT NOT NULL,
	price       NUMERIC(18, 4) NOT NULL,
	stock       BIGINT NOT NULL DEFAULT 0,
	UNIQUE (store_id, sku)
)`,
	`CREATE INDEX IF NOT EXISTS idx_products_store ON products (store_id, created_at)`,

	`CREATE TABLE IF NOT EXISTS customers (` + baseColumns + `
	name        TEXT NOT NULL,
	email       TEXT NOT NULL DEFAULT '',
	phone       TEXT NOT NULL DEFAULT '',
	city        TEXT NOT NULL DEFAULT '',
	total_sales NUMERIC(18, 4) NOT NULL DEFAULT 0,
	order_count BIGINT NOT NULL DEFAULT 0,
	joined_at   TIMESTAMPTZ NOT NULL
)`,
	`CREATE INDEX IF NOT EXISTS idx_customers_store ON customers (store_id, created_at)`,

	`CREATE TABLE IF NOT EXISTS orders (` + baseColumns + `
	number         TEXT NOT NULL,
	customer_id    UUID,
	customer_name  TEXT NOT NULL,
	status         TEXT NOT NULL,
	payment_status TEXT NOT NULL,
	currency       CHAR(3) NOT NULL,
	lines          JSONB NOT NULL DEFAULT '[]',
	total          NUMERIC(18, 4) NOT NULL,
	item_count     BIGINT NOT NULL,
	placed_at      TIMESTAMPTZ NOT NULL
)`,
	`CREATE INDEX IF NOT EXISTS idx_orders_store ON orders (store_id, created_at)`,

	`CREATE TABLE IF NOT EXISTS deliveries (` + baseColumns + `
	order_id      UUID NOT NULL,
	order_number  TEXT NOT NULL,
	courier       TEXT NOT NULL,
	city          TEXT NOT NULL,
	status        TEXT NOT NULL,
	tracking_code TEXT NOT NULL DEFAULT '',
	dispatched_at TIMESTAMPTZ,
	delivered_at  TIMESTAMPTZ
)`,
	`CREATE INDEX IF NOT EXISTS idx_deliveries_store ON deliveries (store_id, created_at)`,

	`CREATE TABLE IF NOT EXISTS payouts (` + baseColumns + `
	reference    TEXT NOT NULL,
	status       TEXT NOT NULL,
	method       TEXT NOT NULL,
	amount       NUMERIC(18, 4) NOT NULL,
	currency     CHAR(3) NOT NULL,
	requested_at TIMESTAMPTZ NOT NULL,
	paid_at      TIMESTAMPTZ
)`,
	`CREATE INDEX IF NOT EXISTS idx_payouts_store ON payouts (store_id, created_at)`,
}

// EnsureSchema creates missing tables and indexes.
func EnsureSchema(ctx context.Context, db Querier) error {
	for i, stmt := range schemaStatements {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("schema statement %d: %w", i, err)
		}
	}
	logger.Info(ctx, "database schema ready", "statements", len(schemaStatements))
	return nil
}
