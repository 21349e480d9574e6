package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// EnsureSchema creates the tables this service owns if they do not exist
// yet. transaction_items cascades on transaction delete: a transaction
// exclusively owns its lines.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	const stmt = `
		CREATE TABLE IF NOT EXISTS customers (
			id BIGSERIAL PRIMARY KEY,
			user_id BIGINT NOT NULL,
			name TEXT NOT NULL,
			email TEXT NOT NULL,
			phone TEXT NOT NULL DEFAULT '',
			address TEXT NOT NULL
		);

		CREATE TABLE IF NOT EXISTS products (
			id BIGSERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			price NUMERIC NOT NULL,
			stock INT NOT NULL CHECK (stock >= 0)
		);

		CREATE TABLE IF NOT EXISTS transactions (
			id BIGSERIAL PRIMARY KEY,
			customer_id BIGINT NOT NULL REFERENCES customers (id),
			total_amount NUMERIC NOT NULL,
			status TEXT NOT NULL,
			transaction_date TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);

		CREATE TABLE IF NOT EXISTS transaction_items (
			item_id BIGSERIAL PRIMARY KEY,
			transaction_id BIGINT NOT NULL REFERENCES transactions (id) ON DELETE CASCADE,
			product_id BIGINT NOT NULL REFERENCES products (id),
			quantity INT NOT NULL CHECK (quantity > 0),
			price_per_item NUMERIC NOT NULL
		);
	`
	_, err := pool.Exec(ctx, stmt)
	return err
}
