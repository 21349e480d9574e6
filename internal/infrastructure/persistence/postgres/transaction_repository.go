package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Sir-Wagyu/e-commerce-app/internal/domain/customer"
	"github.com/Sir-Wagyu/e-commerce-app/internal/domain/product"
	"github.com/Sir-Wagyu/e-commerce-app/internal/domain/repository"
	domain "github.com/Sir-Wagyu/e-commerce-app/internal/domain/transaction"
)

// TransactionRepository implements both the placement session surface
// (repository.TransactionStore) and the read/update paths
// (repository.TransactionRepository) on one pgx pool.
type TransactionRepository struct {
	pool *pgxpool.Pool
}

func NewTransactionRepository(pool *pgxpool.Pool) *TransactionRepository {
	return &TransactionRepository{pool: pool}
}

func (r *TransactionRepository) Begin(ctx context.Context) (repository.Tx, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	return &Tx{tx: tx}, nil
}

func (r *TransactionRepository) GetCustomer(ctx context.Context, tx repository.Tx, id int64) (*customer.Customer, error) {
	const query = `
		SELECT id, user_id, name, email, phone, address
		FROM customers
		WHERE id = $1;
	`
	var c customer.Customer
	err := pgxTx(tx).QueryRow(ctx, query, id).Scan(&c.ID, &c.UserID, &c.Name, &c.Email, &c.Phone, &c.Address)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// GetProductForUpdate locks the product row for the lifetime of tx. This
// is what keeps concurrent placements from overselling the same product.
func (r *TransactionRepository) GetProductForUpdate(ctx context.Context, tx repository.Tx, productID int64) (*product.Product, error) {
	const query = `
		SELECT id, name, price, stock
		FROM products
		WHERE id = $1
		FOR UPDATE;
	`
	var p product.Product
	err := pgxTx(tx).QueryRow(ctx, query, productID).Scan(&p.ID, &p.Name, &p.Price, &p.Stock)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *TransactionRepository) InsertTransaction(ctx context.Context, tx repository.Tx, customerID int64, totalAmount float64, status string) (int64, error) {
	const query = `
		INSERT INTO transactions (customer_id, total_amount, status)
		VALUES ($1, $2, $3)
		RETURNING id;
	`
	var id int64
	err := pgxTx(tx).QueryRow(ctx, query, customerID, totalAmount, status).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *TransactionRepository) InsertItem(ctx context.Context, tx repository.Tx, transactionID int64, item domain.Item) error {
	const query = `
		INSERT INTO transaction_items (transaction_id, product_id, quantity, price_per_item)
		VALUES ($1, $2, $3, $4);
	`
	_, err := pgxTx(tx).Exec(ctx, query, transactionID, item.ProductID, item.Quantity, item.PricePerItem)
	return err
}

func (r *TransactionRepository) UpdateProductStock(ctx context.Context, tx repository.Tx, productID int64, stock int) error {
	_, err := pgxTx(tx).Exec(ctx, `UPDATE products SET stock = $1 WHERE id = $2;`, stock, productID)
	return err
}

// joinQuery returns one row per item with the header fields repeated;
// transaction.Group nests them.
const joinQuery = `
	SELECT t.id, t.customer_id, t.total_amount, t.status, t.transaction_date,
		i.item_id, i.product_id, p.name AS product_name, i.quantity, i.price_per_item
	FROM transactions t
	JOIN transaction_items i ON i.transaction_id = t.id
	JOIN products p ON p.id = i.product_id
`

func (r *TransactionRepository) FindRowsByID(ctx context.Context, id int64) ([]domain.Row, error) {
	rows, err := r.pool.Query(ctx, joinQuery+`WHERE t.id = $1 ORDER BY i.item_id;`, id)
	if err != nil {
		return nil, err
	}
	return scanRows(rows)
}

func (r *TransactionRepository) FindRowsByCustomerID(ctx context.Context, customerID int64) ([]domain.Row, error) {
	rows, err := r.pool.Query(ctx, joinQuery+`WHERE t.customer_id = $1 ORDER BY t.id, i.item_id;`, customerID)
	if err != nil {
		return nil, err
	}
	return scanRows(rows)
}

func (r *TransactionRepository) FindAllRows(ctx context.Context) ([]domain.Row, error) {
	rows, err := r.pool.Query(ctx, joinQuery+`ORDER BY t.id, i.item_id;`)
	if err != nil {
		return nil, err
	}
	return scanRows(rows)
}

func (r *TransactionRepository) UpdateStatus(ctx context.Context, id int64, status string) (int64, error) {
	const query = `
		UPDATE transactions
		SET status = $1
		WHERE id = $2 AND status != $1;
	`
	tag, err := r.pool.Exec(ctx, query, status, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *TransactionRepository) Delete(ctx context.Context, id int64) (int64, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM transactions WHERE id = $1;`, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func scanRows(rows pgx.Rows) ([]domain.Row, error) {
	defer rows.Close()

	out := make([]domain.Row, 0)
	for rows.Next() {
		var row domain.Row
		err := rows.Scan(
			&row.ID,
			&row.CustomerID,
			&row.TotalAmount,
			&row.Status,
			&row.TransactionDate,
			&row.ItemID,
			&row.ProductID,
			&row.ProductName,
			&row.Quantity,
			&row.PricePerItem,
		)
		if err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

func pgxTx(tx repository.Tx) pgx.Tx {
	return tx.(*Tx).tx
}
