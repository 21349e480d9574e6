package repository

import (
	"context"

	"github.com/Sir-Wagyu/e-commerce-app/internal/domain/customer"
	"github.com/Sir-Wagyu/e-commerce-app/internal/domain/product"
	"github.com/Sir-Wagyu/e-commerce-app/internal/domain/transaction"
)

// TransactionStore is the transactional session surface the placement
// workflow runs against. Every call between Begin and Commit/Rollback
// takes the Tx so no read or write can escape the session. Adapters must
// back GetProductForUpdate with a genuine row-level exclusive lock
// (SELECT ... FOR UPDATE), not session-level serialization; the
// oversell guarantee depends on it.
type TransactionStore interface {
	Begin(ctx context.Context) (Tx, error)

	GetCustomer(ctx context.Context, tx Tx, id int64) (*customer.Customer, error)

	// GetProductForUpdate reads the product row under an exclusive lock
	// held until the enclosing Tx ends.
	GetProductForUpdate(ctx context.Context, tx Tx, productID int64) (*product.Product, error)

	// InsertTransaction writes the header and returns the generated id.
	InsertTransaction(ctx context.Context, tx Tx, customerID int64, totalAmount float64, status string) (int64, error)
	InsertItem(ctx context.Context, tx Tx, transactionID int64, item transaction.Item) error
	UpdateProductStock(ctx context.Context, tx Tx, productID int64, stock int) error
}

// TransactionRepository covers the non-placement paths. The Find methods
// return flat join rows; callers nest them with transaction.Group.
type TransactionRepository interface {
	FindRowsByID(ctx context.Context, id int64) ([]transaction.Row, error)
	FindRowsByCustomerID(ctx context.Context, customerID int64) ([]transaction.Row, error)
	FindAllRows(ctx context.Context) ([]transaction.Row, error)
	UpdateStatus(ctx context.Context, id int64, status string) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}
