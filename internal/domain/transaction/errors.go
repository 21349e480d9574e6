package transaction

import (
	"errors"
	"fmt"
)

var (
	ErrMissingInput      = errors.New("customer id and transaction items are required")
	ErrInvalidQuantity   = errors.New("quantity must be greater than zero")
	ErrInvalidStatus     = errors.New("invalid status provided")
	ErrNotFound          = errors.New("transaction not found")
	ErrInsufficientStock = errors.New("insufficient stock")
)

// InsufficientStockError reports a line item that asked for more units
// than the locked product row holds. errors.Is(err, ErrInsufficientStock)
// matches it.
type InsufficientStockError struct {
	ProductID   int64
	ProductName string
	Available   int
	Requested   int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("not enough stock for product %s. Available: %d, requested: %d",
		e.ProductName, e.Available, e.Requested)
}

func (e *InsufficientStockError) Is(target error) bool {
	return target == ErrInsufficientStock
}

// StorageError wraps a persistence failure surfaced after the enclosing
// transaction was rolled back.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s: %v (transaction rolled back)", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
