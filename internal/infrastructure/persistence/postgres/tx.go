package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
)

// Tx adapts pgx.Tx to repository.Tx. Commit and Rollback both hand the
// connection back to the pool.
type Tx struct {
	tx pgx.Tx
}

func (t *Tx) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

// Rollback after Commit reports success so a deferred Rollback can cover
// every exit path.
func (t *Tx) Rollback(ctx context.Context) error {
	err := t.tx.Rollback(ctx)
	if errors.Is(err, pgx.ErrTxClosed) {
		return nil
	}
	return err
}
