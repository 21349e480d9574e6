package repository

import "context"

// Tx is one storage transaction. Commit or Rollback ends it and returns
// the underlying session to the pool; Rollback after Commit is a no-op,
// so a deferred Rollback covers every exit path.
type Tx interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}
