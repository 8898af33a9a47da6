package domain

import "context"

// TransactionManager runs a function inside a single database transaction.
// The transaction is committed when fn returns nil and rolled back otherwise.
type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
