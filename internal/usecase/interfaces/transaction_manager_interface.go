package interfaces

import "context"

// ITransactionManager runs fn as one unit of work against the host store.
//
// Repositories called with the ctx handed to fn take part in the transaction.
// Nested calls join the outermost transaction. The work commits only when fn
// returns nil.
type ITransactionManager interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
