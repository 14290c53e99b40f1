package contract

import "context"

// ITxRunner executes fn inside a single storage transaction. The context
// passed to fn is bound to that transaction; repositories called with it
// participate in the same atomic unit. The transaction commits only if fn
// returns nil and is rolled back on any error or context cancellation, so a
// caller never observes a partial write.
//
// A serialization failure surfaces as ErrTxConflict. The runner itself never
// retries; retry policy belongs to the usecase.
type ITxRunner interface {
	WithinTx(ctx context.Context, fn func(txCtx context.Context) error) error
}
