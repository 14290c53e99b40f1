package mongodb

import (
	"context"
	"errors"
	"fmt"

	"github.com/henok-tadesse/socialnet/internal/domain/contract"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readconcern"
	"go.mongodb.org/mongo-driver/mongo/writeconcern"
)

// TxRunner implements contract.ITxRunner over MongoDB client sessions. The
// context handed to fn is a session context, so every repository call made
// with it joins the same multi-document transaction.
type TxRunner struct {
	client *mongo.Client
}

var _ contract.ITxRunner = (*TxRunner)(nil)

// NewTxRunner creates a transaction runner bound to a client.
func NewTxRunner(client *mongo.Client) *TxRunner {
	return &TxRunner{client: client}
}

// WithinTx runs fn inside one transaction with snapshot reads and majority
// writes. It commits only when fn returns nil and aborts otherwise. The
// driver's own transaction retry loop is deliberately not used: a transient
// conflict surfaces as contract.ErrTxConflict and the retry decision stays
// with the caller.
func (r *TxRunner) WithinTx(ctx context.Context, fn func(txCtx context.Context) error) error {
	session, err := r.client.StartSession()
	if err != nil {
		return fmt.Errorf("%w: failed to start session: %v", contract.ErrStorageUnavailable, err)
	}
	defer session.EndSession(ctx)

	txnOpts := options.Transaction().
		SetReadConcern(readconcern.Snapshot()).
		SetWriteConcern(writeconcern.Majority())

	return mongo.WithSession(ctx, session, func(sc mongo.SessionContext) error {
		if err := session.StartTransaction(txnOpts); err != nil {
			return fmt.Errorf("%w: failed to start transaction: %v", contract.ErrStorageUnavailable, err)
		}
		if err := fn(sc); err != nil {
			_ = session.AbortTransaction(sc)
			return classifyTxError(err)
		}
		if err := session.CommitTransaction(sc); err != nil {
			return classifyTxError(err)
		}
		return nil
	})
}

// classifyTxError maps driver errors onto the shared sentinel taxonomy so
// usecases never have to know about MongoDB error codes.
func classifyTxError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, contract.ErrTxConflict) || errors.Is(err, contract.ErrStorageUnavailable) {
		return err
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	// Two writers touching the same reaction row race on the unique index;
	// inside a transaction that surfaces as a duplicate key or write conflict.
	if mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("%w: %v", contract.ErrTxConflict, err)
	}
	var serverErr mongo.ServerError
	if errors.As(err, &serverErr) {
		if serverErr.HasErrorLabel("TransientTransactionError") || serverErr.HasErrorCode(112) {
			return fmt.Errorf("%w: %v", contract.ErrTxConflict, err)
		}
	}
	if mongo.IsNetworkError(err) || mongo.IsTimeout(err) {
		return fmt.Errorf("%w: %v", contract.ErrStorageUnavailable, err)
	}
	return err
}
