package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/Lexv0lk/checkout-store/internal/pkg/logging"
	"github.com/jackc/pgx/v5"
)

type TxManager interface {
	WithinTransaction(ctx context.Context, txFn TxFunc) error
}

// TxFunc must not commit or roll back the executor it receives.
type TxFunc func(ctx context.Context, executor QueryExecuter) error

type DelegateTxManager struct {
	txBeginner TxBeginner
	options    pgx.TxOptions
	logger     logging.Logger
}

func NewDelegateTxManager(txBeginner TxBeginner, logger logging.Logger) *DelegateTxManager {
	return &DelegateTxManager{
		txBeginner: txBeginner,
		options:    pgx.TxOptions{IsoLevel: pgx.ReadCommitted},
		logger:     logger,
	}
}

// WithIsoLevel sets the isolation level of transactions started afterwards. Read committed by default.
func (tm *DelegateTxManager) WithIsoLevel(level pgx.TxIsoLevel) *DelegateTxManager {
	tm.options.IsoLevel = level
	return tm
}

// WithinTransaction commits when txFn succeeds and rolls back otherwise. The error returned
// by txFn is wrapped, so typed domain errors stay visible to errors.Is.
func (tm *DelegateTxManager) WithinTransaction(ctx context.Context, txFn TxFunc) error {
	tx, err := tm.txBeginner.BeginTx(ctx, tm.options)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tm.rollback(ctx, tx)

	if err := txFn(ctx, tx); err != nil {
		return fmt.Errorf("failed to execute logic within transaction: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// rollback runs even when ctx is already cancelled. After a commit it is a no-op.
func (tm *DelegateTxManager) rollback(ctx context.Context, tx pgx.Tx) {
	err := tx.Rollback(context.WithoutCancel(ctx))
	if err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		tm.logger.Error("failed to rollback transaction", "isoLevel", string(tm.options.IsoLevel), "error", err.Error())
	}
}
