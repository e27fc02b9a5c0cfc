package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/Lexv0lk/marketplace/internal/pkg/logging"
	"github.com/jackc/pgx/v5"
)

//go:generate mockgen -source=transactions.go -destination=../../../gen/mocks/database/transactions.go -package=mocks

type TxManager interface {
	WithinTransaction(ctx context.Context, txFn TxFunc) error
}

type TxFunc func(ctx context.Context, executor QueryExecuter) error

type DelegateTxManager struct {
	txBeginner TxBeginner
	isoLevel   pgx.TxIsoLevel
	logger     logging.Logger
}

type TxManagerOption func(tm *DelegateTxManager)

func WithIsoLevel(isoLevel pgx.TxIsoLevel) TxManagerOption {
	return func(tm *DelegateTxManager) {
		tm.isoLevel = isoLevel
	}
}

func NewDelegateTxManager(txBeginner TxBeginner, logger logging.Logger, opts ...TxManagerOption) *DelegateTxManager {
	tm := &DelegateTxManager{
		txBeginner: txBeginner,
		isoLevel:   pgx.ReadCommitted,
		logger:     logger,
	}

	for _, opt := range opts {
		opt(tm)
	}

	return tm
}

func (tm *DelegateTxManager) WithinTransaction(ctx context.Context, txFn TxFunc) error {
	tx, err := tm.txBeginner.BeginTx(ctx, pgx.TxOptions{
		IsoLevel: tm.isoLevel,
	})
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		err := tx.Rollback(ctx)
		if err != nil && !errors.Is(err, pgx.ErrTxClosed) {
			tm.logger.Error("failed to rollback transaction", "error", err.Error())
		}
	}()

	err = txFn(ctx, tx)
	if err != nil {
		return fmt.Errorf("failed to execute logic within transaction: %w", err)
	}

	err = tx.Commit(ctx)
	if err != nil {
		return &CommitError{Err: err}
	}

	return nil
}
