package application

import (
	"context"
	"fmt"
	"time"

	"github.com/Lexv0lk/marketplace/internal/market/domain"
	"github.com/Lexv0lk/marketplace/internal/pkg/database"
	"github.com/Lexv0lk/marketplace/internal/pkg/logging"
	"github.com/cenkalti/backoff/v4"
)

type RetryPolicy struct {
	// MaxAttempts counts the first run. Values below one mean a single run.
	MaxAttempts     int
	InitialInterval time.Duration
	MaxInterval     time.Duration
}

func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts:     5,
		InitialInterval: 20 * time.Millisecond,
		MaxInterval:     500 * time.Millisecond,
	}
}

// Coordinator runs every state change of orders, stock and balances as one
// database transaction. A transaction that fails with a transient error is
// rerun from the start, so precondition checks always see fresh rows.
type Coordinator struct {
	txManager database.TxManager
	policy    RetryPolicy
	logger    logging.Logger
}

func NewCoordinator(txManager database.TxManager, policy RetryPolicy, logger logging.Logger) *Coordinator {
	return &Coordinator{
		txManager: txManager,
		policy:    policy,
		logger:    logger,
	}
}

func (c *Coordinator) Execute(ctx context.Context, operation string, txFn database.TxFunc) error {
	attempt := 0

	run := func() error {
		attempt++

		err := c.txManager.WithinTransaction(ctx, txFn)
		if err == nil {
			return nil
		}

		if database.IsCommitOutcomeUnknown(err) {
			c.logger.Error("connection lost during commit, transaction is not retried",
				"operation", operation,
				"attempt", attempt,
				"error", err.Error(),
			)
			return backoff.Permanent(err)
		}

		if !isRetryable(err) {
			return backoff.Permanent(err)
		}

		c.logger.Warn("transient failure, transaction will be retried",
			"operation", operation,
			"attempt", attempt,
			"error", err.Error(),
		)
		return err
	}

	err := backoff.Retry(run, backoff.WithContext(c.newBackOff(), ctx))
	if err == nil {
		return nil
	}

	if !isRetryable(err) {
		return err
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}

	c.logger.Error("giving up on transaction", "operation", operation, "attempts", attempt, "error", err.Error())
	return &domain.StoreUnavailableError{
		Msg: fmt.Sprintf("%s failed after %d attempts: %v", operation, attempt, err),
	}
}

func (c *Coordinator) newBackOff() backoff.BackOff {
	expBackOff := backoff.NewExponentialBackOff()
	expBackOff.InitialInterval = c.policy.InitialInterval
	expBackOff.MaxInterval = c.policy.MaxInterval
	expBackOff.MaxElapsedTime = 0

	retries := 0
	if c.policy.MaxAttempts > 1 {
		retries = c.policy.MaxAttempts - 1
	}

	return backoff.WithMaxRetries(expBackOff, uint64(retries))
}

// A commit whose outcome is unknown is never retryable: the first run may
// already have moved money or stock.
func isRetryable(err error) bool {
	if database.IsCommitOutcomeUnknown(err) {
		return false
	}

	return domain.IsTransient(err) ||
		database.IsSerializationConflict(err) ||
		database.IsConnectionFailure(err)
}
