package postgres

import (
	"context"
	"fmt"

	"github.com/Lexv0lk/marketplace/internal/market/domain"
	"github.com/Lexv0lk/marketplace/internal/pkg/database"
	"github.com/shopspring/decimal"
)

type BalanceLedger struct{}

func NewBalanceLedger() *BalanceLedger {
	return &BalanceLedger{}
}

func (bl *BalanceLedger) Debit(ctx context.Context, executor database.QueryExecuter, userID int64, amount decimal.Decimal) error {
	if err := domain.ValidateMoney(amount, "debit amount"); err != nil {
		return err
	}

	debitSQL := `UPDATE users SET balance = balance - $1::numeric, updated_at = now() WHERE id = $2 AND balance >= $1::numeric`
	tag, err := executor.Exec(ctx, debitSQL, amount.String(), userID)
	if err != nil {
		return fmt.Errorf("failed to debit balance: %w", err)
	} else if tag.RowsAffected() > 0 {
		return nil
	}

	exists, err := userExists(ctx, executor, userID)
	if err != nil {
		return err
	} else if !exists {
		return &domain.UserNotFoundError{Msg: fmt.Sprintf("user with id %d not found", userID)}
	}

	return &domain.InsufficientBalanceError{Msg: fmt.Sprintf("balance of user %d is below %s", userID, amount.StringFixed(2))}
}

func (bl *BalanceLedger) Credit(ctx context.Context, executor database.QueryExecuter, userID int64, amount decimal.Decimal) error {
	if err := domain.ValidateMoney(amount, "credit amount"); err != nil {
		return err
	}

	creditSQL := `UPDATE users SET balance = balance + $1::numeric, updated_at = now() WHERE id = $2`
	tag, err := executor.Exec(ctx, creditSQL, amount.String(), userID)
	if err != nil {
		if database.IsNumericOverflow(err) {
			return &domain.InvalidArgumentsError{Msg: fmt.Sprintf("balance of user %d would exceed the account limit", userID)}
		}

		return fmt.Errorf("failed to credit balance: %w", err)
	} else if tag.RowsAffected() == 0 {
		return &domain.UserNotFoundError{Msg: fmt.Sprintf("user with id %d not found", userID)}
	}

	return nil
}

func userExists(ctx context.Context, querier database.Querier, userID int64) (bool, error) {
	var exists bool
	err := querier.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE id = $1)`, userID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check user existence: %w", err)
	}

	return exists, nil
}
