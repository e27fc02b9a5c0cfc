package postgres

import (
	"context"
	"fmt"

	"github.com/Lexv0lk/marketplace/internal/market/domain"
	"github.com/Lexv0lk/marketplace/internal/pkg/database"
)

type StockLedger struct{}

func NewStockLedger() *StockLedger {
	return &StockLedger{}
}

// Reserve takes quantity units out of the item's stock in one conditional
// statement, so two reservations can never both pass on the same units.
func (sl *StockLedger) Reserve(ctx context.Context, executor database.QueryExecuter, itemID int64, quantity int) error {
	if quantity <= 0 {
		return &domain.InvalidArgumentsError{Msg: "quantity must be positive"}
	}

	reserveSQL := `UPDATE items SET stock = stock - $1, updated_at = now() WHERE id = $2 AND stock >= $1`
	tag, err := executor.Exec(ctx, reserveSQL, quantity, itemID)
	if err != nil {
		return fmt.Errorf("failed to reserve stock: %w", err)
	} else if tag.RowsAffected() > 0 {
		return nil
	}

	exists, err := itemExists(ctx, executor, itemID)
	if err != nil {
		return err
	} else if !exists {
		return &domain.ItemNotFoundError{Msg: fmt.Sprintf("item with id %d not found", itemID)}
	}

	return &domain.InsufficientStockError{Msg: fmt.Sprintf("not enough stock of item %d for quantity %d", itemID, quantity)}
}

func (sl *StockLedger) Release(ctx context.Context, executor database.QueryExecuter, itemID int64, quantity int) error {
	if quantity <= 0 {
		return &domain.InvalidArgumentsError{Msg: "quantity must be positive"}
	}

	releaseSQL := `UPDATE items SET stock = stock + $1, updated_at = now() WHERE id = $2`
	tag, err := executor.Exec(ctx, releaseSQL, quantity, itemID)
	if err != nil {
		return fmt.Errorf("failed to release stock: %w", err)
	} else if tag.RowsAffected() == 0 {
		return &domain.ItemNotFoundError{Msg: fmt.Sprintf("item with id %d not found", itemID)}
	}

	return nil
}

func itemExists(ctx context.Context, querier database.Querier, itemID int64) (bool, error) {
	var exists bool
	err := querier.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM items WHERE id = $1)`, itemID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check item existence: %w", err)
	}

	return exists, nil
}
