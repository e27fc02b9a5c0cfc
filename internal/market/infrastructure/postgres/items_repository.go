package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Lexv0lk/marketplace/internal/market/domain"
	"github.com/Lexv0lk/marketplace/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

const itemColumns = `id, seller_id, name, description, price::text, stock, available, created_at, updated_at`

type ItemsRepository struct {
	querier database.Querier
}

func NewItemsRepository(querier database.Querier) *ItemsRepository {
	return &ItemsRepository{
		querier: querier,
	}
}

func (ir *ItemsRepository) GetItem(ctx context.Context, itemID int64) (domain.Item, error) {
	sql := `SELECT ` + itemColumns + ` FROM items WHERE id = $1`
	return ir.fetchItem(ctx, ir.querier, sql, itemID)
}

func (ir *ItemsRepository) LockItem(ctx context.Context, querier database.Querier, itemID int64) (domain.Item, error) {
	lockItemSQL := `SELECT ` + itemColumns + ` FROM items WHERE id = $1 FOR UPDATE`
	return ir.fetchItem(ctx, querier, lockItemSQL, itemID)
}

func (ir *ItemsRepository) ListItemsBySeller(ctx context.Context, sellerID int64) ([]domain.Item, error) {
	sql := `SELECT ` + itemColumns + ` FROM items WHERE seller_id = $1 ORDER BY id`
	return ir.listItems(ctx, sql, sellerID)
}

func (ir *ItemsRepository) listItems(ctx context.Context, sql string, args ...any) ([]domain.Item, error) {
	rows, err := ir.querier.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	defer rows.Close()

	items := make([]domain.Item, 0)
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan item row: %w", err)
		}

		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}

	return items, nil
}

func (ir *ItemsRepository) ListAvailableItems(ctx context.Context, limit int) ([]domain.Item, error) {
	sql := `SELECT ` + itemColumns + ` FROM items WHERE available ORDER BY id LIMIT $1`
	return ir.listItems(ctx, sql, limit)
}

func (ir *ItemsRepository) LockItemsBySeller(ctx context.Context, querier database.Querier, sellerID int64) ([]int64, error) {
	lockSQL := `SELECT id FROM items WHERE seller_id = $1 ORDER BY id FOR UPDATE`

	rows, err := querier.Query(ctx, lockSQL, sellerID)
	if err != nil {
		return nil, fmt.Errorf("failed to lock seller items: %w", err)
	}
	defer rows.Close()

	ids := make([]int64, 0)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan item id: %w", err)
		}

		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to lock seller items: %w", err)
	}

	return ids, nil
}

func (ir *ItemsRepository) UpdateItemDetails(ctx context.Context, querier database.Querier, item domain.Item) (domain.Item, error) {
	sql := `UPDATE items SET name = $2, description = $3, price = $4::numeric, updated_at = now()
			WHERE id = $1
			RETURNING ` + itemColumns

	updated, err := scanItem(querier.QueryRow(ctx, sql, item.ID, item.Name, item.Description, item.Price.String()))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Item{}, &domain.ItemNotFoundError{Msg: fmt.Sprintf("item with id %d not found", item.ID)}
		}

		return domain.Item{}, fmt.Errorf("failed to update item: %w", err)
	}

	return updated, nil
}

func (ir *ItemsRepository) DeleteItem(ctx context.Context, executor database.Executor, itemID int64) error {
	sql := `DELETE FROM items WHERE id = $1`

	tag, err := executor.Exec(ctx, sql, itemID)
	if err != nil {
		return fmt.Errorf("failed to delete item: %w", err)
	} else if tag.RowsAffected() == 0 {
		return &domain.ItemNotFoundError{Msg: fmt.Sprintf("item with id %d not found", itemID)}
	}

	return nil
}

func (ir *ItemsRepository) CreateItem(ctx context.Context, newItem domain.NewItem) (domain.Item, error) {
	sql := `INSERT INTO items (seller_id, name, description, price, stock)
			VALUES ($1, $2, $3, $4::numeric, $5)
			RETURNING ` + itemColumns

	item, err := scanItem(ir.querier.QueryRow(ctx, sql,
		newItem.SellerID, newItem.Name, newItem.Description, newItem.Price.String(), newItem.Stock))
	if err != nil {
		if database.IsForeignKeyViolation(err) {
			return domain.Item{}, &domain.UserNotFoundError{Msg: fmt.Sprintf("seller with id %d not found", newItem.SellerID)}
		}

		return domain.Item{}, fmt.Errorf("failed to create item: %w", err)
	}

	return item, nil
}

func (ir *ItemsRepository) fetchItem(ctx context.Context, querier database.Querier, sql string, itemID int64) (domain.Item, error) {
	item, err := scanItem(querier.QueryRow(ctx, sql, itemID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Item{}, &domain.ItemNotFoundError{Msg: fmt.Sprintf("item with id %d not found", itemID)}
		}

		return domain.Item{}, fmt.Errorf("failed to get item: %w", err)
	}

	return item, nil
}

func scanItem(row rowScanner) (domain.Item, error) {
	var item domain.Item
	var price string

	err := row.Scan(&item.ID, &item.SellerID, &item.Name, &item.Description, &price,
		&item.Stock, &item.Available, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		return domain.Item{}, err
	}

	item.Price, err = parseMoney(price)
	if err != nil {
		return domain.Item{}, err
	}

	return item, nil
}
