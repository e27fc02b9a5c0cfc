package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Lexv0lk/marketplace/internal/market/domain"
	"github.com/Lexv0lk/marketplace/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

const orderColumns = `id, item_id, buyer_id, seller_id, quantity, total_price::text, status, version, created_at, updated_at`

type OrdersRepository struct {
	querier database.Querier
}

func NewOrdersRepository(querier database.Querier) *OrdersRepository {
	return &OrdersRepository{
		querier: querier,
	}
}

func (r *OrdersRepository) GetOrder(ctx context.Context, orderID int64) (domain.Order, error) {
	sql := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`
	return r.fetchOrder(ctx, r.querier, sql, orderID)
}

func (r *OrdersRepository) LockOrder(ctx context.Context, querier database.Querier, orderID int64) (domain.Order, error) {
	lockOrderSQL := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1 FOR UPDATE`
	return r.fetchOrder(ctx, querier, lockOrderSQL, orderID)
}

func (r *OrdersRepository) ListOrdersByBuyer(ctx context.Context, buyerID int64) ([]domain.Order, error) {
	sql := `SELECT ` + orderColumns + ` FROM orders WHERE buyer_id = $1 ORDER BY created_at DESC, id DESC`
	return r.listOrders(ctx, sql, buyerID)
}

func (r *OrdersRepository) ListOrdersBySeller(ctx context.Context, sellerID int64) ([]domain.Order, error) {
	sql := `SELECT ` + orderColumns + ` FROM orders WHERE seller_id = $1 ORDER BY created_at DESC, id DESC`
	return r.listOrders(ctx, sql, sellerID)
}

func (r *OrdersRepository) InsertOrder(ctx context.Context, querier database.Querier, order domain.Order) (domain.Order, error) {
	insertOrderSQL := `INSERT INTO orders (item_id, buyer_id, seller_id, quantity, total_price, status, version, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5::numeric, $6, 1, $7, $8)
			RETURNING id`

	err := querier.QueryRow(ctx, insertOrderSQL,
		order.ItemID, order.BuyerID, order.SellerID, order.Quantity, order.TotalPrice.String(),
		string(order.Status), order.CreatedAt, order.UpdatedAt,
	).Scan(&order.ID)
	if err != nil {
		return domain.Order{}, fmt.Errorf("failed to insert order: %w", err)
	}

	order.Version = 1
	return order, nil
}

func (r *OrdersRepository) UpdateOrderStatus(ctx context.Context, executor database.Executor, order domain.Order, next domain.OrderStatus, at time.Time) (domain.Order, error) {
	updateStatusSQL := `UPDATE orders SET status = $1, version = version + 1, updated_at = $2
			WHERE id = $3 AND status = $4 AND version = $5`

	tag, err := executor.Exec(ctx, updateStatusSQL, string(next), at, order.ID, string(order.Status), order.Version)
	if err != nil {
		return domain.Order{}, fmt.Errorf("failed to update order status: %w", err)
	} else if tag.RowsAffected() == 0 {
		return domain.Order{}, &domain.ConcurrencyConflictError{
			Msg: fmt.Sprintf("order %d changed concurrently", order.ID),
		}
	}

	order.Status = next
	order.Version++
	order.UpdatedAt = at
	return order, nil
}

func (r *OrdersRepository) CountOpenOrders(ctx context.Context, querier database.Querier, userID int64) (int, error) {
	countSQL := `SELECT COUNT(*) FROM orders
			WHERE (buyer_id = $1 OR seller_id = $1) AND status IN ('PENDING', 'CONFIRMED')`

	var count int
	if err := querier.QueryRow(ctx, countSQL, userID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count open orders: %w", err)
	}

	return count, nil
}

func (r *OrdersRepository) CountOpenOrdersForItem(ctx context.Context, querier database.Querier, itemID int64) (int, error) {
	countSQL := `SELECT COUNT(*) FROM orders WHERE item_id = $1 AND status IN ('PENDING', 'CONFIRMED')`

	var count int
	if err := querier.QueryRow(ctx, countSQL, itemID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count open orders for item: %w", err)
	}

	return count, nil
}

func (r *OrdersRepository) fetchOrder(ctx context.Context, querier database.Querier, sql string, orderID int64) (domain.Order, error) {
	order, err := scanOrder(querier.QueryRow(ctx, sql, orderID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Order{}, &domain.OrderNotFoundError{Msg: fmt.Sprintf("order with id %d not found", orderID)}
		}

		return domain.Order{}, fmt.Errorf("failed to get order: %w", err)
	}

	return order, nil
}

func (r *OrdersRepository) listOrders(ctx context.Context, sql string, userID int64) ([]domain.Order, error) {
	rows, err := r.querier.Query(ctx, sql, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	defer rows.Close()

	orders := make([]domain.Order, 0)
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order row: %w", err)
		}

		orders = append(orders, order)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	return orders, nil
}

func scanOrder(row rowScanner) (domain.Order, error) {
	var order domain.Order
	var totalPrice, status string

	err := row.Scan(&order.ID, &order.ItemID, &order.BuyerID, &order.SellerID, &order.Quantity,
		&totalPrice, &status, &order.Version, &order.CreatedAt, &order.UpdatedAt)
	if err != nil {
		return domain.Order{}, err
	}

	order.TotalPrice, err = parseMoney(totalPrice)
	if err != nil {
		return domain.Order{}, err
	}

	order.Status, err = domain.ParseOrderStatus(status)
	if err != nil {
		return domain.Order{}, err
	}

	return order, nil
}
