package domain

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/Lexv0lk/marketplace/internal/pkg/database"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=orders.go -destination=../../../gen/mocks/market/orders.go -package=mocks

type OrderStatus string

const (
	StatusPending   OrderStatus = "PENDING"
	StatusConfirmed OrderStatus = "CONFIRMED"
	StatusCompleted OrderStatus = "COMPLETED"
	StatusCancelled OrderStatus = "CANCELLED"
)

func (s OrderStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

func ParseOrderStatus(raw string) (OrderStatus, error) {
	status := OrderStatus(raw)
	switch status {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return status, nil
	default:
		return "", fmt.Errorf("unknown order status %q", raw)
	}
}

type OrderAction string

const (
	ActionConfirm  OrderAction = "confirm"
	ActionComplete OrderAction = "complete"
	ActionCancel   OrderAction = "cancel"
)

type transition struct {
	from []OrderStatus
	to   OrderStatus
}

var transitions = map[OrderAction]transition{
	ActionConfirm:  {from: []OrderStatus{StatusPending}, to: StatusConfirmed},
	ActionComplete: {from: []OrderStatus{StatusConfirmed}, to: StatusCompleted},
	ActionCancel:   {from: []OrderStatus{StatusPending, StatusConfirmed}, to: StatusCancelled},
}

// NextStatus returns the status an order in current moves to under action.
func NextStatus(current OrderStatus, action OrderAction) (OrderStatus, error) {
	tr, ok := transitions[action]
	if !ok {
		return "", &InvalidArgumentsError{Msg: fmt.Sprintf("unknown order action %q", action)}
	}

	if !slices.Contains(tr.from, current) {
		return "", &InvalidStateTransitionError{
			Msg: fmt.Sprintf("cannot %s order in status %s", action, current),
		}
	}

	return tr.to, nil
}

type Order struct {
	ID         int64
	ItemID     int64
	BuyerID    int64
	SellerID   int64
	Quantity   int
	TotalPrice decimal.Decimal
	Status     OrderStatus
	// Version grows by one on every status write and guards it as a compare-and-set.
	Version   int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (o Order) HasParticipant(userID int64) bool {
	return o.BuyerID == userID || o.SellerID == userID
}

type OrderContacts struct {
	OrderID        int64
	BuyerUsername  string
	BuyerPhone     string
	SellerUsername string
	SellerPhone    string
}

type OrdersRepository interface {
	GetOrder(ctx context.Context, orderID int64) (Order, error)
	ListOrdersByBuyer(ctx context.Context, buyerID int64) ([]Order, error)
	ListOrdersBySeller(ctx context.Context, sellerID int64) ([]Order, error)
	LockOrder(ctx context.Context, querier database.Querier, orderID int64) (Order, error)
	InsertOrder(ctx context.Context, querier database.Querier, order Order) (Order, error)
	// UpdateOrderStatus moves order to next only if the stored row still has
	// order's status and version. Otherwise it fails with ConcurrencyConflictError.
	UpdateOrderStatus(ctx context.Context, executor database.Executor, order Order, next OrderStatus, at time.Time) (Order, error)
	// CountOpenOrders counts pending and confirmed orders where the user is buyer or seller.
	CountOpenOrders(ctx context.Context, querier database.Querier, userID int64) (int, error)
	CountOpenOrdersForItem(ctx context.Context, querier database.Querier, itemID int64) (int, error)
}
