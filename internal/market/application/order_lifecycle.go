package application

import (
	"context"
	"fmt"

	"github.com/Lexv0lk/marketplace/internal/market/domain"
	"github.com/Lexv0lk/marketplace/internal/pkg/database"
	"github.com/Lexv0lk/marketplace/internal/pkg/logging"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// effectsFn applies the ledger side of a status change. It runs after the
// order row is locked and the transition is known to be legal.
type effectsFn func(ctx context.Context, executor database.QueryExecuter, order domain.Order) error

type OrderLifecycle struct {
	coordinator *Coordinator

	items    domain.ItemsRepository
	users    domain.UsersRepository
	orders   domain.OrdersRepository
	stock    domain.StockLedger
	balances domain.BalanceLedger

	audit  domain.AuditSink
	clock  domain.Clock
	logger logging.Logger
}

func NewOrderLifecycle(
	coordinator *Coordinator,
	items domain.ItemsRepository,
	users domain.UsersRepository,
	orders domain.OrdersRepository,
	stock domain.StockLedger,
	balances domain.BalanceLedger,
	audit domain.AuditSink,
	clock domain.Clock,
	logger logging.Logger,
) *OrderLifecycle {
	return &OrderLifecycle{
		coordinator: coordinator,
		items:       items,
		users:       users,
		orders:      orders,
		stock:       stock,
		balances:    balances,
		audit:       audit,
		clock:       clock,
		logger:      logger,
	}
}

// CreateOrder reserves stock and debits the buyer in one transaction and
// stores the order as PENDING. Locks are taken item first, then users.
func (ol *OrderLifecycle) CreateOrder(ctx context.Context, itemID, buyerID, sellerID int64, quantity int, totalPrice decimal.Decimal) (domain.Order, error) {
	if buyerID == sellerID {
		return domain.Order{}, &domain.SelfTradeNotAllowedError{Msg: "buyer and seller must be different users"}
	}
	if quantity <= 0 {
		return domain.Order{}, &domain.InvalidArgumentsError{Msg: "quantity must be positive"}
	}
	if err := domain.ValidateMoney(totalPrice, "total price"); err != nil {
		return domain.Order{}, err
	}

	var created domain.Order
	err := ol.coordinator.Execute(ctx, "create_order", func(ctx context.Context, executor database.QueryExecuter) error {
		item, err := ol.items.LockItem(ctx, executor, itemID)
		if err != nil {
			return err
		}

		if item.SellerID != sellerID {
			return &domain.InvalidArgumentsError{
				Msg: fmt.Sprintf("item %d is not sold by user %d", itemID, sellerID),
			}
		}

		if _, err := ol.users.LockUsers(ctx, executor, []int64{buyerID, sellerID}); err != nil {
			return err
		}

		if err := ol.stock.Reserve(ctx, executor, itemID, quantity); err != nil {
			return err
		}

		if err := ol.balances.Debit(ctx, executor, buyerID, totalPrice); err != nil {
			return err
		}

		now := ol.clock.Now()
		created, err = ol.orders.InsertOrder(ctx, executor, domain.Order{
			ItemID:     itemID,
			BuyerID:    buyerID,
			SellerID:   sellerID,
			Quantity:   quantity,
			TotalPrice: totalPrice,
			Status:     domain.StatusPending,
			CreatedAt:  now,
			UpdatedAt:  now,
		})
		return err
	})
	if err != nil {
		ol.logger.Warn("order creation rejected",
			"item_id", itemID,
			"buyer_id", buyerID,
			"code", domain.ErrorCode(err),
			"error", err.Error(),
		)
		return domain.Order{}, err
	}

	ol.logger.Info("order created", "order_id", created.ID, "item_id", itemID, "buyer_id", buyerID)
	ol.audit.Record(ctx, domain.AuditEvent{
		Type:    domain.AuditOrderCreate,
		UserID:  buyerID,
		Details: fmt.Sprintf("order %d: %d x item %d for %s", created.ID, quantity, itemID, totalPrice.StringFixed(2)),
	})

	return created, nil
}

func (ol *OrderLifecycle) ConfirmOrder(ctx context.Context, orderID int64) (domain.Order, error) {
	order, err := ol.transition(ctx, orderID, domain.ActionConfirm, nil)
	if err != nil {
		return domain.Order{}, err
	}

	ol.audit.Record(ctx, domain.AuditEvent{
		Type:    domain.AuditOrderConfirm,
		UserID:  order.SellerID,
		Details: fmt.Sprintf("order %d confirmed", order.ID),
	})

	return order, nil
}

// CompleteOrder pays the seller. Buyer funds were already taken at creation.
func (ol *OrderLifecycle) CompleteOrder(ctx context.Context, orderID int64) (domain.Order, error) {
	order, err := ol.transition(ctx, orderID, domain.ActionComplete,
		func(ctx context.Context, executor database.QueryExecuter, order domain.Order) error {
			if _, err := ol.users.LockUsers(ctx, executor, []int64{order.SellerID}); err != nil {
				return err
			}

			return ol.balances.Credit(ctx, executor, order.SellerID, order.TotalPrice)
		})
	if err != nil {
		return domain.Order{}, err
	}

	ol.audit.Record(ctx, domain.AuditEvent{
		Type:    domain.AuditOrderComplete,
		UserID:  order.SellerID,
		Details: fmt.Sprintf("order %d completed, seller credited %s", order.ID, order.TotalPrice.StringFixed(2)),
	})

	return order, nil
}

// CancelOrder refunds the buyer and puts the reserved units back on the item.
func (ol *OrderLifecycle) CancelOrder(ctx context.Context, orderID int64) (domain.Order, error) {
	order, err := ol.transition(ctx, orderID, domain.ActionCancel,
		func(ctx context.Context, executor database.QueryExecuter, order domain.Order) error {
			if _, err := ol.items.LockItem(ctx, executor, order.ItemID); err != nil {
				return err
			}

			if _, err := ol.users.LockUsers(ctx, executor, []int64{order.BuyerID}); err != nil {
				return err
			}

			if err := ol.balances.Credit(ctx, executor, order.BuyerID, order.TotalPrice); err != nil {
				return err
			}

			return ol.stock.Release(ctx, executor, order.ItemID, order.Quantity)
		})
	if err != nil {
		return domain.Order{}, err
	}

	ol.audit.Record(ctx, domain.AuditEvent{
		Type:    domain.AuditOrderCancel,
		UserID:  order.BuyerID,
		Details: fmt.Sprintf("order %d cancelled, buyer refunded %s", order.ID, order.TotalPrice.StringFixed(2)),
	})

	return order, nil
}

func (ol *OrderLifecycle) GetOrder(ctx context.Context, orderID int64) (domain.Order, error) {
	return ol.orders.GetOrder(ctx, orderID)
}

func (ol *OrderLifecycle) ListOrdersByBuyer(ctx context.Context, buyerID int64) ([]domain.Order, error) {
	return ol.orders.ListOrdersByBuyer(ctx, buyerID)
}

func (ol *OrderLifecycle) ListOrdersBySeller(ctx context.Context, sellerID int64) ([]domain.Order, error) {
	return ol.orders.ListOrdersBySeller(ctx, sellerID)
}

// ExchangeContacts reveals both parties' phone numbers once the seller has
// confirmed the order.
func (ol *OrderLifecycle) ExchangeContacts(ctx context.Context, orderID int64) (domain.OrderContacts, error) {
	order, err := ol.orders.GetOrder(ctx, orderID)
	if err != nil {
		return domain.OrderContacts{}, err
	}

	if order.Status != domain.StatusConfirmed {
		return domain.OrderContacts{}, &domain.InvalidStateTransitionError{
			Msg: fmt.Sprintf("contacts are shared only for confirmed orders, order %d is %s", order.ID, order.Status),
		}
	}

	group, groupCtx := errgroup.WithContext(ctx)

	var buyer, seller domain.User
	group.Go(func() error {
		var err error
		buyer, err = ol.users.GetUser(groupCtx, order.BuyerID)
		return err
	})
	group.Go(func() error {
		var err error
		seller, err = ol.users.GetUser(groupCtx, order.SellerID)
		return err
	})

	if err := group.Wait(); err != nil {
		return domain.OrderContacts{}, err
	}

	return domain.OrderContacts{
		OrderID:        order.ID,
		BuyerUsername:  buyer.Username,
		BuyerPhone:     buyer.Phone,
		SellerUsername: seller.Username,
		SellerPhone:    seller.Phone,
	}, nil
}

func (ol *OrderLifecycle) transition(ctx context.Context, orderID int64, action domain.OrderAction, effects effectsFn) (domain.Order, error) {
	var updated domain.Order

	err := ol.coordinator.Execute(ctx, string(action)+"_order", func(ctx context.Context, executor database.QueryExecuter) error {
		order, err := ol.orders.LockOrder(ctx, executor, orderID)
		if err != nil {
			return err
		}

		next, err := domain.NextStatus(order.Status, action)
		if err != nil {
			return err
		}

		if effects != nil {
			if err := effects(ctx, executor, order); err != nil {
				return err
			}
		}

		updated, err = ol.orders.UpdateOrderStatus(ctx, executor, order, next, ol.clock.Now())
		return err
	})
	if err != nil {
		ol.logger.Warn("order transition rejected",
			"order_id", orderID,
			"action", string(action),
			"code", domain.ErrorCode(err),
			"error", err.Error(),
		)
		return domain.Order{}, err
	}

	ol.logger.Info("order transitioned", "order_id", orderID, "action", string(action), "status", string(updated.Status))
	return updated, nil
}
