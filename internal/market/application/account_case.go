package application

import (
	"context"
	"fmt"
	"strings"

	"github.com/Lexv0lk/marketplace/internal/market/domain"
	"github.com/Lexv0lk/marketplace/internal/pkg/database"
	"github.com/Lexv0lk/marketplace/internal/pkg/logging"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

const auditPageSize = 100

type AccountCase struct {
	coordinator *Coordinator

	users    domain.UsersRepository
	items    domain.ItemsRepository
	orders   domain.OrdersRepository
	balances domain.BalanceLedger
	auditLog domain.AuditLog

	audit  domain.AuditSink
	logger logging.Logger
}

func NewAccountCase(
	coordinator *Coordinator,
	users domain.UsersRepository,
	items domain.ItemsRepository,
	orders domain.OrdersRepository,
	balances domain.BalanceLedger,
	auditLog domain.AuditLog,
	audit domain.AuditSink,
	logger logging.Logger,
) *AccountCase {
	return &AccountCase{
		coordinator: coordinator,
		users:       users,
		items:       items,
		orders:      orders,
		balances:    balances,
		auditLog:    auditLog,
		audit:       audit,
		logger:      logger,
	}
}

func (ac *AccountCase) RechargeBalance(ctx context.Context, userID int64, amount decimal.Decimal) (domain.User, error) {
	if err := domain.ValidateMoney(amount, "recharge amount"); err != nil {
		return domain.User{}, err
	}

	var recharged domain.User
	err := ac.coordinator.Execute(ctx, "recharge_balance", func(ctx context.Context, executor database.QueryExecuter) error {
		users, err := ac.users.LockUsers(ctx, executor, []int64{userID})
		if err != nil {
			return err
		}

		if err := ac.balances.Credit(ctx, executor, userID, amount); err != nil {
			return err
		}

		recharged = users[userID]
		recharged.Balance = recharged.Balance.Add(amount)
		return nil
	})
	if err != nil {
		return domain.User{}, err
	}

	ac.logger.Info("balance recharged", "user_id", userID, "amount", amount.StringFixed(2))
	ac.audit.Record(ctx, domain.AuditEvent{
		Type:    domain.AuditUserRecharge,
		UserID:  userID,
		Details: fmt.Sprintf("recharged %s", amount.StringFixed(2)),
	})

	return recharged, nil
}

// DeleteUser removes the account and its listed items. It is refused while
// the user is buyer or seller of a pending or confirmed order.
//
// The seller's items are locked before the user row so the cascade takes
// locks in the same item then user order as order creation.
func (ac *AccountCase) DeleteUser(ctx context.Context, userID int64) error {
	err := ac.coordinator.Execute(ctx, "delete_user", func(ctx context.Context, executor database.QueryExecuter) error {
		if _, err := ac.items.LockItemsBySeller(ctx, executor, userID); err != nil {
			return err
		}

		if _, err := ac.users.LockUsers(ctx, executor, []int64{userID}); err != nil {
			return err
		}

		open, err := ac.orders.CountOpenOrders(ctx, executor, userID)
		if err != nil {
			return err
		}

		if open > 0 {
			return &domain.UserHasOpenOrdersError{
				Msg: fmt.Sprintf("user %d has %d open orders", userID, open),
			}
		}

		return ac.users.DeleteUser(ctx, executor, userID)
	})
	if err != nil {
		return err
	}

	ac.logger.Info("user deleted", "user_id", userID)
	ac.audit.Record(ctx, domain.AuditEvent{
		Type:    domain.AuditUserDelete,
		UserID:  userID,
		Details: fmt.Sprintf("user %d deleted", userID),
	})

	return nil
}

func (ac *AccountCase) UpdateContacts(ctx context.Context, userID int64, email, phone string) (domain.User, error) {
	email = strings.TrimSpace(email)
	phone = strings.TrimSpace(phone)

	switch {
	case email == "":
		return domain.User{}, &domain.InvalidArgumentsError{Msg: "email must not be empty"}
	case phone == "":
		return domain.User{}, &domain.InvalidArgumentsError{Msg: "phone must not be empty"}
	}

	user, err := ac.users.UpdateContacts(ctx, userID, email, phone)
	if err != nil {
		return domain.User{}, err
	}

	ac.logger.Info("user contacts updated", "user_id", userID)
	ac.audit.Record(ctx, domain.AuditEvent{
		Type:    domain.AuditUserUpdate,
		UserID:  userID,
		Details: "contacts updated",
	})

	return user, nil
}

func (ac *AccountCase) GetAccountSummary(ctx context.Context, userID int64) (domain.AccountSummary, error) {
	group, groupCtx := errgroup.WithContext(ctx)

	var summary domain.AccountSummary

	group.Go(func() error {
		var err error
		summary.User, err = ac.users.GetUser(groupCtx, userID)
		return err
	})

	group.Go(func() error {
		var err error
		summary.Purchases, err = ac.orders.ListOrdersByBuyer(groupCtx, userID)
		return err
	})

	group.Go(func() error {
		var err error
		summary.Sales, err = ac.orders.ListOrdersBySeller(groupCtx, userID)
		return err
	})

	if err := group.Wait(); err != nil {
		return domain.AccountSummary{}, err
	}

	return summary, nil
}

func (ac *AccountCase) ListAuditEvents(ctx context.Context, userID int64) ([]domain.AuditEvent, error) {
	return ac.auditLog.ListByUser(ctx, userID, auditPageSize)
}
