package domain

import (
	"context"

	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=services.go -destination=../../../gen/mocks/market/services.go -package=mocks

type OrderService interface {
	CreateOrder(ctx context.Context, itemID, buyerID, sellerID int64, quantity int, totalPrice decimal.Decimal) (Order, error)
	ConfirmOrder(ctx context.Context, orderID int64) (Order, error)
	CompleteOrder(ctx context.Context, orderID int64) (Order, error)
	CancelOrder(ctx context.Context, orderID int64) (Order, error)
	GetOrder(ctx context.Context, orderID int64) (Order, error)
	ListOrdersByBuyer(ctx context.Context, buyerID int64) ([]Order, error)
	ListOrdersBySeller(ctx context.Context, sellerID int64) ([]Order, error)
	ExchangeContacts(ctx context.Context, orderID int64) (OrderContacts, error)
}

type AccountSummary struct {
	User      User
	Purchases []Order
	Sales     []Order
}

type AccountService interface {
	RechargeBalance(ctx context.Context, userID int64, amount decimal.Decimal) (User, error)
	DeleteUser(ctx context.Context, userID int64) error
	GetAccountSummary(ctx context.Context, userID int64) (AccountSummary, error)
	UpdateContacts(ctx context.Context, userID int64, email, phone string) (User, error)
	ListAuditEvents(ctx context.Context, userID int64) ([]AuditEvent, error)
}

type CatalogService interface {
	PublishItem(ctx context.Context, item NewItem) (Item, error)
	GetItem(ctx context.Context, itemID int64) (Item, error)
	ListItemsBySeller(ctx context.Context, sellerID int64) ([]Item, error)
	ListAvailableItems(ctx context.Context) ([]Item, error)
	UpdateItem(ctx context.Context, update ItemUpdate) (Item, error)
	DelistItem(ctx context.Context, sellerID, itemID int64) error
}

type AuthService interface {
	Register(ctx context.Context, registration Registration) (User, error)
	// Authenticate returns a signed bearer token for the user.
	Authenticate(ctx context.Context, username, password string) (string, error)
	ChangePassword(ctx context.Context, userID int64, oldPassword, newPassword string) error
}
