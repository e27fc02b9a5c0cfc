package domain

import (
	"context"

	"github.com/Lexv0lk/marketplace/internal/pkg/database"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=ledgers.go -destination=../../../gen/mocks/market/ledgers.go -package=mocks

// StockLedger is the only writer of Item.stock. Both operations run on the
// caller's transaction and change nothing when they fail.
type StockLedger interface {
	Reserve(ctx context.Context, executor database.QueryExecuter, itemID int64, quantity int) error
	Release(ctx context.Context, executor database.QueryExecuter, itemID int64, quantity int) error
}

// BalanceLedger is the only writer of User.balance. Amounts must be strictly positive.
type BalanceLedger interface {
	Debit(ctx context.Context, executor database.QueryExecuter, userID int64, amount decimal.Decimal) error
	Credit(ctx context.Context, executor database.QueryExecuter, userID int64, amount decimal.Decimal) error
}
