package domain

import (
	"context"
	"time"

	"github.com/Lexv0lk/marketplace/internal/pkg/database"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=items.go -destination=../../../gen/mocks/market/items.go -package=mocks

type Item struct {
	ID          int64
	SellerID    int64
	Name        string
	Description string
	Price       decimal.Decimal
	Stock       int
	// Available mirrors Stock > 0 and is maintained by the store.
	Available bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

type NewItem struct {
	SellerID    int64
	Name        string
	Description string
	Price       decimal.Decimal
	Stock       int
}

// ItemUpdate replaces the listing details and adds Restock units to the stock.
type ItemUpdate struct {
	ItemID      int64
	SellerID    int64
	Name        string
	Description string
	Price       decimal.Decimal
	Restock     int
}

type ItemsRepository interface {
	GetItem(ctx context.Context, itemID int64) (Item, error)
	ListItemsBySeller(ctx context.Context, sellerID int64) ([]Item, error)
	ListAvailableItems(ctx context.Context, limit int) ([]Item, error)
	CreateItem(ctx context.Context, item NewItem) (Item, error)
	LockItem(ctx context.Context, querier database.Querier, itemID int64) (Item, error)
	// LockItemsBySeller locks every item of the seller in ascending id order
	// and returns their ids.
	LockItemsBySeller(ctx context.Context, querier database.Querier, sellerID int64) ([]int64, error)
	// UpdateItemDetails writes name, description and price. Stock is left to the StockLedger.
	UpdateItemDetails(ctx context.Context, querier database.Querier, item Item) (Item, error)
	DeleteItem(ctx context.Context, executor database.Executor, itemID int64) error
}
