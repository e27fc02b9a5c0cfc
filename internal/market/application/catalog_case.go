package application

import (
	"context"
	"fmt"
	"strings"

	"github.com/Lexv0lk/marketplace/internal/market/domain"
	"github.com/Lexv0lk/marketplace/internal/pkg/database"
	"github.com/Lexv0lk/marketplace/internal/pkg/logging"
)

const catalogPageSize = 100

type CatalogCase struct {
	coordinator *Coordinator

	users  domain.UsersRepository
	items  domain.ItemsRepository
	orders domain.OrdersRepository
	stock  domain.StockLedger

	audit  domain.AuditSink
	logger logging.Logger
}

func NewCatalogCase(
	coordinator *Coordinator,
	users domain.UsersRepository,
	items domain.ItemsRepository,
	orders domain.OrdersRepository,
	stock domain.StockLedger,
	audit domain.AuditSink,
	logger logging.Logger,
) *CatalogCase {
	return &CatalogCase{
		coordinator: coordinator,
		users:       users,
		items:       items,
		orders:      orders,
		stock:       stock,
		audit:       audit,
		logger:      logger,
	}
}

func (cc *CatalogCase) PublishItem(ctx context.Context, newItem domain.NewItem) (domain.Item, error) {
	newItem.Name = strings.TrimSpace(newItem.Name)

	switch {
	case newItem.Name == "":
		return domain.Item{}, &domain.InvalidArgumentsError{Msg: "item name must not be empty"}
	case newItem.Stock < 0:
		return domain.Item{}, &domain.InvalidArgumentsError{Msg: "item stock must not be negative"}
	}

	if err := domain.ValidateMoney(newItem.Price, "item price"); err != nil {
		return domain.Item{}, err
	}

	if _, err := cc.users.GetUser(ctx, newItem.SellerID); err != nil {
		return domain.Item{}, err
	}

	item, err := cc.items.CreateItem(ctx, newItem)
	if err != nil {
		return domain.Item{}, err
	}

	cc.logger.Info("item published", "item_id", item.ID, "seller_id", item.SellerID)
	cc.audit.Record(ctx, domain.AuditEvent{
		Type:    domain.AuditItemPublish,
		UserID:  item.SellerID,
		Details: fmt.Sprintf("item %d %q published with stock %d", item.ID, item.Name, item.Stock),
	})

	return item, nil
}

// UpdateItem rewrites the listing and adds update.Restock units through the
// StockLedger. Only the seller of the item may change it.
func (cc *CatalogCase) UpdateItem(ctx context.Context, update domain.ItemUpdate) (domain.Item, error) {
	update.Name = strings.TrimSpace(update.Name)

	switch {
	case update.Name == "":
		return domain.Item{}, &domain.InvalidArgumentsError{Msg: "item name must not be empty"}
	case update.Restock < 0:
		return domain.Item{}, &domain.InvalidArgumentsError{Msg: "restock quantity must not be negative"}
	}

	if err := domain.ValidateMoney(update.Price, "item price"); err != nil {
		return domain.Item{}, err
	}

	var updated domain.Item
	err := cc.coordinator.Execute(ctx, "update_item", func(ctx context.Context, executor database.QueryExecuter) error {
		item, err := cc.lockOwnedItem(ctx, executor, update.SellerID, update.ItemID)
		if err != nil {
			return err
		}

		if update.Restock > 0 {
			if err := cc.stock.Release(ctx, executor, item.ID, update.Restock); err != nil {
				return err
			}
		}

		item.Name = update.Name
		item.Description = update.Description
		item.Price = update.Price

		updated, err = cc.items.UpdateItemDetails(ctx, executor, item)
		return err
	})
	if err != nil {
		return domain.Item{}, err
	}

	cc.logger.Info("item updated", "item_id", updated.ID, "restock", update.Restock, "stock", updated.Stock)
	cc.audit.Record(ctx, domain.AuditEvent{
		Type:    domain.AuditItemUpdate,
		UserID:  updated.SellerID,
		Details: fmt.Sprintf("item %d updated, restocked %d, stock now %d", updated.ID, update.Restock, updated.Stock),
	})

	return updated, nil
}

// DelistItem removes an item from the catalog. It is refused while a pending
// or confirmed order still references the item.
func (cc *CatalogCase) DelistItem(ctx context.Context, sellerID, itemID int64) error {
	err := cc.coordinator.Execute(ctx, "delist_item", func(ctx context.Context, executor database.QueryExecuter) error {
		if _, err := cc.lockOwnedItem(ctx, executor, sellerID, itemID); err != nil {
			return err
		}

		open, err := cc.orders.CountOpenOrdersForItem(ctx, executor, itemID)
		if err != nil {
			return err
		}

		if open > 0 {
			return &domain.ItemHasOpenOrdersError{
				Msg: fmt.Sprintf("item %d has %d open orders", itemID, open),
			}
		}

		return cc.items.DeleteItem(ctx, executor, itemID)
	})
	if err != nil {
		return err
	}

	cc.logger.Info("item delisted", "item_id", itemID, "seller_id", sellerID)
	cc.audit.Record(ctx, domain.AuditEvent{
		Type:    domain.AuditItemDelete,
		UserID:  sellerID,
		Details: fmt.Sprintf("item %d delisted", itemID),
	})

	return nil
}

func (cc *CatalogCase) GetItem(ctx context.Context, itemID int64) (domain.Item, error) {
	return cc.items.GetItem(ctx, itemID)
}

func (cc *CatalogCase) ListItemsBySeller(ctx context.Context, sellerID int64) ([]domain.Item, error) {
	return cc.items.ListItemsBySeller(ctx, sellerID)
}

func (cc *CatalogCase) ListAvailableItems(ctx context.Context) ([]domain.Item, error) {
	return cc.items.ListAvailableItems(ctx, catalogPageSize)
}

func (cc *CatalogCase) lockOwnedItem(ctx context.Context, executor database.QueryExecuter, sellerID, itemID int64) (domain.Item, error) {
	item, err := cc.items.LockItem(ctx, executor, itemID)
	if err != nil {
		return domain.Item{}, err
	}

	if item.SellerID != sellerID {
		return domain.Item{}, &domain.InvalidArgumentsError{
			Msg: fmt.Sprintf("item %d does not belong to user %d", itemID, sellerID),
		}
	}

	return item, nil
}
