package application

import (
	"context"
	"testing"

	dbmocks "github.com/Lexv0lk/marketplace/gen/mocks/database"
	marketmocks "github.com/Lexv0lk/marketplace/gen/mocks/market"
	"github.com/Lexv0lk/marketplace/internal/market/domain"
	"github.com/Lexv0lk/marketplace/internal/pkg/database"
	"github.com/Lexv0lk/marketplace/internal/pkg/logging"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type catalogDeps struct {
	txManager *dbmocks.MockTxManager
	users     *marketmocks.MockUsersRepository
	items     *marketmocks.MockItemsRepository
	orders    *marketmocks.MockOrdersRepository
	stock     *marketmocks.MockStockLedger
	audit     *marketmocks.MockAuditSink
}

func newCatalogDeps(ctrl *gomock.Controller) *catalogDeps {
	return &catalogDeps{
		txManager: dbmocks.NewMockTxManager(ctrl),
		users:     marketmocks.NewMockUsersRepository(ctrl),
		items:     marketmocks.NewMockItemsRepository(ctrl),
		orders:    marketmocks.NewMockOrdersRepository(ctrl),
		stock:     marketmocks.NewMockStockLedger(ctrl),
		audit:     marketmocks.NewMockAuditSink(ctrl),
	}
}

func (d *catalogDeps) catalogCase() *CatalogCase {
	return NewCatalogCase(
		NewCoordinator(d.txManager, testRetryPolicy, logging.DiscardLogger),
		d.users, d.items, d.orders, d.stock, d.audit,
		logging.DiscardLogger,
	)
}

func TestCatalogCase_PublishItem(t *testing.T) {
	t.Parallel()

	price := decimal.RequireFromString("40.00")

	type testCase struct {
		name    string
		newItem domain.NewItem

		prepareFn func(t *testing.T, d *catalogDeps)

		expectedErr error
	}

	tests := []testCase{
		{
			name:    "item published",
			newItem: domain.NewItem{SellerID: 2, Name: "  lamp ", Price: price, Stock: 5},
			prepareFn: func(t *testing.T, d *catalogDeps) {
				d.users.EXPECT().GetUser(gomock.Any(), int64(2)).Return(domain.User{ID: 2}, nil)
				d.items.EXPECT().CreateItem(gomock.Any(), domain.NewItem{SellerID: 2, Name: "lamp", Price: price, Stock: 5}).
					Return(domain.Item{ID: 10, SellerID: 2, Name: "lamp", Price: price, Stock: 5, Available: true}, nil)
				d.audit.EXPECT().Record(gomock.Any(), gomock.Any()).
					Do(func(_ context.Context, event domain.AuditEvent) {
						assert.Equal(t, domain.AuditItemPublish, event.Type)
						assert.Equal(t, int64(2), event.UserID)
					})
			},
		},
		{
			name:    "sold out item can be listed",
			newItem: domain.NewItem{SellerID: 2, Name: "lamp", Price: price, Stock: 0},
			prepareFn: func(t *testing.T, d *catalogDeps) {
				d.users.EXPECT().GetUser(gomock.Any(), int64(2)).Return(domain.User{ID: 2}, nil)
				d.items.EXPECT().CreateItem(gomock.Any(), gomock.Any()).
					Return(domain.Item{ID: 11, SellerID: 2, Name: "lamp", Price: price}, nil)
				d.audit.EXPECT().Record(gomock.Any(), gomock.Any())
			},
		},
		{
			name:        "blank name",
			newItem:     domain.NewItem{SellerID: 2, Name: "   ", Price: price, Stock: 1},
			prepareFn:   func(t *testing.T, d *catalogDeps) {},
			expectedErr: &domain.InvalidArgumentsError{},
		},
		{
			name:        "free item",
			newItem:     domain.NewItem{SellerID: 2, Name: "lamp", Price: decimal.Zero, Stock: 1},
			prepareFn:   func(t *testing.T, d *catalogDeps) {},
			expectedErr: &domain.InvalidArgumentsError{},
		},
		{
			name:        "price finer than a cent",
			newItem:     domain.NewItem{SellerID: 2, Name: "lamp", Price: decimal.RequireFromString("39.999"), Stock: 1},
			prepareFn:   func(t *testing.T, d *catalogDeps) {},
			expectedErr: &domain.InvalidArgumentsError{},
		},
		{
			name:        "negative stock",
			newItem:     domain.NewItem{SellerID: 2, Name: "lamp", Price: price, Stock: -1},
			prepareFn:   func(t *testing.T, d *catalogDeps) {},
			expectedErr: &domain.InvalidArgumentsError{},
		},
		{
			name:    "unknown seller",
			newItem: domain.NewItem{SellerID: 9, Name: "lamp", Price: price, Stock: 1},
			prepareFn: func(t *testing.T, d *catalogDeps) {
				d.users.EXPECT().GetUser(gomock.Any(), int64(9)).Return(domain.User{}, &domain.UserNotFoundError{})
			},
			expectedErr: &domain.UserNotFoundError{},
		},
		{
			name:    "storage fails",
			newItem: domain.NewItem{SellerID: 2, Name: "lamp", Price: price, Stock: 1},
			prepareFn: func(t *testing.T, d *catalogDeps) {
				d.users.EXPECT().GetUser(gomock.Any(), int64(2)).Return(domain.User{ID: 2}, nil)
				d.items.EXPECT().CreateItem(gomock.Any(), gomock.Any()).Return(domain.Item{}, assert.AnError)
			},
			expectedErr: assert.AnError,
		},
	}

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			d := newCatalogDeps(ctrl)
			tt.prepareFn(t, d)

			item, err := d.catalogCase().PublishItem(t.Context(), tt.newItem)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Zero(t, item.ID)
			} else {
				require.NoError(t, err)
				assert.NotZero(t, item.ID)
			}
		})
	}
}

func TestCatalogCase_UpdateItem(t *testing.T) {
	t.Parallel()

	const (
		sellerID int64 = 2
		itemID   int64 = 10
	)

	price := decimal.RequireFromString("45.00")
	locked := domain.Item{ID: itemID, SellerID: sellerID, Name: "lamp", Price: decimal.RequireFromString("40.00"), Stock: 0}

	type testCase struct {
		name   string
		update domain.ItemUpdate

		prepareFn func(t *testing.T, d *catalogDeps)

		expectedStock int
		expectedErr   error
	}

	tests := []testCase{
		{
			name:   "sold out item restocked",
			update: domain.ItemUpdate{ItemID: itemID, SellerID: sellerID, Name: " lamp ", Description: "brass", Price: price, Restock: 3},
			prepareFn: func(t *testing.T, d *catalogDeps) {
				d.txManager.EXPECT().WithinTransaction(gomock.Any(), gomock.Any()).
					DoAndReturn(executeTxFn)
				gomock.InOrder(
					d.items.EXPECT().LockItem(gomock.Any(), nil, itemID).Return(locked, nil),
					d.stock.EXPECT().Release(gomock.Any(), nil, itemID, 3).Return(nil),
					d.items.EXPECT().UpdateItemDetails(gomock.Any(), nil, gomock.Any()).
						DoAndReturn(func(_ context.Context, _ database.Querier, item domain.Item) (domain.Item, error) {
							assert.Equal(t, "lamp", item.Name)
							assert.Equal(t, "brass", item.Description)
							assert.True(t, price.Equal(item.Price))
							item.Stock = 3
							item.Available = true
							return item, nil
						}),
				)
				d.audit.EXPECT().Record(gomock.Any(), gomock.Any()).
					Do(func(_ context.Context, event domain.AuditEvent) {
						assert.Equal(t, domain.AuditItemUpdate, event.Type)
						assert.Equal(t, sellerID, event.UserID)
					})
			},
			expectedStock: 3,
		},
		{
			name:   "details changed without restock",
			update: domain.ItemUpdate{ItemID: itemID, SellerID: sellerID, Name: "lamp", Price: price},
			prepareFn: func(t *testing.T, d *catalogDeps) {
				d.txManager.EXPECT().WithinTransaction(gomock.Any(), gomock.Any()).
					DoAndReturn(executeTxFn)
				d.items.EXPECT().LockItem(gomock.Any(), nil, itemID).Return(locked, nil)
				d.items.EXPECT().UpdateItemDetails(gomock.Any(), nil, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ database.Querier, item domain.Item) (domain.Item, error) {
						return item, nil
					})
				d.audit.EXPECT().Record(gomock.Any(), gomock.Any())
			},
			expectedStock: 0,
		},
		{
			name:        "negative restock",
			update:      domain.ItemUpdate{ItemID: itemID, SellerID: sellerID, Name: "lamp", Price: price, Restock: -1},
			prepareFn:   func(t *testing.T, d *catalogDeps) {},
			expectedErr: &domain.InvalidArgumentsError{},
		},
		{
			name:        "price finer than a cent",
			update:      domain.ItemUpdate{ItemID: itemID, SellerID: sellerID, Name: "lamp", Price: decimal.RequireFromString("45.001")},
			prepareFn:   func(t *testing.T, d *catalogDeps) {},
			expectedErr: &domain.InvalidArgumentsError{},
		},
		{
			name:        "blank name",
			update:      domain.ItemUpdate{ItemID: itemID, SellerID: sellerID, Name: " ", Price: price},
			prepareFn:   func(t *testing.T, d *catalogDeps) {},
			expectedErr: &domain.InvalidArgumentsError{},
		},
		{
			name:   "item of another seller",
			update: domain.ItemUpdate{ItemID: itemID, SellerID: 5, Name: "lamp", Price: price, Restock: 1},
			prepareFn: func(t *testing.T, d *catalogDeps) {
				d.txManager.EXPECT().WithinTransaction(gomock.Any(), gomock.Any()).
					DoAndReturn(executeTxFn)
				d.items.EXPECT().LockItem(gomock.Any(), nil, itemID).Return(locked, nil)
			},
			expectedErr: &domain.InvalidArgumentsError{},
		},
		{
			name:   "restock fails",
			update: domain.ItemUpdate{ItemID: itemID, SellerID: sellerID, Name: "lamp", Price: price, Restock: 2},
			prepareFn: func(t *testing.T, d *catalogDeps) {
				d.txManager.EXPECT().WithinTransaction(gomock.Any(), gomock.Any()).
					DoAndReturn(executeTxFn)
				d.items.EXPECT().LockItem(gomock.Any(), nil, itemID).Return(locked, nil)
				d.stock.EXPECT().Release(gomock.Any(), nil, itemID, 2).Return(assert.AnError)
			},
			expectedErr: assert.AnError,
		},
	}

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			d := newCatalogDeps(ctrl)
			tt.prepareFn(t, d)

			item, err := d.catalogCase().UpdateItem(t.Context(), tt.update)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expectedStock, item.Stock)
				assert.True(t, price.Equal(item.Price))
			}
		})
	}
}

func TestCatalogCase_DelistItem(t *testing.T) {
	t.Parallel()

	const (
		sellerID int64 = 2
		itemID   int64 = 10
	)

	locked := domain.Item{ID: itemID, SellerID: sellerID, Name: "lamp", Stock: 4}

	type testCase struct {
		name     string
		sellerID int64

		prepareFn func(t *testing.T, d *catalogDeps)

		expectedErr error
	}

	tests := []testCase{
		{
			name:     "item without open orders delisted",
			sellerID: sellerID,
			prepareFn: func(t *testing.T, d *catalogDeps) {
				d.txManager.EXPECT().WithinTransaction(gomock.Any(), gomock.Any()).
					DoAndReturn(executeTxFn)
				gomock.InOrder(
					d.items.EXPECT().LockItem(gomock.Any(), nil, itemID).Return(locked, nil),
					d.orders.EXPECT().CountOpenOrdersForItem(gomock.Any(), nil, itemID).Return(0, nil),
					d.items.EXPECT().DeleteItem(gomock.Any(), nil, itemID).Return(nil),
				)
				d.audit.EXPECT().Record(gomock.Any(), gomock.Any()).
					Do(func(_ context.Context, event domain.AuditEvent) {
						assert.Equal(t, domain.AuditItemDelete, event.Type)
						assert.Equal(t, sellerID, event.UserID)
					})
			},
		},
		{
			name:     "open orders block delisting",
			sellerID: sellerID,
			prepareFn: func(t *testing.T, d *catalogDeps) {
				d.txManager.EXPECT().WithinTransaction(gomock.Any(), gomock.Any()).
					DoAndReturn(executeTxFn)
				d.items.EXPECT().LockItem(gomock.Any(), nil, itemID).Return(locked, nil)
				d.orders.EXPECT().CountOpenOrdersForItem(gomock.Any(), nil, itemID).Return(1, nil)
			},
			expectedErr: &domain.ItemHasOpenOrdersError{},
		},
		{
			name:     "item of another seller",
			sellerID: 7,
			prepareFn: func(t *testing.T, d *catalogDeps) {
				d.txManager.EXPECT().WithinTransaction(gomock.Any(), gomock.Any()).
					DoAndReturn(executeTxFn)
				d.items.EXPECT().LockItem(gomock.Any(), nil, itemID).Return(locked, nil)
			},
			expectedErr: &domain.InvalidArgumentsError{},
		},
		{
			name:     "item not found",
			sellerID: sellerID,
			prepareFn: func(t *testing.T, d *catalogDeps) {
				d.txManager.EXPECT().WithinTransaction(gomock.Any(), gomock.Any()).
					DoAndReturn(executeTxFn)
				d.items.EXPECT().LockItem(gomock.Any(), nil, itemID).Return(domain.Item{}, &domain.ItemNotFoundError{})
			},
			expectedErr: &domain.ItemNotFoundError{},
		},
	}

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			d := newCatalogDeps(ctrl)
			tt.prepareFn(t, d)

			err := d.catalogCase().DelistItem(t.Context(), tt.sellerID, itemID)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCatalogCase_Queries(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)

	d := newCatalogDeps(ctrl)

	lamp := domain.Item{ID: 10, SellerID: 2, Name: "lamp", Stock: 1, Available: true}
	d.items.EXPECT().GetItem(gomock.Any(), int64(10)).Return(lamp, nil)
	d.items.EXPECT().ListItemsBySeller(gomock.Any(), int64(2)).Return([]domain.Item{lamp}, nil)
	d.items.EXPECT().ListAvailableItems(gomock.Any(), catalogPageSize).Return([]domain.Item{lamp}, nil)

	catalog := d.catalogCase()

	got, err := catalog.GetItem(t.Context(), 10)
	require.NoError(t, err)
	assert.Equal(t, lamp, got)

	listed, err := catalog.ListItemsBySeller(t.Context(), 2)
	require.NoError(t, err)
	assert.Equal(t, []domain.Item{lamp}, listed)

	available, err := catalog.ListAvailableItems(t.Context())
	require.NoError(t, err)
	assert.Equal(t, []domain.Item{lamp}, available)
}
