package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	mocks "github.com/Lexv0lk/marketplace/gen/mocks/market"
	"github.com/Lexv0lk/marketplace/internal/market/domain"
	"github.com/Lexv0lk/marketplace/internal/pkg/logging"
	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func TestItemHandler_PublishItem(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name           string
		requestBody    any
		expectedStatus int

		prepareFn       func(t *testing.T, service *mocks.MockCatalogService)
		checkResponseFn func(t *testing.T, recorder *httptest.ResponseRecorder)
	}

	tests := []testCase{
		{
			name:           "item published by caller",
			requestBody:    map[string]any{"name": "lamp", "description": "desk lamp", "price": "40", "stock": 5},
			expectedStatus: http.StatusCreated,
			prepareFn: func(t *testing.T, service *mocks.MockCatalogService) {
				service.EXPECT().PublishItem(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ any, newItem domain.NewItem) (domain.Item, error) {
						assert.Equal(t, int64(2), newItem.SellerID)
						assert.Equal(t, "lamp", newItem.Name)
						assert.True(t, forty.Equal(newItem.Price))
						return domain.Item{ID: 10, SellerID: 2, Name: "lamp", Price: newItem.Price, Stock: 5, Available: true}, nil
					})
			},
			checkResponseFn: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				res := decodeBody[itemResponse](t, recorder)
				assert.Equal(t, "40.00", res.Price)
				assert.True(t, res.Available)
			},
		},
		{
			name:           "missing name",
			requestBody:    map[string]any{"price": "40", "stock": 5},
			expectedStatus: http.StatusBadRequest,
			prepareFn:      func(t *testing.T, service *mocks.MockCatalogService) {},
		},
		{
			name:           "missing price",
			requestBody:    map[string]any{"name": "lamp", "stock": 5},
			expectedStatus: http.StatusBadRequest,
			prepareFn:      func(t *testing.T, service *mocks.MockCatalogService) {},
		},
		{
			name:           "negative stock",
			requestBody:    map[string]any{"name": "lamp", "price": "40", "stock": -1},
			expectedStatus: http.StatusBadRequest,
			prepareFn:      func(t *testing.T, service *mocks.MockCatalogService) {},
		},
		{
			name:           "validation error from catalog",
			requestBody:    map[string]any{"name": "lamp", "price": "0", "stock": 1},
			expectedStatus: http.StatusBadRequest,
			prepareFn: func(t *testing.T, service *mocks.MockCatalogService) {
				service.EXPECT().PublishItem(gomock.Any(), gomock.Any()).
					Return(domain.Item{}, &domain.InvalidArgumentsError{Msg: "item price must be positive"})
			},
		},
	}

	gin.SetMode(gin.TestMode)

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)

			service := mocks.NewMockCatalogService(ctrl)
			tt.prepareFn(t, service)
			handler := NewItemHandler(service, logging.DiscardLogger)

			c, writer := newTestContext(t, http.MethodPost, tt.requestBody, 2, nil)
			handler.PublishItem(c)

			assert.Equal(t, tt.expectedStatus, writer.Code)
			if tt.checkResponseFn != nil {
				tt.checkResponseFn(t, writer)
			}
		})
	}
}

func TestItemHandler_GetItem(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name   string
		itemID string

		prepareFn func(t *testing.T, service *mocks.MockCatalogService)

		expectedStatus int
	}

	tests := []testCase{
		{
			name:   "item found",
			itemID: "10",
			prepareFn: func(t *testing.T, service *mocks.MockCatalogService) {
				service.EXPECT().GetItem(gomock.Any(), int64(10)).Return(domain.Item{ID: 10, Price: forty}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "item not found",
			itemID: "11",
			prepareFn: func(t *testing.T, service *mocks.MockCatalogService) {
				service.EXPECT().GetItem(gomock.Any(), int64(11)).Return(domain.Item{}, &domain.ItemNotFoundError{Msg: "item 11 not found"})
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "bad id",
			itemID:         "-3",
			prepareFn:      func(t *testing.T, service *mocks.MockCatalogService) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	gin.SetMode(gin.TestMode)

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)

			service := mocks.NewMockCatalogService(ctrl)
			tt.prepareFn(t, service)
			handler := NewItemHandler(service, logging.DiscardLogger)

			c, writer := newTestContext(t, http.MethodGet, nil, 1, gin.Params{{Key: ItemIDKey, Value: tt.itemID}})
			handler.GetItem(c)

			assert.Equal(t, tt.expectedStatus, writer.Code)
		})
	}
}

func TestItemHandler_ListItemsBySeller(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)

	service := mocks.NewMockCatalogService(ctrl)
	service.EXPECT().ListItemsBySeller(gomock.Any(), int64(2)).
		Return([]domain.Item{{ID: 10, SellerID: 2, Price: forty}, {ID: 11, SellerID: 2, Price: forty}}, nil)

	handler := NewItemHandler(service, logging.DiscardLogger)

	c, writer := newTestContext(t, http.MethodGet, nil, 1, gin.Params{{Key: SellerIDKey, Value: "2"}})
	handler.ListItemsBySeller(c)

	assert.Equal(t, http.StatusOK, writer.Code)
	assert.Len(t, decodeBody[[]itemResponse](t, writer), 2)
}

func TestItemHandler_ListAvailableItems(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)

	service := mocks.NewMockCatalogService(ctrl)
	service.EXPECT().ListAvailableItems(gomock.Any()).
		Return([]domain.Item{{ID: 10, SellerID: 2, Price: forty, Stock: 1, Available: true}}, nil)

	handler := NewItemHandler(service, logging.DiscardLogger)

	c, writer := newTestContext(t, http.MethodGet, nil, 1, nil)
	handler.ListAvailableItems(c)

	assert.Equal(t, http.StatusOK, writer.Code)
	res := decodeBody[[]itemResponse](t, writer)
	if assert.Len(t, res, 1) {
		assert.True(t, res[0].Available)
	}
}

func TestItemHandler_UpdateItem(t *testing.T) {
	t.Parallel()

	owned := domain.Item{ID: 10, SellerID: 2, Name: "lamp", Price: forty}

	type testCase struct {
		name        string
		callerID    int64
		requestBody any

		prepareFn func(t *testing.T, service *mocks.MockCatalogService)

		expectedStatus int
	}

	tests := []testCase{
		{
			name:        "seller restocks item",
			callerID:    2,
			requestBody: map[string]any{"name": "lamp", "description": "brass", "price": "45.00", "restock": 3},
			prepareFn: func(t *testing.T, service *mocks.MockCatalogService) {
				service.EXPECT().GetItem(gomock.Any(), int64(10)).Return(owned, nil)
				service.EXPECT().UpdateItem(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ any, update domain.ItemUpdate) (domain.Item, error) {
						assert.Equal(t, int64(10), update.ItemID)
						assert.Equal(t, int64(2), update.SellerID)
						assert.Equal(t, 3, update.Restock)
						assert.Equal(t, "45", update.Price.String())
						return domain.Item{ID: 10, SellerID: 2, Name: "lamp", Price: update.Price, Stock: 3, Available: true}, nil
					})
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:        "other user is forbidden",
			callerID:    3,
			requestBody: map[string]any{"name": "lamp", "price": "1.00"},
			prepareFn: func(t *testing.T, service *mocks.MockCatalogService) {
				service.EXPECT().GetItem(gomock.Any(), int64(10)).Return(owned, nil)
			},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "missing price",
			callerID:       2,
			requestBody:    map[string]any{"name": "lamp", "restock": 1},
			prepareFn:      func(t *testing.T, service *mocks.MockCatalogService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "negative restock",
			callerID:       2,
			requestBody:    map[string]any{"name": "lamp", "price": "45.00", "restock": -2},
			prepareFn:      func(t *testing.T, service *mocks.MockCatalogService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:        "price finer than a cent",
			callerID:    2,
			requestBody: map[string]any{"name": "lamp", "price": "45.005"},
			prepareFn: func(t *testing.T, service *mocks.MockCatalogService) {
				service.EXPECT().GetItem(gomock.Any(), int64(10)).Return(owned, nil)
				service.EXPECT().UpdateItem(gomock.Any(), gomock.Any()).
					Return(domain.Item{}, &domain.InvalidArgumentsError{Msg: "item price must have at most 2 decimal places"})
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	gin.SetMode(gin.TestMode)

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)

			service := mocks.NewMockCatalogService(ctrl)
			tt.prepareFn(t, service)
			handler := NewItemHandler(service, logging.DiscardLogger)

			c, writer := newTestContext(t, http.MethodPut, tt.requestBody, tt.callerID, gin.Params{{Key: ItemIDKey, Value: "10"}})
			handler.UpdateItem(c)

			assert.Equal(t, tt.expectedStatus, writer.Code)
		})
	}
}

func TestItemHandler_DelistItem(t *testing.T) {
	t.Parallel()

	owned := domain.Item{ID: 10, SellerID: 2, Name: "lamp", Price: forty}

	type testCase struct {
		name     string
		callerID int64

		prepareFn func(t *testing.T, service *mocks.MockCatalogService)

		expectedStatus int
	}

	tests := []testCase{
		{
			name:     "seller delists item",
			callerID: 2,
			prepareFn: func(t *testing.T, service *mocks.MockCatalogService) {
				service.EXPECT().GetItem(gomock.Any(), int64(10)).Return(owned, nil)
				service.EXPECT().DelistItem(gomock.Any(), int64(2), int64(10)).Return(nil)
			},
			expectedStatus: http.StatusNoContent,
		},
		{
			name:     "open orders conflict",
			callerID: 2,
			prepareFn: func(t *testing.T, service *mocks.MockCatalogService) {
				service.EXPECT().GetItem(gomock.Any(), int64(10)).Return(owned, nil)
				service.EXPECT().DelistItem(gomock.Any(), int64(2), int64(10)).
					Return(&domain.ItemHasOpenOrdersError{Msg: "item 10 has 1 open orders"})
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name:     "other user is forbidden",
			callerID: 3,
			prepareFn: func(t *testing.T, service *mocks.MockCatalogService) {
				service.EXPECT().GetItem(gomock.Any(), int64(10)).Return(owned, nil)
			},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:     "item not found",
			callerID: 2,
			prepareFn: func(t *testing.T, service *mocks.MockCatalogService) {
				service.EXPECT().GetItem(gomock.Any(), int64(10)).Return(domain.Item{}, &domain.ItemNotFoundError{})
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	gin.SetMode(gin.TestMode)

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)

			service := mocks.NewMockCatalogService(ctrl)
			tt.prepareFn(t, service)
			handler := NewItemHandler(service, logging.DiscardLogger)

			c, writer := newTestContext(t, http.MethodDelete, nil, tt.callerID, gin.Params{{Key: ItemIDKey, Value: "10"}})
			handler.DelistItem(c)

			assert.Equal(t, tt.expectedStatus, writer.Code)
		})
	}
}
