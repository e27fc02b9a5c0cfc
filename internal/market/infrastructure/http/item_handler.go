package http

import (
	"net/http"

	"github.com/Lexv0lk/marketplace/internal/market/domain"
	"github.com/Lexv0lk/marketplace/internal/pkg/logging"
	"github.com/gin-gonic/gin"
)

const (
	ItemIDKey   = "id"
	SellerIDKey = "sellerId"
)

type ItemHandler struct {
	service domain.CatalogService
	logger  logging.Logger
}

func NewItemHandler(service domain.CatalogService, logger logging.Logger) *ItemHandler {
	return &ItemHandler{
		service: service,
		logger:  logger,
	}
}

func (h *ItemHandler) PublishItem(c *gin.Context) {
	var body publishItemRequestBody

	if err := c.ShouldBindJSON(&body); err != nil {
		abortBadRequest(c, "invalid request body")
		return
	}

	item, err := h.service.PublishItem(c.Request.Context(), domain.NewItem{
		SellerID:    callerID(c),
		Name:        body.Name,
		Description: body.Description,
		Price:       *body.Price,
		Stock:       body.Stock,
	})
	if err != nil {
		handleDomainError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, toItemResponse(item))
}

func (h *ItemHandler) GetItem(c *gin.Context) {
	itemID, ok := int64Param(c, ItemIDKey)
	if !ok {
		return
	}

	item, err := h.service.GetItem(c.Request.Context(), itemID)
	if err != nil {
		handleDomainError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, toItemResponse(item))
}

func (h *ItemHandler) ListItemsBySeller(c *gin.Context) {
	sellerID, ok := int64Param(c, SellerIDKey)
	if !ok {
		return
	}

	items, err := h.service.ListItemsBySeller(c.Request.Context(), sellerID)
	if err != nil {
		handleDomainError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, toItemResponses(items))
}

func (h *ItemHandler) ListAvailableItems(c *gin.Context) {
	items, err := h.service.ListAvailableItems(c.Request.Context())
	if err != nil {
		handleDomainError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, toItemResponses(items))
}

func (h *ItemHandler) UpdateItem(c *gin.Context) {
	var body updateItemRequestBody

	if err := c.ShouldBindJSON(&body); err != nil {
		abortBadRequest(c, "invalid request body")
		return
	}

	item, ok := h.ownedItem(c)
	if !ok {
		return
	}

	updated, err := h.service.UpdateItem(c.Request.Context(), domain.ItemUpdate{
		ItemID:      item.ID,
		SellerID:    item.SellerID,
		Name:        body.Name,
		Description: body.Description,
		Price:       *body.Price,
		Restock:     body.Restock,
	})
	if err != nil {
		handleDomainError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, toItemResponse(updated))
}

func (h *ItemHandler) DelistItem(c *gin.Context) {
	item, ok := h.ownedItem(c)
	if !ok {
		return
	}

	if err := h.service.DelistItem(c.Request.Context(), item.SellerID, item.ID); err != nil {
		handleDomainError(c, h.logger, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ownedItem loads the item named in the path and rejects callers other than
// its seller. The seller of an item never changes.
func (h *ItemHandler) ownedItem(c *gin.Context) (domain.Item, bool) {
	itemID, ok := int64Param(c, ItemIDKey)
	if !ok {
		return domain.Item{}, false
	}

	item, err := h.service.GetItem(c.Request.Context(), itemID)
	if err != nil {
		handleDomainError(c, h.logger, err)
		return domain.Item{}, false
	}

	if item.SellerID != callerID(c) {
		abortForbidden(c, "only the seller may change this item")
		return domain.Item{}, false
	}

	return item, true
}
