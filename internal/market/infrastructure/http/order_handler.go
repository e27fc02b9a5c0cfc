package http

import (
	"context"
	"net/http"

	"github.com/Lexv0lk/marketplace/internal/market/domain"
	"github.com/Lexv0lk/marketplace/internal/pkg/logging"
	"github.com/gin-gonic/gin"
)

const (
	OrderIDKey = "id"
)

// participantRule decides whether the caller may act on the order.
type participantRule func(order domain.Order, callerID int64) bool

func isSeller(order domain.Order, callerID int64) bool { return order.SellerID == callerID }
func isBuyer(order domain.Order, callerID int64) bool { return order.BuyerID == callerID }
func isParty(order domain.Order, callerID int64) bool { return order.HasParticipant(callerID) }

type OrderHandler struct {
	service domain.OrderService
	logger  logging.Logger
}

func NewOrderHandler(service domain.OrderService, logger logging.Logger) *OrderHandler {
	return &OrderHandler{
		service: service,
		logger:  logger,
	}
}

// CreateOrder places an order on behalf of the caller, who becomes the buyer.
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var body createOrderRequestBody

	if err := c.ShouldBindJSON(&body); err != nil {
		abortBadRequest(c, "invalid request body")
		return
	}

	order, err := h.service.CreateOrder(c.Request.Context(), body.ItemID, callerID(c), body.SellerID, body.Quantity, *body.TotalPrice)
	if err != nil {
		handleDomainError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, toOrderResponse(order))
}

func (h *OrderHandler) GetOrder(c *gin.Context) {
	order, ok := h.authorizedOrder(c, isParty)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, toOrderResponse(order))
}

// ConfirmOrder is the seller's acknowledgement of a pending order.
func (h *OrderHandler) ConfirmOrder(c *gin.Context) {
	h.transition(c, isSeller, h.service.ConfirmOrder)
}

// CompleteOrder is called by the buyer once the goods are received.
func (h *OrderHandler) CompleteOrder(c *gin.Context) {
	h.transition(c, isBuyer, h.service.CompleteOrder)
}

func (h *OrderHandler) CancelOrder(c *gin.Context) {
	h.transition(c, isParty, h.service.CancelOrder)
}

func (h *OrderHandler) ExchangeContacts(c *gin.Context) {
	order, ok := h.authorizedOrder(c, isParty)
	if !ok {
		return
	}

	contacts, err := h.service.ExchangeContacts(c.Request.Context(), order.ID)
	if err != nil {
		handleDomainError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, toContactsResponse(contacts))
}

func (h *OrderHandler) ListPurchases(c *gin.Context) {
	orders, err := h.service.ListOrdersByBuyer(c.Request.Context(), callerID(c))
	if err != nil {
		handleDomainError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, toOrderResponses(orders))
}

func (h *OrderHandler) ListSales(c *gin.Context) {
	orders, err := h.service.ListOrdersBySeller(c.Request.Context(), callerID(c))
	if err != nil {
		handleDomainError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, toOrderResponses(orders))
}

func (h *OrderHandler) transition(
	c *gin.Context,
	allowed participantRule,
	apply func(ctx context.Context, orderID int64) (domain.Order, error),
) {
	order, ok := h.authorizedOrder(c, allowed)
	if !ok {
		return
	}

	updated, err := apply(c.Request.Context(), order.ID)
	if err != nil {
		handleDomainError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, toOrderResponse(updated))
}

// authorizedOrder loads the order named in the path and checks the caller
// against allowed. Participants never change, so the check holds for the
// transition that follows.
func (h *OrderHandler) authorizedOrder(c *gin.Context, allowed participantRule) (domain.Order, bool) {
	orderID, ok := int64Param(c, OrderIDKey)
	if !ok {
		return domain.Order{}, false
	}

	order, err := h.service.GetOrder(c.Request.Context(), orderID)
	if err != nil {
		handleDomainError(c, h.logger, err)
		return domain.Order{}, false
	}

	if !allowed(order, callerID(c)) {
		abortForbidden(c, "order is not available to the caller")
		return domain.Order{}, false
	}

	return order, true
}
