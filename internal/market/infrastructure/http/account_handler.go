package http

import (
	"net/http"

	"github.com/Lexv0lk/marketplace/internal/market/domain"
	"github.com/Lexv0lk/marketplace/internal/pkg/logging"
	"github.com/gin-gonic/gin"
)

type AccountHandler struct {
	service domain.AccountService
	logger  logging.Logger
}

func NewAccountHandler(service domain.AccountService, logger logging.Logger) *AccountHandler {
	return &AccountHandler{
		service: service,
		logger:  logger,
	}
}

func (h *AccountHandler) GetSummary(c *gin.Context) {
	summary, err := h.service.GetAccountSummary(c.Request.Context(), callerID(c))
	if err != nil {
		handleDomainError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, summaryResponse{
		User:      toUserResponse(summary.User),
		Purchases: toOrderResponses(summary.Purchases),
		Sales:     toOrderResponses(summary.Sales),
	})
}

func (h *AccountHandler) Recharge(c *gin.Context) {
	var body rechargeRequestBody

	if err := c.ShouldBindJSON(&body); err != nil {
		abortBadRequest(c, "invalid request body")
		return
	}

	user, err := h.service.RechargeBalance(c.Request.Context(), callerID(c), *body.Amount)
	if err != nil {
		handleDomainError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, toUserResponse(user))
}

func (h *AccountHandler) UpdateContacts(c *gin.Context) {
	var body updateContactsRequestBody

	if err := c.ShouldBindJSON(&body); err != nil {
		abortBadRequest(c, "invalid request body")
		return
	}

	user, err := h.service.UpdateContacts(c.Request.Context(), callerID(c), body.Email, body.Phone)
	if err != nil {
		handleDomainError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, toUserResponse(user))
}

func (h *AccountHandler) DeleteAccount(c *gin.Context) {
	if err := h.service.DeleteUser(c.Request.Context(), callerID(c)); err != nil {
		handleDomainError(c, h.logger, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *AccountHandler) ListAuditEvents(c *gin.Context) {
	events, err := h.service.ListAuditEvents(c.Request.Context(), callerID(c))
	if err != nil {
		handleDomainError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, toAuditEventResponses(events))
}
