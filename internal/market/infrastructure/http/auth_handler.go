package http

import (
	"net/http"

	"github.com/Lexv0lk/marketplace/internal/market/domain"
	"github.com/Lexv0lk/marketplace/internal/pkg/logging"
	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	service domain.AuthService
	logger  logging.Logger
}

func NewAuthHandler(service domain.AuthService, logger logging.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		logger:  logger,
	}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var body registerRequestBody

	if err := c.ShouldBindJSON(&body); err != nil {
		abortBadRequest(c, "invalid request body")
		return
	}

	user, err := h.service.Register(c.Request.Context(), domain.Registration{
		Username: body.Username,
		Password: body.Password,
		Email:    body.Email,
		Phone:    body.Phone,
	})
	if err != nil {
		handleDomainError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, toUserResponse(user))
}

func (h *AuthHandler) Login(c *gin.Context) {
	var body loginRequestBody

	if err := c.ShouldBindJSON(&body); err != nil {
		abortBadRequest(c, "invalid request body")
		return
	}

	token, err := h.service.Authenticate(c.Request.Context(), body.Username, body.Password)
	if err != nil {
		handleDomainError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, tokenResponse{Token: token})
}

func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var body changePasswordRequestBody

	if err := c.ShouldBindJSON(&body); err != nil {
		abortBadRequest(c, "invalid request body")
		return
	}

	if err := h.service.ChangePassword(c.Request.Context(), callerID(c), body.OldPassword, body.NewPassword); err != nil {
		handleDomainError(c, h.logger, err)
		return
	}

	c.Status(http.StatusNoContent)
}
