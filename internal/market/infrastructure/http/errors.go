package http

import (
	"net/http"

	"github.com/Lexv0lk/marketplace/internal/market/domain"
	"github.com/Lexv0lk/marketplace/internal/pkg/logging"
	"github.com/gin-gonic/gin"
)

const (
	codeUnauthorized = "UNAUTHORIZED"
	codeForbidden    = "FORBIDDEN"
)

func statusForCode(code string) int {
	switch code {
	case domain.CodeItemNotFound, domain.CodeUserNotFound, domain.CodeOrderNotFound:
		return http.StatusNotFound
	case domain.CodeInvalidArguments:
		return http.StatusBadRequest
	case domain.CodeInsufficientStock,
		domain.CodeInsufficientBalance,
		domain.CodeSelfTradeNotAllowed,
		domain.CodeInvalidStateTransition,
		domain.CodeUserHasOpenOrders,
		domain.CodeItemHasOpenOrders,
		domain.CodeUsernameTaken:
		return http.StatusConflict
	case domain.CodeInvalidCredentials:
		return http.StatusUnauthorized
	case domain.CodeConcurrencyConflict, domain.CodeStoreUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func handleDomainError(c *gin.Context, logger logging.Logger, err error) {
	code := domain.ErrorCode(err)
	status := statusForCode(code)

	if status == http.StatusInternalServerError {
		logger.Error("request failed", "path", c.FullPath(), "error", err.Error())
		c.JSON(status, gin.H{"code": code, "errors": "internal server error"})
		return
	}

	c.JSON(status, gin.H{"code": code, "errors": err.Error()})
}

func abortBadRequest(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"code": domain.CodeInvalidArguments, "errors": msg})
}

func abortForbidden(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"code": codeForbidden, "errors": msg})
}
