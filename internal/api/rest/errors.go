package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/offline-pay/token-ledger/internal/api/shared/errors"
	"github.com/offline-pay/token-ledger/internal/logger"
)

// respondBadRequest responds with a bad request error
func respondBadRequest(c *gin.Context, message string, details ...string) {
	c.JSON(http.StatusBadRequest, errors.NewBadRequestError(message, details...))
}

// respondNotFound responds with a not found error
func respondNotFound(c *gin.Context, message string, details ...string) {
	c.JSON(http.StatusNotFound, errors.NewNotFoundError(message, details...))
}

// respondValidationError responds with a validation error
func respondValidationError(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, errors.NewValidationError(message))
}

// respondError maps err onto its status; server side failures are logged
func respondError(c *gin.Context, err error, message string) {
	status, apiErr := errors.FromError(err)
	if status >= http.StatusInternalServerError {
		logger.ErrorCtx(c.Request.Context(), err,
			zap.String("message", message),
			zap.String("path", c.Request.URL.Path),
			zap.String("tenant_id", c.Param("tenant_id")),
		)
	}
	c.JSON(status, apiErr)
}
