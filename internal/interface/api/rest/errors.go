package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	domain "user-directory-api/internal/domain/user"
)

const msgInvalidBody = "invalid request body"

func abortWithDetail(c *gin.Context, status int, detail string) {
	c.AbortWithStatusJSON(status, gin.H{"detail": detail})
}

func abortWithFieldErrors(c *gin.Context, errs map[string]string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
		"detail": msgInvalidBody,
		"errors": errs,
	})
}

// abortWithServiceError maps domain errors onto status codes. Anything unknown is
// logged and answered with fallback so internals never reach the client.
func abortWithServiceError(c *gin.Context, logger *zap.Logger, op string, err error, fallback string) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		abortWithDetail(c, http.StatusNotFound, domain.ErrNotFound.Error())
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		abortWithDetail(c, http.StatusConflict, domain.ErrEmailAlreadyExists.Error())
	case errors.Is(err, domain.ErrValidation):
		abortWithDetail(c, http.StatusBadRequest, err.Error())
	default:
		logger.Error(op+" error", zap.Error(err))
		abortWithDetail(c, http.StatusInternalServerError, fallback)
	}
}
