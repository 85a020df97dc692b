package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/khaihkd/tomochain-governance/internal/api/shared/errors"
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
	c.JSON(http.StatusUnprocessableEntity, errors.NewValidationError(message))
}

// respondUnauthorized responds with a generic authorization failure.
// Deliberately detail-free so the challenge flow leaks nothing about which
// check failed.
func respondUnauthorized(c *gin.Context, message string) {
	c.JSON(http.StatusUnauthorized, errors.NewUnauthorizedError(message))
}

// respondConflict responds with a single-use violation
func respondConflict(c *gin.Context, message string) {
	c.JSON(http.StatusConflict, errors.NewAlreadyConsumedError(message))
}

// respondUpstreamError responds with an upstream dependency failure
func respondUpstreamError(c *gin.Context, message string, details ...string) {
	c.JSON(http.StatusBadGateway, errors.NewUpstreamUnavailableError(message, details...))
}

// respondInternalError responds with an internal server error
func respondInternalError(c *gin.Context, message string, details ...string) {
	c.JSON(http.StatusInternalServerError, errors.NewInternalError(message, details...))
}
