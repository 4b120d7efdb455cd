package helpers

import (
	"errors"
	"fmt"
	"net/http"

	"auction-house/internal/auctionerrors"
	"auction-house/utils"

	"github.com/gin-gonic/gin"
)

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// MapErrorToHTTP maps identity errors to HTTP status code and message.
// Signup and signin failures are all 400s on this surface; a missing user
// is reported distinctly from a bad password, matching the public contract.
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, auctionerrors.ErrUserExists):
		return http.StatusBadRequest, "User already exists"
	case errors.Is(err, auctionerrors.ErrUserNotFound):
		return http.StatusBadRequest, "User not found"
	case errors.Is(err, auctionerrors.ErrInvalidCredentials):
		return http.StatusBadRequest, "Invalid credentials"
	case errors.Is(err, auctionerrors.ErrInvalidInput):
		return http.StatusBadRequest, "invalid request details"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// HandleServiceError maps a service error to its HTTP response and logs it.
func HandleServiceError(c *gin.Context, handlerName string, err error) {
	status, message := MapErrorToHTTP(err)
	if status == http.StatusInternalServerError {
		utils.JSONInternalError(c, fmt.Errorf("%s: %w", message, err), message)
	} else {
		utils.JSONError(c, status, message)
	}
	utils.Warn(handlerName+": request failed", map[string]any{
		"status": status,
		"error":  err.Error(),
	})
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
