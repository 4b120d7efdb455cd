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

// MapErrorToHTTP maps auction domain errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, auctionerrors.ErrAuctionNotFound):
		return http.StatusNotFound, "Auction not found"
	case errors.Is(err, auctionerrors.ErrBidTooLow):
		return http.StatusBadRequest, "Bid must be higher than current bid"
	case errors.Is(err, auctionerrors.ErrAuctionClosed):
		return http.StatusBadRequest, "Auction has ended"
	case errors.Is(err, auctionerrors.ErrInvalidInput):
		return http.StatusBadRequest, "invalid auction details"
	case errors.Is(err, auctionerrors.ErrBidConflict):
		return http.StatusConflict, "auction was updated concurrently, retry"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// HandleServiceError maps a service error to its HTTP response and logs it.
// Only internal errors carry the underlying detail in the body.
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
