package helpers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"auction-ledger/internal/ledgererrors"
	"auction-ledger/utils"
)

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// MapErrorToHTTP maps domain/ledger errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	var rejected *ledgererrors.BidRejectedError
	if errors.As(err, &rejected) {
		switch rejected.Reason {
		case ledgererrors.ReasonNotHigherThanCurrent, ledgererrors.ReasonAlreadySold:
			return http.StatusConflict, rejected.Reason.Message()
		default:
			return http.StatusBadRequest, rejected.Reason.Message()
		}
	}

	switch {
	case errors.Is(err, ledgererrors.ErrProductNotFound):
		return http.StatusNotFound, "product not found"
	case errors.Is(err, ledgererrors.ErrBidNotFound):
		return http.StatusNotFound, "bid not found"
	case errors.Is(err, ledgererrors.ErrImageNotFound):
		return http.StatusNotFound, "image not found"
	case errors.Is(err, ledgererrors.ErrNoBids):
		return http.StatusNotFound, "no bids found"
	case errors.Is(err, ledgererrors.ErrInvalidInput):
		return http.StatusBadRequest, "invalid request details"
	case errors.Is(err, ledgererrors.ErrUnauthorized):
		return http.StatusForbidden, "you do not own this bid"
	case errors.Is(err, ledgererrors.ErrNotOwner):
		return http.StatusForbidden, "you do not own this product"
	case errors.Is(err, ledgererrors.ErrAlreadySold):
		return http.StatusConflict, "product has already been sold"
	case errors.Is(err, ledgererrors.ErrSaleFinalized):
		return http.StatusConflict, "sale has already been finalized"
	case errors.Is(err, ledgererrors.ErrBidExpired):
		return http.StatusConflict, "bid has expired"
	case errors.Is(err, ledgererrors.ErrBidNotForProduct):
		return http.StatusConflict, "bid is not for this product"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// CallerID returns the verified user identity the auth middleware
// stored on the request context.
func CallerID(c *gin.Context) string {
	return c.GetString("user_id")
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
