package handlers

import (
	"errors"
	"net/http"

	"giramae/internal/adapter/http/middleware"
	"giramae/internal/usecase"
	"giramae/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidRequest = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	errUnauthorized   = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Authentication required", http.StatusUnauthorized)
)

// currentUserID returns the authenticated caller, answering 401 when the auth
// middleware did not run.
func currentUserID(c *gin.Context) (string, bool) {
	userID := middleware.UserID(c)
	if userID == "" {
		c.JSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
		return "", false
	}
	return userID, true
}

// mapMarketplaceError translates reservation, queue and item errors. Acting on a
// reservation that does not involve the caller answers like a missing one.
func mapMarketplaceError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidItemID), errors.Is(err, usecase.ErrInvalidUserID), errors.Is(err, usecase.ErrInvalidReservationID),
		errors.Is(err, usecase.ErrInvalidItemTitle), errors.Is(err, usecase.ErrInvalidItemPrice):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrInvalidConfirmationCode):
		return pkg.NewDomainErrorSimple("INVALID_CONFIRMATION_CODE", "Invalid confirmation code", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrReservationNotFound):
		return pkg.NewDomainErrorSimple("RESERVATION_NOT_FOUND", "Reservation not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrItemNotFound):
		return pkg.NewDomainErrorSimple("ITEM_NOT_FOUND", "Item not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQueueEntryNotFound):
		return pkg.NewDomainErrorSimple("QUEUE_ENTRY_NOT_FOUND", "Not waiting for this item", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCannotReserveOwnItem):
		return pkg.NewDomainErrorSimple("CANNOT_RESERVE_OWN_ITEM", "Cannot reserve your own item", http.StatusConflict)
	case errors.Is(err, usecase.ErrItemUnavailable):
		return pkg.NewDomainErrorSimple("ITEM_UNAVAILABLE", "Item is no longer available", http.StatusConflict)
	case errors.Is(err, usecase.ErrInsufficientBalance):
		return pkg.NewDomainErrorSimple("INSUFFICIENT_BALANCE", "Insufficient Girinhas balance", http.StatusConflict)
	case errors.Is(err, usecase.ErrAlreadyReserved):
		return pkg.NewDomainErrorSimple("ALREADY_RESERVED", "You already reserved this item", http.StatusConflict)
	case errors.Is(err, usecase.ErrAlreadyInQueue):
		return pkg.NewDomainErrorSimple("ALREADY_IN_QUEUE", "You are already waiting for this item", http.StatusConflict)
	case errors.Is(err, usecase.ErrReservationNotPending):
		return pkg.NewDomainErrorSimple("RESERVATION_NOT_PENDING", "Reservation is no longer pending", http.StatusConflict)
	case errors.Is(err, usecase.ErrReservationExpired):
		return pkg.NewDomainErrorSimple("RESERVATION_EXPIRED", "Reservation expired", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

// mapReadError is used by idempotent lookups: store failures are retryable.
func mapReadError(err error) *pkg.AppError {
	return retryableOnStoreFailure(err)
}

// mapMutationError is used by reservation and queue mutations. Each runs in a single
// transaction that rolls back on failure, so a store error leaves nothing behind and
// the client may retry.
func mapMutationError(err error) *pkg.AppError {
	return retryableOnStoreFailure(err)
}

func retryableOnStoreFailure(err error) *pkg.AppError {
	appErr := mapMarketplaceError(err)
	if appErr.HTTPStatus == http.StatusInternalServerError {
		return pkg.NewRetryableError("SERVICE_UNAVAILABLE", "Service temporarily unavailable, try again", err, http.StatusServiceUnavailable)
	}
	return appErr
}
