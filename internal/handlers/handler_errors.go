package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/retailbank/bank_backend/internal/apperrors"
	"github.com/retailbank/bank_backend/internal/middleware"
)

// badRequestErrors are the business-rule violations reported as 400 with the
// service's human-readable message in the detail field.
var badRequestErrors = []error{
	apperrors.ErrValidation,
	apperrors.ErrInvalidAmount,
	apperrors.ErrInvalidRequestFormat,
	apperrors.ErrAccountNotActive,
	apperrors.ErrInsufficientFunds,
	apperrors.ErrTargetInactive,
	apperrors.ErrRateUnavailable,
	apperrors.ErrInvalidPeriod,
	apperrors.ErrInsufficientBankFunds,
	apperrors.ErrAlreadyApproved,
	apperrors.ErrAlreadySuspended,
	apperrors.ErrNegativeBalance,
	apperrors.ErrPositiveBalance,
	apperrors.ErrActiveLoansExist,
	apperrors.ErrDuplicate,
	apperrors.ErrConflict,
}

var notFoundErrors = []error{
	apperrors.ErrNotFound,
	apperrors.ErrTargetNotFound,
	apperrors.ErrBankOwnerMissing,
}

// respondError translates a service error into an HTTP response with a
// {"detail": ...} body. Unrecognized errors become an opaque 500.
func respondError(c *gin.Context, err error) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	for _, sentinel := range badRequestErrors {
		if errors.Is(err, sentinel) {
			c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
			return
		}
	}
	for _, sentinel := range notFoundErrors {
		if errors.Is(err, sentinel) {
			c.JSON(http.StatusNotFound, gin.H{"detail": err.Error()})
			return
		}
	}

	switch {
	case errors.Is(err, apperrors.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"detail": err.Error()})
	case errors.Is(err, apperrors.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"detail": err.Error()})
	case errors.Is(err, apperrors.ErrStoreUnavailable):
		logger.Error("Store unavailable", slog.String("error", err.Error()))
		c.JSON(http.StatusServiceUnavailable, gin.H{"detail": "service temporarily unavailable"})
	default:
		logger.Error("Unhandled service error", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "internal server error"})
	}
}

// respondBindingError reports a malformed or invalid request body before any
// business logic runs.
func respondBindingError(c *gin.Context, err error) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	logger.Warn("Failed to bind request", slog.String("error", err.Error()))
	c.JSON(http.StatusBadRequest, gin.H{"detail": apperrors.ErrInvalidRequestFormat.Error() + ": " + err.Error()})
}
