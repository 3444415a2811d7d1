package handler

import (
	"errors"
	"net/http"

	domainerr "github.com/velabs/govlock/internal/domain/error"
)

// statusFromError maps domain errors to HTTP status codes
func statusFromError(err error) int {
	switch {
	case err == nil:
		return http.StatusOK

	case domainerr.IsNotFoundError(err):
		return http.StatusNotFound

	case domainerr.IsDuplicateInstructionError(err):
		return http.StatusConflict

	case domainerr.IsAccountLockedError(err):
		return http.StatusLocked

	case domainerr.IsStillLockedError(err),
		domainerr.IsInsufficientSharesError(err),
		domainerr.IsInsufficientBalanceError(err),
		errors.Is(err, domainerr.ErrInsufficientAssets):
		return http.StatusUnprocessableEntity

	case errors.Is(err, domainerr.ErrZeroAmount),
		errors.Is(err, domainerr.ErrZeroAssets),
		errors.Is(err, domainerr.ErrInvalidDuration),
		errors.Is(err, domainerr.ErrCanOnlyExtend),
		errors.Is(err, domainerr.ErrLockExpired),
		errors.Is(err, domainerr.ErrInvalidAmount),
		errors.Is(err, domainerr.ErrNegativeAmount),
		errors.Is(err, domainerr.ErrAmountOverflow),
		errors.Is(err, domainerr.ErrInvalidAccount),
		errors.Is(err, domainerr.ErrInvalidInstructionID),
		errors.Is(err, domainerr.ErrInvalidRequest):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}
