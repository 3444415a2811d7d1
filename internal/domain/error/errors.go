package error

import (
	"errors"
	"fmt"
	"time"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeZeroAmount           = 4001
	CodeInvalidAmount        = 4002
	CodeInvalidDuration      = 4003
	CodeCanOnlyExtend        = 4004
	CodeLockExpired          = 4005
	CodeStillLocked          = 4006
	CodeZeroAssets           = 4007
	CodeInsufficientShares   = 4008
	CodeInsufficientBalance  = 4009
	CodeAmountOverflow       = 4010
	CodeInvalidAccount       = 4011
	CodeDuplicateInstruction = 4012
	CodeInsufficientAssets   = 4013
	CodeAccountNotFound      = 4040
	CodeLockNotFound         = 4041
	CodeAccountLocked        = 4230

	// 5xxx - Server errors
	CodeInternalServer = 5000
)

// Ledger precondition errors. All of these are detected before any state
// mutation or token movement, so a failed operation leaves no partial effect.
var (
	// ErrZeroAmount is returned when a lock instruction carries a zero amount
	ErrZeroAmount = errors.New("amount must be greater than zero")

	// ErrInvalidDuration is returned when a lock duration falls outside the
	// one-week to four-year window
	ErrInvalidDuration = errors.New("lock duration out of bounds")

	// ErrCanOnlyExtend is returned when re-locking would move the unlock time
	// earlier or keep it unchanged
	ErrCanOnlyExtend = errors.New("lock can only be extended to a later unlock time")

	// ErrLockExpired is returned when increaseAmount targets an expired lock
	ErrLockExpired = errors.New("lock has expired")

	// ErrStillLocked is returned when withdrawing before the unlock time
	ErrStillLocked = errors.New("lock has not expired yet")

	// ErrZeroAssets is returned when a vault deposit carries zero assets
	ErrZeroAssets = errors.New("assets must be greater than zero")

	// ErrInsufficientShares is returned when a vault withdrawal would burn
	// more shares than the owner holds
	ErrInsufficientShares = errors.New("insufficient shares")

	// ErrInsufficientAssets is returned when a vault withdrawal requests more
	// assets than the pool holds. Floor-rounded share pricing can otherwise
	// let the last shareholder redeem past the pool at a divergent rate.
	ErrInsufficientAssets = errors.New("vault does not hold enough assets")
)

// Input and infrastructure errors.
var (
	// ErrInvalidAmount is returned when an amount string cannot be parsed
	ErrInvalidAmount = errors.New("invalid amount format")

	// ErrNegativeAmount is returned when an amount string is negative
	ErrNegativeAmount = errors.New("amount cannot be negative")

	// ErrAmountOverflow is returned when an amount or conversion result
	// exceeds the representable range
	ErrAmountOverflow = errors.New("amount is too large and would overflow")

	// ErrInvalidAccount is returned when an account identifier is empty
	ErrInvalidAccount = errors.New("account identifier must not be empty")

	// ErrInvalidInstructionID is returned when an instruction ID is empty
	ErrInvalidInstructionID = errors.New("instruction ID cannot be empty")

	// ErrDuplicateInstruction is returned when an instruction with the same
	// ID has already been applied
	ErrDuplicateInstruction = errors.New("instruction with this ID already applied")

	// ErrInsufficientBalance is returned when the token ledger cannot cover a
	// transfer
	ErrInsufficientBalance = errors.New("insufficient token balance")

	// ErrAccountNotFound is returned when the requested account doesn't exist
	ErrAccountNotFound = errors.New("account not found")

	// ErrLockNotFound is returned when an owner has no lock record at all
	ErrLockNotFound = errors.New("no lock found for account")

	// ErrEventNotFound is returned when the requested event doesn't exist
	ErrEventNotFound = errors.New("event not found")

	// ErrAccountLocked is returned when an account is serialized by another
	// in-flight operation
	ErrAccountLocked = errors.New("account is locked by another operation")

	// ErrDatabaseConnection is returned when the database is unreachable
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")

	// ErrNotFound is returned when a generic resource is not found
	ErrNotFound = errors.New("resource not found")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrZeroAmount):
		return CodeZeroAmount
	case errors.Is(err, ErrInvalidAmount), errors.Is(err, ErrNegativeAmount):
		return CodeInvalidAmount
	case errors.Is(err, ErrInvalidDuration):
		return CodeInvalidDuration
	case errors.Is(err, ErrCanOnlyExtend):
		return CodeCanOnlyExtend
	case errors.Is(err, ErrLockExpired):
		return CodeLockExpired
	case errors.Is(err, ErrStillLocked):
		return CodeStillLocked
	case errors.Is(err, ErrZeroAssets):
		return CodeZeroAssets
	case errors.Is(err, ErrInsufficientShares):
		return CodeInsufficientShares
	case errors.Is(err, ErrInsufficientBalance):
		return CodeInsufficientBalance
	case errors.Is(err, ErrInsufficientAssets):
		return CodeInsufficientAssets
	case errors.Is(err, ErrAmountOverflow):
		return CodeAmountOverflow
	case errors.Is(err, ErrInvalidAccount), errors.Is(err, ErrInvalidInstructionID):
		return CodeInvalidAccount
	case errors.Is(err, ErrDuplicateInstruction):
		return CodeDuplicateInstruction
	case errors.Is(err, ErrAccountNotFound):
		return CodeAccountNotFound
	case errors.Is(err, ErrLockNotFound):
		return CodeLockNotFound
	case errors.Is(err, ErrAccountLocked):
		return CodeAccountLocked
	default:
		return CodeInternalServer
	}
}

// StillLockedError carries the unlock time so callers can tell the user when
// a withdrawal becomes possible.
type StillLockedError struct {
	Owner      string
	UnlockTime time.Time
	Now        time.Time
}

// Error implements the error interface
func (e *StillLockedError) Error() string {
	return fmt.Sprintf("lock for %s is still active until %s (now %s)",
		e.Owner, e.UnlockTime.UTC().Format(time.RFC3339), e.Now.UTC().Format(time.RFC3339))
}

// Is reports whether the target is ErrStillLocked
func (e *StillLockedError) Is(target error) bool {
	return target == ErrStillLocked
}

// LogFields returns a map of fields for structured logging
func (e *StillLockedError) LogFields() map[string]any {
	return map[string]any{
		"error_type":  "still_locked",
		"owner":       e.Owner,
		"unlock_time": e.UnlockTime,
		"now":         e.Now,
		"error_code":  CodeStillLocked,
	}
}

// NewStillLockedError creates a detailed still-locked error
func NewStillLockedError(owner string, unlockTime, now time.Time) error {
	return &StillLockedError{Owner: owner, UnlockTime: unlockTime, Now: now}
}

// InsufficientSharesError reports how far short the owner's share balance
// falls for a vault withdrawal.
type InsufficientSharesError struct {
	Owner     string
	Requested int64
	Available int64
}

// Error implements the error interface
func (e *InsufficientSharesError) Error() string {
	return fmt.Sprintf("insufficient shares for %s: required %d, available %d",
		e.Owner, e.Requested, e.Available)
}

// Is reports whether the target is ErrInsufficientShares
func (e *InsufficientSharesError) Is(target error) bool {
	return target == ErrInsufficientShares
}

// LogFields returns a map of fields for structured logging
func (e *InsufficientSharesError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "insufficient_shares",
		"owner":      e.Owner,
		"requested":  e.Requested,
		"available":  e.Available,
		"error_code": CodeInsufficientShares,
	}
}

// NewInsufficientSharesError creates a detailed insufficient-shares error
func NewInsufficientSharesError(owner string, requested, available int64) error {
	return &InsufficientSharesError{Owner: owner, Requested: requested, Available: available}
}

// InsufficientBalanceError reports a token-ledger transfer that the source
// account cannot cover.
type InsufficientBalanceError struct {
	Account   string
	Requested int64
	Available int64
}

// Error implements the error interface
func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient balance for %s: required %d, available %d",
		e.Account, e.Requested, e.Available)
}

// Is reports whether the target is ErrInsufficientBalance
func (e *InsufficientBalanceError) Is(target error) bool {
	return target == ErrInsufficientBalance
}

// LogFields returns a map of fields for structured logging
func (e *InsufficientBalanceError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "insufficient_balance",
		"account":    e.Account,
		"requested":  e.Requested,
		"available":  e.Available,
		"error_code": CodeInsufficientBalance,
	}
}

// NewInsufficientBalanceError creates a detailed insufficient-balance error
func NewInsufficientBalanceError(account string, requested, available int64) error {
	return &InsufficientBalanceError{Account: account, Requested: requested, Available: available}
}

// InstructionError wraps a failure while applying a ledger instruction with
// enough context for the event journal and structured logs.
type InstructionError struct {
	InstructionID string
	Kind          string
	Owner         string
	Amount        string
	Reason        string
	Err           error
}

// Error implements the error interface
func (e *InstructionError) Error() string {
	return fmt.Sprintf("instruction %s (%s, owner %s, amount %s) failed: %s - %v",
		e.InstructionID, e.Kind, e.Owner, e.Amount, e.Reason, e.Err)
}

// Unwrap returns the underlying error
func (e *InstructionError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *InstructionError) LogFields() map[string]any {
	return map[string]any{
		"error_type":     "instruction_error",
		"instruction_id": e.InstructionID,
		"kind":           e.Kind,
		"owner":          e.Owner,
		"amount":         e.Amount,
		"reason":         e.Reason,
		"error":          e.Err.Error(),
		"error_code":     ErrorCode(e.Err),
	}
}

// NewInstructionError creates a detailed instruction error
func NewInstructionError(instructionID, kind, owner, amount, reason string, err error) error {
	return &InstructionError{
		InstructionID: instructionID,
		Kind:          kind,
		Owner:         owner,
		Amount:        amount,
		Reason:        reason,
		Err:           err,
	}
}

// IsStillLockedError checks if the error is a still-locked error
func IsStillLockedError(err error) bool {
	return errors.Is(err, ErrStillLocked)
}

// IsInsufficientSharesError checks if the error is an insufficient-shares error
func IsInsufficientSharesError(err error) bool {
	return errors.Is(err, ErrInsufficientShares)
}

// IsInsufficientBalanceError checks if the error is an insufficient-balance error
func IsInsufficientBalanceError(err error) bool {
	return errors.Is(err, ErrInsufficientBalance)
}

// IsDuplicateInstructionError checks if the error is a duplicate instruction error
func IsDuplicateInstructionError(err error) bool {
	return errors.Is(err, ErrDuplicateInstruction)
}

// IsAccountLockedError checks if the error is related to a serialized account
func IsAccountLockedError(err error) bool {
	return errors.Is(err, ErrAccountLocked)
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrAccountNotFound) ||
		errors.Is(err, ErrLockNotFound) ||
		errors.Is(err, ErrEventNotFound)
}
