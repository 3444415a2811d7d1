package escrow

import (
	"time"

	"github.com/velabs/govlock/internal/domain/entity"
	errs "github.com/velabs/govlock/internal/domain/error"
)

// InstructionValidator checks escrow instructions before any state is read
// or mutated, so a rejected instruction has no partial effect.
type InstructionValidator struct{}

// NewInstructionValidator creates an InstructionValidator.
func NewInstructionValidator() *InstructionValidator {
	return &InstructionValidator{}
}

// ValidateLock validates a create/extend instruction and returns the amount
// in base units.
func (v *InstructionValidator) ValidateLock(instructionID, owner, amount string, duration time.Duration) (int64, error) {
	if err := v.validateCommon(instructionID, owner); err != nil {
		return 0, err
	}

	baseUnits, err := v.validateAmount(amount)
	if err != nil {
		return 0, err
	}

	if err := entity.ValidateLockDuration(duration); err != nil {
		return 0, err
	}

	return baseUnits, nil
}

// ValidateIncrease validates an increase instruction and returns the amount
// in base units.
func (v *InstructionValidator) ValidateIncrease(instructionID, owner, amount string) (int64, error) {
	if err := v.validateCommon(instructionID, owner); err != nil {
		return 0, err
	}
	return v.validateAmount(amount)
}

// ValidateWithdraw validates a withdraw instruction.
func (v *InstructionValidator) ValidateWithdraw(instructionID, owner string) error {
	return v.validateCommon(instructionID, owner)
}

func (v *InstructionValidator) validateCommon(instructionID, owner string) error {
	if instructionID == "" {
		return errs.ErrInvalidInstructionID
	}
	if owner == "" {
		return errs.ErrInvalidAccount
	}
	return nil
}

// validateAmount parses the decimal string and rejects zero; the zero check
// runs here so the failure is ZeroAmount, not a formatting error.
func (v *InstructionValidator) validateAmount(amount string) (int64, error) {
	baseUnits, err := entity.ParseAmount(amount)
	if err != nil {
		return 0, err
	}
	if baseUnits == 0 {
		return 0, errs.ErrZeroAmount
	}
	return baseUnits, nil
}
