package dto

import "time"

// CreateLockRequest represents the API request for creating or extending a lock
type CreateLockRequest struct {
	InstructionID   string `json:"instructionId" binding:"required"`
	Amount          string `json:"amount" binding:"required"`
	DurationSeconds int64  `json:"durationSeconds" binding:"required,gt=0"`
}

// IncreaseAmountRequest represents the API request for topping up a lock
type IncreaseAmountRequest struct {
	InstructionID string `json:"instructionId" binding:"required"`
	Amount        string `json:"amount" binding:"required"`
}

// WithdrawLockRequest represents the API request for withdrawing an expired lock
type WithdrawLockRequest struct {
	InstructionID string `json:"instructionId" binding:"required"`
}

// LockResponse represents the API response for a lock's state
type LockResponse struct {
	Owner       string    `json:"owner"`
	Amount      string    `json:"amount"`
	UnlockTime  time.Time `json:"unlockTime"`
	VotingPower string    `json:"votingPower"`
}

// WithdrawLockResponse represents the API response for a lock withdrawal
type WithdrawLockResponse struct {
	Owner    string `json:"owner"`
	Returned string `json:"returned"`
}

// VotingPowerResponse represents the API response for a voting power query
type VotingPowerResponse struct {
	Owner       string    `json:"owner"`
	VotingPower string    `json:"votingPower"`
	At          time.Time `json:"at"`
}
