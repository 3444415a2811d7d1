package dto

import "time"

// BalanceResponse represents the API response for a token balance query
type BalanceResponse struct {
	Account string `json:"account"`
	Balance string `json:"balance"`
}

// HistoryEntryResponse represents one journal entry in a history query
type HistoryEntryResponse struct {
	ID            uint64     `json:"id"`
	InstructionID string     `json:"instructionId"`
	Kind          string     `json:"kind"`
	Actor         string     `json:"actor"`
	Owner         string     `json:"owner"`
	Receiver      string     `json:"receiver,omitempty"`
	Amount        string     `json:"amount"`
	Shares        string     `json:"shares,omitempty"`
	ResultAmount  string     `json:"resultAmount"`
	UnlockTime    *time.Time `json:"unlockTime,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
}

// HistoryResponse represents the API response for a history query
type HistoryResponse struct {
	Owner   string                 `json:"owner"`
	Entries []HistoryEntryResponse `json:"entries"`
}
