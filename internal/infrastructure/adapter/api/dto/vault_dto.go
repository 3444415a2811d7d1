package dto

// DepositRequest represents the API request for a vault deposit.
// Receiver defaults to the caller when omitted.
type DepositRequest struct {
	InstructionID string `json:"instructionId" binding:"required"`
	Receiver      string `json:"receiver"`
	Assets        string `json:"assets" binding:"required"`
}

// VaultWithdrawRequest represents the API request for a vault withdrawal.
// Owner and Receiver default to the caller when omitted.
type VaultWithdrawRequest struct {
	InstructionID string `json:"instructionId" binding:"required"`
	Owner         string `json:"owner"`
	Receiver      string `json:"receiver"`
	Assets        string `json:"assets" binding:"required"`
}

// VaultOperationResponse represents the API response for a vault mutation
type VaultOperationResponse struct {
	Caller       string `json:"caller"`
	Owner        string `json:"owner"`
	Receiver     string `json:"receiver"`
	Assets       string `json:"assets"`
	Shares       string `json:"shares"`
	ShareBalance string `json:"shareBalance"`
}

// VaultAccountResponse represents the API response for a vault account query
type VaultAccountResponse struct {
	Owner      string `json:"owner"`
	Shares     string `json:"shares"`
	AssetValue string `json:"assetValue"`
}

// VaultStateResponse represents the API response for the vault aggregates
type VaultStateResponse struct {
	TotalAssets string `json:"totalAssets"`
	TotalShares string `json:"totalShares"`
}

// ConversionResponse represents the API response for a conversion preview
type ConversionResponse struct {
	Input  string `json:"input"`
	Output string `json:"output"`
}
