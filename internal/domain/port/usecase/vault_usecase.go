package usecase

import (
	"context"
)

// DepositInstruction moves underlying assets into the vault, crediting the
// receiver with freshly minted shares.
type DepositInstruction struct {
	InstructionID string
	Caller        string
	Receiver      string
	Assets        string
}

// VaultWithdrawInstruction redeems assets by burning the owner's shares and
// paying the receiver.
type VaultWithdrawInstruction struct {
	InstructionID string
	Caller        string
	Owner         string
	Receiver      string
	Assets        string
}

// VaultOperationResult reports the assets and shares moved by a vault
// mutation together with the resulting share balance of the affected account.
type VaultOperationResult struct {
	Caller       string
	Owner        string
	Receiver     string
	Assets       string
	Shares       string
	ShareBalance string
}

// VaultAccountState is an owner's share balance and its current asset value.
type VaultAccountState struct {
	Owner      string
	Shares     string
	AssetValue string
}

// VaultState mirrors the vault aggregates for read endpoints.
type VaultState struct {
	TotalAssets string
	TotalShares string
}

// VaultUseCase is the public surface of the tokenized vault ledger.
type VaultUseCase interface {
	// Deposit converts assets to shares at the current rate and credits the receiver.
	Deposit(ctx context.Context, instr DepositInstruction) (*VaultOperationResult, error)

	// Withdraw burns the owner's shares covering the assets and pays the receiver.
	Withdraw(ctx context.Context, instr VaultWithdrawInstruction) (*VaultOperationResult, error)

	// GetAccount returns the owner's share balance and its asset value.
	GetAccount(ctx context.Context, owner string) (*VaultAccountState, error)

	// GetState returns the vault aggregates.
	GetState(ctx context.Context) (*VaultState, error)

	// ConvertToShares previews the shares minted for an asset amount.
	ConvertToShares(ctx context.Context, assets string) (string, error)

	// ConvertToAssets previews the assets redeemed for a share amount.
	ConvertToAssets(ctx context.Context, shares string) (string, error)
}
