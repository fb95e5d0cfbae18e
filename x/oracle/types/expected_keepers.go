package types

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// EscrowKeeper is the fee-escrow collaborator. Consumers pre-fund it out of
// band; the oracle only reads balances at request creation and instructs a
// payment to the relay on successful fulfillment. The cost model beyond the
// fee proportion lives on the escrow side.
type EscrowKeeper interface {
	BalanceOf(ctx context.Context, addr sdk.AccAddress) math.Int
	Pay(ctx context.Context, from, to sdk.AccAddress, amount math.Int) error
}

// ContractKeeper answers whether an account is a contract. Used as an
// anti-spam gate on request creation when RequireContractCaller is set.
type ContractKeeper interface {
	IsContract(ctx context.Context, addr sdk.AccAddress) bool
}
