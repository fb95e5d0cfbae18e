package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/log"
	storetypes "cosmossdk.io/store/types"
	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/vichilotus/v3-dex-perpetual-contracts-sub000/x/oracle/types"
)

// Keeper maintains the state of the oracle module: the request ledger, the
// per-asset price store, the signer registry and the access-control lists.
type Keeper struct {
	storeKey       storetypes.StoreKey
	cdc            codec.BinaryCodec
	escrowKeeper   types.EscrowKeeper
	contractKeeper types.ContractKeeper
	authority      string // module authority (usually governance module account)
	metrics        *OracleMetrics
}

// NewKeeper creates a new oracle Keeper instance
func NewKeeper(
	cdc codec.BinaryCodec,
	key storetypes.StoreKey,
	escrowKeeper types.EscrowKeeper,
	contractKeeper types.ContractKeeper,
	authority string,
) *Keeper {
	return &Keeper{
		storeKey:       key,
		cdc:            cdc,
		escrowKeeper:   escrowKeeper,
		contractKeeper: contractKeeper,
		authority:      authority,
		metrics:        GetOracleMetrics(),
	}
}

// Logger returns a module-specific logger
func (k Keeper) Logger(ctx sdk.Context) log.Logger {
	return ctx.Logger().With("module", fmt.Sprintf("x/%s", types.ModuleName))
}

// GetAuthority returns the module's authority (governance account)
func (k Keeper) GetAuthority() string {
	return k.authority
}

// getStore returns the KVStore for the oracle module
func (k Keeper) getStore(ctx context.Context) storetypes.KVStore {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	return sdkCtx.KVStore(k.storeKey)
}
