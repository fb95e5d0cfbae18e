package keeper

import (
	"context"
	"sort"

	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/vichilotus/v3-dex-perpetual-contracts-sub000/x/oracle/types"
)

// Access control for the oracle module: administrators run the registry and
// can refund stuck requests, controllers are the relays allowed to submit
// fulfillments, and the optional whitelist gates request creation. All three
// are plain allow-lists.

var setFlag = []byte{0x01}

// SetAdministrator toggles an administrator entry
func (k Keeper) SetAdministrator(ctx context.Context, address string, enabled bool) {
	store := k.getStore(ctx)
	if enabled {
		store.Set(types.GetAdminKey(address), setFlag)
	} else {
		store.Delete(types.GetAdminKey(address))
	}
}

// IsAdministrator reports whether the address may perform administrative
// operations. The module authority always qualifies.
func (k Keeper) IsAdministrator(ctx context.Context, address string) bool {
	if address == k.authority {
		return true
	}
	return k.getStore(ctx).Has(types.GetAdminKey(address))
}

// SetController toggles a relay on the controller allow-list
func (k Keeper) SetController(ctx context.Context, address string, enabled bool) {
	store := k.getStore(ctx)
	if enabled {
		store.Set(types.GetControllerKey(address), setFlag)
	} else {
		store.Delete(types.GetControllerKey(address))
	}
}

// IsController reports whether the address is an allowed relay
func (k Keeper) IsController(ctx context.Context, address string) bool {
	return k.getStore(ctx).Has(types.GetControllerKey(address))
}

// GetAllControllers returns the controller allow-list, sorted
func (k Keeper) GetAllControllers(ctx context.Context) []string {
	return k.collectAllowList(ctx, types.ControllerKeyPrefix)
}

// SetWhitelisted toggles a consumer on the whitelist
func (k Keeper) SetWhitelisted(ctx context.Context, address string, enabled bool) {
	store := k.getStore(ctx)
	if enabled {
		store.Set(types.GetWhitelistKey(address), setFlag)
	} else {
		store.Delete(types.GetWhitelistKey(address))
	}
}

// IsWhitelisted reports whether the consumer is on the whitelist
func (k Keeper) IsWhitelisted(ctx context.Context, address string) bool {
	return k.getStore(ctx).Has(types.GetWhitelistKey(address))
}

// GetAllWhitelisted returns the consumer whitelist, sorted
func (k Keeper) GetAllWhitelisted(ctx context.Context) []string {
	return k.collectAllowList(ctx, types.WhitelistKeyPrefix)
}

// GetAllAdministrators returns the administrator list, sorted
func (k Keeper) GetAllAdministrators(ctx context.Context) []string {
	return k.collectAllowList(ctx, types.AdminKeyPrefix)
}

// CheckConsumer applies the whitelist and contract-caller gates to a would-be
// request owner per the current params.
func (k Keeper) CheckConsumer(ctx context.Context, owner sdk.AccAddress) error {
	params := k.GetParams(ctx)

	if params.WhitelistEnabled && !k.IsWhitelisted(ctx, owner.String()) {
		return types.ErrNotWhitelisted.Wrapf("consumer %s", owner.String())
	}

	if params.RequireContractCaller && k.contractKeeper != nil && !k.contractKeeper.IsContract(ctx, owner) {
		return types.ErrNotContract.Wrapf("caller %s", owner.String())
	}

	return nil
}

func (k Keeper) collectAllowList(ctx context.Context, keyPrefix []byte) []string {
	entries := []string{}

	it := storetypes.KVStorePrefixIterator(k.getStore(ctx), keyPrefix)
	defer it.Close()

	for ; it.Valid(); it.Next() {
		entries = append(entries, string(it.Key()[len(keyPrefix):]))
	}

	sort.Strings(entries)
	return entries
}
