package keeper

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"sort"

	storetypes "cosmossdk.io/store/types"

	"github.com/vichilotus/v3-dex-perpetual-contracts-sub000/x/oracle/types"
)

// SetSigner stores a signer record. The toggle is idempotent; deactivation is
// effective for every subsequent fulfillment validation, never retroactively.
func (k Keeper) SetSigner(ctx context.Context, signer types.Signer) error {
	addr, err := types.NormalizeSignerAddress(signer.Address)
	if err != nil {
		return types.ErrInvalidSigner.Wrap(err.Error())
	}
	signer.Address = addr

	bz, err := json.Marshal(signer)
	if err != nil {
		return fmt.Errorf("failed to marshal signer: %w", err)
	}

	k.getStore(ctx).Set(types.GetSignerKey(addr), bz)
	return nil
}

// GetSigner returns a signer record by address
func (k Keeper) GetSigner(ctx context.Context, address string) (types.Signer, bool) {
	addr, err := types.NormalizeSignerAddress(address)
	if err != nil {
		return types.Signer{}, false
	}

	bz := k.getStore(ctx).Get(types.GetSignerKey(addr))
	if bz == nil {
		return types.Signer{}, false
	}

	var signer types.Signer
	if err := json.Unmarshal(bz, &signer); err != nil {
		return types.Signer{}, false
	}
	return signer, true
}

// IsActiveSigner reports whether the address is a registered, active signer
func (k Keeper) IsActiveSigner(ctx context.Context, address string) bool {
	signer, found := k.GetSigner(ctx, address)
	return found && signer.Active
}

// GetAllSigners returns the full signer registry, sorted by address
func (k Keeper) GetAllSigners(ctx context.Context) []types.Signer {
	signers := []types.Signer{}

	it := storetypes.KVStorePrefixIterator(k.getStore(ctx), types.SignerKeyPrefix)
	defer it.Close()

	for ; it.Valid(); it.Next() {
		var signer types.Signer
		if err := json.Unmarshal(it.Value(), &signer); err != nil {
			continue
		}
		signers = append(signers, signer)
	}

	sort.Slice(signers, func(i, j int) bool { return signers[i].Address < signers[j].Address })
	return signers
}

// ActiveSignerSet returns the currently-active signers as a lookup set, the
// snapshot the aggregation engine validates a bundle against.
func (k Keeper) ActiveSignerSet(ctx context.Context) map[string]bool {
	set := make(map[string]bool)
	for _, signer := range k.GetAllSigners(ctx) {
		if signer.Active {
			set[signer.Address] = true
		}
	}
	return set
}

// CountActiveSigners returns the number of active signers
func (k Keeper) CountActiveSigners(ctx context.Context) uint32 {
	count := uint32(0)
	for _, signer := range k.GetAllSigners(ctx) {
		if signer.Active {
			count++
		}
	}
	return count
}

// SetQuorum changes the fulfillment signature threshold. The quorum may never
// exceed the number of currently-active signers; the check runs here, at the
// point of change, not per fulfillment.
func (k Keeper) SetQuorum(ctx context.Context, quorum uint32) error {
	if quorum == 0 {
		return types.ErrInvalidQuorum.Wrap("quorum must be positive")
	}

	if active := k.CountActiveSigners(ctx); quorum > active {
		return types.ErrQuorumExceedsSigners.Wrapf("quorum %d, active signers %d", quorum, active)
	}

	bz := make([]byte, 4)
	binary.BigEndian.PutUint32(bz, quorum)
	k.getStore(ctx).Set(types.QuorumKey, bz)
	return nil
}

// setQuorumUnchecked writes the quorum without the active-signer check.
// Genesis import seeds signers and quorum together, so ordering must not matter.
func (k Keeper) setQuorumUnchecked(ctx context.Context, quorum uint32) {
	bz := make([]byte, 4)
	binary.BigEndian.PutUint32(bz, quorum)
	k.getStore(ctx).Set(types.QuorumKey, bz)
}

// GetQuorum returns the fulfillment signature threshold
func (k Keeper) GetQuorum(ctx context.Context) uint32 {
	bz := k.getStore(ctx).Get(types.QuorumKey)
	if len(bz) != 4 {
		return 1
	}
	return binary.BigEndian.Uint32(bz)
}
