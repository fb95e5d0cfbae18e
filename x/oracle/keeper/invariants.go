package keeper

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/vichilotus/v3-dex-perpetual-contracts-sub000/x/oracle/types"
)

// RegisterInvariants registers all oracle invariants
func RegisterInvariants(ir sdk.InvariantRegistry, k *Keeper) {
	ir.RegisterRoute(types.ModuleName, "dense-request-ids", DenseRequestIdsInvariant(k))
	ir.RegisterRoute(types.ModuleName, "quorum-bound", QuorumBoundInvariant(k))
	ir.RegisterRoute(types.ModuleName, "watermark-bound", WatermarkBoundInvariant(k))
}

// AllInvariants runs all invariants of the oracle module
func AllInvariants(k *Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		res, stop := DenseRequestIdsInvariant(k)(ctx)
		if stop {
			return res, stop
		}

		res, stop = QuorumBoundInvariant(k)(ctx)
		if stop {
			return res, stop
		}

		return WatermarkBoundInvariant(k)(ctx)
	}
}

// DenseRequestIdsInvariant checks that request ids are dense: every id below
// the counter exists, no id at or above it does.
func DenseRequestIdsInvariant(k *Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			msg   string
			count int
		)

		next := k.GetRequestCount(ctx)
		requests := k.GetAllRequests(ctx)

		if uint64(len(requests)) != next {
			count++
			msg += fmt.Sprintf("counter is %d but %d requests are stored\n", next, len(requests))
		}

		for i, req := range requests {
			if req.Id != uint64(i) {
				count++
				msg += fmt.Sprintf("request at position %d has id %d\n", i, req.Id)
			}
			if !req.Status.Valid() {
				count++
				msg += fmt.Sprintf("request %d has invalid status %d\n", req.Id, req.Status)
			}
		}

		broken := count != 0
		return sdk.FormatInvariant(
			types.ModuleName, "dense-request-ids",
			fmt.Sprintf("found %d request id violations\n%s", count, msg),
		), broken
	}
}

// QuorumBoundInvariant checks that the quorum never exceeds the active signer count
func QuorumBoundInvariant(k *Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		quorum := k.GetQuorum(ctx)
		active := k.CountActiveSigners(ctx)

		// An empty registry with the default quorum is the pre-bootstrap state.
		broken := active > 0 && quorum > active
		return sdk.FormatInvariant(
			types.ModuleName, "quorum-bound",
			fmt.Sprintf("quorum %d, active signers %d\n", quorum, active),
		), broken
	}
}

// WatermarkBoundInvariant checks that the high-water mark, once set, names an
// id that was actually allocated.
func WatermarkBoundInvariant(k *Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		mark, hasMark := k.GetLastAdvancingRequestId(ctx)
		next := k.GetRequestCount(ctx)

		broken := hasMark && mark >= next
		return sdk.FormatInvariant(
			types.ModuleName, "watermark-bound",
			fmt.Sprintf("watermark %d (set: %t), next request id %d\n", mark, hasMark, next),
		), broken
	}
}
