package keeper

import (
	"context"
	"fmt"

	"github.com/vichilotus/v3-dex-perpetual-contracts-sub000/x/oracle/types"
)

// InitGenesis initializes the oracle module state from a genesis state
func (k Keeper) InitGenesis(ctx context.Context, genState types.GenesisState) error {
	if err := genState.Validate(); err != nil {
		return fmt.Errorf("invalid oracle genesis: %w", err)
	}

	if err := k.SetParams(ctx, genState.Params); err != nil {
		return err
	}

	for _, admin := range genState.Admins {
		k.SetAdministrator(ctx, admin, true)
	}
	for _, controller := range genState.Controllers {
		k.SetController(ctx, controller, true)
	}
	for _, consumer := range genState.Whitelisted {
		k.SetWhitelisted(ctx, consumer, true)
	}

	for _, signer := range genState.Signers {
		if err := k.SetSigner(ctx, signer); err != nil {
			return err
		}
	}
	// The quorum/active-signer relation was already checked by Validate, so the
	// write here must not depend on signer insertion order.
	k.setQuorumUnchecked(ctx, genState.Quorum)

	for _, req := range genState.Requests {
		if err := k.SetRequest(ctx, req); err != nil {
			return err
		}
	}
	k.SetRequestCount(ctx, genState.NextRequestId)

	for _, feed := range genState.PriceFeeds {
		if err := k.SetPriceFeed(ctx, feed); err != nil {
			return err
		}
	}

	if genState.HasAdvanced {
		k.SetLastAdvancingRequestId(ctx, genState.LastAdvancingRequestId)
	}

	return nil
}

// ExportGenesis returns the oracle module's full exported state
func (k Keeper) ExportGenesis(ctx context.Context) *types.GenesisState {
	mark, hasMark := k.GetLastAdvancingRequestId(ctx)

	return &types.GenesisState{
		Params:                 k.GetParams(ctx),
		Requests:               k.GetAllRequests(ctx),
		NextRequestId:          k.GetRequestCount(ctx),
		PriceFeeds:             k.GetAllPriceFeeds(ctx),
		Signers:                k.GetAllSigners(ctx),
		Quorum:                 k.GetQuorum(ctx),
		Controllers:            k.GetAllControllers(ctx),
		Whitelisted:            k.GetAllWhitelisted(ctx),
		Admins:                 k.GetAllAdministrators(ctx),
		HasAdvanced:            hasMark,
		LastAdvancingRequestId: mark,
	}
}
