package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	testkeeper "github.com/vichilotus/v3-dex-perpetual-contracts-sub000/testutil/keeper"
	"github.com/vichilotus/v3-dex-perpetual-contracts-sub000/x/oracle/types"
)

func TestGenesisRoundtrip(t *testing.T) {
	k, ctx, _, _ := testkeeper.OracleKeeper(t)

	a, b := newTestSigner(1), newTestSigner(2)
	owner := testAddr(0x01)
	admin := testAddr(0x0A)
	relay := testAddr(0x0B)

	genesis := types.GenesisState{
		Params: types.Params{
			MinFeeBalance:         math.NewInt(500_000),
			FeeRateBps:            50,
			WhitelistEnabled:      true,
			RequireContractCaller: false,
			MaxPayloadBytes:       512,
			MaxSubmissions:        16,
		},
		Requests: []types.Request{
			{Id: 0, CreatedAt: 1_700_000_000, Owner: owner.String(), Status: types.StatusFulfilled, PaymentAvailable: true},
			{Id: 1, CreatedAt: 1_700_000_100, Owner: owner.String(), Status: types.StatusPending, ExpiresAt: 1_800_000_000, PaymentAvailable: true},
		},
		NextRequestId: 2,
		PriceFeeds: []types.PriceFeed{
			{AssetIndex: 0, Round: 1, Price: 100, LatestPrice: 100, LatestTimestamp: 1_700_000_050},
		},
		Signers: []types.Signer{
			{Address: a.addr, Active: true},
			{Address: b.addr, Active: true},
		},
		Quorum:                 2,
		Controllers:            []string{relay.String()},
		Whitelisted:            []string{owner.String()},
		Admins:                 []string{admin.String()},
		HasAdvanced:            true,
		LastAdvancingRequestId: 0,
	}
	require.NoError(t, genesis.Validate())

	require.NoError(t, k.InitGenesis(ctx, genesis))

	require.Equal(t, uint32(2), k.GetQuorum(ctx))
	require.True(t, k.IsActiveSigner(ctx, a.addr))
	require.True(t, k.IsController(ctx, relay.String()))
	require.True(t, k.IsWhitelisted(ctx, owner.String()))
	require.True(t, k.IsAdministrator(ctx, admin.String()))

	mark, hasMark := k.GetLastAdvancingRequestId(ctx)
	require.True(t, hasMark)
	require.Equal(t, uint64(0), mark)

	exported := k.ExportGenesis(ctx)
	require.Equal(t, genesis.Params, exported.Params)
	require.Equal(t, genesis.Requests, exported.Requests)
	require.Equal(t, genesis.NextRequestId, exported.NextRequestId)
	require.Equal(t, genesis.PriceFeeds, exported.PriceFeeds)
	require.ElementsMatch(t, genesis.Signers, exported.Signers)
	require.Equal(t, genesis.Quorum, exported.Quorum)
	require.Equal(t, genesis.Controllers, exported.Controllers)
	require.Equal(t, genesis.Whitelisted, exported.Whitelisted)
	require.Equal(t, genesis.Admins, exported.Admins)
	require.True(t, exported.HasAdvanced)
	require.Equal(t, genesis.LastAdvancingRequestId, exported.LastAdvancingRequestId)
}

func TestInitGenesisRejectsInvalidState(t *testing.T) {
	k, ctx, _, _ := testkeeper.OracleKeeper(t)

	genesis := *types.DefaultGenesis()
	genesis.Quorum = 0

	require.Error(t, k.InitGenesis(ctx, genesis))
}

func TestExportGenesisWithoutWatermark(t *testing.T) {
	k, ctx, _, _ := testkeeper.OracleKeeper(t)

	exported := k.ExportGenesis(ctx)
	require.False(t, exported.HasAdvanced)
	require.Equal(t, uint64(0), exported.LastAdvancingRequestId)
}
