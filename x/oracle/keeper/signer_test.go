package keeper_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	testkeeper "github.com/vichilotus/v3-dex-perpetual-contracts-sub000/testutil/keeper"
	"github.com/vichilotus/v3-dex-perpetual-contracts-sub000/x/oracle/types"
)

func TestSignerRegistry(t *testing.T) {
	k, ctx, _, _ := testkeeper.OracleKeeper(t)
	a, b := newTestSigner(1), newTestSigner(2)

	require.NoError(t, k.SetSigner(ctx, types.Signer{Address: a.addr, Active: true}))
	require.NoError(t, k.SetSigner(ctx, types.Signer{Address: b.addr, Active: false}))

	require.True(t, k.IsActiveSigner(ctx, a.addr))
	require.False(t, k.IsActiveSigner(ctx, b.addr))
	require.Equal(t, uint32(1), k.CountActiveSigners(ctx))

	// addresses are stored normalized, lookups accept any casing
	upper := "0X" + a.addr[2:]
	require.True(t, k.IsActiveSigner(ctx, upper))

	set := k.ActiveSignerSet(ctx)
	require.True(t, set[a.addr])
	require.False(t, set[b.addr])

	require.Error(t, k.SetSigner(ctx, types.Signer{Address: "not-an-address", Active: true}))
}

func TestSetQuorumBound(t *testing.T) {
	k, ctx, _, _ := testkeeper.OracleKeeper(t)
	a, b := newTestSigner(1), newTestSigner(2)

	require.NoError(t, k.SetSigner(ctx, types.Signer{Address: a.addr, Active: true}))
	require.NoError(t, k.SetSigner(ctx, types.Signer{Address: b.addr, Active: true}))

	require.ErrorIs(t, k.SetQuorum(ctx, 0), types.ErrInvalidQuorum)
	require.ErrorIs(t, k.SetQuorum(ctx, 3), types.ErrQuorumExceedsSigners)

	require.NoError(t, k.SetQuorum(ctx, 2))
	require.Equal(t, uint32(2), k.GetQuorum(ctx))

	// the check runs at the point of change, not per fulfillment: deactivating
	// a signer afterwards leaves the quorum in place
	require.NoError(t, k.SetSigner(ctx, types.Signer{Address: b.addr, Active: false}))
	require.Equal(t, uint32(2), k.GetQuorum(ctx))
}

func TestAuthorityIsAlwaysAdministrator(t *testing.T) {
	k, ctx, _, _ := testkeeper.OracleKeeper(t)

	require.True(t, k.IsAdministrator(ctx, types.DefaultAuthority()))
	require.False(t, k.IsAdministrator(ctx, testAddr(0x0C).String()))

	k.SetAdministrator(ctx, testAddr(0x0C).String(), true)
	require.True(t, k.IsAdministrator(ctx, testAddr(0x0C).String()))
	k.SetAdministrator(ctx, testAddr(0x0C).String(), false)
	require.False(t, k.IsAdministrator(ctx, testAddr(0x0C).String()))
}
