package keeper_test

import (
	"testing"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	testkeeper "github.com/vichilotus/v3-dex-perpetual-contracts-sub000/testutil/keeper"
	"github.com/vichilotus/v3-dex-perpetual-contracts-sub000/x/oracle/keeper"
	"github.com/vichilotus/v3-dex-perpetual-contracts-sub000/x/oracle/types"
)

func hasEvent(events sdk.Events, eventType string) bool {
	for _, ev := range events {
		if ev.Type == eventType {
			return true
		}
	}
	return false
}

func eventAttr(t *testing.T, events sdk.Events, eventType, key string) string {
	t.Helper()
	for _, ev := range events {
		if ev.Type != eventType {
			continue
		}
		for _, attr := range ev.Attributes {
			if attr.Key == key {
				return attr.Value
			}
		}
	}
	t.Fatalf("event %s with attribute %s not found", eventType, key)
	return ""
}

func TestMsgServerRequestPrices(t *testing.T) {
	k, ctx, escrow, contracts := testkeeper.OracleKeeper(t)
	srv := keeper.NewMsgServerImpl(k)
	owner := fundedConsumer(escrow, contracts, 0x01)

	resp, err := srv.RequestPrices(ctx, types.NewMsgRequestPrices(owner.String(), []byte("meta"), 0))
	require.NoError(t, err)
	require.Equal(t, uint64(0), resp.RequestId)
	require.True(t, hasEvent(ctx.EventManager().Events(), types.EventTypeRequestCreated))

	resp, err = srv.RequestPrices(ctx, types.NewMsgRequestPrices(owner.String(), nil, 0))
	require.NoError(t, err)
	require.Equal(t, uint64(1), resp.RequestId)
}

func TestMsgServerFulfillRequiresController(t *testing.T) {
	k, ctx, escrow, contracts := testkeeper.OracleKeeper(t)
	srv := keeper.NewMsgServerImpl(k)
	owner := fundedConsumer(escrow, contracts, 0x01)
	relay := testAddr(0x0B)

	signer := newTestSigner(1)
	require.NoError(t, k.SetSigner(ctx, types.Signer{Address: signer.addr, Active: true}))

	resp, err := srv.RequestPrices(ctx, types.NewMsgRequestPrices(owner.String(), nil, 0))
	require.NoError(t, err)
	req, _ := k.GetRequest(ctx, resp.RequestId)

	subs := []types.SignedSubmission{
		signer.submit(t, req.CreatedAt, []types.PricePoint{{AssetIndex: 0, Price: 100}}),
	}
	msg := types.NewMsgFulfillRequest(relay.String(), req.Id, subs)

	_, err = srv.FulfillRequest(ctx, msg)
	require.ErrorIs(t, err, types.ErrNotController)

	k.SetController(ctx, relay.String(), true)
	fresp, err := srv.FulfillRequest(ctx, msg)
	require.NoError(t, err)
	require.Equal(t, types.OutcomeFulfilled, fresp.Outcome)

	events := ctx.EventManager().Events()
	require.True(t, hasEvent(events, types.EventTypeRequestFulfilled))
	require.True(t, hasEvent(events, types.EventTypePriceUpdated))
	require.True(t, hasEvent(events, types.EventTypeFeeSettled))
	require.Equal(t, "true", eventAttr(t, events, types.EventTypePriceUpdated, types.AttributeKeyLatest))
}

func TestMsgServerFulfillStaleRequestEmitsLatestFalse(t *testing.T) {
	k, ctx, escrow, contracts := testkeeper.OracleKeeper(t)
	srv := keeper.NewMsgServerImpl(k)
	owner := fundedConsumer(escrow, contracts, 0x01)
	relay := testAddr(0x0B)
	k.SetController(ctx, relay.String(), true)

	signer := newTestSigner(1)
	require.NoError(t, k.SetSigner(ctx, types.Signer{Address: signer.addr, Active: true}))

	first, err := srv.RequestPrices(ctx, types.NewMsgRequestPrices(owner.String(), nil, 0))
	require.NoError(t, err)
	second, err := srv.RequestPrices(ctx, types.NewMsgRequestPrices(owner.String(), nil, 0))
	require.NoError(t, err)

	fulfill := func(id uint64, price uint64) sdk.Events {
		req, found := k.GetRequest(ctx, id)
		require.True(t, found)
		subs := []types.SignedSubmission{
			signer.submit(t, req.CreatedAt, []types.PricePoint{{AssetIndex: 0, Price: price}}),
		}
		evCtx := ctx.WithEventManager(sdk.NewEventManager())
		resp, err := srv.FulfillRequest(evCtx, types.NewMsgFulfillRequest(relay.String(), id, subs))
		require.NoError(t, err)
		require.Equal(t, types.OutcomeFulfilled, resp.Outcome)
		return evCtx.EventManager().Events()
	}

	events := fulfill(second.RequestId, 200)
	require.Equal(t, "true", eventAttr(t, events, types.EventTypePriceUpdated, types.AttributeKeyLatest))

	// the older request still publishes a round but may not move the latest view
	events = fulfill(first.RequestId, 100)
	require.Equal(t, "false", eventAttr(t, events, types.EventTypePriceUpdated, types.AttributeKeyLatest))

	feed, found := k.GetPriceFeed(ctx, 0)
	require.True(t, found)
	require.Equal(t, uint64(100), feed.Price)
	require.Equal(t, uint64(200), feed.LatestPrice)
}

func TestMsgServerFulfillRejectionEmitsReason(t *testing.T) {
	k, ctx, escrow, contracts := testkeeper.OracleKeeper(t)
	srv := keeper.NewMsgServerImpl(k)
	owner := fundedConsumer(escrow, contracts, 0x01)
	relay := testAddr(0x0B)
	k.SetController(ctx, relay.String(), true)

	// signer is registered but inactive
	signer := newTestSigner(1)
	require.NoError(t, k.SetSigner(ctx, types.Signer{Address: signer.addr, Active: false}))

	resp, err := srv.RequestPrices(ctx, types.NewMsgRequestPrices(owner.String(), nil, 0))
	require.NoError(t, err)
	req, _ := k.GetRequest(ctx, resp.RequestId)

	subs := []types.SignedSubmission{
		signer.submit(t, req.CreatedAt, []types.PricePoint{{AssetIndex: 0, Price: 100}}),
	}

	fresp, err := srv.FulfillRequest(ctx, types.NewMsgFulfillRequest(relay.String(), req.Id, subs))
	require.NoError(t, err)
	require.Equal(t, types.OutcomeRejected, fresp.Outcome)
	require.Equal(t, types.RejectUnknownSigner, fresp.Reason)

	events := ctx.EventManager().Events()
	require.Equal(t, types.RejectUnknownSigner,
		eventAttr(t, events, types.EventTypeFulfillmentRejected, types.AttributeKeyReason))
	require.False(t, hasEvent(events, types.EventTypeRequestFulfilled))
}

func TestMsgServerLifecycle(t *testing.T) {
	k, ctx, escrow, contracts := testkeeper.OracleKeeper(t)
	srv := keeper.NewMsgServerImpl(k)
	owner := fundedConsumer(escrow, contracts, 0x01)
	admin := testAddr(0x0A)
	k.SetAdministrator(ctx, admin.String(), true)

	first, err := srv.RequestPrices(ctx, types.NewMsgRequestPrices(owner.String(), nil, 0))
	require.NoError(t, err)
	second, err := srv.RequestPrices(ctx, types.NewMsgRequestPrices(owner.String(), nil, 0))
	require.NoError(t, err)

	_, err = srv.CancelRequest(ctx, types.NewMsgCancelRequest(owner.String(), first.RequestId))
	require.NoError(t, err)
	require.True(t, hasEvent(ctx.EventManager().Events(), types.EventTypeRequestCancelled))

	_, err = srv.RefundRequest(ctx, types.NewMsgRefundRequest(admin.String(), second.RequestId))
	require.NoError(t, err)
	require.True(t, hasEvent(ctx.EventManager().Events(), types.EventTypeRequestRefunded))
}

func TestMsgServerAdminGating(t *testing.T) {
	k, ctx, _, _ := testkeeper.OracleKeeper(t)
	srv := keeper.NewMsgServerImpl(k)
	admin := testAddr(0x0A)
	stranger := testAddr(0x0C)
	relay := testAddr(0x0B)
	k.SetAdministrator(ctx, admin.String(), true)

	signerAddr := newTestSigner(1).addr

	_, err := srv.SetSigner(ctx, types.NewMsgSetSigner(stranger.String(), signerAddr, true))
	require.ErrorIs(t, err, types.ErrUnauthorized)

	_, err = srv.SetSigner(ctx, types.NewMsgSetSigner(admin.String(), signerAddr, true))
	require.NoError(t, err)
	require.True(t, k.IsActiveSigner(ctx, signerAddr))

	_, err = srv.SetQuorum(ctx, types.NewMsgSetQuorum(stranger.String(), 1))
	require.ErrorIs(t, err, types.ErrUnauthorized)

	_, err = srv.SetQuorum(ctx, types.NewMsgSetQuorum(admin.String(), 2))
	require.ErrorIs(t, err, types.ErrQuorumExceedsSigners)

	_, err = srv.SetQuorum(ctx, types.NewMsgSetQuorum(admin.String(), 1))
	require.NoError(t, err)

	_, err = srv.SetController(ctx, types.NewMsgSetController(admin.String(), relay.String(), true))
	require.NoError(t, err)
	require.True(t, k.IsController(ctx, relay.String()))

	_, err = srv.SetWhitelist(ctx, types.NewMsgSetWhitelist(admin.String(), stranger.String(), true))
	require.NoError(t, err)
	require.True(t, k.IsWhitelisted(ctx, stranger.String()))

	// deactivating a signer is idempotent and immediate
	_, err = srv.SetSigner(ctx, types.NewMsgSetSigner(admin.String(), signerAddr, false))
	require.NoError(t, err)
	require.False(t, k.IsActiveSigner(ctx, signerAddr))
}

func TestMsgServerUpdateParams(t *testing.T) {
	k, ctx, _, _ := testkeeper.OracleKeeper(t)
	srv := keeper.NewMsgServerImpl(k)

	params := types.DefaultParams()
	params.FeeRateBps = 250

	_, err := srv.UpdateParams(ctx, types.NewMsgUpdateParams(testAddr(0x0C).String(), params))
	require.ErrorIs(t, err, types.ErrUnauthorized)

	_, err = srv.UpdateParams(ctx, types.NewMsgUpdateParams(types.DefaultAuthority(), params))
	require.NoError(t, err)
	require.Equal(t, uint32(250), k.GetParams(ctx).FeeRateBps)
}
