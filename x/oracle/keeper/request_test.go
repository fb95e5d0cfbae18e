package keeper_test

import (
	"bytes"
	"testing"
	"time"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	testkeeper "github.com/vichilotus/v3-dex-perpetual-contracts-sub000/testutil/keeper"
	"github.com/vichilotus/v3-dex-perpetual-contracts-sub000/x/oracle/types"
)

func testAddr(tag byte) sdk.AccAddress {
	return sdk.AccAddress(bytes.Repeat([]byte{tag}, 20))
}

// fundedConsumer registers the address as a contract and gives it enough
// escrow to create requests.
func fundedConsumer(k *testkeeper.MockEscrowKeeper, c *testkeeper.MockContractKeeper, tag byte) sdk.AccAddress {
	addr := testAddr(tag)
	c.Register(addr)
	k.Fund(addr, math.NewInt(10_000_000))
	return addr
}

func TestCreateRequestAllocatesDenseIds(t *testing.T) {
	k, ctx, escrow, contracts := testkeeper.OracleKeeper(t)
	owner := fundedConsumer(escrow, contracts, 0x01)

	for want := uint64(0); want < 3; want++ {
		req, err := k.CreateRequest(ctx, owner.String(), []byte("meta"), 0)
		require.NoError(t, err)
		require.Equal(t, want, req.Id)
		require.Equal(t, types.StatusPending, req.Status)
		require.True(t, req.PaymentAvailable)
		require.Equal(t, ctx.BlockTime().Unix(), req.CreatedAt)
	}

	require.Equal(t, uint64(3), k.GetRequestCount(ctx))
}

func TestCreateRequestInsufficientEscrow(t *testing.T) {
	k, ctx, escrow, contracts := testkeeper.OracleKeeper(t)
	owner := testAddr(0x01)
	contracts.Register(owner)
	escrow.Fund(owner, math.NewInt(999_999)) // default minimum is 1_000_000

	_, err := k.CreateRequest(ctx, owner.String(), nil, 0)
	require.ErrorIs(t, err, types.ErrInsufficientEscrow)
	require.Equal(t, uint64(0), k.GetRequestCount(ctx))
}

func TestCreateRequestContractGate(t *testing.T) {
	k, ctx, escrow, _ := testkeeper.OracleKeeper(t)
	owner := testAddr(0x01)
	escrow.Fund(owner, math.NewInt(10_000_000))

	_, err := k.CreateRequest(ctx, owner.String(), nil, 0)
	require.ErrorIs(t, err, types.ErrNotContract)

	params := k.GetParams(ctx)
	params.RequireContractCaller = false
	require.NoError(t, k.SetParams(ctx, params))

	_, err = k.CreateRequest(ctx, owner.String(), nil, 0)
	require.NoError(t, err)
}

func TestCreateRequestWhitelistGate(t *testing.T) {
	k, ctx, escrow, contracts := testkeeper.OracleKeeper(t)
	owner := fundedConsumer(escrow, contracts, 0x01)

	params := k.GetParams(ctx)
	params.WhitelistEnabled = true
	require.NoError(t, k.SetParams(ctx, params))

	_, err := k.CreateRequest(ctx, owner.String(), nil, 0)
	require.ErrorIs(t, err, types.ErrNotWhitelisted)

	k.SetWhitelisted(ctx, owner.String(), true)
	_, err = k.CreateRequest(ctx, owner.String(), nil, 0)
	require.NoError(t, err)
}

func TestCreateRequestPayloadTooLarge(t *testing.T) {
	k, ctx, escrow, contracts := testkeeper.OracleKeeper(t)
	owner := fundedConsumer(escrow, contracts, 0x01)

	payload := bytes.Repeat([]byte{0xAB}, types.DefaultMaxPayloadBytes+1)
	_, err := k.CreateRequest(ctx, owner.String(), payload, 0)
	require.ErrorIs(t, err, types.ErrInvalidPayload)
}

func TestCreateRequestExpiryInPast(t *testing.T) {
	k, ctx, escrow, contracts := testkeeper.OracleKeeper(t)
	owner := fundedConsumer(escrow, contracts, 0x01)

	_, err := k.CreateRequest(ctx, owner.String(), nil, ctx.BlockTime().Unix()-1)
	require.ErrorIs(t, err, types.ErrInvalidExpiry)

	// zero means never expires
	req, err := k.CreateRequest(ctx, owner.String(), nil, 0)
	require.NoError(t, err)
	require.Equal(t, int64(0), req.ExpiresAt)
}

func TestCancelRequest(t *testing.T) {
	k, ctx, escrow, contracts := testkeeper.OracleKeeper(t)
	owner := fundedConsumer(escrow, contracts, 0x01)
	stranger := testAddr(0x02)

	req, err := k.CreateRequest(ctx, owner.String(), nil, 0)
	require.NoError(t, err)

	_, err = k.CancelRequest(ctx, req.Id, stranger.String())
	require.ErrorIs(t, err, types.ErrUnauthorized)

	cancelled, err := k.CancelRequest(ctx, req.Id, owner.String())
	require.NoError(t, err)
	require.Equal(t, types.StatusCancelled, cancelled.Status)

	// terminal: a second cancel must not change anything
	_, err = k.CancelRequest(ctx, req.Id, owner.String())
	require.ErrorIs(t, err, types.ErrRequestNotPending)

	stored, found := k.GetRequest(ctx, req.Id)
	require.True(t, found)
	require.Equal(t, types.StatusCancelled, stored.Status)
}

func TestRefundRequestAuthorization(t *testing.T) {
	k, ctx, escrow, contracts := testkeeper.OracleKeeper(t)
	owner := fundedConsumer(escrow, contracts, 0x01)
	admin := testAddr(0x0A)
	controller := testAddr(0x0B)
	stranger := testAddr(0x0C)

	k.SetAdministrator(ctx, admin.String(), true)
	k.SetController(ctx, controller.String(), true)

	first, err := k.CreateRequest(ctx, owner.String(), nil, 0)
	require.NoError(t, err)
	second, err := k.CreateRequest(ctx, owner.String(), nil, 0)
	require.NoError(t, err)

	_, err = k.RefundRequest(ctx, first.Id, stranger.String())
	require.ErrorIs(t, err, types.ErrUnauthorized)

	refunded, err := k.RefundRequest(ctx, first.Id, admin.String())
	require.NoError(t, err)
	require.Equal(t, types.StatusRefunded, refunded.Status)

	refunded, err = k.RefundRequest(ctx, second.Id, controller.String())
	require.NoError(t, err)
	require.Equal(t, types.StatusRefunded, refunded.Status)

	_, err = k.RefundRequest(ctx, first.Id, admin.String())
	require.ErrorIs(t, err, types.ErrRequestNotPending)
}

func TestRefundRequestNotFound(t *testing.T) {
	k, ctx, _, _ := testkeeper.OracleKeeper(t)
	admin := testAddr(0x0A)
	k.SetAdministrator(ctx, admin.String(), true)

	_, err := k.RefundRequest(ctx, 42, admin.String())
	require.ErrorIs(t, err, types.ErrRequestNotFound)
}

func TestFulfillRequestHardFailures(t *testing.T) {
	k, ctx, escrow, contracts := testkeeper.OracleKeeper(t)
	owner := fundedConsumer(escrow, contracts, 0x01)
	relay := testAddr(0x0B)

	signer := newTestSigner(1)
	require.NoError(t, k.SetSigner(ctx, types.Signer{Address: signer.addr, Active: true}))

	t.Run("unknown request id", func(t *testing.T) {
		_, err := k.FulfillRequest(ctx, 42, relay.String(), nil)
		require.ErrorIs(t, err, types.ErrRequestNotFound)
	})

	t.Run("expired request stays pending", func(t *testing.T) {
		req, err := k.CreateRequest(ctx, owner.String(), nil, ctx.BlockTime().Unix()+60)
		require.NoError(t, err)

		late := ctx.WithBlockTime(ctx.BlockTime().Add(2 * time.Minute))
		subs := []types.SignedSubmission{
			signer.submit(t, req.CreatedAt, []types.PricePoint{{AssetIndex: 0, Price: 100}}),
		}

		_, err = k.FulfillRequest(late, req.Id, relay.String(), subs)
		require.ErrorIs(t, err, types.ErrRequestExpired)

		stored, found := k.GetRequest(ctx, req.Id)
		require.True(t, found)
		require.Equal(t, types.StatusPending, stored.Status)

		// only refund or cancel can close it now
		admin := testAddr(0x0A)
		k.SetAdministrator(ctx, admin.String(), true)
		refunded, err := k.RefundRequest(late, req.Id, admin.String())
		require.NoError(t, err)
		require.Equal(t, types.StatusRefunded, refunded.Status)
	})

	t.Run("bundle above submission cap", func(t *testing.T) {
		req, err := k.CreateRequest(ctx, owner.String(), nil, 0)
		require.NoError(t, err)

		points := []types.PricePoint{{AssetIndex: 0, Price: 100}}
		subs := make([]types.SignedSubmission, types.DefaultMaxSubmissions+1)
		for i := range subs {
			subs[i] = signer.submit(t, req.CreatedAt, points)
		}

		_, err = k.FulfillRequest(ctx, req.Id, relay.String(), subs)
		require.ErrorIs(t, err, types.ErrBundleTooLarge)
	})
}

func TestFulfillRequestSoftRejectionKeepsPending(t *testing.T) {
	k, ctx, escrow, contracts := testkeeper.OracleKeeper(t)
	owner := fundedConsumer(escrow, contracts, 0x01)
	relay := testAddr(0x0B)

	a, b := newTestSigner(1), newTestSigner(2)
	require.NoError(t, k.SetSigner(ctx, types.Signer{Address: a.addr, Active: true}))
	require.NoError(t, k.SetSigner(ctx, types.Signer{Address: b.addr, Active: true}))
	require.NoError(t, k.SetQuorum(ctx, 2))

	req, err := k.CreateRequest(ctx, owner.String(), nil, 0)
	require.NoError(t, err)

	subs := []types.SignedSubmission{
		a.submit(t, req.CreatedAt, []types.PricePoint{{AssetIndex: 0, Price: 100}}),
	}

	result, err := k.FulfillRequest(ctx, req.Id, relay.String(), subs)
	require.NoError(t, err)
	require.Equal(t, types.OutcomeRejected, result.Outcome)
	require.Equal(t, types.RejectUnderThreshold, result.Reason)

	// still pending and retryable
	stored, _ := k.GetRequest(ctx, req.Id)
	require.Equal(t, types.StatusPending, stored.Status)
	require.Empty(t, escrow.Payments)

	// retry with a full bundle succeeds
	subs = append(subs, b.submit(t, req.CreatedAt, []types.PricePoint{{AssetIndex: 0, Price: 102}}))
	result, err = k.FulfillRequest(ctx, req.Id, relay.String(), subs)
	require.NoError(t, err)
	require.Equal(t, types.OutcomeFulfilled, result.Outcome)
}

func TestFulfillRequestSettlesFee(t *testing.T) {
	k, ctx, escrow, contracts := testkeeper.OracleKeeper(t)
	owner := fundedConsumer(escrow, contracts, 0x01)
	relay := testAddr(0x0B)

	signer := newTestSigner(1)
	require.NoError(t, k.SetSigner(ctx, types.Signer{Address: signer.addr, Active: true}))

	req, err := k.CreateRequest(ctx, owner.String(), nil, 0)
	require.NoError(t, err)

	subs := []types.SignedSubmission{
		signer.submit(t, req.CreatedAt, []types.PricePoint{{AssetIndex: 3, Price: 250_00000000}}),
	}

	result, err := k.FulfillRequest(ctx, req.Id, relay.String(), subs)
	require.NoError(t, err)
	require.Equal(t, types.OutcomeFulfilled, result.Outcome)

	// 1% of the 1_000_000 minimum
	wantFee := math.NewInt(10_000)
	require.Equal(t, wantFee, result.Fee)
	require.Len(t, escrow.Payments, 1)
	require.Equal(t, owner.String(), escrow.Payments[0].From)
	require.Equal(t, relay.String(), escrow.Payments[0].To)
	require.Equal(t, wantFee, escrow.Payments[0].Amount)

	feed, found := k.GetPriceFeed(ctx, 3)
	require.True(t, found)
	require.Equal(t, uint64(1), feed.Round)
	require.Equal(t, uint64(250_00000000), feed.Price)
	require.Equal(t, uint64(250_00000000), feed.LatestPrice)
	require.Equal(t, ctx.BlockTime().Unix(), feed.LatestTimestamp)
}

func TestFulfillRequestDuplicateIsSilentSkip(t *testing.T) {
	k, ctx, escrow, contracts := testkeeper.OracleKeeper(t)
	owner := fundedConsumer(escrow, contracts, 0x01)
	relay := testAddr(0x0B)

	signer := newTestSigner(1)
	require.NoError(t, k.SetSigner(ctx, types.Signer{Address: signer.addr, Active: true}))

	req, err := k.CreateRequest(ctx, owner.String(), nil, 0)
	require.NoError(t, err)

	subs := []types.SignedSubmission{
		signer.submit(t, req.CreatedAt, []types.PricePoint{{AssetIndex: 0, Price: 100}}),
	}

	result, err := k.FulfillRequest(ctx, req.Id, relay.String(), subs)
	require.NoError(t, err)
	require.Equal(t, types.OutcomeFulfilled, result.Outcome)

	feedBefore, _ := k.GetPriceFeed(ctx, 0)

	// the racing duplicate neither errors nor mutates anything
	result, err = k.FulfillRequest(ctx, req.Id, relay.String(), subs)
	require.NoError(t, err)
	require.Equal(t, types.OutcomeSkipped, result.Outcome)
	require.Len(t, escrow.Payments, 1)

	feedAfter, _ := k.GetPriceFeed(ctx, 0)
	require.Equal(t, feedBefore, feedAfter)
}

func TestFulfillRequestOutOfOrderKeepsLatest(t *testing.T) {
	k, ctx, escrow, contracts := testkeeper.OracleKeeper(t)
	owner := fundedConsumer(escrow, contracts, 0x01)
	relay := testAddr(0x0B)

	a, b, c := newTestSigner(1), newTestSigner(2), newTestSigner(3)
	for _, s := range []testSigner{a, b, c} {
		require.NoError(t, k.SetSigner(ctx, types.Signer{Address: s.addr, Active: true}))
	}
	require.NoError(t, k.SetQuorum(ctx, 3))

	// three requests for the same asset
	var reqs []types.Request
	for i := 0; i < 3; i++ {
		req, err := k.CreateRequest(ctx, owner.String(), nil, 0)
		require.NoError(t, err)
		reqs = append(reqs, req)
	}

	fulfill := func(req types.Request, price uint64) {
		points := []types.PricePoint{{AssetIndex: 0, Price: price}}
		subs := []types.SignedSubmission{
			a.submit(t, req.CreatedAt, points),
			b.submit(t, req.CreatedAt, points),
			c.submit(t, req.CreatedAt, points),
		}
		result, err := k.FulfillRequest(ctx, req.Id, relay.String(), subs)
		require.NoError(t, err)
		require.Equal(t, types.OutcomeFulfilled, result.Outcome)
	}

	fulfill(reqs[0], 100)
	feed, _ := k.GetPriceFeed(ctx, 0)
	require.Equal(t, uint64(1), feed.Round)
	require.Equal(t, uint64(100), feed.Price)
	require.Equal(t, uint64(100), feed.LatestPrice)

	fulfill(reqs[2], 104)
	feed, _ = k.GetPriceFeed(ctx, 0)
	require.Equal(t, uint64(2), feed.Round)
	require.Equal(t, uint64(104), feed.Price)
	require.Equal(t, uint64(104), feed.LatestPrice)

	// request 1 arrives out of order: its computation is recorded, the latest
	// view keeps request 2's aggregate
	fulfill(reqs[1], 102)
	feed, _ = k.GetPriceFeed(ctx, 0)
	require.Equal(t, uint64(3), feed.Round)
	require.Equal(t, uint64(102), feed.Price)
	require.Equal(t, uint64(104), feed.LatestPrice)

	mark, hasMark := k.GetLastAdvancingRequestId(ctx)
	require.True(t, hasMark)
	require.Equal(t, reqs[2].Id, mark)
}
