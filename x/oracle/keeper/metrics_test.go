package keeper_test

import (
	"testing"

	ptestutil "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	testkeeper "github.com/vichilotus/v3-dex-perpetual-contracts-sub000/testutil/keeper"
	"github.com/vichilotus/v3-dex-perpetual-contracts-sub000/x/oracle/keeper"
	"github.com/vichilotus/v3-dex-perpetual-contracts-sub000/x/oracle/types"
)

func TestOracleMetricsSingleton(t *testing.T) {
	m := keeper.GetOracleMetrics()
	require.NotNil(t, m)
	require.Same(t, m, keeper.NewOracleMetrics())
	require.NotNil(t, m.RequestsCreated)
	require.NotNil(t, m.Fulfillments)
	require.NotNil(t, m.FulfillmentRejections)
	require.NotNil(t, m.PricesPublished)
	require.NotNil(t, m.FeesSettled)
}

func TestFulfillmentPathsRecordMetrics(t *testing.T) {
	k, ctx, escrow, contracts := testkeeper.OracleKeeper(t)
	owner := fundedConsumer(escrow, contracts, 0x01)
	relay := testAddr(0x0B)
	m := keeper.GetOracleMetrics()

	signer := newTestSigner(1)
	require.NoError(t, k.SetSigner(ctx, types.Signer{Address: signer.addr, Active: true}))

	createdBefore := ptestutil.ToFloat64(m.RequestsCreated)
	fulfilledBefore := ptestutil.ToFloat64(m.Fulfillments.WithLabelValues("fulfilled"))
	rejectedBefore := ptestutil.ToFloat64(m.FulfillmentRejections.WithLabelValues(types.RejectUnknownSigner))

	req, err := k.CreateRequest(ctx, owner.String(), nil, 0)
	require.NoError(t, err)
	require.Equal(t, createdBefore+1, ptestutil.ToFloat64(m.RequestsCreated))

	stranger := newTestSigner(9)
	res, err := k.FulfillRequest(ctx, req.Id, relay.String(), []types.SignedSubmission{
		stranger.submit(t, req.CreatedAt, []types.PricePoint{{AssetIndex: 0, Price: 100}}),
	})
	require.NoError(t, err)
	require.Equal(t, types.OutcomeRejected, res.Outcome)
	require.Equal(t, rejectedBefore+1, ptestutil.ToFloat64(m.FulfillmentRejections.WithLabelValues(types.RejectUnknownSigner)))

	res, err = k.FulfillRequest(ctx, req.Id, relay.String(), []types.SignedSubmission{
		signer.submit(t, req.CreatedAt, []types.PricePoint{{AssetIndex: 0, Price: 100}}),
	})
	require.NoError(t, err)
	require.Equal(t, types.OutcomeFulfilled, res.Outcome)
	require.Equal(t, fulfilledBefore+1, ptestutil.ToFloat64(m.Fulfillments.WithLabelValues("fulfilled")))
}
