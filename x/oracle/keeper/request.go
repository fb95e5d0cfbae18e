package keeper

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"

	sdkmath "cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/vichilotus/v3-dex-perpetual-contracts-sub000/x/oracle/types"
)

// GetRequestCount returns the number of requests ever created. Ids are dense,
// so this is also the next id to assign.
func (k Keeper) GetRequestCount(ctx context.Context) uint64 {
	bz := k.getStore(ctx).Get(types.RequestCountKey)
	if len(bz) != 8 {
		return 0
	}
	return binary.BigEndian.Uint64(bz)
}

// SetRequestCount stores the request counter
func (k Keeper) SetRequestCount(ctx context.Context, count uint64) {
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, count)
	k.getStore(ctx).Set(types.RequestCountKey, bz)
}

// GetRequest returns a request by id
func (k Keeper) GetRequest(ctx context.Context, id uint64) (types.Request, bool) {
	bz := k.getStore(ctx).Get(types.GetRequestKey(id))
	if bz == nil {
		return types.Request{}, false
	}

	var req types.Request
	if err := json.Unmarshal(bz, &req); err != nil {
		return types.Request{}, false
	}
	return req, true
}

// SetRequest stores a request
func (k Keeper) SetRequest(ctx context.Context, req types.Request) error {
	bz, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}
	k.getStore(ctx).Set(types.GetRequestKey(req.Id), bz)
	return nil
}

// GetAllRequests returns every stored request in id order
func (k Keeper) GetAllRequests(ctx context.Context) []types.Request {
	requests := []types.Request{}

	it := storetypes.KVStorePrefixIterator(k.getStore(ctx), types.RequestKeyPrefix)
	defer it.Close()

	for ; it.Valid(); it.Next() {
		var req types.Request
		if err := json.Unmarshal(it.Value(), &req); err != nil {
			continue
		}
		requests = append(requests, req)
	}

	return requests
}

// CreateRequest allocates the next request id and stores a pending request.
// The owner's escrow balance must cover the minimum fee balance; no funds
// move until fulfillment.
func (k Keeper) CreateRequest(ctx context.Context, owner string, payload []byte, expiresAt int64) (types.Request, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	params := k.GetParams(ctx)

	if uint32(len(payload)) > params.MaxPayloadBytes {
		return types.Request{}, types.ErrInvalidPayload.Wrapf("payload is %d bytes, maximum is %d", len(payload), params.MaxPayloadBytes)
	}

	now := sdkCtx.BlockTime().Unix()
	if expiresAt != 0 && expiresAt <= now {
		return types.Request{}, types.ErrInvalidExpiry.Wrapf("expiry %d is not after current time %d", expiresAt, now)
	}

	ownerAddr, err := sdk.AccAddressFromBech32(owner)
	if err != nil {
		return types.Request{}, types.ErrUnauthorized.Wrapf("invalid owner address: %s", err)
	}
	if err := k.CheckConsumer(ctx, ownerAddr); err != nil {
		return types.Request{}, err
	}

	balance := sdkmath.ZeroInt()
	if k.escrowKeeper != nil {
		balance = k.escrowKeeper.BalanceOf(ctx, ownerAddr)
	}
	if balance.LT(params.MinFeeBalance) {
		return types.Request{}, types.ErrInsufficientEscrow.Wrapf("escrow balance %s is below minimum %s", balance, params.MinFeeBalance)
	}

	id := k.GetRequestCount(ctx)
	req := types.Request{
		Id:               id,
		CreatedAt:        now,
		Owner:            owner,
		Payload:          payload,
		Status:           types.StatusPending,
		ExpiresAt:        expiresAt,
		PaymentAvailable: true,
	}

	if err := k.SetRequest(ctx, req); err != nil {
		return types.Request{}, err
	}
	k.SetRequestCount(ctx, id+1)

	if k.metrics != nil {
		k.metrics.RequestsCreated.Inc()
	}
	return req, nil
}

// CancelRequest transitions a pending request to cancelled. Only the request
// owner may cancel.
func (k Keeper) CancelRequest(ctx context.Context, id uint64, caller string) (types.Request, error) {
	req, found := k.GetRequest(ctx, id)
	if !found {
		return types.Request{}, types.ErrRequestNotFound.Wrapf("request %d", id)
	}
	if req.Owner != caller {
		return types.Request{}, types.ErrUnauthorized.Wrapf("%s is not the owner of request %d", caller, id)
	}
	if req.Status != types.StatusPending {
		return types.Request{}, types.ErrRequestNotPending.Wrapf("request %d is %s", id, req.Status)
	}

	req.Status = types.StatusCancelled
	if err := k.SetRequest(ctx, req); err != nil {
		return types.Request{}, err
	}
	if k.metrics != nil {
		k.metrics.RequestsCancelled.Inc()
	}
	return req, nil
}

// RefundRequest transitions a pending request to refunded. Only an
// administrator or controller may refund; this is the path for closing
// requests that expired before fulfillment.
func (k Keeper) RefundRequest(ctx context.Context, id uint64, caller string) (types.Request, error) {
	if !k.IsAdministrator(ctx, caller) && !k.IsController(ctx, caller) {
		return types.Request{}, types.ErrUnauthorized.Wrapf("%s is neither an administrator nor a controller", caller)
	}

	req, found := k.GetRequest(ctx, id)
	if !found {
		return types.Request{}, types.ErrRequestNotFound.Wrapf("request %d", id)
	}
	if req.Status != types.StatusPending {
		return types.Request{}, types.ErrRequestNotPending.Wrapf("request %d is %s", id, req.Status)
	}

	req.Status = types.StatusRefunded
	if err := k.SetRequest(ctx, req); err != nil {
		return types.Request{}, err
	}
	if k.metrics != nil {
		k.metrics.RequestsRefunded.Inc()
	}
	return req, nil
}

// FulfillResult reports what a fulfillment attempt did.
type FulfillResult struct {
	Outcome types.FulfillOutcome
	// Reason is set when Outcome is OutcomeRejected.
	Reason string
	// Prices are the published per-asset means when Outcome is
	// OutcomeFulfilled.
	Prices []types.PricePoint
	// AdvancedLatest reports whether this fulfillment moved the latest view.
	AdvancedLatest bool
	// Fee is the amount settled with the relay, zero when nothing was paid.
	Fee sdkmath.Int
}

// FulfillRequest runs the full fulfillment pipeline for one request. Hard
// failures return an error and abort the call; a rejected bundle leaves the
// request pending and reports the first violated rule; attempts against an
// already resolved request are a silent skip.
func (k Keeper) FulfillRequest(ctx context.Context, id uint64, relay string, subs []types.SignedSubmission) (FulfillResult, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	zero := FulfillResult{Fee: sdkmath.ZeroInt()}

	req, found := k.GetRequest(ctx, id)
	if !found {
		return zero, types.ErrRequestNotFound.Wrapf("request %d", id)
	}

	if req.Status != types.StatusPending {
		if k.metrics != nil {
			k.metrics.Fulfillments.WithLabelValues("skipped").Inc()
		}
		return FulfillResult{Outcome: types.OutcomeSkipped, Fee: sdkmath.ZeroInt()}, nil
	}

	now := sdkCtx.BlockTime().Unix()
	if req.Expired(now) {
		return zero, types.ErrRequestExpired.Wrapf("request %d expired at %d, current time %d", id, req.ExpiresAt, now)
	}

	params := k.GetParams(ctx)
	if uint32(len(subs)) > params.MaxSubmissions {
		return zero, types.ErrBundleTooLarge.Wrapf("%d submissions, maximum is %d", len(subs), params.MaxSubmissions)
	}

	mark, hasMark := k.GetLastAdvancingRequestId(ctx)
	result, reason := ValidateAndAggregate(
		k.ActiveSignerSet(ctx),
		k.GetQuorum(ctx),
		req.CreatedAt,
		subs,
		mark,
		hasMark,
		id,
	)
	if reason != "" {
		if k.metrics != nil {
			k.metrics.Fulfillments.WithLabelValues("rejected").Inc()
			k.metrics.FulfillmentRejections.WithLabelValues(reason).Inc()
		}
		return FulfillResult{Outcome: types.OutcomeRejected, Reason: reason, Fee: sdkmath.ZeroInt()}, nil
	}

	for _, point := range result.Prices {
		feed, _ := k.GetPriceFeed(ctx, point.AssetIndex)
		if err := k.PublishPrice(ctx, point.AssetIndex, feed.Round+1, point.Price, now, result.AdvanceLatest); err != nil {
			return zero, err
		}
	}
	if result.AdvanceLatest {
		k.SetLastAdvancingRequestId(ctx, result.NewMark)
	}

	req.Status = types.StatusFulfilled
	if err := k.SetRequest(ctx, req); err != nil {
		return zero, err
	}

	fee := params.FulfillmentFee()
	if k.escrowKeeper != nil && fee.IsPositive() {
		ownerAddr, err := sdk.AccAddressFromBech32(req.Owner)
		if err != nil {
			return zero, types.ErrUnauthorized.Wrapf("invalid owner address: %s", err)
		}
		relayAddr, err := sdk.AccAddressFromBech32(relay)
		if err != nil {
			return zero, types.ErrUnauthorized.Wrapf("invalid relay address: %s", err)
		}
		if err := k.escrowKeeper.Pay(ctx, ownerAddr, relayAddr, fee); err != nil {
			return zero, fmt.Errorf("failed to settle fulfillment fee: %w", err)
		}
	} else {
		fee = sdkmath.ZeroInt()
	}

	if k.metrics != nil {
		k.metrics.Fulfillments.WithLabelValues("fulfilled").Inc()
		if fee.IsPositive() {
			k.metrics.FeesSettled.Add(float64(fee.Int64()))
		}
	}
	return FulfillResult{Outcome: types.OutcomeFulfilled, Prices: result.Prices, AdvancedLatest: result.AdvanceLatest, Fee: fee}, nil
}
