package keeper

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"

	storetypes "cosmossdk.io/store/types"

	"github.com/vichilotus/v3-dex-perpetual-contracts-sub000/x/oracle/types"
)

// GetPriceFeed returns the price record for an asset index
func (k Keeper) GetPriceFeed(ctx context.Context, assetIndex uint32) (types.PriceFeed, bool) {
	bz := k.getStore(ctx).Get(types.GetPriceFeedKey(assetIndex))
	if bz == nil {
		return types.PriceFeed{}, false
	}

	var feed types.PriceFeed
	if err := json.Unmarshal(bz, &feed); err != nil {
		return types.PriceFeed{}, false
	}
	return feed, true
}

// SetPriceFeed stores a price record
func (k Keeper) SetPriceFeed(ctx context.Context, feed types.PriceFeed) error {
	if feed.AssetIndex > types.MaxAssetIndex {
		return types.ErrInvalidPriceVector.Wrapf("asset index %d exceeds wire maximum", feed.AssetIndex)
	}

	bz, err := json.Marshal(feed)
	if err != nil {
		return fmt.Errorf("failed to marshal price feed: %w", err)
	}

	k.getStore(ctx).Set(types.GetPriceFeedKey(feed.AssetIndex), bz)
	return nil
}

// PublishPrice applies one asset write of a successful fulfillment. Round and
// price always move; the latest view only moves when advanceLatest is set.
// Validation is the aggregation engine's job; this method trusts its caller.
func (k Keeper) PublishPrice(ctx context.Context, assetIndex uint32, round, price uint64, timestamp int64, advanceLatest bool) error {
	feed, found := k.GetPriceFeed(ctx, assetIndex)
	if !found {
		feed = types.PriceFeed{AssetIndex: assetIndex}
	}

	feed.Round = round
	feed.Price = price
	if advanceLatest {
		feed.LatestPrice = price
		feed.LatestTimestamp = timestamp
	}

	if err := k.SetPriceFeed(ctx, feed); err != nil {
		return err
	}

	if k.metrics != nil {
		asset := fmt.Sprintf("%d", assetIndex)
		k.metrics.PricesPublished.WithLabelValues(asset).Inc()
		k.metrics.AggregatedPrice.WithLabelValues(asset).Set(float64(price))
	}
	return nil
}

// GetAllPriceFeeds returns every published price record, ordered by asset index
func (k Keeper) GetAllPriceFeeds(ctx context.Context) []types.PriceFeed {
	feeds := []types.PriceFeed{}

	it := storetypes.KVStorePrefixIterator(k.getStore(ctx), types.PriceFeedKeyPrefix)
	defer it.Close()

	for ; it.Valid(); it.Next() {
		var feed types.PriceFeed
		if err := json.Unmarshal(it.Value(), &feed); err != nil {
			continue
		}
		feeds = append(feeds, feed)
	}

	return feeds
}

// GetLastAdvancingRequestId returns the high-water mark and whether any
// fulfillment has ever advanced the latest view.
func (k Keeper) GetLastAdvancingRequestId(ctx context.Context) (uint64, bool) {
	bz := k.getStore(ctx).Get(types.LastAdvancingRequestKey)
	if len(bz) != 8 {
		return 0, false
	}
	return binary.BigEndian.Uint64(bz), true
}

// SetLastAdvancingRequestId records a new high-water mark
func (k Keeper) SetLastAdvancingRequestId(ctx context.Context, requestId uint64) {
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, requestId)
	k.getStore(ctx).Set(types.LastAdvancingRequestKey, bz)
}
