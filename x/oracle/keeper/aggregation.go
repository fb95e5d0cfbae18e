package keeper

import (
	sdkmath "cosmossdk.io/math"

	"github.com/vichilotus/v3-dex-perpetual-contracts-sub000/x/oracle/types"
)

// AggregationResult is the outcome of a validated fulfillment bundle.
type AggregationResult struct {
	// Prices is the per-asset mean vector, in submission order of the first
	// accepted signer.
	Prices []types.PricePoint
	// AdvanceLatest reports whether the latest view may move for this request.
	AdvanceLatest bool
	// NewMark is the high-water mark to store when AdvanceLatest is true.
	NewMark uint64
}

// ValidateAndAggregate runs the full submission pipeline for one request:
// signature recovery, signer registry checks, quorum, vector shape agreement,
// and per-asset arithmetic mean. A non-empty reason means the bundle is
// rejected and the request must stay pending; the returned result is nil in
// that case. Structural decode failures were already screened in
// ValidateBasic, so a vector that fails to decode here is treated as a shape
// disagreement rather than an error.
func ValidateAndAggregate(
	activeSigners map[string]bool,
	quorum uint32,
	requestTimestamp int64,
	subs []types.SignedSubmission,
	mark uint64,
	hasMark bool,
	requestId uint64,
) (*AggregationResult, string) {
	recovered := make([]string, len(subs))
	for i, sub := range subs {
		claimed, err := types.NormalizeSignerAddress(sub.Signer)
		if err != nil {
			return nil, types.RejectSignerMismatch
		}
		addr, err := types.RecoverSubmissionSigner(requestTimestamp, sub.PriceVector, sub.Signature)
		if err != nil || addr != claimed {
			return nil, types.RejectSignerMismatch
		}
		if !activeSigners[addr] {
			return nil, types.RejectUnknownSigner
		}
		recovered[i] = addr
	}

	seen := make(map[string]bool, len(subs))
	for _, addr := range recovered {
		if seen[addr] {
			return nil, types.RejectSignerDuplicate
		}
		seen[addr] = true
	}

	accepted := make([][]types.PricePoint, 0, len(subs))
	for _, sub := range subs {
		points, err := types.DecodePriceVector(sub.PriceVector)
		if err != nil {
			points = nil
		}
		accepted = append(accepted, points)
	}

	if uint32(len(accepted)) < quorum {
		return nil, types.RejectUnderThreshold
	}

	reference := accepted[0]
	byIndex := make([]map[uint32]uint64, len(accepted))
	for i, points := range accepted {
		m := make(map[uint32]uint64, len(points))
		for _, p := range points {
			m[p.AssetIndex] = p.Price
		}
		byIndex[i] = m
	}
	for i := range accepted {
		if !sameAssetSet(reference, byIndex[i], len(accepted[i])) {
			return nil, types.RejectPriceCount
		}
	}
	if len(reference) == 0 {
		return nil, types.RejectPriceCount
	}

	means := make([]types.PricePoint, len(reference))
	count := sdkmath.NewInt(int64(len(accepted)))
	for i, ref := range reference {
		sum := sdkmath.ZeroInt()
		for _, m := range byIndex {
			sum = sum.Add(sdkmath.NewIntFromUint64(m[ref.AssetIndex]))
		}
		means[i] = types.PricePoint{
			AssetIndex: ref.AssetIndex,
			Price:      sum.Quo(count).Uint64(),
		}
	}

	return &AggregationResult{
		Prices:        means,
		AdvanceLatest: !hasMark || requestId >= mark,
		NewMark:       requestId,
	}, ""
}

// sameAssetSet reports whether a decoded vector covers exactly the asset
// indices of the reference vector. Order does not matter; an intra-vector
// duplicate index shows up as a set smaller than the vector and fails here.
func sameAssetSet(want []types.PricePoint, have map[uint32]uint64, haveLen int) bool {
	if haveLen != len(want) || len(have) != len(want) {
		return false
	}
	for _, p := range want {
		if _, ok := have[p.AssetIndex]; !ok {
			return false
		}
	}
	return true
}
