package types

import (
	"fmt"
)

// GenesisState is the full exported state of the oracle module
type GenesisState struct {
	Params        Params       `json:"params"`
	Requests      []Request    `json:"requests"`
	NextRequestId uint64       `json:"next_request_id"`
	PriceFeeds    []PriceFeed  `json:"price_feeds"`
	Signers       []Signer     `json:"signers"`
	Quorum        uint32       `json:"quorum"`
	Controllers   []string     `json:"controllers"`
	Whitelisted   []string     `json:"whitelisted"`
	Admins        []string     `json:"admins"`
	// HasAdvanced distinguishes "no fulfillment has ever advanced the latest
	// view" from a watermark of id zero.
	HasAdvanced            bool   `json:"has_advanced"`
	LastAdvancingRequestId uint64 `json:"last_advancing_request_id"`
}

// DefaultGenesis returns the default genesis state for the oracle module
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Params:        DefaultParams(),
		Requests:      []Request{},
		NextRequestId: 0,
		PriceFeeds:    []PriceFeed{},
		Signers:       []Signer{},
		Quorum:        1,
		Controllers:   []string{},
		Whitelisted:   []string{},
		Admins:        []string{},
	}
}

// Validate ensures the genesis state is well-formed
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return fmt.Errorf("invalid params: %w", err)
	}

	seen := make(map[uint64]bool, len(gs.Requests))
	for _, req := range gs.Requests {
		if req.Id >= gs.NextRequestId {
			return fmt.Errorf("request id %d is not below next request id %d", req.Id, gs.NextRequestId)
		}
		if seen[req.Id] {
			return fmt.Errorf("duplicate request id %d", req.Id)
		}
		seen[req.Id] = true
		if !req.Status.Valid() {
			return fmt.Errorf("request %d has invalid status %d", req.Id, req.Status)
		}
		if req.Owner == "" {
			return fmt.Errorf("request %d has empty owner", req.Id)
		}
	}

	active := uint32(0)
	seenSigners := make(map[string]bool, len(gs.Signers))
	for _, signer := range gs.Signers {
		addr, err := NormalizeSignerAddress(signer.Address)
		if err != nil {
			return err
		}
		if seenSigners[addr] {
			return fmt.Errorf("duplicate signer %s", addr)
		}
		seenSigners[addr] = true
		if signer.Active {
			active++
		}
	}

	if gs.Quorum == 0 {
		return fmt.Errorf("quorum must be positive")
	}
	if gs.Quorum > active && len(gs.Signers) > 0 {
		return fmt.Errorf("quorum %d exceeds %d active signers", gs.Quorum, active)
	}

	seenFeeds := make(map[uint32]bool, len(gs.PriceFeeds))
	for _, feed := range gs.PriceFeeds {
		if feed.AssetIndex > MaxAssetIndex {
			return fmt.Errorf("asset index %d exceeds wire maximum", feed.AssetIndex)
		}
		if seenFeeds[feed.AssetIndex] {
			return fmt.Errorf("duplicate price feed for asset %d", feed.AssetIndex)
		}
		seenFeeds[feed.AssetIndex] = true
	}

	if gs.HasAdvanced && gs.LastAdvancingRequestId >= gs.NextRequestId {
		return fmt.Errorf("watermark %d is not below next request id %d", gs.LastAdvancingRequestId, gs.NextRequestId)
	}

	return nil
}
