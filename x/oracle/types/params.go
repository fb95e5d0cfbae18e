package types

import (
	"fmt"

	"cosmossdk.io/math"
)

const (
	// MaxFeeRateBps caps the relay fee proportion at 100%
	MaxFeeRateBps = 10_000

	// DefaultMaxPayloadBytes bounds the opaque consumer payload
	DefaultMaxPayloadBytes = 1024

	// DefaultMaxSubmissions bounds the per-bundle signer count
	DefaultMaxSubmissions = 64
)

// Params are the operator-configurable knobs of the oracle module
type Params struct {
	// MinFeeBalance is the escrow balance a consumer must hold at request
	// creation; nothing is charged at that point.
	MinFeeBalance math.Int `json:"min_fee_balance"`
	// FeeRateBps is the relay fee as basis points of MinFeeBalance, settled
	// through the escrow collaborator on successful fulfillment.
	FeeRateBps uint32 `json:"fee_rate_bps"`
	// WhitelistEnabled gates request creation on the consumer whitelist
	WhitelistEnabled bool `json:"whitelist_enabled"`
	// RequireContractCaller rejects requests from non-contract owners
	RequireContractCaller bool `json:"require_contract_caller"`
	// MaxPayloadBytes bounds the opaque request payload
	MaxPayloadBytes uint32 `json:"max_payload_bytes"`
	// MaxSubmissions bounds the number of signer submissions per bundle
	MaxSubmissions uint32 `json:"max_submissions"`
}

// DefaultParams returns default oracle parameters
func DefaultParams() Params {
	return Params{
		MinFeeBalance:         math.NewInt(1_000_000),
		FeeRateBps:            100, // 1%
		WhitelistEnabled:      false,
		RequireContractCaller: true,
		MaxPayloadBytes:       DefaultMaxPayloadBytes,
		MaxSubmissions:        DefaultMaxSubmissions,
	}
}

// Validate ensures the parameter set is well-formed
func (p Params) Validate() error {
	if p.MinFeeBalance.IsNil() || p.MinFeeBalance.IsNegative() {
		return fmt.Errorf("min fee balance must be non-negative")
	}
	if p.FeeRateBps > MaxFeeRateBps {
		return fmt.Errorf("fee rate must not exceed %d basis points", MaxFeeRateBps)
	}
	if p.MaxPayloadBytes == 0 {
		return fmt.Errorf("max payload bytes must be positive")
	}
	if p.MaxSubmissions == 0 {
		return fmt.Errorf("max submissions must be positive")
	}
	return nil
}

// FulfillmentFee returns the relay fee settled on a successful fulfillment
func (p Params) FulfillmentFee() math.Int {
	return p.MinFeeBalance.MulRaw(int64(p.FeeRateBps)).QuoRaw(MaxFeeRateBps)
}
