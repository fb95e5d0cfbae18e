package types

import (
	sdkerrors "cosmossdk.io/errors"
)

// Oracle module sentinel errors.
//
// These are the hard failures: they abort the enclosing call. Bundle
// validation problems are deliberately not errors; they surface as a
// FulfillmentRejected event while the request stays pending (see events.go).
var (
	// Request lifecycle errors
	ErrInsufficientEscrow = sdkerrors.Register(ModuleName, 2, "escrow balance below minimum fee balance")
	ErrRequestNotFound    = sdkerrors.Register(ModuleName, 3, "request not found")
	ErrRequestExpired     = sdkerrors.Register(ModuleName, 4, "request expired")
	ErrRequestNotPending  = sdkerrors.Register(ModuleName, 5, "request is not pending")
	ErrInvalidPayload     = sdkerrors.Register(ModuleName, 6, "invalid request payload")
	ErrInvalidExpiry      = sdkerrors.Register(ModuleName, 7, "invalid request expiry")

	// Signer registry errors
	ErrInvalidSigner        = sdkerrors.Register(ModuleName, 10, "invalid signer")
	ErrQuorumExceedsSigners = sdkerrors.Register(ModuleName, 11, "quorum exceeds active signers")
	ErrInvalidQuorum        = sdkerrors.Register(ModuleName, 12, "invalid quorum")

	// Bundle shape errors (caught before the aggregation engine runs)
	ErrInvalidSignature   = sdkerrors.Register(ModuleName, 20, "invalid submission signature")
	ErrInvalidPriceVector = sdkerrors.Register(ModuleName, 21, "invalid price vector")
	ErrEmptyBundle        = sdkerrors.Register(ModuleName, 22, "fulfillment bundle is empty")
	ErrBundleTooLarge     = sdkerrors.Register(ModuleName, 23, "fulfillment bundle exceeds submission cap")

	// Access control errors
	ErrUnauthorized   = sdkerrors.Register(ModuleName, 30, "unauthorized")
	ErrNotController  = sdkerrors.Register(ModuleName, 31, "sender is not an allowed controller")
	ErrNotWhitelisted = sdkerrors.Register(ModuleName, 32, "consumer is not whitelisted")
	ErrNotContract    = sdkerrors.Register(ModuleName, 33, "caller is not a contract")

	// Price store errors
	ErrPriceNotFound = sdkerrors.Register(ModuleName, 40, "no price published for asset")

	// Parameter errors
	ErrInvalidParams = sdkerrors.Register(ModuleName, 50, "invalid params")
)
