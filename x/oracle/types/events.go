package types

// Event types for the oracle module
const (
	EventTypeRequestCreated       = "request_created"
	EventTypeRequestFulfilled     = "request_fulfilled"
	EventTypeFulfillmentRejected  = "fulfillment_rejected"
	EventTypeRequestCancelled     = "request_cancelled"
	EventTypeRequestRefunded      = "request_refunded"
	EventTypePriceUpdated         = "price_updated"
	EventTypeSignerUpdated        = "signer_updated"
	EventTypeQuorumUpdated        = "quorum_updated"
	EventTypeControllerUpdated    = "controller_updated"
	EventTypeWhitelistUpdated     = "whitelist_updated"
	EventTypeParamsUpdated        = "params_updated"
	EventTypeFeeSettled           = "fee_settled"

	AttributeKeyRequestId   = "request_id"
	AttributeKeyOwner       = "owner"
	AttributeKeyController  = "controller"
	AttributeKeyReason      = "reason"
	AttributeKeyAssetIndex  = "asset_index"
	AttributeKeyRound       = "round"
	AttributeKeyPrice       = "price"
	AttributeKeyLatest      = "advanced_latest"
	AttributeKeySigner      = "signer"
	AttributeKeyActive      = "active"
	AttributeKeyQuorum      = "quorum"
	AttributeKeyNumSigners  = "num_signers"
	AttributeKeyFeeAmount   = "fee_amount"
	AttributeKeyExpiresAt   = "expires_at"
)

// Soft-rejection reasons emitted with EventTypeFulfillmentRejected. A rejected
// bundle leaves the request pending and mutates no state; the reason names the
// first violated rule, in validation order.
const (
	RejectSignerMismatch  = "signer mismatch"
	RejectUnknownSigner   = "unknown signer"
	RejectSignerDuplicate = "signer duplicate"
	RejectUnderThreshold  = "signers under threshold"
	RejectPriceCount      = "prices count of signer is not equal"
)
