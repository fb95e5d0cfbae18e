package types

import (
	"context"
)

// MsgServer defines the message server interface
type MsgServer interface {
	RequestPrices(context.Context, *MsgRequestPrices) (*MsgRequestPricesResponse, error)
	FulfillRequest(context.Context, *MsgFulfillRequest) (*MsgFulfillRequestResponse, error)
	CancelRequest(context.Context, *MsgCancelRequest) (*MsgCancelRequestResponse, error)
	RefundRequest(context.Context, *MsgRefundRequest) (*MsgRefundRequestResponse, error)
	SetSigner(context.Context, *MsgSetSigner) (*MsgSetSignerResponse, error)
	SetQuorum(context.Context, *MsgSetQuorum) (*MsgSetQuorumResponse, error)
	SetController(context.Context, *MsgSetController) (*MsgSetControllerResponse, error)
	SetWhitelist(context.Context, *MsgSetWhitelist) (*MsgSetWhitelistResponse, error)
	UpdateParams(context.Context, *MsgUpdateParams) (*MsgUpdateParamsResponse, error)
}

// FulfillOutcome is the three-way result of a fulfillment attempt. Hard
// failures (unknown id, expired request) are ordinary errors instead; callers
// therefore always face all three non-error paths explicitly.
type FulfillOutcome uint8

const (
	// OutcomeFulfilled: the bundle validated, prices were published, the
	// request is settled and the relay paid.
	OutcomeFulfilled FulfillOutcome = iota
	// OutcomeSkipped: the request was already resolved; duplicate relay
	// submissions succeed silently with no state change.
	OutcomeSkipped
	// OutcomeRejected: bundle validation failed; the request stays pending and
	// the reason names the first violated rule.
	OutcomeRejected
)

// String implements fmt.Stringer
func (o FulfillOutcome) String() string {
	switch o {
	case OutcomeFulfilled:
		return "fulfilled"
	case OutcomeSkipped:
		return "skipped"
	case OutcomeRejected:
		return "rejected"
	default:
		return "unknown"
	}
}

// Response types

// MsgRequestPricesResponse returns the allocated request id
type MsgRequestPricesResponse struct {
	RequestId uint64 `json:"request_id"`
}

// MsgFulfillRequestResponse reports how the fulfillment attempt resolved
type MsgFulfillRequestResponse struct {
	Outcome FulfillOutcome `json:"outcome"`
	// Reason is set only when Outcome is OutcomeRejected
	Reason string `json:"reason,omitempty"`
}

// MsgCancelRequestResponse defines the response for CancelRequest
type MsgCancelRequestResponse struct{}

// MsgRefundRequestResponse defines the response for RefundRequest
type MsgRefundRequestResponse struct{}

// MsgSetSignerResponse defines the response for SetSigner
type MsgSetSignerResponse struct{}

// MsgSetQuorumResponse defines the response for SetQuorum
type MsgSetQuorumResponse struct{}

// MsgSetControllerResponse defines the response for SetController
type MsgSetControllerResponse struct{}

// MsgSetWhitelistResponse defines the response for SetWhitelist
type MsgSetWhitelistResponse struct{}

// MsgUpdateParamsResponse defines the response for UpdateParams
type MsgUpdateParamsResponse struct{}

// Placeholder for protobuf service descriptor
var _Msg_serviceDesc = struct{}{}
