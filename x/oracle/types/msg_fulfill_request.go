package types

import (
	sdkerrors "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

var _ sdk.Msg = &MsgFulfillRequest{}

// MsgFulfillRequest submits a signed price bundle against a pending request.
// Any allow-listed controller may submit; whether the bundle is accepted is
// decided by the aggregation engine, not by who relayed it.
type MsgFulfillRequest struct {
	Controller  string             `json:"controller"`
	RequestId   uint64             `json:"request_id"`
	Submissions []SignedSubmission `json:"submissions"`
}

// NewMsgFulfillRequest creates a new MsgFulfillRequest instance
func NewMsgFulfillRequest(controller string, requestId uint64, submissions []SignedSubmission) *MsgFulfillRequest {
	return &MsgFulfillRequest{
		Controller:  controller,
		RequestId:   requestId,
		Submissions: submissions,
	}
}

// Route implements the sdk.Msg interface
func (msg MsgFulfillRequest) Route() string {
	return RouterKey
}

// Type implements the sdk.Msg interface
func (msg MsgFulfillRequest) Type() string {
	return "fulfill_request"
}

// GetSigners implements the sdk.Msg interface
func (msg MsgFulfillRequest) GetSigners() []sdk.AccAddress {
	controller, err := sdk.AccAddressFromBech32(msg.Controller)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{controller}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgFulfillRequest) GetSignBytes() []byte {
	return sdk.MustSortJSON(mustMarshalJSON(&msg))
}

// ValidateBasic implements the sdk.Msg interface.
//
// Only structural problems the relay itself caused are rejected here (and so
// hard-fail the call): empty bundles, malformed signatures or vectors. Whether
// the signatures check out against the registry is the aggregation engine's
// business and soft-fails instead.
func (msg MsgFulfillRequest) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Controller); err != nil {
		return sdkerrors.Wrapf(ErrUnauthorized, "invalid controller address: %s", err)
	}

	if len(msg.Submissions) == 0 {
		return ErrEmptyBundle
	}

	for i, sub := range msg.Submissions {
		if _, err := NormalizeSignerAddress(sub.Signer); err != nil {
			return sdkerrors.Wrapf(ErrInvalidSigner, "submission %d: %s", i, err)
		}
		if len(sub.Signature) != SignatureLength {
			return sdkerrors.Wrapf(ErrInvalidSignature, "submission %d: signature must be %d bytes", i, SignatureLength)
		}
		if _, err := DecodePriceVector(sub.PriceVector); err != nil {
			return sdkerrors.Wrapf(ErrInvalidPriceVector, "submission %d: %s", i, err)
		}
	}

	return nil
}
