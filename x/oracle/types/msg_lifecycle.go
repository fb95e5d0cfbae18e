package types

import (
	sdkerrors "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

var (
	_ sdk.Msg = &MsgCancelRequest{}
	_ sdk.Msg = &MsgRefundRequest{}
)

// MsgCancelRequest closes a pending request. Only the request owner may
// cancel; no funds move because none were ever charged.
type MsgCancelRequest struct {
	Creator   string `json:"creator"`
	RequestId uint64 `json:"request_id"`
}

// NewMsgCancelRequest creates a new MsgCancelRequest instance
func NewMsgCancelRequest(creator string, requestId uint64) *MsgCancelRequest {
	return &MsgCancelRequest{Creator: creator, RequestId: requestId}
}

// Route implements the sdk.Msg interface
func (msg MsgCancelRequest) Route() string {
	return RouterKey
}

// Type implements the sdk.Msg interface
func (msg MsgCancelRequest) Type() string {
	return "cancel_request"
}

// GetSigners implements the sdk.Msg interface
func (msg MsgCancelRequest) GetSigners() []sdk.AccAddress {
	creator, err := sdk.AccAddressFromBech32(msg.Creator)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{creator}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgCancelRequest) GetSignBytes() []byte {
	return sdk.MustSortJSON(mustMarshalJSON(&msg))
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgCancelRequest) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Creator); err != nil {
		return sdkerrors.Wrapf(ErrUnauthorized, "invalid creator address: %s", err)
	}
	return nil
}

// MsgRefundRequest closes a pending request on behalf of its owner, typically
// after its expiry blocked fulfillment. Restricted to administrators and
// controllers.
type MsgRefundRequest struct {
	Sender    string `json:"sender"`
	RequestId uint64 `json:"request_id"`
}

// NewMsgRefundRequest creates a new MsgRefundRequest instance
func NewMsgRefundRequest(sender string, requestId uint64) *MsgRefundRequest {
	return &MsgRefundRequest{Sender: sender, RequestId: requestId}
}

// Route implements the sdk.Msg interface
func (msg MsgRefundRequest) Route() string {
	return RouterKey
}

// Type implements the sdk.Msg interface
func (msg MsgRefundRequest) Type() string {
	return "refund_request"
}

// GetSigners implements the sdk.Msg interface
func (msg MsgRefundRequest) GetSigners() []sdk.AccAddress {
	sender, err := sdk.AccAddressFromBech32(msg.Sender)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{sender}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgRefundRequest) GetSignBytes() []byte {
	return sdk.MustSortJSON(mustMarshalJSON(&msg))
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgRefundRequest) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Sender); err != nil {
		return sdkerrors.Wrapf(ErrUnauthorized, "invalid sender address: %s", err)
	}
	return nil
}
