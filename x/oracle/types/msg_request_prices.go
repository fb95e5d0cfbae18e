package types

import (
	sdkerrors "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

var _ sdk.Msg = &MsgRequestPrices{}

// MsgRequestPrices asks the oracle to refresh asset prices. The payload is
// opaque consumer bookkeeping, passed through unopened.
type MsgRequestPrices struct {
	Creator   string `json:"creator"`
	Payload   []byte `json:"payload,omitempty"`
	ExpiresAt int64  `json:"expires_at,omitempty"`
}

// NewMsgRequestPrices creates a new MsgRequestPrices instance
func NewMsgRequestPrices(creator string, payload []byte, expiresAt int64) *MsgRequestPrices {
	return &MsgRequestPrices{
		Creator:   creator,
		Payload:   payload,
		ExpiresAt: expiresAt,
	}
}

// Route implements the sdk.Msg interface
func (msg MsgRequestPrices) Route() string {
	return RouterKey
}

// Type implements the sdk.Msg interface
func (msg MsgRequestPrices) Type() string {
	return "request_prices"
}

// GetSigners implements the sdk.Msg interface
func (msg MsgRequestPrices) GetSigners() []sdk.AccAddress {
	creator, err := sdk.AccAddressFromBech32(msg.Creator)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{creator}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgRequestPrices) GetSignBytes() []byte {
	return sdk.MustSortJSON(mustMarshalJSON(&msg))
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgRequestPrices) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Creator); err != nil {
		return sdkerrors.Wrapf(ErrUnauthorized, "invalid creator address: %s", err)
	}

	if msg.ExpiresAt < 0 {
		return sdkerrors.Wrap(ErrInvalidExpiry, "expiry must not be negative")
	}

	return nil
}
