package types

import (
	sdkerrors "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

var (
	_ sdk.Msg = &MsgSetSigner{}
	_ sdk.Msg = &MsgSetQuorum{}
	_ sdk.Msg = &MsgSetController{}
	_ sdk.Msg = &MsgSetWhitelist{}
	_ sdk.Msg = &MsgUpdateParams{}
)

// MsgSetSigner toggles a signer in the registry. Idempotent: setting an
// already-active signer active again is a no-op.
type MsgSetSigner struct {
	Admin  string `json:"admin"`
	Signer string `json:"signer"`
	Active bool   `json:"active"`
}

// NewMsgSetSigner creates a new MsgSetSigner instance
func NewMsgSetSigner(admin, signer string, active bool) *MsgSetSigner {
	return &MsgSetSigner{Admin: admin, Signer: signer, Active: active}
}

// Route implements the sdk.Msg interface
func (msg MsgSetSigner) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (msg MsgSetSigner) Type() string { return "set_signer" }

// GetSigners implements the sdk.Msg interface
func (msg MsgSetSigner) GetSigners() []sdk.AccAddress {
	admin, err := sdk.AccAddressFromBech32(msg.Admin)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{admin}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgSetSigner) GetSignBytes() []byte {
	return sdk.MustSortJSON(mustMarshalJSON(&msg))
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgSetSigner) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Admin); err != nil {
		return sdkerrors.Wrapf(ErrUnauthorized, "invalid admin address: %s", err)
	}
	if _, err := NormalizeSignerAddress(msg.Signer); err != nil {
		return sdkerrors.Wrap(ErrInvalidSigner, err.Error())
	}
	return nil
}

// MsgSetQuorum changes the fulfillment signature threshold
type MsgSetQuorum struct {
	Admin  string `json:"admin"`
	Quorum uint32 `json:"quorum"`
}

// NewMsgSetQuorum creates a new MsgSetQuorum instance
func NewMsgSetQuorum(admin string, quorum uint32) *MsgSetQuorum {
	return &MsgSetQuorum{Admin: admin, Quorum: quorum}
}

// Route implements the sdk.Msg interface
func (msg MsgSetQuorum) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (msg MsgSetQuorum) Type() string { return "set_quorum" }

// GetSigners implements the sdk.Msg interface
func (msg MsgSetQuorum) GetSigners() []sdk.AccAddress {
	admin, err := sdk.AccAddressFromBech32(msg.Admin)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{admin}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgSetQuorum) GetSignBytes() []byte {
	return sdk.MustSortJSON(mustMarshalJSON(&msg))
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgSetQuorum) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Admin); err != nil {
		return sdkerrors.Wrapf(ErrUnauthorized, "invalid admin address: %s", err)
	}
	if msg.Quorum == 0 {
		return sdkerrors.Wrap(ErrInvalidQuorum, "quorum must be positive")
	}
	return nil
}

// MsgSetController toggles a relay on the controller allow-list
type MsgSetController struct {
	Admin      string `json:"admin"`
	Controller string `json:"controller"`
	Enabled    bool   `json:"enabled"`
}

// NewMsgSetController creates a new MsgSetController instance
func NewMsgSetController(admin, controller string, enabled bool) *MsgSetController {
	return &MsgSetController{Admin: admin, Controller: controller, Enabled: enabled}
}

// Route implements the sdk.Msg interface
func (msg MsgSetController) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (msg MsgSetController) Type() string { return "set_controller" }

// GetSigners implements the sdk.Msg interface
func (msg MsgSetController) GetSigners() []sdk.AccAddress {
	admin, err := sdk.AccAddressFromBech32(msg.Admin)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{admin}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgSetController) GetSignBytes() []byte {
	return sdk.MustSortJSON(mustMarshalJSON(&msg))
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgSetController) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Admin); err != nil {
		return sdkerrors.Wrapf(ErrUnauthorized, "invalid admin address: %s", err)
	}
	if _, err := sdk.AccAddressFromBech32(msg.Controller); err != nil {
		return sdkerrors.Wrapf(ErrNotController, "invalid controller address: %s", err)
	}
	return nil
}

// MsgSetWhitelist toggles a consumer on the whitelist
type MsgSetWhitelist struct {
	Admin    string `json:"admin"`
	Consumer string `json:"consumer"`
	Enabled  bool   `json:"enabled"`
}

// NewMsgSetWhitelist creates a new MsgSetWhitelist instance
func NewMsgSetWhitelist(admin, consumer string, enabled bool) *MsgSetWhitelist {
	return &MsgSetWhitelist{Admin: admin, Consumer: consumer, Enabled: enabled}
}

// Route implements the sdk.Msg interface
func (msg MsgSetWhitelist) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (msg MsgSetWhitelist) Type() string { return "set_whitelist" }

// GetSigners implements the sdk.Msg interface
func (msg MsgSetWhitelist) GetSigners() []sdk.AccAddress {
	admin, err := sdk.AccAddressFromBech32(msg.Admin)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{admin}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgSetWhitelist) GetSignBytes() []byte {
	return sdk.MustSortJSON(mustMarshalJSON(&msg))
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgSetWhitelist) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Admin); err != nil {
		return sdkerrors.Wrapf(ErrUnauthorized, "invalid admin address: %s", err)
	}
	if _, err := sdk.AccAddressFromBech32(msg.Consumer); err != nil {
		return sdkerrors.Wrapf(ErrNotWhitelisted, "invalid consumer address: %s", err)
	}
	return nil
}

// MsgUpdateParams replaces the module parameters (governance only)
type MsgUpdateParams struct {
	Authority string `json:"authority"`
	Params    Params `json:"params"`
}

// NewMsgUpdateParams creates a new MsgUpdateParams instance
func NewMsgUpdateParams(authority string, params Params) *MsgUpdateParams {
	return &MsgUpdateParams{Authority: authority, Params: params}
}

// Route implements the sdk.Msg interface
func (msg MsgUpdateParams) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (msg MsgUpdateParams) Type() string { return "update_params" }

// GetSigners implements the sdk.Msg interface
func (msg MsgUpdateParams) GetSigners() []sdk.AccAddress {
	authority, err := sdk.AccAddressFromBech32(msg.Authority)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{authority}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgUpdateParams) GetSignBytes() []byte {
	return sdk.MustSortJSON(mustMarshalJSON(&msg))
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgUpdateParams) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return sdkerrors.Wrapf(ErrUnauthorized, "invalid authority address: %s", err)
	}
	if err := msg.Params.Validate(); err != nil {
		return sdkerrors.Wrap(ErrInvalidParams, err.Error())
	}
	return nil
}
