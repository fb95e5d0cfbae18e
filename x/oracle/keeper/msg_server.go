package keeper

import (
	"context"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/vichilotus/v3-dex-perpetual-contracts-sub000/x/oracle/types"
)

type msgServer struct {
	Keeper *Keeper
}

// NewMsgServerImpl returns an implementation of the MsgServer interface
func NewMsgServerImpl(keeper *Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

var _ types.MsgServer = msgServer{}

// RequestPrices creates a new pending price request for the caller
func (m msgServer) RequestPrices(goCtx context.Context, msg *types.MsgRequestPrices) (*types.MsgRequestPricesResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	sdkCtx := sdk.UnwrapSDKContext(goCtx)

	req, err := m.Keeper.CreateRequest(goCtx, msg.Creator, msg.Payload, msg.ExpiresAt)
	if err != nil {
		return nil, err
	}

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeRequestCreated,
			sdk.NewAttribute(types.AttributeKeyRequestId, fmt.Sprintf("%d", req.Id)),
			sdk.NewAttribute(types.AttributeKeyOwner, req.Owner),
			sdk.NewAttribute(types.AttributeKeyExpiresAt, fmt.Sprintf("%d", req.ExpiresAt)),
		),
	)

	return &types.MsgRequestPricesResponse{RequestId: req.Id}, nil
}

// FulfillRequest submits a signed price bundle against a pending request
func (m msgServer) FulfillRequest(goCtx context.Context, msg *types.MsgFulfillRequest) (*types.MsgFulfillRequestResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	sdkCtx := sdk.UnwrapSDKContext(goCtx)

	if !m.Keeper.IsController(goCtx, msg.Controller) {
		return nil, types.ErrNotController.Wrapf("%s", msg.Controller)
	}

	result, err := m.Keeper.FulfillRequest(goCtx, msg.RequestId, msg.Controller, msg.Submissions)
	if err != nil {
		return nil, err
	}

	switch result.Outcome {
	case types.OutcomeSkipped:
		// Already resolved: duplicate relay submissions succeed silently.

	case types.OutcomeRejected:
		sdkCtx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypeFulfillmentRejected,
				sdk.NewAttribute(types.AttributeKeyRequestId, fmt.Sprintf("%d", msg.RequestId)),
				sdk.NewAttribute(types.AttributeKeyController, msg.Controller),
				sdk.NewAttribute(types.AttributeKeyReason, result.Reason),
			),
		)

	case types.OutcomeFulfilled:
		for _, point := range result.Prices {
			feed, _ := m.Keeper.GetPriceFeed(goCtx, point.AssetIndex)
			sdkCtx.EventManager().EmitEvent(
				sdk.NewEvent(
					types.EventTypePriceUpdated,
					sdk.NewAttribute(types.AttributeKeyAssetIndex, fmt.Sprintf("%d", point.AssetIndex)),
					sdk.NewAttribute(types.AttributeKeyRound, fmt.Sprintf("%d", feed.Round)),
					sdk.NewAttribute(types.AttributeKeyPrice, fmt.Sprintf("%d", point.Price)),
					sdk.NewAttribute(types.AttributeKeyLatest, fmt.Sprintf("%t", result.AdvancedLatest)),
				),
			)
		}
		sdkCtx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypeRequestFulfilled,
				sdk.NewAttribute(types.AttributeKeyRequestId, fmt.Sprintf("%d", msg.RequestId)),
				sdk.NewAttribute(types.AttributeKeyController, msg.Controller),
				sdk.NewAttribute(types.AttributeKeyNumSigners, fmt.Sprintf("%d", len(msg.Submissions))),
			),
		)
		if result.Fee.IsPositive() {
			sdkCtx.EventManager().EmitEvent(
				sdk.NewEvent(
					types.EventTypeFeeSettled,
					sdk.NewAttribute(types.AttributeKeyRequestId, fmt.Sprintf("%d", msg.RequestId)),
					sdk.NewAttribute(types.AttributeKeyController, msg.Controller),
					sdk.NewAttribute(types.AttributeKeyFeeAmount, result.Fee.String()),
				),
			)
		}
	}

	return &types.MsgFulfillRequestResponse{Outcome: result.Outcome, Reason: result.Reason}, nil
}

// CancelRequest closes a pending request on behalf of its owner
func (m msgServer) CancelRequest(goCtx context.Context, msg *types.MsgCancelRequest) (*types.MsgCancelRequestResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	sdkCtx := sdk.UnwrapSDKContext(goCtx)

	req, err := m.Keeper.CancelRequest(goCtx, msg.RequestId, msg.Creator)
	if err != nil {
		return nil, err
	}

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeRequestCancelled,
			sdk.NewAttribute(types.AttributeKeyRequestId, fmt.Sprintf("%d", req.Id)),
			sdk.NewAttribute(types.AttributeKeyOwner, req.Owner),
		),
	)

	return &types.MsgCancelRequestResponse{}, nil
}

// RefundRequest closes a pending request administratively, typically after
// its expiry blocked fulfillment
func (m msgServer) RefundRequest(goCtx context.Context, msg *types.MsgRefundRequest) (*types.MsgRefundRequestResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	sdkCtx := sdk.UnwrapSDKContext(goCtx)

	req, err := m.Keeper.RefundRequest(goCtx, msg.RequestId, msg.Sender)
	if err != nil {
		return nil, err
	}

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeRequestRefunded,
			sdk.NewAttribute(types.AttributeKeyRequestId, fmt.Sprintf("%d", req.Id)),
			sdk.NewAttribute(types.AttributeKeyOwner, req.Owner),
		),
	)

	return &types.MsgRefundRequestResponse{}, nil
}

// SetSigner toggles a signer in the registry
func (m msgServer) SetSigner(goCtx context.Context, msg *types.MsgSetSigner) (*types.MsgSetSignerResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	sdkCtx := sdk.UnwrapSDKContext(goCtx)

	if !m.Keeper.IsAdministrator(goCtx, msg.Admin) {
		return nil, types.ErrUnauthorized.Wrapf("%s is not an administrator", msg.Admin)
	}

	if err := m.Keeper.SetSigner(goCtx, types.Signer{Address: msg.Signer, Active: msg.Active}); err != nil {
		return nil, err
	}

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeSignerUpdated,
			sdk.NewAttribute(types.AttributeKeySigner, msg.Signer),
			sdk.NewAttribute(types.AttributeKeyActive, fmt.Sprintf("%t", msg.Active)),
		),
	)

	return &types.MsgSetSignerResponse{}, nil
}

// SetQuorum changes the fulfillment signature threshold
func (m msgServer) SetQuorum(goCtx context.Context, msg *types.MsgSetQuorum) (*types.MsgSetQuorumResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	sdkCtx := sdk.UnwrapSDKContext(goCtx)

	if !m.Keeper.IsAdministrator(goCtx, msg.Admin) {
		return nil, types.ErrUnauthorized.Wrapf("%s is not an administrator", msg.Admin)
	}

	if err := m.Keeper.SetQuorum(goCtx, msg.Quorum); err != nil {
		return nil, err
	}

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeQuorumUpdated,
			sdk.NewAttribute(types.AttributeKeyQuorum, fmt.Sprintf("%d", msg.Quorum)),
		),
	)

	return &types.MsgSetQuorumResponse{}, nil
}

// SetController toggles a relay on the controller allow-list
func (m msgServer) SetController(goCtx context.Context, msg *types.MsgSetController) (*types.MsgSetControllerResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	sdkCtx := sdk.UnwrapSDKContext(goCtx)

	if !m.Keeper.IsAdministrator(goCtx, msg.Admin) {
		return nil, types.ErrUnauthorized.Wrapf("%s is not an administrator", msg.Admin)
	}

	m.Keeper.SetController(goCtx, msg.Controller, msg.Enabled)

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeControllerUpdated,
			sdk.NewAttribute(types.AttributeKeyController, msg.Controller),
			sdk.NewAttribute(types.AttributeKeyActive, fmt.Sprintf("%t", msg.Enabled)),
		),
	)

	return &types.MsgSetControllerResponse{}, nil
}

// SetWhitelist toggles a consumer on the whitelist
func (m msgServer) SetWhitelist(goCtx context.Context, msg *types.MsgSetWhitelist) (*types.MsgSetWhitelistResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	sdkCtx := sdk.UnwrapSDKContext(goCtx)

	if !m.Keeper.IsAdministrator(goCtx, msg.Admin) {
		return nil, types.ErrUnauthorized.Wrapf("%s is not an administrator", msg.Admin)
	}

	m.Keeper.SetWhitelisted(goCtx, msg.Consumer, msg.Enabled)

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeWhitelistUpdated,
			sdk.NewAttribute(types.AttributeKeyOwner, msg.Consumer),
			sdk.NewAttribute(types.AttributeKeyActive, fmt.Sprintf("%t", msg.Enabled)),
		),
	)

	return &types.MsgSetWhitelistResponse{}, nil
}

// UpdateParams replaces the module parameters. Restricted to the module
// authority (governance), not module administrators.
func (m msgServer) UpdateParams(goCtx context.Context, msg *types.MsgUpdateParams) (*types.MsgUpdateParamsResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	sdkCtx := sdk.UnwrapSDKContext(goCtx)

	if msg.Authority != m.Keeper.GetAuthority() {
		return nil, types.ErrUnauthorized.Wrapf("expected authority %s, got %s", m.Keeper.GetAuthority(), msg.Authority)
	}

	if err := m.Keeper.SetParams(goCtx, msg.Params); err != nil {
		return nil, err
	}

	sdkCtx.EventManager().EmitEvent(sdk.NewEvent(types.EventTypeParamsUpdated))

	return &types.MsgUpdateParamsResponse{}, nil
}
