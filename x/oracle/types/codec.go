package types

import (
	"github.com/cosmos/cosmos-sdk/codec"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	txtypes "github.com/cosmos/cosmos-sdk/types/tx"
)

// RegisterLegacyAminoCodec registers the necessary x/oracle interfaces and concrete types
// on the provided LegacyAmino codec. These types are used for Amino JSON serialization.
func RegisterLegacyAminoCodec(cdc *codec.LegacyAmino) {
	cdc.RegisterConcrete(&MsgRequestPrices{}, "oracle/MsgRequestPrices", nil)
	cdc.RegisterConcrete(&MsgFulfillRequest{}, "oracle/MsgFulfillRequest", nil)
	cdc.RegisterConcrete(&MsgCancelRequest{}, "oracle/MsgCancelRequest", nil)
	cdc.RegisterConcrete(&MsgRefundRequest{}, "oracle/MsgRefundRequest", nil)
	cdc.RegisterConcrete(&MsgSetSigner{}, "oracle/MsgSetSigner", nil)
	cdc.RegisterConcrete(&MsgSetQuorum{}, "oracle/MsgSetQuorum", nil)
	cdc.RegisterConcrete(&MsgSetController{}, "oracle/MsgSetController", nil)
	cdc.RegisterConcrete(&MsgSetWhitelist{}, "oracle/MsgSetWhitelist", nil)
	cdc.RegisterConcrete(&MsgUpdateParams{}, "oracle/MsgUpdateParams", nil)
}

// RegisterInterfaces registers the x/oracle interfaces types with the interface registry
func RegisterInterfaces(registry codectypes.InterfaceRegistry) {
	registry.RegisterImplementations((*sdk.Msg)(nil),
		&MsgRequestPrices{},
		&MsgFulfillRequest{},
		&MsgCancelRequest{},
		&MsgRefundRequest{},
		&MsgSetSigner{},
		&MsgSetQuorum{},
		&MsgSetController{},
		&MsgSetWhitelist{},
		&MsgUpdateParams{},
	)

	registry.RegisterImplementations((*txtypes.MsgResponse)(nil),
		&MsgRequestPricesResponse{},
		&MsgFulfillRequestResponse{},
		&MsgCancelRequestResponse{},
		&MsgRefundRequestResponse{},
		&MsgSetSignerResponse{},
		&MsgSetQuorumResponse{},
		&MsgSetControllerResponse{},
		&MsgSetWhitelistResponse{},
		&MsgUpdateParamsResponse{},
	)
}

var (
	amino = codec.NewLegacyAmino()
	// ModuleCdc references the global x/oracle module codec
	ModuleCdc = codec.NewProtoCodec(codectypes.NewInterfaceRegistry())
)

func init() {
	RegisterLegacyAminoCodec(amino)
	amino.Seal()
}
