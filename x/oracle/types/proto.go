package types

import (
	"encoding/json"
)

// Hand-written gogoproto plumbing. The module's types are plain Go structs
// serialized as JSON; these methods satisfy the proto.Message contract the SDK
// codec and msg routing expect without generated code.

func mustMarshalJSON(v interface{}) []byte {
	bz, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return bz
}

func jsonString(v interface{}) string {
	return string(mustMarshalJSON(v))
}

func (m *MsgRequestPrices) Reset()      { *m = MsgRequestPrices{} }
func (m *MsgRequestPrices) String() string { return jsonString(m) }
func (*MsgRequestPrices) ProtoMessage() {}

func (m *MsgRequestPricesResponse) Reset()      { *m = MsgRequestPricesResponse{} }
func (m *MsgRequestPricesResponse) String() string { return jsonString(m) }
func (*MsgRequestPricesResponse) ProtoMessage() {}

func (m *MsgFulfillRequest) Reset()      { *m = MsgFulfillRequest{} }
func (m *MsgFulfillRequest) String() string { return jsonString(m) }
func (*MsgFulfillRequest) ProtoMessage() {}

func (m *MsgFulfillRequestResponse) Reset()      { *m = MsgFulfillRequestResponse{} }
func (m *MsgFulfillRequestResponse) String() string { return jsonString(m) }
func (*MsgFulfillRequestResponse) ProtoMessage() {}

func (m *MsgCancelRequest) Reset()      { *m = MsgCancelRequest{} }
func (m *MsgCancelRequest) String() string { return jsonString(m) }
func (*MsgCancelRequest) ProtoMessage() {}

func (m *MsgCancelRequestResponse) Reset()      { *m = MsgCancelRequestResponse{} }
func (m *MsgCancelRequestResponse) String() string { return jsonString(m) }
func (*MsgCancelRequestResponse) ProtoMessage() {}

func (m *MsgRefundRequest) Reset()      { *m = MsgRefundRequest{} }
func (m *MsgRefundRequest) String() string { return jsonString(m) }
func (*MsgRefundRequest) ProtoMessage() {}

func (m *MsgRefundRequestResponse) Reset()      { *m = MsgRefundRequestResponse{} }
func (m *MsgRefundRequestResponse) String() string { return jsonString(m) }
func (*MsgRefundRequestResponse) ProtoMessage() {}

func (m *MsgSetSigner) Reset()      { *m = MsgSetSigner{} }
func (m *MsgSetSigner) String() string { return jsonString(m) }
func (*MsgSetSigner) ProtoMessage() {}

func (m *MsgSetSignerResponse) Reset()      { *m = MsgSetSignerResponse{} }
func (m *MsgSetSignerResponse) String() string { return jsonString(m) }
func (*MsgSetSignerResponse) ProtoMessage() {}

func (m *MsgSetQuorum) Reset()      { *m = MsgSetQuorum{} }
func (m *MsgSetQuorum) String() string { return jsonString(m) }
func (*MsgSetQuorum) ProtoMessage() {}

func (m *MsgSetQuorumResponse) Reset()      { *m = MsgSetQuorumResponse{} }
func (m *MsgSetQuorumResponse) String() string { return jsonString(m) }
func (*MsgSetQuorumResponse) ProtoMessage() {}

func (m *MsgSetController) Reset()      { *m = MsgSetController{} }
func (m *MsgSetController) String() string { return jsonString(m) }
func (*MsgSetController) ProtoMessage() {}

func (m *MsgSetControllerResponse) Reset()      { *m = MsgSetControllerResponse{} }
func (m *MsgSetControllerResponse) String() string { return jsonString(m) }
func (*MsgSetControllerResponse) ProtoMessage() {}

func (m *MsgSetWhitelist) Reset()      { *m = MsgSetWhitelist{} }
func (m *MsgSetWhitelist) String() string { return jsonString(m) }
func (*MsgSetWhitelist) ProtoMessage() {}

func (m *MsgSetWhitelistResponse) Reset()      { *m = MsgSetWhitelistResponse{} }
func (m *MsgSetWhitelistResponse) String() string { return jsonString(m) }
func (*MsgSetWhitelistResponse) ProtoMessage() {}

func (m *MsgUpdateParams) Reset()      { *m = MsgUpdateParams{} }
func (m *MsgUpdateParams) String() string { return jsonString(m) }
func (*MsgUpdateParams) ProtoMessage() {}

func (m *MsgUpdateParamsResponse) Reset()      { *m = MsgUpdateParamsResponse{} }
func (m *MsgUpdateParamsResponse) String() string { return jsonString(m) }
func (*MsgUpdateParamsResponse) ProtoMessage() {}

func (m *QueryParamsRequest) Reset()      { *m = QueryParamsRequest{} }
func (m *QueryParamsRequest) String() string { return jsonString(m) }
func (*QueryParamsRequest) ProtoMessage() {}

func (m *QueryParamsResponse) Reset()      { *m = QueryParamsResponse{} }
func (m *QueryParamsResponse) String() string { return jsonString(m) }
func (*QueryParamsResponse) ProtoMessage() {}

func (m *QueryRequestRequest) Reset()      { *m = QueryRequestRequest{} }
func (m *QueryRequestRequest) String() string { return jsonString(m) }
func (*QueryRequestRequest) ProtoMessage() {}

func (m *QueryRequestResponse) Reset()      { *m = QueryRequestResponse{} }
func (m *QueryRequestResponse) String() string { return jsonString(m) }
func (*QueryRequestResponse) ProtoMessage() {}

func (m *QueryRequestsRequest) Reset()      { *m = QueryRequestsRequest{} }
func (m *QueryRequestsRequest) String() string { return jsonString(m) }
func (*QueryRequestsRequest) ProtoMessage() {}

func (m *QueryRequestsResponse) Reset()      { *m = QueryRequestsResponse{} }
func (m *QueryRequestsResponse) String() string { return jsonString(m) }
func (*QueryRequestsResponse) ProtoMessage() {}

func (m *QueryPriceRequest) Reset()      { *m = QueryPriceRequest{} }
func (m *QueryPriceRequest) String() string { return jsonString(m) }
func (*QueryPriceRequest) ProtoMessage() {}

func (m *QueryPriceResponse) Reset()      { *m = QueryPriceResponse{} }
func (m *QueryPriceResponse) String() string { return jsonString(m) }
func (*QueryPriceResponse) ProtoMessage() {}

func (m *QueryPricesRequest) Reset()      { *m = QueryPricesRequest{} }
func (m *QueryPricesRequest) String() string { return jsonString(m) }
func (*QueryPricesRequest) ProtoMessage() {}

func (m *QueryPricesResponse) Reset()      { *m = QueryPricesResponse{} }
func (m *QueryPricesResponse) String() string { return jsonString(m) }
func (*QueryPricesResponse) ProtoMessage() {}

func (m *QuerySignersRequest) Reset()      { *m = QuerySignersRequest{} }
func (m *QuerySignersRequest) String() string { return jsonString(m) }
func (*QuerySignersRequest) ProtoMessage() {}

func (m *QuerySignersResponse) Reset()      { *m = QuerySignersResponse{} }
func (m *QuerySignersResponse) String() string { return jsonString(m) }
func (*QuerySignersResponse) ProtoMessage() {}

func (m *QueryControllersRequest) Reset()      { *m = QueryControllersRequest{} }
func (m *QueryControllersRequest) String() string { return jsonString(m) }
func (*QueryControllersRequest) ProtoMessage() {}

func (m *QueryControllersResponse) Reset()      { *m = QueryControllersResponse{} }
func (m *QueryControllersResponse) String() string { return jsonString(m) }
func (*QueryControllersResponse) ProtoMessage() {}

func (m *GenesisState) Reset()      { *m = GenesisState{} }
func (m *GenesisState) String() string { return jsonString(m) }
func (*GenesisState) ProtoMessage() {}

func (m *Params) Reset()      { *m = Params{} }
func (m *Params) String() string { return jsonString(m) }
func (*Params) ProtoMessage() {}
