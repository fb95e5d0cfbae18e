package types

import (
	"context"

	"github.com/cosmos/cosmos-sdk/types/query"
)

// QueryServer defines the query server interface
type QueryServer interface {
	Params(context.Context, *QueryParamsRequest) (*QueryParamsResponse, error)
	Request(context.Context, *QueryRequestRequest) (*QueryRequestResponse, error)
	Requests(context.Context, *QueryRequestsRequest) (*QueryRequestsResponse, error)
	Price(context.Context, *QueryPriceRequest) (*QueryPriceResponse, error)
	Prices(context.Context, *QueryPricesRequest) (*QueryPricesResponse, error)
	Signers(context.Context, *QuerySignersRequest) (*QuerySignersResponse, error)
	Controllers(context.Context, *QueryControllersRequest) (*QueryControllersResponse, error)
}

// QueryParamsRequest is the request for the Params query
type QueryParamsRequest struct{}

// QueryParamsResponse is the response for the Params query
type QueryParamsResponse struct {
	Params Params `json:"params"`
}

// QueryRequestRequest asks for a single request by id
type QueryRequestRequest struct {
	RequestId uint64 `json:"request_id"`
}

// QueryRequestResponse carries the full request record for status polling
type QueryRequestResponse struct {
	Request Request `json:"request"`
}

// QueryRequestsRequest lists requests, optionally filtered by status name
// ("pending", "fulfilled", "cancelled", "refunded"; empty means any)
type QueryRequestsRequest struct {
	Status     string             `json:"status,omitempty"`
	Pagination *query.PageRequest `json:"pagination,omitempty"`
}

// QueryRequestsResponse is the response for the Requests query
type QueryRequestsResponse struct {
	Requests   []Request           `json:"requests"`
	Pagination *query.PageResponse `json:"pagination,omitempty"`
}

// QueryPriceRequest asks for the price record of one asset index
type QueryPriceRequest struct {
	AssetIndex uint32 `json:"asset_index"`
}

// QueryPriceResponse is the response for the Price query
type QueryPriceResponse struct {
	Feed PriceFeed `json:"feed"`
}

// QueryPricesRequest lists all published price feeds
type QueryPricesRequest struct {
	Pagination *query.PageRequest `json:"pagination,omitempty"`
}

// QueryPricesResponse is the response for the Prices query
type QueryPricesResponse struct {
	Feeds      []PriceFeed         `json:"feeds"`
	Pagination *query.PageResponse `json:"pagination,omitempty"`
}

// QuerySignersRequest lists the signer registry and quorum
type QuerySignersRequest struct{}

// QuerySignersResponse is the response for the Signers query
type QuerySignersResponse struct {
	Signers []Signer `json:"signers"`
	Quorum  uint32   `json:"quorum"`
}

// QueryControllersRequest lists the relay allow-list
type QueryControllersRequest struct{}

// QueryControllersResponse is the response for the Controllers query
type QueryControllersResponse struct {
	Controllers []string `json:"controllers"`
}

// Placeholder for protobuf service descriptor
var _Query_serviceDesc = struct{}{}
