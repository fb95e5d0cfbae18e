package keeper

import (
	"context"
	"encoding/json"
	"fmt"

	"cosmossdk.io/store/prefix"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	"github.com/cosmos/cosmos-sdk/types/query"

	"github.com/vichilotus/v3-dex-perpetual-contracts-sub000/x/oracle/types"
)

type queryServer struct {
	Keeper *Keeper
}

const (
	defaultPaginationLimit = 100
	maxPaginationLimit     = 1000
)

// NewQueryServerImpl returns an implementation of the oracle QueryServer interface
func NewQueryServerImpl(keeper *Keeper) types.QueryServer {
	return &queryServer{Keeper: keeper}
}

var _ types.QueryServer = queryServer{}

// Params returns the module parameters
func (qs queryServer) Params(goCtx context.Context, req *types.QueryParamsRequest) (*types.QueryParamsResponse, error) {
	if req == nil {
		return nil, sdkerrors.ErrInvalidRequest
	}

	return &types.QueryParamsResponse{
		Params: qs.Keeper.GetParams(goCtx),
	}, nil
}

// Request returns a single request record for status polling
func (qs queryServer) Request(goCtx context.Context, req *types.QueryRequestRequest) (*types.QueryRequestResponse, error) {
	if req == nil {
		return nil, sdkerrors.ErrInvalidRequest
	}

	record, found := qs.Keeper.GetRequest(goCtx, req.RequestId)
	if !found {
		return nil, types.ErrRequestNotFound.Wrapf("request %d", req.RequestId)
	}

	return &types.QueryRequestResponse{Request: record}, nil
}

// Requests lists requests, optionally filtered by status, with pagination
func (qs queryServer) Requests(goCtx context.Context, req *types.QueryRequestsRequest) (*types.QueryRequestsResponse, error) {
	if req == nil {
		return nil, sdkerrors.ErrInvalidRequest
	}

	ctx := sdk.UnwrapSDKContext(goCtx)

	var wantStatus *types.RequestStatus
	if req.Status != "" {
		status, err := types.RequestStatusFromString(req.Status)
		if err != nil {
			return nil, fmt.Errorf("Requests: %w", err)
		}
		wantStatus = &status
	}

	req.Pagination = capPagination(req.Pagination)
	ctx.GasMeter().ConsumeGas(req.Pagination.Limit*100, "paginated requests query")

	requests := make([]types.Request, 0, int(req.Pagination.Limit))
	requestStore := prefix.NewStore(qs.Keeper.getStore(goCtx), types.RequestKeyPrefix)

	pageRes, err := query.FilteredPaginate(requestStore, req.Pagination, func(key, value []byte, accumulate bool) (bool, error) {
		var record types.Request
		if err := json.Unmarshal(value, &record); err != nil {
			return false, fmt.Errorf("unmarshal request: %w", err)
		}
		if wantStatus != nil && record.Status != *wantStatus {
			return false, nil
		}
		if accumulate {
			requests = append(requests, record)
		}
		return true, nil
	})
	if err != nil {
		return nil, fmt.Errorf("Requests: paginate: %w", err)
	}

	return &types.QueryRequestsResponse{
		Requests:   requests,
		Pagination: pageRes,
	}, nil
}

// Price returns the price record for one asset index
func (qs queryServer) Price(goCtx context.Context, req *types.QueryPriceRequest) (*types.QueryPriceResponse, error) {
	if req == nil {
		return nil, sdkerrors.ErrInvalidRequest
	}

	feed, found := qs.Keeper.GetPriceFeed(goCtx, req.AssetIndex)
	if !found {
		return nil, types.ErrPriceNotFound.Wrapf("asset %d", req.AssetIndex)
	}

	return &types.QueryPriceResponse{Feed: feed}, nil
}

// Prices lists all published price records with pagination
func (qs queryServer) Prices(goCtx context.Context, req *types.QueryPricesRequest) (*types.QueryPricesResponse, error) {
	if req == nil {
		return nil, sdkerrors.ErrInvalidRequest
	}

	ctx := sdk.UnwrapSDKContext(goCtx)

	req.Pagination = capPagination(req.Pagination)
	ctx.GasMeter().ConsumeGas(req.Pagination.Limit*100, "paginated prices query")

	feeds := make([]types.PriceFeed, 0, int(req.Pagination.Limit))
	feedStore := prefix.NewStore(qs.Keeper.getStore(goCtx), types.PriceFeedKeyPrefix)

	pageRes, err := query.Paginate(feedStore, req.Pagination, func(key, value []byte) error {
		var feed types.PriceFeed
		if err := json.Unmarshal(value, &feed); err != nil {
			return fmt.Errorf("unmarshal price feed: %w", err)
		}
		feeds = append(feeds, feed)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("Prices: paginate: %w", err)
	}

	return &types.QueryPricesResponse{
		Feeds:      feeds,
		Pagination: pageRes,
	}, nil
}

// Signers returns the signer registry and the current quorum
func (qs queryServer) Signers(goCtx context.Context, req *types.QuerySignersRequest) (*types.QuerySignersResponse, error) {
	if req == nil {
		return nil, sdkerrors.ErrInvalidRequest
	}

	return &types.QuerySignersResponse{
		Signers: qs.Keeper.GetAllSigners(goCtx),
		Quorum:  qs.Keeper.GetQuorum(goCtx),
	}, nil
}

// Controllers returns the relay allow-list
func (qs queryServer) Controllers(goCtx context.Context, req *types.QueryControllersRequest) (*types.QueryControllersResponse, error) {
	if req == nil {
		return nil, sdkerrors.ErrInvalidRequest
	}

	return &types.QueryControllersResponse{
		Controllers: qs.Keeper.GetAllControllers(goCtx),
	}, nil
}

// capPagination enforces sane pagination defaults and caps to protect against
// unbounded queries.
func capPagination(page *query.PageRequest) *query.PageRequest {
	if page == nil {
		return &query.PageRequest{Limit: defaultPaginationLimit}
	}
	if page.Limit == 0 {
		page.Limit = defaultPaginationLimit
	}
	if page.Limit > maxPaginationLimit {
		page.Limit = maxPaginationLimit
	}
	return page
}
