package keeper

import (
	"context"
	"fmt"

	storeprefix "cosmossdk.io/store/prefix"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/query"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/medas-network/medas/x/marketplace/types"
)

var _ types.QueryServer = queryServer{}

const (
	defaultPaginationLimit = 100
	maxPaginationLimit     = 1000
)

type queryServer struct {
	*Keeper
}

// NewQueryServerImpl returns an implementation of the QueryServer interface
func NewQueryServerImpl(keeper *Keeper) types.QueryServer {
	return &queryServer{Keeper: keeper}
}

// sanitizePagination enforces default and max limits to prevent unbounded queries.
func sanitizePagination(p *query.PageRequest) *query.PageRequest {
	if p == nil {
		return &query.PageRequest{Limit: defaultPaginationLimit}
	}

	if p.Limit == 0 {
		p.Limit = defaultPaginationLimit
	}

	if p.Limit > maxPaginationLimit {
		p.Limit = maxPaginationLimit
	}

	return p
}

// Config returns the module configuration
func (qs queryServer) Config(goCtx context.Context, req *types.QueryConfigRequest) (*types.QueryConfigResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}

	ctx := sdk.UnwrapSDKContext(goCtx)
	return &types.QueryConfigResponse{Params: qs.Keeper.GetParams(ctx)}, nil
}

// Provider returns information about a specific provider
func (qs queryServer) Provider(goCtx context.Context, req *types.QueryProviderRequest) (*types.QueryProviderResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}

	if req.Address == "" {
		return nil, status.Error(codes.InvalidArgument, "provider address cannot be empty")
	}

	providerAddr, err := sdk.AccAddressFromBech32(req.Address)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, fmt.Sprintf("invalid provider address: %s", err))
	}

	ctx := sdk.UnwrapSDKContext(goCtx)

	provider, found := qs.Keeper.GetProvider(ctx, providerAddr)
	if !found {
		return nil, status.Error(codes.NotFound, fmt.Sprintf("provider %s not found", req.Address))
	}

	return &types.QueryProviderResponse{Provider: provider}, nil
}

// Providers returns all providers in registration order
func (qs queryServer) Providers(goCtx context.Context, req *types.QueryProvidersRequest) (*types.QueryProvidersResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}

	ctx := sdk.UnwrapSDKContext(goCtx)
	store := qs.Keeper.getStore(ctx)
	seqStore := storeprefix.NewStore(store, ProviderSeqPrefix)

	providers := []types.Provider{}
	pageRes, err := query.Paginate(seqStore, sanitizePagination(req.Pagination), func(key, value []byte) error {
		provider, found := qs.Keeper.GetProvider(ctx, sdk.AccAddress(value))
		if found {
			providers = append(providers, provider)
		}
		return nil
	})
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}

	return &types.QueryProvidersResponse{Providers: providers, Pagination: pageRes}, nil
}

// ActiveProviders returns providers currently accepting jobs
func (qs queryServer) ActiveProviders(goCtx context.Context, req *types.QueryActiveProvidersRequest) (*types.QueryActiveProvidersResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}

	ctx := sdk.UnwrapSDKContext(goCtx)
	store := qs.Keeper.getStore(ctx)
	activeStore := storeprefix.NewStore(store, ActiveProvidersPrefix)

	providers := []types.Provider{}
	pageRes, err := query.Paginate(activeStore, sanitizePagination(req.Pagination), func(key, value []byte) error {
		provider, found := qs.Keeper.GetProvider(ctx, sdk.AccAddress(value))
		if found {
			providers = append(providers, provider)
		}
		return nil
	})
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}

	return &types.QueryActiveProvidersResponse{Providers: providers, Pagination: pageRes}, nil
}

// Job returns the job with the given id
func (qs queryServer) Job(goCtx context.Context, req *types.QueryJobRequest) (*types.QueryJobResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}

	if req.JobId == 0 {
		return nil, status.Error(codes.InvalidArgument, "job id must be positive")
	}

	ctx := sdk.UnwrapSDKContext(goCtx)

	job, found := qs.Keeper.GetJob(ctx, req.JobId)
	if !found {
		return nil, status.Error(codes.NotFound, fmt.Sprintf("job %d not found", req.JobId))
	}

	return &types.QueryJobResponse{Job: job}, nil
}

// JobsByProvider returns a provider's jobs in submission order
func (qs queryServer) JobsByProvider(goCtx context.Context, req *types.QueryJobsByProviderRequest) (*types.QueryJobsByProviderResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}

	providerAddr, err := sdk.AccAddressFromBech32(req.Provider)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, fmt.Sprintf("invalid provider address: %s", err))
	}

	ctx := sdk.UnwrapSDKContext(goCtx)

	jobs, pageRes, err := qs.paginateJobIndex(ctx, JobsByProviderIterKey(providerAddr), req.Pagination)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}

	return &types.QueryJobsByProviderResponse{Jobs: jobs, Pagination: pageRes}, nil
}

// JobsByClient returns a client's jobs in submission order
func (qs queryServer) JobsByClient(goCtx context.Context, req *types.QueryJobsByClientRequest) (*types.QueryJobsByClientResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}

	clientAddr, err := sdk.AccAddressFromBech32(req.Client)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, fmt.Sprintf("invalid client address: %s", err))
	}

	ctx := sdk.UnwrapSDKContext(goCtx)

	jobs, pageRes, err := qs.paginateJobIndex(ctx, JobsByClientIterKey(clientAddr), req.Pagination)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}

	return &types.QueryJobsByClientResponse{Jobs: jobs, Pagination: pageRes}, nil
}

func (qs queryServer) paginateJobIndex(ctx sdk.Context, prefix []byte, p *query.PageRequest) ([]types.Job, *query.PageResponse, error) {
	store := qs.Keeper.getStore(ctx)
	indexStore := storeprefix.NewStore(store, prefix)

	jobs := []types.Job{}
	pageRes, err := query.Paginate(indexStore, sanitizePagination(p), func(key, value []byte) error {
		job, found := qs.Keeper.GetJob(ctx, GetIDFromBytes(value))
		if found {
			jobs = append(jobs, job)
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	return jobs, pageRes, nil
}
