package types

import (
	"context"

	"github.com/cosmos/cosmos-sdk/types/query"
)

// QueryServer is the marketplace read-only query surface. Queries never
// mutate state; listing order is deterministic for identical state.
type QueryServer interface {
	Config(ctx context.Context, req *QueryConfigRequest) (*QueryConfigResponse, error)
	Provider(ctx context.Context, req *QueryProviderRequest) (*QueryProviderResponse, error)
	Providers(ctx context.Context, req *QueryProvidersRequest) (*QueryProvidersResponse, error)
	ActiveProviders(ctx context.Context, req *QueryActiveProvidersRequest) (*QueryActiveProvidersResponse, error)
	Job(ctx context.Context, req *QueryJobRequest) (*QueryJobResponse, error)
	JobsByProvider(ctx context.Context, req *QueryJobsByProviderRequest) (*QueryJobsByProviderResponse, error)
	JobsByClient(ctx context.Context, req *QueryJobsByClientRequest) (*QueryJobsByClientResponse, error)
}

type QueryConfigRequest struct{}

type QueryConfigResponse struct {
	Params Params `json:"params"`
}

type QueryProviderRequest struct {
	Address string `json:"address"`
}

type QueryProviderResponse struct {
	Provider Provider `json:"provider"`
}

type QueryProvidersRequest struct {
	Pagination *query.PageRequest `json:"pagination,omitempty"`
}

type QueryProvidersResponse struct {
	Providers  []Provider          `json:"providers"`
	Pagination *query.PageResponse `json:"pagination,omitempty"`
}

type QueryActiveProvidersRequest struct {
	Pagination *query.PageRequest `json:"pagination,omitempty"`
}

type QueryActiveProvidersResponse struct {
	Providers  []Provider          `json:"providers"`
	Pagination *query.PageResponse `json:"pagination,omitempty"`
}

type QueryJobRequest struct {
	JobId uint64 `json:"job_id"`
}

type QueryJobResponse struct {
	Job Job `json:"job"`
}

type QueryJobsByProviderRequest struct {
	Provider   string             `json:"provider"`
	Pagination *query.PageRequest `json:"pagination,omitempty"`
}

type QueryJobsByProviderResponse struct {
	Jobs       []Job               `json:"jobs"`
	Pagination *query.PageResponse `json:"pagination,omitempty"`
}

type QueryJobsByClientRequest struct {
	Client     string             `json:"client"`
	Pagination *query.PageRequest `json:"pagination,omitempty"`
}

type QueryJobsByClientResponse struct {
	Jobs       []Job               `json:"jobs"`
	Pagination *query.PageResponse `json:"pagination,omitempty"`
}
