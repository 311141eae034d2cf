package keeper

import (
	"context"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/medas-network/medas/x/marketplace/types"
)

// InitGenesis initializes the marketplace module's state from a genesis state
func (k Keeper) InitGenesis(ctx context.Context, data types.GenesisState) error {
	if err := k.SetParams(ctx, data.Params); err != nil {
		return fmt.Errorf("failed to set params: %w", err)
	}

	store := k.getStore(ctx)

	var maxSeq uint64
	for _, provider := range data.Providers {
		addr, err := sdk.AccAddressFromBech32(provider.Address)
		if err != nil {
			return fmt.Errorf("invalid provider address %s: %w", provider.Address, err)
		}

		if err := k.SetProvider(ctx, provider); err != nil {
			return fmt.Errorf("failed to initialize provider %s: %w", provider.Address, err)
		}

		store.Set(ProviderSeqKey(provider.Seq), addr.Bytes())
		if provider.Active {
			store.Set(ActiveProviderKey(addr), addr.Bytes())
		}
		if provider.Seq > maxSeq {
			maxSeq = provider.Seq
		}
	}
	store.Set(NextProviderSeqKey, GetIDBytes(maxSeq+1))

	var maxJobID uint64
	for _, job := range data.Jobs {
		if err := k.SetJob(ctx, job); err != nil {
			return fmt.Errorf("failed to initialize job %d: %w", job.Id, err)
		}

		provider, err := sdk.AccAddressFromBech32(job.Provider)
		if err != nil {
			return fmt.Errorf("job %d: invalid provider address: %w", job.Id, err)
		}
		client, err := sdk.AccAddressFromBech32(job.Client)
		if err != nil {
			return fmt.Errorf("job %d: invalid client address: %w", job.Id, err)
		}

		store.Set(JobByProviderKey(provider, job.Id), GetIDBytes(job.Id))
		store.Set(JobByClientKey(client, job.Id), GetIDBytes(job.Id))

		if job.Id > maxJobID {
			maxJobID = job.Id
		}
	}

	nextJobID := data.NextJobId
	if nextJobID <= maxJobID {
		nextJobID = maxJobID + 1
	}
	k.SetNextJobID(ctx, nextJobID)

	return nil
}

// ExportGenesis exports the marketplace module's state to a genesis state
func (k Keeper) ExportGenesis(ctx context.Context) *types.GenesisState {
	providers := k.GetAllProviders(ctx)

	jobs := []types.Job{}
	k.IterateJobs(ctx, func(job types.Job) bool {
		jobs = append(jobs, job)
		return false
	})

	return types.NewGenesisState(k.GetParams(ctx), providers, jobs, k.GetNextJobID(ctx))
}
