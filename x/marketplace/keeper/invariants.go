package keeper

import (
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/medas-network/medas/x/marketplace/types"
)

// RegisterInvariants registers all marketplace module invariants
func RegisterInvariants(ir sdk.InvariantRegistry, k Keeper) {
	ir.RegisterRoute(types.ModuleName, "escrow-balance",
		EscrowBalanceInvariant(k))
	ir.RegisterRoute(types.ModuleName, "job-indexes",
		JobIndexInvariant(k))
	ir.RegisterRoute(types.ModuleName, "provider-seq-index",
		ProviderSeqIndexInvariant(k))
}

// AllInvariants runs all invariants of the marketplace module
func AllInvariants(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		res, stop := EscrowBalanceInvariant(k)(ctx)
		if stop {
			return res, stop
		}
		res, stop = JobIndexInvariant(k)(ctx)
		if stop {
			return res, stop
		}
		return ProviderSeqIndexInvariant(k)(ctx)
	}
}

// EscrowBalanceInvariant checks that the module account holds exactly the
// sum of escrow of all submitted jobs.
func EscrowBalanceInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		totalEscrow := math.ZeroInt()
		k.IterateJobs(ctx, func(job types.Job) bool {
			if job.Status == types.JobStatusSubmitted {
				totalEscrow = totalEscrow.Add(job.EscrowedAmount)
			}
			return false
		})

		moduleAddr := k.accountKeeper.GetModuleAddress(types.ModuleName)
		balance := k.bankKeeper.GetBalance(ctx, moduleAddr, types.DefaultDenom)

		broken := !balance.Amount.Equal(totalEscrow)
		msg := fmt.Sprintf(
			"module balance %s does not match total escrow of submitted jobs %s%s",
			balance, totalEscrow, types.DefaultDenom,
		)

		return sdk.FormatInvariant(types.ModuleName, "escrow-balance", msg), broken
	}
}

// JobIndexInvariant checks that every job appears in both its provider and
// client indexes.
func JobIndexInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			broken bool
			msg    string
		)

		store := k.getStore(ctx)
		k.IterateJobs(ctx, func(job types.Job) bool {
			provider, err := sdk.AccAddressFromBech32(job.Provider)
			if err != nil {
				broken = true
				msg = fmt.Sprintf("job %d has malformed provider address %q", job.Id, job.Provider)
				return true
			}
			client, err := sdk.AccAddressFromBech32(job.Client)
			if err != nil {
				broken = true
				msg = fmt.Sprintf("job %d has malformed client address %q", job.Id, job.Client)
				return true
			}

			if !store.Has(JobByProviderKey(provider, job.Id)) {
				broken = true
				msg = fmt.Sprintf("job %d missing from provider index", job.Id)
				return true
			}
			if !store.Has(JobByClientKey(client, job.Id)) {
				broken = true
				msg = fmt.Sprintf("job %d missing from client index", job.Id)
				return true
			}
			return false
		})

		return sdk.FormatInvariant(types.ModuleName, "job-indexes", msg), broken
	}
}

// ProviderSeqIndexInvariant checks that every registered provider appears in
// the registration-order index under its own sequence number.
func ProviderSeqIndexInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			broken bool
			msg    string
		)

		store := k.getStore(ctx)
		seen := make(map[uint64]struct{})

		k.IterateProviders(ctx, func(provider types.Provider) bool {
			if _, dup := seen[provider.Seq]; dup {
				broken = true
				msg = fmt.Sprintf("duplicate provider sequence %d", provider.Seq)
				return true
			}
			seen[provider.Seq] = struct{}{}

			addr, err := sdk.AccAddressFromBech32(provider.Address)
			if err != nil {
				broken = true
				msg = fmt.Sprintf("provider %q has malformed address", provider.Address)
				return true
			}

			indexed := store.Get(ProviderSeqKey(provider.Seq))
			if !sdk.AccAddress(indexed).Equals(addr) {
				broken = true
				msg = fmt.Sprintf("provider %s not indexed at sequence %d", provider.Address, provider.Seq)
				return true
			}
			return false
		})

		return sdk.FormatInvariant(types.ModuleName, "provider-seq-index", msg), broken
	}
}
