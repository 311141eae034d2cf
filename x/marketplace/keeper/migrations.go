package keeper

import (
	"context"

	sdkerrors "cosmossdk.io/errors"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/medas-network/medas/x/marketplace/types"
)

// Migrator handles in-place store migrations between module versions.
type Migrator struct {
	keeper *Keeper
}

// NewMigrator returns a Migrator for the marketplace keeper
func NewMigrator(keeper *Keeper) Migrator {
	return Migrator{keeper: keeper}
}

// AssertMigrationAuthority checks that the caller may trigger a module
// migration. Migration is disabled entirely when no admin is configured.
func (k Keeper) AssertMigrationAuthority(ctx context.Context, caller sdk.AccAddress) error {
	params := k.GetParams(ctx)
	if params.Admin == "" {
		return sdkerrors.Wrap(types.ErrUnauthorized, "migration disabled: no admin configured")
	}
	if params.Admin != caller.String() {
		return sdkerrors.Wrapf(types.ErrUnauthorized, "caller %s is not the module admin", caller.String())
	}
	return nil
}

// Migrate1to2 rebuilds the provider registration-order and active-provider
// indexes from the primary provider records. Providers written before the
// indexes existed are assigned fresh sequence numbers in address order.
func (m Migrator) Migrate1to2(ctx context.Context) error {
	k := m.keeper
	store := k.getStore(ctx)

	nextSeq := uint64(1)
	if bz := store.Get(NextProviderSeqKey); bz != nil {
		nextSeq = GetIDFromBytes(bz)
	}

	iterator := store.Iterator(ProviderKeyPrefix, storetypes.PrefixEndBytes(ProviderKeyPrefix))
	defer iterator.Close()

	type pending struct {
		provider types.Provider
		addr     sdk.AccAddress
	}
	var fixups []pending

	for ; iterator.Valid(); iterator.Next() {
		addr := sdk.AccAddress(iterator.Key()[len(ProviderKeyPrefix):])

		provider, found := k.GetProvider(ctx, addr)
		if !found {
			continue
		}

		if provider.Seq == 0 {
			provider.Seq = nextSeq
			nextSeq++
			fixups = append(fixups, pending{provider: provider, addr: addr})
		}

		store.Set(ProviderSeqKey(provider.Seq), addr.Bytes())
		if provider.Active {
			store.Set(ActiveProviderKey(addr), addr.Bytes())
		} else {
			store.Delete(ActiveProviderKey(addr))
		}
	}

	for _, p := range fixups {
		if err := k.SetProvider(ctx, p.provider); err != nil {
			return err
		}
	}

	store.Set(NextProviderSeqKey, GetIDBytes(nextSeq))

	k.Logger(ctx).Info("marketplace store migrated", "reindexed_providers", len(fixups))
	return nil
}
