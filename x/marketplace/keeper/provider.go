package keeper

import (
	"context"
	"encoding/json"
	"fmt"

	sdkerrors "cosmossdk.io/errors"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/medas-network/medas/x/marketplace/types"
)

// RegisterProvider creates or overwrites the provider record keyed by the
// caller address. Re-registration replaces name, capabilities, pricing and
// endpoint while preserving identity, counters and registration order.
func (k Keeper) RegisterProvider(
	ctx context.Context,
	provider sdk.AccAddress,
	name string,
	capabilities []types.ServiceCapability,
	pricing map[string]types.PricingTier,
	endpoint string,
) error {
	if err := types.ValidateProviderName(name); err != nil {
		return sdkerrors.Wrapf(types.ErrInvalidInput, "invalid name: %v", err)
	}
	if err := types.ValidateCapabilities(capabilities); err != nil {
		return sdkerrors.Wrapf(types.ErrInvalidInput, "invalid capabilities: %v", err)
	}
	if err := types.ValidatePricing(pricing); err != nil {
		return sdkerrors.Wrapf(types.ErrInvalidInput, "invalid pricing: %v", err)
	}
	if err := types.ValidateEndpoint(endpoint); err != nil {
		return sdkerrors.Wrapf(types.ErrInvalidInput, "invalid endpoint: %v", err)
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)

	existing, found := k.GetProvider(ctx, provider)
	if found {
		existing.Name = name
		existing.Capabilities = capabilities
		existing.Pricing = pricing
		existing.Endpoint = endpoint

		if err := k.SetProvider(ctx, existing); err != nil {
			return err
		}

		sdkCtx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypeProviderUpdated,
				sdk.NewAttribute(types.AttributeKeyProvider, provider.String()),
			),
		)

		k.Logger(ctx).Info("provider re-registered", "provider", provider.String())
		return nil
	}

	record := types.Provider{
		Address:      provider.String(),
		Name:         name,
		Capabilities: capabilities,
		Pricing:      pricing,
		Endpoint:     endpoint,
		Active:       true,
		RegisteredAt: sdkCtx.BlockTime().Unix(),
		Seq:          k.nextProviderSeq(ctx),
	}

	if err := k.SetProvider(ctx, record); err != nil {
		return err
	}

	store := k.getStore(ctx)
	store.Set(ProviderSeqKey(record.Seq), provider.Bytes())
	store.Set(ActiveProviderKey(provider), provider.Bytes())

	k.metrics.ProvidersRegistered.Inc()
	k.metrics.ActiveProviders.Inc()

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeProviderRegistered,
			sdk.NewAttribute(types.AttributeKeyProvider, provider.String()),
		),
	)

	k.Logger(ctx).Info("provider registered", "provider", provider.String(), "seq", record.Seq)
	return nil
}

// SetProviderStatus flips a provider's active flag and maintains the
// active-provider index.
func (k Keeper) SetProviderStatus(ctx context.Context, provider sdk.AccAddress, active bool) error {
	record, found := k.GetProvider(ctx, provider)
	if !found {
		return sdkerrors.Wrapf(types.ErrProviderNotFound, "provider %s", provider.String())
	}

	if record.Active == active {
		return nil
	}

	record.Active = active
	if err := k.SetProvider(ctx, record); err != nil {
		return err
	}

	store := k.getStore(ctx)
	if active {
		store.Set(ActiveProviderKey(provider), provider.Bytes())
		k.metrics.ActiveProviders.Inc()
	} else {
		store.Delete(ActiveProviderKey(provider))
		k.metrics.ActiveProviders.Dec()
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeProviderStatusChanged,
			sdk.NewAttribute(types.AttributeKeyProvider, provider.String()),
			sdk.NewAttribute(types.AttributeKeyActive, fmt.Sprintf("%t", active)),
		),
	)

	return nil
}

// GetProvider returns the provider record for an address
func (k Keeper) GetProvider(ctx context.Context, provider sdk.AccAddress) (types.Provider, bool) {
	store := k.getStore(ctx)
	bz := store.Get(ProviderKey(provider))
	if bz == nil {
		return types.Provider{}, false
	}

	var record types.Provider
	if err := json.Unmarshal(bz, &record); err != nil {
		return types.Provider{}, false
	}
	return record, true
}

// SetProvider stores a provider record
func (k Keeper) SetProvider(ctx context.Context, record types.Provider) error {
	addr, err := sdk.AccAddressFromBech32(record.Address)
	if err != nil {
		return sdkerrors.Wrapf(types.ErrInvalidInput, "invalid provider address %q: %v", record.Address, err)
	}

	bz, err := json.Marshal(record)
	if err != nil {
		return sdkerrors.Wrapf(types.ErrInvalidInput, "failed to marshal provider: %v", err)
	}

	store := k.getStore(ctx)
	store.Set(ProviderKey(addr), bz)
	return nil
}

// IterateProviders walks all providers in registration order until cb
// returns true.
func (k Keeper) IterateProviders(ctx context.Context, cb func(types.Provider) bool) {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, ProviderSeqPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		record, found := k.GetProvider(ctx, sdk.AccAddress(iterator.Value()))
		if !found {
			continue
		}
		if cb(record) {
			break
		}
	}
}

// GetAllProviders returns every provider in registration order
func (k Keeper) GetAllProviders(ctx context.Context) []types.Provider {
	providers := []types.Provider{}
	k.IterateProviders(ctx, func(p types.Provider) bool {
		providers = append(providers, p)
		return false
	})
	return providers
}

// IterateActiveProviders walks the active-provider index until cb returns
// true. Order is address-lexicographic, not registration order.
func (k Keeper) IterateActiveProviders(ctx context.Context, cb func(types.Provider) bool) {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, ActiveProvidersPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		record, found := k.GetProvider(ctx, sdk.AccAddress(iterator.Value()))
		if !found {
			continue
		}
		if cb(record) {
			break
		}
	}
}

// nextProviderSeq allocates the next registration sequence number
func (k Keeper) nextProviderSeq(ctx context.Context) uint64 {
	store := k.getStore(ctx)

	seq := uint64(1)
	if bz := store.Get(NextProviderSeqKey); bz != nil {
		seq = GetIDFromBytes(bz)
	}

	store.Set(NextProviderSeqKey, GetIDBytes(seq+1))
	return seq
}
