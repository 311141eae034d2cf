package keeper

import (
	"context"
	"fmt"

	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/medas-network/medas/x/marketplace/types"
)

// SplitPayment computes the deterministic fee split for a released escrow.
// The community share is floored and the remainder goes to the provider, so
// the two shares always sum exactly to amount.
func SplitPayment(amount math.Int, feePercent uint64) (providerShare, communityShare math.Int) {
	communityShare = amount.MulRaw(int64(feePercent)).QuoRaw(100)
	providerShare = amount.Sub(communityShare)
	return providerShare, communityShare
}

// DistributeEscrow releases a completed job's escrow, splitting it between
// the assigned provider and the community pool per the current module
// parameters. Zero shares skip their transfer.
func (k Keeper) DistributeEscrow(ctx context.Context, job types.Job) (providerShare, communityShare math.Int, err error) {
	params := k.GetParams(ctx)

	provider, err := sdk.AccAddressFromBech32(job.Provider)
	if err != nil {
		return math.Int{}, math.Int{}, sdkerrors.Wrapf(types.ErrDistributionError, "malformed provider address %q: %v", job.Provider, err)
	}

	pool, err := sdk.AccAddressFromBech32(params.CommunityPool)
	if err != nil {
		return math.Int{}, math.Int{}, sdkerrors.Wrapf(types.ErrDistributionError, "malformed community pool address %q: %v", params.CommunityPool, err)
	}

	providerShare, communityShare = SplitPayment(job.EscrowedAmount, params.CommunityFeePercent)

	if communityShare.IsPositive() {
		coins := sdk.NewCoins(sdk.NewCoin(types.DefaultDenom, communityShare))
		if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, pool, coins); err != nil {
			return math.Int{}, math.Int{}, sdkerrors.Wrapf(types.ErrDistributionError, "community pool transfer failed: %v", err)
		}
	}

	if providerShare.IsPositive() {
		coins := sdk.NewCoins(sdk.NewCoin(types.DefaultDenom, providerShare))
		if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, provider, coins); err != nil {
			return math.Int{}, math.Int{}, sdkerrors.Wrapf(types.ErrDistributionError, "provider transfer failed: %v", err)
		}
	}

	k.metrics.EscrowReleased.Add(amountValue(job.EscrowedAmount))

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypePaymentDistributed,
			sdk.NewAttribute(types.AttributeKeyJobID, fmt.Sprintf("%d", job.Id)),
			sdk.NewAttribute(types.AttributeKeyProvider, job.Provider),
			sdk.NewAttribute(types.AttributeKeyProviderShare, providerShare.String()),
			sdk.NewAttribute(types.AttributeKeyCommunityPool, params.CommunityPool),
			sdk.NewAttribute(types.AttributeKeyCommunityShare, communityShare.String()),
		),
	)

	return providerShare, communityShare, nil
}
