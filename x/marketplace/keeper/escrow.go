package keeper

import (
	"context"
	"fmt"

	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/medas-network/medas/x/marketplace/types"
)

// lockEscrow moves the attached payment from the client into the module
// account where it is held until the job reaches a terminal state.
func (k Keeper) lockEscrow(ctx context.Context, client sdk.AccAddress, amount math.Int) error {
	coins := sdk.NewCoins(sdk.NewCoin(types.DefaultDenom, amount))

	if err := k.bankKeeper.SendCoinsFromAccountToModule(ctx, client, types.ModuleName, coins); err != nil {
		return sdkerrors.Wrapf(types.ErrPaymentRequired, "escrow transfer failed: %v", err)
	}

	k.metrics.EscrowLocked.Add(amountValue(amount))

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeEscrowLocked,
			sdk.NewAttribute(types.AttributeKeyClient, client.String()),
			sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
		),
	)

	return nil
}

// refundEscrow returns a job's full escrowed amount to its client.
func (k Keeper) refundEscrow(ctx context.Context, job types.Job) error {
	client, err := sdk.AccAddressFromBech32(job.Client)
	if err != nil {
		return sdkerrors.Wrapf(types.ErrDistributionError, "malformed client address %q: %v", job.Client, err)
	}

	coins := sdk.NewCoins(sdk.NewCoin(types.DefaultDenom, job.EscrowedAmount))
	if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, client, coins); err != nil {
		return sdkerrors.Wrapf(types.ErrDistributionError, "escrow refund failed: %v", err)
	}

	k.metrics.EscrowRefunded.Add(amountValue(job.EscrowedAmount))

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeEscrowRefunded,
			sdk.NewAttribute(types.AttributeKeyJobID, fmt.Sprintf("%d", job.Id)),
			sdk.NewAttribute(types.AttributeKeyClient, job.Client),
			sdk.NewAttribute(types.AttributeKeyAmount, job.EscrowedAmount.String()),
		),
	)

	return nil
}
