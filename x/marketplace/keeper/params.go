package keeper

import (
	"context"
	"encoding/json"

	sdkerrors "cosmossdk.io/errors"

	"github.com/medas-network/medas/x/marketplace/types"
)

// GetParams returns the current module parameters
func (k Keeper) GetParams(ctx context.Context) types.Params {
	store := k.getStore(ctx)
	bz := store.Get(ParamsKey)
	if bz == nil {
		return types.DefaultParams()
	}

	var params types.Params
	if err := json.Unmarshal(bz, &params); err != nil {
		return types.DefaultParams()
	}
	return params
}

// SetParams validates and stores the module parameters
func (k Keeper) SetParams(ctx context.Context, params types.Params) error {
	if err := params.Validate(); err != nil {
		return err
	}

	bz, err := json.Marshal(params)
	if err != nil {
		return sdkerrors.Wrapf(types.ErrInvalidConfig, "failed to marshal params: %v", err)
	}

	store := k.getStore(ctx)
	store.Set(ParamsKey, bz)
	return nil
}
