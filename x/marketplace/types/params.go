package types

import (
	sdkerrors "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
)

const (
	// DefaultCommunityFeePercent is the fee share applied when genesis does
	// not specify one.
	DefaultCommunityFeePercent uint64 = 5

	// MaxCommunityFeePercent bounds the community fee share.
	MaxCommunityFeePercent uint64 = 100

	// CommunityPoolName is the account name used to derive the default
	// community pool address.
	CommunityPoolName = "marketplace_community_pool"
)

// Params holds the module configuration fixed at instantiation.
type Params struct {
	// CommunityPool receives the fee share of every completed job payment.
	CommunityPool string `json:"community_pool"`

	// CommunityFeePercent is the integer percentage (0..=100) of each
	// released escrow routed to the community pool.
	CommunityFeePercent uint64 `json:"community_fee_percent"`

	// Admin may authorize a module migration. Empty disables migration.
	Admin string `json:"admin,omitempty"`
}

// NewParams constructs Params with the given values.
func NewParams(communityPool string, communityFeePercent uint64, admin string) Params {
	return Params{
		CommunityPool:       communityPool,
		CommunityFeePercent: communityFeePercent,
		Admin:               admin,
	}
}

// DefaultParams returns the default marketplace parameters.
func DefaultParams() Params {
	return Params{
		CommunityPool:       authtypes.NewModuleAddress(CommunityPoolName).String(),
		CommunityFeePercent: DefaultCommunityFeePercent,
	}
}

// Validate performs basic validation of the parameter set.
func (p Params) Validate() error {
	if p.CommunityFeePercent > MaxCommunityFeePercent {
		return sdkerrors.Wrapf(ErrInvalidConfig, "community fee percent %d exceeds %d", p.CommunityFeePercent, MaxCommunityFeePercent)
	}
	if _, err := sdk.AccAddressFromBech32(p.CommunityPool); err != nil {
		return sdkerrors.Wrapf(ErrInvalidConfig, "invalid community pool address %q: %v", p.CommunityPool, err)
	}
	if p.Admin != "" {
		if _, err := sdk.AccAddressFromBech32(p.Admin); err != nil {
			return sdkerrors.Wrapf(ErrInvalidConfig, "invalid admin address %q: %v", p.Admin, err)
		}
	}
	return nil
}
