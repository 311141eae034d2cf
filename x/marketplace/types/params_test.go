package types_test

import (
	"testing"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/medas-network/medas/x/marketplace/types"
)

func TestDefaultParams(t *testing.T) {
	params := types.DefaultParams()
	require.NoError(t, params.Validate())
	require.Equal(t, types.DefaultCommunityFeePercent, params.CommunityFeePercent)
	require.Empty(t, params.Admin)
}

func TestParamsValidate(t *testing.T) {
	pool := sdk.AccAddress([]byte("community_pool_addr")).String()
	admin := sdk.AccAddress([]byte("module_admin_addr__")).String()

	tests := []struct {
		name    string
		params  types.Params
		wantErr bool
	}{
		{"valid without admin", types.NewParams(pool, 15, ""), false},
		{"valid with admin", types.NewParams(pool, 15, admin), false},
		{"zero fee", types.NewParams(pool, 0, ""), false},
		{"full fee", types.NewParams(pool, 100, ""), false},
		{"fee above 100", types.NewParams(pool, 101, ""), true},
		{"empty pool", types.NewParams("", 15, ""), true},
		{"malformed pool", types.NewParams("not_bech32", 15, ""), true},
		{"malformed admin", types.NewParams(pool, 15, "not_bech32"), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.params.Validate()
			if tc.wantErr {
				require.ErrorIs(t, err, types.ErrInvalidConfig)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
