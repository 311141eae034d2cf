package marketplace_test

import (
	"encoding/json"
	"testing"

	"cosmossdk.io/math"
	"github.com/cosmos/cosmos-sdk/codec"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	keepertest "github.com/medas-network/medas/testutil/keeper"
	"github.com/medas-network/medas/x/marketplace"
	"github.com/medas-network/medas/x/marketplace/types"
)

func testJSONCodec() codec.JSONCodec {
	return codec.NewProtoCodec(codectypes.NewInterfaceRegistry())
}

func TestAppModuleBasic_Name(t *testing.T) {
	amb := marketplace.AppModuleBasic{}
	require.Equal(t, types.ModuleName, amb.Name())
	require.Equal(t, "marketplace", amb.Name())
}

func TestAppModuleBasic_DefaultGenesis(t *testing.T) {
	amb := marketplace.AppModuleBasic{}

	genesisJSON := amb.DefaultGenesis(testJSONCodec())
	require.NotEmpty(t, genesisJSON)

	var genState types.GenesisState
	require.NoError(t, json.Unmarshal(genesisJSON, &genState))
	require.NoError(t, genState.Validate())
	require.Equal(t, uint64(1), genState.NextJobId)
}

func TestAppModuleBasic_ValidateGenesis(t *testing.T) {
	amb := marketplace.AppModuleBasic{}
	cdc := testJSONCodec()

	require.NoError(t, amb.ValidateGenesis(cdc, nil, amb.DefaultGenesis(cdc)))

	t.Run("malformed json", func(t *testing.T) {
		require.Error(t, amb.ValidateGenesis(cdc, nil, json.RawMessage(`{not json`)))
	})

	t.Run("invalid state", func(t *testing.T) {
		gs := types.DefaultGenesis()
		gs.NextJobId = 0
		bz, err := json.Marshal(gs)
		require.NoError(t, err)
		require.Error(t, amb.ValidateGenesis(cdc, nil, bz))
	})
}

func TestAppModule_GenesisRoundTrip(t *testing.T) {
	k, _, ctx := keepertest.MarketplaceKeeper(t)
	am := marketplace.NewAppModule(nil, k)
	cdc := testJSONCodec()

	provider := sdk.AccAddress([]byte("test_provider_addr_"))
	client := sdk.AccAddress([]byte("test_client_addr___"))
	pool := sdk.AccAddress([]byte("community_pool_addr"))

	genState := types.NewGenesisState(
		types.NewParams(pool.String(), 15, ""),
		[]types.Provider{{
			Address: provider.String(),
			Name:    "prov",
			Capabilities: []types.ServiceCapability{
				{ServiceType: "pi_calculation", MaxComplexity: 10, AvgCompletionTime: 60},
			},
			Pricing: map[string]types.PricingTier{
				"pi_calculation": {BasePrice: math.NewInt(100), Unit: "digit"},
			},
			Active:       true,
			Seq:          1,
			RegisteredAt: 1700000000,
		}},
		[]types.Job{{
			Id:             1,
			Client:         client.String(),
			Provider:       provider.String(),
			JobType:        "pi_calculation",
			EscrowedAmount: math.NewInt(1_000),
			Status:         types.JobStatusCompleted,
			CreatedAt:      1700000000,
		}},
		2,
	)

	bz, err := json.Marshal(genState)
	require.NoError(t, err)

	require.NotPanics(t, func() {
		am.InitGenesis(ctx, cdc, bz)
	})

	exported := am.ExportGenesis(ctx, cdc)
	var roundTripped types.GenesisState
	require.NoError(t, json.Unmarshal(exported, &roundTripped))
	require.Equal(t, genState.NextJobId, roundTripped.NextJobId)
	require.Len(t, roundTripped.Providers, 1)
	require.Equal(t, provider.String(), roundTripped.Providers[0].Address)
	require.Len(t, roundTripped.Jobs, 1)
	require.True(t, roundTripped.Jobs[0].EscrowedAmount.Equal(math.NewInt(1_000)))
}

func TestAppModule_InitGenesisMalformedPanics(t *testing.T) {
	k, _, ctx := keepertest.MarketplaceKeeper(t)
	am := marketplace.NewAppModule(nil, k)

	require.Panics(t, func() {
		am.InitGenesis(ctx, testJSONCodec(), json.RawMessage(`{not json`))
	})
}

func TestAppModule_RegisterInvariants(t *testing.T) {
	k, _, ctx := keepertest.MarketplaceKeeper(t)
	am := marketplace.NewAppModule(nil, k)

	reg := newTestInvariantRegistry()
	am.RegisterInvariants(reg)
	require.NotEmpty(t, reg.routes)

	for _, inv := range reg.routes {
		msg, broken := inv(ctx)
		require.False(t, broken, msg)
	}
}

func TestAppModule_ConsensusVersion(t *testing.T) {
	am := marketplace.AppModule{}
	require.Equal(t, uint64(2), am.ConsensusVersion())
}

type testInvariantRegistry struct {
	routes []sdk.Invariant
}

func newTestInvariantRegistry() *testInvariantRegistry {
	return &testInvariantRegistry{}
}

func (r *testInvariantRegistry) RegisterRoute(moduleName, route string, invar sdk.Invariant) {
	r.routes = append(r.routes, invar)
}
