package keeper

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/medas-network/medas/x/marketplace/types"
)

func TestGenesis_RoundTrip(t *testing.T) {
	k, ctx := setupKeeperForTest(t)

	client := sdk.AccAddress([]byte("test_client_addr___"))
	provider := sdk.AccAddress([]byte("test_provider_addr_"))
	pool := sdk.AccAddress([]byte("community_pool_addr"))

	setMarketplaceParams(t, k, ctx, pool, 15)
	registerTestProvider(t, k, ctx, provider, "pi_calculation")
	fundAccountForTest(t, k, ctx, client, math.NewInt(1_000_000))

	jobID, err := k.SubmitJob(ctx, client, provider, "pi_calculation", `{"digits":42}`, math.NewInt(250_000))
	require.NoError(t, err)

	exported := k.ExportGenesis(ctx)
	require.NoError(t, exported.Validate())
	require.Len(t, exported.Providers, 1)
	require.Len(t, exported.Jobs, 1)
	require.Equal(t, jobID+1, exported.NextJobId)
	require.Equal(t, uint64(15), exported.Params.CommunityFeePercent)

	// Import into a fresh keeper and compare the projections
	k2, ctx2 := setupKeeperForTest(t)
	require.NoError(t, k2.InitGenesis(ctx2, *exported))

	providers := k2.GetAllProviders(ctx2)
	require.Equal(t, exported.Providers, providers)

	job, found := k2.GetJob(ctx2, jobID)
	require.True(t, found)
	require.Equal(t, exported.Jobs[0], job)

	require.Equal(t, exported.NextJobId, k2.GetNextJobID(ctx2))
	require.Equal(t, exported.Params, k2.GetParams(ctx2))

	// Indexes were rebuilt on import
	require.Len(t, k2.GetJobsByProvider(ctx2, provider), 1)
	require.Len(t, k2.GetJobsByClient(ctx2, client), 1)
}

func TestInitGenesis_NextJobIDNeverBelowMax(t *testing.T) {
	k, ctx := setupKeeperForTest(t)

	client := sdk.AccAddress([]byte("test_client_addr___"))
	provider := sdk.AccAddress([]byte("test_provider_addr_"))

	genesis := types.DefaultGenesis()
	genesis.Providers = []types.Provider{{
		Address:      provider.String(),
		Name:         "prov",
		Capabilities: testCapabilities("pi_calculation"),
		Pricing:      testPricing("pi_calculation"),
		Active:       true,
		Seq:          1,
	}}
	genesis.Jobs = []types.Job{{
		Id:             9,
		Client:         client.String(),
		Provider:       provider.String(),
		JobType:        "pi_calculation",
		EscrowedAmount: math.NewInt(100),
		Status:         types.JobStatusCompleted,
	}}
	genesis.NextJobId = 3 // below the max job id on purpose

	require.NoError(t, k.InitGenesis(ctx, *genesis))
	require.Equal(t, uint64(10), k.GetNextJobID(ctx))
}

func TestInitGenesis_InvalidProviderAddress(t *testing.T) {
	k, ctx := setupKeeperForTest(t)

	genesis := types.DefaultGenesis()
	genesis.Providers = []types.Provider{{
		Address:      "not_an_address",
		Name:         "prov",
		Capabilities: testCapabilities("pi_calculation"),
		Pricing:      testPricing("pi_calculation"),
	}}

	require.Error(t, k.InitGenesis(ctx, *genesis))
}
