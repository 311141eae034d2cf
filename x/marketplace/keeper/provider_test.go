package keeper

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/medas-network/medas/x/marketplace/types"
)

func testCapabilities(serviceTypes ...string) []types.ServiceCapability {
	caps := make([]types.ServiceCapability, 0, len(serviceTypes))
	for _, st := range serviceTypes {
		caps = append(caps, types.ServiceCapability{
			ServiceType:       st,
			MaxComplexity:     10,
			AvgCompletionTime: 60,
		})
	}
	return caps
}

func testPricing(serviceTypes ...string) map[string]types.PricingTier {
	pricing := make(map[string]types.PricingTier, len(serviceTypes))
	for _, st := range serviceTypes {
		pricing[st] = types.PricingTier{BasePrice: math.NewInt(1000), Unit: "per_job"}
	}
	return pricing
}

func TestRegisterProvider_Success(t *testing.T) {
	k, ctx := setupKeeperForTest(t)

	provider := sdk.AccAddress([]byte("test_provider_addr_"))

	err := k.RegisterProvider(ctx, provider, "pi services",
		testCapabilities("pi_calculation"), testPricing("pi_calculation"),
		"https://pi.example.com")
	require.NoError(t, err)

	record, found := k.GetProvider(ctx, provider)
	require.True(t, found)
	require.Equal(t, provider.String(), record.Address)
	require.Equal(t, "pi services", record.Name)
	require.True(t, record.Active)
	require.True(t, record.SupportsServiceType("pi_calculation"))
	require.False(t, record.SupportsServiceType("rendering"))
	require.Equal(t, uint64(1), record.Seq)
	require.Zero(t, record.Reputation)
	require.Zero(t, record.TotalJobsCompleted)
}

func TestRegisterProvider_InvalidInput(t *testing.T) {
	k, ctx := setupKeeperForTest(t)

	provider := sdk.AccAddress([]byte("test_provider_addr_"))

	tests := []struct {
		name         string
		providerName string
		capabilities []types.ServiceCapability
		pricing      map[string]types.PricingTier
		endpoint     string
	}{
		{
			name:         "empty capabilities",
			providerName: "prov",
			capabilities: []types.ServiceCapability{},
			pricing:      testPricing("pi_calculation"),
		},
		{
			name:         "empty pricing",
			providerName: "prov",
			capabilities: testCapabilities("pi_calculation"),
			pricing:      map[string]types.PricingTier{},
		},
		{
			name:         "empty name",
			providerName: "",
			capabilities: testCapabilities("pi_calculation"),
			pricing:      testPricing("pi_calculation"),
		},
		{
			name:         "bad endpoint scheme",
			providerName: "prov",
			capabilities: testCapabilities("pi_calculation"),
			pricing:      testPricing("pi_calculation"),
			endpoint:     "ftp://pi.example.com",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := k.RegisterProvider(ctx, provider, tc.providerName, tc.capabilities, tc.pricing, tc.endpoint)
			require.ErrorIs(t, err, types.ErrInvalidInput)

			_, found := k.GetProvider(ctx, provider)
			require.False(t, found)
		})
	}
}

func TestRegisterProvider_ReRegistrationPreservesCounters(t *testing.T) {
	k, ctx := setupKeeperForTest(t)

	provider := sdk.AccAddress([]byte("test_provider_addr_"))
	registerTestProvider(t, k, ctx, provider, "pi_calculation")

	record, found := k.GetProvider(ctx, provider)
	require.True(t, found)
	record.Reputation = 7
	record.TotalJobsCompleted = 7
	record.TotalJobsFailed = 2
	require.NoError(t, k.SetProvider(ctx, record))

	err := k.RegisterProvider(ctx, provider, "renamed provider",
		testCapabilities("rendering"), testPricing("rendering"),
		"https://render.example.com")
	require.NoError(t, err)

	updated, found := k.GetProvider(ctx, provider)
	require.True(t, found)
	require.Equal(t, "renamed provider", updated.Name)
	require.True(t, updated.SupportsServiceType("rendering"))
	require.False(t, updated.SupportsServiceType("pi_calculation"))
	require.Equal(t, uint64(7), updated.Reputation)
	require.Equal(t, uint64(7), updated.TotalJobsCompleted)
	require.Equal(t, uint64(2), updated.TotalJobsFailed)
	require.Equal(t, record.Seq, updated.Seq)
	require.Equal(t, record.RegisteredAt, updated.RegisteredAt)

	// Re-registration must not consume a new sequence number
	other := sdk.AccAddress([]byte("other_provider_addr"))
	registerTestProvider(t, k, ctx, other, "pi_calculation")
	otherRecord, found := k.GetProvider(ctx, other)
	require.True(t, found)
	require.Equal(t, record.Seq+1, otherRecord.Seq)
}

func TestGetAllProviders_RegistrationOrder(t *testing.T) {
	k, ctx := setupKeeperForTest(t)

	first := sdk.AccAddress([]byte("zzz_provider_last__"))
	second := sdk.AccAddress([]byte("aaa_provider_first_"))
	third := sdk.AccAddress([]byte("mmm_provider_mid___"))

	registerTestProvider(t, k, ctx, first, "pi_calculation")
	registerTestProvider(t, k, ctx, second, "pi_calculation")
	registerTestProvider(t, k, ctx, third, "pi_calculation")

	providers := k.GetAllProviders(ctx)
	require.Len(t, providers, 3)
	require.Equal(t, first.String(), providers[0].Address)
	require.Equal(t, second.String(), providers[1].Address)
	require.Equal(t, third.String(), providers[2].Address)
}

func TestSetProviderStatus(t *testing.T) {
	k, ctx := setupKeeperForTest(t)

	provider := sdk.AccAddress([]byte("test_provider_addr_"))
	registerTestProvider(t, k, ctx, provider, "pi_calculation")

	require.NoError(t, k.SetProviderStatus(ctx, provider, false))

	record, found := k.GetProvider(ctx, provider)
	require.True(t, found)
	require.False(t, record.Active)

	active := []types.Provider{}
	k.IterateActiveProviders(ctx, func(p types.Provider) bool {
		active = append(active, p)
		return false
	})
	require.Empty(t, active)

	require.NoError(t, k.SetProviderStatus(ctx, provider, true))
	k.IterateActiveProviders(ctx, func(p types.Provider) bool {
		active = append(active, p)
		return false
	})
	require.Len(t, active, 1)
}

func TestSetProviderStatus_NotFound(t *testing.T) {
	k, ctx := setupKeeperForTest(t)

	err := k.SetProviderStatus(ctx, sdk.AccAddress([]byte("unknown_provider___")), false)
	require.ErrorIs(t, err, types.ErrProviderNotFound)
}
