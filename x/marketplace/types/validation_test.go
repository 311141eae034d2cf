package types_test

import (
	"fmt"
	"strings"
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/medas-network/medas/x/marketplace/types"
)

func TestValidateServiceType(t *testing.T) {
	valid := []string{"pi_calculation", "rendering", "ml.training", "fft-256"}
	for _, st := range valid {
		require.NoError(t, types.ValidateServiceType(st), st)
	}

	invalid := []string{"", "Pi_Calculation", "with space", "trailing_", "_leading", strings.Repeat("a", types.MaxServiceTypeLength+1)}
	for _, st := range invalid {
		require.Error(t, types.ValidateServiceType(st), st)
	}
}

func TestValidateEndpoint(t *testing.T) {
	require.NoError(t, types.ValidateEndpoint(""))
	require.NoError(t, types.ValidateEndpoint("https://provider.example.com:8443/api"))
	require.NoError(t, types.ValidateEndpoint("http://10.0.0.1"))

	require.Error(t, types.ValidateEndpoint("ftp://provider.example.com"))
	require.Error(t, types.ValidateEndpoint("https://"))
	require.Error(t, types.ValidateEndpoint("https://"+strings.Repeat("a", types.MaxEndpointLength)))
}

func TestValidateResultHash(t *testing.T) {
	require.NoError(t, types.ValidateResultHash("ab12cd34ef56ab12cd34ef56ab12cd34"))
	require.NoError(t, types.ValidateResultHash(strings.Repeat("ab", 32)))

	require.Error(t, types.ValidateResultHash(""))
	require.Error(t, types.ValidateResultHash("xyz"))
	require.Error(t, types.ValidateResultHash("short"))
	require.Error(t, types.ValidateResultHash(strings.Repeat("ab", 80)))
}

func TestValidateResultURL(t *testing.T) {
	require.NoError(t, types.ValidateResultURL(""))
	require.NoError(t, types.ValidateResultURL("https://results.example.com/1"))
	require.NoError(t, types.ValidateResultURL("ipfs://QmResultHash"))

	require.Error(t, types.ValidateResultURL("file:///etc/passwd"))
}

func TestValidatePricing(t *testing.T) {
	require.NoError(t, types.ValidatePricing(validPricing()))

	require.Error(t, types.ValidatePricing(nil))
	require.Error(t, types.ValidatePricing(map[string]types.PricingTier{}))
	require.Error(t, types.ValidatePricing(map[string]types.PricingTier{
		"pi_calculation": {BasePrice: math.NewInt(-1), Unit: "per_job"},
	}))
	require.Error(t, types.ValidatePricing(map[string]types.PricingTier{
		"pi_calculation": {BasePrice: math.NewInt(1), Unit: ""},
	}))
	require.Error(t, types.ValidatePricing(map[string]types.PricingTier{
		"BAD TYPE": {BasePrice: math.NewInt(1), Unit: "per_job"},
	}))
}

func TestValidateCapabilities(t *testing.T) {
	require.NoError(t, types.ValidateCapabilities(validCapabilities()))

	require.Error(t, types.ValidateCapabilities(nil))
	require.Error(t, types.ValidateCapabilities([]types.ServiceCapability{}))
	require.Error(t, types.ValidateCapabilities(append(validCapabilities(), validCapabilities()...)))

	tooMany := make([]types.ServiceCapability, 0, types.MaxCapabilitiesCount+1)
	for i := 0; i <= types.MaxCapabilitiesCount; i++ {
		tooMany = append(tooMany, types.ServiceCapability{ServiceType: fmt.Sprintf("svc%d", i)})
	}
	require.Error(t, types.ValidateCapabilities(tooMany))
}

func TestJobStatus(t *testing.T) {
	require.False(t, types.JobStatusSubmitted.IsTerminal())
	require.True(t, types.JobStatusCompleted.IsTerminal())
	require.True(t, types.JobStatusCancelled.IsTerminal())
	require.True(t, types.JobStatusFailed.IsTerminal())

	require.True(t, types.JobStatusSubmitted.Valid())
	require.False(t, types.JobStatus("mystery").Valid())
}

func TestProviderSupportsServiceType(t *testing.T) {
	p := types.Provider{Capabilities: validCapabilities()}
	require.True(t, p.SupportsServiceType("pi_calculation"))
	require.False(t, p.SupportsServiceType("rendering"))
	require.False(t, types.Provider{}.SupportsServiceType("pi_calculation"))
}
