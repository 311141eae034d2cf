package types

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

const (
	// Maximum lengths for string fields
	MaxProviderNameLength  = 128
	MaxEndpointLength      = 256
	MaxServiceTypeLength   = 64
	MaxParametersLength    = 4096
	MaxResultHashLength    = 128
	MaxResultURLLength     = 512
	MaxFailureReasonLength = 256
	MaxUnitLength          = 32

	// Maximum array sizes
	MaxCapabilitiesCount = 50
)

var (
	// Allowed URL schemes for provider endpoints and result URLs
	AllowedURLSchemes = []string{
		"https",
		"http",
		"ipfs",
	}

	serviceTypeRegex = regexp.MustCompile(`^[a-z0-9]+([._-][a-z0-9]+)*$`)
	resultHashRegex  = regexp.MustCompile(`^[a-fA-F0-9]{16,128}$`)
)

// ValidateProviderName validates a provider display name
func ValidateProviderName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("provider name cannot be empty")
	}
	if len(name) > MaxProviderNameLength {
		return fmt.Errorf("provider name exceeds maximum length of %d characters", MaxProviderNameLength)
	}
	return nil
}

// ValidateServiceType validates a service type tag
func ValidateServiceType(serviceType string) error {
	if serviceType == "" {
		return fmt.Errorf("service type cannot be empty")
	}
	if len(serviceType) > MaxServiceTypeLength {
		return fmt.Errorf("service type exceeds maximum length of %d characters", MaxServiceTypeLength)
	}
	if !serviceTypeRegex.MatchString(serviceType) {
		return fmt.Errorf("invalid service type format: %s", serviceType)
	}
	return nil
}

// ValidateCapabilities validates a provider capability list
func ValidateCapabilities(capabilities []ServiceCapability) error {
	if len(capabilities) == 0 {
		return fmt.Errorf("capability list cannot be empty")
	}
	if len(capabilities) > MaxCapabilitiesCount {
		return fmt.Errorf("capability list exceeds maximum of %d entries", MaxCapabilitiesCount)
	}
	seen := make(map[string]struct{}, len(capabilities))
	for _, c := range capabilities {
		if err := ValidateServiceType(c.ServiceType); err != nil {
			return err
		}
		if _, ok := seen[c.ServiceType]; ok {
			return fmt.Errorf("duplicate capability for service type %s", c.ServiceType)
		}
		seen[c.ServiceType] = struct{}{}
	}
	return nil
}

// ValidatePricing validates a provider pricing map. Pricing entries are not
// required to match declared capabilities; the cross-check is advisory.
func ValidatePricing(pricing map[string]PricingTier) error {
	if len(pricing) == 0 {
		return fmt.Errorf("pricing map cannot be empty")
	}
	for serviceType, tier := range pricing {
		if err := ValidateServiceType(serviceType); err != nil {
			return err
		}
		if tier.BasePrice.IsNil() || tier.BasePrice.IsNegative() {
			return fmt.Errorf("base price for %s must be non-negative", serviceType)
		}
		if tier.Unit == "" {
			return fmt.Errorf("pricing unit for %s cannot be empty", serviceType)
		}
		if len(tier.Unit) > MaxUnitLength {
			return fmt.Errorf("pricing unit for %s exceeds maximum length of %d characters", serviceType, MaxUnitLength)
		}
	}
	return nil
}

// ValidateEndpoint validates a provider endpoint URL. The endpoint is
// advisory only; reachability is never checked.
func ValidateEndpoint(endpoint string) error {
	if endpoint == "" {
		return nil
	}
	if len(endpoint) > MaxEndpointLength {
		return fmt.Errorf("endpoint exceeds maximum length of %d characters", MaxEndpointLength)
	}
	u, err := url.Parse(endpoint)
	if err != nil {
		return fmt.Errorf("invalid endpoint URL: %w", err)
	}
	if !isAllowedScheme(u.Scheme) {
		return fmt.Errorf("endpoint scheme %q not allowed", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("endpoint URL missing host")
	}
	return nil
}

// ValidateParameters validates an opaque job parameter string. The content
// is provider-interpreted and never inspected beyond its size.
func ValidateParameters(parameters string) error {
	if len(parameters) > MaxParametersLength {
		return fmt.Errorf("parameters exceed maximum length of %d characters", MaxParametersLength)
	}
	return nil
}

// ValidateResultHash validates a hex-encoded result hash
func ValidateResultHash(hash string) error {
	if hash == "" {
		return fmt.Errorf("result hash cannot be empty")
	}
	if len(hash) > MaxResultHashLength {
		return fmt.Errorf("result hash exceeds maximum length of %d characters", MaxResultHashLength)
	}
	if !resultHashRegex.MatchString(hash) {
		return fmt.Errorf("invalid result hash format: %s", hash)
	}
	return nil
}

// ValidateResultURL validates a result URL against the scheme whitelist
func ValidateResultURL(resultURL string) error {
	if resultURL == "" {
		return nil
	}
	if len(resultURL) > MaxResultURLLength {
		return fmt.Errorf("result URL exceeds maximum length of %d characters", MaxResultURLLength)
	}
	u, err := url.Parse(resultURL)
	if err != nil {
		return fmt.Errorf("invalid result URL: %w", err)
	}
	if !isAllowedScheme(u.Scheme) {
		return fmt.Errorf("result URL scheme %q not allowed", u.Scheme)
	}
	return nil
}

// ValidateFailureReason validates a job failure reason string
func ValidateFailureReason(reason string) error {
	if len(reason) > MaxFailureReasonLength {
		return fmt.Errorf("failure reason exceeds maximum length of %d characters", MaxFailureReasonLength)
	}
	return nil
}

func isAllowedScheme(scheme string) bool {
	for _, s := range AllowedURLSchemes {
		if scheme == s {
			return true
		}
	}
	return false
}
