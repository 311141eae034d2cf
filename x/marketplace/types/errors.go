package types

import (
	sdkerrors "cosmossdk.io/errors"
)

// Marketplace module sentinel errors

var (
	// Input validation errors
	ErrInvalidInput  = sdkerrors.Register(ModuleName, 2, "invalid input")
	ErrInvalidConfig = sdkerrors.Register(ModuleName, 3, "invalid module configuration")

	// Provider errors
	ErrProviderNotFound  = sdkerrors.Register(ModuleName, 10, "provider not found")
	ErrProviderNotActive = sdkerrors.Register(ModuleName, 11, "provider not active")

	// Job lifecycle errors
	ErrJobNotFound            = sdkerrors.Register(ModuleName, 20, "job not found")
	ErrUnsupportedServiceType = sdkerrors.Register(ModuleName, 21, "unsupported service type")
	ErrInvalidJobState        = sdkerrors.Register(ModuleName, 22, "invalid job state for requested transition")
	ErrUnauthorized           = sdkerrors.Register(ModuleName, 23, "caller not authorized")

	// Payment errors
	ErrPaymentRequired   = sdkerrors.Register(ModuleName, 30, "attached payment required")
	ErrDistributionError = sdkerrors.Register(ModuleName, 31, "payment distribution failed")
)
