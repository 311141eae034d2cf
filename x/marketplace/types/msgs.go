package types

import (
	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Message type URLs
const (
	TypeMsgRegisterProvider     = "register_provider"
	TypeMsgUpdateProviderStatus = "update_provider_status"
	TypeMsgSubmitJob            = "submit_job"
	TypeMsgCompleteJob          = "complete_job"
	TypeMsgCancelJob            = "cancel_job"
	TypeMsgFailJob              = "fail_job"
)

// MsgRegisterProvider creates or overwrites a provider record keyed by the
// signing address.
type MsgRegisterProvider struct {
	Provider     string                 `json:"provider"`
	Name         string                 `json:"name"`
	Capabilities []ServiceCapability    `json:"capabilities"`
	Pricing      map[string]PricingTier `json:"pricing"`
	Endpoint     string                 `json:"endpoint,omitempty"`
}

// MsgUpdateProviderStatus toggles a provider's active flag.
type MsgUpdateProviderStatus struct {
	Provider string `json:"provider"`
	Active   bool   `json:"active"`
}

// MsgSubmitJob submits a job to a provider with the attached payment held
// in escrow until completion.
type MsgSubmitJob struct {
	Client     string   `json:"client"`
	Provider   string   `json:"provider"`
	JobType    string   `json:"job_type"`
	Parameters string   `json:"parameters,omitempty"`
	Payment    math.Int `json:"payment"`
}

// MsgCompleteJob records a job result and releases the escrowed payment.
type MsgCompleteJob struct {
	Provider   string `json:"provider"`
	JobId      uint64 `json:"job_id"`
	ResultHash string `json:"result_hash"`
	ResultURL  string `json:"result_url,omitempty"`
}

// MsgCancelJob cancels a submitted job and refunds the client.
type MsgCancelJob struct {
	Client string `json:"client"`
	JobId  uint64 `json:"job_id"`
}

// MsgFailJob marks a submitted job as failed by its provider and refunds
// the client.
type MsgFailJob struct {
	Provider string `json:"provider"`
	JobId    uint64 `json:"job_id"`
	Reason   string `json:"reason,omitempty"`
}

func NewMsgRegisterProvider(provider, name string, capabilities []ServiceCapability, pricing map[string]PricingTier, endpoint string) *MsgRegisterProvider {
	return &MsgRegisterProvider{
		Provider:     provider,
		Name:         name,
		Capabilities: capabilities,
		Pricing:      pricing,
		Endpoint:     endpoint,
	}
}

func NewMsgUpdateProviderStatus(provider string, active bool) *MsgUpdateProviderStatus {
	return &MsgUpdateProviderStatus{Provider: provider, Active: active}
}

func NewMsgSubmitJob(client, provider, jobType, parameters string, payment math.Int) *MsgSubmitJob {
	return &MsgSubmitJob{
		Client:     client,
		Provider:   provider,
		JobType:    jobType,
		Parameters: parameters,
		Payment:    payment,
	}
}

func NewMsgCompleteJob(provider string, jobID uint64, resultHash, resultURL string) *MsgCompleteJob {
	return &MsgCompleteJob{
		Provider:   provider,
		JobId:      jobID,
		ResultHash: resultHash,
		ResultURL:  resultURL,
	}
}

func NewMsgCancelJob(client string, jobID uint64) *MsgCancelJob {
	return &MsgCancelJob{Client: client, JobId: jobID}
}

func NewMsgFailJob(provider string, jobID uint64, reason string) *MsgFailJob {
	return &MsgFailJob{Provider: provider, JobId: jobID, Reason: reason}
}

// ValidateBasic performs stateless validation of MsgRegisterProvider
func (msg *MsgRegisterProvider) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Provider); err != nil {
		return sdkerrors.Wrapf(ErrInvalidInput, "invalid provider address: %v", err)
	}

	if err := ValidateProviderName(msg.Name); err != nil {
		return sdkerrors.Wrapf(ErrInvalidInput, "invalid name: %v", err)
	}

	if err := ValidateCapabilities(msg.Capabilities); err != nil {
		return sdkerrors.Wrapf(ErrInvalidInput, "invalid capabilities: %v", err)
	}

	if err := ValidatePricing(msg.Pricing); err != nil {
		return sdkerrors.Wrapf(ErrInvalidInput, "invalid pricing: %v", err)
	}

	if err := ValidateEndpoint(msg.Endpoint); err != nil {
		return sdkerrors.Wrapf(ErrInvalidInput, "invalid endpoint: %v", err)
	}

	return nil
}

// GetSigners returns the expected signers for MsgRegisterProvider
func (msg *MsgRegisterProvider) GetSigners() []sdk.AccAddress {
	provider, _ := sdk.AccAddressFromBech32(msg.Provider)
	return []sdk.AccAddress{provider}
}

// ValidateBasic performs stateless validation of MsgUpdateProviderStatus
func (msg *MsgUpdateProviderStatus) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Provider); err != nil {
		return sdkerrors.Wrapf(ErrInvalidInput, "invalid provider address: %v", err)
	}
	return nil
}

// GetSigners returns the expected signers for MsgUpdateProviderStatus
func (msg *MsgUpdateProviderStatus) GetSigners() []sdk.AccAddress {
	provider, _ := sdk.AccAddressFromBech32(msg.Provider)
	return []sdk.AccAddress{provider}
}

// ValidateBasic performs stateless validation of MsgSubmitJob
func (msg *MsgSubmitJob) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Client); err != nil {
		return sdkerrors.Wrapf(ErrInvalidInput, "invalid client address: %v", err)
	}

	if _, err := sdk.AccAddressFromBech32(msg.Provider); err != nil {
		return sdkerrors.Wrapf(ErrInvalidInput, "invalid provider address: %v", err)
	}

	if err := ValidateServiceType(msg.JobType); err != nil {
		return sdkerrors.Wrapf(ErrInvalidInput, "invalid job type: %v", err)
	}

	if err := ValidateParameters(msg.Parameters); err != nil {
		return sdkerrors.Wrapf(ErrInvalidInput, "invalid parameters: %v", err)
	}

	if msg.Payment.IsNil() || !msg.Payment.IsPositive() {
		return sdkerrors.Wrap(ErrPaymentRequired, "payment must be positive")
	}

	return nil
}

// GetSigners returns the expected signers for MsgSubmitJob
func (msg *MsgSubmitJob) GetSigners() []sdk.AccAddress {
	client, _ := sdk.AccAddressFromBech32(msg.Client)
	return []sdk.AccAddress{client}
}

// ValidateBasic performs stateless validation of MsgCompleteJob
func (msg *MsgCompleteJob) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Provider); err != nil {
		return sdkerrors.Wrapf(ErrInvalidInput, "invalid provider address: %v", err)
	}

	if msg.JobId == 0 {
		return sdkerrors.Wrap(ErrInvalidInput, "job id must be positive")
	}

	if err := ValidateResultHash(msg.ResultHash); err != nil {
		return sdkerrors.Wrapf(ErrInvalidInput, "invalid result hash: %v", err)
	}

	if err := ValidateResultURL(msg.ResultURL); err != nil {
		return sdkerrors.Wrapf(ErrInvalidInput, "invalid result url: %v", err)
	}

	return nil
}

// GetSigners returns the expected signers for MsgCompleteJob
func (msg *MsgCompleteJob) GetSigners() []sdk.AccAddress {
	provider, _ := sdk.AccAddressFromBech32(msg.Provider)
	return []sdk.AccAddress{provider}
}

// ValidateBasic performs stateless validation of MsgCancelJob
func (msg *MsgCancelJob) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Client); err != nil {
		return sdkerrors.Wrapf(ErrInvalidInput, "invalid client address: %v", err)
	}

	if msg.JobId == 0 {
		return sdkerrors.Wrap(ErrInvalidInput, "job id must be positive")
	}

	return nil
}

// GetSigners returns the expected signers for MsgCancelJob
func (msg *MsgCancelJob) GetSigners() []sdk.AccAddress {
	client, _ := sdk.AccAddressFromBech32(msg.Client)
	return []sdk.AccAddress{client}
}

// ValidateBasic performs stateless validation of MsgFailJob
func (msg *MsgFailJob) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Provider); err != nil {
		return sdkerrors.Wrapf(ErrInvalidInput, "invalid provider address: %v", err)
	}

	if msg.JobId == 0 {
		return sdkerrors.Wrap(ErrInvalidInput, "job id must be positive")
	}

	if err := ValidateFailureReason(msg.Reason); err != nil {
		return sdkerrors.Wrapf(ErrInvalidInput, "invalid reason: %v", err)
	}

	return nil
}

// GetSigners returns the expected signers for MsgFailJob
func (msg *MsgFailJob) GetSigners() []sdk.AccAddress {
	provider, _ := sdk.AccAddressFromBech32(msg.Provider)
	return []sdk.AccAddress{provider}
}

// Route returns the message route for legacy routing
func (msg *MsgRegisterProvider) Route() string { return RouterKey }

// Type returns the message type for MsgRegisterProvider
func (msg *MsgRegisterProvider) Type() string { return TypeMsgRegisterProvider }

// Type returns the message type for MsgUpdateProviderStatus
func (msg *MsgUpdateProviderStatus) Type() string { return TypeMsgUpdateProviderStatus }

// Type returns the message type for MsgSubmitJob
func (msg *MsgSubmitJob) Type() string { return TypeMsgSubmitJob }

// Type returns the message type for MsgCompleteJob
func (msg *MsgCompleteJob) Type() string { return TypeMsgCompleteJob }

// Type returns the message type for MsgCancelJob
func (msg *MsgCancelJob) Type() string { return TypeMsgCancelJob }

// Type returns the message type for MsgFailJob
func (msg *MsgFailJob) Type() string { return TypeMsgFailJob }
