package types

import (
	"context"
)

// MsgServer is the marketplace message handling surface. Each call runs as
// a single atomic invocation; on error no state change is committed.
type MsgServer interface {
	RegisterProvider(ctx context.Context, msg *MsgRegisterProvider) (*MsgRegisterProviderResponse, error)
	UpdateProviderStatus(ctx context.Context, msg *MsgUpdateProviderStatus) (*MsgUpdateProviderStatusResponse, error)
	SubmitJob(ctx context.Context, msg *MsgSubmitJob) (*MsgSubmitJobResponse, error)
	CompleteJob(ctx context.Context, msg *MsgCompleteJob) (*MsgCompleteJobResponse, error)
	CancelJob(ctx context.Context, msg *MsgCancelJob) (*MsgCancelJobResponse, error)
	FailJob(ctx context.Context, msg *MsgFailJob) (*MsgFailJobResponse, error)
}

// MsgRegisterProviderResponse is the response for MsgRegisterProvider.
type MsgRegisterProviderResponse struct{}

// MsgUpdateProviderStatusResponse is the response for MsgUpdateProviderStatus.
type MsgUpdateProviderStatusResponse struct{}

// MsgSubmitJobResponse carries the id assigned to the submitted job.
type MsgSubmitJobResponse struct {
	JobId uint64 `json:"job_id"`
}

// MsgCompleteJobResponse reports the executed payment split.
type MsgCompleteJobResponse struct {
	ProviderShare  string `json:"provider_share"`
	CommunityShare string `json:"community_share"`
}

// MsgCancelJobResponse is the response for MsgCancelJob.
type MsgCancelJobResponse struct{}

// MsgFailJobResponse is the response for MsgFailJob.
type MsgFailJobResponse struct{}
