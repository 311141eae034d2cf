package keeper

import (
	"context"

	sdkerrors "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/medas-network/medas/x/marketplace/types"
)

type msgServer struct {
	*Keeper
}

// NewMsgServerImpl returns an implementation of the marketplace MsgServer
func NewMsgServerImpl(keeper *Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

var _ types.MsgServer = msgServer{}

// RegisterProvider handles MsgRegisterProvider
func (m msgServer) RegisterProvider(ctx context.Context, msg *types.MsgRegisterProvider) (*types.MsgRegisterProviderResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	provider, err := sdk.AccAddressFromBech32(msg.Provider)
	if err != nil {
		return nil, sdkerrors.Wrapf(types.ErrInvalidInput, "invalid provider address: %v", err)
	}

	if err := m.Keeper.RegisterProvider(ctx, provider, msg.Name, msg.Capabilities, msg.Pricing, msg.Endpoint); err != nil {
		return nil, err
	}

	return &types.MsgRegisterProviderResponse{}, nil
}

// UpdateProviderStatus handles MsgUpdateProviderStatus
func (m msgServer) UpdateProviderStatus(ctx context.Context, msg *types.MsgUpdateProviderStatus) (*types.MsgUpdateProviderStatusResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	provider, err := sdk.AccAddressFromBech32(msg.Provider)
	if err != nil {
		return nil, sdkerrors.Wrapf(types.ErrInvalidInput, "invalid provider address: %v", err)
	}

	if err := m.Keeper.SetProviderStatus(ctx, provider, msg.Active); err != nil {
		return nil, err
	}

	return &types.MsgUpdateProviderStatusResponse{}, nil
}

// SubmitJob handles MsgSubmitJob
func (m msgServer) SubmitJob(ctx context.Context, msg *types.MsgSubmitJob) (*types.MsgSubmitJobResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	client, err := sdk.AccAddressFromBech32(msg.Client)
	if err != nil {
		return nil, sdkerrors.Wrapf(types.ErrInvalidInput, "invalid client address: %v", err)
	}

	provider, err := sdk.AccAddressFromBech32(msg.Provider)
	if err != nil {
		return nil, sdkerrors.Wrapf(types.ErrInvalidInput, "invalid provider address: %v", err)
	}

	jobID, err := m.Keeper.SubmitJob(ctx, client, provider, msg.JobType, msg.Parameters, msg.Payment)
	if err != nil {
		return nil, err
	}

	return &types.MsgSubmitJobResponse{JobId: jobID}, nil
}

// CompleteJob handles MsgCompleteJob
func (m msgServer) CompleteJob(ctx context.Context, msg *types.MsgCompleteJob) (*types.MsgCompleteJobResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	provider, err := sdk.AccAddressFromBech32(msg.Provider)
	if err != nil {
		return nil, sdkerrors.Wrapf(types.ErrInvalidInput, "invalid provider address: %v", err)
	}

	providerShare, communityShare, err := m.Keeper.CompleteJob(ctx, provider, msg.JobId, msg.ResultHash, msg.ResultURL)
	if err != nil {
		return nil, err
	}

	return &types.MsgCompleteJobResponse{
		ProviderShare:  providerShare.String(),
		CommunityShare: communityShare.String(),
	}, nil
}

// CancelJob handles MsgCancelJob
func (m msgServer) CancelJob(ctx context.Context, msg *types.MsgCancelJob) (*types.MsgCancelJobResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	client, err := sdk.AccAddressFromBech32(msg.Client)
	if err != nil {
		return nil, sdkerrors.Wrapf(types.ErrInvalidInput, "invalid client address: %v", err)
	}

	if err := m.Keeper.CancelJob(ctx, client, msg.JobId); err != nil {
		return nil, err
	}

	return &types.MsgCancelJobResponse{}, nil
}

// FailJob handles MsgFailJob
func (m msgServer) FailJob(ctx context.Context, msg *types.MsgFailJob) (*types.MsgFailJobResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	provider, err := sdk.AccAddressFromBech32(msg.Provider)
	if err != nil {
		return nil, sdkerrors.Wrapf(types.ErrInvalidInput, "invalid provider address: %v", err)
	}

	if err := m.Keeper.FailJob(ctx, provider, msg.JobId, msg.Reason); err != nil {
		return nil, err
	}

	return &types.MsgFailJobResponse{}, nil
}
