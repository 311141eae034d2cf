package keeper

import (
	"context"
	"encoding/json"
	"fmt"

	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/medas-network/medas/x/marketplace/types"
)

// SubmitJob validates a job submission, escrows the attached payment and
// persists the job with a freshly allocated id. All validation runs before
// any state is written.
func (k Keeper) SubmitJob(
	ctx context.Context,
	client sdk.AccAddress,
	provider sdk.AccAddress,
	jobType string,
	parameters string,
	payment math.Int,
) (uint64, error) {
	if payment.IsNil() || !payment.IsPositive() {
		return 0, sdkerrors.Wrap(types.ErrPaymentRequired, "attached payment must be positive")
	}
	if err := types.ValidateServiceType(jobType); err != nil {
		return 0, sdkerrors.Wrapf(types.ErrInvalidInput, "invalid job type: %v", err)
	}
	if err := types.ValidateParameters(parameters); err != nil {
		return 0, sdkerrors.Wrapf(types.ErrInvalidInput, "invalid parameters: %v", err)
	}

	record, found := k.GetProvider(ctx, provider)
	if !found {
		return 0, sdkerrors.Wrapf(types.ErrProviderNotFound, "provider %s", provider.String())
	}
	if !record.Active {
		return 0, sdkerrors.Wrapf(types.ErrProviderNotActive, "provider %s", provider.String())
	}
	if !record.SupportsServiceType(jobType) {
		return 0, sdkerrors.Wrapf(types.ErrUnsupportedServiceType, "provider %s does not support %s", provider.String(), jobType)
	}

	if err := k.lockEscrow(ctx, client, payment); err != nil {
		return 0, err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)

	jobID := k.nextJobID(ctx)
	job := types.Job{
		Id:             jobID,
		Client:         client.String(),
		Provider:       provider.String(),
		JobType:        jobType,
		Parameters:     parameters,
		EscrowedAmount: payment,
		Status:         types.JobStatusSubmitted,
		CreatedAt:      sdkCtx.BlockTime().Unix(),
	}

	if err := k.SetJob(ctx, job); err != nil {
		return 0, err
	}

	store := k.getStore(ctx)
	store.Set(JobByProviderKey(provider, jobID), GetIDBytes(jobID))
	store.Set(JobByClientKey(client, jobID), GetIDBytes(jobID))

	k.metrics.JobsSubmitted.WithLabelValues(jobType).Inc()

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeJobSubmitted,
			sdk.NewAttribute(types.AttributeKeyJobID, fmt.Sprintf("%d", jobID)),
			sdk.NewAttribute(types.AttributeKeyClient, client.String()),
			sdk.NewAttribute(types.AttributeKeyProvider, provider.String()),
			sdk.NewAttribute(types.AttributeKeyJobType, jobType),
			sdk.NewAttribute(types.AttributeKeyAmount, payment.String()),
		),
	)

	k.Logger(ctx).Info("job submitted",
		"job_id", jobID,
		"client", client.String(),
		"provider", provider.String(),
		"job_type", jobType,
		"amount", payment.String(),
	)

	return jobID, nil
}

// CompleteJob records the result for a submitted job, transitions it to
// completed and releases the escrowed payment. Only the assigned provider
// may complete a job, and only once. The status transition and the payment
// release commit or fail together.
func (k Keeper) CompleteJob(
	ctx context.Context,
	caller sdk.AccAddress,
	jobID uint64,
	resultHash string,
	resultURL string,
) (providerShare, communityShare math.Int, err error) {
	job, found := k.GetJob(ctx, jobID)
	if !found {
		return math.Int{}, math.Int{}, sdkerrors.Wrapf(types.ErrJobNotFound, "job %d", jobID)
	}
	if job.Provider != caller.String() {
		return math.Int{}, math.Int{}, sdkerrors.Wrapf(types.ErrUnauthorized, "caller %s is not the assigned provider", caller.String())
	}
	if job.Status != types.JobStatusSubmitted {
		return math.Int{}, math.Int{}, sdkerrors.Wrapf(types.ErrInvalidJobState, "job %d is %s", jobID, job.Status)
	}
	if err := types.ValidateResultHash(resultHash); err != nil {
		return math.Int{}, math.Int{}, sdkerrors.Wrapf(types.ErrInvalidInput, "invalid result hash: %v", err)
	}
	if err := types.ValidateResultURL(resultURL); err != nil {
		return math.Int{}, math.Int{}, sdkerrors.Wrapf(types.ErrInvalidInput, "invalid result url: %v", err)
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)

	job.Status = types.JobStatusCompleted
	job.ResultHash = resultHash
	job.ResultURL = resultURL
	job.CompletedAt = sdkCtx.BlockTime().Unix()

	if err := k.SetJob(ctx, job); err != nil {
		return math.Int{}, math.Int{}, err
	}

	providerShare, communityShare, err = k.DistributeEscrow(ctx, job)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}

	record, found := k.GetProvider(ctx, caller)
	if found {
		record.Reputation++
		record.TotalJobsCompleted++
		if err := k.SetProvider(ctx, record); err != nil {
			return math.Int{}, math.Int{}, err
		}
	}

	k.metrics.JobsCompleted.WithLabelValues(job.JobType).Inc()

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeJobCompleted,
			sdk.NewAttribute(types.AttributeKeyJobID, fmt.Sprintf("%d", jobID)),
			sdk.NewAttribute(types.AttributeKeyProvider, job.Provider),
			sdk.NewAttribute(types.AttributeKeyResultHash, resultHash),
		),
	)

	k.Logger(ctx).Info("job completed",
		"job_id", jobID,
		"provider", job.Provider,
		"provider_share", providerShare.String(),
		"community_share", communityShare.String(),
	)

	return providerShare, communityShare, nil
}

// CancelJob cancels a submitted job at the client's request and refunds the
// full escrowed amount.
func (k Keeper) CancelJob(ctx context.Context, caller sdk.AccAddress, jobID uint64) error {
	job, found := k.GetJob(ctx, jobID)
	if !found {
		return sdkerrors.Wrapf(types.ErrJobNotFound, "job %d", jobID)
	}
	if job.Client != caller.String() {
		return sdkerrors.Wrapf(types.ErrUnauthorized, "caller %s is not the job client", caller.String())
	}
	if job.Status != types.JobStatusSubmitted {
		return sdkerrors.Wrapf(types.ErrInvalidJobState, "job %d is %s", jobID, job.Status)
	}

	job.Status = types.JobStatusCancelled
	if err := k.SetJob(ctx, job); err != nil {
		return err
	}

	if err := k.refundEscrow(ctx, job); err != nil {
		return err
	}

	k.metrics.JobsCancelled.Inc()

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeJobCancelled,
			sdk.NewAttribute(types.AttributeKeyJobID, fmt.Sprintf("%d", jobID)),
			sdk.NewAttribute(types.AttributeKeyClient, job.Client),
		),
	)

	return nil
}

// FailJob marks a submitted job as failed by its assigned provider, refunds
// the client and records the failure against the provider.
func (k Keeper) FailJob(ctx context.Context, caller sdk.AccAddress, jobID uint64, reason string) error {
	job, found := k.GetJob(ctx, jobID)
	if !found {
		return sdkerrors.Wrapf(types.ErrJobNotFound, "job %d", jobID)
	}
	if job.Provider != caller.String() {
		return sdkerrors.Wrapf(types.ErrUnauthorized, "caller %s is not the assigned provider", caller.String())
	}
	if job.Status != types.JobStatusSubmitted {
		return sdkerrors.Wrapf(types.ErrInvalidJobState, "job %d is %s", jobID, job.Status)
	}
	if err := types.ValidateFailureReason(reason); err != nil {
		return sdkerrors.Wrapf(types.ErrInvalidInput, "invalid reason: %v", err)
	}

	job.Status = types.JobStatusFailed
	job.FailureReason = reason
	if err := k.SetJob(ctx, job); err != nil {
		return err
	}

	if err := k.refundEscrow(ctx, job); err != nil {
		return err
	}

	record, found := k.GetProvider(ctx, caller)
	if found {
		record.TotalJobsFailed++
		if err := k.SetProvider(ctx, record); err != nil {
			return err
		}
	}

	k.metrics.JobsFailed.Inc()

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeJobFailed,
			sdk.NewAttribute(types.AttributeKeyJobID, fmt.Sprintf("%d", jobID)),
			sdk.NewAttribute(types.AttributeKeyProvider, job.Provider),
			sdk.NewAttribute(types.AttributeKeyReason, reason),
		),
	)

	return nil
}

// GetJob returns the job with the given id
func (k Keeper) GetJob(ctx context.Context, jobID uint64) (types.Job, bool) {
	store := k.getStore(ctx)
	bz := store.Get(JobKey(jobID))
	if bz == nil {
		return types.Job{}, false
	}

	var job types.Job
	if err := json.Unmarshal(bz, &job); err != nil {
		return types.Job{}, false
	}
	return job, true
}

// SetJob stores a job record
func (k Keeper) SetJob(ctx context.Context, job types.Job) error {
	bz, err := json.Marshal(job)
	if err != nil {
		return sdkerrors.Wrapf(types.ErrInvalidInput, "failed to marshal job: %v", err)
	}

	store := k.getStore(ctx)
	store.Set(JobKey(job.Id), bz)
	return nil
}

// IterateJobs walks all jobs in id order until cb returns true
func (k Keeper) IterateJobs(ctx context.Context, cb func(types.Job) bool) {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, JobKeyPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var job types.Job
		if err := json.Unmarshal(iterator.Value(), &job); err != nil {
			continue
		}
		if cb(job) {
			break
		}
	}
}

// GetJobsByProvider returns a provider's jobs in submission order
func (k Keeper) GetJobsByProvider(ctx context.Context, provider sdk.AccAddress) []types.Job {
	jobs := []types.Job{}
	k.iterateJobIndex(ctx, JobsByProviderIterKey(provider), func(job types.Job) bool {
		jobs = append(jobs, job)
		return false
	})
	return jobs
}

// GetJobsByClient returns a client's jobs in submission order
func (k Keeper) GetJobsByClient(ctx context.Context, client sdk.AccAddress) []types.Job {
	jobs := []types.Job{}
	k.iterateJobIndex(ctx, JobsByClientIterKey(client), func(job types.Job) bool {
		jobs = append(jobs, job)
		return false
	})
	return jobs
}

func (k Keeper) iterateJobIndex(ctx context.Context, prefix []byte, cb func(types.Job) bool) {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, prefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		job, found := k.GetJob(ctx, GetIDFromBytes(iterator.Value()))
		if !found {
			continue
		}
		if cb(job) {
			break
		}
	}
}

// GetNextJobID returns the id the next submitted job will receive
func (k Keeper) GetNextJobID(ctx context.Context) uint64 {
	store := k.getStore(ctx)
	if bz := store.Get(NextJobIDKey); bz != nil {
		return GetIDFromBytes(bz)
	}
	return 1
}

// SetNextJobID sets the next job id counter. Used by genesis import.
func (k Keeper) SetNextJobID(ctx context.Context, id uint64) {
	store := k.getStore(ctx)
	store.Set(NextJobIDKey, GetIDBytes(id))
}

// nextJobID allocates the next job id, starting at 1
func (k Keeper) nextJobID(ctx context.Context) uint64 {
	id := k.GetNextJobID(ctx)
	k.SetNextJobID(ctx, id+1)
	return id
}
