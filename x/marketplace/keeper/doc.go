// Package keeper implements the Marketplace module keeper.
//
// The Marketplace module coordinates a decentralized compute marketplace:
// providers register their service offerings, clients submit jobs with an
// attached payment that is held in escrow by the module account, and on
// completion the escrow is split deterministically between the provider and
// a community pool.
//
// # Core Functionality
//
// Provider Registry: register and update providers with capabilities,
// pricing tiers and an advisory endpoint. Registration order is indexed so
// listings are deterministic.
//
// Job Lifecycle: jobs move from submitted to exactly one terminal state
// (completed, cancelled or failed). Completion releases the escrow; the
// other terminal states refund the client in full. A job in a terminal
// state can never be mutated again.
//
// Payment Distribution: the community share is floored and the remainder
// goes to the provider, so the two shares always sum exactly to the
// escrowed amount.
//
// # Usage Patterns
//
// Submitting a job:
//
//	jobID, err := keeper.SubmitJob(ctx, client, provider, jobType, parameters, payment)
//
// Completing a job:
//
//	providerShare, communityShare, err := keeper.CompleteJob(ctx, provider, jobID, resultHash, resultURL)
//
// # Metrics
//
// Exposes Prometheus metrics for job counts, provider registrations and
// escrow flows via MarketplaceMetrics.
package keeper
