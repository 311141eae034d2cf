package types

// Event types for the Marketplace module
// All event types use lowercase with underscore separator (module_action format)
const (
	// Provider events
	EventTypeProviderRegistered    = "marketplace_provider_registered"
	EventTypeProviderUpdated       = "marketplace_provider_updated"
	EventTypeProviderStatusChanged = "marketplace_provider_status_changed"

	// Job lifecycle events
	EventTypeJobSubmitted = "marketplace_job_submitted"
	EventTypeJobCompleted = "marketplace_job_completed"
	EventTypeJobCancelled = "marketplace_job_cancelled"
	EventTypeJobFailed    = "marketplace_job_failed"

	// Escrow events
	EventTypeEscrowLocked       = "marketplace_escrow_locked"
	EventTypeEscrowRefunded     = "marketplace_escrow_refunded"
	EventTypePaymentDistributed = "marketplace_payment_distributed"
)

// Event attribute keys for the Marketplace module
// All attribute keys use lowercase with underscore separator
const (
	AttributeKeyProvider       = "provider"
	AttributeKeyClient         = "client"
	AttributeKeyJobID          = "job_id"
	AttributeKeyJobType        = "job_type"
	AttributeKeyAmount         = "amount"
	AttributeKeyProviderShare  = "provider_share"
	AttributeKeyCommunityShare = "community_share"
	AttributeKeyCommunityPool  = "community_pool"
	AttributeKeyResultHash     = "result_hash"
	AttributeKeyActive         = "active"
	AttributeKeyReason         = "reason"
)
