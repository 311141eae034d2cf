package types

import (
	"cosmossdk.io/math"
)

// JobStatus is the lifecycle state of a Job.
type JobStatus string

const (
	JobStatusSubmitted JobStatus = "submitted"
	JobStatusCompleted JobStatus = "completed"
	JobStatusCancelled JobStatus = "cancelled"
	JobStatusFailed    JobStatus = "failed"
)

// IsTerminal reports whether no further transition is permitted from s.
func (s JobStatus) IsTerminal() bool {
	switch s {
	case JobStatusCompleted, JobStatusCancelled, JobStatusFailed:
		return true
	}
	return false
}

// Valid reports whether s is a known job status.
func (s JobStatus) Valid() bool {
	switch s {
	case JobStatusSubmitted, JobStatusCompleted, JobStatusCancelled, JobStatusFailed:
		return true
	}
	return false
}

// ServiceCapability advertises one service a provider can perform.
type ServiceCapability struct {
	ServiceType       string `json:"service_type"`
	MaxComplexity     uint64 `json:"max_complexity"`
	AvgCompletionTime uint64 `json:"avg_completion_time"`
}

// PricingTier is the advertised price for one service type.
type PricingTier struct {
	BasePrice math.Int `json:"base_price"`
	Unit      string   `json:"unit"`
}

// Provider represents a registered service provider.
//
// Address, Seq, RegisteredAt and the counters survive re-registration;
// everything else is overwritten by a repeat RegisterProvider.
type Provider struct {
	Address            string                 `json:"address"`
	Name               string                 `json:"name"`
	Capabilities       []ServiceCapability    `json:"capabilities"`
	Pricing            map[string]PricingTier `json:"pricing"`
	Endpoint           string                 `json:"endpoint,omitempty"`
	Active             bool                   `json:"active"`
	Reputation         uint64                 `json:"reputation"`
	TotalJobsCompleted uint64                 `json:"total_jobs_completed"`
	TotalJobsFailed    uint64                 `json:"total_jobs_failed"`
	RegisteredAt       int64                  `json:"registered_at"`
	Seq                uint64                 `json:"seq"`
}

// SupportsServiceType reports whether the provider advertises a capability
// matching the given service type.
func (p Provider) SupportsServiceType(serviceType string) bool {
	for _, c := range p.Capabilities {
		if c.ServiceType == serviceType {
			return true
		}
	}
	return false
}

// Job represents a submitted marketplace job with its escrowed payment.
type Job struct {
	Id             uint64    `json:"id"`
	Client         string    `json:"client"`
	Provider       string    `json:"provider"`
	JobType        string    `json:"job_type"`
	Parameters     string    `json:"parameters,omitempty"`
	EscrowedAmount math.Int  `json:"escrowed_amount"`
	Status         JobStatus `json:"status"`
	ResultHash     string    `json:"result_hash,omitempty"`
	ResultURL      string    `json:"result_url,omitempty"`
	FailureReason  string    `json:"failure_reason,omitempty"`
	CreatedAt      int64     `json:"created_at"`
	CompletedAt    int64     `json:"completed_at,omitempty"`
}
