package types

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// GenesisState defines the marketplace module's genesis state.
type GenesisState struct {
	Params    Params     `json:"params"`
	Providers []Provider `json:"providers"`
	Jobs      []Job      `json:"jobs"`
	NextJobId uint64     `json:"next_job_id"`
}

// DefaultGenesis returns the default genesis state for the module.
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Params:    DefaultParams(),
		Providers: []Provider{},
		Jobs:      []Job{},
		NextJobId: 1,
	}
}

// NewGenesisState constructs a genesis state from its components.
func NewGenesisState(params Params, providers []Provider, jobs []Job, nextJobID uint64) *GenesisState {
	return &GenesisState{
		Params:    params,
		Providers: providers,
		Jobs:      jobs,
		NextJobId: nextJobID,
	}
}

// Validate performs basic genesis state validation.
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return err
	}

	if gs.NextJobId == 0 {
		return fmt.Errorf("next job id must be positive")
	}

	providerAddrs := make(map[string]struct{}, len(gs.Providers))
	providerSeqs := make(map[uint64]struct{}, len(gs.Providers))
	for _, p := range gs.Providers {
		if _, err := sdk.AccAddressFromBech32(p.Address); err != nil {
			return fmt.Errorf("invalid provider address %q: %w", p.Address, err)
		}
		if _, ok := providerAddrs[p.Address]; ok {
			return fmt.Errorf("duplicate provider address %s", p.Address)
		}
		providerAddrs[p.Address] = struct{}{}

		if p.Seq == 0 {
			return fmt.Errorf("provider %s: registration sequence must be positive", p.Address)
		}
		if _, ok := providerSeqs[p.Seq]; ok {
			return fmt.Errorf("provider %s: duplicate registration sequence %d", p.Address, p.Seq)
		}
		providerSeqs[p.Seq] = struct{}{}

		if err := ValidateCapabilities(p.Capabilities); err != nil {
			return fmt.Errorf("provider %s: %w", p.Address, err)
		}
		if err := ValidatePricing(p.Pricing); err != nil {
			return fmt.Errorf("provider %s: %w", p.Address, err)
		}
	}

	jobIDs := make(map[uint64]struct{}, len(gs.Jobs))
	for _, j := range gs.Jobs {
		if j.Id == 0 {
			return fmt.Errorf("job id must be positive")
		}
		if j.Id >= gs.NextJobId {
			return fmt.Errorf("job id %d not below next job id %d", j.Id, gs.NextJobId)
		}
		if _, ok := jobIDs[j.Id]; ok {
			return fmt.Errorf("duplicate job id %d", j.Id)
		}
		jobIDs[j.Id] = struct{}{}

		if _, err := sdk.AccAddressFromBech32(j.Client); err != nil {
			return fmt.Errorf("job %d: invalid client address: %w", j.Id, err)
		}
		if _, err := sdk.AccAddressFromBech32(j.Provider); err != nil {
			return fmt.Errorf("job %d: invalid provider address: %w", j.Id, err)
		}
		if !j.Status.Valid() {
			return fmt.Errorf("job %d: unknown status %q", j.Id, j.Status)
		}
		if j.EscrowedAmount.IsNil() || !j.EscrowedAmount.IsPositive() {
			return fmt.Errorf("job %d: escrowed amount must be positive", j.Id)
		}
	}

	return nil
}
