package types

import (
	"fmt"
)

// Params holds the operational knobs of the module. Settlement constants
// (auction duration, milestone count, fee rate) are compiled in and are not
// part of Params.
type Params struct {
	// ExpirySweepEnabled toggles the end-of-block scan that flags expired
	// auctions still waiting for settlement.
	ExpirySweepEnabled bool `json:"expiry_sweep_enabled"`
	// ExpirySweepLimit bounds how many auctions a single sweep inspects.
	ExpirySweepLimit uint64 `json:"expiry_sweep_limit"`
}

const (
	// DefaultExpirySweepLimit bounds how many expired auctions the end
	// blocker inspects per block.
	DefaultExpirySweepLimit = uint64(200)

	// MaxExpirySweepLimit is the largest sweep limit governance may set.
	MaxExpirySweepLimit = uint64(10_000)
)

// NewParams creates a new Params instance.
func NewParams(sweepEnabled bool, sweepLimit uint64) Params {
	return Params{
		ExpirySweepEnabled: sweepEnabled,
		ExpirySweepLimit:   sweepLimit,
	}
}

// DefaultParams returns the default module parameters.
func DefaultParams() Params {
	return NewParams(true, DefaultExpirySweepLimit)
}

// Validate validates the set of params.
func (p Params) Validate() error {
	if err := validateExpirySweepLimit(p.ExpirySweepLimit); err != nil {
		return err
	}
	return nil
}

func validateExpirySweepLimit(limit uint64) error {
	if limit == 0 {
		return fmt.Errorf("expiry sweep limit must be positive")
	}
	if limit > MaxExpirySweepLimit {
		return fmt.Errorf("expiry sweep limit %d exceeds maximum %d", limit, MaxExpirySweepLimit)
	}
	return nil
}
