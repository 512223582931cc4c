package types

import (
	"errors"

	sdkerrors "cosmossdk.io/errors"
)

// Market module sentinel errors with recovery suggestions

var (
	// Authorization errors
	ErrNotAuthorized = sdkerrors.Register(ModuleName, 2, "account not authorized for this operation")

	// Resource errors
	ErrResourceNotFound = sdkerrors.Register(ModuleName, 10, "compute resource not found")

	// Auction lifecycle errors
	ErrAuctionNotFound = sdkerrors.Register(ModuleName, 20, "auction not found")
	ErrAuctionEnded    = sdkerrors.Register(ModuleName, 21, "auction has already ended")
	ErrAuctionActive   = sdkerrors.Register(ModuleName, 22, "auction is still active")
	ErrBidTooLow       = sdkerrors.Register(ModuleName, 23, "bid does not exceed the current bid")

	// Ledger errors
	ErrInsufficientBalance = sdkerrors.Register(ModuleName, 30, "insufficient ledger balance")

	// Job and escrow errors
	ErrJobNotFound       = sdkerrors.Register(ModuleName, 40, "job not found")
	ErrInvalidProof      = sdkerrors.Register(ModuleName, 41, "invalid execution proof")
	ErrMilestoneNotReady = sdkerrors.Register(ModuleName, 42, "milestone not ready for release")
	ErrAlreadyCompleted  = sdkerrors.Register(ModuleName, 43, "operation target already completed")

	// Validation errors
	ErrInvalidAddress   = sdkerrors.Register(ModuleName, 50, "invalid bech32 address")
	ErrInvalidAmount    = sdkerrors.Register(ModuleName, 51, "invalid amount")
	ErrValidationFailed = sdkerrors.Register(ModuleName, 52, "message validation failed")
)

// ErrorWithRecovery wraps an error with recovery suggestions
type ErrorWithRecovery struct {
	Err      error
	Recovery string
}

func (e *ErrorWithRecovery) Error() string {
	return e.Err.Error()
}

func (e *ErrorWithRecovery) Unwrap() error {
	return e.Err
}

// RecoverySuggestions provides actionable recovery steps for each error type
var RecoverySuggestions = map[error]string{
	ErrNotAuthorized: "Verify the message signer. Milestone releases must come from the job requester and execution proofs from the job provider.",

	ErrResourceNotFound: "Verify the resource ID is correct. Resource IDs are assigned sequentially starting at 1. Query the resource list to discover valid IDs.",

	ErrAuctionNotFound: "Verify the auction ID. Auctions are assigned sequential IDs at creation. Query active auctions via the Auctions endpoint.",
	ErrAuctionEnded:    "Bidding closed at the auction's end height or the auction was settled. Query the auction to check end_height and ended flag. Create or find another auction.",
	ErrAuctionActive:   "Settlement is only possible once the chain reaches the auction's end height. Wait for end_height and retry; anyone may settle.",
	ErrBidTooLow:       "Bids must strictly exceed the current bid; matching it is not enough. Query the auction for the current bid and raise your offer.",

	ErrInsufficientBalance: "Deposit funds into your market ledger balance with MsgDeposit before bidding or withdrawing. Bids are debited from the ledger balance, not the bank balance.",

	ErrJobNotFound:       "Verify the job ID. Jobs are only created when an auction settles with a winning bid; a no-bid settlement creates no job.",
	ErrInvalidProof:      "Check proof encoding and size. Proof payloads are stored opaquely and capped at the tx admission layer.",
	ErrMilestoneNotReady: "Milestone index is out of range or the escrow entry is missing. Indices run from 0 to milestone_count-1. Query the job's escrow entries.",
	ErrAlreadyCompleted:  "The auction was already settled, the job already has a proof, or the milestone was already released. These transitions are one-shot.",

	ErrInvalidAddress: "Addresses must be valid bech32 account addresses with the chain's prefix. Check for typos and the correct prefix.",
	ErrInvalidAmount:  "Amounts must be non-nil positive integers denominated in the base denom.",
}

// WrapWithRecovery wraps an error with recovery suggestion
func WrapWithRecovery(err error, msg string, args ...interface{}) error {
	wrapped := sdkerrors.Wrapf(err, msg, args...)

	if suggestion, ok := RecoverySuggestions[err]; ok {
		return &ErrorWithRecovery{
			Err:      wrapped,
			Recovery: suggestion,
		}
	}

	return wrapped
}

// GetRecoverySuggestion returns the recovery suggestion for an error
func GetRecoverySuggestion(err error) string {
	// Unwrap to find the root error
	rootErr := err
	for {
		if unwrapped := errors.Unwrap(rootErr); unwrapped != nil {
			rootErr = unwrapped
		} else {
			break
		}
	}

	if suggestion, ok := RecoverySuggestions[rootErr]; ok {
		return suggestion
	}

	return "No recovery suggestion available. Check error message for details."
}
