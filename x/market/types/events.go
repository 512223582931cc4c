package types

// Event types for the Market module
// All event types use lowercase with underscore separator (module_action format)
const (
	// Ledger events
	EventTypeFundsDeposited = "market_funds_deposited"
	EventTypeFundsWithdrawn = "market_funds_withdrawn"

	// Resource events
	EventTypeResourceListed = "market_resource_listed"

	// Auction events
	EventTypeAuctionCreated = "market_auction_created"
	EventTypeBidPlaced      = "market_bid_placed"
	EventTypeBidRefunded    = "market_bid_refunded"
	EventTypeAuctionEnded   = "market_auction_ended"
	EventTypeAuctionExpired = "market_auction_expired"

	// Job events
	EventTypeJobCreated        = "market_job_created"
	EventTypeProofSubmitted    = "market_proof_submitted"
	EventTypeMilestoneReleased = "market_milestone_released"

	// Reputation events
	EventTypeReputationUpdated = "market_reputation_updated"
)

// Event attribute keys for the Market module
// All attribute keys use lowercase with underscore separator
const (
	// Actor attributes
	AttributeKeyOwner     = "owner"
	AttributeKeyRequester = "requester"
	AttributeKeyProvider  = "provider"
	AttributeKeyBidder    = "bidder"
	AttributeKeyDepositor = "depositor"

	// Identifier attributes
	AttributeKeyResourceID = "resource_id"
	AttributeKeyAuctionID  = "auction_id"
	AttributeKeyJobID      = "job_id"

	// Amount attributes
	AttributeKeyAmount        = "amount"
	AttributeKeyFee           = "fee"
	AttributeKeyPayout        = "payout"
	AttributeKeyStartingPrice = "starting_price"
	AttributeKeyWinningBid    = "winning_bid"
	AttributeKeyHourlyRate    = "hourly_rate"

	// Auction attributes
	AttributeKeyEndHeight = "end_height"

	// Job attributes
	AttributeKeyMilestoneIndex = "milestone_index"
	AttributeKeyMilestoneCount = "milestone_count"
	AttributeKeyProofHash      = "proof_hash"

	// Reputation attributes
	AttributeKeyScore         = "score"
	AttributeKeyCompletedJobs = "completed_jobs"
	AttributeKeyTotalJobs     = "total_jobs"
	AttributeKeyTotalEarned   = "total_earned"

	// Generic attributes
	AttributeKeyHeight = "height"
)
