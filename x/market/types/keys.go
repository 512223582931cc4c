package types

const (
	// ModuleName defines the module name
	ModuleName = "market"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// MemStoreKey defines the in-memory store key
	MemStoreKey = "mem_" + ModuleName

	// RouterKey defines the module's message routing key
	RouterKey = ModuleName

	// QuerierRoute defines the module's query routing key
	QuerierRoute = ModuleName

	// BaseDenom is the coin denomination the marketplace settles in.
	// Deposits pull this denom from the bank; withdrawals pay it back out.
	BaseDenom = "ugrid"
)

// Protocol constants. These are consensus-critical and deliberately not
// governance parameters: changing any of them requires a coordinated upgrade.
const (
	// AuctionDurationBlocks is the number of blocks an auction accepts bids
	// after creation. At 4s blocks this is roughly ten minutes.
	AuctionDurationBlocks = int64(144)

	// JobMilestoneCount is the fixed number of escrow milestones every job
	// is partitioned into.
	JobMilestoneCount = uint64(3)

	// PlatformFeeNumerator and PlatformFeeDenominator define the platform
	// fee taken from each milestone payout: 25/1000 = 2.5%.
	PlatformFeeNumerator   = int64(25)
	PlatformFeeDenominator = int64(1000)

	// NoWinnerJobID is returned by auction settlement when the auction
	// closed without a single bid. It is a sentinel, never a stored job id;
	// real job ids start at 1.
	NoWinnerJobID = uint64(0)

	// MaxProofBytes caps the execution proof payload accepted at the tx
	// admission layer. Stateless anti-spam bound, not a verification rule.
	MaxProofBytes = 65536
)
