package keeper

import (
	"encoding/binary"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/address"
)

// Store key prefixes. Each record family gets its own byte prefix so
// iterators never cross families.
var (
	// ResourceKeyPrefix + id -> ComputeResource
	ResourceKeyPrefix = []byte{0x10}
	// ResourceCountKey -> next resource id
	ResourceCountKey = []byte{0x11}
	// ResourceByProviderPrefix + len-prefixed provider + id -> id
	ResourceByProviderPrefix = []byte{0x12}

	// AuctionKeyPrefix + id -> Auction
	AuctionKeyPrefix = []byte{0x20}
	// AuctionCountKey -> next auction id
	AuctionCountKey = []byte{0x21}
	// AuctionByEndHeightPrefix + end height + id -> id, for expiry sweeps
	AuctionByEndHeightPrefix = []byte{0x22}

	// JobKeyPrefix + id -> Job
	JobKeyPrefix = []byte{0x30}
	// JobCountKey -> next job id
	JobCountKey = []byte{0x31}
	// EscrowKeyPrefix + job id + milestone index -> EscrowEntry
	EscrowKeyPrefix = []byte{0x32}

	// BalanceKeyPrefix + address -> math.Int
	BalanceKeyPrefix = []byte{0x40}

	// ReputationKeyPrefix + address -> ReputationRecord
	ReputationKeyPrefix = []byte{0x50}

	// TreasuryKey -> math.Int
	TreasuryKey = []byte{0x60}

	// ParamsKey -> Params
	ParamsKey = []byte{0x70}
)

func uint64ToBytes(v uint64) []byte {
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, v)
	return bz
}

// ResourceKey returns the store key for a resource listing.
func ResourceKey(id uint64) []byte {
	return append(ResourceKeyPrefix, uint64ToBytes(id)...)
}

// ResourceByProviderKey returns the secondary index key for a provider's
// listing.
func ResourceByProviderKey(provider sdk.AccAddress, id uint64) []byte {
	key := append(ResourceByProviderPrefix, address.MustLengthPrefix(provider)...)
	return append(key, uint64ToBytes(id)...)
}

// ResourceByProviderIteratorPrefix returns the prefix covering all of a
// provider's listings.
func ResourceByProviderIteratorPrefix(provider sdk.AccAddress) []byte {
	return append(ResourceByProviderPrefix, address.MustLengthPrefix(provider)...)
}

// AuctionKey returns the store key for an auction.
func AuctionKey(id uint64) []byte {
	return append(AuctionKeyPrefix, uint64ToBytes(id)...)
}

// AuctionByEndHeightKey returns the expiry index key for an auction. Big
// endian height ordering lets the sweep stop at the first unexpired entry.
func AuctionByEndHeightKey(endHeight int64, id uint64) []byte {
	key := append(AuctionByEndHeightPrefix, uint64ToBytes(uint64(endHeight))...)
	return append(key, uint64ToBytes(id)...)
}

// AuctionByEndHeightIteratorPrefix returns the prefix covering all auctions
// ending at exactly the given height.
func AuctionByEndHeightIteratorPrefix(endHeight int64) []byte {
	return append(AuctionByEndHeightPrefix, uint64ToBytes(uint64(endHeight))...)
}

// JobKey returns the store key for a job.
func JobKey(id uint64) []byte {
	return append(JobKeyPrefix, uint64ToBytes(id)...)
}

// EscrowKey returns the store key for one milestone's escrow entry.
func EscrowKey(jobID, milestoneIndex uint64) []byte {
	key := append(EscrowKeyPrefix, uint64ToBytes(jobID)...)
	return append(key, uint64ToBytes(milestoneIndex)...)
}

// EscrowJobIteratorPrefix returns the prefix covering all escrow entries of
// a job, ordered by milestone index.
func EscrowJobIteratorPrefix(jobID uint64) []byte {
	return append(EscrowKeyPrefix, uint64ToBytes(jobID)...)
}

// BalanceKey returns the store key for an account's marketplace balance.
func BalanceKey(addr sdk.AccAddress) []byte {
	return append(BalanceKeyPrefix, addr.Bytes()...)
}

// ReputationKey returns the store key for a provider's reputation record.
func ReputationKey(provider sdk.AccAddress) []byte {
	return append(ReputationKeyPrefix, provider.Bytes()...)
}
