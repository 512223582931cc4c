package api

import (
	"time"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// ==================== Authentication Types ====================

// RegisterRequest represents a registration request. Address is optional; an
// account without a linked on-chain address can read the marketplace but not
// relay transactions.
type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=30"`
	Password string `json:"password" binding:"required,min=8"`
	Address  string `json:"address,omitempty"`
}

// LoginRequest represents a login request
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse represents authentication response
type AuthResponse struct {
	Token     string `json:"token"`
	ExpiresIn int64  `json:"expires_in"` // Seconds until the token expires
	Username  string `json:"username"`
	UserID    string `json:"user_id"`
	Address   string `json:"address,omitempty"`
}

// User represents a gateway account. Accounts exist so the relay and
// websocket endpoints can be rate limited and audited per caller; funds and
// marketplace state live on chain, keyed by the linked bech32 address.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Address      string    `json:"address,omitempty"`
	Tier         string    `json:"tier"`
	CreatedAt    time.Time `json:"created_at"`
}

// ==================== Marketplace Types ====================

// MarketStats is the cached marketplace overview served by /api/market/stats
// and pushed to websocket subscribers of the "market" channel.
type MarketStats struct {
	Height          int64     `json:"height"`
	ListedResources uint64    `json:"listed_resources"`
	OpenAuctions    uint64    `json:"open_auctions"`
	TotalJobs       uint64    `json:"total_jobs"`
	TreasuryBalance string    `json:"treasury_balance"`
	BondDenom       string    `json:"bond_denom"`
	LastUpdated     time.Time `json:"last_updated"`
}

// ResourceListResponse wraps a page of resource listings
type ResourceListResponse struct {
	Resources  interface{} `json:"resources"`
	Pagination interface{} `json:"pagination,omitempty"`
}

// AuctionListResponse wraps a page of auctions
type AuctionListResponse struct {
	Auctions   interface{} `json:"auctions"`
	Pagination interface{} `json:"pagination,omitempty"`
}

// AuctionStatusResponse reports whether an auction still accepts bids
type AuctionStatusResponse struct {
	AuctionID uint64 `json:"auction_id"`
	Active    bool   `json:"active"`
}

// JobListResponse wraps a page of jobs
type JobListResponse struct {
	Jobs       interface{} `json:"jobs"`
	Pagination interface{} `json:"pagination,omitempty"`
}

// EscrowResponse reports a job's milestone escrow entries and the amount
// still held by the module
type EscrowResponse struct {
	JobID     uint64      `json:"job_id"`
	Entries   interface{} `json:"entries"`
	Remaining string      `json:"remaining"`
}

// BalanceResponse reports an account's custodial marketplace balance
type BalanceResponse struct {
	Address string `json:"address"`
	Balance string `json:"balance"`
	Denom   string `json:"denom"`
}

// ReputationResponse reports a provider's completion history
type ReputationResponse struct {
	Provider      string `json:"provider"`
	Score         uint32 `json:"score"`
	CompletedJobs uint64 `json:"completed_jobs"`
	TotalJobs     uint64 `json:"total_jobs"`
	TotalEarned   string `json:"total_earned"`
}

// ==================== Transaction Relay Types ====================

// BroadcastTxRequest carries a signed, encoded transaction produced by a
// wallet. The gateway never holds keys; it only relays.
type BroadcastTxRequest struct {
	// TxBytes is the base64 encoding of the signed transaction.
	TxBytes string `json:"tx_bytes" binding:"required"`
}

// BroadcastTxResponse reports the outcome of a relayed transaction
type BroadcastTxResponse struct {
	TxHash    string `json:"tx_hash"`
	Code      uint32 `json:"code"`
	RawLog    string `json:"raw_log,omitempty"`
	Height    int64  `json:"height,omitempty"`
	GasWanted int64  `json:"gas_wanted,omitempty"`
	GasUsed   int64  `json:"gas_used,omitempty"`
}

// TxStatusResponse reports a confirmed transaction looked up by hash
type TxStatusResponse struct {
	TxHash    string `json:"tx_hash"`
	Code      uint32 `json:"code"`
	Height    int64  `json:"height"`
	GasWanted int64  `json:"gas_wanted"`
	GasUsed   int64  `json:"gas_used"`
	Timestamp string `json:"timestamp,omitempty"`
	RawLog    string `json:"raw_log,omitempty"`
}

// ==================== WebSocket Types ====================

// WSMessage represents a WebSocket message
type WSMessage struct {
	Type    string      `json:"type"`
	Channel string      `json:"channel,omitempty"`
	Data    interface{} `json:"data"`
}

// WSSubscribeMessage represents a subscription request
type WSSubscribeMessage struct {
	Type    string `json:"type"` // "subscribe" or "unsubscribe"
	Channel string `json:"channel"`
}

// ==================== Common Types ====================

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

// SuccessResponse represents a generic success response
type SuccessResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// ==================== Pagination Types ====================

// PaginationParams represents pagination parameters
type PaginationParams struct {
	Page     int `form:"page" json:"page"`
	PageSize int `form:"page_size" json:"page_size"`
	Offset   int `form:"offset" json:"offset"`
}

// DefaultPagination returns default pagination parameters
func DefaultPagination() PaginationParams {
	return PaginationParams{
		Page:     1,
		PageSize: 20,
		Offset:   0,
	}
}

// ==================== Helper Functions ====================

// CoinsFromString parses a coin string like "1000000ugrid"
func CoinsFromString(s string) (sdk.Coins, error) {
	return sdk.ParseCoinsNormalized(s)
}
