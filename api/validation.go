package api

import (
	"encoding/base64"
	"fmt"
	"html"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/gin-gonic/gin"

	markettypes "github.com/grid-chain/grid/x/market/types"
)

// Validation constants
const (
	MaxRequestSize    = 1 << 20 // 1 MB
	MaxUsernameLength = 30
	MinUsernameLength = 3
	MinPasswordLength = 8
	MaxPasswordLength = 128
	MaxMemoLength     = 256
	MaxAmountLength   = 40
	MaxAddressLength  = 100
	MaxTxHashLength   = 64
	MaxTxBytesLength  = 1 << 20 // Encoded tx cap, matches the node's mempool limit
)

// Regular expressions for validation
var (
	// alphanumeric with underscore and hyphen
	usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

	// Bech32 address format (grid1...)
	bech32Regex = regexp.MustCompile(`^[a-z]{3,10}1[a-z0-9]{38,100}$`)

	// Hex string (0x prefix optional)
	hexRegex = regexp.MustCompile(`^(0x)?[0-9a-fA-F]+$`)

	// Unsigned integer string
	uintRegex = regexp.MustCompile(`^[0-9]+$`)
)

// ValidationError represents a validation error
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors holds multiple validation errors
type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

func (v *ValidationErrors) Add(field, message string) {
	v.Errors = append(v.Errors, ValidationError{
		Field:   field,
		Message: message,
	})
}

func (v *ValidationErrors) HasErrors() bool {
	return len(v.Errors) > 0
}

func (v *ValidationErrors) Error() string {
	if !v.HasErrors() {
		return ""
	}
	var sb strings.Builder
	for i, err := range v.Errors {
		if i > 0 {
			sb.WriteString("; ")
		}
		sb.WriteString(fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return sb.String()
}

// ===================  Input Sanitization ====================

// SanitizeString removes potentially dangerous characters and HTML
func SanitizeString(input string) string {
	// Remove null bytes
	input = strings.ReplaceAll(input, "\x00", "")
	// Escape HTML entities
	input = html.EscapeString(input)
	// Trim whitespace
	input = strings.TrimSpace(input)
	return input
}

// SanitizeURL validates and sanitizes URL input
func SanitizeURL(input string) (string, error) {
	parsed, err := url.Parse(input)
	if err != nil {
		return "", fmt.Errorf("invalid URL format")
	}

	// Only allow http and https
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", fmt.Errorf("only http and https schemes are allowed")
	}

	return parsed.String(), nil
}

// SanitizeJSON escapes JSON strings to prevent injection
func SanitizeJSON(input string) string {
	// Remove control characters
	input = strings.Map(func(r rune) rune {
		if r < 32 && r != '\n' && r != '\r' && r != '\t' {
			return -1
		}
		return r
	}, input)
	return input
}

// =================== Username Validation ===================

// ValidateUsername validates username format and length
func ValidateUsername(username string) error {
	username = strings.TrimSpace(username)

	if len(username) < MinUsernameLength {
		return fmt.Errorf("username must be at least %d characters", MinUsernameLength)
	}

	if len(username) > MaxUsernameLength {
		return fmt.Errorf("username must not exceed %d characters", MaxUsernameLength)
	}

	if !usernameRegex.MatchString(username) {
		return fmt.Errorf("username can only contain letters, numbers, underscores, and hyphens")
	}

	// Check for reserved usernames
	reserved := []string{"admin", "root", "system", "api", "grid", "treasury", "escrow", "market", "test"}
	lowerUsername := strings.ToLower(username)
	for _, r := range reserved {
		if lowerUsername == r {
			return fmt.Errorf("username is reserved")
		}
	}

	return nil
}

// =================== Password Validation ===================

// ValidatePassword validates password strength
func ValidatePassword(password string) error {
	if len(password) < MinPasswordLength {
		return fmt.Errorf("password must be at least %d characters", MinPasswordLength)
	}

	if len(password) > MaxPasswordLength {
		return fmt.Errorf("password must not exceed %d characters", MaxPasswordLength)
	}

	// Check for at least one uppercase, one lowercase, one digit
	hasUpper := regexp.MustCompile(`[A-Z]`).MatchString(password)
	hasLower := regexp.MustCompile(`[a-z]`).MatchString(password)
	hasDigit := regexp.MustCompile(`[0-9]`).MatchString(password)

	if !hasUpper || !hasLower || !hasDigit {
		return fmt.Errorf("password must contain at least one uppercase letter, one lowercase letter, and one digit")
	}

	return nil
}

// =================== Address Validation ===================

// ValidateAddress validates blockchain address format
func ValidateAddress(address string) error {
	if address == "" {
		return fmt.Errorf("address is required")
	}

	address = strings.TrimSpace(address)

	if len(address) > MaxAddressLength {
		return fmt.Errorf("address too long")
	}

	// Try to parse as Cosmos SDK address
	_, err := sdk.AccAddressFromBech32(address)
	if err != nil {
		// Check if it matches bech32 format at least
		if !bech32Regex.MatchString(address) {
			return fmt.Errorf("invalid address format")
		}
	}

	return nil
}

// =================== Amount Validation ===================

// ValidateAmount validates integer amount strings. Marketplace amounts are
// whole base units (ugrid), never decimals.
func ValidateAmount(amount string) error {
	if amount == "" {
		return fmt.Errorf("amount is required")
	}

	amount = strings.TrimSpace(amount)

	if len(amount) > MaxAmountLength {
		return fmt.Errorf("amount too long")
	}

	if !uintRegex.MatchString(amount) {
		return fmt.Errorf("amount must be a non-negative integer")
	}

	parsed, ok := math.NewIntFromString(amount)
	if !ok {
		return fmt.Errorf("invalid amount format")
	}

	if !parsed.IsPositive() {
		return fmt.Errorf("amount must be positive")
	}

	return nil
}

// =================== Token/Denom Validation ===================

// ValidateDenom validates token denomination
func ValidateDenom(denom string) error {
	if denom == "" {
		return fmt.Errorf("denom is required")
	}

	denom = strings.TrimSpace(denom)

	if len(denom) < 3 || len(denom) > 128 {
		return fmt.Errorf("denom must be between 3 and 128 characters")
	}

	// Check if it's alphanumeric with some special chars
	validDenom := regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9/-]{2,127}$`)
	if !validDenom.MatchString(denom) {
		return fmt.Errorf("invalid denom format")
	}

	return nil
}

// =================== ID Validation ===================

// ParseEntityID parses a resource, auction, or job id path parameter. The
// chain assigns ids sequentially from 1, so 0 is never a valid reference.
func ParseEntityID(field, raw string) (uint64, error) {
	raw = strings.TrimSpace(raw)

	if raw == "" {
		return 0, fmt.Errorf("%s is required", field)
	}

	if !uintRegex.MatchString(raw) {
		return 0, fmt.Errorf("%s must be a positive integer", field)
	}

	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", field, err)
	}

	if id == 0 {
		return 0, fmt.Errorf("%s must be greater than zero", field)
	}

	return id, nil
}

// ValidateMilestoneIndex validates a milestone index query parameter
func ValidateMilestoneIndex(raw string) (uint64, error) {
	raw = strings.TrimSpace(raw)

	if raw == "" {
		return 0, fmt.Errorf("milestone index is required")
	}

	if !uintRegex.MatchString(raw) {
		return 0, fmt.Errorf("milestone index must be a non-negative integer")
	}

	idx, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid milestone index: %w", err)
	}

	return idx, nil
}

// =================== Proof Validation ===================

// ValidateProof validates an execution proof payload against the same cap
// the chain enforces at CheckTx.
func ValidateProof(proof string) error {
	if proof == "" {
		return fmt.Errorf("proof is required")
	}

	if len(proof) > markettypes.MaxProofBytes {
		return fmt.Errorf("proof exceeds maximum size of %d bytes", markettypes.MaxProofBytes)
	}

	return nil
}

// =================== Hash Validation ===================

// ValidateTxHash validates a transaction hash path parameter
func ValidateTxHash(hash string) error {
	if hash == "" {
		return fmt.Errorf("tx hash is required")
	}

	hash = strings.TrimSpace(hash)
	hash = strings.TrimPrefix(hash, "0x")

	if len(hash) != MaxTxHashLength {
		return fmt.Errorf("tx hash must be %d hex characters", MaxTxHashLength)
	}

	if !hexRegex.MatchString(hash) {
		return fmt.Errorf("invalid tx hash format")
	}

	return nil
}

// =================== Memo Validation ===================

// ValidateMemo validates transaction memo
func ValidateMemo(memo string) error {
	if len(memo) > MaxMemoLength {
		return fmt.Errorf("memo must not exceed %d characters", MaxMemoLength)
	}

	// Check for null bytes and control characters
	for _, r := range memo {
		if r == 0 || (r < 32 && r != '\n' && r != '\r' && r != '\t') {
			return fmt.Errorf("memo contains invalid characters")
		}
	}

	return nil
}

// =================== Pagination Validation ===================

// ValidatePagination validates and sanitizes pagination parameters
func ValidatePagination(params *PaginationParams) error {
	if params.Page < 1 {
		params.Page = 1
	}

	if params.PageSize < 1 {
		params.PageSize = 20
	}

	if params.PageSize > 100 {
		params.PageSize = 100
	}

	params.Offset = (params.Page - 1) * params.PageSize

	return nil
}

// =================== Query Parameter Validation ===================

// ValidateLimit validates limit query parameter
func ValidateLimit(limitStr string, defaultLimit, maxLimit int) int {
	limit := defaultLimit
	if limitStr != "" {
		if uintRegex.MatchString(limitStr) {
			fmt.Sscanf(limitStr, "%d", &limit)
		}
	}

	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	return limit
}

// ValidateHeight validates block height
func ValidateHeight(heightStr string) (int64, error) {
	if heightStr == "" {
		return 0, fmt.Errorf("height is required")
	}

	if !uintRegex.MatchString(heightStr) {
		return 0, fmt.Errorf("height must be a positive integer")
	}

	var height int64
	_, err := fmt.Sscanf(heightStr, "%d", &height)
	if err != nil {
		return 0, fmt.Errorf("invalid height format")
	}

	if height < 0 {
		return 0, fmt.Errorf("height must be non-negative")
	}

	if height > 1e12 { // Sanity check
		return 0, fmt.Errorf("height too large")
	}

	return height, nil
}

// =================== Request Validation ===================

// ValidateRegisterRequest validates registration request
func ValidateRegisterRequest(req *RegisterRequest) error {
	errors := &ValidationErrors{}

	if err := ValidateUsername(req.Username); err != nil {
		errors.Add("username", err.Error())
	}

	if err := ValidatePassword(req.Password); err != nil {
		errors.Add("password", err.Error())
	}

	if req.Address != "" {
		if err := ValidateAddress(req.Address); err != nil {
			errors.Add("address", err.Error())
		}
	}

	if errors.HasErrors() {
		return errors
	}

	// Sanitize
	req.Username = SanitizeString(req.Username)
	req.Address = strings.TrimSpace(req.Address)

	return nil
}

// ValidateLoginRequest validates login request
func ValidateLoginRequest(req *LoginRequest) error {
	errors := &ValidationErrors{}

	if req.Username == "" {
		errors.Add("username", "username is required")
	} else if len(req.Username) > MaxUsernameLength {
		errors.Add("username", "username too long")
	}

	if req.Password == "" {
		errors.Add("password", "password is required")
	} else if len(req.Password) > MaxPasswordLength {
		errors.Add("password", "password too long")
	}

	if errors.HasErrors() {
		return errors
	}

	// Sanitize
	req.Username = SanitizeString(req.Username)

	return nil
}

// ValidateBroadcastTxRequest validates a transaction relay request and
// returns the decoded transaction bytes.
func ValidateBroadcastTxRequest(req *BroadcastTxRequest) ([]byte, error) {
	errors := &ValidationErrors{}

	if req.TxBytes == "" {
		errors.Add("tx_bytes", "tx_bytes is required")
		return nil, errors
	}

	if len(req.TxBytes) > MaxTxBytesLength {
		errors.Add("tx_bytes", fmt.Sprintf("encoded tx exceeds %d bytes", MaxTxBytesLength))
		return nil, errors
	}

	txBytes, err := base64.StdEncoding.DecodeString(req.TxBytes)
	if err != nil {
		errors.Add("tx_bytes", "tx_bytes must be valid base64")
		return nil, errors
	}

	if len(txBytes) == 0 {
		errors.Add("tx_bytes", "decoded tx is empty")
		return nil, errors
	}

	return txBytes, nil
}

// =================== Helper Function for Gin Context ===================

// ValidateAndBindJSON validates and binds JSON with size limit
func ValidateAndBindJSON(c *gin.Context, obj interface{}) error {
	// Check content length
	if c.Request.ContentLength > MaxRequestSize {
		return fmt.Errorf("request body too large (max %d bytes)", MaxRequestSize)
	}

	// Bind JSON
	if err := c.ShouldBindJSON(obj); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	return nil
}

// GetUserFromContext safely retrieves user info from context
func GetUserFromContext(c *gin.Context) (userID, username, address string, err error) {
	userIDVal, exists := c.Get("user_id")
	if !exists {
		return "", "", "", fmt.Errorf("user not authenticated")
	}

	usernameVal, _ := c.Get("username")
	addressVal, _ := c.Get("address")

	userID, _ = userIDVal.(string)
	username, _ = usernameVal.(string)
	address, _ = addressVal.(string)

	if userID == "" {
		return "", "", "", fmt.Errorf("invalid user context")
	}

	return userID, username, address, nil
}
