package types

import (
	"cosmossdk.io/math"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Message types for the market module.
const (
	TypeMsgListResource         = "list_resource"
	TypeMsgCreateAuction        = "create_auction"
	TypeMsgPlaceBid             = "place_bid"
	TypeMsgEndAuction           = "end_auction"
	TypeMsgSubmitExecutionProof = "submit_execution_proof"
	TypeMsgReleaseMilestone     = "release_milestone"
	TypeMsgDeposit              = "deposit"
	TypeMsgWithdraw             = "withdraw"
	TypeMsgUpdateParams         = "update_params"
)

var (
	_ sdk.Msg = &MsgListResource{}
	_ sdk.Msg = &MsgCreateAuction{}
	_ sdk.Msg = &MsgPlaceBid{}
	_ sdk.Msg = &MsgEndAuction{}
	_ sdk.Msg = &MsgSubmitExecutionProof{}
	_ sdk.Msg = &MsgReleaseMilestone{}
	_ sdk.Msg = &MsgDeposit{}
	_ sdk.Msg = &MsgWithdraw{}
	_ sdk.Msg = &MsgUpdateParams{}
)

// MsgListResource registers a provider's hardware offer in the resource
// registry.
type MsgListResource struct {
	Provider   string       `json:"provider"`
	Spec       ResourceSpec `json:"spec"`
	HourlyRate math.Int     `json:"hourly_rate"`
}

// MsgListResourceResponse returns the id assigned to the new listing.
type MsgListResourceResponse struct {
	ResourceId uint64 `json:"resource_id"`
}

func NewMsgListResource(provider string, spec ResourceSpec, hourlyRate math.Int) *MsgListResource {
	return &MsgListResource{
		Provider:   provider,
		Spec:       spec,
		HourlyRate: hourlyRate,
	}
}

func (msg *MsgListResource) Route() string { return RouterKey }
func (msg *MsgListResource) Type() string  { return TypeMsgListResource }

func (msg *MsgListResource) GetSigners() []sdk.AccAddress {
	provider, err := sdk.AccAddressFromBech32(msg.Provider)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{provider}
}

func (msg *MsgListResource) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(msg))
}

// ValidateBasic performs stateless wire-level checks. Zero capacities and a
// zero rate are accepted; the registry applies no business validation to
// listings.
func (msg *MsgListResource) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Provider); err != nil {
		return ErrInvalidAddress.Wrapf("invalid provider address: %s", err)
	}
	if msg.HourlyRate.IsNil() || msg.HourlyRate.IsNegative() {
		return ErrInvalidAmount.Wrap("hourly rate must not be negative")
	}
	return nil
}

// MsgCreateAuction opens a timed auction for the given hardware
// requirements.
type MsgCreateAuction struct {
	Requester     string       `json:"requester"`
	Requirements  ResourceSpec `json:"requirements"`
	MaxDuration   uint64       `json:"max_duration"`
	StartingPrice math.Int     `json:"starting_price"`
}

// MsgCreateAuctionResponse returns the id assigned to the new auction.
type MsgCreateAuctionResponse struct {
	AuctionId uint64 `json:"auction_id"`
}

func NewMsgCreateAuction(requester string, requirements ResourceSpec, maxDuration uint64, startingPrice math.Int) *MsgCreateAuction {
	return &MsgCreateAuction{
		Requester:     requester,
		Requirements:  requirements,
		MaxDuration:   maxDuration,
		StartingPrice: startingPrice,
	}
}

func (msg *MsgCreateAuction) Route() string { return RouterKey }
func (msg *MsgCreateAuction) Type() string  { return TypeMsgCreateAuction }

func (msg *MsgCreateAuction) GetSigners() []sdk.AccAddress {
	requester, err := sdk.AccAddressFromBech32(msg.Requester)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{requester}
}

func (msg *MsgCreateAuction) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(msg))
}

func (msg *MsgCreateAuction) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Requester); err != nil {
		return ErrInvalidAddress.Wrapf("invalid requester address: %s", err)
	}
	if msg.StartingPrice.IsNil() || msg.StartingPrice.IsNegative() {
		return ErrInvalidAmount.Wrap("starting price must not be negative")
	}
	return nil
}

// MsgPlaceBid places a bid on an open auction. The amount must strictly
// exceed the auction's current bid to be accepted.
type MsgPlaceBid struct {
	Bidder    string   `json:"bidder"`
	AuctionId uint64   `json:"auction_id"`
	Amount    math.Int `json:"amount"`
}

type MsgPlaceBidResponse struct{}

func NewMsgPlaceBid(bidder string, auctionID uint64, amount math.Int) *MsgPlaceBid {
	return &MsgPlaceBid{
		Bidder:    bidder,
		AuctionId: auctionID,
		Amount:    amount,
	}
}

func (msg *MsgPlaceBid) Route() string { return RouterKey }
func (msg *MsgPlaceBid) Type() string  { return TypeMsgPlaceBid }

func (msg *MsgPlaceBid) GetSigners() []sdk.AccAddress {
	bidder, err := sdk.AccAddressFromBech32(msg.Bidder)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{bidder}
}

func (msg *MsgPlaceBid) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(msg))
}

// ValidateBasic rejects malformed bids only. A zero bid is well formed and
// is refused statefully against the auction's current price.
func (msg *MsgPlaceBid) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Bidder); err != nil {
		return ErrInvalidAddress.Wrapf("invalid bidder address: %s", err)
	}
	if msg.Amount.IsNil() || msg.Amount.IsNegative() {
		return ErrInvalidAmount.Wrap("bid amount must not be negative")
	}
	return nil
}

// MsgEndAuction settles an auction whose bidding window has elapsed. Anyone
// may send it; settlement does not depend on the caller.
type MsgEndAuction struct {
	Sender    string `json:"sender"`
	AuctionId uint64 `json:"auction_id"`
}

// MsgEndAuctionResponse returns the id of the job created for the winning
// bidder, or zero when the auction closed without a winner.
type MsgEndAuctionResponse struct {
	JobId uint64 `json:"job_id"`
}

func NewMsgEndAuction(sender string, auctionID uint64) *MsgEndAuction {
	return &MsgEndAuction{
		Sender:    sender,
		AuctionId: auctionID,
	}
}

func (msg *MsgEndAuction) Route() string { return RouterKey }
func (msg *MsgEndAuction) Type() string  { return TypeMsgEndAuction }

func (msg *MsgEndAuction) GetSigners() []sdk.AccAddress {
	sender, err := sdk.AccAddressFromBech32(msg.Sender)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{sender}
}

func (msg *MsgEndAuction) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(msg))
}

func (msg *MsgEndAuction) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Sender); err != nil {
		return ErrInvalidAddress.Wrapf("invalid sender address: %s", err)
	}
	return nil
}

// MsgSubmitExecutionProof records the provider's proof of work on an active
// job and marks the job completed.
type MsgSubmitExecutionProof struct {
	Provider string `json:"provider"`
	JobId    uint64 `json:"job_id"`
	Proof    string `json:"proof"`
}

type MsgSubmitExecutionProofResponse struct{}

func NewMsgSubmitExecutionProof(provider string, jobID uint64, proof string) *MsgSubmitExecutionProof {
	return &MsgSubmitExecutionProof{
		Provider: provider,
		JobId:    jobID,
		Proof:    proof,
	}
}

func (msg *MsgSubmitExecutionProof) Route() string { return RouterKey }
func (msg *MsgSubmitExecutionProof) Type() string  { return TypeMsgSubmitExecutionProof }

func (msg *MsgSubmitExecutionProof) GetSigners() []sdk.AccAddress {
	provider, err := sdk.AccAddressFromBech32(msg.Provider)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{provider}
}

func (msg *MsgSubmitExecutionProof) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(msg))
}

func (msg *MsgSubmitExecutionProof) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Provider); err != nil {
		return ErrInvalidAddress.Wrapf("invalid provider address: %s", err)
	}
	if len(msg.Proof) > MaxProofBytes {
		return ErrValidationFailed.Wrapf("proof size %d exceeds maximum %d bytes", len(msg.Proof), MaxProofBytes)
	}
	return nil
}

// MsgReleaseMilestone releases one escrowed milestone payment to the job's
// provider.
type MsgReleaseMilestone struct {
	Requester      string `json:"requester"`
	JobId          uint64 `json:"job_id"`
	MilestoneIndex uint64 `json:"milestone_index"`
}

type MsgReleaseMilestoneResponse struct{}

func NewMsgReleaseMilestone(requester string, jobID, milestoneIndex uint64) *MsgReleaseMilestone {
	return &MsgReleaseMilestone{
		Requester:      requester,
		JobId:          jobID,
		MilestoneIndex: milestoneIndex,
	}
}

func (msg *MsgReleaseMilestone) Route() string { return RouterKey }
func (msg *MsgReleaseMilestone) Type() string  { return TypeMsgReleaseMilestone }

func (msg *MsgReleaseMilestone) GetSigners() []sdk.AccAddress {
	requester, err := sdk.AccAddressFromBech32(msg.Requester)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{requester}
}

func (msg *MsgReleaseMilestone) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(msg))
}

func (msg *MsgReleaseMilestone) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Requester); err != nil {
		return ErrInvalidAddress.Wrapf("invalid requester address: %s", err)
	}
	return nil
}

// MsgDeposit moves bank funds into the caller's marketplace balance.
type MsgDeposit struct {
	Depositor string   `json:"depositor"`
	Amount    math.Int `json:"amount"`
}

type MsgDepositResponse struct{}

func NewMsgDeposit(depositor string, amount math.Int) *MsgDeposit {
	return &MsgDeposit{
		Depositor: depositor,
		Amount:    amount,
	}
}

func (msg *MsgDeposit) Route() string { return RouterKey }
func (msg *MsgDeposit) Type() string  { return TypeMsgDeposit }

func (msg *MsgDeposit) GetSigners() []sdk.AccAddress {
	depositor, err := sdk.AccAddressFromBech32(msg.Depositor)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{depositor}
}

func (msg *MsgDeposit) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(msg))
}

func (msg *MsgDeposit) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Depositor); err != nil {
		return ErrInvalidAddress.Wrapf("invalid depositor address: %s", err)
	}
	if msg.Amount.IsNil() || !msg.Amount.IsPositive() {
		return ErrInvalidAmount.Wrap("deposit amount must be positive")
	}
	return nil
}

// MsgWithdraw moves marketplace balance back to the caller's bank account.
type MsgWithdraw struct {
	Withdrawer string   `json:"withdrawer"`
	Amount     math.Int `json:"amount"`
}

type MsgWithdrawResponse struct{}

func NewMsgWithdraw(withdrawer string, amount math.Int) *MsgWithdraw {
	return &MsgWithdraw{
		Withdrawer: withdrawer,
		Amount:     amount,
	}
}

func (msg *MsgWithdraw) Route() string { return RouterKey }
func (msg *MsgWithdraw) Type() string  { return TypeMsgWithdraw }

func (msg *MsgWithdraw) GetSigners() []sdk.AccAddress {
	withdrawer, err := sdk.AccAddressFromBech32(msg.Withdrawer)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{withdrawer}
}

func (msg *MsgWithdraw) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(msg))
}

func (msg *MsgWithdraw) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Withdrawer); err != nil {
		return ErrInvalidAddress.Wrapf("invalid withdrawer address: %s", err)
	}
	if msg.Amount.IsNil() || !msg.Amount.IsPositive() {
		return ErrInvalidAmount.Wrap("withdraw amount must be positive")
	}
	return nil
}

// MsgUpdateParams updates the module parameters. Only the governance
// authority may send it.
type MsgUpdateParams struct {
	Authority string `json:"authority"`
	Params    Params `json:"params"`
}

type MsgUpdateParamsResponse struct{}

func NewMsgUpdateParams(authority string, params Params) *MsgUpdateParams {
	return &MsgUpdateParams{
		Authority: authority,
		Params:    params,
	}
}

func (msg *MsgUpdateParams) Route() string { return RouterKey }
func (msg *MsgUpdateParams) Type() string  { return TypeMsgUpdateParams }

func (msg *MsgUpdateParams) GetSigners() []sdk.AccAddress {
	authority, err := sdk.AccAddressFromBech32(msg.Authority)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{authority}
}

func (msg *MsgUpdateParams) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(msg))
}

func (msg *MsgUpdateParams) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return ErrInvalidAddress.Wrapf("invalid authority address: %s", err)
	}
	return msg.Params.Validate()
}
