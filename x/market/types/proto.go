package types

import (
	"encoding/json"
	"fmt"
)

// Wire conformance for the module's messages and records.
//
// The types in this package are plain Go structs serialized as JSON. The
// methods below give them the proto.Message surface required by the SDK
// codec, the interface registry and the gRPC service descriptors, and the
// XXX_MessageName overrides pin the fully qualified names used for type URL
// resolution.

const messageNamePrefix = "grid.market.v1."

func protoString(v interface{}) string {
	bz, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%T{marshal error: %v}", v, err)
	}
	return string(bz)
}

func (m *ResourceSpec) Reset()         { *m = ResourceSpec{} }
func (m *ResourceSpec) String() string { return protoString(m) }
func (*ResourceSpec) ProtoMessage()    {}

func (m *ComputeResource) Reset()         { *m = ComputeResource{} }
func (m *ComputeResource) String() string { return protoString(m) }
func (*ComputeResource) ProtoMessage()    {}

func (m *Auction) Reset()         { *m = Auction{} }
func (m *Auction) String() string { return protoString(m) }
func (*Auction) ProtoMessage()    {}

func (m *Job) Reset()         { *m = Job{} }
func (m *Job) String() string { return protoString(m) }
func (*Job) ProtoMessage()    {}

func (m *EscrowEntry) Reset()         { *m = EscrowEntry{} }
func (m *EscrowEntry) String() string { return protoString(m) }
func (*EscrowEntry) ProtoMessage()    {}

func (m *AccountBalance) Reset()         { *m = AccountBalance{} }
func (m *AccountBalance) String() string { return protoString(m) }
func (*AccountBalance) ProtoMessage()    {}

func (m *ReputationRecord) Reset()         { *m = ReputationRecord{} }
func (m *ReputationRecord) String() string { return protoString(m) }
func (*ReputationRecord) ProtoMessage()    {}

func (m *Params) Reset()         { *m = Params{} }
func (m *Params) String() string { return protoString(m) }
func (*Params) ProtoMessage()    {}

func (m *GenesisState) Reset()         { *m = GenesisState{} }
func (m *GenesisState) String() string { return protoString(m) }
func (*GenesisState) ProtoMessage()    {}

func (m *MsgListResource) Reset()         { *m = MsgListResource{} }
func (m *MsgListResource) String() string { return protoString(m) }
func (*MsgListResource) ProtoMessage()    {}
func (*MsgListResource) XXX_MessageName() string {
	return messageNamePrefix + "MsgListResource"
}

func (m *MsgListResourceResponse) Reset()         { *m = MsgListResourceResponse{} }
func (m *MsgListResourceResponse) String() string { return protoString(m) }
func (*MsgListResourceResponse) ProtoMessage()    {}
func (*MsgListResourceResponse) XXX_MessageName() string {
	return messageNamePrefix + "MsgListResourceResponse"
}

func (m *MsgCreateAuction) Reset()         { *m = MsgCreateAuction{} }
func (m *MsgCreateAuction) String() string { return protoString(m) }
func (*MsgCreateAuction) ProtoMessage()    {}
func (*MsgCreateAuction) XXX_MessageName() string {
	return messageNamePrefix + "MsgCreateAuction"
}

func (m *MsgCreateAuctionResponse) Reset()         { *m = MsgCreateAuctionResponse{} }
func (m *MsgCreateAuctionResponse) String() string { return protoString(m) }
func (*MsgCreateAuctionResponse) ProtoMessage()    {}
func (*MsgCreateAuctionResponse) XXX_MessageName() string {
	return messageNamePrefix + "MsgCreateAuctionResponse"
}

func (m *MsgPlaceBid) Reset()         { *m = MsgPlaceBid{} }
func (m *MsgPlaceBid) String() string { return protoString(m) }
func (*MsgPlaceBid) ProtoMessage()    {}
func (*MsgPlaceBid) XXX_MessageName() string {
	return messageNamePrefix + "MsgPlaceBid"
}

func (m *MsgPlaceBidResponse) Reset()         { *m = MsgPlaceBidResponse{} }
func (m *MsgPlaceBidResponse) String() string { return protoString(m) }
func (*MsgPlaceBidResponse) ProtoMessage()    {}
func (*MsgPlaceBidResponse) XXX_MessageName() string {
	return messageNamePrefix + "MsgPlaceBidResponse"
}

func (m *MsgEndAuction) Reset()         { *m = MsgEndAuction{} }
func (m *MsgEndAuction) String() string { return protoString(m) }
func (*MsgEndAuction) ProtoMessage()    {}
func (*MsgEndAuction) XXX_MessageName() string {
	return messageNamePrefix + "MsgEndAuction"
}

func (m *MsgEndAuctionResponse) Reset()         { *m = MsgEndAuctionResponse{} }
func (m *MsgEndAuctionResponse) String() string { return protoString(m) }
func (*MsgEndAuctionResponse) ProtoMessage()    {}
func (*MsgEndAuctionResponse) XXX_MessageName() string {
	return messageNamePrefix + "MsgEndAuctionResponse"
}

func (m *MsgSubmitExecutionProof) Reset()         { *m = MsgSubmitExecutionProof{} }
func (m *MsgSubmitExecutionProof) String() string { return protoString(m) }
func (*MsgSubmitExecutionProof) ProtoMessage()    {}
func (*MsgSubmitExecutionProof) XXX_MessageName() string {
	return messageNamePrefix + "MsgSubmitExecutionProof"
}

func (m *MsgSubmitExecutionProofResponse) Reset()         { *m = MsgSubmitExecutionProofResponse{} }
func (m *MsgSubmitExecutionProofResponse) String() string { return protoString(m) }
func (*MsgSubmitExecutionProofResponse) ProtoMessage()    {}
func (*MsgSubmitExecutionProofResponse) XXX_MessageName() string {
	return messageNamePrefix + "MsgSubmitExecutionProofResponse"
}

func (m *MsgReleaseMilestone) Reset()         { *m = MsgReleaseMilestone{} }
func (m *MsgReleaseMilestone) String() string { return protoString(m) }
func (*MsgReleaseMilestone) ProtoMessage()    {}
func (*MsgReleaseMilestone) XXX_MessageName() string {
	return messageNamePrefix + "MsgReleaseMilestone"
}

func (m *MsgReleaseMilestoneResponse) Reset()         { *m = MsgReleaseMilestoneResponse{} }
func (m *MsgReleaseMilestoneResponse) String() string { return protoString(m) }
func (*MsgReleaseMilestoneResponse) ProtoMessage()    {}
func (*MsgReleaseMilestoneResponse) XXX_MessageName() string {
	return messageNamePrefix + "MsgReleaseMilestoneResponse"
}

func (m *MsgDeposit) Reset()         { *m = MsgDeposit{} }
func (m *MsgDeposit) String() string { return protoString(m) }
func (*MsgDeposit) ProtoMessage()    {}
func (*MsgDeposit) XXX_MessageName() string {
	return messageNamePrefix + "MsgDeposit"
}

func (m *MsgDepositResponse) Reset()         { *m = MsgDepositResponse{} }
func (m *MsgDepositResponse) String() string { return protoString(m) }
func (*MsgDepositResponse) ProtoMessage()    {}
func (*MsgDepositResponse) XXX_MessageName() string {
	return messageNamePrefix + "MsgDepositResponse"
}

func (m *MsgWithdraw) Reset()         { *m = MsgWithdraw{} }
func (m *MsgWithdraw) String() string { return protoString(m) }
func (*MsgWithdraw) ProtoMessage()    {}
func (*MsgWithdraw) XXX_MessageName() string {
	return messageNamePrefix + "MsgWithdraw"
}

func (m *MsgWithdrawResponse) Reset()         { *m = MsgWithdrawResponse{} }
func (m *MsgWithdrawResponse) String() string { return protoString(m) }
func (*MsgWithdrawResponse) ProtoMessage()    {}
func (*MsgWithdrawResponse) XXX_MessageName() string {
	return messageNamePrefix + "MsgWithdrawResponse"
}

func (m *MsgUpdateParams) Reset()         { *m = MsgUpdateParams{} }
func (m *MsgUpdateParams) String() string { return protoString(m) }
func (*MsgUpdateParams) ProtoMessage()    {}
func (*MsgUpdateParams) XXX_MessageName() string {
	return messageNamePrefix + "MsgUpdateParams"
}

func (m *MsgUpdateParamsResponse) Reset()         { *m = MsgUpdateParamsResponse{} }
func (m *MsgUpdateParamsResponse) String() string { return protoString(m) }
func (*MsgUpdateParamsResponse) ProtoMessage()    {}
func (*MsgUpdateParamsResponse) XXX_MessageName() string {
	return messageNamePrefix + "MsgUpdateParamsResponse"
}

func (m *QueryParamsRequest) Reset()         { *m = QueryParamsRequest{} }
func (m *QueryParamsRequest) String() string { return protoString(m) }
func (*QueryParamsRequest) ProtoMessage()    {}

func (m *QueryParamsResponse) Reset()         { *m = QueryParamsResponse{} }
func (m *QueryParamsResponse) String() string { return protoString(m) }
func (*QueryParamsResponse) ProtoMessage()    {}

func (m *QueryResourceRequest) Reset()         { *m = QueryResourceRequest{} }
func (m *QueryResourceRequest) String() string { return protoString(m) }
func (*QueryResourceRequest) ProtoMessage()    {}

func (m *QueryResourceResponse) Reset()         { *m = QueryResourceResponse{} }
func (m *QueryResourceResponse) String() string { return protoString(m) }
func (*QueryResourceResponse) ProtoMessage()    {}

func (m *QueryResourcesRequest) Reset()         { *m = QueryResourcesRequest{} }
func (m *QueryResourcesRequest) String() string { return protoString(m) }
func (*QueryResourcesRequest) ProtoMessage()    {}

func (m *QueryResourcesResponse) Reset()         { *m = QueryResourcesResponse{} }
func (m *QueryResourcesResponse) String() string { return protoString(m) }
func (*QueryResourcesResponse) ProtoMessage()    {}

func (m *QueryAuctionRequest) Reset()         { *m = QueryAuctionRequest{} }
func (m *QueryAuctionRequest) String() string { return protoString(m) }
func (*QueryAuctionRequest) ProtoMessage()    {}

func (m *QueryAuctionResponse) Reset()         { *m = QueryAuctionResponse{} }
func (m *QueryAuctionResponse) String() string { return protoString(m) }
func (*QueryAuctionResponse) ProtoMessage()    {}

func (m *QueryAuctionsRequest) Reset()         { *m = QueryAuctionsRequest{} }
func (m *QueryAuctionsRequest) String() string { return protoString(m) }
func (*QueryAuctionsRequest) ProtoMessage()    {}

func (m *QueryAuctionsResponse) Reset()         { *m = QueryAuctionsResponse{} }
func (m *QueryAuctionsResponse) String() string { return protoString(m) }
func (*QueryAuctionsResponse) ProtoMessage()    {}

func (m *QueryAuctionActiveRequest) Reset()         { *m = QueryAuctionActiveRequest{} }
func (m *QueryAuctionActiveRequest) String() string { return protoString(m) }
func (*QueryAuctionActiveRequest) ProtoMessage()    {}

func (m *QueryAuctionActiveResponse) Reset()         { *m = QueryAuctionActiveResponse{} }
func (m *QueryAuctionActiveResponse) String() string { return protoString(m) }
func (*QueryAuctionActiveResponse) ProtoMessage()    {}

func (m *QueryJobRequest) Reset()         { *m = QueryJobRequest{} }
func (m *QueryJobRequest) String() string { return protoString(m) }
func (*QueryJobRequest) ProtoMessage()    {}

func (m *QueryJobResponse) Reset()         { *m = QueryJobResponse{} }
func (m *QueryJobResponse) String() string { return protoString(m) }
func (*QueryJobResponse) ProtoMessage()    {}

func (m *QueryJobsRequest) Reset()         { *m = QueryJobsRequest{} }
func (m *QueryJobsRequest) String() string { return protoString(m) }
func (*QueryJobsRequest) ProtoMessage()    {}

func (m *QueryJobsResponse) Reset()         { *m = QueryJobsResponse{} }
func (m *QueryJobsResponse) String() string { return protoString(m) }
func (*QueryJobsResponse) ProtoMessage()    {}

func (m *QueryEscrowRequest) Reset()         { *m = QueryEscrowRequest{} }
func (m *QueryEscrowRequest) String() string { return protoString(m) }
func (*QueryEscrowRequest) ProtoMessage()    {}

func (m *QueryEscrowResponse) Reset()         { *m = QueryEscrowResponse{} }
func (m *QueryEscrowResponse) String() string { return protoString(m) }
func (*QueryEscrowResponse) ProtoMessage()    {}

func (m *QueryProviderReputationRequest) Reset()         { *m = QueryProviderReputationRequest{} }
func (m *QueryProviderReputationRequest) String() string { return protoString(m) }
func (*QueryProviderReputationRequest) ProtoMessage()    {}

func (m *QueryProviderReputationResponse) Reset()         { *m = QueryProviderReputationResponse{} }
func (m *QueryProviderReputationResponse) String() string { return protoString(m) }
func (*QueryProviderReputationResponse) ProtoMessage()    {}

func (m *QueryBalanceRequest) Reset()         { *m = QueryBalanceRequest{} }
func (m *QueryBalanceRequest) String() string { return protoString(m) }
func (*QueryBalanceRequest) ProtoMessage()    {}

func (m *QueryBalanceResponse) Reset()         { *m = QueryBalanceResponse{} }
func (m *QueryBalanceResponse) String() string { return protoString(m) }
func (*QueryBalanceResponse) ProtoMessage()    {}

func (m *QueryTreasuryRequest) Reset()         { *m = QueryTreasuryRequest{} }
func (m *QueryTreasuryRequest) String() string { return protoString(m) }
func (*QueryTreasuryRequest) ProtoMessage()    {}

func (m *QueryTreasuryResponse) Reset()         { *m = QueryTreasuryResponse{} }
func (m *QueryTreasuryResponse) String() string { return protoString(m) }
func (*QueryTreasuryResponse) ProtoMessage()    {}
