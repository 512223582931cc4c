package types

import (
	"encoding/json"

	"github.com/cosmos/gogoproto/jsonpb"
)

// JSON is the wire format for the market module. The methods below complete
// the gogoproto marshaler surface so the SDK codec, the Any packer and the
// gRPC codec can move these types: binary marshal emits the same canonical
// JSON the state store uses, and the jsonpb hooks keep codec JSON output
// identical to encoding/json.

func wireMarshal(v interface{}) ([]byte, error) { return json.Marshal(v) }

func wireMarshalTo(v interface{}, dAtA []byte) (int, error) {
	bz, err := json.Marshal(v)
	if err != nil {
		return 0, err
	}
	return copy(dAtA, bz), nil
}

func wireMarshalToSized(v interface{}, dAtA []byte) (int, error) {
	bz, err := json.Marshal(v)
	if err != nil {
		return 0, err
	}
	copy(dAtA[len(dAtA)-len(bz):], bz)
	return len(bz), nil
}

func wireSize(v interface{}) int {
	bz, err := json.Marshal(v)
	if err != nil {
		return 0
	}
	return len(bz)
}

func (m *ResourceSpec) Marshal() ([]byte, error)                      { return wireMarshal(m) }
func (m *ResourceSpec) MarshalTo(dAtA []byte) (int, error)            { return wireMarshalTo(m, dAtA) }
func (m *ResourceSpec) MarshalToSizedBuffer(dAtA []byte) (int, error) { return wireMarshalToSized(m, dAtA) }
func (m *ResourceSpec) Size() int                                     { return wireSize(m) }
func (m *ResourceSpec) Unmarshal(bz []byte) error                     { return json.Unmarshal(bz, m) }

func (m *ResourceSpec) MarshalJSONPB(_ *jsonpb.Marshaler) ([]byte, error)      { return json.Marshal(m) }
func (m *ResourceSpec) UnmarshalJSONPB(_ *jsonpb.Unmarshaler, bz []byte) error { return json.Unmarshal(bz, m) }

func (m *ComputeResource) Marshal() ([]byte, error)                      { return wireMarshal(m) }
func (m *ComputeResource) MarshalTo(dAtA []byte) (int, error)            { return wireMarshalTo(m, dAtA) }
func (m *ComputeResource) MarshalToSizedBuffer(dAtA []byte) (int, error) { return wireMarshalToSized(m, dAtA) }
func (m *ComputeResource) Size() int                                     { return wireSize(m) }
func (m *ComputeResource) Unmarshal(bz []byte) error                     { return json.Unmarshal(bz, m) }

func (m *ComputeResource) MarshalJSONPB(_ *jsonpb.Marshaler) ([]byte, error)      { return json.Marshal(m) }
func (m *ComputeResource) UnmarshalJSONPB(_ *jsonpb.Unmarshaler, bz []byte) error { return json.Unmarshal(bz, m) }

func (m *Auction) Marshal() ([]byte, error)                      { return wireMarshal(m) }
func (m *Auction) MarshalTo(dAtA []byte) (int, error)            { return wireMarshalTo(m, dAtA) }
func (m *Auction) MarshalToSizedBuffer(dAtA []byte) (int, error) { return wireMarshalToSized(m, dAtA) }
func (m *Auction) Size() int                                     { return wireSize(m) }
func (m *Auction) Unmarshal(bz []byte) error                     { return json.Unmarshal(bz, m) }

func (m *Auction) MarshalJSONPB(_ *jsonpb.Marshaler) ([]byte, error)      { return json.Marshal(m) }
func (m *Auction) UnmarshalJSONPB(_ *jsonpb.Unmarshaler, bz []byte) error { return json.Unmarshal(bz, m) }

func (m *Job) Marshal() ([]byte, error)                      { return wireMarshal(m) }
func (m *Job) MarshalTo(dAtA []byte) (int, error)            { return wireMarshalTo(m, dAtA) }
func (m *Job) MarshalToSizedBuffer(dAtA []byte) (int, error) { return wireMarshalToSized(m, dAtA) }
func (m *Job) Size() int                                     { return wireSize(m) }
func (m *Job) Unmarshal(bz []byte) error                     { return json.Unmarshal(bz, m) }

func (m *Job) MarshalJSONPB(_ *jsonpb.Marshaler) ([]byte, error)      { return json.Marshal(m) }
func (m *Job) UnmarshalJSONPB(_ *jsonpb.Unmarshaler, bz []byte) error { return json.Unmarshal(bz, m) }

func (m *EscrowEntry) Marshal() ([]byte, error)                      { return wireMarshal(m) }
func (m *EscrowEntry) MarshalTo(dAtA []byte) (int, error)            { return wireMarshalTo(m, dAtA) }
func (m *EscrowEntry) MarshalToSizedBuffer(dAtA []byte) (int, error) { return wireMarshalToSized(m, dAtA) }
func (m *EscrowEntry) Size() int                                     { return wireSize(m) }
func (m *EscrowEntry) Unmarshal(bz []byte) error                     { return json.Unmarshal(bz, m) }

func (m *EscrowEntry) MarshalJSONPB(_ *jsonpb.Marshaler) ([]byte, error)      { return json.Marshal(m) }
func (m *EscrowEntry) UnmarshalJSONPB(_ *jsonpb.Unmarshaler, bz []byte) error { return json.Unmarshal(bz, m) }

func (m *AccountBalance) Marshal() ([]byte, error)                      { return wireMarshal(m) }
func (m *AccountBalance) MarshalTo(dAtA []byte) (int, error)            { return wireMarshalTo(m, dAtA) }
func (m *AccountBalance) MarshalToSizedBuffer(dAtA []byte) (int, error) { return wireMarshalToSized(m, dAtA) }
func (m *AccountBalance) Size() int                                     { return wireSize(m) }
func (m *AccountBalance) Unmarshal(bz []byte) error                     { return json.Unmarshal(bz, m) }

func (m *AccountBalance) MarshalJSONPB(_ *jsonpb.Marshaler) ([]byte, error)      { return json.Marshal(m) }
func (m *AccountBalance) UnmarshalJSONPB(_ *jsonpb.Unmarshaler, bz []byte) error { return json.Unmarshal(bz, m) }

func (m *ReputationRecord) Marshal() ([]byte, error)                      { return wireMarshal(m) }
func (m *ReputationRecord) MarshalTo(dAtA []byte) (int, error)            { return wireMarshalTo(m, dAtA) }
func (m *ReputationRecord) MarshalToSizedBuffer(dAtA []byte) (int, error) { return wireMarshalToSized(m, dAtA) }
func (m *ReputationRecord) Size() int                                     { return wireSize(m) }
func (m *ReputationRecord) Unmarshal(bz []byte) error                     { return json.Unmarshal(bz, m) }

func (m *ReputationRecord) MarshalJSONPB(_ *jsonpb.Marshaler) ([]byte, error)      { return json.Marshal(m) }
func (m *ReputationRecord) UnmarshalJSONPB(_ *jsonpb.Unmarshaler, bz []byte) error { return json.Unmarshal(bz, m) }

func (m *Params) Marshal() ([]byte, error)                      { return wireMarshal(m) }
func (m *Params) MarshalTo(dAtA []byte) (int, error)            { return wireMarshalTo(m, dAtA) }
func (m *Params) MarshalToSizedBuffer(dAtA []byte) (int, error) { return wireMarshalToSized(m, dAtA) }
func (m *Params) Size() int                                     { return wireSize(m) }
func (m *Params) Unmarshal(bz []byte) error                     { return json.Unmarshal(bz, m) }

func (m *Params) MarshalJSONPB(_ *jsonpb.Marshaler) ([]byte, error)      { return json.Marshal(m) }
func (m *Params) UnmarshalJSONPB(_ *jsonpb.Unmarshaler, bz []byte) error { return json.Unmarshal(bz, m) }

func (m *GenesisState) Marshal() ([]byte, error)                      { return wireMarshal(m) }
func (m *GenesisState) MarshalTo(dAtA []byte) (int, error)            { return wireMarshalTo(m, dAtA) }
func (m *GenesisState) MarshalToSizedBuffer(dAtA []byte) (int, error) { return wireMarshalToSized(m, dAtA) }
func (m *GenesisState) Size() int                                     { return wireSize(m) }
func (m *GenesisState) Unmarshal(bz []byte) error                     { return json.Unmarshal(bz, m) }

func (m *GenesisState) MarshalJSONPB(_ *jsonpb.Marshaler) ([]byte, error)      { return json.Marshal(m) }
func (m *GenesisState) UnmarshalJSONPB(_ *jsonpb.Unmarshaler, bz []byte) error { return json.Unmarshal(bz, m) }

func (m *MsgListResource) Marshal() ([]byte, error)                      { return wireMarshal(m) }
func (m *MsgListResource) MarshalTo(dAtA []byte) (int, error)            { return wireMarshalTo(m, dAtA) }
func (m *MsgListResource) MarshalToSizedBuffer(dAtA []byte) (int, error) { return wireMarshalToSized(m, dAtA) }
func (m *MsgListResource) Size() int                                     { return wireSize(m) }
func (m *MsgListResource) Unmarshal(bz []byte) error                     { return json.Unmarshal(bz, m) }

func (m *MsgListResource) MarshalJSONPB(_ *jsonpb.Marshaler) ([]byte, error)      { return json.Marshal(m) }
func (m *MsgListResource) UnmarshalJSONPB(_ *jsonpb.Unmarshaler, bz []byte) error { return json.Unmarshal(bz, m) }

func (m *MsgListResourceResponse) Marshal() ([]byte, error)                      { return wireMarshal(m) }
func (m *MsgListResourceResponse) MarshalTo(dAtA []byte) (int, error)            { return wireMarshalTo(m, dAtA) }
func (m *MsgListResourceResponse) MarshalToSizedBuffer(dAtA []byte) (int, error) { return wireMarshalToSized(m, dAtA) }
func (m *MsgListResourceResponse) Size() int                                     { return wireSize(m) }
func (m *MsgListResourceResponse) Unmarshal(bz []byte) error                     { return json.Unmarshal(bz, m) }

func (m *MsgListResourceResponse) MarshalJSONPB(_ *jsonpb.Marshaler) ([]byte, error)      { return json.Marshal(m) }
func (m *MsgListResourceResponse) UnmarshalJSONPB(_ *jsonpb.Unmarshaler, bz []byte) error { return json.Unmarshal(bz, m) }

func (m *MsgCreateAuction) Marshal() ([]byte, error)                      { return wireMarshal(m) }
func (m *MsgCreateAuction) MarshalTo(dAtA []byte) (int, error)            { return wireMarshalTo(m, dAtA) }
func (m *MsgCreateAuction) MarshalToSizedBuffer(dAtA []byte) (int, error) { return wireMarshalToSized(m, dAtA) }
func (m *MsgCreateAuction) Size() int                                     { return wireSize(m) }
func (m *MsgCreateAuction) Unmarshal(bz []byte) error                     { return json.Unmarshal(bz, m) }

func (m *MsgCreateAuction) MarshalJSONPB(_ *jsonpb.Marshaler) ([]byte, error)      { return json.Marshal(m) }
func (m *MsgCreateAuction) UnmarshalJSONPB(_ *jsonpb.Unmarshaler, bz []byte) error { return json.Unmarshal(bz, m) }

func (m *MsgCreateAuctionResponse) Marshal() ([]byte, error)                      { return wireMarshal(m) }
func (m *MsgCreateAuctionResponse) MarshalTo(dAtA []byte) (int, error)            { return wireMarshalTo(m, dAtA) }
func (m *MsgCreateAuctionResponse) MarshalToSizedBuffer(dAtA []byte) (int, error) { return wireMarshalToSized(m, dAtA) }
func (m *MsgCreateAuctionResponse) Size() int                                     { return wireSize(m) }
func (m *MsgCreateAuctionResponse) Unmarshal(bz []byte) error                     { return json.Unmarshal(bz, m) }

func (m *MsgCreateAuctionResponse) MarshalJSONPB(_ *jsonpb.Marshaler) ([]byte, error)      { return json.Marshal(m) }
func (m *MsgCreateAuctionResponse) UnmarshalJSONPB(_ *jsonpb.Unmarshaler, bz []byte) error { return json.Unmarshal(bz, m) }

func (m *MsgPlaceBid) Marshal() ([]byte, error)                      { return wireMarshal(m) }
func (m *MsgPlaceBid) MarshalTo(dAtA []byte) (int, error)            { return wireMarshalTo(m, dAtA) }
func (m *MsgPlaceBid) MarshalToSizedBuffer(dAtA []byte) (int, error) { return wireMarshalToSized(m, dAtA) }
func (m *MsgPlaceBid) Size() int                                     { return wireSize(m) }
func (m *MsgPlaceBid) Unmarshal(bz []byte) error                     { return json.Unmarshal(bz, m) }

func (m *MsgPlaceBid) MarshalJSONPB(_ *jsonpb.Marshaler) ([]byte, error)      { return json.Marshal(m) }
func (m *MsgPlaceBid) UnmarshalJSONPB(_ *jsonpb.Unmarshaler, bz []byte) error { return json.Unmarshal(bz, m) }

func (m *MsgPlaceBidResponse) Marshal() ([]byte, error)                      { return wireMarshal(m) }
func (m *MsgPlaceBidResponse) MarshalTo(dAtA []byte) (int, error)            { return wireMarshalTo(m, dAtA) }
func (m *MsgPlaceBidResponse) MarshalToSizedBuffer(dAtA []byte) (int, error) { return wireMarshalToSized(m, dAtA) }
func (m *MsgPlaceBidResponse) Size() int                                     { return wireSize(m) }
func (m *MsgPlaceBidResponse) Unmarshal(bz []byte) error                     { return json.Unmarshal(bz, m) }

func (m *MsgPlaceBidResponse) MarshalJSONPB(_ *jsonpb.Marshaler) ([]byte, error)      { return json.Marshal(m) }
func (m *MsgPlaceBidResponse) UnmarshalJSONPB(_ *jsonpb.Unmarshaler, bz []byte) error { return json.Unmarshal(bz, m) }

func (m *MsgEndAuction) Marshal() ([]byte, error)                      { return wireMarshal(m) }
func (m *MsgEndAuction) MarshalTo(dAtA []byte) (int, error)            { return wireMarshalTo(m, dAtA) }
func (m *MsgEndAuction) MarshalToSizedBuffer(dAtA []byte) (int, error) { return wireMarshalToSized(m, dAtA) }
func (m *MsgEndAuction) Size() int                                     { return wireSize(m) }
func (m *MsgEndAuction) Unmarshal(bz []byte) error                     { return json.Unmarshal(bz, m) }

func (m *MsgEndAuction) MarshalJSONPB(_ *jsonpb.Marshaler) ([]byte, error)      { return json.Marshal(m) }
func (m *MsgEndAuction) UnmarshalJSONPB(_ *jsonpb.Unmarshaler, bz []byte) error { return json.Unmarshal(bz, m) }

func (m *MsgEndAuctionResponse) Marshal() ([]byte, error)                      { return wireMarshal(m) }
func (m *MsgEndAuctionResponse) MarshalTo(dAtA []byte) (int, error)            { return wireMarshalTo(m, dAtA) }
func (m *MsgEndAuctionResponse) MarshalToSizedBuffer(dAtA []byte) (int, error) { return wireMarshalToSized(m, dAtA) }
func (m *MsgEndAuctionResponse) Size() int                                     { return wireSize(m) }
func (m *MsgEndAuctionResponse) Unmarshal(bz []byte) error                     { return json.Unmarshal(bz, m) }

func (m *MsgEndAuctionResponse) MarshalJSONPB(_ *jsonpb.Marshaler) ([]byte, error)      { return json.Marshal(m) }
func (m *MsgEndAuctionResponse) UnmarshalJSONPB(_ *jsonpb.Unmarshaler, bz []byte) error { return json.Unmarshal(bz, m) }

func (m *MsgSubmitExecutionProof) Marshal() ([]byte, error)                      { return wireMarshal(m) }
func (m *MsgSubmitExecutionProof) MarshalTo(dAtA []byte) (int, error)            { return wireMarshalTo(m, dAtA) }
func (m *MsgSubmitExecutionProof) MarshalToSizedBuffer(dAtA []byte) (int, error) { return wireMarshalToSized(m, dAtA) }
func (m *MsgSubmitExecutionProof) Size() int                                     { return wireSize(m) }
func (m *MsgSubmitExecutionProof) Unmarshal(bz []byte) error                     { return json.Unmarshal(bz, m) }

func (m *MsgSubmitExecutionProof) MarshalJSONPB(_ *jsonpb.Marshaler) ([]byte, error)      { return json.Marshal(m) }
func (m *MsgSubmitExecutionProof) UnmarshalJSONPB(_ *jsonpb.Unmarshaler, bz []byte) error { return json.Unmarshal(bz, m) }

func (m *MsgSubmitExecutionProofResponse) Marshal() ([]byte, error)                      { return wireMarshal(m) }
func (m *MsgSubmitExecutionProofResponse) MarshalTo(dAtA []byte) (int, error)            { return wireMarshalTo(m, dAtA) }
func (m *MsgSubmitExecutionProofResponse) MarshalToSizedBuffer(dAtA []byte) (int, error) { return wireMarshalToSized(m, dAtA) }
func (m *MsgSubmitExecutionProofResponse) Size() int                                     { return wireSize(m) }
func (m *MsgSubmitExecutionProofResponse) Unmarshal(bz []byte) error                     { return json.Unmarshal(bz, m) }

func (m *MsgSubmitExecutionProofResponse) MarshalJSONPB(_ *jsonpb.Marshaler) ([]byte, error)      { return json.Marshal(m) }
func (m *MsgSubmitExecutionProofResponse) UnmarshalJSONPB(_ *jsonpb.Unmarshaler, bz []byte) error { return json.Unmarshal(bz, m) }

func (m *MsgReleaseMilestone) Marshal() ([]byte, error)                      { return wireMarshal(m) }
func (m *MsgReleaseMilestone) MarshalTo(dAtA []byte) (int, error)            { return wireMarshalTo(m, dAtA) }
func (m *MsgReleaseMilestone) MarshalToSizedBuffer(dAtA []byte) (int, error) { return wireMarshalToSized(m, dAtA) }
func (m *MsgReleaseMilestone) Size() int                                     { return wireSize(m) }
func (m *MsgReleaseMilestone) Unmarshal(bz []byte) error                     { return json.Unmarshal(bz, m) }

func (m *MsgReleaseMilestone) MarshalJSONPB(_ *jsonpb.Marshaler) ([]byte, error)      { return json.Marshal(m) }
func (m *MsgReleaseMilestone) UnmarshalJSONPB(_ *jsonpb.Unmarshaler, bz []byte) error { return json.Unmarshal(bz, m) }

func (m *MsgReleaseMilestoneResponse) Marshal() ([]byte, error)                      { return wireMarshal(m) }
func (m *MsgReleaseMilestoneResponse) MarshalTo(dAtA []byte) (int, error)            { return wireMarshalTo(m, dAtA) }
func (m *MsgReleaseMilestoneResponse) MarshalToSizedBuffer(dAtA []byte) (int, error) { return wireMarshalToSized(m, dAtA) }
func (m *MsgReleaseMilestoneResponse) Size() int                                     { return wireSize(m) }
func (m *MsgReleaseMilestoneResponse) Unmarshal(bz []byte) error                     { return json.Unmarshal(bz, m) }

func (m *MsgReleaseMilestoneResponse) MarshalJSONPB(_ *jsonpb.Marshaler) ([]byte, error)      { return json.Marshal(m) }
func (m *MsgReleaseMilestoneResponse) UnmarshalJSONPB(_ *jsonpb.Unmarshaler, bz []byte) error { return json.Unmarshal(bz, m) }

func (m *MsgDeposit) Marshal() ([]byte, error)                      { return wireMarshal(m) }
func (m *MsgDeposit) MarshalTo(dAtA []byte) (int, error)            { return wireMarshalTo(m, dAtA) }
func (m *MsgDeposit) MarshalToSizedBuffer(dAtA []byte) (int, error) { return wireMarshalToSized(m, dAtA) }
func (m *MsgDeposit) Size() int                                     { return wireSize(m) }
func (m *MsgDeposit) Unmarshal(bz []byte) error                     { return json.Unmarshal(bz, m) }

func (m *MsgDeposit) MarshalJSONPB(_ *jsonpb.Marshaler) ([]byte, error)      { return json.Marshal(m) }
func (m *MsgDeposit) UnmarshalJSONPB(_ *jsonpb.Unmarshaler, bz []byte) error { return json.Unmarshal(bz, m) }

func (m *MsgDepositResponse) Marshal() ([]byte, error)                      { return wireMarshal(m) }
func (m *MsgDepositResponse) MarshalTo(dAtA []byte) (int, error)            { return wireMarshalTo(m, dAtA) }
func (m *MsgDepositResponse) MarshalToSizedBuffer(dAtA []byte) (int, error) { return wireMarshalToSized(m, dAtA) }
func (m *MsgDepositResponse) Size() int                                     { return wireSize(m) }
func (m *MsgDepositResponse) Unmarshal(bz []byte) error                     { return json.Unmarshal(bz, m) }

func (m *MsgDepositResponse) MarshalJSONPB(_ *jsonpb.Marshaler) ([]byte, error)      { return json.Marshal(m) }
func (m *MsgDepositResponse) UnmarshalJSONPB(_ *jsonpb.Unmarshaler, bz []byte) error { return json.Unmarshal(bz, m) }

func (m *MsgWithdraw) Marshal() ([]byte, error)                      { return wireMarshal(m) }
func (m *MsgWithdraw) MarshalTo(dAtA []byte) (int, error)            { return wireMarshalTo(m, dAtA) }
func (m *MsgWithdraw) MarshalToSizedBuffer(dAtA []byte) (int, error) { return wireMarshalToSized(m, dAtA) }
func (m *MsgWithdraw) Size() int                                     { return wireSize(m) }
func (m *MsgWithdraw) Unmarshal(bz []byte) error                     { return json.Unmarshal(bz, m) }

func (m *MsgWithdraw) MarshalJSONPB(_ *jsonpb.Marshaler) ([]byte, error)      { return json.Marshal(m) }
func (m *MsgWithdraw) UnmarshalJSONPB(_ *jsonpb.Unmarshaler, bz []byte) error { return json.Unmarshal(bz, m) }

func (m *MsgWithdrawResponse) Marshal() ([]byte, error)                      { return wireMarshal(m) }
func (m *MsgWithdrawResponse) MarshalTo(dAtA []byte) (int, error)            { return wireMarshalTo(m, dAtA) }
func (m *MsgWithdrawResponse) MarshalToSizedBuffer(dAtA []byte) (int, error) { return wireMarshalToSized(m, dAtA) }
func (m *MsgWithdrawResponse) Size() int                                     { return wireSize(m) }
func (m *MsgWithdrawResponse) Unmarshal(bz []byte) error                     { return json.Unmarshal(bz, m) }

func (m *MsgWithdrawResponse) MarshalJSONPB(_ *jsonpb.Marshaler) ([]byte, error)      { return json.Marshal(m) }
func (m *MsgWithdrawResponse) UnmarshalJSONPB(_ *jsonpb.Unmarshaler, bz []byte) error { return json.Unmarshal(bz, m) }

func (m *MsgUpdateParams) Marshal() ([]byte, error)                      { return wireMarshal(m) }
func (m *MsgUpdateParams) MarshalTo(dAtA []byte) (int, error)            { return wireMarshalTo(m, dAtA) }
func (m *MsgUpdateParams) MarshalToSizedBuffer(dAtA []byte) (int, error) { return wireMarshalToSized(m, dAtA) }
func (m *MsgUpdateParams) Size() int                                     { return wireSize(m) }
func (m *MsgUpdateParams) Unmarshal(bz []byte) error                     { return json.Unmarshal(bz, m) }

func (m *MsgUpdateParams) MarshalJSONPB(_ *jsonpb.Marshaler) ([]byte, error)      { return json.Marshal(m) }
func (m *MsgUpdateParams) UnmarshalJSONPB(_ *jsonpb.Unmarshaler, bz []byte) error { return json.Unmarshal(bz, m) }

func (m *MsgUpdateParamsResponse) Marshal() ([]byte, error)                      { return wireMarshal(m) }
func (m *MsgUpdateParamsResponse) MarshalTo(dAtA []byte) (int, error)            { return wireMarshalTo(m, dAtA) }
func (m *MsgUpdateParamsResponse) MarshalToSizedBuffer(dAtA []byte) (int, error) { return wireMarshalToSized(m, dAtA) }
func (m *MsgUpdateParamsResponse) Size() int                                     { return wireSize(m) }
func (m *MsgUpdateParamsResponse) Unmarshal(bz []byte) error                     { return json.Unmarshal(bz, m) }

func (m *MsgUpdateParamsResponse) MarshalJSONPB(_ *jsonpb.Marshaler) ([]byte, error)      { return json.Marshal(m) }
func (m *MsgUpdateParamsResponse) UnmarshalJSONPB(_ *jsonpb.Unmarshaler, bz []byte) error { return json.Unmarshal(bz, m) }

func (m *QueryParamsRequest) Marshal() ([]byte, error)                      { return wireMarshal(m) }
func (m *QueryParamsRequest) MarshalTo(dAtA []byte) (int, error)            { return wireMarshalTo(m, dAtA) }
func (m *QueryParamsRequest) MarshalToSizedBuffer(dAtA []byte) (int, error) { return wireMarshalToSized(m, dAtA) }
func (m *QueryParamsRequest) Size() int                                     { return wireSize(m) }
func (m *QueryParamsRequest) Unmarshal(bz []byte) error                     { return json.Unmarshal(bz, m) }

func (m *QueryParamsRequest) MarshalJSONPB(_ *jsonpb.Marshaler) ([]byte, error)      { return json.Marshal(m) }
func (m *QueryParamsRequest) UnmarshalJSONPB(_ *jsonpb.Unmarshaler, bz []byte) error { return json.Unmarshal(bz, m) }

func (m *QueryParamsResponse) Marshal() ([]byte, error)                      { return wireMarshal(m) }
func (m *QueryParamsResponse) MarshalTo(dAtA []byte) (int, error)            { return wireMarshalTo(m, dAtA) }
func (m *QueryParamsResponse) MarshalToSizedBuffer(dAtA []byte) (int, error) { return wireMarshalToSized(m, dAtA) }
func (m *QueryParamsResponse) Size() int                                     { return wireSize(m) }
func (m *QueryParamsResponse) Unmarshal(bz []byte) error                     { return json.Unmarshal(bz, m) }

func (m *QueryParamsResponse) MarshalJSONPB(_ *jsonpb.Marshaler) ([]byte, error)      { return json.Marshal(m) }
func (m *QueryParamsResponse) UnmarshalJSONPB(_ *jsonpb.Unmarshaler, bz []byte) error { return json.Unmarshal(bz, m) }

func (m *QueryResourceRequest) Marshal() ([]byte, error)                      { return wireMarshal(m) }
func (m *QueryResourceRequest) MarshalTo(dAtA []byte) (int, error)            { return wireMarshalTo(m, dAtA) }
func (m *QueryResourceRequest) MarshalToSizedBuffer(dAtA []byte) (int, error) { return wireMarshalToSized(m, dAtA) }
func (m *QueryResourceRequest) Size() int                                     { return wireSize(m) }
func (m *QueryResourceRequest) Unmarshal(bz []byte) error                     { return json.Unmarshal(bz, m) }

func (m *QueryResourceRequest) MarshalJSONPB(_ *jsonpb.Marshaler) ([]byte, error)      { return json.Marshal(m) }
func (m *QueryResourceRequest) UnmarshalJSONPB(_ *jsonpb.Unmarshaler, bz []byte) error { return json.Unmarshal(bz, m) }

func (m *QueryResourceResponse) Marshal() ([]byte, error)                      { return wireMarshal(m) }
func (m *QueryResourceResponse) MarshalTo(dAtA []byte) (int, error)            { return wireMarshalTo(m, dAtA) }
func (m *QueryResourceResponse) MarshalToSizedBuffer(dAtA []byte) (int, error) { return wireMarshalToSized(m, dAtA) }
func (m *QueryResourceResponse) Size() int                                     { return wireSize(m) }
func (m *QueryResourceResponse) Unmarshal(bz []byte) error                     { return json.Unmarshal(bz, m) }

func (m *QueryResourceResponse) MarshalJSONPB(_ *jsonpb.Marshaler) ([]byte, error)      { return json.Marshal(m) }
func (m *QueryResourceResponse) UnmarshalJSONPB(_ *jsonpb.Unmarshaler, bz []byte) error { return json.Unmarshal(bz, m) }

func (m *QueryResourcesRequest) Marshal() ([]byte, error)                      { return wireMarshal(m) }
func (m *QueryResourcesRequest) MarshalTo(dAtA []byte) (int, error)            { return wireMarshalTo(m, dAtA) }
func (m *QueryResourcesRequest) MarshalToSizedBuffer(dAtA []byte) (int, error) { return wireMarshalToSized(m, dAtA) }
func (m *QueryResourcesRequest) Size() int                                     { return wireSize(m) }
func (m *QueryResourcesRequest) Unmarshal(bz []byte) error                     { return json.Unmarshal(bz, m) }

func (m *QueryResourcesRequest) MarshalJSONPB(_ *jsonpb.Marshaler) ([]byte, error)      { return json.Marshal(m) }
func (m *QueryResourcesRequest) UnmarshalJSONPB(_ *jsonpb.Unmarshaler, bz []byte) error { return json.Unmarshal(bz, m) }

func (m *QueryResourcesResponse) Marshal() ([]byte, error)                      { return wireMarshal(m) }
func (m *QueryResourcesResponse) MarshalTo(dAtA []byte) (int, error)            { return wireMarshalTo(m, dAtA) }
func (m *QueryResourcesResponse) MarshalToSizedBuffer(dAtA []byte) (int, error) { return wireMarshalToSized(m, dAtA) }
func (m *QueryResourcesResponse) Size() int                                     { return wireSize(m) }
func (m *QueryResourcesResponse) Unmarshal(bz []byte) error                     { return json.Unmarshal(bz, m) }

func (m *QueryResourcesResponse) MarshalJSONPB(_ *jsonpb.Marshaler) ([]byte, error)      { return json.Marshal(m) }
func (m *QueryResourcesResponse) UnmarshalJSONPB(_ *jsonpb.Unmarshaler, bz []byte) error { return json.Unmarshal(bz, m) }

func (m *QueryAuctionRequest) Marshal() ([]byte, error)                      { return wireMarshal(m) }
func (m *QueryAuctionRequest) MarshalTo(dAtA []byte) (int, error)            { return wireMarshalTo(m, dAtA) }
func (m *QueryAuctionRequest) MarshalToSizedBuffer(dAtA []byte) (int, error) { return wireMarshalToSized(m, dAtA) }
func (m *QueryAuctionRequest) Size() int                                     { return wireSize(m) }
func (m *QueryAuctionRequest) Unmarshal(bz []byte) error                     { return json.Unmarshal(bz, m) }

func (m *QueryAuctionRequest) MarshalJSONPB(_ *jsonpb.Marshaler) ([]byte, error)      { return json.Marshal(m) }
func (m *QueryAuctionRequest) UnmarshalJSONPB(_ *jsonpb.Unmarshaler, bz []byte) error { return json.Unmarshal(bz, m) }

func (m *QueryAuctionResponse) Marshal() ([]byte, error)                      { return wireMarshal(m) }
func (m *QueryAuctionResponse) MarshalTo(dAtA []byte) (int, error)            { return wireMarshalTo(m, dAtA) }
func (m *QueryAuctionResponse) MarshalToSizedBuffer(dAtA []byte) (int, error) { return wireMarshalToSized(m, dAtA) }
func (m *QueryAuctionResponse) Size() int                                     { return wireSize(m) }
func (m *QueryAuctionResponse) Unmarshal(bz []byte) error                     { return json.Unmarshal(bz, m) }

func (m *QueryAuctionResponse) MarshalJSONPB(_ *jsonpb.Marshaler) ([]byte, error)      { return json.Marshal(m) }
func (m *QueryAuctionResponse) UnmarshalJSONPB(_ *jsonpb.Unmarshaler, bz []byte) error { return json.Unmarshal(bz, m) }

func (m *QueryAuctionsRequest) Marshal() ([]byte, error)                      { return wireMarshal(m) }
func (m *QueryAuctionsRequest) MarshalTo(dAtA []byte) (int, error)            { return wireMarshalTo(m, dAtA) }
func (m *QueryAuctionsRequest) MarshalToSizedBuffer(dAtA []byte) (int, error) { return wireMarshalToSized(m, dAtA) }
func (m *QueryAuctionsRequest) Size() int                                     { return wireSize(m) }
func (m *QueryAuctionsRequest) Unmarshal(bz []byte) error                     { return json.Unmarshal(bz, m) }

func (m *QueryAuctionsRequest) MarshalJSONPB(_ *jsonpb.Marshaler) ([]byte, error)      { return json.Marshal(m) }
func (m *QueryAuctionsRequest) UnmarshalJSONPB(_ *jsonpb.Unmarshaler, bz []byte) error { return json.Unmarshal(bz, m) }

func (m *QueryAuctionsResponse) Marshal() ([]byte, error)                      { return wireMarshal(m) }
func (m *QueryAuctionsResponse) MarshalTo(dAtA []byte) (int, error)            { return wireMarshalTo(m, dAtA) }
func (m *QueryAuctionsResponse) MarshalToSizedBuffer(dAtA []byte) (int, error) { return wireMarshalToSized(m, dAtA) }
func (m *QueryAuctionsResponse) Size() int                                     { return wireSize(m) }
func (m *QueryAuctionsResponse) Unmarshal(bz []byte) error                     { return json.Unmarshal(bz, m) }

func (m *QueryAuctionsResponse) MarshalJSONPB(_ *jsonpb.Marshaler) ([]byte, error)      { return json.Marshal(m) }
func (m *QueryAuctionsResponse) UnmarshalJSONPB(_ *jsonpb.Unmarshaler, bz []byte) error { return json.Unmarshal(bz, m) }

func (m *QueryAuctionActiveRequest) Marshal() ([]byte, error)                      { return wireMarshal(m) }
func (m *QueryAuctionActiveRequest) MarshalTo(dAtA []byte) (int, error)            { return wireMarshalTo(m, dAtA) }
func (m *QueryAuctionActiveRequest) MarshalToSizedBuffer(dAtA []byte) (int, error) { return wireMarshalToSized(m, dAtA) }
func (m *QueryAuctionActiveRequest) Size() int                                     { return wireSize(m) }
func (m *QueryAuctionActiveRequest) Unmarshal(bz []byte) error                     { return json.Unmarshal(bz, m) }

func (m *QueryAuctionActiveRequest) MarshalJSONPB(_ *jsonpb.Marshaler) ([]byte, error)      { return json.Marshal(m) }
func (m *QueryAuctionActiveRequest) UnmarshalJSONPB(_ *jsonpb.Unmarshaler, bz []byte) error { return json.Unmarshal(bz, m) }

func (m *QueryAuctionActiveResponse) Marshal() ([]byte, error)                      { return wireMarshal(m) }
func (m *QueryAuctionActiveResponse) MarshalTo(dAtA []byte) (int, error)            { return wireMarshalTo(m, dAtA) }
func (m *QueryAuctionActiveResponse) MarshalToSizedBuffer(dAtA []byte) (int, error) { return wireMarshalToSized(m, dAtA) }
func (m *QueryAuctionActiveResponse) Size() int                                     { return wireSize(m) }
func (m *QueryAuctionActiveResponse) Unmarshal(bz []byte) error                     { return json.Unmarshal(bz, m) }

func (m *QueryAuctionActiveResponse) MarshalJSONPB(_ *jsonpb.Marshaler) ([]byte, error)      { return json.Marshal(m) }
func (m *QueryAuctionActiveResponse) UnmarshalJSONPB(_ *jsonpb.Unmarshaler, bz []byte) error { return json.Unmarshal(bz, m) }

func (m *QueryJobRequest) Marshal() ([]byte, error)                      { return wireMarshal(m) }
func (m *QueryJobRequest) MarshalTo(dAtA []byte) (int, error)            { return wireMarshalTo(m, dAtA) }
func (m *QueryJobRequest) MarshalToSizedBuffer(dAtA []byte) (int, error) { return wireMarshalToSized(m, dAtA) }
func (m *QueryJobRequest) Size() int                                     { return wireSize(m) }
func (m *QueryJobRequest) Unmarshal(bz []byte) error                     { return json.Unmarshal(bz, m) }

func (m *QueryJobRequest) MarshalJSONPB(_ *jsonpb.Marshaler) ([]byte, error)      { return json.Marshal(m) }
func (m *QueryJobRequest) UnmarshalJSONPB(_ *jsonpb.Unmarshaler, bz []byte) error { return json.Unmarshal(bz, m) }

func (m *QueryJobResponse) Marshal() ([]byte, error)                      { return wireMarshal(m) }
func (m *QueryJobResponse) MarshalTo(dAtA []byte) (int, error)            { return wireMarshalTo(m, dAtA) }
func (m *QueryJobResponse) MarshalToSizedBuffer(dAtA []byte) (int, error) { return wireMarshalToSized(m, dAtA) }
func (m *QueryJobResponse) Size() int                                     { return wireSize(m) }
func (m *QueryJobResponse) Unmarshal(bz []byte) error                     { return json.Unmarshal(bz, m) }

func (m *QueryJobResponse) MarshalJSONPB(_ *jsonpb.Marshaler) ([]byte, error)      { return json.Marshal(m) }
func (m *QueryJobResponse) UnmarshalJSONPB(_ *jsonpb.Unmarshaler, bz []byte) error { return json.Unmarshal(bz, m) }

func (m *QueryJobsRequest) Marshal() ([]byte, error)                      { return wireMarshal(m) }
func (m *QueryJobsRequest) MarshalTo(dAtA []byte) (int, error)            { return wireMarshalTo(m, dAtA) }
func (m *QueryJobsRequest) MarshalToSizedBuffer(dAtA []byte) (int, error) { return wireMarshalToSized(m, dAtA) }
func (m *QueryJobsRequest) Size() int                                     { return wireSize(m) }
func (m *QueryJobsRequest) Unmarshal(bz []byte) error                     { return json.Unmarshal(bz, m) }

func (m *QueryJobsRequest) MarshalJSONPB(_ *jsonpb.Marshaler) ([]byte, error)      { return json.Marshal(m) }
func (m *QueryJobsRequest) UnmarshalJSONPB(_ *jsonpb.Unmarshaler, bz []byte) error { return json.Unmarshal(bz, m) }

func (m *QueryJobsResponse) Marshal() ([]byte, error)                      { return wireMarshal(m) }
func (m *QueryJobsResponse) MarshalTo(dAtA []byte) (int, error)            { return wireMarshalTo(m, dAtA) }
func (m *QueryJobsResponse) MarshalToSizedBuffer(dAtA []byte) (int, error) { return wireMarshalToSized(m, dAtA) }
func (m *QueryJobsResponse) Size() int                                     { return wireSize(m) }
func (m *QueryJobsResponse) Unmarshal(bz []byte) error                     { return json.Unmarshal(bz, m) }

func (m *QueryJobsResponse) MarshalJSONPB(_ *jsonpb.Marshaler) ([]byte, error)      { return json.Marshal(m) }
func (m *QueryJobsResponse) UnmarshalJSONPB(_ *jsonpb.Unmarshaler, bz []byte) error { return json.Unmarshal(bz, m) }

func (m *QueryEscrowRequest) Marshal() ([]byte, error)                      { return wireMarshal(m) }
func (m *QueryEscrowRequest) MarshalTo(dAtA []byte) (int, error)            { return wireMarshalTo(m, dAtA) }
func (m *QueryEscrowRequest) MarshalToSizedBuffer(dAtA []byte) (int, error) { return wireMarshalToSized(m, dAtA) }
func (m *QueryEscrowRequest) Size() int                                     { return wireSize(m) }
func (m *QueryEscrowRequest) Unmarshal(bz []byte) error                     { return json.Unmarshal(bz, m) }

func (m *QueryEscrowRequest) MarshalJSONPB(_ *jsonpb.Marshaler) ([]byte, error)      { return json.Marshal(m) }
func (m *QueryEscrowRequest) UnmarshalJSONPB(_ *jsonpb.Unmarshaler, bz []byte) error { return json.Unmarshal(bz, m) }

func (m *QueryEscrowResponse) Marshal() ([]byte, error)                      { return wireMarshal(m) }
func (m *QueryEscrowResponse) MarshalTo(dAtA []byte) (int, error)            { return wireMarshalTo(m, dAtA) }
func (m *QueryEscrowResponse) MarshalToSizedBuffer(dAtA []byte) (int, error) { return wireMarshalToSized(m, dAtA) }
func (m *QueryEscrowResponse) Size() int                                     { return wireSize(m) }
func (m *QueryEscrowResponse) Unmarshal(bz []byte) error                     { return json.Unmarshal(bz, m) }

func (m *QueryEscrowResponse) MarshalJSONPB(_ *jsonpb.Marshaler) ([]byte, error)      { return json.Marshal(m) }
func (m *QueryEscrowResponse) UnmarshalJSONPB(_ *jsonpb.Unmarshaler, bz []byte) error { return json.Unmarshal(bz, m) }

func (m *QueryProviderReputationRequest) Marshal() ([]byte, error)                      { return wireMarshal(m) }
func (m *QueryProviderReputationRequest) MarshalTo(dAtA []byte) (int, error)            { return wireMarshalTo(m, dAtA) }
func (m *QueryProviderReputationRequest) MarshalToSizedBuffer(dAtA []byte) (int, error) { return wireMarshalToSized(m, dAtA) }
func (m *QueryProviderReputationRequest) Size() int                                     { return wireSize(m) }
func (m *QueryProviderReputationRequest) Unmarshal(bz []byte) error                     { return json.Unmarshal(bz, m) }

func (m *QueryProviderReputationRequest) MarshalJSONPB(_ *jsonpb.Marshaler) ([]byte, error)      { return json.Marshal(m) }
func (m *QueryProviderReputationRequest) UnmarshalJSONPB(_ *jsonpb.Unmarshaler, bz []byte) error { return json.Unmarshal(bz, m) }

func (m *QueryProviderReputationResponse) Marshal() ([]byte, error)                      { return wireMarshal(m) }
func (m *QueryProviderReputationResponse) MarshalTo(dAtA []byte) (int, error)            { return wireMarshalTo(m, dAtA) }
func (m *QueryProviderReputationResponse) MarshalToSizedBuffer(dAtA []byte) (int, error) { return wireMarshalToSized(m, dAtA) }
func (m *QueryProviderReputationResponse) Size() int                                     { return wireSize(m) }
func (m *QueryProviderReputationResponse) Unmarshal(bz []byte) error                     { return json.Unmarshal(bz, m) }

func (m *QueryProviderReputationResponse) MarshalJSONPB(_ *jsonpb.Marshaler) ([]byte, error)      { return json.Marshal(m) }
func (m *QueryProviderReputationResponse) UnmarshalJSONPB(_ *jsonpb.Unmarshaler, bz []byte) error { return json.Unmarshal(bz, m) }

func (m *QueryBalanceRequest) Marshal() ([]byte, error)                      { return wireMarshal(m) }
func (m *QueryBalanceRequest) MarshalTo(dAtA []byte) (int, error)            { return wireMarshalTo(m, dAtA) }
func (m *QueryBalanceRequest) MarshalToSizedBuffer(dAtA []byte) (int, error) { return wireMarshalToSized(m, dAtA) }
func (m *QueryBalanceRequest) Size() int                                     { return wireSize(m) }
func (m *QueryBalanceRequest) Unmarshal(bz []byte) error                     { return json.Unmarshal(bz, m) }

func (m *QueryBalanceRequest) MarshalJSONPB(_ *jsonpb.Marshaler) ([]byte, error)      { return json.Marshal(m) }
func (m *QueryBalanceRequest) UnmarshalJSONPB(_ *jsonpb.Unmarshaler, bz []byte) error { return json.Unmarshal(bz, m) }

func (m *QueryBalanceResponse) Marshal() ([]byte, error)                      { return wireMarshal(m) }
func (m *QueryBalanceResponse) MarshalTo(dAtA []byte) (int, error)            { return wireMarshalTo(m, dAtA) }
func (m *QueryBalanceResponse) MarshalToSizedBuffer(dAtA []byte) (int, error) { return wireMarshalToSized(m, dAtA) }
func (m *QueryBalanceResponse) Size() int                                     { return wireSize(m) }
func (m *QueryBalanceResponse) Unmarshal(bz []byte) error                     { return json.Unmarshal(bz, m) }

func (m *QueryBalanceResponse) MarshalJSONPB(_ *jsonpb.Marshaler) ([]byte, error)      { return json.Marshal(m) }
func (m *QueryBalanceResponse) UnmarshalJSONPB(_ *jsonpb.Unmarshaler, bz []byte) error { return json.Unmarshal(bz, m) }

func (m *QueryTreasuryRequest) Marshal() ([]byte, error)                      { return wireMarshal(m) }
func (m *QueryTreasuryRequest) MarshalTo(dAtA []byte) (int, error)            { return wireMarshalTo(m, dAtA) }
func (m *QueryTreasuryRequest) MarshalToSizedBuffer(dAtA []byte) (int, error) { return wireMarshalToSized(m, dAtA) }
func (m *QueryTreasuryRequest) Size() int                                     { return wireSize(m) }
func (m *QueryTreasuryRequest) Unmarshal(bz []byte) error                     { return json.Unmarshal(bz, m) }

func (m *QueryTreasuryRequest) MarshalJSONPB(_ *jsonpb.Marshaler) ([]byte, error)      { return json.Marshal(m) }
func (m *QueryTreasuryRequest) UnmarshalJSONPB(_ *jsonpb.Unmarshaler, bz []byte) error { return json.Unmarshal(bz, m) }

func (m *QueryTreasuryResponse) Marshal() ([]byte, error)                      { return wireMarshal(m) }
func (m *QueryTreasuryResponse) MarshalTo(dAtA []byte) (int, error)            { return wireMarshalTo(m, dAtA) }
func (m *QueryTreasuryResponse) MarshalToSizedBuffer(dAtA []byte) (int, error) { return wireMarshalToSized(m, dAtA) }
func (m *QueryTreasuryResponse) Size() int                                     { return wireSize(m) }
func (m *QueryTreasuryResponse) Unmarshal(bz []byte) error                     { return json.Unmarshal(bz, m) }

func (m *QueryTreasuryResponse) MarshalJSONPB(_ *jsonpb.Marshaler) ([]byte, error)      { return json.Marshal(m) }
func (m *QueryTreasuryResponse) UnmarshalJSONPB(_ *jsonpb.Unmarshaler, bz []byte) error { return json.Unmarshal(bz, m) }
