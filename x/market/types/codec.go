package types

import (
	"github.com/cosmos/cosmos-sdk/codec"
	cdctypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// RegisterCodec registers the module's message types on the legacy amino
// codec.
func RegisterCodec(cdc *codec.LegacyAmino) {
	cdc.RegisterConcrete(&MsgListResource{}, "market/ListResource", nil)
	cdc.RegisterConcrete(&MsgCreateAuction{}, "market/CreateAuction", nil)
	cdc.RegisterConcrete(&MsgPlaceBid{}, "market/PlaceBid", nil)
	cdc.RegisterConcrete(&MsgEndAuction{}, "market/EndAuction", nil)
	cdc.RegisterConcrete(&MsgSubmitExecutionProof{}, "market/SubmitExecutionProof", nil)
	cdc.RegisterConcrete(&MsgReleaseMilestone{}, "market/ReleaseMilestone", nil)
	cdc.RegisterConcrete(&MsgDeposit{}, "market/Deposit", nil)
	cdc.RegisterConcrete(&MsgWithdraw{}, "market/Withdraw", nil)
	cdc.RegisterConcrete(&MsgUpdateParams{}, "market/UpdateParams", nil)
}

// RegisterInterfaces registers the module's message types on the interface
// registry so they resolve from type URLs.
func RegisterInterfaces(registry cdctypes.InterfaceRegistry) {
	registry.RegisterImplementations((*sdk.Msg)(nil),
		&MsgListResource{},
		&MsgCreateAuction{},
		&MsgPlaceBid{},
		&MsgEndAuction{},
		&MsgSubmitExecutionProof{},
		&MsgReleaseMilestone{},
		&MsgDeposit{},
		&MsgWithdraw{},
		&MsgUpdateParams{},
	)
}

var (
	amino = codec.NewLegacyAmino()

	// ModuleCdc references the global market module codec. It is used by
	// GetSignBytes and anywhere a legacy amino encoding of module types is
	// needed.
	ModuleCdc = codec.NewAminoCodec(amino)
)

func init() {
	RegisterCodec(amino)
	amino.Seal()
}
