package cli

import (
	"fmt"
	"strconv"

	"cosmossdk.io/math"
	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	"github.com/cosmos/cosmos-sdk/client/tx"

	"github.com/grid-chain/grid/x/market/types"
)

// GetTxCmd returns the transaction commands for the market module
func GetTxCmd() *cobra.Command {
	marketTxCmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "Market transaction subcommands",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	marketTxCmd.AddCommand(
		CmdListResource(),
		CmdCreateAuction(),
		CmdPlaceBid(),
		CmdEndAuction(),
		CmdSubmitProof(),
		CmdReleaseMilestone(),
		CmdDeposit(),
		CmdWithdraw(),
	)

	return marketTxCmd
}

// CmdListResource returns a CLI command handler for listing compute capacity
func CmdListResource() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list-resource",
		Short: "List compute capacity on the marketplace",
		Long: `List compute capacity with its hardware profile and hourly rate.

Example:
  $ gridd tx market list-resource \
    --gpu-count 4 \
    --cpu-cores 32 \
    --memory-gb 128 \
    --hourly-rate 2500 \
    --from mykey`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			gpuCount, err := cmd.Flags().GetUint64(FlagGpuCount)
			if err != nil {
				return err
			}

			cpuCores, err := cmd.Flags().GetUint64(FlagCpuCores)
			if err != nil {
				return err
			}

			memoryGb, err := cmd.Flags().GetUint64(FlagMemoryGb)
			if err != nil {
				return err
			}

			rateStr, err := cmd.Flags().GetString(FlagHourlyRate)
			if err != nil {
				return err
			}
			hourlyRate, ok := math.NewIntFromString(rateStr)
			if !ok {
				return fmt.Errorf("invalid hourly rate: %s", rateStr)
			}

			spec := types.ResourceSpec{
				GpuCount: gpuCount,
				CpuCores: cpuCores,
				MemoryGb: memoryGb,
			}

			msg := &types.MsgListResource{
				Provider:   clientCtx.GetFromAddress().String(),
				Spec:       spec,
				HourlyRate: hourlyRate,
			}

			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	cmd.Flags().Uint64(FlagGpuCount, 0, "Number of GPUs offered")
	cmd.Flags().Uint64(FlagCpuCores, 1, "Number of CPU cores offered")
	cmd.Flags().Uint64(FlagMemoryGb, 1, "Memory offered in GB")
	cmd.Flags().String(FlagHourlyRate, "0", "Hourly rate in base denomination")

	if err := cmd.MarkFlagRequired(FlagHourlyRate); err != nil {
		return nil
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdCreateAuction returns a CLI command handler for opening a reverse auction
func CmdCreateAuction() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create-auction",
		Short: "Open an auction for compute work",
		Long: `Open an auction describing the required hardware and a starting price.
Bidding stays open for a fixed number of blocks.

Example:
  $ gridd tx market create-auction \
    --gpu-count 2 \
    --cpu-cores 16 \
    --memory-gb 64 \
    --max-duration 24 \
    --starting-price 100000 \
    --from mykey`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			gpuCount, err := cmd.Flags().GetUint64(FlagGpuCount)
			if err != nil {
				return err
			}

			cpuCores, err := cmd.Flags().GetUint64(FlagCpuCores)
			if err != nil {
				return err
			}

			memoryGb, err := cmd.Flags().GetUint64(FlagMemoryGb)
			if err != nil {
				return err
			}

			maxDuration, err := cmd.Flags().GetUint64(FlagMaxDuration)
			if err != nil {
				return err
			}

			priceStr, err := cmd.Flags().GetString(FlagStartingPrice)
			if err != nil {
				return err
			}
			startingPrice, ok := math.NewIntFromString(priceStr)
			if !ok {
				return fmt.Errorf("invalid starting price: %s", priceStr)
			}

			requirements := types.ResourceSpec{
				GpuCount: gpuCount,
				CpuCores: cpuCores,
				MemoryGb: memoryGb,
			}

			msg := &types.MsgCreateAuction{
				Requester:     clientCtx.GetFromAddress().String(),
				Requirements:  requirements,
				MaxDuration:   maxDuration,
				StartingPrice: startingPrice,
			}

			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	cmd.Flags().Uint64(FlagGpuCount, 0, "Number of GPUs required")
	cmd.Flags().Uint64(FlagCpuCores, 1, "Number of CPU cores required")
	cmd.Flags().Uint64(FlagMemoryGb, 1, "Memory required in GB")
	cmd.Flags().Uint64(FlagMaxDuration, 1, "Maximum job duration in hours")
	cmd.Flags().String(FlagStartingPrice, "0", "Starting price in base denomination")

	if err := cmd.MarkFlagRequired(FlagStartingPrice); err != nil {
		return nil
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdPlaceBid returns a CLI command handler for bidding on an auction
func CmdPlaceBid() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "place-bid [auction-id] [amount]",
		Short: "Bid on an open auction",
		Long: `Bid on an open auction. The bid must exceed the current highest bid
and is locked from the marketplace balance until outbid.

Example:
  $ gridd tx market place-bid 7 150000 --from mykey`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			auctionID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid auction id: %w", err)
			}

			amount, ok := math.NewIntFromString(args[1])
			if !ok {
				return fmt.Errorf("invalid bid amount: %s", args[1])
			}

			msg := &types.MsgPlaceBid{
				Bidder:    clientCtx.GetFromAddress().String(),
				AuctionId: auctionID,
				Amount:    amount,
			}

			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdEndAuction returns a CLI command handler for settling an expired auction
func CmdEndAuction() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "end-auction [auction-id]",
		Short: "Settle an auction whose bidding window has closed",
		Long: `Settle an auction whose bidding window has closed. Anyone may call
this; a winning bid creates the job and its escrow schedule.

Example:
  $ gridd tx market end-auction 7 --from mykey`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			auctionID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid auction id: %w", err)
			}

			msg := &types.MsgEndAuction{
				Sender:    clientCtx.GetFromAddress().String(),
				AuctionId: auctionID,
			}

			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdSubmitProof returns a CLI command handler for submitting an execution proof
func CmdSubmitProof() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "submit-proof [job-id] [proof]",
		Short: "Submit an execution proof for a job",
		Long: `Submit an execution proof for an active job. Only the job's provider
may submit, and submission marks the job completed.

Example:
  $ gridd tx market submit-proof 3 9f86d081884c7d65... --from mykey`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			jobID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid job id: %w", err)
			}

			msg := &types.MsgSubmitExecutionProof{
				Provider: clientCtx.GetFromAddress().String(),
				JobId:    jobID,
				Proof:    args[1],
			}

			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdReleaseMilestone returns a CLI command handler for releasing escrowed pay
func CmdReleaseMilestone() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "release-milestone [job-id] [milestone-index]",
		Short: "Release one escrowed milestone payment",
		Long: `Release one escrowed milestone payment to the job's provider, net of
the platform fee. Only the job's requester may release.

Example:
  $ gridd tx market release-milestone 3 0 --from mykey`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			jobID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid job id: %w", err)
			}

			milestoneIndex, err := strconv.ParseUint(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid milestone index: %w", err)
			}

			msg := &types.MsgReleaseMilestone{
				Requester:      clientCtx.GetFromAddress().String(),
				JobId:          jobID,
				MilestoneIndex: milestoneIndex,
			}

			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdDeposit returns a CLI command handler for funding the marketplace balance
func CmdDeposit() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deposit [amount]",
		Short: "Move bank funds into the marketplace balance",
		Long: `Move funds from the bank account into the marketplace balance used
for bidding and payouts.

Example:
  $ gridd tx market deposit 1000000 --from mykey`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			amount, ok := math.NewIntFromString(args[0])
			if !ok {
				return fmt.Errorf("invalid deposit amount: %s", args[0])
			}

			msg := &types.MsgDeposit{
				Depositor: clientCtx.GetFromAddress().String(),
				Amount:    amount,
			}

			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdWithdraw returns a CLI command handler for withdrawing to the bank account
func CmdWithdraw() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "withdraw [amount]",
		Short: "Move marketplace balance back to the bank account",
		Long: `Move funds from the marketplace balance back to the bank account.

Example:
  $ gridd tx market withdraw 500000 --from mykey`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			amount, ok := math.NewIntFromString(args[0])
			if !ok {
				return fmt.Errorf("invalid withdraw amount: %s", args[0])
			}

			msg := &types.MsgWithdraw{
				Withdrawer: clientCtx.GetFromAddress().String(),
				Amount:     amount,
			}

			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}
