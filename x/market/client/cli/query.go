package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"

	"github.com/grid-chain/grid/x/market/types"
)

// GetQueryCmd returns the cli query commands for the market module
func GetQueryCmd() *cobra.Command {
	marketQueryCmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "Querying commands for the market module",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	marketQueryCmd.AddCommand(
		GetCmdQueryParams(),
		GetCmdQueryResource(),
		GetCmdQueryResources(),
		GetCmdQueryAuction(),
		GetCmdQueryAuctions(),
		GetCmdQueryAuctionActive(),
		GetCmdQueryJob(),
		GetCmdQueryJobs(),
		GetCmdQueryEscrow(),
		GetCmdQueryReputation(),
		GetCmdQueryBalance(),
		GetCmdQueryTreasury(),
	)

	return marketQueryCmd
}

// GetCmdQueryParams returns the command to query module parameters
func GetCmdQueryParams() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "params",
		Short: "Query the current market module parameters",
		Long: `Query the current parameters of the market module.

Example:
  $ gridd query market params`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			queryClient := types.NewQueryClient(clientCtx)
			res, err := queryClient.Params(context.Background(), &types.QueryParamsRequest{})
			if err != nil {
				return err
			}

			return clientCtx.PrintProto(res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdQueryResource returns the command to query a resource listing by id
func GetCmdQueryResource() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resource [id]",
		Short: "Query a compute resource listing by id",
		Long: `Query a compute resource listing with its hardware profile and rate.

Example:
  $ gridd query market resource 1`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			id, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid resource id: %w", err)
			}

			queryClient := types.NewQueryClient(clientCtx)
			res, err := queryClient.Resource(context.Background(), &types.QueryResourceRequest{
				Id: id,
			})
			if err != nil {
				return err
			}

			return clientCtx.PrintProto(res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdQueryResources returns the command to query resource listings
func GetCmdQueryResources() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resources",
		Short: "Query compute resource listings",
		Long: `Query compute resource listings with pagination support, optionally
filtered to one provider.

Example:
  $ gridd query market resources
  $ gridd query market resources --provider grid1abcdef...`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			provider, err := cmd.Flags().GetString(FlagProvider)
			if err != nil {
				return err
			}

			pageReq, err := client.ReadPageRequest(cmd.Flags())
			if err != nil {
				return err
			}

			queryClient := types.NewQueryClient(clientCtx)
			res, err := queryClient.Resources(context.Background(), &types.QueryResourcesRequest{
				Provider:   provider,
				Pagination: pageReq,
			})
			if err != nil {
				return err
			}

			return clientCtx.PrintProto(res)
		},
	}

	cmd.Flags().String(FlagProvider, "", "Filter listings by provider address")

	flags.AddQueryFlagsToCmd(cmd)
	flags.AddPaginationFlagsToCmd(cmd, "resources")
	return cmd
}

// GetCmdQueryAuction returns the command to query an auction by id
func GetCmdQueryAuction() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auction [id]",
		Short: "Query an auction by id",
		Long: `Query an auction with its current bid and bidding window.

Example:
  $ gridd query market auction 7`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			id, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid auction id: %w", err)
			}

			queryClient := types.NewQueryClient(clientCtx)
			res, err := queryClient.Auction(context.Background(), &types.QueryAuctionRequest{
				Id: id,
			})
			if err != nil {
				return err
			}

			return clientCtx.PrintProto(res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdQueryAuctions returns the command to query auctions
func GetCmdQueryAuctions() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auctions",
		Short: "Query auctions",
		Long: `Query auctions with pagination support, optionally restricted to
those still accepting bids.

Example:
  $ gridd query market auctions
  $ gridd query market auctions --active`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			activeOnly, err := cmd.Flags().GetBool(FlagActiveOnly)
			if err != nil {
				return err
			}

			pageReq, err := client.ReadPageRequest(cmd.Flags())
			if err != nil {
				return err
			}

			queryClient := types.NewQueryClient(clientCtx)
			res, err := queryClient.Auctions(context.Background(), &types.QueryAuctionsRequest{
				ActiveOnly: activeOnly,
				Pagination: pageReq,
			})
			if err != nil {
				return err
			}

			return clientCtx.PrintProto(res)
		},
	}

	cmd.Flags().Bool(FlagActiveOnly, false, "Show only auctions still accepting bids")

	flags.AddQueryFlagsToCmd(cmd)
	flags.AddPaginationFlagsToCmd(cmd, "auctions")
	return cmd
}

// GetCmdQueryAuctionActive returns the command to check whether an auction accepts bids
func GetCmdQueryAuctionActive() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auction-active [id]",
		Short: "Check whether an auction still accepts bids",
		Long: `Check whether an auction still accepts bids at the current height.

Example:
  $ gridd query market auction-active 7`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			id, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid auction id: %w", err)
			}

			queryClient := types.NewQueryClient(clientCtx)
			res, err := queryClient.AuctionActive(context.Background(), &types.QueryAuctionActiveRequest{
				Id: id,
			})
			if err != nil {
				return err
			}

			return clientCtx.PrintProto(res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdQueryJob returns the command to query a job by id
func GetCmdQueryJob() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "job [id]",
		Short: "Query a job by id",
		Long: `Query a job with its milestone progress and status.

Example:
  $ gridd query market job 3`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			id, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid job id: %w", err)
			}

			queryClient := types.NewQueryClient(clientCtx)
			res, err := queryClient.Job(context.Background(), &types.QueryJobRequest{
				Id: id,
			})
			if err != nil {
				return err
			}

			return clientCtx.PrintProto(res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdQueryJobs returns the command to query jobs
func GetCmdQueryJobs() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jobs",
		Short: "Query jobs",
		Long: `Query jobs with pagination support, optionally filtered by provider
or requester.

Example:
  $ gridd query market jobs
  $ gridd query market jobs --provider grid1abcdef...
  $ gridd query market jobs --requester grid1ghijkl...`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			provider, err := cmd.Flags().GetString(FlagProvider)
			if err != nil {
				return err
			}

			requester, err := cmd.Flags().GetString(FlagRequester)
			if err != nil {
				return err
			}

			pageReq, err := client.ReadPageRequest(cmd.Flags())
			if err != nil {
				return err
			}

			queryClient := types.NewQueryClient(clientCtx)
			res, err := queryClient.Jobs(context.Background(), &types.QueryJobsRequest{
				Provider:   provider,
				Requester:  requester,
				Pagination: pageReq,
			})
			if err != nil {
				return err
			}

			return clientCtx.PrintProto(res)
		},
	}

	cmd.Flags().String(FlagProvider, "", "Filter jobs by provider address")
	cmd.Flags().String(FlagRequester, "", "Filter jobs by requester address")

	flags.AddQueryFlagsToCmd(cmd)
	flags.AddPaginationFlagsToCmd(cmd, "jobs")
	return cmd
}

// GetCmdQueryEscrow returns the command to query a job's escrow schedule
func GetCmdQueryEscrow() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "escrow [job-id]",
		Short: "Query a job's escrow schedule",
		Long: `Query a job's escrow entries and the amount still held.

Example:
  $ gridd query market escrow 3`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			jobID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid job id: %w", err)
			}

			queryClient := types.NewQueryClient(clientCtx)
			res, err := queryClient.Escrow(context.Background(), &types.QueryEscrowRequest{
				JobId: jobID,
			})
			if err != nil {
				return err
			}

			return clientCtx.PrintProto(res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdQueryReputation returns the command to query a provider's reputation
func GetCmdQueryReputation() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reputation [provider]",
		Short: "Query a provider's reputation record",
		Long: `Query a provider's reputation record. Providers without history get
the neutral default score.

Example:
  $ gridd query market reputation grid1abcdef...`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			queryClient := types.NewQueryClient(clientCtx)
			res, err := queryClient.ProviderReputation(context.Background(), &types.QueryProviderReputationRequest{
				Provider: args[0],
			})
			if err != nil {
				return err
			}

			return clientCtx.PrintProto(res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdQueryBalance returns the command to query a marketplace balance
func GetCmdQueryBalance() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "balance [address]",
		Short: "Query an account's marketplace balance",
		Long: `Query the marketplace balance available for bidding and withdrawal.

Example:
  $ gridd query market balance grid1abcdef...`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			queryClient := types.NewQueryClient(clientCtx)
			res, err := queryClient.Balance(context.Background(), &types.QueryBalanceRequest{
				Address: args[0],
			})
			if err != nil {
				return err
			}

			return clientCtx.PrintProto(res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdQueryTreasury returns the command to query accumulated platform fees
func GetCmdQueryTreasury() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "treasury",
		Short: "Query accumulated platform fees",
		Long: `Query the platform fees accumulated from milestone releases.

Example:
  $ gridd query market treasury`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			queryClient := types.NewQueryClient(clientCtx)
			res, err := queryClient.Treasury(context.Background(), &types.QueryTreasuryRequest{})
			if err != nil {
				return err
			}

			return clientCtx.PrintProto(res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}
