package cli

import (
	"context"
	"fmt"

	operatorv1 "github.com/ogurasousui/operator-registry/internal/adapters/grpc/api/operator/v1"
	"github.com/spf13/cobra"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

func regionsCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "regions",
		Short: "List regions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withClient(cmd, func(ctx context.Context, client operatorv1.OperatorServiceClient) error {
				resp, err := client.ListRegions(ctx, &operatorv1.ListRegionsRequest{})
				if err != nil {
					return describeError(err)
				}
				out := cmd.OutOrStdout()
				for _, r := range resp.Regions {
					fmt.Fprintf(out, "%4d  %s\n", r.Id, r.Name)
				}
				return nil
			})
		},
	}
}

func statusesCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "statuses",
		Short: "List business statuses",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withClient(cmd, func(ctx context.Context, client operatorv1.OperatorServiceClient) error {
				resp, err := client.ListStatuses(ctx, &operatorv1.ListStatusesRequest{})
				if err != nil {
					return describeError(err)
				}
				out := cmd.OutOrStdout()
				for _, s := range resp.Statuses {
					fmt.Fprintf(out, "%d  %s\n", s.Id, statusLabel(s.Id))
				}
				return nil
			})
		},
	}
}

func createCmd(opts *globalOptions) *cobra.Command {
	req := &operatorv1.CreateOperatorRequest{}
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an operator (the code is assigned automatically)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withClient(cmd, func(ctx context.Context, client operatorv1.OperatorServiceClient) error {
				resp, err := client.CreateOperator(ctx, req)
				if err != nil {
					return describeError(err)
				}
				printOperator(cmd.OutOrStdout(), resp.Operator)
				return nil
			})
		},
	}

	cmd.Flags().Int64Var(&req.RegionId, "region", 0, "region id")
	cmd.Flags().StringVar(&req.NationalId, "national-id", "", "national id (digits only)")
	cmd.Flags().StringVar(&req.FirstName, "first-name", "", "first name")
	cmd.Flags().StringVar(&req.LastName, "last-name", "", "last name")
	cmd.Flags().Int32Var(&req.StatusId, "status", 0, "initial status id (defaults to pending create)")
	_ = cmd.MarkFlagRequired("region")

	return cmd
}

func getCmd(opts *globalOptions) *cobra.Command {
	var includeTrashed bool
	cmd := &cobra.Command{
		Use:   "get <id>",
		Short: "Show an operator",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withClient(cmd, func(ctx context.Context, client operatorv1.OperatorServiceClient) error {
				resp, err := client.GetOperator(ctx, &operatorv1.GetOperatorRequest{Id: args[0], IncludeTrashed: includeTrashed})
				if err != nil {
					return describeError(err)
				}
				printOperator(cmd.OutOrStdout(), resp.Operator)
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&includeTrashed, "trashed", false, "also look in the trash")
	return cmd
}

func listCmd(opts *globalOptions) *cobra.Command {
	req := &operatorv1.ListOperatorsRequest{}
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List operators ordered by code",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withClient(cmd, func(ctx context.Context, client operatorv1.OperatorServiceClient) error {
				resp, err := client.ListOperators(ctx, req)
				if err != nil {
					return describeError(err)
				}
				out := cmd.OutOrStdout()
				printOperatorTable(out, resp.Operators)
				if resp.NextPageToken != "" {
					fmt.Fprintf(out, "next page: --page-token %s\n", resp.NextPageToken)
				}
				return nil
			})
		},
	}

	cmd.Flags().Int64Var(&req.RegionId, "region", 0, "filter by region id")
	cmd.Flags().Int32Var(&req.StatusId, "status", 0, "filter by status id")
	cmd.Flags().BoolVar(&req.Trashed, "trashed", false, "list the trash instead of active operators")
	cmd.Flags().Int32Var(&req.PageSize, "page-size", 0, "page size (server default when 0)")
	cmd.Flags().StringVar(&req.PageToken, "page-token", "", "page token from a previous call")

	return cmd
}

func updateCmd(opts *globalOptions) *cobra.Command {
	var (
		nationalID string
		firstName  string
		lastName   string
		region     int64
		status     int32
	)
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update operator fields (only the flags given are changed)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := &operatorv1.UpdateOperatorRequest{Id: args[0]}
			flags := cmd.Flags()
			if flags.Changed("national-id") {
				req.NationalId = wrapperspb.String(nationalID)
			}
			if flags.Changed("first-name") {
				req.FirstName = wrapperspb.String(firstName)
			}
			if flags.Changed("last-name") {
				req.LastName = wrapperspb.String(lastName)
			}
			if flags.Changed("region") {
				req.RegionId = wrapperspb.Int64(region)
			}
			if flags.Changed("status") {
				req.StatusId = wrapperspb.Int32(status)
			}

			return opts.withClient(cmd, func(ctx context.Context, client operatorv1.OperatorServiceClient) error {
				resp, err := client.UpdateOperator(ctx, req)
				if err != nil {
					return describeError(err)
				}
				printOperator(cmd.OutOrStdout(), resp.Operator)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&nationalID, "national-id", "", "national id")
	cmd.Flags().StringVar(&firstName, "first-name", "", "first name")
	cmd.Flags().StringVar(&lastName, "last-name", "", "last name")
	cmd.Flags().Int64Var(&region, "region", 0, "region id")
	cmd.Flags().Int32Var(&status, "status", 0, "status id")

	return cmd
}

func advanceCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "advance <id>",
		Short: "Advance the business status (pending create -> created -> pending delete)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withClient(cmd, func(ctx context.Context, client operatorv1.OperatorServiceClient) error {
				resp, err := client.AdvanceOperatorStatus(ctx, &operatorv1.AdvanceOperatorStatusRequest{Id: args[0]})
				if err != nil {
					return describeError(err)
				}
				printOperator(cmd.OutOrStdout(), resp.Operator)
				return nil
			})
		},
	}
}

func removeCmd(opts *globalOptions) *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "remove <id>",
		Short: "Move an operator to the trash, or delete it permanently with --force",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode := "soft_delete"
			if force {
				mode = "force_delete"
			}
			return opts.withClient(cmd, func(ctx context.Context, client operatorv1.OperatorServiceClient) error {
				resp, err := client.RemoveOperator(ctx, &operatorv1.RemoveOperatorRequest{Id: args[0], Mode: mode})
				if err != nil {
					return describeError(err)
				}
				out := cmd.OutOrStdout()
				if force {
					fmt.Fprintf(out, "%s operator %s (code %03d)\n", red("deleted"), resp.Operator.Id, resp.Operator.Code)
					return nil
				}
				fmt.Fprintf(out, "%s operator %s (code %03d)\n", yellow("trashed"), resp.Operator.Id, resp.Operator.Code)
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "delete permanently")
	return cmd
}

func restoreCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "restore <id>",
		Short: "Restore an operator from the trash",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withClient(cmd, func(ctx context.Context, client operatorv1.OperatorServiceClient) error {
				resp, err := client.RestoreOperator(ctx, &operatorv1.RestoreOperatorRequest{Id: args[0]})
				if err != nil {
					return describeError(err)
				}
				printOperator(cmd.OutOrStdout(), resp.Operator)
				return nil
			})
		},
	}
}

func purgeTrashCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "purge-trash",
		Short: "Permanently delete every operator in the trash",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withClient(cmd, func(ctx context.Context, client operatorv1.OperatorServiceClient) error {
				resp, err := client.PurgeTrash(ctx, &operatorv1.PurgeTrashRequest{})
				if err != nil {
					return describeError(err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %d operator(s)\n", red("purged"), resp.Purged)
				return nil
			})
		},
	}
}
