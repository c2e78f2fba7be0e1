package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

func sellerCmd() *cobra.Command {
	sellerRoot := &cobra.Command{
		Use:   "seller",
		Short: "Inspect learned seller profiles",
	}
	sellerRoot.AddCommand(sellerGetCmd())
	return sellerRoot
}

func sellerGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <seller_id>",
		Short: "Show a seller's learned negotiation profile",
		Example: `  hgl seller get s-123
  hgl seller get s-123 --output json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := newClient().GetSeller(context.Background(), args[0])
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), p)
			}
			return printSellerDetail(cmd.OutOrStdout(), p)
		},
	}
}
