package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	apiclient "github.com/donaldgifford/haggle/internal/api/client"
)

func analyzeCmd() *cobra.Command {
	var (
		req      apiclient.AnalyzeRequest
		sellerID string
	)

	cmd := &cobra.Command{
		Use:   "analyze <item name>",
		Short: "Get a negotiation strategy for a listing",
		Example: `  hgl analyze "Nike Air Max trainers" --price 50 --days 45 --interested 1
  hgl analyze "Barbour jacket" --price 95 --days 3 --interested 6 --seller-id s-123 --output json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req.ItemName = strings.TrimSpace(strings.Join(args, " "))
			if sellerID != "" {
				req.SellerData = map[string]any{"seller_id": sellerID}
			}

			resp, err := newClient().Analyze(context.Background(), &req)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), resp)
			}
			return printAnalysis(cmd.OutOrStdout(), req.Price, resp)
		},
	}

	cmd.Flags().Float64Var(&req.Price, "price", 0, "listed price (required)")
	cmd.Flags().IntVar(&req.Days, "days", 0, "days the listing has been up")
	cmd.Flags().IntVar(&req.Interested, "interested", 0, "number of interested buyers")
	cmd.Flags().IntVar(&req.Views, "views", 0, "listing views")
	cmd.Flags().StringVar(&sellerID, "seller-id", "", "seller identifier for profile learning")
	cobra.CheckErr(cmd.MarkFlagRequired("price"))

	return cmd
}

func estimateCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "estimate <item name>",
		Short:   "Get the keyword-based market estimate for an item",
		Example: `  hgl estimate "Levi's 501 jeans"`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := newClient().Estimate(context.Background(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), resp)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: £%.2f (brand %s, %s demand)\n",
				resp.ItemName, resp.EstimatedPrice, resp.BrandInfo.Brand, resp.BrandInfo.DemandLevel)
			return nil
		},
	}
}
