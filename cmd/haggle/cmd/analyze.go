package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/haggle/pkg/logger"
	domain "github.com/donaldgifford/haggle/pkg/types"
)

func analyzeCmd() *cobra.Command {
	var (
		in       domain.ListingInput
		sellerID string
		asJSON   bool
	)

	cmd := &cobra.Command{
		Use:   "analyze <item name>",
		Short: "Analyze a listing locally and print a negotiation strategy",
		Long: "Runs the negotiation engine in-process against the configured marketplace\n" +
			"and store. Without a config file, marketplace data is unavailable and the\n" +
			"market price falls back to the keyword estimate.",
		Example: `  haggle analyze "Nike Air Max trainers" --price 50 --days 45 --interested 1
  haggle analyze "Stone Island jacket" --price 80 --days 5 --interested 2 --json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in.ItemName = strings.TrimSpace(strings.Join(args, " "))
			if sellerID != "" {
				in.SellerData = map[string]any{"seller_id": sellerID}
			}
			if err := in.Validate(); err != nil {
				return err
			}

			cfg, err := loadConfig(true)
			if err != nil {
				return err
			}
			log := logger.NewWithWriter(cmd.ErrOrStderr(), cfg.Logging.Level, cfg.Logging.Format)

			a, err := newApp(cmd.Context(), cfg, log)
			if err != nil {
				return err
			}
			defer a.Close()

			s := a.engine.GenerateStrategy(cmd.Context(), in)
			if err := a.engine.Wait(cmd.Context()); err != nil {
				log.Warn("pending notifications abandoned", "error", err)
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(s)
			}
			return printStrategy(cmd.OutOrStdout(), in.Price, &s)
		},
	}

	cmd.Flags().Float64Var(&in.Price, "price", 0, "listed price (required)")
	cmd.Flags().IntVar(&in.DaysListed, "days", 0, "days the listing has been up")
	cmd.Flags().IntVar(&in.InterestedCount, "interested", 0, "number of interested buyers")
	cmd.Flags().IntVar(&in.Views, "views", 0, "listing views")
	cmd.Flags().StringVar(&sellerID, "seller-id", "", "seller identifier for profile learning")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the full strategy as JSON")
	cobra.CheckErr(cmd.MarkFlagRequired("price"))

	return cmd
}

func printStrategy(w io.Writer, listed float64, s *domain.NegotiationStrategy) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	market := fmt.Sprintf("£%.2f", s.Market.SoldMedian)
	if s.Market.Estimated {
		market += " (estimated)"
	}

	fmt.Fprintf(tw, "Strategy:\t%s\n", s.Method)
	fmt.Fprintf(tw, "Listed:\t£%.2f\n", listed)
	fmt.Fprintf(tw, "Offer:\t£%.2f (%.1f%% off)\n", s.OfferPrice, s.DiscountPercent)
	fmt.Fprintf(tw, "Market:\t%s\n", market)
	fmt.Fprintf(tw, "Confidence:\t%d/5\n", s.Confidence)
	fmt.Fprintf(tw, "Position:\t%s\n", s.Market.MarketPosition)
	fmt.Fprintf(tw, "Seller:\t%s\n", s.Seller.SellerType)
	fmt.Fprintf(tw, "Trend:\t%s\n", s.Trend.PriceTrend)
	if s.Timing != nil {
		fmt.Fprintf(tw, "Best time:\t%s\n", s.Timing.BestContactWindow)
	}
	fmt.Fprintf(tw, "Rationale:\t%s\n", s.Rationale)
	fmt.Fprintf(tw, "Message:\t%s\n", s.Message)
	return tw.Flush()
}
