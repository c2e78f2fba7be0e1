package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	apiclient "github.com/donaldgifford/haggle/internal/api/client"
	domain "github.com/donaldgifford/haggle/pkg/types"
)

func outcomesCmd() *cobra.Command {
	outcomesRoot := &cobra.Command{
		Use:   "outcomes",
		Short: "Record and review offer outcomes",
		Long: "Record how a seller responded to an offer and review the results.\n" +
			"Outcomes feed per-strategy success rates, which tune confidence scores.",
	}

	outcomesRoot.AddCommand(
		outcomesRecordCmd(),
		outcomesListCmd(),
		outcomesRatesCmd(),
		outcomesExportCmd(),
	)

	return outcomesRoot
}

func outcomesRecordCmd() *cobra.Command {
	var (
		req      apiclient.OutcomeRequest
		strategy string
		result   string
	)

	cmd := &cobra.Command{
		Use:   "record <item name>",
		Short: "Record how a seller responded to an offer",
		Example: `  hgl outcomes record "Nike trainers" --listed 50 --offered 42 \
    --strategy "Quick Offer" --outcome countered --response-time 3.5`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req.ItemName = args[0]
			req.Strategy = domain.Method(strategy)
			req.Outcome = domain.OutcomeResult(result)

			o, err := newClient().RecordOutcome(context.Background(), &req)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), o)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Recorded outcome %s (%s, %s).\n", o.ID, o.Strategy, o.Result)
			return nil
		},
	}

	cmd.Flags().Float64Var(&req.OriginalPrice, "listed", 0, "listed price (required)")
	cmd.Flags().Float64Var(&req.OfferedPrice, "offered", 0, "offered price (required)")
	cmd.Flags().StringVar(&strategy, "strategy", "", "strategy used (required)")
	cmd.Flags().StringVar(&result, "outcome", "", "accepted, countered, rejected or ignored (required)")
	cmd.Flags().Float64Var(&req.ResponseTime, "response-time", 0, "hours until the seller responded")
	for _, name := range []string{"listed", "offered", "strategy", "outcome"} {
		cobra.CheckErr(cmd.MarkFlagRequired(name))
	}

	return cmd
}

func outcomesListCmd() *cobra.Command {
	var (
		params apiclient.ListOutcomesParams
		since  time.Duration
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recorded outcomes",
		Example: `  hgl outcomes list
  hgl outcomes list --strategy "Quick Offer" --outcome accepted --since 720h
  hgl outcomes list --order-by discount --limit 20 --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if since > 0 {
				params.Since = time.Now().Add(-since)
			}

			resp, err := newClient().ListOutcomes(context.Background(), &params)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), resp)
			}
			if len(resp.Outcomes) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No outcomes found.")
				return nil
			}
			if err := printOutcomesTable(cmd.OutOrStdout(), resp.Outcomes); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "\nShowing %d of %d outcomes.\n", len(resp.Outcomes), resp.Total)
			return nil
		},
	}

	cmd.Flags().StringVar(&params.Strategy, "strategy", "", "filter by strategy")
	cmd.Flags().StringVar(&params.Outcome, "outcome", "", "filter by outcome")
	cmd.Flags().StringVar(&params.ItemName, "item", "", "filter by item name substring")
	cmd.Flags().DurationVar(&since, "since", 0, "only outcomes recorded within this duration")
	cmd.Flags().IntVar(&params.Limit, "limit", 0, "maximum outcomes to return")
	cmd.Flags().IntVar(&params.Offset, "offset", 0, "outcomes to skip")
	cmd.Flags().StringVar(&params.OrderBy, "order-by", "", "recorded_at, discount or original_price")

	return cmd
}

func outcomesRatesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rates",
		Short: "Show per-strategy success rates",
		Example: `  hgl outcomes rates
  hgl outcomes rates --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			stats, err := newClient().SuccessRates(context.Background())
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), stats)
			}
			if len(stats) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No outcomes recorded yet.")
				return nil
			}
			return printSuccessRates(cmd.OutOrStdout(), stats)
		},
	}
}
