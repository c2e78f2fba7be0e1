package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/xuri/excelize/v2"

	apiclient "github.com/donaldgifford/haggle/internal/api/client"
	"github.com/donaldgifford/haggle/pkg/negotiate"
	domain "github.com/donaldgifford/haggle/pkg/types"
)

const (
	outcomesSheet = "Outcomes"
	ratesSheet    = "Success Rates"
	exportPage    = 500
)

func outcomesExportCmd() *cobra.Command {
	var (
		path   string
		params apiclient.ListOutcomesParams
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export outcomes and success rates to a spreadsheet",
		Example: `  hgl outcomes export --file outcomes.xlsx
  hgl outcomes export --strategy "Quick Offer" --file quick.xlsx`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := context.Background()
			c := newClient()

			outcomes, err := fetchAllOutcomes(ctx, c, params)
			if err != nil {
				return err
			}
			stats, err := c.SuccessRates(ctx)
			if err != nil {
				return err
			}

			if err := writeWorkbook(path, outcomes, stats); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d outcomes to %s.\n", len(outcomes), path)
			return nil
		},
	}

	cmd.Flags().StringVar(&path, "file", "outcomes.xlsx", "output spreadsheet path")
	cmd.Flags().StringVar(&params.Strategy, "strategy", "", "filter by strategy")
	cmd.Flags().StringVar(&params.Outcome, "outcome", "", "filter by outcome")

	return cmd
}

func fetchAllOutcomes(
	ctx context.Context,
	c *apiclient.Client,
	params apiclient.ListOutcomesParams,
) ([]domain.Outcome, error) {
	params.Limit = exportPage
	params.Offset = 0

	var all []domain.Outcome
	for {
		resp, err := c.ListOutcomes(ctx, &params)
		if err != nil {
			return nil, err
		}
		all = append(all, resp.Outcomes...)
		if len(resp.Outcomes) < exportPage || len(all) >= resp.Total {
			return all, nil
		}
		params.Offset += len(resp.Outcomes)
	}
}

func writeWorkbook(path string, outcomes []domain.Outcome, stats []domain.StrategyStats) (err error) {
	f := excelize.NewFile()
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	if err := f.SetSheetName("Sheet1", outcomesSheet); err != nil {
		return fmt.Errorf("naming sheet: %w", err)
	}
	if _, err := f.NewSheet(ratesSheet); err != nil {
		return fmt.Errorf("creating sheet: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("creating header style: %w", err)
	}

	rows := [][]any{{"ID", "Item", "Listed", "Offered", "Discount %", "Strategy", "Outcome", "Response (h)", "Recorded"}}
	for i := range outcomes {
		o := &outcomes[i]
		rows = append(rows, []any{
			o.ID,
			o.ItemName,
			o.OriginalPrice,
			o.OfferedPrice,
			negotiate.DiscountPercent(o.OriginalPrice, o.OfferedPrice),
			string(o.Strategy),
			string(o.Result),
			o.ResponseTimeHours,
			o.RecordedAt,
		})
	}
	if err := writeRows(f, outcomesSheet, rows, bold); err != nil {
		return err
	}

	rows = [][]any{{"Strategy", "Total", "Accepted", "Countered", "Rejected", "Ignored", "Success rate"}}
	for i := range stats {
		s := &stats[i]
		rows = append(rows, []any{
			string(s.Strategy), s.Total, s.Accepted, s.Countered, s.Rejected, s.Ignored, s.SuccessRate,
		})
	}
	if err := writeRows(f, ratesSheet, rows, bold); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving %s: %w", path, err)
	}
	return nil
}

func writeRows(f *excelize.File, sheet string, rows [][]any, headerStyle int) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("writing %s row %d: %w", sheet, i+1, err)
		}
	}

	last, err := excelize.CoordinatesToCellName(len(rows[0]), 1)
	if err != nil {
		return err
	}
	return f.SetCellStyle(sheet, "A1", last, headerStyle)
}
