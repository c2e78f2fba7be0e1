package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	apiclient "github.com/donaldgifford/haggle/internal/api/client"
	domain "github.com/donaldgifford/haggle/pkg/types"
)

const timeLayout = "2006-01-02 15:04:05"

// tabWriter wraps tabwriter with error tracking.
type tabWriter struct {
	*tabwriter.Writer
	err error
}

func newTabWriter(w io.Writer) *tabWriter {
	return &tabWriter{Writer: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)}
}

func (tw *tabWriter) writef(format string, args ...any) {
	if tw.err != nil {
		return
	}
	_, tw.err = fmt.Fprintf(tw.Writer, format, args...)
}

func (tw *tabWriter) finish() error {
	if tw.err != nil {
		return tw.err
	}
	return tw.Flush()
}

func printAnalysis(w io.Writer, listed float64, r *apiclient.AnalyzeResponse) error {
	tw := newTabWriter(w)
	market := fmt.Sprintf("£%.2f", r.MarketPrice)
	if r.Analysis.EstimatedMarket {
		market += " (estimated)"
	}

	tw.writef("Strategy:\t%s\n", r.Strategy.Method)
	tw.writef("Listed:\t£%.2f\n", listed)
	tw.writef("Offer:\t£%.2f (%.1f%% off)\n", r.Strategy.OfferPrice, r.Strategy.DiscountPercent)
	tw.writef("Market:\t%s\n", market)
	tw.writef("Confidence:\t%d/5\n", r.Strategy.Confidence)
	tw.writef("Position:\t%s\n", r.Analysis.MarketPosition)
	tw.writef("Seller:\t%s\n", r.Analysis.SellerMotivation)
	tw.writef("Trend:\t%s\n", r.Analysis.PriceTrend)
	tw.writef("Comparison:\t%s\n", r.Insights.MarketComparison)
	tw.writef("Insight:\t%s\n", r.Insights.SellerInsights)
	tw.writef("Rationale:\t%s\n", r.Analysis.StrategyRationale)
	tw.writef("Message:\t%s\n", r.Strategy.Message)
	return tw.finish()
}

func printOutcomesTable(w io.Writer, outcomes []domain.Outcome) error {
	tw := newTabWriter(w)
	tw.writef("ID\tITEM\tLISTED\tOFFERED\tSTRATEGY\tOUTCOME\tRECORDED\n")
	for i := range outcomes {
		o := &outcomes[i]
		tw.writef("%s\t%s\t£%.2f\t£%.2f\t%s\t%s\t%s\n",
			o.ID,
			truncate(o.ItemName, 40),
			o.OriginalPrice,
			o.OfferedPrice,
			o.Strategy,
			o.Result,
			o.RecordedAt.Format(timeLayout),
		)
	}
	return tw.finish()
}

func printSuccessRates(w io.Writer, stats []domain.StrategyStats) error {
	tw := newTabWriter(w)
	tw.writef("STRATEGY\tTOTAL\tACCEPTED\tCOUNTERED\tREJECTED\tIGNORED\tSUCCESS\n")
	for i := range stats {
		s := &stats[i]
		tw.writef("%s\t%d\t%d\t%d\t%d\t%d\t%.0f%%\n",
			s.Strategy,
			s.Total,
			s.Accepted,
			s.Countered,
			s.Rejected,
			s.Ignored,
			s.SuccessRate*100,
		)
	}
	return tw.finish()
}

func printSellerDetail(w io.Writer, p *domain.SellerProfile) error {
	tw := newTabWriter(w)
	tw.writef("Seller:\t%s\n", p.SellerID)
	tw.writef("Flexibility:\t%.2f\n", p.NegotiationFlexibility)
	tw.writef("Avg response:\t%.1fh\n", p.AvgResponseTime)
	tw.writef("Listings:\t%d\n", p.ListingCount)
	tw.writef("Account age:\t%d days\n", p.AccountAgeDays)
	tw.writef("Feedback:\t%.1f\n", p.FeedbackScore)
	tw.writef("Observations:\t%d\n", p.ObservationCount)
	tw.writef("Updated:\t%s\n", p.UpdatedAt.Format(timeLayout))
	return tw.finish()
}

func printJobRunsTable(w io.Writer, runs []domain.JobRun) error {
	tw := newTabWriter(w)
	tw.writef("JOB\tSTATUS\tSTARTED\tCOMPLETED\tROWS\tERROR\n")
	for i := range runs {
		r := &runs[i]
		completed := "-"
		if r.CompletedAt != nil {
			completed = r.CompletedAt.Format(timeLayout)
		}
		rows := "-"
		if r.RowsAffected != nil {
			rows = fmt.Sprintf("%d", *r.RowsAffected)
		}
		tw.writef("%s\t%s\t%s\t%s\t%s\t%s\n",
			r.JobName,
			r.Status,
			r.StartedAt.Format(timeLayout),
			completed,
			rows,
			truncate(r.ErrorText, 40),
		)
	}
	return tw.finish()
}

func outputJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
