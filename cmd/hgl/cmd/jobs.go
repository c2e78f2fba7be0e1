package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func jobsCmd() *cobra.Command {
	jobsRoot := &cobra.Command{
		Use:   "jobs",
		Short: "View and run scheduled maintenance jobs",
		Long: "View the latest run of each scheduled job (success_rates, cache_purge,\n" +
			"comparable_prune) or run one immediately.",
	}

	jobsRoot.AddCommand(
		jobsListCmd(),
		jobsRunCmd(),
	)

	return jobsRoot
}

func jobsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List latest run per job",
		Example: `  hgl jobs list
  hgl jobs list --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			runs, err := newClient().ListJobs(context.Background())
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), runs)
			}
			if len(runs) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No job runs found.")
				return nil
			}
			return printJobRunsTable(cmd.OutOrStdout(), runs)
		},
	}
}

func jobsRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "run <job_name>",
		Short:     "Run a scheduled job now",
		Example:   `  hgl jobs run success_rates`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"success_rates", "cache_purge", "comparable_prune"},
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := newClient().RunJob(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s completed.\n", args[0])
			return nil
		},
	}
}

func quotaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "quota",
		Short: "Show the marketplace scraper's daily quota",
		RunE: func(cmd *cobra.Command, _ []string) error {
			q, err := newClient().Quota(context.Background())
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), q)
			}
			if !q.Enabled {
				fmt.Fprintln(cmd.OutOrStdout(), "Marketplace scraping is disabled.")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d of %d requests used, %d remaining, resets %s.\n",
				q.DailyUsed, q.DailyLimit, q.Remaining, q.ResetAt)
			return nil
		},
	}
}
