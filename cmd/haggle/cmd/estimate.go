package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/haggle/pkg/negotiate"
)

func estimateCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "estimate <item name>",
		Short:   "Print the keyword-based market estimate for an item",
		Example: `  haggle estimate "Levi's 501 jeans"`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := strings.TrimSpace(strings.Join(args, " "))
			now := time.Now()
			brand := negotiate.LookupBrand(name)
			price := negotiate.EstimateMarketPrice(name, now)

			out := cmd.OutOrStdout()
			if brand.Brand != negotiate.UnknownBrand {
				fmt.Fprintf(out, "%s: £%.2f (brand %s, %s demand)\n", name, price, brand.Brand, brand.DemandLevel)
				return nil
			}
			fmt.Fprintf(out, "%s: £%.2f\n", name, price)
			return nil
		},
	}
}
