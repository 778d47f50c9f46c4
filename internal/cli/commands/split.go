package commands

import (
	"fmt"
	"text/tabwriter"

	"outfitter_billing/internal/domain/booking"
	"outfitter_billing/internal/domain/installments"

	"github.com/spf13/cobra"
)

func SplitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "split",
		Short: "Show the monthly installment schedule for a total",
		RunE: func(cmd *cobra.Command, args []string) error {
			total, _ := cmd.Flags().GetInt64("total-cents")
			count, _ := cmd.Flags().GetInt("count")
			firstDueRaw, _ := cmd.Flags().GetString("first-due")

			firstDue, err := parseDate("first-due", firstDueRaw)
			if err != nil {
				return err
			}
			rate, err := feeRate(cmd)
			if err != nil {
				return err
			}

			plan, err := installments.Split(total, count, firstDue)
			if err != nil {
				return err
			}
			plan = installments.WithFees(plan, rate)

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "#\tdue\tamount\tsubtotal\tfee")
			for _, it := range plan {
				fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", it.Number, booking.FormatDate(it.DueDate), usd(it.AmountCents), usd(it.SubtotalCents), usd(it.PlatformFeeCents))
			}
			return tw.Flush()
		},
	}

	cmd.Flags().Int64("total-cents", 0, "total to split, in cents")
	cmd.Flags().Int("count", installments.MinInstallments, fmt.Sprintf("number of installments (%d-%d)", installments.MinInstallments, installments.MaxInstallments))
	cmd.Flags().String("first-due", "", "first due date (YYYY-MM-DD)")
	addFeeFlag(cmd)
	_ = cmd.MarkFlagRequired("total-cents")
	_ = cmd.MarkFlagRequired("first-due")
	return cmd
}
