package commands

import (
	"fmt"

	"outfitter_billing/internal/domain/booking"

	"github.com/spf13/cobra"
)

// SpanCmd validates a hunt date range, or derives the end date from the
// start when --end is omitted.
func SpanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "span",
		Short: "Validate or derive a hunt date span",
		RunE: func(cmd *cobra.Command, args []string) error {
			startRaw, _ := cmd.Flags().GetString("start")
			days, _ := cmd.Flags().GetInt("days")

			start, err := parseDate("start", startRaw)
			if err != nil {
				return err
			}
			end, err := optionalDate(cmd, "end")
			if err != nil {
				return err
			}
			window, err := seasonWindow(cmd)
			if err != nil {
				return err
			}

			span, err := booking.DeriveSpan(start, end, window, days)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s to %s (%d days)\n", booking.FormatDate(span.Start), booking.FormatDate(span.End), span.Days)
			return nil
		},
	}

	cmd.Flags().String("start", "", "first hunt day (YYYY-MM-DD)")
	cmd.Flags().String("end", "", "last hunt day (YYYY-MM-DD), derived from --days when empty")
	cmd.Flags().Int("days", 0, "required day count, 0 leaves the duration unconstrained")
	addWindowFlags(cmd)
	_ = cmd.MarkFlagRequired("start")
	return cmd
}
