package commands

import (
	"fmt"
	"strings"
	"time"

	"outfitter_billing/internal/domain/entities"
	"outfitter_billing/internal/domain/pricing"

	"github.com/spf13/cobra"
)

func addFeeFlag(cmd *cobra.Command) {
	cmd.Flags().Float64("fee-percent", 5, "platform fee percentage")
}

func feeRate(cmd *cobra.Command) (pricing.FeeRate, error) {
	percent, _ := cmd.Flags().GetFloat64("fee-percent")
	return pricing.FeeRateFromPercent(percent)
}

func parseDate(flag, value string) (time.Time, error) {
	t, err := time.Parse(time.DateOnly, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --%s %q, expected YYYY-MM-DD", flag, value)
	}
	return t, nil
}

func optionalDate(cmd *cobra.Command, flag string) (*time.Time, error) {
	v, _ := cmd.Flags().GetString(flag)
	if strings.TrimSpace(v) == "" {
		return nil, nil
	}
	t, err := parseDate(flag, v)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func seasonWindow(cmd *cobra.Command) (*entities.DateWindow, error) {
	start, err := optionalDate(cmd, "window-start")
	if err != nil {
		return nil, err
	}
	end, err := optionalDate(cmd, "window-end")
	if err != nil {
		return nil, err
	}
	switch {
	case start == nil && end == nil:
		return nil, nil
	case start == nil || end == nil:
		return nil, fmt.Errorf("--window-start and --window-end must be given together")
	}
	return &entities.DateWindow{Start: *start, End: *end}, nil
}

func addWindowFlags(cmd *cobra.Command) {
	cmd.Flags().String("window-start", "", "season window start (YYYY-MM-DD)")
	cmd.Flags().String("window-end", "", "season window end (YYYY-MM-DD)")
}

func usd(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s$%d.%02d", sign, cents/100, cents%100)
}
