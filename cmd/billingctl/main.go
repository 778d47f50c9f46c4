package main

import (
	"fmt"
	"os"

	"outfitter_billing/internal/cli/commands"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "billingctl",
		Short: "Offline pricing, span and installment tools for outfitter billing",
	}

	rootCmd.AddCommand(
		commands.QuoteCmd(),
		commands.SplitCmd(),
		commands.SpanCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
