package commands

import (
	"context"
	"fmt"
	"strings"
	"text/tabwriter"

	"outfitter_billing/internal/adapter/persistence/memory"
	"outfitter_billing/internal/domain/booking"
	"outfitter_billing/internal/domain/entities"
	"outfitter_billing/internal/domain/pricing"

	"github.com/spf13/cobra"
)

// QuoteCmd prices a plan plus add-ons against a catalog file in the seed
// format the API's memory storage reads.
func QuoteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Price a guide-fee plan with add-ons from a catalog file",
		RunE: func(cmd *cobra.Command, args []string) error {
			catalogPath, _ := cmd.Flags().GetString("catalog")
			outfitterID, _ := cmd.Flags().GetString("outfitter")
			planID, _ := cmd.Flags().GetString("plan")
			species, _ := cmd.Flags().GetString("species")
			weapon, _ := cmd.Flags().GetString("weapon")
			rawAddons, _ := cmd.Flags().GetStringToInt("addon")

			rate, err := feeRate(cmd)
			if err != nil {
				return err
			}

			store := memory.NewStore()
			if err := store.LoadSeed(catalogPath); err != nil {
				return err
			}
			items, err := memory.NewPricingItemRepository(store).ListByOutfitter(context.Background(), outfitterID)
			if err != nil {
				return err
			}
			if len(items) == 0 {
				return fmt.Errorf("no pricing items for outfitter %q in %s", outfitterID, catalogPath)
			}

			plans := pricing.Match(items, species, weapon, pricing.SectionGuideFees)
			plan, ok := pricing.FindByID(plans, planID)
			if !ok {
				return fmt.Errorf("plan %q is not offered for species=%q weapon=%q", planID, species, weapon)
			}

			addons := make(map[entities.AddonType]int, len(rawAddons))
			for k, qty := range rawAddons {
				kind := entities.AddonType(strings.ToLower(k))
				if !kind.Valid() {
					return fmt.Errorf("unknown add-on type %q", k)
				}
				addons[kind] = qty
			}

			q, err := pricing.Price(&plan, addons, pricing.Match(items, species, weapon, pricing.SectionAddons), rate)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			for _, l := range q.Lines {
				fmt.Fprintf(tw, "%s\t%s\t%d x %s\t%s\n", l.Kind, l.Title, l.Quantity, usd(l.UnitCents), usd(l.AmountCents))
			}
			fmt.Fprintf(tw, "subtotal\t\t\t%s\n", usd(q.SubtotalCents))
			fmt.Fprintf(tw, "platform fee (%g%%)\t\t\t%s\n", rate.Percent(), usd(q.PlatformFeeCents))
			fmt.Fprintf(tw, "total\t\t\t%s\n", usd(q.TotalCents))
			if err := tw.Flush(); err != nil {
				return err
			}
			fmt.Fprintf(out, "required days: %d\n", booking.RequiredDays(&plan, pricing.ExtraDays(addons)))
			return nil
		},
	}

	cmd.Flags().String("catalog", "", "catalog JSON file (pricing_items)")
	cmd.Flags().String("outfitter", "", "outfitter id")
	cmd.Flags().String("plan", "", "guide-fee plan id")
	cmd.Flags().String("species", "", "hunt species, required for plans that filter on species")
	cmd.Flags().String("weapon", "", "hunt weapon, required for plans that filter on weapon")
	cmd.Flags().StringToInt("addon", nil, "add-on quantities, e.g. --addon extra_days=1,spotter=1")
	addFeeFlag(cmd)
	_ = cmd.MarkFlagRequired("catalog")
	_ = cmd.MarkFlagRequired("outfitter")
	_ = cmd.MarkFlagRequired("plan")
	return cmd
}
