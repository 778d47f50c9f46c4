package pricing

import (
	"log"
	"strings"

	"outfitter_billing/internal/domain/entities"
)

// MatchSource tells how an add-on catalog row was resolved for a kind.
type MatchSource string

const (
	MatchExplicit  MatchSource = "addon_type"
	MatchHeuristic MatchSource = "title_keyword"
)

// AddonMatch is the catalog row charged for one add-on kind.
type AddonMatch struct {
	Kind   entities.AddonType
	Item   entities.PricingItem
	Source MatchSource
}

// titleKeywords is only consulted for rows without an explicit addon_type.
var titleKeywords = map[entities.AddonType][]string{
	entities.AddonExtraDays:   {"extra day", "additional day", "add day"},
	entities.AddonNonHunter:   {"non-hunter", "non hunter", "nonhunter", "observer"},
	entities.AddonSpotter:     {"spotter"},
	entities.AddonRifleRental: {"rifle rental", "rental rifle", "gun rental"},
}

// ResolveAddon finds the catalog row for an add-on kind. Rows tagged with the
// kind always win; a title keyword match on an untagged row is the fallback.
func ResolveAddon(kind entities.AddonType, catalog []entities.PricingItem) (AddonMatch, bool) {
	for _, it := range catalog {
		if it.AddonType == kind {
			return AddonMatch{Kind: kind, Item: it, Source: MatchExplicit}, true
		}
	}

	keywords := titleKeywords[kind]
	for _, it := range catalog {
		if it.AddonType != "" {
			continue
		}
		title := strings.ToLower(it.Title)
		for _, kw := range keywords {
			if strings.Contains(title, kw) {
				log.Printf("[pricing][addon-heuristic] kind=%s item_id=%s title=%q keyword=%q: set addon_type on this catalog row", kind, it.ID, it.Title, kw)
				return AddonMatch{Kind: kind, Item: it, Source: MatchHeuristic}, true
			}
		}
	}
	return AddonMatch{}, false
}
