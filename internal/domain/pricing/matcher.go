// Package pricing matches catalog items to a hunt and turns a plan selection
// into billable cents.
package pricing

import (
	"strings"

	"outfitter_billing/internal/domain/entities"
)

// Section selects which part of the catalog Match returns.
type Section int

const (
	SectionAll Section = iota
	SectionGuideFees
	SectionAddons
)

// weaponSynonyms maps hunt weapon values to the name used in catalog filters.
var weaponSynonyms = map[string]string{
	"bow": "Archery",
}

// NormalizeWeapon applies the weapon synonyms ("Bow" is "Archery").
func NormalizeWeapon(weapon string) string {
	w := strings.TrimSpace(weapon)
	if v, ok := weaponSynonyms[strings.ToLower(w)]; ok {
		return v
	}
	return w
}

// Match returns the items applicable to a hunt of the given species and weapon,
// in catalog order. An empty filter set on an item means "any". An empty species
// or weapon only matches items that do not filter on that dimension.
func Match(items []entities.PricingItem, species, weapon string, section Section) []entities.PricingItem {
	weapon = NormalizeWeapon(weapon)
	out := make([]entities.PricingItem, 0, len(items))
	for _, it := range items {
		if !inSection(it, section) {
			continue
		}
		if !filterAllows(it.SpeciesFilter, species) {
			continue
		}
		if !filterAllows(normalizeWeapons(it.WeaponFilter), weapon) {
			continue
		}
		out = append(out, it)
	}
	return out
}

// Split partitions a catalog into guide-fee plans and add-ons.
func Split(items []entities.PricingItem) (plans, addons []entities.PricingItem) {
	for _, it := range items {
		if it.IsAddon() {
			addons = append(addons, it)
		} else {
			plans = append(plans, it)
		}
	}
	return plans, addons
}

// FindByID returns the item with the given id from a slice.
func FindByID(items []entities.PricingItem, id string) (entities.PricingItem, bool) {
	for _, it := range items {
		if it.ID == id {
			return it, true
		}
	}
	return entities.PricingItem{}, false
}

func inSection(it entities.PricingItem, section Section) bool {
	switch section {
	case SectionGuideFees:
		return !it.IsAddon()
	case SectionAddons:
		return it.IsAddon()
	default:
		return true
	}
}

func filterAllows(filter []string, value string) bool {
	if len(filter) == 0 {
		return true
	}
	value = strings.TrimSpace(value)
	if value == "" {
		return false
	}
	for _, f := range filter {
		if strings.EqualFold(strings.TrimSpace(f), value) {
			return true
		}
	}
	return false
}

func normalizeWeapons(filter []string) []string {
	if len(filter) == 0 {
		return filter
	}
	out := make([]string, len(filter))
	for i, f := range filter {
		out[i] = NormalizeWeapon(f)
	}
	return out
}
