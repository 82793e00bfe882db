package services

import (
	"strings"

	"github.com/splashbrothers/ordering/internal/domain/models"
)

// HirockPartnerName routes items to the hirock_item_history sheet: orders for
// this partner are tracked and shipped separately.
const HirockPartnerName = "ハイロックデザインオフィス"

// chemicalProducts are fulfilled by the chemical supplier and always stay on
// the regular order sheet regardless of any partner listed in the catalog
var chemicalProducts = []string{
	"スプシャン",
	"スプワックス",
	"スプコート",
	"セラミック",
	"マイクロファイバー",
	"スプタイヤ",
}

// IsChemicalProduct reports whether the item comes from the chemical supplier
func IsChemicalProduct(name string) bool {
	return containsAny(name, chemicalProducts)
}

// MatchProductName loosely matches an ordered item name against a catalog
// name. Catalog rows and carts are both hand-typed, so exact equality is too
// strict: containment either way counts, and so does sharing at least half
// the words of the shorter name.
func MatchProductName(orderItemName, availableItemName string) bool {
	ordered := strings.ToLower(strings.TrimSpace(orderItemName))
	available := strings.ToLower(strings.TrimSpace(availableItemName))

	if ordered == available {
		return true
	}
	if strings.Contains(ordered, available) || strings.Contains(available, ordered) {
		return true
	}

	orderWords := strings.Fields(ordered)
	availableWords := strings.Fields(available)
	common := 0
	for _, w := range orderWords {
		for _, aw := range availableWords {
			if w == aw {
				common++
				break
			}
		}
	}
	shorter := len(orderWords)
	if len(availableWords) < shorter {
		shorter = len(availableWords)
	}
	return common > 0 && common*2 >= shorter
}

// matchCatalogItem returns the first catalog row whose name matches the item
func matchCatalogItem(itemName string, available []models.AvailableItem) (models.AvailableItem, bool) {
	for _, av := range available {
		if MatchProductName(itemName, av.Name) {
			return av, true
		}
	}
	return models.AvailableItem{}, false
}

// SplitBySheet partitions cart items between the regular order sheet and the
// hirock sheet. Chemicals always go regular; everything else follows the
// partner listed on its matching catalog row, defaulting to regular when no
// row matches.
func SplitBySheet(items []models.CartItem, available []models.AvailableItem) (hirock, regular []models.CartItem) {
	for _, item := range items {
		if IsChemicalProduct(item.Name) {
			regular = append(regular, item)
			continue
		}
		if av, ok := matchCatalogItem(item.Name, available); ok && av.PartnerName == HirockPartnerName {
			hirock = append(hirock, item)
			continue
		}
		regular = append(regular, item)
	}
	return hirock, regular
}

// GroupByPartner buckets cart items by the supplier partner of their matching
// catalog row. Items with no match, or whose row lacks a partner name or
// email, are skipped; group order follows first appearance in the cart.
func GroupByPartner(items []models.CartItem, available []models.AvailableItem) []models.PartnerGroup {
	index := make(map[string]int)
	var groups []models.PartnerGroup

	for _, item := range items {
		av, ok := matchCatalogItem(item.Name, available)
		if !ok || av.PartnerName == "" || av.PartnerEmail == "" {
			continue
		}
		i, ok := index[av.PartnerName]
		if !ok {
			i = len(groups)
			index[av.PartnerName] = i
			groups = append(groups, models.PartnerGroup{
				Name:  av.PartnerName,
				Email: av.PartnerEmail,
			})
		}
		groups[i].Items = append(groups[i].Items, item)
	}
	return groups
}
