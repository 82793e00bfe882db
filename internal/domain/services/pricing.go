package services

import (
	"strings"

	"github.com/splashbrothers/ordering/internal/domain/models"
)

// specialPromotionalItems carry tiered fixed pricing: the selected tier price
// is the line total, never multiplied by quantity.
var specialPromotionalItems = []string{
	"ポイントカード",
	"サブスクメンバーズカード",
	"サブスクフライヤー",
	"フリーチケット",
	"クーポン券",
	"名刺",
	"のぼり",
	"お年賀",
	"利用規約",
	"ピッカークロス",
}

var apparelItems = []string{"Tシャツ", "フーディ", "ワークシャツ", "つなぎ"}

// PriceTier is one orderable quantity of a fixed-tier product
type PriceTier struct {
	Quantity int
	Label    string
	Price    int
}

var fixedQuantityPrices = map[string][]PriceTier{
	"ポイントカード": {
		{Quantity: 1000, Label: "1000枚", Price: 29370},
		{Quantity: 3000, Label: "3000枚", Price: 46090},
		{Quantity: 5000, Label: "5000枚", Price: 62920},
	},
	"サブスクメンバーズカード": {
		{Quantity: 500, Label: "500枚", Price: 23540},
		{Quantity: 1000, Label: "1000枚", Price: 36080},
		{Quantity: 1500, Label: "1500枚", Price: 48620},
	},
	"サブスクフライヤー": {
		{Quantity: 500, Label: "500枚", Price: 6600},
		{Quantity: 1000, Label: "1000枚", Price: 7370},
		{Quantity: 1500, Label: "1500枚", Price: 8360},
	},
	"フリーチケット": {
		{Quantity: 1000, Label: "1000枚", Price: 23100},
	},
	"クーポン券": {
		{Quantity: 1000, Label: "1000枚", Price: 42680},
	},
	"のぼり(10枚1セット)": {
		{Quantity: 10, Label: "10枚1セット", Price: 26620},
	},
	"のぼり(6枚1セット)": {
		{Quantity: 6, Label: "6枚1セット", Price: 19140},
	},
	"お年賀": {
		{Quantity: 100, Label: "100枚", Price: 25000},
	},
	// price pending from the print shop, kept unorderable on purpose
	"利用規約": {
		{Quantity: 500, Label: "500枚", Price: 999999},
		{Quantity: 1000, Label: "1000枚", Price: 999999},
	},
	"ピッカークロス": {
		{Quantity: 400, Label: "400枚", Price: 30000},
		{Quantity: 800, Label: "800枚", Price: 60000},
		{Quantity: 1200, Label: "1200枚", Price: 90000},
	},
}

var tshirtPrices = map[string]int{
	"M": 1810, "L": 1810, "XL": 1810, "XXL": 2040,
}

var hoodiePrices = map[string]int{
	"M": 3210, "L": 3210, "XL": 3210, "XXL": 3770, "XXXL": 4000,
}

// storeSpecificPrices override the catalog price of selected chemicals for
// stores on negotiated contracts
var storeSpecificPrices = map[string]map[string]int{
	"SPLASH'N'GO!伊勢崎韮塚店": {
		"スプワックス": 40000,
		"スプコート":  25000,
	},
	"SPLASH'N'GO!高崎棟高店": {
		"スプワックス": 37000,
		"スプコート":  23000,
	},
	"SPLASH'N'GO!足利緑町店": {
		"スプワックス": 37000,
		"スプコート":  23000,
	},
	"SPLASH'N'GO!新前橋店": {
		"スプワックス": 26000,
		"スプコート":  20000,
	},
}

// ApparelShippingFee is charged once per order containing any apparel item
const ApparelShippingFee = 1000

// IsSpecialPromotionalItem reports whether the product sells in fixed tiers
func IsSpecialPromotionalItem(name string) bool {
	return containsAny(name, specialPromotionalItems)
}

// IsApparelItem reports whether the product is wearable merchandise
func IsApparelItem(name string) bool {
	return containsAny(name, apparelItems)
}

// HasSizeBasedPrice reports whether the price depends on the selected size
func HasSizeBasedPrice(name string) bool {
	return strings.Contains(name, "Tシャツ") || strings.Contains(name, "フーディ")
}

// StoreSpecificPrice returns the negotiated price of a product for the given
// store. Product names match by substring so variant suffixes still hit.
func StoreSpecificPrice(productName, storeName string) (int, bool) {
	overrides, ok := storeSpecificPrices[storeName]
	if !ok {
		return 0, false
	}
	for product, price := range overrides {
		if strings.Contains(productName, product) {
			return price, true
		}
	}
	return 0, false
}

// FixedQuantityTiers returns the tier table of a fixed-tier product, matching
// the longest table key contained in the product name so "のぼり(6枚1セット)"
// wins over "のぼり".
func FixedQuantityTiers(productName string) ([]PriceTier, bool) {
	var best string
	for key := range fixedQuantityPrices {
		if strings.Contains(productName, key) && len(key) > len(best) {
			best = key
		}
	}
	if best == "" {
		return nil, false
	}
	return fixedQuantityPrices[best], true
}

// ApparelSizePrice returns the size-table price for T-shirts and hoodies
func ApparelSizePrice(productName, size string) (int, bool) {
	if strings.Contains(productName, "Tシャツ") {
		p, ok := tshirtPrices[size]
		return p, ok
	}
	if strings.Contains(productName, "フーディ") {
		p, ok := hoodiePrices[size]
		return p, ok
	}
	return 0, false
}

// ItemTotal computes one cart line's total in yen. The client-held price is
// untrusted, so known tables win over it: store overrides first, then fixed
// tiers, then the apparel size tables, and only then the carried price.
// Fixed-tier products return the tier price as-is; everything else multiplies
// by quantity.
func ItemTotal(item models.CartItem, storeName string) int {
	qty := item.Quantity
	if qty < 1 {
		qty = 1
	}

	if price, ok := StoreSpecificPrice(item.Name, storeName); ok {
		return price * qty
	}

	if IsSpecialPromotionalItem(item.Name) {
		if tiers, ok := FixedQuantityTiers(item.Name); ok {
			want := item.SelectedQuantity.Int()
			for _, tier := range tiers {
				if tier.Quantity == want {
					return tier.Price
				}
			}
		}
		return item.Price.Int()
	}

	if HasSizeBasedPrice(item.Name) {
		if price, ok := ApparelSizePrice(item.Name, item.SelectedSize); ok {
			return price * qty
		}
	}

	return item.Price.Int() * qty
}

// Totals is the order quote breakdown shown at checkout
type Totals struct {
	Subtotal    int `json:"subtotal"`
	Tax         int `json:"tax"`
	ShippingFee int `json:"shippingFee"`
	Total       int `json:"total"`
}

// ComputeTotals prices a cart: line totals summed, 10% tax, and a flat
// shipping fee when any apparel item is present.
func ComputeTotals(items []models.CartItem, storeName string) Totals {
	var t Totals
	hasApparel := false
	for _, item := range items {
		t.Subtotal += ItemTotal(item, storeName)
		if IsApparelItem(item.Name) {
			hasApparel = true
		}
	}
	t.Tax = t.Subtotal / 10
	if hasApparel {
		t.ShippingFee = ApparelShippingFee
	}
	t.Total = t.Subtotal + t.Tax + t.ShippingFee
	return t
}

func containsAny(name string, substrings []string) bool {
	for _, s := range substrings {
		if strings.Contains(name, s) {
			return true
		}
	}
	return false
}
