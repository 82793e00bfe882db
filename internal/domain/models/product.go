package models

// Product is a grouped catalog record built from the Available_items sheet.
// Rows are grouped by (name, color); size/color variants collapse into the
// Colors/Sizes slices and amount tiers into Amounts with positionally aligned
// Prices/PricesPerPiece (Amounts is sorted ascending, Prices[i] is the price
// for Amounts[i]).
type Product struct {
	ID             string   `json:"id"`
	Category       string   `json:"category"`
	Name           string   `json:"name"`
	Colors         []string `json:"colors"`
	Sizes          []string `json:"sizes"`
	Amounts        []int    `json:"amounts"`
	Prices         []string `json:"prices"`
	PricesPerPiece []string `json:"pricesPerPiece"`
	LeadTime       string   `json:"leadTime"`
	PartnerName    string   `json:"partnerName"`
	PartnerEmail   string   `json:"partnerEmail"`
	ImageURL       string   `json:"imageUrl"`
	Color          string   `json:"color"`
}

// AvailableItem is the flat row view of the catalog used for partner routing:
// one entry per sheet row, no grouping.
type AvailableItem struct {
	Category     string `json:"category"`
	Name         string `json:"name"`
	PartnerName  string `json:"partnerName"`
	PartnerEmail string `json:"partnerEmail"`
}

// PartnerGroup collects the cart items belonging to one notified partner
type PartnerGroup struct {
	Name  string     `json:"name"`
	Email string     `json:"email"`
	Items []CartItem `json:"items"`
}
