package models

// MachineItem is one orderable spare part from the machine_item sheet
type MachineItem struct {
	ID        string `json:"id"`
	StoreName string `json:"storeName"`
	Category  string `json:"category"`
	ItemName  string `json:"itemName"`
}

// PartsCartItem is a line item of the spare-parts cart
type PartsCartItem struct {
	ID        string `json:"id"`
	StoreName string `json:"storeName"`
	Category  string `json:"category"`
	ItemName  string `json:"itemName"`
	Quantity  int    `json:"quantity"`
}

// ShippingMethod selects how a parts order travels from the supplier
type ShippingMethod string

const (
	ShippingAir       ShippingMethod = "air"
	ShippingSea       ShippingMethod = "sea"
	ShippingNextOrder ShippingMethod = "next_order"
)

// Text returns the English display text used on purchase order documents
func (m ShippingMethod) Text() string {
	switch m {
	case ShippingAir:
		return "Air shipment"
	case ShippingSea:
		return "Sea shipment"
	case ShippingNextOrder:
		return "At the same time as the next car wash machine order"
	default:
		return string(m)
	}
}

// TextJA returns the bilingual display text used in confirmation emails
func (m ShippingMethod) TextJA() string {
	switch m {
	case ShippingAir:
		return "Air shipment (航空便)"
	case ShippingSea:
		return "Sea shipment (船便)"
	case ShippingNextOrder:
		return "At the same time as the next car wash machine order (次回洗車機注文と同時)"
	default:
		return string(m)
	}
}
