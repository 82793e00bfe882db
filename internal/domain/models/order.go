package models

// OrderStatus is the admin-visible lifecycle of an order. The admin UI moves
// orders 処理中 → 対応中 → 出荷済み (or straight to 出荷済み); the server
// stores whatever it is sent and only uses these values for read-side
// defaulting.
type OrderStatus string

const (
	OrderStatusProcessing OrderStatus = "処理中"
	OrderStatusInProgress OrderStatus = "対応中"
	OrderStatusShipped    OrderStatus = "出荷済み"
)

// OrderItem is one item slot of a persisted order row. Quantity stays a
// string because the sheet cell is free text.
type OrderItem struct {
	Name     string `json:"name"`
	Size     string `json:"size"`
	Color    string `json:"color"`
	Quantity string `json:"quantity"`
}

// Order is the logical order reconstructed from a history sheet row. An order
// number identifies one logical order even when its items are split across
// the regular and hirock sheets; the merged history view unions the items.
type Order struct {
	OrderNumber  string      `json:"orderNumber"`
	OrderDate    string      `json:"orderDate"`
	OrderTime    string      `json:"orderTime"`
	StoreName    string      `json:"storeName"`
	Email        string      `json:"email"`
	Items        []OrderItem `json:"items"`
	Status       OrderStatus `json:"status"`
	ShippingDate string      `json:"shippingDate,omitempty"`
}
