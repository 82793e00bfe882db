package models

// StoreInfo is one row of the store_info sheet. The password cell is the
// store's login credential (legacy rows hold it in plaintext, newer rows a
// bcrypt hash); it never leaves the server.
type StoreInfo struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Phone    string `json:"phone,omitempty"`
	ZipCode  string `json:"zipCode,omitempty"`
	Address  string `json:"address,omitempty"`
	Email    string `json:"email"`
	Password string `json:"-"`
}

// OrderStoreInfo is the store identity attached to an order submission
type OrderStoreInfo struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
